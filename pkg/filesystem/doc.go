// Package filesystem provides implementations of the types.FS interface.
//
// Two implementations are available:
//   - NewOS: passes through to the os package, used in production
//   - NewAferoFS / NewMemory: backed by afero, used for in-memory tests
package filesystem
