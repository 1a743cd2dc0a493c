// Package closure computes the transitive dependency closure of a seed
// package set and turns it into a copy plan. The traversal is a worklist
// BFS guarded by a processed-set, so cyclic dependency graphs terminate and
// every reachable package is visited at most once.
package closure

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/payload/pkg/filter"
	"github.com/arthur-debert/payload/pkg/logging"
	"github.com/arthur-debert/payload/pkg/manifest"
	"github.com/arthur-debert/payload/pkg/types"
)

// DepSource supplies direct (depth-1) dependency listings. pkgmgr.Manager
// satisfies it; tests supply graphs in memory.
type DepSource interface {
	DirectDeps(pkg string) ([]string, error)
}

// Options configures a Walker.
type Options struct {
	// Deps answers direct-dependency queries.
	Deps DepSource

	// Resolver answers file-manifest queries.
	Resolver manifest.Resolver

	// Rules prune package manifests before they enter the plan.
	Rules []filter.CompiledRule

	// IncludeEmpty disables the short-circuit that stops descending below
	// packages whose filtered manifest is empty. The short-circuit treats
	// "installs nothing" as "leaf", which holds for meta-packages but can
	// silently prune subtrees when a filter is too broad; this knob exists
	// for exactly that situation.
	IncludeEmpty bool

	// Logger defaults to a component logger on the global stream when nil.
	Logger *zerolog.Logger
}

// Result carries the copy plan plus traversal statistics.
type Result struct {
	// Plan is the destination-deduplicated copy plan, in visit order.
	Plan types.CopyPlan

	// Processed lists every package visited, in visit order.
	Processed []string

	// Pruned lists packages whose filtered manifest was empty and whose
	// children were therefore not enqueued.
	Pruned []string
}

// Walker computes dependency closures. A Walker is reusable; each Walk
// queries the graph and manifests fresh and keeps no state between calls.
type Walker struct {
	deps         DepSource
	resolver     manifest.Resolver
	rules        []filter.CompiledRule
	includeEmpty bool
	logger       zerolog.Logger
}

// New creates a Walker.
func New(opts Options) *Walker {
	logger := logging.GetLogger("closure")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Walker{
		deps:         opts.Deps,
		resolver:     opts.Resolver,
		rules:        opts.Rules,
		includeEmpty: opts.IncludeEmpty,
		logger:       logger,
	}
}

// Walk computes the closure of the seed set and returns the accumulated
// copy plan. Any dependency-query, manifest, or filter failure aborts the
// walk; partial plans are never returned.
func (w *Walker) Walk(seeds []string) (*Result, error) {
	worklist := make([]string, len(seeds))
	copy(worklist, seeds)

	processed := make(map[string]bool)
	planned := make(map[string]bool)
	result := &Result{}

	for len(worklist) > 0 {
		pkg := worklist[0]
		worklist = worklist[1:]

		if processed[pkg] {
			continue
		}
		// Marked before descending so cycles terminate.
		processed[pkg] = true
		result.Processed = append(result.Processed, pkg)

		raw, err := w.resolver.Files(pkg)
		if err != nil {
			return nil, err
		}
		files := filter.Apply(pkg, raw, w.rules)
		w.logger.Debug().
			Str("package", pkg).
			Int("files", len(files)).
			Int("filtered", len(raw)-len(files)).
			Msg("Resolved package manifest")

		if len(files) == 0 && !w.includeEmpty {
			// Packages that install nothing are treated as leaves.
			w.logger.Info().Str("package", pkg).Msg("Package installs no files, skipping its dependencies")
			result.Pruned = append(result.Pruned, pkg)
			continue
		}

		for _, file := range files {
			if planned[file] {
				continue
			}
			planned[file] = true
			result.Plan = append(result.Plan, types.CopyEntry{Source: file, Dest: file})
		}

		deps, err := w.deps.DirectDeps(pkg)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			if !processed[dep] {
				worklist = append(worklist, dep)
			}
		}
	}

	w.logger.Info().
		Int("packages", len(result.Processed)).
		Int("files", len(result.Plan)).
		Int("pruned", len(result.Pruned)).
		Msg("Closure computed")
	return result, nil
}
