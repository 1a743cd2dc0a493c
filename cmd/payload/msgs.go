package payload

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Assemble package payloads from dependency closures"
	MsgAssembleShort   = "Copy the dependency closure of packages into a prefix"
	MsgDepsShort       = "List the dependencies of a package"
	MsgFilesShort      = "List the files a package installs, after filtering"
	MsgInstallShort    = "Install packages through the platform package manager"
	MsgGenConfigShort  = "Generate a default configuration file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice     = "DRY RUN MODE - No files were copied"
	MsgAssembleDone     = "Assembled %d packages: %d files copied, %d already present, into %s"
	MsgAssemblePruned   = "%d packages pruned (empty after filtering)"
	MsgInstallDone      = "Installed %d package(s)"
	MsgGenConfigWritten = "Wrote payload.toml"

	// Error messages
	MsgErrAssemble  = "failed to assemble payload: %w"
	MsgErrDeps      = "failed to query dependencies: %w"
	MsgErrFiles     = "failed to query files: %w"
	MsgErrInstall   = "failed to install packages: %w"
	MsgErrGenConfig = "failed to write config: %w"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun       = "Preview the copy plan without writing any files"
	MsgFlagFormat       = "Output format: auto, term, text, or json"
	MsgFlagPrefix       = "Destination prefix to copy the payload into"
	MsgFlagSourceRoot   = "Root the package manager installed files under"
	MsgFlagPlatform     = "Filter rule platform to apply"
	MsgFlagResolver     = "Manifest resolver: auto, direct, or indexed"
	MsgFlagProjectDir   = "Directory to search for the project config file"
	MsgFlagIncludeEmpty = "Keep descending through packages whose filtered manifest is empty"
	MsgFlagDirect       = "List only direct (depth 1) dependencies"
	MsgFlagRaw          = "Skip filter rules and print the manifest as reported"
	MsgFlagWrite        = "Write config to ./payload.toml instead of stdout"
)

// Long messages (multi-line)
const (
	MsgRootLong = `payload computes the transitive dependency closure of a set of packages,
resolves the files each package installs, filters out development-only
files via configurable rules, and copies what survives into a target
prefix. Re-running is safe: files already present are never overwritten.`

	MsgAssembleLong = `Assemble walks the dependency graph starting from the given seed
packages, collects every file the closure installs, applies the filter
rules for the configured platform, and copies the surviving files into
the destination prefix, preserving their path relative to the source
root.

Packages whose manifest is empty after filtering are pruned: their own
dependencies are not followed, on the assumption that a package
contributing nothing ships nothing worth chasing. Use --include-empty
to descend through them anyway.`

	MsgDepsLong = `Deps prints the transitive dependencies of a package, one per line.
With --direct only depth-1 dependencies are listed.`

	MsgFilesLong = `Files prints the file manifest of a single package after the filter
rules for the configured platform have been applied. Use --raw to see
the manifest exactly as the package manager reports it.`

	MsgInstallLong = `Install hands the given packages to the platform package manager,
skipping packages that are already installed.`

	MsgGenConfigLong = `Output the default configuration, with every value commented out, to
stdout or to ./payload.toml with -w. Uncomment and edit the values you
want to override.`
)

// Examples
const (
	MsgAssembleExample = `  # Copy the gtk3 runtime closure into ./staging
  payload assemble --prefix ./staging mingw-w64-x86_64-gtk3

  # Preview without writing
  payload assemble --dry-run --prefix ./staging mingw-w64-x86_64-gtk3

  # Multiple seeds, explicit source root
  payload assemble -p /opt/app --source-root /msys64 gtk3 librsvg`

	MsgDepsExample = `  payload deps mingw-w64-x86_64-gtk3
  payload deps --direct mingw-w64-x86_64-gtk3
  payload deps --format json mingw-w64-x86_64-gtk3`

	MsgFilesExample = `  payload files mingw-w64-x86_64-glib2
  payload files --raw mingw-w64-x86_64-glib2`

	MsgInstallExample = `  payload install mingw-w64-x86_64-gtk3 mingw-w64-x86_64-librsvg`

	MsgGenConfigExample = `  payload gen-config                # Output to stdout
  payload gen-config -w             # Write to ./payload.toml`
)
