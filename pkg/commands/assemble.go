// Package commands implements the operations behind the CLI commands,
// wiring configuration, the package manager, the closure walker, and the
// copy executor together. The CLI layer stays a thin cobra shell.
package commands

import (
	"github.com/arthur-debert/payload/pkg/closure"
	"github.com/arthur-debert/payload/pkg/config"
	"github.com/arthur-debert/payload/pkg/errors"
	"github.com/arthur-debert/payload/pkg/executor"
	"github.com/arthur-debert/payload/pkg/index"
	"github.com/arthur-debert/payload/pkg/logging"
	"github.com/arthur-debert/payload/pkg/manifest"
	"github.com/arthur-debert/payload/pkg/pkgmgr"
	"github.com/arthur-debert/payload/pkg/types"
)

// AssembleOptions configures the assemble operation. Zero-value
// collaborator fields are defaulted to production implementations, which
// lets tests inject fakes.
type AssembleOptions struct {
	// Seeds are the packages whose closure is assembled.
	Seeds []string

	// ProjectDir is where the configuration document is discovered.
	ProjectDir string

	// Prefix is the destination root. Overrides the configured value.
	Prefix string

	// SourceRoot overrides the configured package-manager install root.
	SourceRoot string

	// Platform overrides the configured filter platform.
	Platform string

	// Resolver overrides the configured manifest resolution mode.
	Resolver string

	// IncludeEmpty disables the empty-manifest short-circuit regardless of
	// configuration.
	IncludeEmpty bool

	// DryRun previews the copy plan without writing.
	DryRun bool

	// Injected collaborators, defaulted when nil.
	Config   *config.Config
	Manager  pkgmgr.Manager
	Indexer  *index.Indexer
	Resolv   manifest.Resolver
	FS       types.FS
}

// AssembleResult summarizes an assembly run.
type AssembleResult struct {
	Packages int    `json:"packages"`
	Pruned   int    `json:"pruned"`
	PlanSize int    `json:"plan_size"`
	Copied   int    `json:"copied"`
	Skipped  int    `json:"skipped"`
	Prefix   string `json:"prefix"`
	DryRun   bool   `json:"dry_run,omitempty"`
}

// Assemble computes the dependency closure of the seed set and copies the
// filtered payload into the destination prefix. The first failure of any
// collaborator aborts the run; nothing is retried.
func Assemble(opts AssembleOptions) (*AssembleResult, error) {
	logger := logging.GetLogger("commands.assemble")

	if len(opts.Seeds) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no seed packages given")
	}

	cfg, err := loadConfig(opts.Config, opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	prefix := firstNonEmpty(opts.Prefix, cfg.Assemble.Prefix)
	if prefix == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"no destination prefix: pass --prefix or set assemble.prefix")
	}
	sourceRoot := firstNonEmpty(opts.SourceRoot, cfg.Assemble.SourceRoot, "/")
	platform := firstNonEmpty(opts.Platform, cfg.Assemble.Platform)

	mgr, ix, err := collaborators(opts.Manager, opts.Indexer)
	if err != nil {
		return nil, err
	}

	resolver := opts.Resolv
	if resolver == nil {
		mode, err := manifest.ParseMode(firstNonEmpty(opts.Resolver, cfg.Assemble.Resolver))
		if err != nil {
			return nil, err
		}
		resolver, err = manifest.Select(mode, mgr, ix)
		if err != nil {
			return nil, err
		}
	}

	walker := closure.New(closure.Options{
		Deps:         mgr,
		Resolver:     resolver,
		Rules:        cfg.RulesFor(platform),
		IncludeEmpty: opts.IncludeEmpty || !cfg.Assemble.SkipEmptyPackages,
	})

	walkResult, err := walker.Walk(opts.Seeds)
	if err != nil {
		return nil, err
	}

	exec := executor.New(executor.Options{FS: opts.FS, DryRun: opts.DryRun})
	runResult, err := exec.Run(walkResult.Plan, sourceRoot, prefix)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("packages", len(walkResult.Processed)).
		Int("copied", runResult.Copied).
		Int("skipped", runResult.Skipped).
		Str("prefix", prefix).
		Msg("Assembly complete")

	return &AssembleResult{
		Packages: len(walkResult.Processed),
		Pruned:   len(walkResult.Pruned),
		PlanSize: len(walkResult.Plan),
		Copied:   runResult.Copied,
		Skipped:  runResult.Skipped,
		Prefix:   prefix,
		DryRun:   opts.DryRun,
	}, nil
}

func loadConfig(cfg *config.Config, projectDir string) (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	return config.Load(projectDir)
}

func collaborators(mgr pkgmgr.Manager, ix *index.Indexer) (pkgmgr.Manager, *index.Indexer, error) {
	if mgr != nil && ix != nil {
		return mgr, ix, nil
	}
	runner := pkgmgr.NewRunner()
	if mgr == nil {
		detected, err := pkgmgr.Detect(runner)
		if err != nil {
			return nil, nil, err
		}
		mgr = detected
	}
	if ix == nil {
		ix = index.New(runner)
	}
	return mgr, ix, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
