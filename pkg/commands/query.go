package commands

import (
	"github.com/arthur-debert/payload/pkg/closure"
	"github.com/arthur-debert/payload/pkg/config"
	"github.com/arthur-debert/payload/pkg/errors"
	"github.com/arthur-debert/payload/pkg/filter"
	"github.com/arthur-debert/payload/pkg/manifest"
)

// DepsOptions configures the deps query.
type DepsOptions struct {
	Package string
	// Direct limits the listing to depth-1 dependencies.
	Direct bool

	Manager depsManager
}

// depsManager is the slice of the package manager the deps query needs.
type depsManager interface {
	DirectDeps(pkg string) ([]string, error)
	TransitiveDeps(pkg string) ([]string, error)
}

// Deps lists the dependencies of a package, direct or transitive.
func Deps(opts DepsOptions) ([]string, error) {
	if opts.Package == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no package given")
	}

	mgr := opts.Manager
	if mgr == nil {
		detected, _, err := collaborators(nil, nil)
		if err != nil {
			return nil, err
		}
		mgr = detected
	}

	if opts.Direct {
		return mgr.DirectDeps(opts.Package)
	}
	return mgr.TransitiveDeps(opts.Package)
}

// FilesOptions configures the files query.
type FilesOptions struct {
	Package    string
	ProjectDir string
	Platform   string
	Resolver   string
	// Raw skips filter rules and prints the manifest as the package
	// manager reports it.
	Raw bool

	Config *config.Config
	Resolv manifest.Resolver
}

// Files returns the (optionally filtered) file manifest of a package.
func Files(opts FilesOptions) ([]string, error) {
	if opts.Package == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no package given")
	}

	cfg, err := loadConfig(opts.Config, opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	resolver := opts.Resolv
	if resolver == nil {
		mgr, ix, err := collaborators(nil, nil)
		if err != nil {
			return nil, err
		}
		mode, err := manifest.ParseMode(firstNonEmpty(opts.Resolver, cfg.Assemble.Resolver))
		if err != nil {
			return nil, err
		}
		resolver, err = manifest.Select(mode, mgr, ix)
		if err != nil {
			return nil, err
		}
	}

	files, err := resolver.Files(opts.Package)
	if err != nil {
		return nil, err
	}
	if opts.Raw {
		return files, nil
	}

	platform := firstNonEmpty(opts.Platform, cfg.Assemble.Platform)
	return filter.Apply(opts.Package, files, cfg.RulesFor(platform)), nil
}

// PlanOptions configures a dry closure computation without copying.
type PlanOptions struct {
	Seeds        []string
	ProjectDir   string
	Platform     string
	Resolver     string
	IncludeEmpty bool

	Config  *config.Config
	Manager depsManager
	Resolv  manifest.Resolver
}

// Plan computes the closure and returns the walk result without executing
// any copies, for callers that want to inspect what an assembly would
// touch before running it.
func Plan(opts PlanOptions) (*closure.Result, error) {
	if len(opts.Seeds) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no seed packages given")
	}

	cfg, err := loadConfig(opts.Config, opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	var deps closure.DepSource
	if opts.Manager != nil {
		deps = depSourceFunc(opts.Manager.DirectDeps)
	}

	resolver := opts.Resolv
	if deps == nil || resolver == nil {
		mgr, ix, err := collaborators(nil, nil)
		if err != nil {
			return nil, err
		}
		if deps == nil {
			deps = mgr
		}
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
	}

	walker := closure.New(closure.Options{
		Deps:         deps,
		Resolver:     resolver,
		Rules:        cfg.RulesFor(firstNonEmpty(opts.Platform, cfg.Assemble.Platform)),
		IncludeEmpty: opts.IncludeEmpty || !cfg.Assemble.SkipEmptyPackages,
	})
	return walker.Walk(opts.Seeds)
}

type depSourceFunc func(pkg string) ([]string, error)

func (f depSourceFunc) DirectDeps(pkg string) ([]string, error) { return f(pkg) }

// InstallOptions configures seed package installation.
type InstallOptions struct {
	Packages []string

	Manager installManager
}

type installManager interface {
	Install(pkgs ...string) error
}

// Install installs packages through the platform package manager.
func Install(opts InstallOptions) error {
	if len(opts.Packages) == 0 {
		return errors.New(errors.ErrInvalidInput, "no packages given")
	}

	mgr := opts.Manager
	if mgr == nil {
		detected, _, err := collaborators(nil, nil)
		if err != nil {
			return err
		}
		mgr = detected
	}
	return mgr.Install(opts.Packages...)
}
