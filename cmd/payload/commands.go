package payload

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/payload/internal/version"
	"github.com/arthur-debert/payload/pkg/commands"
	"github.com/arthur-debert/payload/pkg/config"
	"github.com/arthur-debert/payload/pkg/ui"
)

// newPrinter builds a Printer from the root --format flag, falling back to
// plain text when the flag value is unparsable.
func newPrinter(cmd *cobra.Command) *ui.Printer {
	raw, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := ui.ParseFormat(raw)
	if err != nil {
		format = ui.FormatText
	}
	return ui.NewPrinter(format)
}

func newAssembleCmd() *cobra.Command {
	var (
		prefix       string
		sourceRoot   string
		platform     string
		resolver     string
		projectDir   string
		includeEmpty bool
	)

	cmd := &cobra.Command{
		Use:     "assemble <package>...",
		Short:   MsgAssembleShort,
		Long:    MsgAssembleLong,
		Example: MsgAssembleExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			log.Info().
				Strs("seeds", args).
				Str("prefix", prefix).
				Bool("dry_run", dryRun).
				Msg("Assembling payload")

			result, err := commands.Assemble(commands.AssembleOptions{
				Seeds:        args,
				ProjectDir:   projectDir,
				Prefix:       prefix,
				SourceRoot:   sourceRoot,
				Platform:     platform,
				Resolver:     resolver,
				IncludeEmpty: includeEmpty,
				DryRun:       dryRun,
			})
			if err != nil {
				return fmt.Errorf(MsgErrAssemble, err)
			}

			p := newPrinter(cmd)
			if p.Format() == ui.FormatJSON {
				return p.JSON(result)
			}
			if result.DryRun {
				p.Plain(MsgDryRunNotice)
			}
			p.Success(MsgAssembleDone,
				result.Packages, result.Copied, result.Skipped, result.Prefix)
			if result.Pruned > 0 {
				p.Info(MsgAssemblePruned, result.Pruned)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", MsgFlagPrefix)
	cmd.Flags().StringVar(&sourceRoot, "source-root", "", MsgFlagSourceRoot)
	cmd.Flags().StringVar(&platform, "platform", "", MsgFlagPlatform)
	cmd.Flags().StringVar(&resolver, "resolver", "", MsgFlagResolver)
	cmd.Flags().StringVarP(&projectDir, "project-dir", "C", "", MsgFlagProjectDir)
	cmd.Flags().BoolVar(&includeEmpty, "include-empty", false, MsgFlagIncludeEmpty)

	return cmd
}

func newDepsCmd() *cobra.Command {
	var direct bool

	cmd := &cobra.Command{
		Use:     "deps <package>",
		Short:   MsgDepsShort,
		Long:    MsgDepsLong,
		Example: MsgDepsExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := commands.Deps(commands.DepsOptions{
				Package: args[0],
				Direct:  direct,
			})
			if err != nil {
				return fmt.Errorf(MsgErrDeps, err)
			}

			p := newPrinter(cmd)
			if p.Format() == ui.FormatJSON {
				return p.JSON(deps)
			}
			p.Plain("%s", ui.RenderPackageList(args[0], deps, p.Format()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&direct, "direct", false, MsgFlagDirect)

	return cmd
}

func newFilesCmd() *cobra.Command {
	var (
		platform   string
		resolver   string
		projectDir string
		raw        bool
	)

	cmd := &cobra.Command{
		Use:     "files <package>",
		Short:   MsgFilesShort,
		Long:    MsgFilesLong,
		Example: MsgFilesExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := commands.Files(commands.FilesOptions{
				Package:    args[0],
				ProjectDir: projectDir,
				Platform:   platform,
				Resolver:   resolver,
				Raw:        raw,
			})
			if err != nil {
				return fmt.Errorf(MsgErrFiles, err)
			}

			p := newPrinter(cmd)
			if p.Format() == ui.FormatJSON {
				return p.JSON(files)
			}
			p.Plain("%s", ui.RenderFileList(files, p.Format()))
			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", MsgFlagPlatform)
	cmd.Flags().StringVar(&resolver, "resolver", "", MsgFlagResolver)
	cmd.Flags().StringVarP(&projectDir, "project-dir", "C", "", MsgFlagProjectDir)
	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)

	return cmd
}

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "install <package>...",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := commands.Install(commands.InstallOptions{Packages: args}); err != nil {
				return fmt.Errorf(MsgErrInstall, err)
			}
			newPrinter(cmd).Success(MsgInstallDone, len(args))
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}
			if err := os.WriteFile("payload.toml", []byte(content), 0644); err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}
			newPrinter(cmd).Success(MsgGenConfigWritten)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			for _, c := range root.Commands() {
				if c.Name() == "help" {
					c.Run(c, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "payload version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
