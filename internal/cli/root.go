package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/fsworkspace"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/logger"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/workspacefinder"
	"github.com/ArcInstitute/bridge-rna-designer/internal/ui/tui"
)

type globalFlags struct {
	debug   bool
	verbose bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "bridgerna",
		Short:        "bridgerna: design bridge RNAs for programmable recombination",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: g.debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                g.debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging to .bridgerna/logs/bridgerna.log")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "also log warnings and errors to stderr")

	cmd.AddCommand(
		designCmd(g),
		batchCmd(g),
		designsCmd(g),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// startLogging installs the file logger under root (when known) and returns the
// logger use cases should receive plus its cleanup.
func startLogging(g *globalFlags, root string, errOut io.Writer) (*slog.Logger, func()) {
	var console io.Writer
	if g.verbose {
		console = errOut
	}

	if root == "" {
		if console == nil {
			return logger.L(), func() {}
		}
		return logger.Console(console, g.debug), func() {}
	}

	cleanup, err := logger.Setup(logger.Config{
		Root:    root,
		Debug:   g.debug,
		Console: console,
	})
	if err != nil {
		if console != nil {
			return logger.Console(console, g.debug), func() {}
		}
		return logger.L(), func() {}
	}
	return logger.L(), func() { _ = cleanup() }
}
