// Package cli implements the rasterfx command-line interface.
//
// # Commands
//
//   - menu: load an image, pick a transform from the numbered menu, view or save it
//   - apply: run a chain of transforms on one file non-interactively
//   - batch: run a chain of transforms over every image in a directory
//   - list: print the transform catalog
//
// All commands accept --config (TOML, see package config) and --verbose.
// The logger and the loaded config travel through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvr-ai/rasterfx/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. main calls
// it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the rasterfx CLI. Errors are printed to stderr and returned.
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute() error {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, "%v", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
		logFile    io.Closer
	)

	root := &cobra.Command{
		Use:           "rasterfx",
		Short:         "rasterfx applies pixel transforms to images",
		Long:          `rasterfx loads an image, applies one of a fixed set of pixel transforms (filters, flips, rotation, cartoon edges, scaling, thresholding) and shows or saves the result.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			logger, closer, err := openLogger(cmd.ErrOrStderr(), cfg.Log, verbose)
			if err != nil {
				return err
			}
			logFile = closer
			logger.Debug("config loaded", "path", configPath, "out", cfg.Output.Dir, "format", cfg.Output.Format)

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile == nil {
				return nil
			}
			return logFile.Close()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("rasterfx %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to a TOML config file")

	root.AddCommand(newMenuCmd())
	root.AddCommand(newApplyCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newListCmd())

	return root
}
