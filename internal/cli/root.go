package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the mazepath command tree.
//
// Before any subcommand runs, settings are resolved: .env files, then the
// --config TOML file, then MAZEPATH_* environment overrides. --verbose forces
// debug logging. The logger and config are attached to the command context.
func NewRootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
		envFiles   []string
	)

	root := &cobra.Command{
		Use:          "mazepath",
		Short:        "mazepath solves text mazes with Dijkstra's algorithm",
		Long:         `mazepath reduces a text maze to a graph of decision points, finds the shortest route from the start (O) to the end (X) and draws it with '+'.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(envFiles...); err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.ApplyEnv(nil); err != nil {
				return err
			}
			level, err := cfg.LogLevel()
			if err != nil {
				return err
			}
			if verbose {
				level = charmlog.DebugLevel
			}

			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mazepath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newGraphCmd())

	return root
}

// Execute runs the mazepath CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
