package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/cli/task"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/logging"
	"github.com/thenoetrevino/lista/internal/tui"
)

// rootOptions are the persistent flags shared by every command
type rootOptions struct {
	file       string
	backupFile string
	configPath string

	// logFile is opened by the pre-run hook and closed after execution
	logFile io.Closer
}

// closeLog closes the log file opened for this run, if any
func (o *rootOptions) closeLog() error {
	if o.logFile == nil {
		return nil
	}
	err := o.logFile.Close()
	o.logFile = nil
	return err
}

// NewRootCmd builds the lista command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "lista",
		Short: "lista - a to-do list for the terminal",
		Long: `lista keeps a to-do list in a plain text file, one task per line.

Run without arguments to open the interactive list, or use the
subcommands to script it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			// Tests inject their own app
			if _, err := cli.GetCLIFromContext(ctx); err == nil {
				return nil
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
				return cli.Exit(cli.ExitDataErr, err)
			}

			styles.Init(cfg.ColorScheme)

			// Logging is best effort; a read-only home still gets a working CLI
			if closer, err := logging.Init(); err == nil {
				opts.logFile = closer
			}

			a := app.New(cfg, app.WithLogger(logging.Logger))
			a.Logger.Debug("starting", "command", cmd.CommandPath(), "data_file", cfg.DataFile)
			cmd.SetContext(cli.WithApp(ctx, a))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.file, "file", "", "task file (overrides data_file)")
	root.PersistentFlags().StringVar(&opts.backupFile, "backup-file", "", "backup file (overrides backup_file)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/lista/config.yaml)")

	root.AddCommand(task.Commands()...)
	root.AddCommand(tuiCmd(), configCmd(opts))

	return root
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	return execute(context.Background(), &rootOptions{}, os.Args[1:])
}

func execute(ctx context.Context, opts *rootOptions, args []string) int {
	root := newRootCmd(opts)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)

	// Cobra skips post-run hooks when a command fails, so the log closes here
	if closeErr := opts.closeLog(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: closing log: %v\n", closeErr)
	}

	// Failures from commands are already reported; cobra's own are not
	var exitErr *cli.ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'lista --help' for usage.")
	}
	return cli.ExitCode(err)
}

// loadConfig reads the config file and applies the flag overrides
func loadConfig(opts *rootOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.file != "" {
		cfg.DataFile = opts.file
	}
	if opts.backupFile != "" {
		cfg.BackupFile = opts.backupFile
	}
	return cfg, nil
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
}

func runTUI(cmd *cobra.Command) error {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}
	if err := tui.Run(cmd.Context(), cliInstance.App); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		return cli.Exit(cli.ExitError, err)
	}
	return nil
}

func configCmd(opts *rootOptions) *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the config file location and the settings in effect.

With --init, write the settings to the config file so they can be edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return err
			}
			cfg := cliInstance.App.Config

			path := opts.configPath
			if path == "" {
				path, err = config.Path()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
				return cli.Exit(cli.ExitError, err)
			}

			if initFile {
				if err := cfg.SaveTo(path); err != nil {
					fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
					return cli.Exit(cli.ExitError, err)
				}
				fmt.Printf("✓ Wrote %s\n", path)
				return nil
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return cli.Exit(cli.ExitError, err)
			}
			fmt.Printf("# %s\n%s", path, data)
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "write the current settings to the config file")
	return cmd
}
