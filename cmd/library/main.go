package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"library/config"
)

// cli holds flag values and the state resolved before a subcommand runs.
type cli struct {
	// Global flags
	verbose    bool
	configPath string

	cfg    config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree. Each call owns fresh state.
func newRootCmd() *cobra.Command {
	c := &cli{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "library",
		Short: "In-memory library of id-tagged entries",
		Long: `library keeps an ordered, in-memory list of entries. Each entry gets
a sequential id when added; ids are never reused after removal.

Nothing is persisted: the library lives for the length of the process.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.logger, err = newLogger(cfg, c.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Read library commands from stdin",
		Long: `Starts an interactive session. Commands:
  add <text>     add an entry and print its id
  show <id>      print the entry with that id
  remove <id>    remove the entry with that id
  all            list every entry in insertion order
  help           print this list
  quit           end the session`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newREPL(c.logger, cmd.OutOrStdout(), c.cfg.Prompt)
			r.svc.Seed(c.cfg.Seed)
			return r.run(cmd.Context(), cmd.InOrStdin())
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted add/show/remove walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(c.logger, cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.AddCommand(replCmd, demoCmd)
	return rootCmd
}

func newLogger(cfg config.Config, verbose bool) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
