package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/hammer/internal/config"
	"github.com/wizzomafizzo/hammer/internal/logging"
	"github.com/wizzomafizzo/hammer/internal/storage"
)

// environment holds the process-level dependencies commands run against.
type environment struct {
	fs        afero.Fs
	lookupEnv func(string) (string, bool)
	// logWriter overrides the rotating log file when set
	logWriter io.Writer
}

func defaultEnvironment() *environment {
	return &environment{
		fs:        afero.NewOsFs(),
		lookupEnv: os.LookupEnv,
	}
}

// createNewRootCommand creates the main root command backed by the real OS.
func createNewRootCommand() *cobra.Command {
	return newRootCommand(defaultEnvironment())
}

// newRootCommand creates the root command. Run without a subcommand it
// initializes the data directory and prints nothing.
func newRootCommand(env *environment) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hammer",
		Short:         "Personal task and time tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := initialize(cmd, env)
			return err
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultPath(), "Path to config file")

	rootCmd.AddCommand(
		createInitCommand(env),
		createStatusCommand(env),
		createConfigCommand(env),
	)

	return rootCmd
}

// loadConfigFromCommand extracts the config path and loads the config
func loadConfigFromCommand(cmd *cobra.Command, env *environment) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(env.fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newManager(env *environment) *storage.Manager {
	return storage.New(env.fs, storage.WithLookupEnv(env.lookupEnv))
}

// setup checks HOME, loads config and attaches a logger to the command
// context. The returned closer is nil when there is no log file. HOME is resolved before anything touches the filesystem. A log
// file that cannot be set up degrades to warnings on stderr instead of
// failing the run.
func setup(cmd *cobra.Command, env *environment) (context.Context, *storage.Manager, io.Closer, error) {
	manager := newManager(env)
	if _, err := manager.Home(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize data directory: %w", err)
	}

	cfg, err := loadConfigFromCommand(cmd, env)
	if err != nil {
		return nil, nil, nil, err
	}

	level, err := cfg.Logging.ZerologLevel()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	ctx, closer, err := logging.New(cmd.Context(), env.fs, logging.Config{
		Writer:     env.logWriter,
		Path:       cfg.Logging.Path,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Level:      level,
	})
	if err != nil {
		ctx = logging.NewFallback(cmd.Context(), cmd.ErrOrStderr())
		logging.Get(ctx).Warn().Err(err).Msg("log file unavailable, logging warnings to stderr")
		return ctx, manager, nil, nil
	}

	return ctx, manager, closer, nil
}

// initialize ensures the data directory and tracking files exist
func initialize(cmd *cobra.Command, env *environment) (*storage.Layout, error) {
	ctx, manager, closer, err := setup(cmd, env)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	layout, err := manager.Init(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize data directory: %w", err)
	}
	return layout, nil
}
