package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/petdb/internal/adapters/fs"
	logAdapter "github.com/bft-labs/petdb/internal/adapters/log"
	"github.com/bft-labs/petdb/internal/app"
	"github.com/bft-labs/petdb/internal/cliconfig"
	"github.com/bft-labs/petdb/internal/ports"
	"github.com/bft-labs/petdb/internal/shell"
)

// loadConfig applies the config file, then PETDB_* env, on top of defaults.
// Explicitly set flags always win.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgPath != "" && !cliconfig.FileExists(cfgPath) {
		return fmt.Errorf("config file %s not found", cfgPath)
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(cfg, fc, changed)
	}

	cliconfig.ApplyEnvConfig(cfg, changed)

	if cfg.HistoryFile == "" {
		cfg.HistoryFile = cliconfig.DefaultHistoryPath()
	}
	return cfg.Validate()
}

// openDatabase builds the logger and database for cfg and loads the data file.
func openDatabase(ctx context.Context, cfg cliconfig.Config) (*app.Database, *logAdapter.ZerologAdapter, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	logger := logAdapter.NewZerologAdapterWithLogger(cliconfig.Logger(level))
	logger.Debug("configuration",
		ports.String("data_file", cfg.DataFile),
		ports.String("history_file", cfg.HistoryFile),
		ports.String("log_level", cfg.LogLevel),
		ports.Bool("watch", cfg.Watch),
	)

	db := app.NewDatabase(fs.NewTextFile(cfg.DataFile), logger)
	report, err := db.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !report.OK() {
		logger.Warn(fmt.Sprintf("%d line(s) in %s could not be loaded", len(report.Errors), cfg.DataFile))
	}
	return db, logger, nil
}

func runShell(cmd *cobra.Command, cfg cliconfig.Config) error {
	ctx := cmd.Context()
	db, logger, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}

	rl, err := shell.NewReadline(cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	opts := []shell.Option{
		shell.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		shell.WithLogger(logger),
	}
	if cfg.Watch {
		opts = append(opts, shell.WithWatcher(fs.NewWatcher(cfg.DataFile, 0, logger)))
	}
	return shell.New(db, rl, opts...).Run(ctx)
}

func newShellCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, *cfg)
		},
	}
}

func newListCmd(cfg *cliconfig.Config) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print all pets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDatabase(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			shell.Render(cmd.OutOrStdout(), db.List(), format)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", shell.FormatTable, "output format (table, plain)")
	return cmd
}

func newAddCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME AGE",
		Short: "Add a pet and save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, _, err := openDatabase(ctx, *cfg)
			if err != nil {
				return err
			}
			id, err := db.Add(args[0] + " " + args[1])
			if err != nil {
				return err
			}
			if err := db.Save(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s with ID %d.\n", args[0], id)
			return nil
		},
	}
}

func newRemoveCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove the pet with the given ID and save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse ID %q: %w", args[0], err)
			}
			ctx := cmd.Context()
			db, _, err := openDatabase(ctx, *cfg)
			if err != nil {
				return err
			}
			if err := db.Remove(id); err != nil {
				return err
			}
			if err := db.Save(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pet at ID %d is removed.\n", id)
			return nil
		},
	}
}
