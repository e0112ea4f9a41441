package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bft-labs/petdb/internal/cliconfig"
)

const helpDescription = `
Keep a small database of pets (name and age) in a plain text file.

Highlights:
  - Interactive menu to view, add, and remove pets.
  - One pet per line ("<name> <age>"); lines that fail to load are reported, not fatal.
  - Up to 100 pets, ages 1-50.
  - Configure via file ($HOME/.petdb/config.toml), PETDB_* env, or flags.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  petdb
  petdb --file ./pets.txt list
  petdb add Rex 4
  petdb remove 0
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "petdb",
		Short:         "Keep a small database of pets in a plain text file",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &cfg, cfgPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, cfg)
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.petdb/config.toml)")
	root.PersistentFlags().StringVarP(&cfg.DataFile, "file", "f", cfg.DataFile, "pet database file")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.HistoryFile, "history-file", cfg.HistoryFile, "prompt history file (default: $HOME/.petdb/history)")
	root.PersistentFlags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "warn when the database file changes on disk during a session")

	root.AddCommand(
		newShellCmd(&cfg),
		newListCmd(&cfg),
		newAddCmd(&cfg),
		newRemoveCmd(&cfg),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log := cliconfig.Logger(zerolog.InfoLevel)
		log.Error().Err(err).Msg("petdb")
		os.Exit(1)
	}
}
