package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/mathcards/internal/config"
	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathcards",
	Short: "Addition and subtraction flash cards",
	Long:  "MathCards: terminal flash cards for practising addition and subtraction against a quiz service.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHCARDS_DB env var)")
	rootCmd.PersistentFlags().String("api", "", "Quiz service base URL (overrides MATHCARDS_API_URL env var)")
	rootCmd.PersistentFlags().String("lang", "", "Interface language: es, en or ja (overrides MATHCARDS_LANG env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file")
	rootCmd.Flags().String("resume", "", "Re-attach to a running quiz session by id")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration with command-line flags taking
// priority over every other source.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{ConfigPath: path})
	if err != nil {
		return config.Config{}, err
	}

	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DBPath = v
	}
	if v, _ := cmd.Flags().GetString("api"); v != "" {
		cfg.APIBaseURL = v
	}
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		cfg.Language = v
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openDB opens the database at cfg.DBPath, creating its directory.
func openDB(cfg config.Config) (*store.Store, error) {
	if err := config.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// openStore opens the database and loads the stats history.
func openStore(ctx context.Context, cfg config.Config) (*store.Store, *store.StatsStore, error) {
	st, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	stats := store.NewStatsStore(st)
	stats.Load(ctx)
	return st, stats, nil
}

// resolveLanguage returns the language to display. An explicit choice is
// persisted; otherwise the saved preference applies.
func resolveLanguage(ctx context.Context, cfg config.Config, kv store.KV) string {
	if cfg.Language == "" {
		return store.LoadLanguage(ctx, kv, i18n.Default)
	}
	if err := store.SaveLanguage(ctx, kv, cfg.Language); err != nil {
		warn("Could not save language preference:", err)
	}
	return cfg.Language
}
