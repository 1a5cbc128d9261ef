package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/morita/chartdrill/internal/catalog"
	"github.com/morita/chartdrill/internal/config"
	"github.com/morita/chartdrill/internal/store"
	"github.com/morita/chartdrill/internal/study"
)

var rootCmd = &cobra.Command{
	Use:   "chartdrill",
	Short: "Spaced-repetition drills for chart-interpretation questions",
	Long: "Chartdrill schedules reviews of chart-interpretation quiz questions and\n" +
		"composes study sessions from your answer history.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CHARTDRILL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// env bundles everything a command needs after wiring.
type env struct {
	cfg   *config.Config
	store *store.Store
	svc   *study.Service
}

func (e *env) Close() {
	if e.store != nil {
		e.store.Close()
	}
}

// setup loads config, opens the store, loads the catalog, and builds the
// study service. Resolution order for the DB path: --db flag, config/env,
// XDG default.
func setup(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg.LogLevel)

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("create DB directory: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		st.Close()
		return nil, err
	}

	svc := study.New(cat, st.Attempts(), st.Schedules(), cfg.TargetTimes(), log)
	return &env{cfg: cfg, store: st, svc: svc}, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.Load(cfg.CatalogPath)
	}
	return catalog.Seed()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
