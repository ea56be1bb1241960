package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"ledgerq/internal/classify"
	"ledgerq/internal/config"
	"ledgerq/internal/core"
	"ledgerq/internal/ingest"
	applog "ledgerq/internal/log"
	"ledgerq/internal/query"
)

func main() {
	// .env is optional; env vars and flags win over it.
	_ = godotenv.Load()
	cfg := config.Load()

	queryText := flag.String("query", "", "Natural language question (required)")
	customerHint := flag.String("customer", "", "Customer name or identifier in the query context")
	refDate := flag.String("ref-date", "", "Reference date YYYY-MM-DD (default: latest transaction date)")
	flag.StringVar(&cfg.DataBackend, "backend", cfg.DataBackend, "Data backend: csv or sqlite")
	flag.StringVar(&cfg.TransactionsPath, "transactions", cfg.TransactionsPath, "Transactions file path")
	flag.StringVar(&cfg.ProfilesPath, "profiles", cfg.ProfilesPath, "Customer profiles file path")
	flag.StringVar(&cfg.SQLiteDBPath, "db", cfg.SQLiteDBPath, "SQLite database path")
	flag.StringVar(&cfg.RulesPath, "rules", cfg.RulesPath, "Classifier rules YAML path (default: built-in rules)")
	flag.Parse()

	logger := applog.New(cfg.LogLevel, "ledgerq")

	if *queryText == "" {
		logger.Error("Missing required -query flag")
		flag.Usage()
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	var ref core.Date
	if *refDate != "" {
		ref = core.ParseDate(*refDate)
		if ref.IsZero() {
			logger.Error("Unparseable reference date", "ref_date", *refDate)
			os.Exit(1)
		}
	}

	cls := classify.New()
	if cfg.RulesPath != "" {
		rules, err := classify.LoadRules(cfg.RulesPath)
		if err != nil {
			logger.Error("Failed to load classifier rules", "error", err, "path", cfg.RulesPath)
			os.Exit(1)
		}
		cls = classify.NewWithRules(rules)
		logger.Info("Loaded classifier rules", "path", cfg.RulesPath, "rules", len(rules))
	}

	ctx := context.Background()

	src, err := ingest.NewSource(ingest.Config{
		Backend:          cfg.DataBackend,
		TransactionsPath: cfg.TransactionsPath,
		ProfilesPath:     cfg.ProfilesPath,
		SQLitePath:       cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize data source", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if closer, ok := src.(*ingest.SQLiteSource); ok {
		defer closer.Close()
	}

	records, _, err := ingest.Prepare(ctx, src, cls, logger.Logger)
	if err != nil {
		logger.Error("Failed to load records", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}

	interp := query.NewWithCache(records, logger.WithComponent("query").Logger, cfg.CacheSize, cfg.CacheTTL)
	fmt.Println(interp.Answer(ctx, *queryText, *customerHint, ref))
}
