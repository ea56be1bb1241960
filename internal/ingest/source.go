// Package ingest loads transaction and profile records from a data
// source, joins profile attributes onto transactions and classifies
// every row. The query pipeline downstream treats the result as an
// immutable snapshot.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ledgerq/internal/classify"
	"ledgerq/internal/core"
)

const (
	CSVBackend    = "csv"
	SQLiteBackend = "sqlite"
)

// Source supplies raw records. Parsing inside a source is lenient:
// a bad date or amount yields a missing value on the row, never an
// error.
type Source interface {
	Transactions(ctx context.Context) ([]core.Transaction, error)
	Profiles(ctx context.Context) ([]core.CustomerProfile, error)
}

// Config selects and parameterizes a source.
type Config struct {
	Backend          string
	TransactionsPath string
	ProfilesPath     string
	SQLitePath       string
}

// NewSource creates the source named by cfg.Backend.
func NewSource(cfg Config) (Source, error) {
	switch cfg.Backend {
	case CSVBackend:
		return NewCSVSource(cfg.TransactionsPath, cfg.ProfilesPath), nil
	case SQLiteBackend:
		return NewSQLiteSource(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Backend)
	}
}

// Prepare loads both collections, joins customer names onto the
// transactions and classifies every row. Classification is a pure
// per-record function, so rows are classified in parallel.
func Prepare(ctx context.Context, src Source, cls *classify.Classifier, logger *slog.Logger) ([]core.Transaction, []core.CustomerProfile, error) {
	if logger == nil {
		logger = slog.Default()
	}

	records, err := src.Transactions(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load transactions: %w", err)
	}
	profiles, err := src.Profiles(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load profiles: %w", err)
	}

	byID := make(map[string]core.CustomerProfile, len(profiles))
	for _, p := range profiles {
		byID[p.CustomerID] = p
	}
	for i := range records {
		if p, ok := byID[records[i].CustomerID]; ok {
			records[i].CustomerName = p.Name
		}
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range records {
		i := i
		g.Go(func() error {
			records[i].Category = cls.Classify(records[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	logger.InfoContext(ctx, "snapshot prepared",
		"transactions", len(records),
		"profiles", len(profiles))
	return records, profiles, nil
}
