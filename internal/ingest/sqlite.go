package ingest

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"ledgerq/internal/core"
)

// SQLiteSource reads the same record shape from a caller-provided
// SQLite file. The database is only ever read; columns mirror the
// delimited-file headers so both sources feed the pipeline
// identically.
type SQLiteSource struct {
	db *sql.DB
}

func NewSQLiteSource(dbPath string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

func (s *SQLiteSource) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteSource) Transactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT cif, trx_date, amount, debit_credit,
		       detail_information, subheader, notes, tags, category_by_system
		FROM transactions`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var records []core.Transaction
	for rows.Next() {
		var cif, date, amount, dir, detail, subheader, notes, tags, code sql.NullString
		if err := rows.Scan(&cif, &date, &amount, &dir, &detail, &subheader, &notes, &tags, &code); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		records = append(records, core.Transaction{
			CustomerID: cif.String,
			Date:       core.ParseDate(date.String),
			Amount:     core.ParseAmount(amount.String),
			Direction:  core.ParseDirection(dir.String),
			Detail:     detail.String,
			Subheader:  subheader.String,
			Notes:      notes.String,
			Tags:       tags.String,
			SystemCode: code.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return records, nil
}

func (s *SQLiteSource) Profiles(ctx context.Context) ([]core.CustomerProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT cif, customer_name, age_group, income_bracket,
		       region, account_type, risk_profile
		FROM customer_profiles`)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []core.CustomerProfile
	for rows.Next() {
		var cif, name, age, income, region, account, risk sql.NullString
		if err := rows.Scan(&cif, &name, &age, &income, &region, &account, &risk); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, core.CustomerProfile{
			CustomerID:    cif.String,
			Name:          name.String,
			AgeGroup:      age.String,
			IncomeBracket: income.String,
			Region:        region.String,
			AccountType:   account.String,
			RiskProfile:   risk.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return profiles, nil
}
