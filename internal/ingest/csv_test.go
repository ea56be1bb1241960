package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ledgerq/internal/classify"
	"ledgerq/internal/core"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSniffDelimiter(t *testing.T) {
	cases := []struct {
		header string
		want   rune
	}{
		{"a,b,c", ','},
		{"a;b;c", ';'},
		{"a\tb\tc", '\t'},
		{"a|b|c", '|'},
		{"a;b,c,d", ','},
		{"single", ','},
	}
	for i, tc := range cases {
		if got := sniffDelimiter(tc.header); got != tc.want {
			t.Fatalf("case %d (%q): got %q, want %q", i, tc.header, got, tc.want)
		}
	}
}

func TestCSVSourceComma(t *testing.T) {
	dir := t.TempDir()
	txPath := writeFile(t, dir, "tx.csv",
		"trx_date,amount,debit_credit,detail_information,subheader,notes,tags,category_by_system,cif\n"+
			"2024-02-01,500,DEBIT,supermarket run,,weekly,food,1,123\n"+
			"2024-02-05,2000,CREDIT,salary,,,,,123\n"+
			"bad-date,oops,DEBIT,misc,,,,,123\n")

	src := NewCSVSource(txPath, "")
	records, err := src.Transactions(context.Background())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].CustomerID != "123" || records[0].Date.String() != "2024-02-01" {
		t.Fatalf("got %+v", records[0])
	}
	if records[0].Direction != core.Debit || records[1].Direction != core.Credit {
		t.Fatalf("directions: %s, %s", records[0].Direction, records[1].Direction)
	}
	if !records[2].Date.IsZero() || records[2].Amount.Valid {
		t.Fatalf("unparseable values must come through as missing: %+v", records[2])
	}
}

func TestCSVSourceSemicolon(t *testing.T) {
	dir := t.TempDir()
	txPath := writeFile(t, dir, "tx.csv",
		"trx_date;amount;debit_credit;detail_information;subheader;notes;tags;category_by_system;cif\n"+
			"2024-02-01;500;DEBIT;supermarket;;;;;123\n")
	src := NewCSVSource(txPath, "")
	records, err := src.Transactions(context.Background())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(records) != 1 || records[0].Detail != "supermarket" {
		t.Fatalf("got %+v", records)
	}
}

func TestCSVSourceProfiles(t *testing.T) {
	dir := t.TempDir()
	profPath := writeFile(t, dir, "profiles.csv",
		"cif,customer_name,age_group,income_bracket,region,account_type,risk_profile\n"+
			"123,Budi Santoso,25-34,mid,Jakarta,savings,low\n")
	src := NewCSVSource("", profPath)
	profiles, err := src.Profiles(context.Background())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "Budi Santoso" || profiles[0].Region != "Jakarta" {
		t.Fatalf("got %+v", profiles)
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), "")
	if _, err := src.Transactions(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestPrepare(t *testing.T) {
	dir := t.TempDir()
	txPath := writeFile(t, dir, "tx.csv",
		"trx_date,amount,debit_credit,detail_information,subheader,notes,tags,category_by_system,cif\n"+
			"2024-02-01,500,DEBIT,supermarket,,,,,123\n"+
			"2024-02-02,45,DEBIT,starbucks,,,,,123\n"+
			"2024-02-03,80,DEBIT,unlabeled,,,,2,123\n")
	profPath := writeFile(t, dir, "profiles.csv",
		"cif,customer_name,age_group,income_bracket,region,account_type,risk_profile\n"+
			"123,Budi Santoso,25-34,mid,Jakarta,savings,low\n")

	src, err := NewSource(Config{Backend: CSVBackend, TransactionsPath: txPath, ProfilesPath: profPath})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	records, profiles, err := Prepare(context.Background(), src, classify.New(), nil)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(records) != 3 || len(profiles) != 1 {
		t.Fatalf("got %d records, %d profiles", len(records), len(profiles))
	}
	for i, want := range []core.Category{core.Groceries, core.Coffee, core.Restaurants} {
		if records[i].Category != want {
			t.Fatalf("record %d: got %s, want %s", i, records[i].Category, want)
		}
	}
	if records[0].CustomerName != "Budi Santoso" {
		t.Fatalf("profile join failed: %+v", records[0])
	}
}

func TestNewSourceUnknownBackend(t *testing.T) {
	if _, err := NewSource(Config{Backend: "sheets"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
