package timeframe

import (
	"testing"

	"ledgerq/internal/core"
)

func TestResolvePatterns(t *testing.T) {
	ref := core.NewDate(2024, 3, 31)
	cases := []struct {
		text  string
		start string
		end   string
	}{
		{"spending in the last 3 months", "2024-01-01", "2024-03-31"},
		{"last 1 month", "2024-03-01", "2024-03-31"},
		{"how much did I spend last month", "2024-02-01", "2024-02-29"},
		{"summary this year", "2024-01-01", "2024-03-31"},
		{"income year to date", "2024-01-01", "2024-03-31"},
		{"ytd savings", "2024-01-01", "2024-03-31"},
		{"spend in June 2023", "2023-06-01", "2023-06-30"},
		{"February 2024 groceries", "2024-02-01", "2024-02-29"},
		// 2024-03-31 is a Sunday; the last completed week is Mar 18-24.
		{"what happened last week", "2024-03-18", "2024-03-24"},
		{"how much did I spend on coffee", "2024-03-01", "2024-03-31"},
		{"", "2024-03-01", "2024-03-31"},
	}
	for i, tc := range cases {
		r := Resolve(tc.text, ref)
		if r.Start.String() != tc.start || r.End.String() != tc.end {
			t.Fatalf("case %d (%q): got [%s, %s], want [%s, %s]",
				i, tc.text, r.Start, r.End, tc.start, tc.end)
		}
	}
}

func TestResolvePrecedence(t *testing.T) {
	ref := core.NewDate(2024, 3, 15)
	// "last 2 months" must win over the trailing "this year".
	r := Resolve("last 2 months of this year", ref)
	if r.Start.String() != "2024-02-01" || r.End.String() != "2024-03-31" {
		t.Fatalf("got [%s, %s]", r.Start, r.End)
	}
	// "last month" must win over a month-year mention.
	r = Resolve("last month vs June 2023", ref)
	if r.Start.String() != "2024-02-01" || r.End.String() != "2024-02-29" {
		t.Fatalf("got [%s, %s]", r.Start, r.End)
	}
}

func TestResolveCrossYear(t *testing.T) {
	ref := core.NewDate(2024, 1, 15)
	r := Resolve("last 3 months", ref)
	if r.Start.String() != "2023-11-01" || r.End.String() != "2024-01-31" {
		t.Fatalf("got [%s, %s]", r.Start, r.End)
	}
	r = Resolve("last month", ref)
	if r.Start.String() != "2023-12-01" || r.End.String() != "2023-12-31" {
		t.Fatalf("got [%s, %s]", r.Start, r.End)
	}
}

func TestResolveDeterministic(t *testing.T) {
	ref := core.NewDate(2024, 3, 31)
	a := Resolve("last 3 months", ref)
	b := Resolve("last 3 months", ref)
	if a != b {
		t.Fatalf("same text and reference must resolve identically: %v vs %v", a, b)
	}
}

func TestResolveUnknownMonthName(t *testing.T) {
	// A word-year pair that is not a month falls through to the
	// default trailing window.
	ref := core.NewDate(2024, 3, 31)
	r := Resolve("report for foobar 2023", ref)
	if r.Start.String() != "2024-03-01" || r.End.String() != "2024-03-31" {
		t.Fatalf("got [%s, %s]", r.Start, r.End)
	}
}

func TestStripDatePhrases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"coffee last month", "coffee"},
		{"groceries this year", "groceries"},
		{"gas last 3 months", "gas"},
		{"shopping in June 2023", "shopping"},
		{"coffee", "coffee"},
		{"  coffee   and  snacks ", "coffee and snacks"},
		{"last week", ""},
	}
	for i, tc := range cases {
		if got := StripDatePhrases(tc.in); got != tc.want {
			t.Fatalf("case %d (%q): got %q, want %q", i, tc.in, got, tc.want)
		}
	}
}
