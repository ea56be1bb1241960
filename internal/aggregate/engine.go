// Package aggregate computes spending totals over a customer's
// transactions within a date window.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"ledgerq/internal/core"
)

// CategoryTotal is the summed debit amount for one category.
type CategoryTotal struct {
	Category core.Category
	Amount   decimal.Decimal
}

// Result holds the totals for one customer and window. Net is always
// Income minus Spent, including the all-zero empty case.
type Result struct {
	Rows       []core.Transaction
	Spent      decimal.Decimal
	Income     decimal.Decimal
	Net        decimal.Decimal
	ByCategory []CategoryTotal
}

// categoryRank orders tie-broken category totals by the fixed label
// order. Built once at init.
var categoryRank = func() map[core.Category]int {
	m := make(map[core.Category]int, len(core.Categories))
	for i, c := range core.Categories {
		m[c] = i
	}
	return m
}()

// Run filters records to the customer and inclusive window, then sums
// debits, credits and per-category debit totals. Rows with a missing
// date fall outside every window; rows with a missing amount count
// toward nothing.
func Run(records []core.Transaction, customerID string, window core.DateRange) Result {
	var res Result
	for _, t := range records {
		if t.CustomerID != customerID || t.Date.IsZero() || !window.Contains(t.Date) {
			continue
		}
		res.Rows = append(res.Rows, t)
	}

	byCat := make(map[core.Category]decimal.Decimal)
	for _, t := range res.Rows {
		if !t.HasAmount() {
			continue
		}
		switch t.Direction {
		case core.Debit:
			res.Spent = res.Spent.Add(t.Amount.Decimal)
			byCat[t.Category] = byCat[t.Category].Add(t.Amount.Decimal)
		case core.Credit:
			res.Income = res.Income.Add(t.Amount.Decimal)
		}
	}
	res.Net = res.Income.Sub(res.Spent)

	for cat, amt := range byCat {
		res.ByCategory = append(res.ByCategory, CategoryTotal{Category: cat, Amount: amt})
	}
	sort.SliceStable(res.ByCategory, func(i, j int) bool {
		a, b := res.ByCategory[i], res.ByCategory[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return categoryRank[a.Category] < categoryRank[b.Category]
	})
	return res
}
