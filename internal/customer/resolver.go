// Package customer resolves which customer a free-text question is
// about, given the full record snapshot.
package customer

import (
	"sort"
	"strings"

	"ledgerq/internal/core"
)

// Resolve picks a customer identifier for the given hint or query
// text. Attempts, in order: a literal identifier mentioned in the
// text, a known customer name mentioned in the text, and finally the
// customer with the most recent transaction. Identifiers are scanned
// in lexicographic order and recency ties break toward the smallest
// identifier, so resolution is deterministic for a given snapshot.
//
// With no text at all the first record's customer is returned, which
// depends on snapshot order; callers wanting stable behavior should
// pass a hint.
func Resolve(records []core.Transaction, hintOrQuery string) string {
	if len(records) == 0 {
		return ""
	}
	if strings.TrimSpace(hintOrQuery) == "" {
		return records[0].CustomerID
	}
	q := strings.ToLower(hintOrQuery)

	ids := distinctIDs(records)
	for _, id := range ids {
		if id != "" && strings.Contains(q, strings.ToLower(id)) {
			return id
		}
	}

	for _, id := range ids {
		name := nameOf(records, id)
		if name != "" && strings.Contains(q, strings.ToLower(name)) {
			return id
		}
	}

	return mostRecent(records, ids)
}

func distinctIDs(records []core.Transaction) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, t := range records {
		if !seen[t.CustomerID] {
			seen[t.CustomerID] = true
			ids = append(ids, t.CustomerID)
		}
	}
	sort.Strings(ids)
	return ids
}

func nameOf(records []core.Transaction, id string) string {
	for _, t := range records {
		if t.CustomerID == id && t.CustomerName != "" {
			return t.CustomerName
		}
	}
	return ""
}

// mostRecent returns the id with the latest transaction date. Records
// without a resolvable date do not count toward recency.
func mostRecent(records []core.Transaction, ids []string) string {
	latest := make(map[string]core.Date, len(ids))
	for _, t := range records {
		if t.Date.IsZero() {
			continue
		}
		if cur, ok := latest[t.CustomerID]; !ok || t.Date.After(cur.Time) {
			latest[t.CustomerID] = t.Date
		}
	}
	best := ids[0]
	var bestDate core.Date
	for _, id := range ids {
		d, ok := latest[id]
		if !ok {
			continue
		}
		if d.After(bestDate.Time) {
			best = id
			bestDate = d
		}
	}
	return best
}
