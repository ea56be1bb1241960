// Package timeframe resolves free-text date phrases ("last month",
// "June 2023", "last 3 months") into inclusive calendar ranges, and
// strips those phrases back out of text when a category keyword is
// being extracted.
package timeframe

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"ledgerq/internal/core"
)

var (
	lastNMonthsRe = regexp.MustCompile(`last\s+(\d+)\s+months?`)
	monthYearRe   = regexp.MustCompile(`(?:in\s+)?([a-zA-Z]{3,9})\s+(\d{4})`)

	stripRelativeRe  = regexp.MustCompile(`\b(last|this)\s+(month|week|year)\b`)
	stripLastNRe     = regexp.MustCompile(`\blast\s+\d+\s+months?\b`)
	stripMonthYearRe = regexp.MustCompile(`\bin\s+[a-zA-Z]{3,9}\s+\d{4}\b`)
	collapseSpaceRe  = regexp.MustCompile(`\s{2,}`)
)

// months maps full month names and their three-letter prefixes to
// month numbers. Built once at init, read-only afterwards.
var months = func() map[string]int {
	names := []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
	m := make(map[string]int, 2*len(names))
	for i, name := range names {
		m[name] = i + 1
		m[name[:3]] = i + 1
	}
	return m
}()

// Resolve maps query text to a date range anchored at ref. It always
// returns a range; unrecognized text yields the trailing 30 days.
//
// Patterns, first match wins:
//
//	"last N months"             N calendar months ending with ref's month
//	"last month"                the previous calendar month
//	"this year" / "ytd"         Jan 1 of ref's year through ref
//	"<Month> <Year>"            that full calendar month
//	"last week"                 the last completed Monday-Sunday span
func Resolve(text string, ref core.Date) core.DateRange {
	t := strings.ToLower(text)

	if m := lastNMonthsRe.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			end := endOfMonth(ref)
			start := core.Date{Time: time.Date(end.Year(), end.Month()-time.Month(n-1), 1, 0, 0, 0, 0, time.UTC)}
			return core.DateRange{Start: start, End: end}
		}
	}

	if strings.Contains(t, "last month") {
		firstOfThis := core.NewDate(ref.Year(), int(ref.Month()), 1)
		end := firstOfThis.AddDays(-1)
		start := core.NewDate(end.Year(), int(end.Month()), 1)
		return core.DateRange{Start: start, End: end}
	}

	if strings.Contains(t, "this year") || strings.Contains(t, "year to date") || strings.Contains(t, "ytd") {
		return core.DateRange{Start: core.NewDate(ref.Year(), 1, 1), End: ref}
	}

	if m := monthYearRe.FindStringSubmatch(t); m != nil {
		if month, ok := months[strings.ToLower(m[1])[:3]]; ok {
			year, _ := strconv.Atoi(m[2])
			start := core.NewDate(year, month, 1)
			return core.DateRange{Start: start, End: endOfMonth(start)}
		}
	}

	if strings.Contains(t, "last week") {
		// Monday-based weekday offset: land on the most recent Sunday
		// strictly before ref's week, then back to its Monday.
		weekday := (int(ref.Weekday()) + 6) % 7
		sunday := ref.AddDays(-(weekday + 1))
		monday := sunday.AddDays(-6)
		return core.DateRange{Start: monday, End: sunday}
	}

	return core.DateRange{Start: ref.AddDays(-30), End: ref}
}

// StripDatePhrases removes the date phrases Resolve recognizes from a
// keyword phrase and collapses the leftover whitespace.
func StripDatePhrases(s string) string {
	s = strings.TrimSpace(s)
	s = stripRelativeRe.ReplaceAllString(s, "")
	s = stripLastNRe.ReplaceAllString(s, "")
	s = stripMonthYearRe.ReplaceAllString(s, "")
	return strings.TrimSpace(collapseSpaceRe.ReplaceAllString(s, " "))
}

func endOfMonth(d core.Date) core.Date {
	return core.NewDate(d.Year(), int(d.Month())+1, 1).AddDays(-1)
}
