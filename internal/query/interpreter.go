// Package query orchestrates the full pipeline for one question:
// resolve the date range, clamp it to the data, resolve the customer,
// aggregate the window and compose the answer line.
package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ledgerq/internal/aggregate"
	"ledgerq/internal/cache"
	"ledgerq/internal/core"
	"ledgerq/internal/customer"
	"ledgerq/internal/intent"
	"ledgerq/internal/timeframe"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
)

// Interpreter answers free-text questions against an immutable
// transaction snapshot. All operations are read-only, so concurrent
// Answer calls need no coordination beyond the answer cache's own
// locking.
type Interpreter struct {
	records []core.Transaction
	maxDate core.Date
	logger  *slog.Logger
	answers *cache.LRU[string]
}

// New creates an interpreter over the given snapshot. The snapshot
// must not be mutated afterwards.
func New(records []core.Transaction, logger *slog.Logger) *Interpreter {
	return NewWithCache(records, logger, defaultCacheSize, defaultCacheTTL)
}

// NewWithCache is New with explicit answer-cache sizing.
func NewWithCache(records []core.Transaction, logger *slog.Logger, cacheSize int, cacheTTL time.Duration) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	var max core.Date
	for _, t := range records {
		if !t.Date.IsZero() && t.Date.After(max.Time) {
			max = t.Date
		}
	}
	return &Interpreter{
		records: records,
		maxDate: max,
		logger:  logger,
		answers: cache.New[string](cacheSize, cacheTTL),
	}
}

// Answer runs the pipeline for one question and returns the answer
// line. hint optionally names the customer; ref anchors relative date
// phrases and defaults to the latest transaction date in the
// snapshot. Answer never fails: every stage has a defined fallback.
func (in *Interpreter) Answer(ctx context.Context, text, hint string, ref core.Date) string {
	if ref.IsZero() {
		ref = in.maxDate
	}
	if ref.IsZero() {
		// Empty snapshot and no explicit reference.
		ref = core.DateOf(time.Now())
	}

	key := text + "|" + hint + "|" + ref.String()
	if answer, ok := in.answers.Get(key); ok {
		return answer
	}

	window := timeframe.Resolve(text, ref).ClampEnd(in.maxDate)

	subject := hint
	if subject == "" {
		subject = text
	}
	id := customer.Resolve(in.records, subject)

	res := aggregate.Run(in.records, id, window)
	it := intent.Detect(text)

	in.logger.DebugContext(ctx, "query interpreted",
		"customer", id,
		"start", window.Start.String(),
		"end", window.End.String(),
		"rows", len(res.Rows),
		"intent", it.Kind)

	answer := compose(id, window, res, it)
	in.answers.Set(key, answer)
	return answer
}

func compose(id string, w core.DateRange, res aggregate.Result, it intent.Intent) string {
	switch it.Kind {
	case intent.TopCategory:
		cat, amt := "none", decimal.Zero
		if len(res.ByCategory) > 0 {
			cat = string(res.ByCategory[0].Category)
			amt = res.ByCategory[0].Amount
		}
		return fmt.Sprintf("[%s] Biggest spending category from %s to %s: %s (%s).",
			id, w.Start, w.End, cat, core.FormatAmount(amt))

	case intent.CategorySpend:
		total := keywordSpend(res.Rows, it.Keyword)
		return fmt.Sprintf("[%s] Spend on %s from %s to %s: %s.",
			id, it.Keyword, w.Start, w.End, core.FormatAmount(total))

	case intent.Savings:
		return fmt.Sprintf("[%s] Estimated savings %s to %s: %s (income %s - spend %s).",
			id, w.Start, w.End,
			core.FormatAmount(res.Net), core.FormatAmount(res.Income), core.FormatAmount(res.Spent))

	default:
		return fmt.Sprintf("[%s] Summary %s to %s: spent %s, income %s, net %s.",
			id, w.Start, w.End,
			core.FormatAmount(res.Spent), core.FormatAmount(res.Income), core.FormatAmount(res.Net))
	}
}

// keywordSpend sums debit rows matching a category keyword: the
// keyword's first word against the category label, or the whole
// keyword against the row's free text.
func keywordSpend(rows []core.Transaction, keyword string) decimal.Decimal {
	firstWord := keyword
	if fields := strings.Fields(keyword); len(fields) > 0 {
		firstWord = fields[0]
	}
	total := decimal.Zero
	for _, t := range rows {
		if t.Direction != core.Debit || !t.HasAmount() {
			continue
		}
		if strings.Contains(string(t.Category), firstWord) || strings.Contains(t.FreeText(), keyword) {
			total = total.Add(t.Amount.Decimal)
		}
	}
	return total
}
