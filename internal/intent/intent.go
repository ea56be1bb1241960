// Package intent classifies what a question is asking for: the top
// spending category, spend on a specific category, savings, or a
// generic summary.
package intent

import (
	"regexp"
	"strings"

	"ledgerq/internal/timeframe"
)

// Kind is the closed set of answer shapes.
type Kind int

const (
	Summary Kind = iota
	TopCategory
	CategorySpend
	Savings
)

func (k Kind) String() string {
	switch k {
	case TopCategory:
		return "top_category"
	case CategorySpend:
		return "category_spend"
	case Savings:
		return "savings"
	default:
		return "summary"
	}
}

// Intent is the detected question type. Keyword is set only for
// CategorySpend and is already cleaned of date phrases.
type Intent struct {
	Kind    Kind
	Keyword string
}

var (
	spendOnRe = regexp.MustCompile(`spen[dt]\s+on\s+([a-zA-Z ]+)`)
	howMuchRe = regexp.MustCompile(`how much .*?\bon\s+([a-zA-Z ]+)`)
)

// Detect classifies query text. Rules are checked in a fixed order and
// the first hit wins; text matching none of them is a Summary.
func Detect(text string) Intent {
	t := strings.ToLower(text)

	if (strings.Contains(t, "biggest") || strings.Contains(t, "top") || strings.Contains(t, "largest")) &&
		strings.Contains(t, "category") && strings.Contains(t, "spend") {
		return Intent{Kind: TopCategory}
	}

	if kw := extractKeyword(t); kw != "" {
		return Intent{Kind: CategorySpend, Keyword: kw}
	}

	if strings.Contains(t, "save") || strings.Contains(t, "saving") {
		return Intent{Kind: Savings}
	}

	return Intent{Kind: Summary}
}

// extractKeyword pulls the category phrase out of "spend on <words>"
// or, when the text talks about spending, the looser
// "how much ... on <words>" (first phrase after the word "on").
// Date-range phrases embedded in the captured phrase are stripped so
// "coffee last month" becomes "coffee". Returns "" when nothing
// usable remains.
func extractKeyword(t string) string {
	var raw string
	if m := spendOnRe.FindStringSubmatch(t); m != nil {
		raw = m[1]
	} else if m := howMuchRe.FindStringSubmatch(t); m != nil &&
		(strings.Contains(t, "spend") || strings.Contains(t, "spent")) {
		raw = m[1]
	}
	if raw == "" {
		return ""
	}
	return timeframe.StripDatePhrases(raw)
}
