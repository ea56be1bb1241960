package intent

import "testing"

func TestDetectTopCategory(t *testing.T) {
	cases := []string{
		"what is my biggest spending category this year",
		"top category of spend last month",
		"largest spending category",
	}
	for i, text := range cases {
		if got := Detect(text); got.Kind != TopCategory {
			t.Fatalf("case %d (%q): got kind %d", i, text, got.Kind)
		}
	}
}

func TestDetectCategorySpend(t *testing.T) {
	cases := []struct {
		text    string
		keyword string
	}{
		{"how much did I spend on coffee last month", "coffee"},
		{"what did I spend on groceries", "groceries"},
		{"total spent on gas last week", "gas"},
		{"how much went on transportation, spend wise", "transportation"},
		{"spend on coffee and snacks", "coffee and snacks"},
	}
	for i, tc := range cases {
		got := Detect(tc.text)
		if got.Kind != CategorySpend {
			t.Fatalf("case %d (%q): got kind %d", i, tc.text, got.Kind)
		}
		if got.Keyword != tc.keyword {
			t.Fatalf("case %d (%q): got keyword %q, want %q", i, tc.text, got.Keyword, tc.keyword)
		}
	}
}

func TestDetectKeywordAllDatePhrases(t *testing.T) {
	// The captured phrase is nothing but a date phrase; with no
	// keyword left the question degrades to a summary.
	if got := Detect("how much did I spend last month"); got.Kind != Summary {
		t.Fatalf("got kind %d, keyword %q", got.Kind, got.Keyword)
	}
}

func TestDetectSavings(t *testing.T) {
	for i, text := range []string{
		"how much did I save this year",
		"estimate my savings",
	} {
		if got := Detect(text); got.Kind != Savings {
			t.Fatalf("case %d (%q): got kind %d", i, text, got.Kind)
		}
	}
}

func TestDetectSummaryDefault(t *testing.T) {
	for i, text := range []string{
		"what happened last month",
		"give me an overview",
		"",
	} {
		if got := Detect(text); got.Kind != Summary {
			t.Fatalf("case %d (%q): got kind %d", i, text, got.Kind)
		}
	}
}

func TestDetectOrderTopCategoryBeatsKeyword(t *testing.T) {
	// Matches both the top-category rule and "spend on"; the
	// top-category rule is checked first.
	got := Detect("biggest category of spend on coffee")
	if got.Kind != TopCategory {
		t.Fatalf("got kind %d", got.Kind)
	}
}
