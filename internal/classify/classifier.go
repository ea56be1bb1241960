// Package classify assigns a category label to each transaction from
// its free-text fields, falling back to the bank's numeric category
// code, and finally to "other". Classification is a pure per-record
// function: same input, same label, no shared state.
package classify

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"ledgerq/internal/core"
)

// Rule maps one category to the keywords that select it. Rules are
// kept in a slice, not a map: rule order is the tie-breaker when a
// transaction's text matches several categories.
type Rule struct {
	Category core.Category `yaml:"category"`
	Keywords []string      `yaml:"keywords"`
}

// defaultRules is the built-in keyword table, in priority order.
var defaultRules = []Rule{
	{core.Coffee, []string{"coffee", "kopi", "starbucks", "kopitiam"}},
	{core.Groceries, []string{"grocery", "groceries", "supermarket", "hypermart", "carrefour", "giant", "alfamart", "indomaret"}},
	{core.Restaurants, []string{"restaurant", "restaurants", "diner", "cafe", "warung", "mcd", "kfc", "bk", "pizza", "sushi", "bakso", "mie"}},
	{core.Shopping, []string{"shopping", "fashion", "clothes", "apparel", "mall", "tokopedia", "shopee", "lazada", "zalora", "uniqlo"}},
	{core.Gas, []string{"gas", "fuel", "pertamina", "spbu", "shell", "bp"}},
	{core.Transportation, []string{"transport", "gojek", "grab", "transjakarta", "mrt", "lrt", "uber", "bluebird", "train"}},
	{core.Utilities, []string{"utility", "utilities", "pln", "electric", "electricity", "pdam", "water", "internet", "wifi", "telkom", "indihome", "telco"}},
	{core.Healthcare, []string{"hospital", "clinic", "doctor", "pharmacy", "apotek", "bpjs"}},
	{core.Education, []string{"school", "tuition", "education", "course", "kuliah", "bimbel", "udemy", "coursera"}},
	{core.Entertainment, []string{"entertainment", "netflix", "spotify", "disney", "cinema", "bioskop", "game", "steam"}},
	{core.Rent, []string{"rent", "sewa", "kost", "kos", "apartment", "apartemen", "boarding"}},
	{core.Insurance, []string{"insurance", "asuransi", "premium"}},
	{core.Fees, []string{"fee", "fees", "admin", "charge", "interest"}},
	{core.Salary, []string{"salary", "gaji", "payroll"}},
	{core.Transfer, []string{"transfer", "topup", "top up", "withdraw", "cash out", "cashout", "cash in"}},
	{core.Refund, []string{"refund", "reversal"}},
	{core.Travel, []string{"hotel", "airasia", "garuda", "citilink", "traveloka", "booking", "agoda", "expedia", "pesawat", "flight", "airport"}},
}

// codeTable maps the bank's numeric category codes to labels, used
// only when no keyword matched.
var codeTable = map[string]core.Category{
	"1":  core.Groceries,
	"2":  core.Restaurants,
	"3":  core.Shopping,
	"4":  core.Gas,
	"5":  core.Utilities,
	"6":  core.Transportation,
	"7":  core.Healthcare,
	"8":  core.Education,
	"9":  core.Entertainment,
	"10": core.Fees,
}

// Classifier assigns category labels from an ordered rule list.
type Classifier struct {
	rules []Rule
}

// New returns a classifier using the built-in rule table.
func New() *Classifier {
	return &Classifier{rules: defaultRules}
}

// NewWithRules returns a classifier using the given ordered rules.
func NewWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// LoadRules reads an ordered rule list from a YAML file. The file
// replaces the built-in table wholesale, so it must list categories in
// the priority order the caller wants.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("rules file %s contains no rules", path)
	}
	for i, r := range rules {
		if r.Category == "" {
			return nil, fmt.Errorf("rule %d has no category", i)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d (%s) has no keywords", i, r.Category)
		}
	}
	return rules, nil
}

// Classify returns the category for a transaction. It never fails:
// keyword match first (substring, any position), then the numeric
// code table, then Other.
func (c *Classifier) Classify(t core.Transaction) core.Category {
	text := t.FreeText()
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Category
			}
		}
	}
	if cat, ok := codeTable[strings.TrimSpace(t.SystemCode)]; ok {
		return cat
	}
	return core.Other
}
