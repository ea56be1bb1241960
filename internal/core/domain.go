package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Debit   Direction = "debit"
	Credit  Direction = "credit"
	Unknown Direction = "unknown"
)

// Category labels in classification priority order. The order matters:
// when a transaction's text matches keywords of more than one category,
// the earliest one wins.
const (
	Coffee         Category = "coffee"
	Groceries      Category = "groceries"
	Restaurants    Category = "restaurants"
	Shopping       Category = "shopping"
	Gas            Category = "gas"
	Transportation Category = "transportation"
	Utilities      Category = "utilities"
	Healthcare     Category = "healthcare"
	Education      Category = "education"
	Entertainment  Category = "entertainment"
	Rent           Category = "rent"
	Insurance      Category = "insurance"
	Fees           Category = "fees"
	Salary         Category = "salary"
	Transfer       Category = "transfer"
	Refund         Category = "refund"
	Travel         Category = "travel"
	Other          Category = "other"
)

// Categories lists every label in priority order, Other last.
var Categories = []Category{
	Coffee, Groceries, Restaurants, Shopping, Gas, Transportation,
	Utilities, Healthcare, Education, Entertainment, Rent, Insurance,
	Fees, Salary, Transfer, Refund, Travel, Other,
}

type (
	Direction string

	Category string

	Date struct {
		time.Time
	}

	// Transaction is one ledger row, read-only after ingestion.
	// A zero Date or an invalid Amount means the source value could not
	// be parsed; such rows are excluded from windows and sums.
	Transaction struct {
		CustomerID   string
		CustomerName string
		Date         Date
		Amount       decimal.NullDecimal
		Direction    Direction
		Detail       string
		Subheader    string
		Notes        string
		Tags         string
		SystemCode   string
		Category     Category
	}

	// CustomerProfile carries the attributes joined onto transactions
	// at ingestion time.
	CustomerProfile struct {
		CustomerID    string
		Name          string
		AgeGroup      string
		IncomeBracket string
		Region        string
		AccountType   string
		RiskProfile   string
	}

	// DateRange is an inclusive calendar window, Start <= End.
	DateRange struct {
		Start Date
		End   Date
	}
)

// NewDate creates a Date from year, month, day at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start.Time) && !d.After(r.End.Time)
}

// ClampEnd caps the range end at max. The start is never moved.
func (r DateRange) ClampEnd(max Date) DateRange {
	if !max.IsZero() && r.End.After(max.Time) {
		r.End = max
	}
	return r
}

// FreeText joins the transaction's text fields in their fixed order,
// lowercased, for keyword matching.
func (t Transaction) FreeText() string {
	return strings.ToLower(strings.Join([]string{t.Detail, t.Subheader, t.Notes, t.Tags}, " "))
}

// HasAmount reports whether the amount was resolvable at ingestion.
func (t Transaction) HasAmount() bool {
	return t.Amount.Valid
}

func (d Direction) IsValid() bool {
	switch d {
	case Debit, Credit, Unknown:
		return true
	default:
		return false
	}
}

// ParseDirection maps a raw debit/credit column value to a Direction.
func ParseDirection(s string) Direction {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBIT", "D", "DR":
		return Debit
	case "CREDIT", "C", "CR":
		return Credit
	default:
		return Unknown
	}
}
