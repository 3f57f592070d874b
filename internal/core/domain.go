package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Supported currencies. Stored uppercase on every transaction.
const (
	EUR = "EUR"
	USD = "USD"
	RSD = "RSD"
)

// Currencies is the fixed currency set, in menu order.
var Currencies = []string{EUR, USD, RSD}

// Categories a transaction can be filed under.
var Categories = []string{
	"Food",
	"Transport",
	"Housing",
	"Utilities",
	"Entertainment",
	"Health",
	"Other",
}

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrEmptyCategory   = errors.New("empty category")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyID         = errors.New("empty transaction id")
)

// DateLayout is the calendar-date wire and display format.
const DateLayout = "02/01/2006"

// PeriodLayout is the month/year bucket used by the time-series chart.
const PeriodLayout = "01/2006"

type (
	// Date is a calendar date without a time component.
	Date struct {
		time.Time
	}

	// Transaction is a single dated expense or income record.
	Transaction struct {
		ID       string          `json:"id"`
		UserID   int64           `json:"userId"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
		Category string          `json:"category"`
		Date     Date            `json:"date"`
		Note     string          `json:"note"`
	}

	// User is a login account. Password stays a plain string; the seed
	// fixture is the only credential source.
	User struct {
		ID              int64  `json:"id"`
		Name            string `json:"name"`
		Email           string `json:"email"`
		Username        string `json:"username"`
		Password        string `json:"password"`
		IsAuthenticated bool   `json:"-"`
	}
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a DD/MM/YYYY string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// String renders the date as DD/MM/YYYY. Zero dates render empty.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// Period returns the MM/YYYY bucket this date falls into.
func (d Date) Period() string {
	return d.Format(PeriodLayout)
}

// OnOrAfter compares calendar dates only.
func (d Date) OnOrAfter(other Date) bool {
	return !d.Time.Before(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// ValidCurrency reports whether c is one of the fixed currency set.
func ValidCurrency(c string) bool {
	for _, cur := range Currencies {
		if c == cur {
			return true
		}
	}
	return false
}

// Validate checks the invariants a stored transaction must hold:
// id assigned, amount/currency/category present, date set. The note may
// be empty and the amount may be negative.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if !ValidCurrency(t.Currency) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, t.Currency)
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	return nil
}
