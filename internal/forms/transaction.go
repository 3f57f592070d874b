// Package forms holds the state machines behind the transaction modal
// and the user settings modal. The UI layer renders from this state and
// feeds events into it; no business rules live in the UI.
package forms

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"finboard/internal/core"
)

// Mode selects the transaction modal behavior. It is supplied by the
// caller when the modal opens and never self-transitions.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
	ModePreview
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	case ModePreview:
		return "preview"
	default:
		return "unknown"
	}
}

// Title returns the modal heading for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeCreate:
		return "Create new transaction"
	case ModeEdit:
		return "Edit transaction"
	case ModePreview:
		return "Preview transaction"
	default:
		return ""
	}
}

// SubmitLabel returns the commit button label; preview has none.
func (m Mode) SubmitLabel() string {
	switch m {
	case ModeCreate:
		return "Create"
	case ModeEdit:
		return "Save"
	default:
		return ""
	}
}

var (
	ErrReadOnly   = errors.New("form is read only")
	ErrIncomplete = errors.New("form is incomplete")
)

// TransactionForm manages one transaction's editable fields across the
// create, edit and preview modes.
type TransactionForm struct {
	mode Mode
	seed *core.Transaction

	Amount   string
	Date     core.Date
	Currency string
	Category string
	Note     string

	amountTouched bool
	defaultToday  bool
	today         func() core.Date
}

// TransactionFormOption configures a TransactionForm.
type TransactionFormOption func(*TransactionForm)

// WithEmptyDefaultDate leaves the date unset in create mode instead of
// defaulting to the current date.
func WithEmptyDefaultDate() TransactionFormOption {
	return func(f *TransactionForm) { f.defaultToday = false }
}

// WithToday overrides the current-date source, for tests.
func WithToday(fn func() core.Date) TransactionFormOption {
	return func(f *TransactionForm) { f.today = fn }
}

// NewTransactionForm opens the form in the given mode. Edit and preview
// populate the fields from seed; create resets them.
func NewTransactionForm(mode Mode, seed *core.Transaction, opts ...TransactionFormOption) *TransactionForm {
	f := &TransactionForm{
		mode:         mode,
		seed:         seed,
		defaultToday: true,
		today:        core.Today,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.Reset()
	return f
}

// Mode returns the mode the form was opened in.
func (f *TransactionForm) Mode() Mode { return f.mode }

// ReadOnly reports whether every field is disabled (preview mode).
func (f *TransactionForm) ReadOnly() bool { return f.mode == ModePreview }

// Reset restores the fields to their entry state: seed values for
// edit/preview, empty defaults for create.
func (f *TransactionForm) Reset() {
	f.amountTouched = false
	if (f.mode == ModeEdit || f.mode == ModePreview) && f.seed != nil {
		f.Amount = f.seed.Amount.String()
		f.Date = f.seed.Date
		f.Currency = f.seed.Currency
		f.Category = f.seed.Category
		f.Note = f.seed.Note
		return
	}
	f.Amount = ""
	f.Currency = ""
	f.Category = ""
	f.Note = ""
	if f.defaultToday {
		f.Date = f.today()
	} else {
		f.Date = core.Date{}
	}
}

// SetAmount replaces the raw amount text.
func (f *TransactionForm) SetAmount(s string) {
	if f.ReadOnly() {
		return
	}
	f.Amount = s
}

// TouchAmount marks the amount field as interacted with; its validation
// error is only visible afterwards.
func (f *TransactionForm) TouchAmount() { f.amountTouched = true }

func (f *TransactionForm) SetDate(d core.Date) {
	if f.ReadOnly() {
		return
	}
	f.Date = d
}

func (f *TransactionForm) SetCurrency(c string) {
	if f.ReadOnly() {
		return
	}
	f.Currency = c
}

func (f *TransactionForm) SetCategory(c string) {
	if f.ReadOnly() {
		return
	}
	f.Category = c
}

func (f *TransactionForm) SetNote(n string) {
	if f.ReadOnly() {
		return
	}
	f.Note = n
}

// AmountError returns the visible amount validation message. The field
// must have been touched before any error shows.
func (f *TransactionForm) AmountError() string {
	if !f.amountTouched {
		return ""
	}
	return f.amountIssue()
}

func (f *TransactionForm) amountIssue() string {
	if strings.TrimSpace(f.Amount) == "" {
		return "Amount is required"
	}
	if _, err := core.ParseAmount(f.Amount); err != nil {
		return "Amount must be a number"
	}
	return ""
}

// CanSubmit reports whether the commit action is enabled. Currency and
// category must be non-empty regardless of touch state, and the amount
// must parse; preview never submits.
func (f *TransactionForm) CanSubmit() bool {
	if f.mode == ModePreview {
		return false
	}
	return f.Currency != "" && f.Category != "" && f.amountIssue() == ""
}

// Submit builds the committed transaction and resets the form.
//
// Create assigns a fresh id, the session user's id as owner, the
// uppercased currency, and today's date when none was picked. Edit keeps
// the original id and owner untouched. The caller forwards the result to
// the store.
func (f *TransactionForm) Submit(ownerID int64) (core.Transaction, error) {
	if f.mode == ModePreview {
		return core.Transaction{}, ErrReadOnly
	}
	if !f.CanSubmit() {
		return core.Transaction{}, ErrIncomplete
	}
	amount, err := core.ParseAmount(f.Amount)
	if err != nil {
		return core.Transaction{}, err
	}
	date := f.Date
	if date.IsZero() {
		date = f.today()
	}
	tx := core.Transaction{
		Amount:   amount,
		Currency: strings.ToUpper(f.Currency),
		Category: f.Category,
		Date:     date,
		Note:     f.Note,
	}
	if f.mode == ModeEdit && f.seed != nil {
		tx.ID = f.seed.ID
		tx.UserID = f.seed.UserID
	} else {
		tx.ID = uuid.NewString()
		tx.UserID = ownerID
	}
	f.Reset()
	return tx, nil
}

// Cancel discards in-progress edits without touching the store.
func (f *TransactionForm) Cancel() {
	f.Reset()
}
