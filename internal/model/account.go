package model

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// AccountKind is the variant tag of an account. Its string value is written
// verbatim to the accounts file and shown in listings.
type AccountKind string

const (
	KindSavings AccountKind = "Savings"
	KindCurrent AccountKind = "Current"
)

// ErrUnknownKind is returned when an account kind tag is not recognized.
var ErrUnknownKind = errors.New("unknown account kind")

var hundred = decimal.NewFromInt(100)

// String returns the kind tag.
func (k AccountKind) String() string { return string(k) }

// Valid reports whether k is one of the known kinds.
func (k AccountKind) Valid() bool {
	return k == KindSavings || k == KindCurrent
}

// Account is one bank account. Kind selects which of InterestRate or
// OverdraftLimit is meaningful; the other stays zero.
type Account struct {
	Number  string
	Owner   string
	Balance decimal.Decimal
	Kind    AccountKind

	InterestRate   decimal.Decimal // Savings: percentage
	OverdraftLimit decimal.Decimal // Current: how far below zero the balance may go
}

// NewSavings creates a Savings account.
func NewSavings(number, owner string, balance, rate decimal.Decimal) *Account {
	return &Account{
		Number:       number,
		Owner:        owner,
		Balance:      balance,
		Kind:         KindSavings,
		InterestRate: rate,
	}
}

// NewCurrent creates a Current account.
func NewCurrent(number, owner string, balance, limit decimal.Decimal) *Account {
	return &Account{
		Number:         number,
		Owner:          owner,
		Balance:        balance,
		Kind:           KindCurrent,
		OverdraftLimit: limit,
	}
}

// New creates an account of the given kind. aux is the interest rate for
// Savings and the overdraft limit for Current.
func New(kind AccountKind, number, owner string, balance, aux decimal.Decimal) (*Account, error) {
	switch kind {
	case KindSavings:
		return NewSavings(number, owner, balance, aux), nil
	case KindCurrent:
		return NewCurrent(number, owner, balance, aux), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

// Aux returns the variant parameter: interest rate or overdraft limit.
func (a *Account) Aux() decimal.Decimal {
	if a.Kind == KindCurrent {
		return a.OverdraftLimit
	}
	return a.InterestRate
}

// Deposit adds amount to the balance. Callers reject negative amounts.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Withdraw removes amount from the balance if the account's policy allows it.
// It reports whether the withdrawal happened; on false the balance is untouched.
func (a *Account) Withdraw(amount decimal.Decimal) bool {
	available := a.Balance
	if a.Kind == KindCurrent {
		available = available.Add(a.OverdraftLimit)
	}
	if available.LessThan(amount) {
		return false
	}
	a.Balance = a.Balance.Sub(amount)
	return true
}

// ApplyInterest grows a Savings balance by its interest rate. It returns false
// and does nothing for other kinds. Nothing calls it automatically.
func (a *Account) ApplyInterest() bool {
	if a.Kind != KindSavings {
		return false
	}
	a.Balance = a.Balance.Add(a.Balance.Mul(a.InterestRate).Div(hundred))
	return true
}

// Details writes the multi-line description shown in account listings.
func (a *Account) Details(w io.Writer) error {
	var header, auxLine string
	switch a.Kind {
	case KindSavings:
		header = "[Savings Account]"
		auxLine = fmt.Sprintf("Interest Rate: %s%%", a.InterestRate)
	case KindCurrent:
		header = "[Current Account]"
		auxLine = fmt.Sprintf("Overdraft Limit: %s", a.OverdraftLimit)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(a.Kind))
	}
	_, err := fmt.Fprintf(w, "%s\nAccount Number: %s\nOwner: %s\nBalance: %s\n%s\n",
		header, a.Number, a.Owner, a.Balance, auxLine)
	return err
}
