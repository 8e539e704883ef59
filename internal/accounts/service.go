package accounts

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/teller/internal/logging"
	"github.com/cleared-dev/teller/internal/model"
)

var (
	// ErrDuplicateAccount is returned by Add when the account number is taken.
	ErrDuplicateAccount = errors.New("account number already exists")
	// ErrAccountNotFound is returned when no account has the given number.
	ErrAccountNotFound = errors.New("account not found")
)

const divider = "---------------------------"

// TransactionWriter receives each recorded transaction.
type TransactionWriter interface {
	Append(tx model.Transaction) error
}

// Service is the in-memory account registry. Accounts keep insertion order.
type Service struct {
	accounts []*model.Account
	byNumber map[string]*model.Account
	txns     []model.Transaction
	txlog    TransactionWriter
	logger   *slog.Logger
}

// NewService creates an empty registry. txlog may be nil, in which case
// transactions are only kept in memory.
func NewService(txlog TransactionWriter, logger *slog.Logger) *Service {
	return &Service{
		byNumber: make(map[string]*model.Account),
		txlog:    txlog,
		logger:   logging.OrDiscard(logger),
	}
}

// Add appends an account unless its number is already registered.
func (s *Service) Add(acct *model.Account) error {
	if _, ok := s.byNumber[acct.Number]; ok {
		s.logger.Error("account number already exists", "account", acct.Number)
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, acct.Number)
	}
	s.accounts = append(s.accounts, acct)
	s.byNumber[acct.Number] = acct
	return nil
}

// Find returns the account with the given number.
func (s *Service) Find(number string) (*model.Account, bool) {
	a, ok := s.byNumber[number]
	return a, ok
}

// All returns all accounts in registry order.
func (s *Service) All() []*model.Account {
	return s.accounts
}

// Len returns the number of registered accounts.
func (s *Service) Len() int {
	return len(s.accounts)
}

// DisplayAll writes every account's details, or a notice when there are none.
func (s *Service) DisplayAll(w io.Writer) error {
	if len(s.accounts) == 0 {
		_, err := fmt.Fprintln(w, "No accounts available.")
		return err
	}
	if _, err := fmt.Fprintln(w, "==== Account Holder List ===="); err != nil {
		return err
	}
	for _, acct := range s.accounts {
		if err := acct.Details(w); err != nil {
			return fmt.Errorf("displaying account %s: %w", acct.Number, err)
		}
		if _, err := fmt.Fprintln(w, divider); err != nil {
			return err
		}
	}
	return nil
}

// Deposit credits an account and records the transaction.
func (s *Service) Deposit(number string, amount decimal.Decimal) error {
	acct, ok := s.Find(number)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, number)
	}
	acct.Deposit(amount)
	return s.RecordTransaction(number, model.TxDeposit, amount)
}

// Withdraw debits an account if its policy allows and records the
// transaction. It reports false, with no error, when funds are insufficient.
func (s *Service) Withdraw(number string, amount decimal.Decimal) (bool, error) {
	acct, ok := s.Find(number)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrAccountNotFound, number)
	}
	if !acct.Withdraw(amount) {
		return false, nil
	}
	return true, s.RecordTransaction(number, model.TxWithdrawal, amount)
}

// RecordTransaction keeps the transaction for this session and appends it to
// the transaction log.
func (s *Service) RecordTransaction(number string, kind model.TransactionKind, amount decimal.Decimal) error {
	tx := model.Transaction{AccountNumber: number, Kind: kind, Amount: amount}
	s.txns = append(s.txns, tx)
	if s.txlog == nil {
		return nil
	}
	if err := s.txlog.Append(tx); err != nil {
		s.logger.Error("writing transaction log", "account", number, "error", err)
		return fmt.Errorf("recording %s for %s: %w", kind, number, err)
	}
	return nil
}

// Transactions returns the transactions recorded during this session.
func (s *Service) Transactions() []model.Transaction {
	return s.txns
}

// Load reads accounts from path and adds each through Add, so repeated
// numbers keep their first occurrence. A missing file loads nothing.
func (s *Service) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening accounts file: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	for _, acct := range accts {
		s.logger.Info("loading account", "account", acct.Number)
		_ = s.Add(acct) // duplicates are logged by Add and dropped
	}
	if err != nil {
		return fmt.Errorf("loading accounts: %w", err)
	}
	return nil
}

// Save overwrites path with every account in registry order.
func (s *Service) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating accounts dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing accounts file: %w", err)
	}
	return nil
}
