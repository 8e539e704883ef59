// Package txlog writes and reads the append-only transaction log.
//
// Each completed deposit or withdrawal is one line:
//
//	<account number> <Deposit|Withdrawal> <amount>
//
// The log is never truncated. A Writer flushes after every line so entries
// survive an abnormal exit.
package txlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/teller/internal/model"
)

const (
	numFields = 3
	colNumber = 0
	colKind   = 1
	colAmount = 2
)

// Writer appends transactions to a log.
type Writer struct {
	bw     *bufio.Writer
	closer io.Closer
}

// Open opens the log at path for appending, creating it and its directory if
// needed. The caller must Close it.
func Open(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating transaction log dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening transaction log: %w", err)
	}
	return &Writer{bw: bufio.NewWriter(f), closer: f}, nil
}

// NewWriter returns a Writer over w. Close flushes but does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Append writes one transaction and flushes it.
func (w *Writer) Append(tx model.Transaction) error {
	if _, err := fmt.Fprintln(w.bw, MarshalTransaction(tx)); err != nil {
		return fmt.Errorf("writing transaction: %w", err)
	}
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("flushing transaction log: %w", err)
	}
	return nil
}

// Close flushes pending output and releases the underlying file. Calling it
// more than once is harmless.
func (w *Writer) Close() error {
	err := w.bw.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
		w.closer = nil
	}
	return err
}

// MarshalTransaction formats a transaction as a log line (without newline).
func MarshalTransaction(tx model.Transaction) string {
	row := make([]string, numFields)
	row[colNumber] = tx.AccountNumber
	row[colKind] = string(tx.Kind)
	row[colAmount] = tx.Amount.String()
	return strings.Join(row, " ")
}

// UnmarshalTransaction parses one log line.
func UnmarshalTransaction(line string) (model.Transaction, error) {
	record := strings.Fields(line)
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	kind := model.TransactionKind(record[colKind])
	if kind != model.TxDeposit && kind != model.TxWithdrawal {
		return model.Transaction{}, fmt.Errorf("unknown transaction type %q", record[colKind])
	}

	amount, err := model.ParseAmount(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Transaction{
		AccountNumber: record[colNumber],
		Kind:          kind,
		Amount:        amount,
	}, nil
}

// Read returns all transactions in the log at path.
// Returns an empty slice if the file does not exist.
func Read(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening transaction log: %w", err)
	}
	defer f.Close()

	return ReadTransactions(f)
}

// ReadTransactions parses a log stream. Blank lines are ignored.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	sc := bufio.NewScanner(r)

	var txns []model.Transaction
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tx, err := UnmarshalTransaction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		txns = append(txns, tx)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading transaction log: %w", err)
	}
	return txns, nil
}
