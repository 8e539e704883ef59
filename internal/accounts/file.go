package accounts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/teller/internal/model"
)

const (
	numFields  = 4
	colType    = 0
	colNumber  = 1
	colBalance = 2
	colAux     = 3
)

// OwnerPrefix is prepended to the account number to name the owner of a
// loaded account. The accounts file does not store owner names.
const OwnerPrefix = "User"

// ReadAccounts reads an accounts file. Reading stops quietly at the first
// malformed line; the accounts before it are returned. Blank lines and lines
// with an unrecognized type tag are skipped.
func ReadAccounts(r io.Reader) ([]*model.Account, error) {
	sc := bufio.NewScanner(r)

	var accounts []*model.Account
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		acct, err := UnmarshalAccount(line)
		if errors.Is(err, model.ErrUnknownKind) {
			continue
		}
		if err != nil {
			break
		}
		accounts = append(accounts, acct)
	}
	if err := sc.Err(); err != nil {
		return accounts, fmt.Errorf("reading accounts file: %w", err)
	}
	return accounts, nil
}

// WriteAccounts writes one line per account.
func WriteAccounts(w io.Writer, accounts []*model.Account) error {
	bw := bufio.NewWriter(w)
	for i, acct := range accounts {
		if _, err := fmt.Fprintln(bw, MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing account %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}

// MarshalAccount formats an account as "type number balance aux".
func MarshalAccount(acct *model.Account) string {
	row := make([]string, numFields)
	row[colType] = acct.Kind.String()
	row[colNumber] = acct.Number
	row[colBalance] = acct.Balance.String()
	row[colAux] = acct.Aux().String()
	return strings.Join(row, " ")
}

// UnmarshalAccount parses one accounts-file line.
func UnmarshalAccount(line string) (*model.Account, error) {
	record := strings.Fields(line)
	if len(record) != numFields {
		return nil, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	balance, err := model.ParseAmount(record[colBalance])
	if err != nil {
		return nil, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	aux, err := model.ParseAmount(record[colAux])
	if err != nil {
		return nil, fmt.Errorf("parsing %s parameter %q: %w", record[colType], record[colAux], err)
	}

	number := record[colNumber]
	return model.New(model.AccountKind(record[colType]), number, OwnerPrefix+number, balance, aux)
}
