package model

import (
	"github.com/shopspring/decimal"
)

// TransactionKind is the type column of the transaction log.
type TransactionKind string

const (
	TxDeposit    TransactionKind = "Deposit"
	TxWithdrawal TransactionKind = "Withdrawal"
)

// Transaction is one completed deposit or withdrawal.
type Transaction struct {
	AccountNumber string
	Kind          TransactionKind
	Amount        decimal.Decimal
}
