package shell

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/teller/internal/accounts"
	"github.com/cleared-dev/teller/internal/model"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func run(t *testing.T, bank *accounts.Service, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, bank, "Test Bank")
	require.NoError(t, sh.Run())
	return out.String()
}

func TestRun_Exit(t *testing.T) {
	out := run(t, accounts.NewService(nil, nil), "6")
	assert.Contains(t, out, "  Welcome To Test Bank  \n")
	assert.Contains(t, out, "6. EXIT\n")
	assert.True(t, strings.HasSuffix(out, "THANK YOU FOR BANKING WITH US, HAVE A GREAT DAY!\n"))
}

func TestRun_EndOfInputEndsSession(t *testing.T) {
	var out bytes.Buffer
	sh := New(strings.NewReader("1\nS1\n"), &out, accounts.NewService(nil, nil), "Test Bank")
	assert.NoError(t, sh.Run())
}

func TestRun_InvalidChoices(t *testing.T) {
	out := run(t, accounts.NewService(nil, nil), "abc", "9", "6")
	assert.Contains(t, out, "Invalid input. Please enter a number.\n")
	assert.Contains(t, out, "Invalid Choice!\n")
	assert.Equal(t, 3, strings.Count(out, "OUR SERVICES:"))
}

func TestRun_SavingsScenario(t *testing.T) {
	bank := accounts.NewService(nil, nil)
	out := run(t, bank,
		"1", "S1", "Alice", "100", "5",
		"3", "S1", "50",
		"4", "S1", "200",
		"6",
	)

	assert.Contains(t, out, "Account Created Successfully!")
	assert.Contains(t, out, "Deposit Successful!")
	assert.Contains(t, out, "Insufficient Funds!")

	acct, ok := bank.Find("S1")
	require.True(t, ok)
	assert.Equal(t, "Alice", acct.Owner)
	assert.Equal(t, model.KindSavings, acct.Kind)
	assert.True(t, acct.Balance.Equal(dec("150")), "balance: got %s", acct.Balance)
	assert.True(t, acct.InterestRate.Equal(dec("5")))

	require.Len(t, bank.Transactions(), 1)
	assert.Equal(t, model.TxDeposit, bank.Transactions()[0].Kind)
}

func TestRun_CurrentScenario(t *testing.T) {
	bank := accounts.NewService(nil, nil)
	out := run(t, bank,
		"2", "C1", "Bob", "0", "100",
		"4", "C1", "80",
		"4", "C1", "30",
		"6",
	)

	assert.Equal(t, 1, strings.Count(out, "Withdrawal Successful!"))
	assert.Equal(t, 1, strings.Count(out, "Insufficient Funds!"))

	acct, _ := bank.Find("C1")
	assert.True(t, acct.Balance.Equal(dec("-80")), "balance: got %s", acct.Balance)
	require.Len(t, bank.Transactions(), 1)
	assert.Equal(t, model.TxWithdrawal, bank.Transactions()[0].Kind)
}

func TestRun_RetriesInvalidNumbers(t *testing.T) {
	bank := accounts.NewService(nil, nil)
	out := run(t, bank,
		"1", "S1", "Alice", "-5", "ten", "100", "-1", "2.5",
		"2", "C1", "Bob", "0", "-100", "100",
		"3", "S1", "x", "-3", "3",
		"4", "S1", "", "-1", "1",
		"6",
	)

	assert.Equal(t, 2, strings.Count(out, "Invalid balance. Please enter a non-negative number."))
	assert.Equal(t, 1, strings.Count(out, "Invalid rate. Please enter a non-negative number."))
	assert.Equal(t, 1, strings.Count(out, "Invalid limit. Please enter a non-negative number."))
	assert.Equal(t, 4, strings.Count(out, "Invalid amount. Please enter a non-negative number."))

	s1, _ := bank.Find("S1")
	assert.True(t, s1.Balance.Equal(dec("102")), "balance: got %s", s1.Balance)
	c1, _ := bank.Find("C1")
	assert.True(t, c1.OverdraftLimit.Equal(dec("100")))
}

func TestRun_DuplicateAccount(t *testing.T) {
	bank := accounts.NewService(nil, nil)
	out := run(t, bank,
		"1", "S1", "Alice", "100", "5",
		"2", "S1", "Mallory", "0", "50",
		"6",
	)

	assert.Contains(t, out, "Account number already exists!")
	assert.Equal(t, 1, bank.Len())
	acct, _ := bank.Find("S1")
	assert.Equal(t, "Alice", acct.Owner)
}

func TestRun_AccountNotFound(t *testing.T) {
	bank := accounts.NewService(nil, nil)
	out := run(t, bank, "3", "X1", "4", "X1", "6")

	assert.Equal(t, 2, strings.Count(out, "Account Not Found!"))
	assert.NotContains(t, out, "Enter Amount", "no amount prompt for a missing account")
	assert.Empty(t, bank.Transactions())
}

func TestRun_ListEmpty(t *testing.T) {
	out := run(t, accounts.NewService(nil, nil), "5", "6")
	assert.Contains(t, out, ":..ENTER YOUR CHOICE [1-6]: No accounts available.\n")
}

func TestRun_List(t *testing.T) {
	bank := accounts.NewService(nil, nil)
	require.NoError(t, bank.Add(model.NewSavings("S1", "Alice", dec("150"), dec("5"))))

	out := run(t, bank, "5", "6")
	assert.Contains(t, out, "==== Account Holder List ====\n[Savings Account]\nAccount Number: S1\n")
}

func TestRun_OwnerNameWithSpaces(t *testing.T) {
	bank := accounts.NewService(nil, nil)
	run(t, bank, "1", "S1 ignored", "Alice Smith", "1", "1", "6")

	acct, ok := bank.Find("S1")
	require.True(t, ok)
	assert.Equal(t, "Alice Smith", acct.Owner)
}

func TestRun_RejectsOutOfRangeAmounts(t *testing.T) {
	bank := accounts.NewService(nil, nil)
	out := run(t, bank,
		"1", "S1", "Alice", "1e400", "100", "1e-50000000", "5",
		"3", "S1", "1e-50000000", "1e-2000000000", "0.5",
		"6",
	)

	assert.Equal(t, 1, strings.Count(out, "Invalid balance. Please enter a non-negative number."))
	assert.Equal(t, 1, strings.Count(out, "Invalid rate. Please enter a non-negative number."))
	assert.Equal(t, 2, strings.Count(out, "Invalid amount. Please enter a non-negative number."))

	acct, ok := bank.Find("S1")
	require.True(t, ok)
	assert.True(t, acct.Balance.Equal(dec("100.5")), "balance: got %s", acct.Balance)
	assert.True(t, acct.InterestRate.Equal(dec("5")))
	require.Len(t, bank.Transactions(), 1)
	assert.True(t, bank.Transactions()[0].Amount.Equal(dec("0.5")))
}
