// Package shell runs the interactive teller menu.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/teller/internal/accounts"
	"github.com/cleared-dev/teller/internal/model"
)

const (
	choiceAddSavings = iota + 1
	choiceAddCurrent
	choiceDeposit
	choiceWithdraw
	choiceList
	choiceExit
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
)

// Shell reads menu choices from In and writes prompts to Out.
type Shell struct {
	in    *bufio.Scanner
	out   io.Writer
	bank  *accounts.Service
	title string
}

// New creates a Shell operating on bank.
func New(in io.Reader, out io.Writer, bank *accounts.Service, title string) *Shell {
	return &Shell{
		in:    bufio.NewScanner(in),
		out:   out,
		bank:  bank,
		title: title,
	}
}

// Run loops over the menu until the user exits or input ends. Either way it
// returns nil so the caller can save; only a read failure is an error.
func (s *Shell) Run() error {
	for {
		s.menu()
		line, err := s.readLine(":..ENTER YOUR CHOICE [1-6]: ")
		if err != nil {
			return endOfInput(err)
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			warnColor.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		}

		switch choice {
		case choiceAddSavings:
			err = s.addAccount(model.KindSavings)
		case choiceAddCurrent:
			err = s.addAccount(model.KindCurrent)
		case choiceDeposit:
			err = s.deposit()
		case choiceWithdraw:
			err = s.withdraw()
		case choiceList:
			err = s.bank.DisplayAll(s.out)
		case choiceExit:
			fmt.Fprintln(s.out, "THANK YOU FOR BANKING WITH US, HAVE A GREAT DAY!")
			return nil
		default:
			failColor.Fprintln(s.out, "Invalid Choice!")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func (s *Shell) menu() {
	fmt.Fprintln(s.out, "====================================")
	fmt.Fprintf(s.out, "  Welcome To %s  \n", s.title)
	fmt.Fprintln(s.out, "====================================")
	fmt.Fprintln(s.out, "OUR SERVICES:")
	fmt.Fprintln(s.out, "1. ADD SAVINGS ACCOUNT")
	fmt.Fprintln(s.out, "2. ADD CURRENT ACCOUNT")
	fmt.Fprintln(s.out, "3. CASH DEPOSIT")
	fmt.Fprintln(s.out, "4. CASH WITHDRAWAL")
	fmt.Fprintln(s.out, "5. ALL ACCOUNT HOLDER LIST")
	fmt.Fprintln(s.out, "6. EXIT")
}

func (s *Shell) addAccount(kind model.AccountKind) error {
	number, err := s.readWord("Enter Account Number: ")
	if err != nil {
		return err
	}
	owner, err := s.readText("Enter Owner Name: ")
	if err != nil {
		return err
	}
	balance, err := s.readNonNegative("Enter Initial Balance: ", "balance")
	if err != nil {
		return err
	}

	var acct *model.Account
	if kind == model.KindSavings {
		rate, err := s.readNonNegative("Enter Interest Rate: ", "rate")
		if err != nil {
			return err
		}
		acct = model.NewSavings(number, owner, balance, rate)
	} else {
		limit, err := s.readNonNegative("Enter Overdraft Limit: ", "limit")
		if err != nil {
			return err
		}
		acct = model.NewCurrent(number, owner, balance, limit)
	}

	if err := s.bank.Add(acct); err != nil {
		failColor.Fprintln(s.out, "Account number already exists!")
		return nil
	}
	okColor.Fprintln(s.out, "Account Created Successfully!")
	return nil
}

func (s *Shell) deposit() error {
	number, err := s.readWord("Enter Account Number: ")
	if err != nil {
		return err
	}
	if _, ok := s.bank.Find(number); !ok {
		failColor.Fprintln(s.out, "Account Not Found!")
		return nil
	}
	amount, err := s.readNonNegative("Enter Amount to Deposit: ", "amount")
	if err != nil {
		return err
	}

	// A log write failure is reported by the registry; the deposit stands.
	_ = s.bank.Deposit(number, amount)
	okColor.Fprintln(s.out, "Deposit Successful!")
	return nil
}

func (s *Shell) withdraw() error {
	number, err := s.readWord("Enter Account Number: ")
	if err != nil {
		return err
	}
	if _, ok := s.bank.Find(number); !ok {
		failColor.Fprintln(s.out, "Account Not Found!")
		return nil
	}
	amount, err := s.readNonNegative("Enter Amount to Withdraw: ", "amount")
	if err != nil {
		return err
	}

	ok, _ := s.bank.Withdraw(number, amount)
	if !ok {
		failColor.Fprintln(s.out, "Insufficient Funds!")
		return nil
	}
	okColor.Fprintln(s.out, "Withdrawal Successful!")
	return nil
}

// readLine prints prompt and returns the next input line, trimmed.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// readWord returns the first whitespace-separated word, prompting again on
// blank lines. The rest of the line is discarded.
func (s *Shell) readWord(prompt string) (string, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], nil
		}
	}
}

// readText returns a non-blank line.
func (s *Shell) readText(prompt string) (string, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

// readNonNegative prompts until the input parses as an in-range decimal >= 0.
func (s *Shell) readNonNegative(prompt, what string) (decimal.Decimal, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := model.ParseAmount(line)
		if err == nil && !d.IsNegative() {
			return d, nil
		}
		warnColor.Fprintf(s.out, "Invalid %s. Please enter a non-negative number.\n", what)
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
