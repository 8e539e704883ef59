package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/teller/internal/accounts"
	"github.com/cleared-dev/teller/internal/model"
)

func newApplyInterestCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply-interest [account]",
		Short: "Credit interest to one Savings account, or to all of them",
		Long: "Credit interest to one Savings account, or to all of them.\n" +
			"Interest is not written to the transaction log.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			bank := loadBank(cfg, nil, logger)

			targets := bank.All()
			if len(args) > 0 {
				acct, ok := bank.Find(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", accounts.ErrAccountNotFound, args[0])
				}
				if acct.Kind != model.KindSavings {
					return fmt.Errorf("account %s is a %s account", acct.Number, acct.Kind)
				}
				targets = []*model.Account{acct}
			}

			for _, acct := range targets {
				before := acct.Balance
				if acct.ApplyInterest() {
					printf(cmd, "%s: %s -> %s\n", acct.Number, before, acct.Balance)
				}
			}

			if err := bank.Save(cfg.Storage.AccountsFile); err != nil {
				return fmt.Errorf("saving accounts: %w", err)
			}
			return nil
		},
	}
}
