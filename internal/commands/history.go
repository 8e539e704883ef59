package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/teller/internal/txlog"
)

func newHistoryCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "history [account]",
		Short: "Print the transaction log, optionally for one account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.settings(cmd)
			if err != nil {
				return err
			}

			txns, err := txlog.Read(cfg.Storage.TransactionsFile)
			if err != nil {
				return err
			}

			shown := 0
			for _, tx := range txns {
				if len(args) > 0 && tx.AccountNumber != args[0] {
					continue
				}
				printf(cmd, "%s\n", txlog.MarshalTransaction(tx))
				shown++
			}
			if shown == 0 {
				printf(cmd, "No transactions recorded.\n")
			}
			return nil
		},
	}
}
