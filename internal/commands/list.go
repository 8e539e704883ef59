package commands

import (
	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all accounts without starting the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			return loadBank(cfg, nil, logger).DisplayAll(cmd.OutOrStdout())
		},
	}
}
