package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/teller/internal/accounts"
	"github.com/cleared-dev/teller/internal/buildinfo"
	"github.com/cleared-dev/teller/internal/config"
	"github.com/cleared-dev/teller/internal/logging"
	"github.com/cleared-dev/teller/internal/shell"
	"github.com/cleared-dev/teller/internal/txlog"
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath       string
	accountsFile     string
	transactionsFile string
	logLevel         string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Running it without a subcommand starts the interactive menu.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "teller",
		Short:   "Console banking ledger for savings and current accounts",
		Version: buildinfo.String(),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.FileName, "config file")
	flags.StringVar(&opts.accountsFile, "accounts", "", "accounts file (overrides config)")
	flags.StringVar(&opts.transactionsFile, "transactions", "", "transaction log (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newHistoryCommand(opts))
	rootCmd.AddCommand(newApplyInterestCommand(opts))

	return rootCmd
}

// settings loads the config and applies flag overrides. An explicitly named
// config file must exist; the default one is optional.
func (o *options) settings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadOrDefault(o.configPath)
	}
	if err != nil {
		return nil, nil, err
	}

	if o.accountsFile != "" {
		cfg.Storage.AccountsFile = o.accountsFile
	}
	if o.transactionsFile != "" {
		cfg.Storage.TransactionsFile = o.transactionsFile
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// loadBank builds a registry from the accounts file. A load error is logged;
// whatever was read before it is kept.
func loadBank(cfg *config.Config, txw accounts.TransactionWriter, logger *slog.Logger) *accounts.Service {
	bank := accounts.NewService(txw, logger)
	if err := bank.Load(cfg.Storage.AccountsFile); err != nil {
		logger.Error("loading accounts", "path", cfg.Storage.AccountsFile, "error", err)
	}
	return bank
}

// runShell is the interactive session: open the log, load, run the menu,
// save, close. Storage and input failures are logged, never returned.
func runShell(cmd *cobra.Command, opts *options) error {
	cfg, logger, err := opts.settings(cmd)
	if err != nil {
		return err
	}

	var txw accounts.TransactionWriter
	logFile, err := txlog.Open(cfg.Storage.TransactionsFile)
	if err != nil {
		logger.Error("transactions will not be logged", "error", err)
	} else {
		txw = logFile
		defer func() {
			if err := logFile.Close(); err != nil {
				logger.Error("closing transaction log", "error", err)
			}
		}()
	}

	bank := loadBank(cfg, txw, logger)

	sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), bank, cfg.Bank.Title)
	if err := sh.Run(); err != nil {
		logger.Error("session ended", "error", err)
	}

	if err := bank.Save(cfg.Storage.AccountsFile); err != nil {
		logger.Error("saving accounts", "error", err)
	}
	return nil
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
