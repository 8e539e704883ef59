package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/teller/internal/config"
)

func newInitCommand() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a teller data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, title); err != nil {
				return err
			}
			printf(cmd, "Initialized teller data directory at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "bank name shown in the menu")

	return cmd
}

func runInit(dir, title string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	// Write teller.yaml with relative paths so the directory can be moved.
	cfg := config.Default(title)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Create empty data files, leaving existing ones alone.
	for _, name := range []string{cfg.Storage.AccountsFile, cfg.Storage.TransactionsFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
	}

	return nil
}
