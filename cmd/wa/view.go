package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/config"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/store"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/tui"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file.txt>",
		Short: "Browse a chat summary in an interactive panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			s, _, err := loadSummary(db, cfg, args[0], false)
			if err != nil {
				return err
			}

			title := strings.TrimSuffix(filepath.Base(args[0]), ".txt")
			return tui.Run(title, s)
		},
	}
}
