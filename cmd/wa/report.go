package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/config"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/render"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/store"
)

func reportCmd() *cobra.Command {
	var section string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "report <file.txt>",
		Short: "Print a text report for a chat export",
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

			opts := render.Options{Width: 80}
			if term.IsTerminal(int(os.Stdout.Fd())) {
				opts.Color = !noColor
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
					opts.Width = w
				}
			}

			if section != "" {
				out := render.Section(s, section, opts)
				if out == "" {
					return fmt.Errorf("unknown section %q (one of %v)", section, render.SectionNames())
				}
				fmt.Print(out)
				return nil
			}

			fmt.Print(render.Report(s, opts))
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Render a single section (e.g. \"Sentiment\")")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")

	return cmd
}
