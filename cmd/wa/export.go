package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/config"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/export"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/store"
)

func exportCmd() *cobra.Command {
	var jsonPath, csvDir string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "export <file.txt>",
		Short: "Export a chat summary as JSON or CSV",
		Long: `Exports the analyzed summary. With --json - the JSON is written to
stdout; with --csv a directory of CSV tables is produced. Both flags may
be combined.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonPath == "" && csvDir == "" {
				return fmt.Errorf("nothing to do: pass --json and/or --csv")
			}

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

			if jsonPath != "" {
				w := os.Stdout
				if jsonPath != "-" {
					f, err := os.Create(jsonPath)
					if err != nil {
						return fmt.Errorf("create %s: %w", jsonPath, err)
					}
					defer f.Close()
					w = f
				}
				if err := export.JSON(w, s, pretty); err != nil {
					return err
				}
				if jsonPath != "-" {
					fmt.Fprintf(os.Stderr, "Wrote %s\n", jsonPath)
				}
			}

			if csvDir != "" {
				files, err := export.CSV(csvDir, s)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "Wrote %d CSV files to %s\n", len(files), csvDir)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json", "", "Write JSON summary to this path (- for stdout)")
	cmd.Flags().StringVar(&csvDir, "csv", "", "Write CSV tables into this directory")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")

	return cmd
}
