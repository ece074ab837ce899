package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/config"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/scan"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/store"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, export root, DB, and cache state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  Export root: %s\n", cfg.ExportRoot)
			fmt.Printf("  Top words:   %d\n", cfg.TopWords)
			fmt.Printf("  Top emojis:  %d\n", cfg.TopEmojis)

			fmt.Println("\n=== Export Root ===")
			checkDir(cfg.ExportRoot)

			fmt.Println("\n=== File Scan ===")
			files, err := scan.ScanRoot(cfg.ExportRoot)
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
			} else {
				fmt.Printf("  .txt files: %d\n", len(files))
			}

			fmt.Println("\n=== Database ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'wa analyze' first)")
				return nil
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			count, err := db.Count()
			if err != nil {
				return fmt.Errorf("count summaries: %w", err)
			}
			fmt.Printf("  Cached summaries: %d\n", count)

			entries, err := db.All()
			if err != nil {
				return fmt.Errorf("list summaries: %w", err)
			}
			stale := 0
			for _, e := range entries {
				info, err := os.Stat(e.Path)
				if err != nil || info.ModTime().Unix() != e.Mtime || info.Size() != e.Size {
					stale++
				}
			}
			if stale > 0 {
				fmt.Printf("  Status: %d stale entries (run 'wa analyze --prune')\n", stale)
			} else {
				fmt.Println("  Status: OK (cache in sync)")
			}

			if info, err := os.Stat(cfg.DBPath); err == nil {
				sizeMB := float64(info.Size()) / 1024 / 1024
				fmt.Printf("\n=== DB Size: %.1f MB ===\n", sizeMB)
			}

			return nil
		},
	}
}

func checkDir(path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s (NOT FOUND)\n", path)
	} else if !info.IsDir() {
		fmt.Printf("  %s (NOT A DIRECTORY)\n", path)
	} else {
		fmt.Printf("  %s (OK)\n", path)
	}
}
