package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/config"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/scan"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/stats"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/store"
)

func analyzeCmd() *cobra.Command {
	var dir string
	var refresh, prune bool

	cmd := &cobra.Command{
		Use:   "analyze [file.txt]",
		Short: "Analyze a chat export (or every export under a directory) and cache the results",
		Args:  cobra.MaximumNArgs(1),
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

			if len(args) == 1 {
				s, cached, err := loadSummary(db, cfg, args[0], refresh)
				if err != nil {
					return err
				}
				note := ""
				if cached {
					note = " (cached)"
				}
				fmt.Fprintf(os.Stderr, "%s: %d messages, %d conversations%s\n",
					filepath.Base(args[0]), s.TotalMessages, s.ConversationCount, note)
				return nil
			}

			root := dir
			if root == "" {
				root = cfg.ExportRoot
			}
			fmt.Fprintf(os.Stderr, "Scanning %s...\n", root)
			files, err := scan.ScanRoot(root)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			seen := make(map[string]struct{}, len(files))
			analyzed, fresh, failed := 0, 0, 0
			for _, f := range files {
				seen[f.Path] = struct{}{}
				if !refresh {
					ok, err := db.Fresh(f.Path, f.Mtime, f.Size)
					if err != nil {
						return err
					}
					if ok {
						fresh++
						continue
					}
				}
				s, err := analyzeFile(cfg, f.Path)
				if err != nil {
					// non-chat .txt files are expected under a downloads dir
					fmt.Fprintf(os.Stderr, "  skip %s: %v\n", f.Path, err)
					failed++
					continue
				}
				if err := db.Put(f.Path, f.Mtime, f.Size, s); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "  %s: %d messages\n", filepath.Base(f.Path), s.TotalMessages)
				analyzed++
			}

			if prune {
				n, err := db.Prune(seen)
				if err != nil {
					return err
				}
				if n > 0 {
					fmt.Fprintf(os.Stderr, "Pruned %d stale entries.\n", n)
				}
			}

			fmt.Fprintf(os.Stderr, "Done. %d analyzed, %d up to date, %d skipped.\n", analyzed, fresh, failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to scan for exports (default: export_root from config)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-analyze even when the cache is fresh")
	cmd.Flags().BoolVar(&prune, "prune", false, "Drop cache entries for files no longer present")

	return cmd
}

// analyzeFile reads and analyzes one export file, bypassing the cache.
func analyzeFile(cfg *config.Config, path string) (*stats.Summary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := stats.Analyze(string(raw), cfg.TopWords, cfg.TopEmojis)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}
	return s, nil
}

// loadSummary returns the summary for path, from the cache when it is
// still fresh, otherwise analyzing and caching. The bool reports a
// cache hit.
func loadSummary(db *store.DB, cfg *config.Config, path string, refresh bool) (*stats.Summary, bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, false, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, false, err
	}

	if !refresh {
		ok, err := db.Fresh(abs, info.ModTime().Unix(), info.Size())
		if err != nil {
			return nil, false, err
		}
		if ok {
			_, s, err := db.Get(abs)
			if err != nil {
				return nil, false, err
			}
			return s, true, nil
		}
	}

	s, err := analyzeFile(cfg, abs)
	if err != nil {
		return nil, false, err
	}
	if err := db.Put(abs, info.ModTime().Unix(), info.Size(), s); err != nil {
		return nil, false, err
	}
	return s, false, nil
}
