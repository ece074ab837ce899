package scan

import (
	"os"
	"path/filepath"
	"strings"
)

type FileInfo struct {
	Path  string
	Mtime int64
	Size  int64
}

// ScanRoot walks a directory for WhatsApp export files. Exports are
// plain .txt; the exported filename usually starts with "WhatsApp Chat
// with", but any .txt is accepted so renamed files still show up.
func ScanRoot(root string) ([]FileInfo, error) {
	var files []FileInfo
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".txt" {
			return nil
		}
		files = append(files, FileInfo{
			Path:  path,
			Mtime: info.ModTime().Unix(),
			Size:  info.Size(),
		})
		return nil
	})
	return files, err
}
