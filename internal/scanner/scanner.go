// Package scanner discovers candidate files for a batch run.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner lists the files under a folder that match the configured
// extension allow-list.
type Scanner struct {
	extensions map[string]bool
	recursive  bool
}

// New builds a scanner for the given extensions (lowercase, with leading
// dot).
func New(extensions []string, recursive bool) *Scanner {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}
	return &Scanner{extensions: allowed, recursive: recursive}
}

// Scan returns the supported files under folder, sorted lexicographically
// for deterministic processing order. A missing folder or a non-directory
// path is a setup error that aborts the whole run.
func (s *Scanner) Scan(folder string) ([]string, error) {
	info, err := os.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("folder not found: %s", folder)
		}
		return nil, fmt.Errorf("can't access folder %s: %w", folder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", folder)
	}

	var files []string
	if s.recursive {
		err = filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if s.supported(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(folder)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(folder, entry.Name())
			if s.supported(path) {
				files = append(files, path)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func (s *Scanner) supported(path string) bool {
	return s.extensions[strings.ToLower(filepath.Ext(path))]
}
