// Package scan enumerates candidate image files for a batch run.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions covers the common JPEG and raw formats for the brands
// the resolver knows about.
var DefaultExtensions = []string{
	".jpg", ".jpeg", ".nef", ".arw", ".cr2", ".cr3", ".raf", ".rw2", ".orf", ".dng", ".heic", ".tif", ".tiff",
}

// Options controls folder enumeration.
type Options struct {
	// Extensions is the case-insensitive allowlist. Empty means
	// DefaultExtensions.
	Extensions []string
	// Recursive walks subdirectories. The default inspects only the
	// folder itself, matching how a seller's sample batch is delivered.
	Recursive bool
}

// Folder returns the matching files under root in sorted order, so the
// enumeration order feeding the analysis is stable across runs.
func Folder(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan folder: %s is not a directory", root)
	}

	allowed := extensionSet(opts.Extensions)

	var matches []string
	if opts.Recursive {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return nil
			}
			if allowed[strings.ToLower(filepath.Ext(path))] {
				matches = append(matches, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
	} else {
		entries, readErr := os.ReadDir(root)
		if readErr != nil {
			return nil, fmt.Errorf("scan folder: %w", readErr)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if allowed[strings.ToLower(filepath.Ext(entry.Name()))] {
				matches = append(matches, filepath.Join(root, entry.Name()))
			}
		}
	}

	sort.Strings(matches)
	return matches, nil
}

func extensionSet(exts []string) map[string]bool {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}
