// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindTopLevel lists the regular files directly inside dir (no recursion)
// whose extension, without the leading dot, is one of exts. Matching is
// exact and case-sensitive. Each path is dir joined with the entry name, and
// every path appears at most once.
//
// Results are grouped by extension in the order exts is given, and by
// directory order within a group. Callers that need a stable order sort the
// result themselves.
func FindTopLevel(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		panic("fsutil: at least one extension is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	var files []string
	seen := make(map[string]struct{})
	for _, ext := range exts {
		suffix := "." + ext
		for _, e := range entries {
			if !isRegular(dir, e) || filepath.Ext(e.Name()) != suffix {
				continue
			}
			p := filepath.Join(dir, e.Name())
			if _, wasSeen := seen[p]; wasSeen {
				continue
			}
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}
	return files, nil
}

// isRegular follows symlinks so a link to a source file is bundled like the file itself.
func isRegular(dir string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}
