package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandResponseFiles replaces every "@path" argument with the
// whitespace-separated tokens stored in that file. Relative paths resolve
// against baseDir. Tokens are not unquoted, so a value containing spaces
// splits into several arguments. Expansion is not recursive.
func ExpandResponseFiles(args []string, baseDir string) ([]string, error) {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) < 2 || arg[0] != '@' {
			expanded = append(expanded, arg)
			continue
		}

		path := arg[1:]
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read response file %s: %w", arg[1:], err)
		}
		expanded = append(expanded, strings.Fields(string(b))...)
	}
	return expanded, nil
}
