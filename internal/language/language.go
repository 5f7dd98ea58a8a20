package language

import (
	"strings"
)

// All is the token that selects every supported language.
const All = "all"

// supported is the Supported Language Set, in its canonical order.
var supported = []string{"cs", "c", "cpp", "js", "jsx", "py", "java"}

// Supported returns a copy of the supported extensions (without the leading dot).
func Supported() []string {
	return append([]string(nil), supported...)
}

// IsSupported reports whether ext (lower-case, no dot) is a supported language.
func IsSupported(ext string) bool {
	for _, s := range supported {
		if s == ext {
			return true
		}
	}
	return false
}

// Resolve turns a requested languages string into the ordered list of
// selected extensions.
//
// "all" (case-insensitive) selects the whole set. Otherwise the string is
// split on commas and each token is trimmed and lower-cased; unsupported
// tokens are dropped silently and duplicates keep their first position.
// An empty result means no valid language was requested.
func Resolve(requested string) []string {
	if strings.EqualFold(strings.TrimSpace(requested), All) {
		return Supported()
	}

	var selected []string
	seen := make(map[string]struct{})
	for _, tok := range strings.Split(requested, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" || !IsSupported(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		selected = append(selected, tok)
	}
	return selected
}
