// Package source handles the lexical layer of include sorting: directive
// recognition, byte-format detection, section splitting, and grouped
// reassembly. It never interprets C++ semantics.
package source

import (
	"regexp"
	"strings"
)

// includeToken starts every include directive this tool recognizes.
const includeToken = "#include"

// refPattern captures the reference between "..." or <...>.
var refPattern = regexp.MustCompile(`#include\s+["<]([^">]+)[">]`)

// IsInclude reports whether a line's trimmed text begins with the
// include token.
func IsInclude(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), includeToken)
}

// Ref extracts the path-like reference from an include line, preserving
// the raw line for the caller. Lines like `#include SOME_MACRO` carry no
// quoted reference and return ok=false.
func Ref(line string) (string, bool) {
	m := refPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
