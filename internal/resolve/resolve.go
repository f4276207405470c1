// Package resolve maps an include directive's textual reference to one
// concrete filesystem path among candidates sharing the same basename.
//
// Resolution is a two-stage heuristic: an exact suffix match on the
// written reference, then a nearest-path fallback. The fallback can pick
// a path-wise closer but semantically wrong header when a codebase reuses
// basenames across modules; that imprecision is accepted.
package resolve

import (
	"path/filepath"
	"strings"
)

// Resolve picks the single target path for an include reference.
//
// With no candidates the include is unresolved (ok=false), which is a
// valid terminal state rather than an error. A single candidate always
// wins regardless of the reference text. Multiple candidates are
// disambiguated by ExactSuffix, then by Nearest relative to the file
// being edited.
func Resolve(ref string, candidates []string, editingFile string) (string, bool) {
	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0], true
	}
	if match, ok := ExactSuffix(ref, candidates); ok {
		return match, true
	}
	return Nearest(editingFile, candidates), true
}

// ExactSuffix returns the candidate whose forward-slash path ends with
// the reference string (backslashes in the reference normalized first).
func ExactSuffix(ref string, candidates []string) (string, bool) {
	clean := strings.ReplaceAll(ref, `\`, "/")
	for _, c := range candidates {
		if strings.HasSuffix(filepath.ToSlash(c), clean) {
			return c, true
		}
	}
	return "", false
}

// Nearest returns the candidate whose parent directory shares the longest
// leading path-component sequence with the editing file's directory.
// Candidates must be non-empty. Ties pick the lexicographically smaller
// path so the result does not depend on filesystem traversal order.
func Nearest(editingFile string, candidates []string) string {
	editingParts := splitDir(editingFile)

	best := ""
	bestScore := -1
	for _, c := range candidates {
		score := commonPrefixLen(editingParts, splitDir(c))
		if score > bestScore || (score == bestScore && c < best) {
			bestScore = score
			best = c
		}
	}
	return best
}

// commonPrefixLen counts matching leading components, stopping at the
// first mismatch.
func commonPrefixLen(a, b []string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	score := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			break
		}
		score++
	}
	return score
}

// splitDir returns the components of a path's parent directory.
func splitDir(path string) []string {
	dir := filepath.ToSlash(filepath.Dir(path))
	raw := strings.Split(dir, "/")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
