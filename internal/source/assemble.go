package source

import (
	"regexp"
	"sort"
	"strings"
)

// Groups holds classified include lines ready for emission. Main keeps
// its original order; every other group is sorted lexicographically by
// raw line text at assembly time. Other and Plugins are keyed groups
// whose keys are emitted in sorted order.
type Groups struct {
	Main     []string
	Same     []string
	Other    map[string][]string
	Plugins  map[string][]string
	Engine   []string
	External []string
}

// blankRuns matches three or more consecutive newlines, i.e. two or more
// blank lines in a row.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Assemble reconstructs the file text (LF line endings) from the
// prologue, grouped includes, and epilogue.
//
// Trailing blank lines are trimmed from the prologue and one separator
// blank line is enforced before the block. Each non-empty group is
// followed by exactly one blank line. Leading blank lines are trimmed
// from the epilogue. Accumulated blank runs collapse to a single blank
// line, trailing whitespace is stripped, and the text ends with exactly
// one newline.
func Assemble(prologue []string, g Groups, epilogue []string) string {
	var out []string

	top := trimTrailingBlanks(prologue)
	out = append(out, top...)
	out = append(out, "")

	if len(g.Main) > 0 {
		out = append(out, g.Main...)
		out = append(out, "")
	}
	out = appendSorted(out, g.Same)
	out = appendKeyed(out, g.Other)
	out = appendKeyed(out, g.Plugins)
	out = appendSorted(out, g.Engine)
	out = appendSorted(out, g.External)

	bottom := trimLeadingBlanks(epilogue)
	out = append(out, bottom...)

	text := strings.Join(out, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimRight(text, " \t\r\n") + "\n"
}

// appendSorted emits a sorted copy of a group followed by one blank line.
// Empty groups emit nothing.
func appendSorted(out, group []string) []string {
	if len(group) == 0 {
		return out
	}
	sorted := make([]string, len(group))
	copy(sorted, group)
	sort.Strings(sorted)
	out = append(out, sorted...)
	return append(out, "")
}

// appendKeyed emits each keyed group in key order, each sorted and
// followed by one blank line.
func appendKeyed(out []string, groups map[string][]string) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = appendSorted(out, groups[k])
	}
	return out
}

func trimTrailingBlanks(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

func trimLeadingBlanks(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	return lines[start:]
}
