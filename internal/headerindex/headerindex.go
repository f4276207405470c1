// Package headerindex builds the filename -> paths mapping used to
// resolve include references across multiple source trees.
package headerindex

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options controls which files a scan records.
type Options struct {
	// SkipDirs are build-artifact directory names excluded by component
	// match anywhere in a path (e.g. Intermediate, Binaries).
	SkipDirs []string

	// Extensions are the header extensions to index (e.g. .h, .hpp),
	// compared case-insensitively.
	Extensions []string
}

// DefaultOptions returns the conventional skip list and header extensions.
func DefaultOptions() Options {
	return Options{
		SkipDirs:   []string{"Intermediate", "Binaries"},
		Extensions: []string{".h", ".hpp"},
	}
}

// Index maps header filenames to every absolute path carrying that name.
// It is immutable after Build; candidate order is filesystem-traversal
// order and carries no priority.
type Index struct {
	byName map[string][]string
}

// Build scans the given roots recursively. Roots that do not exist are
// skipped silently, as are unreadable entries.
func Build(roots []string, opts Options, logger *slog.Logger) *Index {
	skip := make(map[string]bool, len(opts.SkipDirs))
	for _, d := range opts.SkipDirs {
		skip[d] = true
	}

	byName := make(map[string][]string)
	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err != nil {
			logger.Debug("Skipping missing root", "root", abs)
			continue
		}

		walkErr := filepath.Walk(abs, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // skip unreadable entries, keep walking
			}
			if info.IsDir() {
				if skip[info.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if hasExtension(path, opts.Extensions) {
				name := filepath.Base(path)
				byName[name] = append(byName[name], path)
			}
			return nil
		})
		if walkErr != nil {
			logger.Warn("Scan aborted for root", "root", abs, "error", walkErr.Error())
		}
	}

	return &Index{byName: byName}
}

// FromSnapshot restores an index from a serialized mapping.
func FromSnapshot(byName map[string][]string) *Index {
	if byName == nil {
		byName = make(map[string][]string)
	}
	return &Index{byName: byName}
}

// Snapshot exposes the underlying mapping for serialization. Callers
// must not mutate it.
func (x *Index) Snapshot() map[string][]string {
	return x.byName
}

// Candidates returns every known path for a header filename. The
// filename is matched case-sensitively.
func (x *Index) Candidates(filename string) []string {
	return x.byName[filename]
}

// HeaderCount returns the number of unique header filenames.
func (x *Index) HeaderCount() int {
	return len(x.byName)
}

// PathCount returns the total number of indexed paths.
func (x *Index) PathCount() int {
	total := 0
	for _, paths := range x.byName {
		total += len(paths)
	}
	return total
}

// hasExtension reports whether the path ends with one of the given
// extensions, case-insensitively.
func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
