// Package sorter runs the per-file pipeline: split, resolve, classify,
// regroup, and rewrite.
package sorter

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"incsort/internal/classify"
	"incsort/internal/headerindex"
	"incsort/internal/modules"
	"incsort/internal/resolve"
	"incsort/internal/source"
)

// Status describes the outcome of processing one file.
type Status string

const (
	// StatusRewritten means the file was regrouped and written back.
	StatusRewritten Status = "rewritten"

	// StatusNoIncludes means the file has no include block; it was left
	// untouched.
	StatusNoIncludes Status = "no-includes"
)

// Result reports what happened to one file.
type Result struct {
	Path     string
	Status   Status
	Includes int
}

// Sorter rewrites include blocks using an immutable header index. Files
// are processed independently; a failure in one does not affect others.
type Sorter struct {
	index   *headerindex.Index
	markers modules.Markers
	logger  *slog.Logger
}

// New creates a Sorter over a built (or loaded) index.
func New(index *headerindex.Index, markers modules.Markers, logger *slog.Logger) *Sorter {
	return &Sorter{index: index, markers: markers, logger: logger}
}

// Process rewrites one file in place. The new content is fully built in
// memory before anything is written, so a failure never leaves a partial
// file behind.
func (s *Sorter) Process(file string) (Result, error) {
	target, err := filepath.Abs(file)
	if err != nil {
		return Result{Path: file}, fmt.Errorf("resolving path: %w", err)
	}
	result := Result{Path: target}

	raw, err := os.ReadFile(target)
	if err != nil {
		return result, fmt.Errorf("reading file: %w", err)
	}

	format := source.DetectFormat(raw)
	sections := source.Split(format.Lines(raw))
	if len(sections.Includes) == 0 {
		result.Status = StatusNoIncludes
		return result, nil
	}
	result.Includes = len(sections.Includes)

	groups := s.group(target, sections.Includes)
	text := source.Assemble(sections.Prologue, groups, sections.Epilogue)

	if err := os.WriteFile(target, format.Bytes(text), 0o644); err != nil {
		return result, fmt.Errorf("writing file: %w", err)
	}

	result.Status = StatusRewritten
	return result, nil
}

// group resolves and classifies every include line into emission groups.
func (s *Sorter) group(target string, includes []string) source.Groups {
	groups := source.Groups{
		Other:   make(map[string][]string),
		Plugins: make(map[string][]string),
	}
	editingModule, _ := s.markers.Name(target)

	for _, line := range includes {
		ref, ok := source.Ref(line)
		if !ok {
			// No quoted reference to resolve (e.g. a macro include);
			// treated like an unresolved include so the line survives.
			groups.External = append(groups.External, line)
			continue
		}

		filename := path.Base(strings.ReplaceAll(ref, `\`, "/"))
		candidates := s.index.Candidates(filename)
		resolved, found := resolve.Resolve(ref, candidates, target)

		bucket := classify.Classify(resolved, found, target, editingModule, s.markers)
		switch bucket.Kind {
		case classify.MainHeader:
			groups.Main = append(groups.Main, line)
		case classify.SameModule:
			groups.Same = append(groups.Same, line)
		case classify.OtherModule:
			groups.Other[bucket.Key] = append(groups.Other[bucket.Key], line)
		case classify.Plugin:
			groups.Plugins[bucket.Key] = append(groups.Plugins[bucket.Key], line)
		case classify.Engine:
			groups.Engine = append(groups.Engine, line)
		default:
			groups.External = append(groups.External, line)
		}

		s.logger.Debug("Classified include",
			"ref", ref,
			"bucket", string(bucket.Kind),
			"key", bucket.Key,
			"resolved", resolved)
	}

	return groups
}
