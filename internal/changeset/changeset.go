// Package changeset discovers files to sort from git diffs.
package changeset

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"
)

// Mode selects which git change set to inspect.
type Mode string

const (
	// ModeWorking covers modified files in the working tree (diff vs HEAD).
	ModeWorking Mode = "working"

	// ModeStaged covers files added to the index (diff --cached).
	ModeStaged Mode = "staged"

	// ModeBranch covers files changed on this branch relative to a target
	// branch (triple-dot diff against the common ancestor).
	ModeBranch Mode = "branch"
)

// Finder lists changed source files from a git repository.
type Finder struct {
	startDir string
	exts     []string
	logger   *slog.Logger
}

// NewFinder creates a Finder rooted at startDir. exts are the source
// extensions to keep (e.g. .cpp, .h).
func NewFinder(startDir string, exts []string, logger *slog.Logger) *Finder {
	return &Finder{startDir: startDir, exts: exts, logger: logger}
}

// Changed returns absolute paths of changed source files for the given
// mode. branch is only used with ModeBranch. Files reported by git that
// no longer exist on disk (deletions) are dropped.
func (f *Finder) Changed(mode Mode, branch string) ([]string, error) {
	root, err := f.gitToplevel()
	if err != nil {
		return nil, err
	}

	var diffArgs []string
	switch mode {
	case ModeStaged:
		diffArgs = []string{"diff", "--cached"}
	case ModeBranch:
		if branch == "" {
			return nil, fmt.Errorf("branch mode requires a target branch")
		}
		diffArgs = []string{"diff", branch + "...HEAD"}
	default:
		diffArgs = []string{"diff", "HEAD"}
	}

	cmd := exec.Command("git", diffArgs...)
	cmd.Dir = f.startDir
	patch, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git %s: %w", strings.Join(diffArgs, " "), err)
	}

	var result []string
	for _, rel := range f.pathsFromPatch(patch) {
		abs := filepath.Join(root, rel)
		if _, err := os.Stat(abs); err != nil {
			continue
		}
		result = append(result, abs)
	}
	return Dedupe(result), nil
}

// pathsFromPatch parses a unified diff and returns the effective
// repo-relative path of every changed file with a wanted extension.
func (f *Finder) pathsFromPatch(patch []byte) []string {
	if len(patch) == 0 {
		return nil
	}

	fileDiffs, err := godiff.ParseMultiFileDiff(patch)
	if err != nil {
		f.logger.Warn("Failed to parse git diff output", "error", err.Error())
		return nil
	}

	var paths []string
	for _, fd := range fileDiffs {
		rel := effectivePath(fd)
		if rel == "" || !f.wantedExt(rel) {
			continue
		}
		paths = append(paths, rel)
	}
	return paths
}

// effectivePath returns the post-change path of a file diff, or "" for
// deletions.
func effectivePath(fd *godiff.FileDiff) string {
	if fd.NewName == "" || fd.NewName == "/dev/null" {
		return ""
	}
	return cleanPath(fd.NewName)
}

// cleanPath removes the a/ or b/ prefix from git diff paths.
func cleanPath(path string) string {
	if strings.HasPrefix(path, "a/") || strings.HasPrefix(path, "b/") {
		return path[2:]
	}
	return path
}

// wantedExt reports whether the path carries one of the configured
// source extensions, case-insensitively.
func (f *Finder) wantedExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range f.exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// gitToplevel returns the absolute git repository root.
func (f *Finder) gitToplevel() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = f.startDir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Dedupe removes duplicate paths, keeping first occurrence order.
func Dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var result []string
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, p)
	}
	return result
}
