package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"incsort/internal/cache"
	"incsort/internal/changeset"
	"incsort/internal/config"
	"incsort/internal/headerindex"
	"incsort/internal/modules"
	"incsort/internal/sorter"
)

var (
	sortLocal   bool
	sortStaged  bool
	sortBranch  string
	sortReindex bool
)

var sortCmd = &cobra.Command{
	Use:   "sort [files...]",
	Short: "Sort includes in the given files or a git change set",
	Long: `Sort #include directives in C++ source files.

Files can be listed explicitly, taken from a git change set, or both.
The combined list is deduplicated before processing.

Examples:
  incsort sort Source/Widgets/Private/WidgetPanel.cpp
  incsort sort --local          # changed files in the working tree
  incsort sort --staged         # staged files only
  incsort sort --mr origin/main # files changed vs a target branch
  incsort sort --reindex f.cpp  # rebuild the header index first`,
	RunE: runSort,
}

func init() {
	sortCmd.Flags().BoolVar(&sortLocal, "local", false,
		"Process files changed in the working tree")
	sortCmd.Flags().BoolVar(&sortStaged, "staged", false,
		"Process staged files only")
	sortCmd.Flags().StringVar(&sortBranch, "mr", "",
		"Process files changed between HEAD and the given branch")
	sortCmd.Flags().BoolVar(&sortReindex, "reindex", false,
		"Force a re-scan of the header trees before sorting")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	files, err := collectFiles(cfg, args, logger)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No files to process. Usage examples:")
		fmt.Println("  incsort sort file1.cpp")
		fmt.Println("  incsort sort --local")
		fmt.Println("  incsort sort --staged")
		fmt.Println("  incsort sort --mr origin/main")
		return nil
	}

	index, err := loadOrBuildIndex(cfg, sortReindex, logger)
	if err != nil {
		return err
	}

	markers := modules.Markers{
		Source: cfg.Markers.Source,
		Plugin: cfg.Markers.Plugin,
		Engine: cfg.Markers.Engine,
	}
	s := sorter.New(index, markers, logger)

	var sorted, skipped, failed int
	for _, file := range files {
		result, err := s.Process(file)
		switch {
		case err != nil:
			failed++
			color.Red("  ✗ %s: %v", file, err)
		case result.Status == sorter.StatusNoIncludes:
			skipped++
			color.Yellow("  - %s: no includes found", file)
		default:
			sorted++
			color.Green("  ✓ %s (%d includes)", file, result.Includes)
		}
	}

	fmt.Printf("Done: %d sorted, %d skipped, %d failed\n", sorted, skipped, failed)
	return nil
}

// collectFiles merges git-derived change sets with explicitly listed
// files and deduplicates the result. A git failure is reported and
// yields an empty change set; explicit files still get processed.
func collectFiles(cfg *config.Config, args []string, logger *slog.Logger) ([]string, error) {
	var files []string

	mode, active := changeMode()
	if active {
		finder := changeset.NewFinder(dirFlag, cfg.Sources.Extensions, logger)
		changed, err := finder.Changed(mode, sortBranch)
		if err != nil {
			logger.Warn("Git change detection failed, continuing with explicit files",
				"mode", string(mode), "error", err.Error())
		} else {
			logger.Info("Detected changed files", "mode", string(mode), "count", len(changed))
			files = append(files, changed...)
		}
	}

	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", arg, err)
		}
		files = append(files, abs)
	}

	return changeset.Dedupe(files), nil
}

// changeMode maps the git flags to a change-set mode. Staged wins over
// branch, branch over working tree.
func changeMode() (changeset.Mode, bool) {
	switch {
	case sortStaged:
		return changeset.ModeStaged, true
	case sortBranch != "":
		return changeset.ModeBranch, true
	case sortLocal:
		return changeset.ModeWorking, true
	}
	return "", false
}

// loadOrBuildIndex loads the cached header index unless a rebuild is
// forced, falling back to a full rescan when the cache is missing or
// corrupt. A cache write failure is logged and ignored.
func loadOrBuildIndex(cfg *config.Config, force bool, logger *slog.Logger) (*headerindex.Index, error) {
	cachePath := cfg.CachePath(dirFlag)

	if !force {
		headers, ok, err := cache.Load(cachePath)
		if err != nil {
			logger.Warn("Header cache unreadable, re-indexing", "error", err.Error())
		} else if ok {
			index := headerindex.FromSnapshot(headers)
			logger.Info("Loaded header index from cache",
				"headers", index.HeaderCount(), "paths", index.PathCount())
			return index, nil
		}
	}

	start := time.Now()
	opts := headerindex.Options{
		SkipDirs:   cfg.Index.SkipDirs,
		Extensions: cfg.Index.HeaderExtensions,
	}
	index := headerindex.Build(cfg.Roots(dirFlag), opts, logger)
	logger.Info("Indexed header trees",
		"headers", index.HeaderCount(),
		"paths", index.PathCount(),
		"duration", time.Since(start).Round(time.Millisecond).String())

	if err := cache.Save(cachePath, index.Snapshot()); err != nil {
		logger.Warn("Could not save header cache", "error", err.Error())
	}
	return index, nil
}
