package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"incsort/internal/cache"
	"incsort/internal/headerindex"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the header index and refresh the cache",
	Long: `Scan the configured source trees for header files and rewrite the
cache. The cache is never validated against the current disk state, so
run this after adding, moving, or deleting headers.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	start := time.Now()
	opts := headerindex.Options{
		SkipDirs:   cfg.Index.SkipDirs,
		Extensions: cfg.Index.HeaderExtensions,
	}
	index := headerindex.Build(cfg.Roots(dirFlag), opts, logger)

	cachePath := cfg.CachePath(dirFlag)
	if err := cache.Save(cachePath, index.Snapshot()); err != nil {
		logger.Warn("Could not save header cache", "error", err.Error())
	}

	color.Green("Indexed %d unique headers (%d paths) in %s",
		index.HeaderCount(), index.PathCount(),
		time.Since(start).Round(time.Millisecond))
	fmt.Printf("Cache: %s\n", cachePath)
	return nil
}
