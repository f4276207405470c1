// Package config loads and scaffolds the incsort configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// DirName is the dot-directory holding the config and cache.
	DirName = ".incsort"

	// FileName is the config file inside DirName.
	FileName = "config.toml"
)

// Config is the complete incsort configuration.
type Config struct {
	// ProjectRoot is the project tree to scan. Relative paths are
	// resolved against the directory the config was loaded from.
	ProjectRoot string `toml:"projectRoot" mapstructure:"projectRoot"`

	// EngineRoot is the engine/framework tree to scan. Empty disables it.
	EngineRoot string `toml:"engineRoot" mapstructure:"engineRoot"`

	// ScanDirs are the subdirectories of each root that are indexed.
	ScanDirs []string `toml:"scanDirs" mapstructure:"scanDirs"`

	Index   IndexConfig   `toml:"index" mapstructure:"index"`
	Sources SourcesConfig `toml:"sources" mapstructure:"sources"`
	Markers MarkersConfig `toml:"markers" mapstructure:"markers"`
	Logging LoggingConfig `toml:"logging" mapstructure:"logging"`
}

// IndexConfig controls header index scanning and caching.
type IndexConfig struct {
	// SkipDirs are build-artifact directory names excluded from the scan.
	SkipDirs []string `toml:"skipDirs" mapstructure:"skipDirs"`

	// HeaderExtensions are the filename extensions recorded in the index.
	HeaderExtensions []string `toml:"headerExtensions" mapstructure:"headerExtensions"`

	// CacheFile is the cache blob location, relative to the config dir.
	CacheFile string `toml:"cacheFile" mapstructure:"cacheFile"`
}

// SourcesConfig controls which files are eligible for sorting.
type SourcesConfig struct {
	// Extensions are the source-file extensions accepted from git change
	// sets.
	Extensions []string `toml:"extensions" mapstructure:"extensions"`
}

// MarkersConfig holds the directory-name conventions for module, plugin,
// and engine identification.
type MarkersConfig struct {
	Source string   `toml:"source" mapstructure:"source"`
	Plugin string   `toml:"plugin" mapstructure:"plugin"`
	Engine []string `toml:"engine" mapstructure:"engine"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string `toml:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ProjectRoot: ".",
		EngineRoot:  "",
		ScanDirs:    []string{"Source", "Plugins"},
		Index: IndexConfig{
			SkipDirs:         []string{"Intermediate", "Binaries"},
			HeaderExtensions: []string{".h", ".hpp"},
			CacheFile:        "headerindex.bin",
		},
		Sources: SourcesConfig{
			Extensions: []string{".cpp", ".h", ".hpp", ".c", ".cc"},
		},
		Markers: MarkersConfig{
			Source: "source",
			Plugin: "plugins",
			Engine: []string{"Engine", "UnrealEngine"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from <baseDir>/.incsort/config.toml.
// A missing config file yields the defaults.
func Load(baseDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(filepath.Join(baseDir, DirName))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to <baseDir>/.incsort/config.toml.
func (c *Config) Save(baseDir string) error {
	dir := filepath.Join(baseDir, DirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Roots returns the ordered list of directories to index: each configured
// scan dir under the project root, then under the engine root if set.
// Roots that do not exist are left in the list; the scanner skips them.
func (c *Config) Roots(baseDir string) []string {
	var roots []string
	for _, top := range []string{c.ProjectRoot, c.EngineRoot} {
		if top == "" {
			continue
		}
		if !filepath.IsAbs(top) {
			top = filepath.Join(baseDir, top)
		}
		for _, sub := range c.ScanDirs {
			roots = append(roots, filepath.Join(top, sub))
		}
	}
	return roots
}

// CachePath returns the absolute cache blob location.
func (c *Config) CachePath(baseDir string) string {
	if filepath.IsAbs(c.Index.CacheFile) {
		return c.Index.CacheFile
	}
	return filepath.Join(baseDir, DirName, c.Index.CacheFile)
}
