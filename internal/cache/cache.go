// Package cache persists the header index as a single opaque binary
// artifact: a msgpack payload wrapped in zstd.
//
// The cache is a speed optimization, not a correctness guarantee. It is
// never validated against the current disk state; an explicit rebuild is
// the only invalidation path. A schema byte guards decoding across
// format changes so a stale format falls back to a rescan instead of
// misdecoding.
package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

const schemaVersion uint16 = 1

// payload is the serialized cache format.
type payload struct {
	Schema  uint16
	Headers map[string][]string
}

// Save writes the mapping to path atomically: encode into a temp file in
// the target directory, then rename over the destination.
func Save(path string, headers map[string][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "headerindex-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	tmpName := f.Name()
	defer os.Remove(tmpName) // no-op after successful rename

	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("initializing compressor: %w", err)
	}

	enc := msgpack.NewEncoder(zw)
	if err := enc.Encode(payload{Schema: schemaVersion, Headers: headers}); err != nil {
		zw.Close()
		f.Close()
		return fmt.Errorf("encoding cache payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flushing compressor: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing temp cache file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing cache file: %w", err)
	}
	return nil
}

// Load reads a previously saved mapping. A missing file returns
// ok=false without error; a corrupt or incompatible blob returns an
// error, and the caller is expected to fall back to a full rescan.
func Load(path string) (map[string][]string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("opening cache file: %w", err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, false, fmt.Errorf("initializing decompressor: %w", err)
	}
	defer zr.Close()

	var p payload
	if err := msgpack.NewDecoder(zr).Decode(&p); err != nil {
		return nil, false, fmt.Errorf("decoding cache payload: %w", err)
	}
	if p.Schema != schemaVersion {
		return nil, false, fmt.Errorf("cache schema %d not supported", p.Schema)
	}
	return p.Headers, true, nil
}
