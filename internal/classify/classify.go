// Package classify assigns resolved includes to ordered output groups.
package classify

import (
	"path/filepath"
	"strings"

	"incsort/internal/modules"
)

// Kind identifies one of the closed set of classification buckets.
type Kind string

const (
	// MainHeader is the file's own header (Foo.cpp including Foo.h).
	MainHeader Kind = "main-header"

	// SameModule covers headers in the editing file's module.
	SameModule Kind = "same-module"

	// OtherModule covers headers in a different module; keyed by module name.
	OtherModule Kind = "other-module"

	// Plugin covers headers under a plugin tree; keyed by plugin name.
	Plugin Kind = "plugin"

	// Engine covers headers in the engine tree.
	Engine Kind = "engine"

	// External covers unresolved includes (system and third-party headers).
	External Kind = "external"
)

// OtherFallbackKey groups resolved headers whose path yields no module name.
const OtherFallbackKey = "Other"

// Bucket is a tagged classification result. Key is set only for the
// OtherModule and Plugin kinds.
type Bucket struct {
	Kind Kind
	Key  string
}

// Classify places a resolved include into a bucket. First match wins:
//
//  1. unresolved -> External
//  2. same file stem as the editing file -> MainHeader
//  3. engine tree -> Engine
//  4. same module as the editing file -> SameModule
//  5. plugin tree -> Plugin(name)
//  6. otherwise -> OtherModule(name)
//
// editingModule is the editing file's module name ("" when none).
func Classify(resolvedPath string, resolved bool, editingFile, editingModule string, m modules.Markers) Bucket {
	if !resolved {
		return Bucket{Kind: External}
	}

	if stem(resolvedPath) == stem(editingFile) {
		return Bucket{Kind: MainHeader}
	}

	if m.InEngineTree(resolvedPath) {
		return Bucket{Kind: Engine}
	}

	name, _ := m.Name(resolvedPath)
	if modules.SameModule(editingModule, name) {
		return Bucket{Kind: SameModule}
	}

	if m.InPluginTree(resolvedPath) {
		return Bucket{Kind: Plugin, Key: m.PluginName(resolvedPath)}
	}

	if name == "" {
		return Bucket{Kind: OtherModule, Key: OtherFallbackKey}
	}
	return Bucket{Kind: OtherModule, Key: name}
}

// stem returns the base filename without its extension.
func stem(path string) string {
	base := filepath.Base(filepath.ToSlash(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
