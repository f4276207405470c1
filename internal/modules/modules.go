// Package modules derives module, plugin, and engine identity from
// filesystem paths using directory-layout conventions.
package modules

import (
	"path/filepath"
	"strings"
)

// UnknownPlugin is the bucket key used when no plugin name follows the
// plugin marker in a path.
const UnknownPlugin = "Unknown"

// Markers holds the directory-name conventions that identify modules,
// plugins, and the engine tree.
type Markers struct {
	// Source is matched case-insensitively; the component after it is the
	// module name.
	Source string

	// Plugin is matched case-insensitively; the component after it is the
	// plugin name.
	Plugin string

	// Engine components are matched exactly.
	Engine []string
}

// DefaultMarkers returns the Unreal-style layout conventions.
func DefaultMarkers() Markers {
	return Markers{
		Source: "source",
		Plugin: "plugins",
		Engine: []string{"Engine", "UnrealEngine"},
	}
}

// Name returns the module name for a path: the component immediately
// following the first case-insensitive match of the source marker.
// The returned component keeps its original casing.
func (m Markers) Name(path string) (string, bool) {
	parts := components(path)
	for i, p := range parts {
		if strings.EqualFold(p, m.Source) {
			if i+1 < len(parts) {
				return parts[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// SameModule reports whether two module names refer to the same module.
// Module names compare case-insensitively.
func SameModule(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}

// PluginName returns the component following the first case-insensitive
// match of the plugin marker, or UnknownPlugin if nothing follows.
func (m Markers) PluginName(path string) string {
	parts := components(path)
	for i, p := range parts {
		if strings.EqualFold(p, m.Plugin) {
			if i+1 < len(parts) {
				return parts[i+1]
			}
			return UnknownPlugin
		}
	}
	return UnknownPlugin
}

// InPluginTree reports whether any path component matches the plugin
// marker case-insensitively.
func (m Markers) InPluginTree(path string) bool {
	for _, p := range components(path) {
		if strings.EqualFold(p, m.Plugin) {
			return true
		}
	}
	return false
}

// InEngineTree reports whether any path component exactly matches one of
// the engine markers.
func (m Markers) InEngineTree(path string) bool {
	for _, p := range components(path) {
		for _, marker := range m.Engine {
			if p == marker {
				return true
			}
		}
	}
	return false
}

// components splits a path into its non-empty components using forward
// slashes, so Windows and POSIX paths compare the same way.
func components(path string) []string {
	norm := filepath.ToSlash(path)
	raw := strings.Split(norm, "/")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
