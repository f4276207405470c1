package changeset

import (
	"reflect"
	"testing"

	"incsort/internal/slogutil"
)

const sampleDiff = `diff --git a/Source/Widgets/Panel.cpp b/Source/Widgets/Panel.cpp
index 1111111..2222222 100644
--- a/Source/Widgets/Panel.cpp
+++ b/Source/Widgets/Panel.cpp
@@ -1,2 +1,3 @@
 #include "A.h"
+#include "B.h"
 void f() {}
diff --git a/README.md b/README.md
index 3333333..4444444 100644
--- a/README.md
+++ b/README.md
@@ -1 +1,2 @@
 # readme
+more
diff --git a/Source/Core/Old.cpp b/Source/Core/Old.cpp
deleted file mode 100644
index 5555555..0000000
--- a/Source/Core/Old.cpp
+++ /dev/null
@@ -1,2 +0,0 @@
-#include "A.h"
-void g() {}
diff --git a/Source/Core/Util.h b/Source/Core/Util.h
index 6666666..7777777 100644
--- a/Source/Core/Util.h
+++ b/Source/Core/Util.h
@@ -1 +1,2 @@
 #pragma once
+void h();
`

func newTestFinder() *Finder {
	exts := []string{".cpp", ".h", ".hpp", ".c", ".cc"}
	return NewFinder(".", exts, slogutil.NewDiscardLogger())
}

func TestPathsFromPatch(t *testing.T) {
	f := newTestFinder()

	got := f.pathsFromPatch([]byte(sampleDiff))
	want := []string{
		"Source/Widgets/Panel.cpp",
		"Source/Core/Util.h",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pathsFromPatch() = %q, want %q", got, want)
	}
}

func TestPathsFromPatchEmpty(t *testing.T) {
	f := newTestFinder()
	if got := f.pathsFromPatch(nil); got != nil {
		t.Errorf("pathsFromPatch(nil) = %q, want nil", got)
	}
}

func TestPathsFromPatchGarbage(t *testing.T) {
	f := newTestFinder()
	// Unparseable output degrades to an empty set, not a failure.
	if got := f.pathsFromPatch([]byte("garbage, not a diff")); got != nil {
		t.Errorf("pathsFromPatch(garbage) = %q, want nil", got)
	}
}

func TestWantedExt(t *testing.T) {
	f := newTestFinder()

	tests := []struct {
		path string
		want bool
	}{
		{"Source/Panel.cpp", true},
		{"Source/Panel.h", true},
		{"Source/Panel.HPP", true},
		{"Source/Panel.cs", false},
		{"README.md", false},
		{"Makefile", false},
	}

	for _, tt := range tests {
		if got := f.wantedExt(tt.path); got != tt.want {
			t.Errorf("wantedExt(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCleanPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a/Source/Panel.cpp", "Source/Panel.cpp"},
		{"b/Source/Panel.cpp", "Source/Panel.cpp"},
		{"Source/Panel.cpp", "Source/Panel.cpp"},
	}
	for _, tt := range tests {
		if got := cleanPath(tt.in); got != tt.want {
			t.Errorf("cleanPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{"/a", "/b", "/a", "/c", "/b"})
	want := []string{"/a", "/b", "/c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dedupe() = %q, want %q", got, want)
	}

	if got := Dedupe(nil); got != nil {
		t.Errorf("Dedupe(nil) = %q, want nil", got)
	}
}
