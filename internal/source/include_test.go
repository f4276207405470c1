package source

import "testing"

func TestIsInclude(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"quoted include", `#include "Foo.h"`, true},
		{"angle include", `#include <vector>`, true},
		{"leading whitespace", `    #include "Foo.h"`, true},
		{"macro include", `#include FOO_HEADER`, true},
		{"pragma", `#pragma once`, false},
		{"comment", `// #include mention`, false},
		{"blank", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInclude(tt.line); got != tt.want {
				t.Errorf("IsInclude(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestRef(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		{"quoted", `#include "Widgets/Panel.h"`, "Widgets/Panel.h", true},
		{"angle", `#include <vector>`, "vector", true},
		{"tab separated", "#include\t\"Foo.h\"", "Foo.h", true},
		{"trailing comment", `#include "Foo.h" // main`, "Foo.h", true},
		{"macro include", `#include FOO_HEADER`, "", false},
		{"no reference", `#include`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Ref(tt.line)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Ref(%q) = (%q, %v), want (%q, %v)", tt.line, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
