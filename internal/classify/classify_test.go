package classify

import (
	"testing"

	"incsort/internal/modules"
)

func TestClassify(t *testing.T) {
	m := modules.DefaultMarkers()
	editing := "/Game/Source/Widgets/Private/Panel.cpp"
	editingModule := "Widgets"

	tests := []struct {
		name     string
		resolved string
		ok       bool
		want     Bucket
	}{
		{
			name: "unresolved is external",
			ok:   false,
			want: Bucket{Kind: External},
		},
		{
			name:     "own header is main",
			resolved: "/Game/Source/Widgets/Public/Panel.h",
			ok:       true,
			want:     Bucket{Kind: MainHeader},
		},
		{
			name:     "engine tree",
			resolved: "/opt/Engine/Source/Runtime/Core/Public/CoreMinimal.h",
			ok:       true,
			want:     Bucket{Kind: Engine},
		},
		{
			name:     "same module",
			resolved: "/Game/Source/Widgets/Public/Style.h",
			ok:       true,
			want:     Bucket{Kind: SameModule},
		},
		{
			name:     "same module case-insensitive",
			resolved: "/Game/Source/widgets/Public/Style.h",
			ok:       true,
			want:     Bucket{Kind: SameModule},
		},
		{
			name:     "plugin keyed by plugin name",
			resolved: "/Game/Plugins/Inventory/Source/InventoryCore/Item.h",
			ok:       true,
			want:     Bucket{Kind: Plugin, Key: "Inventory"},
		},
		{
			name:     "other module keyed by module name",
			resolved: "/Game/Source/Core/Public/Util.h",
			ok:       true,
			want:     Bucket{Kind: OtherModule, Key: "Core"},
		},
		{
			name:     "no derivable module falls back",
			resolved: "/Game/ThirdParty/zlib/zlib.h",
			ok:       true,
			want:     Bucket{Kind: OtherModule, Key: OtherFallbackKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.resolved, tt.ok, editing, editingModule, m)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.resolved, got, tt.want)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	m := modules.DefaultMarkers()

	// The file's own header wins even when it lives in the engine tree
	// and in the same module.
	got := Classify(
		"/opt/Engine/Source/Widgets/Public/Panel.h", true,
		"/opt/Engine/Source/Widgets/Private/Panel.cpp", "Widgets", m)
	if got.Kind != MainHeader {
		t.Errorf("stem match should win over engine/module, got %+v", got)
	}

	// Engine wins over a module-name match when stems differ.
	got = Classify(
		"/opt/Engine/Source/Widgets/Public/Style.h", true,
		"/opt/Engine/Source/Widgets/Private/Panel.cpp", "Widgets", m)
	if got.Kind != Engine {
		t.Errorf("engine should win over same-module, got %+v", got)
	}

	// A plugin path with a matching module name stays in the module bucket.
	got = Classify(
		"/Game/Plugins/Inventory/Source/Widgets/Item.h", true,
		"/Game/Source/Widgets/Private/Panel.cpp", "Widgets", m)
	if got.Kind != SameModule {
		t.Errorf("same-module should win over plugin, got %+v", got)
	}
}
