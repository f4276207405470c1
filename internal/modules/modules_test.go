package modules

import "testing"

func TestName(t *testing.T) {
	m := DefaultMarkers()

	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{"typical module path", "/Game/Source/Widgets/Private/Panel.cpp", "Widgets", true},
		{"marker case-insensitive", "/Game/SOURCE/Widgets/Panel.h", "Widgets", true},
		{"original casing kept", "/Game/source/WiDgEtS/Panel.h", "WiDgEtS", true},
		{"first marker wins", "/Source/Alpha/Source/Beta/X.h", "Alpha", true},
		{"no marker", "/Game/Content/Panel.h", "", false},
		{"marker is last component", "/Game/Source", "", false},
		{"windows separators", `C:\Game\Source\Widgets\Panel.h`, "Widgets", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Name(tt.path)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Name(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSameModule(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"exact match", "Widgets", "Widgets", true},
		{"case-insensitive", "Widgets", "widgets", true},
		{"different", "Widgets", "Core", false},
		{"both empty", "", "", false},
		{"one empty", "Widgets", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameModule(tt.a, tt.b); got != tt.want {
				t.Errorf("SameModule(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPluginName(t *testing.T) {
	m := DefaultMarkers()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"plugin with name", "/Game/Plugins/Inventory/Source/InventoryCore/Item.h", "Inventory"},
		{"marker case-insensitive", "/Game/plugins/Inventory/Item.h", "Inventory"},
		{"marker is last component", "/Game/Plugins", UnknownPlugin},
		{"no plugin tree", "/Game/Source/Widgets/Panel.h", UnknownPlugin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.PluginName(tt.path); got != tt.want {
				t.Errorf("PluginName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestInEngineTree(t *testing.T) {
	m := DefaultMarkers()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"engine component", "/opt/Engine/Source/Runtime/Core/Public/CoreMinimal.h", true},
		{"unreal engine component", "/opt/UnrealEngine/Source/X.h", true},
		{"engine match is case-sensitive", "/opt/engine/Source/X.h", false},
		{"project path", "/Game/Source/Widgets/Panel.h", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.InEngineTree(tt.path); got != tt.want {
				t.Errorf("InEngineTree(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestInPluginTree(t *testing.T) {
	m := DefaultMarkers()

	if !m.InPluginTree("/Game/Plugins/Inventory/Item.h") {
		t.Error("InPluginTree should match a Plugins component")
	}
	if m.InPluginTree("/Game/Source/Widgets/Panel.h") {
		t.Error("InPluginTree should not match a plain source path")
	}
}
