package catalog

import (
	"strings"
	"testing"
)

func TestBuiltinPresets(t *testing.T) {
	presets := BuiltinPresets()
	if len(presets) == 0 {
		t.Fatal("no built-in presets")
	}
	seen := make(map[string]bool)
	for _, p := range presets {
		if p.Name == "" || p.Category == "" {
			t.Errorf("preset %+v missing name or category", p)
		}
		if seen[p.Name] {
			t.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Colour.L < 0 || p.Colour.L > 100 {
			t.Errorf("preset %s has L=%g outside [0,100]", p.Name, p.Colour.L)
		}
	}
}

func TestFindPreset(t *testing.T) {
	presets := BuiltinPresets()

	p, ok := FindPreset(presets, "Olive-Drab")
	if !ok {
		t.Fatal("olive-drab not found (lookup should be case-insensitive)")
	}
	if p.Category != PresetCategoryMilitary {
		t.Errorf("olive-drab category = %q, want %q", p.Category, PresetCategoryMilitary)
	}

	if _, ok := FindPreset(presets, "hot-pink"); ok {
		t.Error("unexpected match for unknown preset")
	}
}

func TestPresetsByCategory(t *testing.T) {
	presets := BuiltinPresets()

	military := PresetsByCategory(presets, PresetCategoryMilitary)
	if len(military) == 0 {
		t.Fatal("no military presets")
	}
	for _, p := range military {
		if p.Category != PresetCategoryMilitary {
			t.Errorf("preset %s leaked into military filter", p.Name)
		}
	}

	if got := PresetsByCategory(presets, ""); len(got) != len(presets) {
		t.Errorf("empty category kept %d of %d presets", len(got), len(presets))
	}
}

func TestPresetCategories(t *testing.T) {
	got := PresetCategories(BuiltinPresets())
	if len(got) < 3 {
		t.Fatalf("got %v, want at least military, character, aircraft", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Errorf("categories not sorted: %v", got)
		}
	}
}

func TestLoadPresets(t *testing.T) {
	path := writeTempFile(t, "presets.json", []byte(`[
	  {"name": "test-grey", "category": "custom", "lab": {"L": 50, "a": 0, "b": 0}}
	]`))

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets() error: %v", err)
	}
	if len(presets) != 1 || presets[0].Name != "test-grey" {
		t.Fatalf("got %+v, want one test-grey preset", presets)
	}
}

func TestLoadPresetsErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "not json", data: "name: test", wantErr: "parse"},
		{name: "missing name", data: `[{"category": "custom", "lab": {"L": 50, "a": 0, "b": 0}}]`, wantErr: "missing name"},
		{name: "bad lightness", data: `[{"name": "x", "category": "custom", "lab": {"L": 150, "a": 0, "b": 0}}]`, wantErr: "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "presets.json", []byte(tt.data))
			_, err := LoadPresets(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
