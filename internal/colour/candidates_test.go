package colour

import "testing"

func testCatalog() []Pigment {
	return []Pigment{
		{Code: "C1", Name: "Red", Manufacturer: "Mr.Color", Category: "basic", Colour: Lab{L: 48.2, A: 68.4, B: 45.6}},
		{Code: "C2", Name: "Black", Manufacturer: "Mr.Color", Category: "basic", Colour: Lab{L: 15.3, A: 0.2, B: 0.1}},
		{Code: "C5", Name: "Blue", Manufacturer: "Mr.Color", Category: "basic", Colour: Lab{L: 32.4, A: -12.5, B: -38.6}},
		{Code: "C8", Name: "Silver", Manufacturer: "Mr.Color", Category: "metallic", Colour: Lab{L: 76.0, A: 0.5, B: 2.1}},
		{Code: "C62", Name: "Flat White", Manufacturer: "Mr.Color", Category: "basic", Colour: Lab{L: 92.5, A: 0.1, B: 0.2}},
	}
}

func TestSelectCandidatesRanksByDistance(t *testing.T) {
	target := Lab{L: 90, A: 0, B: 0}

	pool := selectCandidates(target, testCatalog(), 3)
	if len(pool) != 3 {
		t.Fatalf("pool size = %d, want 3", len(pool))
	}
	if pool[0].Code != "C62" {
		t.Errorf("nearest pigment = %s, want C62 (white)", pool[0].Code)
	}
	if pool[1].Code != "C8" {
		t.Errorf("second pigment = %s, want C8 (silver)", pool[1].Code)
	}

	prev := -1.0
	for _, p := range pool {
		d := Difference(target, p.Colour, DE76)
		if d < prev {
			t.Errorf("pool not sorted ascending: %s at %g after %g", p.Code, d, prev)
		}
		prev = d
	}
}

func TestSelectCandidatesStableOnTies(t *testing.T) {
	target := Lab{L: 50}
	twins := []Pigment{
		{Code: "A", Colour: Lab{L: 60}},
		{Code: "B", Colour: Lab{L: 60}},
		{Code: "C", Colour: Lab{L: 40}},
	}

	pool := selectCandidates(target, twins, 3)
	if pool[0].Code != "A" || pool[1].Code != "B" {
		t.Errorf("tie order = %s,%s, want catalog order A,B", pool[0].Code, pool[1].Code)
	}
}

func TestSelectCandidatesLimitLargerThanCatalog(t *testing.T) {
	pool := selectCandidates(Lab{L: 50}, testCatalog(), 100)
	if len(pool) != len(testCatalog()) {
		t.Errorf("pool size = %d, want whole catalog %d", len(pool), len(testCatalog()))
	}
}

func TestFilterPigments(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name       string
		categories []string
		codes      []string
		wantCodes  []string
	}{
		{
			name:      "no filters keeps everything",
			wantCodes: []string{"C1", "C2", "C5", "C8", "C62"},
		},
		{
			name:       "exclude metallic",
			categories: []string{"metallic"},
			wantCodes:  []string{"C1", "C2", "C5", "C62"},
		},
		{
			name:      "exclude white and black codes",
			codes:     []string{"C2", "C62"},
			wantCodes: []string{"C1", "C5", "C8"},
		},
		{
			name:       "combined filters",
			categories: []string{"metallic"},
			codes:      []string{"C2", "C62"},
			wantCodes:  []string{"C1", "C5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterPigments(catalog, toSet(tt.categories), toSet(tt.codes))
			if len(got) != len(tt.wantCodes) {
				t.Fatalf("filtered %d pigments, want %d", len(got), len(tt.wantCodes))
			}
			for i, code := range tt.wantCodes {
				if got[i].Code != code {
					t.Errorf("filtered[%d] = %s, want %s", i, got[i].Code, code)
				}
			}
		})
	}
}
