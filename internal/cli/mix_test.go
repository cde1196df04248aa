package cli

import (
	"math"
	"testing"

	"github.com/plamix/plamix/internal/catalog"
)

func TestParseMixArgs(t *testing.T) {
	pigments := catalog.Builtin()

	parts, colours, ratios, err := parseMixArgs([]string{"C62=90", "C2=10"}, pigments)
	if err != nil {
		t.Fatalf("parseMixArgs() error: %v", err)
	}
	if len(parts) != 2 || len(colours) != 2 || len(ratios) != 2 {
		t.Fatalf("got %d parts, %d colours, %d ratios; want 2 each", len(parts), len(colours), len(ratios))
	}
	if parts[0].Pigment.Code != "C62" || parts[1].Pigment.Code != "C2" {
		t.Errorf("codes = %s, %s; want C62, C2", parts[0].Pigment.Code, parts[1].Pigment.Code)
	}
	if math.Abs(ratios[0]-0.9) > 1e-9 || math.Abs(ratios[1]-0.1) > 1e-9 {
		t.Errorf("ratios = %v, want [0.9 0.1]", ratios)
	}
}

func TestParseMixArgsUnnormalisedShares(t *testing.T) {
	// Shares are relative weights: 1 and 3 mean a quarter and three
	// quarters.
	_, _, ratios, err := parseMixArgs([]string{"C1=1", "C4=3"}, catalog.Builtin())
	if err != nil {
		t.Fatalf("parseMixArgs() error: %v", err)
	}
	if math.Abs(ratios[0]-0.25) > 1e-9 || math.Abs(ratios[1]-0.75) > 1e-9 {
		t.Errorf("ratios = %v, want [0.25 0.75]", ratios)
	}
}

func TestParseMixArgsErrors(t *testing.T) {
	pigments := catalog.Builtin()

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing equals", args: []string{"C1"}},
		{name: "bad number", args: []string{"C1=lots"}},
		{name: "zero share", args: []string{"C1=0"}},
		{name: "negative share", args: []string{"C1=-5"}},
		{name: "unknown code", args: []string{"XF-999=50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, err := parseMixArgs(tt.args, pigments); err == nil {
				t.Errorf("parseMixArgs(%v) succeeded, want error", tt.args)
			}
		})
	}
}
