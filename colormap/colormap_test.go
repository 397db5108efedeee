package colormap

import (
	"math"
	"testing"
)

func TestLookupKnownNames(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if len(p) == 0 || len(p) > MaxColors {
			t.Fatalf("Lookup(%q) returned %d entries, want (0,%d]", name, len(p), MaxColors)
		}
	}
}

func TestLookupUnknownName(t *testing.T) {
	if _, err := Lookup("not-a-real-palette"); err == nil {
		t.Fatal("expected error for unknown palette name")
	}
}

func TestFlattenLayout(t *testing.T) {
	p, err := Lookup("grayscale")
	if err != nil {
		t.Fatal(err)
	}
	flat := Flatten(p)
	if len(flat) != len(p)*4 {
		t.Fatalf("Flatten length = %d, want %d", len(flat), len(p)*4)
	}
	for i, c := range p {
		if flat[i*4] != c.R || flat[i*4+1] != c.G || flat[i*4+2] != c.B || flat[i*4+3] != c.A {
			t.Fatalf("flat entry %d does not match source color", i)
		}
	}
}

func TestSampleClampsAndReverses(t *testing.T) {
	p, _ := Lookup("grayscale")
	lo := Sample(p, -1, false)
	hi := Sample(p, 2, false)
	if lo != p[0] {
		t.Fatalf("Sample(-1) = %+v, want first entry %+v", lo, p[0])
	}
	if hi != p[len(p)-1] {
		t.Fatalf("Sample(2) = %+v, want last entry %+v", hi, p[len(p)-1])
	}
	revLo := Sample(p, 0, true)
	if revLo != p[len(p)-1] {
		t.Fatalf("reversed Sample(0) = %+v, want last entry %+v", revLo, p[len(p)-1])
	}
}

func TestPaletteEntriesFinite(t *testing.T) {
	for _, name := range Names() {
		p, _ := Lookup(name)
		for i, c := range p {
			for _, v := range []float32{c.R, c.G, c.B, c.A} {
				if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
					t.Fatalf("%s[%d] has non-finite component: %+v", name, i, c)
				}
			}
		}
	}
}
