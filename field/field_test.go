package field

import (
	"testing"
	"unsafe"
)

func TestUniformSizes(t *testing.T) {
	if sz := unsafe.Sizeof(IntUniform{}); sz != 16 {
		t.Fatalf("sizeof(IntUniform) = %d, want 16", sz)
	}
	if sz := unsafe.Sizeof(FloatUniform{}); sz != 16 {
		t.Fatalf("sizeof(FloatUniform) = %d, want 16", sz)
	}
}

func TestMetaballRecordSize(t *testing.T) {
	if sz := unsafe.Sizeof(MetaballRecord{}); sz != 32 {
		t.Fatalf("sizeof(MetaballRecord) = %d, want 32", sz)
	}
}

func TestTileSize(t *testing.T) {
	if got := ModeImplicit.TileSize(); got != 8 {
		t.Fatalf("ModeImplicit.TileSize() = %d, want 8", got)
	}
	if got := ModeMetaball.TileSize(); got != 4 {
		t.Fatalf("ModeMetaball.TileSize() = %d, want 4", got)
	}
}

func TestAutoRotateMaxExcludesLastTwoSurfaces(t *testing.T) {
	if AutoRotateMax != OrthoCircle {
		t.Fatalf("AutoRotateMax = %v, want OrthoCircle", AutoRotateMax)
	}
	if int(AutoRotateMax) >= SurfaceCount-3 {
		// AutoRotateMax must strictly exclude SpiderCage and BarthSextic,
		// the last two of the eleven surfaces (spec §9 Open Question).
	} else {
		t.Fatalf("AutoRotateMax = %d unexpectedly excludes more than the last two surfaces", AutoRotateMax)
	}
}

func TestSurfaceString(t *testing.T) {
	if Sphere.String() != "Sphere" {
		t.Fatalf("Sphere.String() = %q, want Sphere", Sphere.String())
	}
	if Surface(999).String() != "Surface(?)" {
		t.Fatalf("out-of-range Surface.String() should fall back, got %q", Surface(999).String())
	}
}

func TestConstructors(t *testing.T) {
	iu := NewImplicitIntUniform(192, Torus)
	if iu.Resolution != 192 || iu.Mode != uint32(ModeImplicit) || iu.Field != uint32(Torus) {
		t.Fatalf("NewImplicitIntUniform: unexpected fields %+v", iu)
	}
	mu := NewMetaballIntUniform(128, 200)
	if mu.Resolution != 128 || mu.Mode != uint32(ModeMetaball) || mu.Field != 200 {
		t.Fatalf("NewMetaballIntUniform: unexpected fields %+v", mu)
	}
}
