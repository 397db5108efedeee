package marchcubes

import (
	"math"
	"testing"

	"github.com/gpucubes/marchgl/math/ms3"
)

// sphereField returns a signed-distance-like field for a sphere of radius r
// centered at the lattice midpoint, sampled over an n^3 lattice spanning
// [-scale, scale] per axis — enough to drive scenario S1 from spec §8.
func sphereField(n int, scale, r float32) ValueFunc {
	half := float32(n-1) / 2
	return func(x, y, z int) float32 {
		fx := (float32(x) - half) / half * scale
		fy := (float32(y) - half) / half * scale
		fz := (float32(z) - half) / half * scale
		d := float32(math.Sqrt(float64(fx*fx + fy*fy + fz*fz)))
		return d - r
	}
}

func TestExtractSphereS1(t *testing.T) {
	const n = 33
	tris := Extract(sphereField(n, 2, 1), n, 0)
	if len(tris) == 0 {
		t.Fatal("expected a non-empty mesh for a sphere crossing the isolevel")
	}
	var min, max ms3.Vec
	min = ms3.Vec{X: 1e9, Y: 1e9, Z: 1e9}
	max = ms3.Vec{X: -1e9, Y: -1e9, Z: -1e9}
	var sum ms3.Vec
	count := 0
	for _, tr := range tris {
		for _, v := range [3]ms3.Vec{tr.A, tr.B, tr.C} {
			min = ms3.MinElem(min, v)
			max = ms3.MaxElem(max, v)
			sum = ms3.Add(sum, v)
			count++
		}
	}
	centroid := ms3.Scale(1/float32(count), sum)
	if ms3.Norm(centroid) > 0.25 {
		t.Fatalf("centroid %+v too far from origin for a centered sphere", centroid)
	}
	extent := ms3.Sub(max, min)
	for _, v := range [3]float32{extent.X, extent.Y, extent.Z} {
		if v < 1.5 || v > 2.5 {
			t.Fatalf("extent %+v axis value %v out of expected range near diameter 2", extent, v)
		}
	}
}

func TestExtractEmptyAndFullCasesS5S6(t *testing.T) {
	const n = 8
	allAbove := func(x, y, z int) float32 { return 10 }
	if tris := Extract(allAbove, n, 0); len(tris) != 0 {
		t.Fatalf("all-values-above-isolevel case emitted %d triangles, want 0", len(tris))
	}
	allBelow := func(x, y, z int) float32 { return -10 }
	if tris := Extract(allBelow, n, 0); len(tris) != 0 {
		t.Fatalf("all-values-below-isolevel case emitted %d triangles, want 0", len(tris))
	}
}

func TestExtractDegenerateEdgeNoNaN(t *testing.T) {
	const n = 4
	values := func(x, y, z int) float32 {
		if x == 1 && y == 1 && z == 1 {
			return 0
		}
		return float32(x+y+z) - 4.5
	}
	tris := Extract(values, n, 0)
	for _, tr := range tris {
		for _, v := range [3]ms3.Vec{tr.A, tr.B, tr.C} {
			for _, f := range [3]float32{v.X, v.Y, v.Z} {
				if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
					t.Fatalf("triangle %+v has a non-finite coordinate", tr)
				}
			}
		}
	}
}

func TestTriangleNormalsUnitLength(t *testing.T) {
	const n = 17
	tris := Extract(sphereField(n, 2, 1), n, 0)
	for _, tr := range tris {
		l := ms3.Norm(tr.Normal)
		if l < 1-1e-3 || l > 1+1e-3 {
			t.Fatalf("triangle normal %+v has length %v, want ~1", tr.Normal, l)
		}
	}
}

func TestSlotAndIndexRanges(t *testing.T) {
	lo, hi := SlotRange(5)
	if lo != 180 || hi != 216 {
		t.Fatalf("SlotRange(5) = (%d,%d), want (180,216)", lo, hi)
	}
	ilo, ihi := IndexRange(5)
	if ilo != 75 || ihi != 90 {
		t.Fatalf("IndexRange(5) = (%d,%d), want (75,90)", ilo, ihi)
	}
}

func TestCellCoordRoundTrip(t *testing.T) {
	const cellsPerAxis = 17
	for _, c := range []int{0, 1, cellsPerAxis, cellsPerAxis * cellsPerAxis, 4000} {
		cx, cy, cz := CellCoord(c, cellsPerAxis)
		if got := CellIndex(cx, cy, cz, cellsPerAxis); got != c {
			t.Fatalf("CellIndex(CellCoord(%d)) = %d, want %d", c, got, c)
		}
	}
}
