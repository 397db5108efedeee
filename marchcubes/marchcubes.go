// Package marchcubes defines the extraction-pass (compute stage 2) binding
// contract: its uniform layouts, binding order, and the per-cell slot
// arithmetic shared between the GLSL source and the Go host. It also houses
// a pure-Go reference implementation (see reference.go) used exclusively by
// tests as a conformance oracle against package mctables and the emitted
// GLSL — never as a runtime fallback (spec §1's explicit non-goal: "no CPU
// fallback for surface extraction").
package marchcubes

import "github.com/gpucubes/marchgl/volume"

// Binding indices for the extraction pass's single descriptor set, in the
// exact order spec §6.2 requires.
const (
	BindingTables = iota
	BindingValue
	BindingPosition
	BindingNormal
	BindingColor
	BindingIndex
	BindingIndirect
	BindingColormap
	BindingIntUniform
	BindingFloatUniform
)

// IntUniform is the 16-byte Iu_extract uniform block bound at BindingIntUniform.
type IntUniform struct {
	Resolution         uint32
	ColormapDirection  uint32
	ColormapReverse    uint32
	_                  uint32
}

// FloatUniform is the 16-byte Fu_extract uniform block bound at BindingFloatUniform.
type FloatUniform struct {
	Isolevel float32
	Scale    float32
	_        float32
	_        float32
}

// NewIntUniform builds the extraction-pass integer uniform.
func NewIntUniform(resolution int, colormapDirection uint32, colormapReverse bool) IntUniform {
	var rev uint32
	if colormapReverse {
		rev = 1
	}
	return IntUniform{
		Resolution:        uint32(resolution),
		ColormapDirection: colormapDirection,
		ColormapReverse:   rev,
	}
}

// NewFloatUniform builds the extraction-pass float uniform.
func NewFloatUniform(isolevel, scale float32) FloatUniform {
	return FloatUniform{Isolevel: isolevel, Scale: scale}
}

// SlotRange returns the half-open vertex slot range [lo, hi) cell owns in
// the position/normal/color buffers, per spec §3's slot allocation rule and
// volume.VertexSlotsPerCell's budget.
func SlotRange(cell int) (lo, hi int) {
	lo = volume.VertexSlotsPerCell * cell
	return lo, lo + volume.VertexSlotsPerCell
}

// IndexRange returns the half-open index range [lo, hi) cell owns in the
// index buffer, per volume.IndicesPerCell's budget.
func IndexRange(cell int) (lo, hi int) {
	lo = volume.IndicesPerCell * cell
	return lo, lo + volume.IndicesPerCell
}

// CellCoord converts a linear cell index (matching a compute invocation's
// flattened global_invocation_id) back to its (cx,cy,cz) coordinate, for
// cellsPerAxis = N-1.
func CellCoord(cell, cellsPerAxis int) (cx, cy, cz int) {
	cx = cell % cellsPerAxis
	cy = (cell / cellsPerAxis) % cellsPerAxis
	cz = cell / (cellsPerAxis * cellsPerAxis)
	return
}

// CellIndex is the inverse of CellCoord.
func CellIndex(cx, cy, cz, cellsPerAxis int) int {
	return cz*cellsPerAxis*cellsPerAxis + cy*cellsPerAxis + cx
}
