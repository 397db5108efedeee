// Package volume computes the sizing invariants every other GPU-facing
// package in this module derives from: the effective lattice resolution, the
// cell count, and the vertex/index slot budgets per spec §3, §4.2.
package volume

import "fmt"

// MaxLatticeCells bounds N³ to keep a single run from requesting an
// unreasonable storage-buffer allocation; chosen well above any resolution
// the CLI surface (§6.3) exposes by default (192) while still catching a
// typo'd huge argument before it reaches buffer allocation.
const MaxLatticeCells = 512 * 512 * 512

// BytesPerVertexSlot is the stride, in bytes, of one entry in each of the
// position/normal/color storage buffers: a std430 vec4.
const BytesPerVertexSlot = 16

// VertexSlotsPerCell is the fixed per-cell vertex budget of §3's slot
// allocation rule: 3 vertices × up to 12 triangles of headroom (worst case
// is 5 triangles per cell; the remaining slots are always zero-filled).
const VertexSlotsPerCell = 36

// IndicesPerCell is the fixed per-cell index budget: 5 triangles × 3 indices.
const IndicesPerCell = 15

// Descriptor holds the resolution and derived counts every GPU buffer's size
// is computed from. Once created it never changes except by calling New
// again with a different requested resolution (a full re-allocation, per
// spec §3's "Lifecycles").
type Descriptor struct {
	// Tile is the compute workgroup tile side this descriptor was built for
	// (8 for implicit surfaces, 4 for metaballs, per spec §3).
	Tile int
	// N is the effective resolution: Requested rounded up to a multiple of Tile.
	N int
	// M is the cell count, (N-1)³.
	M int
}

// InvalidResolution reports a requested resolution or tile that cannot
// produce a valid Descriptor, matching spec §4.2's "Fails with
// InvalidResolution" contract and spec §7's Configuration error class.
type InvalidResolution struct {
	Requested int
	Tile      int
	Reason    string
}

func (e *InvalidResolution) Error() string {
	return fmt.Sprintf("volume: invalid resolution %d (tile %d): %s", e.Requested, e.Tile, e.Reason)
}

// New builds a Descriptor for the given requested resolution and workgroup
// tile side, rounding N up to the next multiple of tile per spec §4.2.
func New(requested, tile int) (Descriptor, error) {
	if tile <= 0 {
		return Descriptor{}, &InvalidResolution{requested, tile, "tile must be positive"}
	}
	if requested < 2 {
		return Descriptor{}, &InvalidResolution{requested, tile, "requested resolution must be >= 2"}
	}
	n := ((requested + tile - 1) / tile) * tile
	if n%tile != 0 {
		// Unreachable given the rounding above; kept as a guard against a
		// future change to the rounding formula silently breaking the
		// dispatch-alignment invariant (spec §8 property 2).
		return Descriptor{}, &InvalidResolution{requested, tile, "rounded resolution not tile-aligned"}
	}
	cells := n * n * n
	if cells > MaxLatticeCells {
		return Descriptor{}, &InvalidResolution{requested, tile, "N^3 exceeds storage-buffer ceiling"}
	}
	m := (n - 1) * (n - 1) * (n - 1)
	return Descriptor{Tile: tile, N: n, M: m}, nil
}

// DispatchGroups returns the (gx,gy,gz) workgroup counts for a compute
// dispatch over this descriptor's lattice: N/tile along each axis.
func (d Descriptor) DispatchGroups() (gx, gy, gz int) {
	g := d.N / d.Tile
	return g, g, g
}

// ValueBufferBytes is the byte size of storage buffer V: one f32 per lattice
// sample.
func (d Descriptor) ValueBufferBytes() int {
	return 4 * d.N * d.N * d.N
}

// VertexBufferBytes is the byte size of each of the P/Nrm/Col storage
// buffers.
func (d Descriptor) VertexBufferBytes() int {
	return BytesPerVertexSlot * VertexSlotsPerCell * d.M
}

// IndexBufferBytes is the byte size of storage buffer I.
func (d Descriptor) IndexBufferBytes() int {
	return 4 * IndicesPerCell * d.M
}

// IndexCount is the total number of u32 index entries across all cells,
// the draw call's index count per spec §4.6's ENCODE step.
func (d Descriptor) IndexCount() int {
	return IndicesPerCell * d.M
}

