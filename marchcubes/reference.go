package marchcubes

import (
	"github.com/gpucubes/marchgl/math/ms1"
	"github.com/gpucubes/marchgl/math/ms3"
	"github.com/gpucubes/marchgl/mctables"
)

// degenerateEdgeEpsilon is the threshold below which an edge's endpoint
// values are treated as equal, per spec §4.5's "lerp on degenerate edges"
// numeric-semantics rule.
const degenerateEdgeEpsilon = 1e-6

// Triangle is one emitted, non-degenerate triangle from Extract.
type Triangle struct {
	A, B, C ms3.Vec
	Normal  ms3.Vec
}

// ValueFunc samples the scalar field at an integer lattice coordinate,
// mirroring buffer V's addressing (spec §4.4: V[z*N^2 + y*N + x]).
type ValueFunc func(x, y, z int) float32

// Extract re-implements spec §4.5's Extraction Pass entirely on the CPU: a
// conformance oracle for testing package mctables and the slot/degenerate
// invariants, never called outside _test.go files (see package doc).
// n is the effective resolution; cells are indexed (cx,cy,cz) in [0,n-1).
// Vertex positions are in world space: each lattice axis [0,n-1] maps to
// [-2,2], as the extraction shaders' latticeToWorld does at scale 1.
func Extract(values ValueFunc, n int, isolevel float32) []Triangle {
	var tris []Triangle
	for cz := 0; cz < n-1; cz++ {
		for cy := 0; cy < n-1; cy++ {
			for cx := 0; cx < n-1; cx++ {
				tris = append(tris, extractCell(values, n, cx, cy, cz, isolevel)...)
			}
		}
	}
	return tris
}

func extractCell(values ValueFunc, n, cx, cy, cz int, isolevel float32) []Triangle {
	var corner [8]float32
	var pos [8]ms3.Vec
	toWorld := func(c int) float32 { return float32(c)/float32(n-1)*4 - 2 }
	for k := 0; k < 8; k++ {
		dx, dy, dz := mctables.CornerOffset(k)
		x, y, z := cx+dx, cy+dy, cz+dz
		corner[k] = values(x, y, z)
		pos[k] = ms3.Vec{X: toWorld(x), Y: toWorld(y), Z: toWorld(z)}
	}

	var caseIdx int
	for k := 0; k < 8; k++ {
		if corner[k] < isolevel {
			caseIdx |= 1 << uint(k)
		}
	}

	edgeMask := mctables.EdgeTable[caseIdx]
	if edgeMask == 0 {
		return nil
	}

	var edgeVerts [12]ms3.Vec
	var edgeSet [12]bool
	for e := 0; e < 12; e++ {
		if edgeMask&(1<<uint(e)) == 0 {
			continue
		}
		a, b := mctables.CornerEdge(e)
		va, vb := corner[a], corner[b]
		var t float32
		if ms1.EqualWithinAbs(va, vb, degenerateEdgeEpsilon) {
			t = 0.5
		} else {
			t = (isolevel - va) / (vb - va)
			t = ms1.Clamp(t, 0, 1)
		}
		edgeVerts[e] = ms3.Add(pos[a], ms3.Scale(t, ms3.Sub(pos[b], pos[a])))
		edgeSet[e] = true
	}

	var tris []Triangle
	row := mctables.TriTable[caseIdx]
	for i := 0; i+2 < len(row) && row[i] != -1; i += 3 {
		ea, eb, ec := row[i], row[i+1], row[i+2]
		a, b, c := edgeVerts[ea], edgeVerts[eb], edgeVerts[ec]
		n := triangleNormal(a, b, c)
		tris = append(tris, Triangle{A: a, B: b, C: c, Normal: n})
	}
	return tris
}

// triangleNormal computes the normalized cross product of two triangle
// edges, falling back to (0,1,0) when the triangle is degenerate (near-zero
// area), per spec §4.5's normal numeric semantics.
func triangleNormal(a, b, c ms3.Vec) ms3.Vec {
	e1 := ms3.Sub(b, a)
	e2 := ms3.Sub(c, a)
	n := ms3.Cross(e1, e2)
	if ms3.Norm(n) < degenerateEdgeEpsilon {
		return ms3.Vec{X: 0, Y: 1, Z: 0}
	}
	return ms3.Unit(n)
}
