// Package colormap holds the named RGBA palettes sampled by the extraction
// pass when coloring emitted vertices, and the flattening routine that
// uploads a chosen palette into the CM storage buffer.
//
// Palette data, like the Marching Cubes tables in package mctables, is an
// opaque immutable blob: nothing here computes colors at runtime beyond
// nearest-index lookup, which the shader itself performs once the palette is
// resident in GPU memory.
package colormap

import "fmt"

// RGBA is one 16-byte-aligned palette entry (matches std430 vec4 layout).
type RGBA struct {
	R, G, B, A float32
}

// MaxColors bounds how many entries a single palette may hold, per spec §3's
// "palette size ≤ a fixed max" rule for buffer CM.
const MaxColors = 256

// Direction selects the scalar driving the colormap lookup, per spec §4.5.
type Direction uint32

const (
	DirectionX Direction = iota
	DirectionY
	DirectionZ
	DirectionRadius
)

var palettes = map[string][]RGBA{
	"jet":      jet,
	"viridis":  viridis,
	"hot":      hot,
	"cool":     cool,
	"grayscale": grayscale,
}

// Names lists the known palette names, in a stable order, for CLI help text
// and validation error messages.
func Names() []string {
	return []string{"jet", "viridis", "hot", "cool", "grayscale"}
}

// Lookup returns the named palette's entries. It returns an error matching
// the Configuration class of spec §7 ("unknown colormap") rather than
// panicking, since the name typically comes straight from a CLI argument.
func Lookup(name string) ([]RGBA, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("colormap: unknown palette %q (known: %v)", name, Names())
	}
	return p, nil
}

// Flatten returns palette as a flat []float32 in the 16-byte-per-entry
// layout buffer CM expects: R,G,B,A repeated once per color.
func Flatten(palette []RGBA) []float32 {
	out := make([]float32, 0, len(palette)*4)
	for _, c := range palette {
		out = append(out, c.R, c.G, c.B, c.A)
	}
	return out
}

// Sample performs the same nearest-palette-index lookup the extraction
// shader performs: s is clamped to [0,1], flipped when reverse is set, and
// rounded to the nearest palette index.
func Sample(palette []RGBA, s float32, reverse bool) RGBA {
	if len(palette) == 0 {
		return RGBA{}
	}
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	if reverse {
		s = 1 - s
	}
	idx := int(s*float32(len(palette)-1) + 0.5)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}
