package colormap

import "github.com/gpucubes/marchgl/math/ms1"

const paletteSteps = 64

// jet, viridis, hot, cool and grayscale are built once at package init from
// their well-known control points, the same way a teacher example treats a
// vertex array: fixed data, computed ahead of time, uploaded verbatim.
var (
	jet       = buildPalette(jetStops)
	viridis   = buildPalette(viridisStops)
	hot       = buildPalette(hotStops)
	cool      = buildPalette(coolStops)
	grayscale = buildPalette(grayscaleStops)
)

type stop struct {
	t          float32
	r, g, b, a float32
}

func buildPalette(stops []stop) []RGBA {
	out := make([]RGBA, paletteSteps)
	for i := range out {
		t := float32(i) / float32(paletteSteps-1)
		out[i] = lerpStops(stops, t)
	}
	return out
}

func lerpStops(stops []stop, t float32) RGBA {
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if t >= a.t && t <= b.t {
			span := b.t - a.t
			f := float32(0.5)
			if span > 1e-6 {
				f = (t - a.t) / span
			}
			return RGBA{
				R: ms1.Interp(a.r, b.r, f),
				G: ms1.Interp(a.g, b.g, f),
				B: ms1.Interp(a.b, b.b, f),
				A: ms1.Interp(a.a, b.a, f),
			}
		}
	}
	last := stops[len(stops)-1]
	return RGBA{last.r, last.g, last.b, last.a}
}

var jetStops = []stop{
	{0.00, 0, 0, 0.5, 1},
	{0.125, 0, 0, 1, 1},
	{0.375, 0, 1, 1, 1},
	{0.625, 1, 1, 0, 1},
	{0.875, 1, 0, 0, 1},
	{1.00, 0.5, 0, 0, 1},
}

var viridisStops = []stop{
	{0.0, 0.267, 0.004, 0.329, 1},
	{0.25, 0.282, 0.140, 0.457, 1},
	{0.5, 0.127, 0.566, 0.550, 1},
	{0.75, 0.369, 0.788, 0.382, 1},
	{1.0, 0.993, 0.906, 0.143, 1},
}

var hotStops = []stop{
	{0.0, 0.0416, 0, 0, 1},
	{0.365, 1, 0, 0, 1},
	{0.746, 1, 1, 0, 1},
	{1.0, 1, 1, 1, 1},
}

var coolStops = []stop{
	{0.0, 0, 1, 1, 1},
	{1.0, 1, 0, 1, 1},
}

var grayscaleStops = []stop{
	{0.0, 0, 0, 0, 1},
	{1.0, 1, 1, 1, 1},
}
