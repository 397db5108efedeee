// Package field defines the uniform and storage record layouts the scalar
// field compute pass (the first of the two GPU compute stages) agrees on
// with its GLSL source, plus the host-side enumeration of selectable fields.
// No field value is ever evaluated in Go: evaluation happens entirely on the
// GPU, matching spec §4.4's Field Pass contract. This package only fixes the
// binary shapes both sides must agree on, and the dispatch sizing the host
// needs to issue the right workgroup counts.
package field

// Mode selects which of the two field families IntUniform.Mode requests.
type Mode uint32

const (
	ModeImplicit Mode = iota
	ModeMetaball
)

// Surface enumerates the eleven analytic implicit-surface fields, matching
// spec §3's numbering exactly; GLSL source selects on this value via
// IntUniform.Field.
type Surface uint32

const (
	Sphere Surface = iota
	Schwartz
	Blobs
	Klein
	Torus
	Chmutov
	Gyroid
	CubeSphere
	OrthoCircle
	SpiderCage
	BarthSextic
)

// SurfaceCount is the number of defined Surface values.
const SurfaceCount = 11

// AutoRotateMax is the highest Surface value the automatic surface-type
// rotation in package anim cycles through (spec §9 Open Question: the
// source restricts auto-rotation to 0..=8, excluding SpiderCage and
// BarthSextic; exposed here as the default upper bound of a configurable
// range rather than a hardcoded cutoff).
const AutoRotateMax = OrthoCircle

func (s Surface) String() string {
	names := [...]string{
		"Sphere", "Schwartz", "Blobs", "Klein", "Torus", "Chmutov",
		"Gyroid", "CubeSphere", "OrthoCircle", "SpiderCage", "BarthSextic",
	}
	if int(s) < 0 || int(s) >= len(names) {
		return "Surface(?)"
	}
	return names[s]
}

// TileSize returns the compute workgroup tile side for mode: 8 for implicit
// fields, 4 for metaballs, per spec §3/§4.4.
func (m Mode) TileSize() int {
	if m == ModeMetaball {
		return 4
	}
	return 8
}

// IntUniform is the 16-byte Iu_field uniform block bound at field-pass
// binding 1 (spec §6.1). Field is either SurfaceType (implicit mode) or
// BallCount (metaball mode); the two share storage since only one is
// meaningful per Mode, mirroring the union spec §3 describes as
// "{resolution, surface_type, _, _} or {resolution, ball_count, _, _}".
type IntUniform struct {
	Resolution uint32
	Mode       uint32
	Field      uint32
	_          uint32
}

// NewImplicitIntUniform builds the field-pass integer uniform for implicit
// surface mode.
func NewImplicitIntUniform(resolution int, surface Surface) IntUniform {
	return IntUniform{Resolution: uint32(resolution), Mode: uint32(ModeImplicit), Field: uint32(surface)}
}

// NewMetaballIntUniform builds the field-pass integer uniform for metaball
// mode.
func NewMetaballIntUniform(resolution, ballCount int) IntUniform {
	return IntUniform{Resolution: uint32(resolution), Mode: uint32(ModeMetaball), Field: uint32(ballCount)}
}

// FloatUniform is the 16-byte Fu_field uniform block for implicit mode: a
// single animation-time scalar plus padding (spec §3, §6.1). Metaball mode
// instead binds a storage array of MetaballRecord at the same binding slot,
// so this type is only meaningful when Mode == ModeImplicit.
type FloatUniform struct {
	AnimationTime float32
	_             float32
	_             float32
	_             float32
}

// MetaballRecord is the 32-byte, 16-byte-aligned per-ball record bound as a
// read-only storage array at field-pass binding 2 in metaball mode (spec §3,
// §9 "Metaball record padding"). The Pad field carries no data but MUST be
// preserved so the array's stride matches the GLSL struct's std430 layout.
type MetaballRecord struct {
	PosX, PosY, PosZ float32
	Radius           float32
	Strength         float32
	Subtract         float32
	Pad              [2]float32
}

// DefaultBallCount is the default metaball population, per spec §3.
const DefaultBallCount = 200
