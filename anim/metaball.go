package anim

import (
	"math/rand"

	math "github.com/chewxy/math32"

	"github.com/gpucubes/marchgl/field"
	"github.com/gpucubes/marchgl/math/ms3"
)

// boundary is the cubic reflection boundary metaballs bounce off of, per
// spec §4.7.
const boundary = 3.1

// resamplePeriod is the interval, in seconds, between new strength/subtract
// targets, per spec §4.7.
const resamplePeriod = 5

// relaxRate is the per-second fraction by which strength/subtract close the
// gap to their targets, per spec §4.7.
const relaxRate = 0.2

// posIntegrationScale and accelScale match spec §4.7's stated coefficients
// for the center-seeking integration (`v += -p*speed*20`, `p += v*dt*1e-4`).
const (
	accelScale          = 20
	posIntegrationScale = 1e-4
)

// Metaball is one ball's physical and field state.
type Metaball struct {
	Pos, Vel ms3.Vec

	Strength, StrengthTarget float32
	Subtract, SubtractTarget float32

	// Speed is this ball's individual multiplier on the center-seeking
	// acceleration, grounded on SPEC_FULL.md Supplemented Feature 5
	// (metaball.rs line 280: a per-ball speed in [0.3, 2.3)).
	Speed float32
}

// Radius derives the compact-support falloff cutoff, per spec §4.7:
// sqrt(strength/subtract).
func (m Metaball) Radius() float32 {
	if m.Subtract <= 0 {
		return 0
	}
	return math.Sqrt(m.Strength / m.Subtract)
}

// MetaballController advances every ball's center-seeking dynamics and
// periodically resamples strength/subtract targets, per spec §4.7.
type MetaballController struct {
	Balls []Metaball

	resampleTimer float32
	rng           *rand.Rand
}

// NewMetaballController spawns count balls with positions drawn uniformly
// from [-4,4]^3 and velocities uniformly from [-1,1]^3, per SPEC_FULL.md's
// REDESIGN FLAGS (replacing the original's axis-asymmetric spawn hack).
func NewMetaballController(count int, seed int64) *MetaballController {
	rng := rand.New(rand.NewSource(seed))
	balls := make([]Metaball, count)
	for i := range balls {
		balls[i] = Metaball{
			Pos:      randVec(rng, -4, 4),
			Vel:      randVec(rng, -1, 1),
			Strength: 3 + rng.Float32()*3,
			Subtract: 3 + rng.Float32()*3,
			Speed:    0.3 + rng.Float32()*2, // [0.3, 2.3)
		}
		balls[i].StrengthTarget = balls[i].Strength
		balls[i].SubtractTarget = balls[i].Subtract
	}
	return &MetaballController{Balls: balls, rng: rng}
}

func randVec(rng *rand.Rand, lo, hi float32) ms3.Vec {
	span := hi - lo
	return ms3.Vec{
		X: lo + rng.Float32()*span,
		Y: lo + rng.Float32()*span,
		Z: lo + rng.Float32()*span,
	}
}

// Step advances every ball's position, velocity, and strength/subtract
// envelope by dt seconds, per spec §4.7.
func (c *MetaballController) Step(dt float32) {
	c.resampleTimer += dt
	resample := c.resampleTimer >= resamplePeriod
	if resample {
		c.resampleTimer = 0
	}

	for i := range c.Balls {
		b := &c.Balls[i]

		accel := ms3.Scale(-b.Speed*accelScale, b.Pos)
		b.Vel = ms3.Add(b.Vel, accel)
		b.Pos = ms3.Add(b.Pos, ms3.Scale(dt*posIntegrationScale, b.Vel))
		reflectBoundary(&b.Pos, &b.Vel)

		if resample {
			b.StrengthTarget = 3 + c.rng.Float32()*3
			b.SubtractTarget = 3 + c.rng.Float32()*3
		}
		b.Strength += (b.StrengthTarget - b.Strength) * dt * relaxRate
		b.Subtract += (b.SubtractTarget - b.Subtract) * dt * relaxRate
	}
}

// reflectBoundary clamps each axis of p to [-boundary, boundary], negating
// the corresponding velocity component whenever a clamp fires, per spec
// §4.7's cubic-boundary reflection rule.
func reflectBoundary(p, v *ms3.Vec) {
	reflectAxis(&p.X, &v.X)
	reflectAxis(&p.Y, &v.Y)
	reflectAxis(&p.Z, &v.Z)
}

func reflectAxis(p, v *float32) {
	if *p > boundary {
		*p = boundary
		*v = -*v
	} else if *p < -boundary {
		*p = -boundary
		*v = -*v
	}
}

// Records converts the current ball state into the GPU-facing record slice
// package glbuf's WriteMetaballs expects.
func (c *MetaballController) Records() []field.MetaballRecord {
	out := make([]field.MetaballRecord, len(c.Balls))
	for i, b := range c.Balls {
		out[i] = field.MetaballRecord{
			PosX:     b.Pos.X,
			PosY:     b.Pos.Y,
			PosZ:     b.Pos.Z,
			Radius:   b.Radius(),
			Strength: b.Strength,
			Subtract: b.Subtract,
		}
	}
	return out
}
