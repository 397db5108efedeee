// Package anim drives every time-dependent uniform in the system: implicit
// surface rotation and auto surface-type cycling (Controller), and metaball
// center-seeking dynamics (MetaballController), per spec §4.7. Nothing here
// touches a GPU resource directly; orchestrator reads these types' state
// each frame and feeds it to package glbuf's uniform writers.
package anim

import (
	"math/rand"

	"github.com/gpucubes/marchgl/field"
	"github.com/gpucubes/marchgl/math/ms3"
)

// autoRotatePeriod is the interval, in seconds, between automatic
// surface-type draws, per spec §4.7.
const autoRotatePeriod = 5

// Controller advances the implicit-surface program's rotation and optional
// automatic surface cycling, and tracks the colormap/animation knobs the
// key-binding handlers in §6.3 mutate.
type Controller struct {
	RotationAngle  float32
	RotationSpeed  float32
	AnimationSpeed float32
	AnimationTime  float32

	SurfaceType       field.Surface
	ColormapDirection uint32
	ColormapReverse   bool
	AutoRotate        bool

	// RotationRange bounds the surfaces AutoRotate draws from, inclusive.
	// Defaults to [0, field.AutoRotateMax] per SPEC_FULL.md's REDESIGN
	// FLAGS (spec §9's Open Question on the 0..=8 restriction).
	RotationRange [2]field.Surface

	autoRotateTimer float32
	rng             *rand.Rand
}

// NewController returns a Controller seeded for reproducible auto-rotation
// sequences (spec §9's "Global animation clock... RNG state" note: the
// generator lives here, not scattered across components).
func NewController(seed int64) *Controller {
	return &Controller{
		AnimationSpeed: 1,
		RotationSpeed:  0.3,
		RotationRange:  [2]field.Surface{0, field.AutoRotateMax},
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// Step advances animation and rotation state by dt seconds, and, when
// AutoRotate is set, draws a new SurfaceType every 5 seconds per spec §4.7.
func (c *Controller) Step(dt float32) {
	c.AnimationTime += dt * c.AnimationSpeed
	c.RotationAngle += c.RotationSpeed * dt

	if !c.AutoRotate {
		return
	}
	c.autoRotateTimer += dt
	if c.autoRotateTimer < autoRotatePeriod {
		return
	}
	c.autoRotateTimer = 0
	lo, hi := int(c.RotationRange[0]), int(c.RotationRange[1])
	if hi < lo {
		lo, hi = hi, lo
	}
	c.SurfaceType = field.Surface(lo + c.rng.Intn(hi-lo+1))
}

// ModelMatrix returns the current rotation as a model matrix, rotating about
// the axis (sin θ, cos θ, 0) by θ = RotationAngle, per spec §4.7's "model
// matrix uses (sin θ, cos θ, 0) Euler angles".
func (c *Controller) ModelMatrix() ms3.Mat4 {
	s, cs := sincos(c.RotationAngle)
	axis := ms3.Vec{X: s, Y: cs, Z: 0}
	return ms3.RotationMat4(c.RotationAngle, axis)
}

// CycleSurfaceType advances SurfaceType by one, wrapping at SurfaceCount,
// bound to the Space key per spec §6.3.
func (c *Controller) CycleSurfaceType() {
	c.SurfaceType = field.Surface((int(c.SurfaceType) + 1) % field.SurfaceCount)
}

// CycleColormapDirection advances ColormapDirection modulo 4, bound to LCtrl.
func (c *Controller) CycleColormapDirection() {
	c.ColormapDirection = (c.ColormapDirection + 1) % 4
}

// ToggleColormapReverse flips ColormapReverse, bound to LAlt.
func (c *Controller) ToggleColormapReverse() {
	c.ColormapReverse = !c.ColormapReverse
}

// ToggleAutoRotate flips AutoRotate, bound to LShift.
func (c *Controller) ToggleAutoRotate() {
	c.AutoRotate = !c.AutoRotate
	c.autoRotateTimer = 0
}

// speedStep is the increment both animation and rotation speed keys apply.
const speedStep = 0.1

// AdjustAnimationSpeed changes AnimationSpeed by delta, clamped at 0, bound
// to Q/A.
func (c *Controller) AdjustAnimationSpeed(delta float32) {
	c.AnimationSpeed = clampNonNegative(c.AnimationSpeed + delta)
}

// AdjustRotationSpeed changes RotationSpeed by delta, clamped at 0, bound to
// W/S.
func (c *Controller) AdjustRotationSpeed(delta float32) {
	c.RotationSpeed = clampNonNegative(c.RotationSpeed + delta)
}

func clampNonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
