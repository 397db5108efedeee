package anim

import (
	"testing"

	"github.com/gpucubes/marchgl/field"
)

func TestControllerStepAdvancesTime(t *testing.T) {
	c := NewController(1)
	c.Step(0.5)
	if c.AnimationTime != 0.5 {
		t.Fatalf("AnimationTime = %v, want 0.5", c.AnimationTime)
	}
}

func TestControllerAutoRotateDrawsWithinRange(t *testing.T) {
	c := NewController(42)
	c.AutoRotate = true
	c.RotationRange = [2]field.Surface{0, field.AutoRotateMax}
	for i := 0; i < 20; i++ {
		c.Step(autoRotatePeriod + 0.01)
		if int(c.SurfaceType) < 0 || c.SurfaceType > field.AutoRotateMax {
			t.Fatalf("SurfaceType %v out of configured range [0,%v]", c.SurfaceType, field.AutoRotateMax)
		}
	}
}

func TestCycleSurfaceTypeWraps(t *testing.T) {
	c := NewController(1)
	c.SurfaceType = field.BarthSextic
	c.CycleSurfaceType()
	if c.SurfaceType != field.Sphere {
		t.Fatalf("CycleSurfaceType from last surface = %v, want wraparound to Sphere", c.SurfaceType)
	}
}

func TestCycleColormapDirectionWrapsModFour(t *testing.T) {
	c := NewController(1)
	for i := 0; i < 4; i++ {
		c.CycleColormapDirection()
	}
	if c.ColormapDirection != 0 {
		t.Fatalf("ColormapDirection after 4 cycles = %d, want 0", c.ColormapDirection)
	}
}

func TestAdjustSpeedClampsAtZero(t *testing.T) {
	c := NewController(1)
	c.RotationSpeed = 0.05
	c.AdjustRotationSpeed(-1)
	if c.RotationSpeed != 0 {
		t.Fatalf("RotationSpeed = %v, want clamped to 0", c.RotationSpeed)
	}
}

func TestToggleColormapReverseAndAutoRotate(t *testing.T) {
	c := NewController(1)
	c.ToggleColormapReverse()
	if !c.ColormapReverse {
		t.Fatal("ToggleColormapReverse should set true from false")
	}
	c.ToggleAutoRotate()
	if !c.AutoRotate {
		t.Fatal("ToggleAutoRotate should set true from false")
	}
}
