package anim

import (
	"math"
	"testing"

	"github.com/gpucubes/marchgl/math/ms3"
)

func TestNewMetaballControllerSpawnRange(t *testing.T) {
	c := NewMetaballController(200, 7)
	if len(c.Balls) != 200 {
		t.Fatalf("len(Balls) = %d, want 200", len(c.Balls))
	}
	for i, b := range c.Balls {
		for _, v := range [3]float32{b.Pos.X, b.Pos.Y, b.Pos.Z} {
			if v < -4 || v > 4 {
				t.Fatalf("ball %d position component %v out of [-4,4]", i, v)
			}
		}
		if b.Speed < 0.3 || b.Speed >= 2.3 {
			t.Fatalf("ball %d speed %v out of [0.3,2.3)", i, b.Speed)
		}
	}
}

func TestMetaballBoundaryReflection(t *testing.T) {
	c := NewMetaballController(1, 1)
	c.Balls[0].Pos = ms3.Vec{X: 3.09, Y: 0, Z: 0}
	c.Balls[0].Vel = ms3.Vec{X: 100, Y: 0, Z: 0}
	for i := 0; i < 50; i++ {
		c.Step(0.1)
		if c.Balls[0].Pos.X > boundary+1e-3 || c.Balls[0].Pos.X < -boundary-1e-3 {
			t.Fatalf("step %d: ball escaped boundary: pos.X = %v", i, c.Balls[0].Pos.X)
		}
	}
}

func TestMetaballRadiusFormula(t *testing.T) {
	b := Metaball{Strength: 4, Subtract: 1}
	want := float32(2)
	if got := b.Radius(); math.Abs(float64(got-want)) > 1e-4 {
		t.Fatalf("Radius() = %v, want %v", got, want)
	}
}

func TestMetaballStrengthRelaxesTowardTarget(t *testing.T) {
	c := NewMetaballController(1, 3)
	c.Balls[0].Strength = 0
	c.Balls[0].StrengthTarget = 10
	for i := 0; i < 1000; i++ {
		c.Step(0.016)
	}
	if c.Balls[0].Strength < 5 {
		t.Fatalf("Strength = %v after many steps, expected to approach target 10", c.Balls[0].Strength)
	}
}

func TestRecordsLengthMatchesBalls(t *testing.T) {
	c := NewMetaballController(5, 9)
	records := c.Records()
	if len(records) != 5 {
		t.Fatalf("len(Records()) = %d, want 5", len(records))
	}
}
