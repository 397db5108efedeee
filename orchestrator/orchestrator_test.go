package orchestrator

import (
	"testing"

	"github.com/gpucubes/marchgl/field"
	glgl "github.com/gpucubes/marchgl/v4.6-core/glgl"
)

func withGLContext(t *testing.T, fn func()) {
	t.Helper()
	_, terminate, err := glgl.InitWithCurrentWindow33(glgl.WindowConfig{
		Title:      "orchestrator-test",
		Width:      1,
		Height:     1,
		Version:    [2]int{4, 6},
		HideWindow: true,
	})
	if err != nil {
		t.Log(err)
		t.Skip("no GL context available")
	}
	defer terminate()
	fn()
}

func TestNewAndFrameImplicit(t *testing.T) {
	withGLContext(t, func() {
		orch, err := New(Config{Resolution: 16, Mode: field.ModeImplicit, Palette: "jet", Seed: 1})
		if err != nil {
			t.Fatal(err)
		}
		orch.Resize(64, 64)
		orch.Step(0.016)
		if err := orch.Frame(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestNewAndFrameMetaball(t *testing.T) {
	withGLContext(t, func() {
		orch, err := New(Config{
			Resolution: 16,
			Mode:       field.ModeMetaball,
			Palette:    "viridis",
			MaxBalls:   8,
			Seed:       2,
		})
		if err != nil {
			t.Fatal(err)
		}
		orch.Resize(64, 64)
		orch.Step(0.016)
		if err := orch.Frame(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestCycleColormapDirectionWrapsModFour(t *testing.T) {
	withGLContext(t, func() {
		orch, err := New(Config{Resolution: 16, Mode: field.ModeMetaball, Palette: "jet", MaxBalls: 4, Seed: 1})
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 4; i++ {
			orch.CycleColormapDirection()
		}
		if orch.ColormapDirection != 0 {
			t.Fatalf("ColormapDirection after 4 cycles = %d, want 0", orch.ColormapDirection)
		}
	})
}

func TestResizeNoopOnNonPositive(t *testing.T) {
	withGLContext(t, func() {
		orch, err := New(Config{Resolution: 16, Mode: field.ModeImplicit, Palette: "jet", Seed: 1})
		if err != nil {
			t.Fatal(err)
		}
		orch.Resize(64, 64)
		orch.Resize(0, 100)
		if orch.width != 64 || orch.height != 64 {
			t.Fatalf("Resize(0,100) should be a no-op, got %dx%d", orch.width, orch.height)
		}
	})
}
