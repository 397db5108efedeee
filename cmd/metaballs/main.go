// Command metaballs renders a field of blended, bouncing metaballs,
// extracted into a triangle mesh on the GPU every frame via Marching Cubes.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gpucubes/marchgl/field"
	"github.com/gpucubes/marchgl/orchestrator"
	glgl "github.com/gpucubes/marchgl/v4.6-core/glgl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	debug := flag.Bool("debug", false, "enable GL debug output logging")
	flag.Parse()
	args := flag.Args()

	sampleCount := argInt(args, 0, 1)
	resolution := argInt(args, 1, 192)
	colormapName := argString(args, 2, "jet")

	window, terminate, err := glgl.InitWithCurrentWindow33(glgl.WindowConfig{
		Title:   "metaballs",
		Version: [2]int{4, 6},
		Width:   1024,
		Height:  768,
	})
	if err != nil {
		slog.Error("initializing window", "err", err.Error())
		return 1
	}
	defer terminate()

	if *debug {
		glgl.EnableDebugOutput(slog.Default())
	}
	glfw.SwapInterval(1)

	orch, err := orchestrator.New(orchestrator.Config{
		Resolution:  resolution,
		SampleCount: sampleCount,
		Mode:        field.ModeMetaball,
		Palette:     colormapName,
		MaxBalls:    field.DefaultBallCount,
		Seed:        1,
	})
	if err != nil {
		slog.Error("building orchestrator", "err", err.Error())
		return 1
	}

	fbw, fbh := window.GetFramebufferSize()
	orch.Resize(fbw, fbh)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		orch.Resize(width, height)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeySpace:
			orch.CycleColormapDirection()
		case glfw.KeyLeftControl:
			orch.ToggleColormapReverse()
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})

	var frames int
	var fpsTimer float32
	last := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		orch.Step(dt)
		if err := orch.Frame(); err != nil {
			slog.Error("frame", "err", err.Error())
			return 1
		}
		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		fpsTimer += dt
		if fpsTimer >= 1 {
			window.SetTitle(fmt.Sprintf("metaballs - %d fps", frames))
			frames = 0
			fpsTimer = 0
		}
	}
	return 0
}

func argInt(args []string, i, def int) int {
	if i >= len(args) {
		return def
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return def
	}
	return v
}

func argString(args []string, i int, def string) string {
	if i >= len(args) {
		return def
	}
	return args[i]
}
