// Package orchestrator drives the per-frame state machine (C6): update
// uniforms, dispatch the two compute passes, draw, and react to resize, per
// spec §4.6. It owns every GL object above the raw buffer pool — the two
// compute programs, the graphics program, the vertex array wiring compute
// output straight into vertex attributes, and the render targets a resize
// rebuilds.
package orchestrator

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gpucubes/marchgl/anim"
	"github.com/gpucubes/marchgl/camera"
	"github.com/gpucubes/marchgl/colormap"
	"github.com/gpucubes/marchgl/field"
	"github.com/gpucubes/marchgl/glbuf"
	"github.com/gpucubes/marchgl/marchcubes"
	"github.com/gpucubes/marchgl/math/ms3"
	"github.com/gpucubes/marchgl/shaders"
	"github.com/gpucubes/marchgl/volume"
	glgl "github.com/gpucubes/marchgl/v4.6-core/glgl"
)

// Config fixes everything an Orchestrator needs to allocate its GPU state
// once at startup, matching the CLI surface of spec §6.3.
type Config struct {
	Resolution  int
	SampleCount int
	Mode        field.Mode
	Palette     string
	MaxBalls    int
	// Seed seeds the animation and metaball RNGs; callers that want
	// reproducible runs (tests, recorded demos) fix this explicitly.
	Seed int64
}

// Orchestrator is the live GPU session for one run of either the
// implicit-surface or metaball program.
type Orchestrator struct {
	cfg  Config
	pool *glbuf.Pool
	desc volume.Descriptor

	fieldProgram   glgl.Program
	extractProgram glgl.Program
	surfaceProgram glgl.Program

	vao      glgl.VertexArray
	indexBuf glgl.IndexBuffer

	vertexUBO   glgl.UniformBuffer
	lightUBO    glgl.UniformBuffer
	materialUBO glgl.UniformBuffer

	cam      camera.Camera
	light    camera.Light
	material camera.Material

	anim  *anim.Controller
	balls *anim.MetaballController

	// ColormapDirection and ColormapReverse drive the extraction pass'
	// color sampling in metaball mode, bound to Space/LCtrl per spec §6.3.
	// Implicit-surface mode keeps the equivalent state on anim.Controller
	// instead, since there it shares a key-binding set with rotation and
	// surface-type cycling.
	ColormapDirection uint32
	ColormapReverse   bool

	width, height int
	aspect        float32
	fbo           uint32
	depth         glgl.RenderTarget
	color         glgl.RenderTarget

	isolevel float32
	scale    float32
}

// graphics-stage UBO binding bases, independent of the compute binding
// namespaces glbuf.Pool uses (spec §4.8's three uniform blocks).
const (
	uboVertex = iota
	uboLight
	uboMaterial
)

// New allocates every GPU resource for cfg: the buffer pool, both compute
// programs (selected by cfg.Mode), the graphics program, and the vertex
// array binding compute output into vertex attributes. Call Resize once
// before the first Frame to size the depth/MSAA targets and projection.
func New(cfg Config) (*Orchestrator, error) {
	tile := cfg.Mode.TileSize()
	desc, err := volume.New(cfg.Resolution, tile)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	maxBalls := cfg.MaxBalls
	if maxBalls <= 0 {
		maxBalls = field.DefaultBallCount
	}
	pool, err := glbuf.Allocate(desc, maxBalls)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: allocating buffer pool: %w", err)
	}
	if err := pool.UploadTables(); err != nil {
		return nil, fmt.Errorf("orchestrator: uploading tables: %w", err)
	}

	palette, err := colormap.Lookup(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	if err := pool.UploadColormap(palette); err != nil {
		return nil, fmt.Errorf("orchestrator: uploading colormap: %w", err)
	}

	o := &Orchestrator{
		cfg:         cfg,
		pool:        pool,
		desc:        desc,
		cam:      camera.Default(),
		material: camera.DefaultMaterial(),
		isolevel: 0,
		scale:    1,
	}
	o.light = camera.DefaultLight(o.cam.Eye)

	if cfg.Mode == field.ModeMetaball {
		o.balls = anim.NewMetaballController(maxBalls, cfg.Seed)
	} else {
		o.anim = anim.NewController(cfg.Seed)
	}

	if err := o.compilePrograms(); err != nil {
		return nil, err
	}
	if err := o.buildVertexArray(); err != nil {
		return nil, fmt.Errorf("orchestrator: building vertex array: %w", err)
	}

	o.vertexUBO, err = glgl.NewUniformBuffer(uboVertex, 192)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: allocating vertex uniform: %w", err)
	}
	o.lightUBO, err = glgl.NewUniformBuffer(uboLight, 48)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: allocating light uniform: %w", err)
	}
	o.materialUBO, err = glgl.NewUniformBuffer(uboMaterial, 16)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: allocating material uniform: %w", err)
	}
	if err := glgl.WriteUniform(o.materialUBO, []camera.Material{o.material}); err != nil {
		return nil, fmt.Errorf("orchestrator: writing material uniform: %w", err)
	}

	return o, nil
}

func (o *Orchestrator) compilePrograms() error {
	var fieldSrc, extractSrc glgl.ShaderSource
	var err error
	if o.cfg.Mode == field.ModeMetaball {
		fieldSrc, err = shaders.FieldMetaball()
	} else {
		fieldSrc, err = shaders.FieldImplicit()
	}
	if err != nil {
		return err
	}
	o.fieldProgram, err = glgl.CompileProgram(fieldSrc)
	if err != nil {
		return fmt.Errorf("orchestrator: compiling field program: %w", err)
	}

	if o.cfg.Mode == field.ModeMetaball {
		extractSrc, err = shaders.ExtractTile4()
	} else {
		extractSrc, err = shaders.ExtractTile8()
	}
	if err != nil {
		return err
	}
	o.extractProgram, err = glgl.CompileProgram(extractSrc)
	if err != nil {
		return fmt.Errorf("orchestrator: compiling extraction program: %w", err)
	}

	surfaceSrc, err := shaders.Surface()
	if err != nil {
		return err
	}
	o.surfaceProgram, err = glgl.CompileProgram(surfaceSrc)
	if err != nil {
		return fmt.Errorf("orchestrator: compiling surface program: %w", err)
	}
	return nil
}

// buildVertexArray wires the extraction pass' position/normal/color SSBOs
// directly as vertex attribute sources, and its index SSBO as the element
// array, so the graphics stage never copies a vertex off the GPU.
func (o *Orchestrator) buildVertexArray() error {
	o.vao = glgl.NewVAO()
	const stride = 16 // vec4, matching volume.BytesPerVertexSlot
	attrs := []struct {
		name string
		ssbo glgl.ShaderStorageBuffer
	}{
		{"a_position\x00", o.pool.Position},
		{"a_normal\x00", o.pool.Normal},
		{"a_color\x00", o.pool.Color},
	}
	for _, a := range attrs {
		layout := glgl.AttribLayout{
			Program: o.surfaceProgram,
			Type:    glgl.Type(gl.FLOAT),
			Name:    a.name,
			Packing: 4,
			Stride:  stride,
		}
		if err := o.vao.AddAttributeFromSSBO(a.ssbo, layout); err != nil {
			return err
		}
	}
	o.indexBuf = glgl.IndexBufferFromSSBO(o.pool.Index)
	return nil
}

// Resize rebuilds the depth (and, if sample_count > 1, MSAA) render targets,
// reattaches them to the offscreen framebuffer draw renders into, and
// recomputes and pushes the view-projection uniform right away rather than
// waiting for the next UPDATE_UNIFORMS, so a resized-but-paused frame never
// presents with a stale aspect ratio. Storage buffers and pipelines are
// untouched, per spec §4.6. width or height <= 0 is a no-op.
func (o *Orchestrator) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	o.width, o.height = width, height
	o.aspect = float32(width) / float32(height)

	o.depth.Delete()
	o.color.Delete()
	o.depth = glgl.NewDepthTexture(int32(width), int32(height), int32(o.cfg.SampleCount))
	if o.cfg.SampleCount > 1 {
		o.color = glgl.NewMSAAColorTexture(int32(width), int32(height), int32(o.cfg.SampleCount), gl.RGBA8)
	} else {
		o.color = glgl.NewColorTexture(int32(width), int32(height), gl.RGBA8)
	}

	if o.fbo == 0 {
		o.fbo = glgl.NewFramebuffer()
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)
	}
	glgl.FramebufferTexture(gl.DEPTH_ATTACHMENT, o.depth)
	glgl.FramebufferTexture(gl.COLOR_ATTACHMENT0, o.color)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if err := o.writeViewProjection(); err != nil {
		slog.Error("orchestrator: writing view-projection on resize", "err", err.Error())
	}
}

// modelMatrix returns the current model transform: the animation
// controller's rotation in implicit-surface mode, identity in metaball mode.
func (o *Orchestrator) modelMatrix() ms3.Mat4 {
	if o.anim != nil {
		return o.anim.ModelMatrix()
	}
	return ms3.IdentityMat4()
}

// writeViewProjection recomputes the projection from the current aspect
// ratio and pushes the 64-byte view-projection slice of vertexUBO.
func (o *Orchestrator) writeViewProjection() error {
	viewProj := o.cam.ViewProjection(o.aspect)
	vu := camera.BuildVertexUniform(viewProj, o.modelMatrix())
	return glgl.WriteUniform(o.vertexUBO, []camera.VertexUniform{vu})
}

// Step advances the animation/mutation controller by dt seconds (C7).
func (o *Orchestrator) Step(dt float32) {
	if o.anim != nil {
		o.anim.Step(dt)
	}
	if o.balls != nil {
		o.balls.Step(dt)
	}
}

// Anim exposes the implicit-surface animation controller, nil in metaball
// mode. Used by cmd/implicitsurface's key-binding handlers.
func (o *Orchestrator) Anim() *anim.Controller { return o.anim }

// Balls exposes the metaball controller, nil in implicit-surface mode.
func (o *Orchestrator) Balls() *anim.MetaballController { return o.balls }

// CycleColormapDirection advances ColormapDirection modulo 4, bound to
// Space in the metaball program.
func (o *Orchestrator) CycleColormapDirection() {
	o.ColormapDirection = (o.ColormapDirection + 1) % 4
}

// ToggleColormapReverse flips ColormapReverse, bound to LCtrl in the
// metaball program.
func (o *Orchestrator) ToggleColormapReverse() {
	o.ColormapReverse = !o.ColormapReverse
}

// Frame runs one pass through UPDATE_UNIFORMS → ENCODE → SUBMIT → PRESENT.
// The GL binding this targets executes compute dispatches and the draw call
// synchronously on the calling goroutine, so ENCODE and SUBMIT collapse into
// one step; swap is left to the caller (glfw.Window.SwapBuffers), matching
// PRESENT's "acquire surface texture, present."
func (o *Orchestrator) Frame() error {
	if err := o.updateUniforms(); err != nil {
		return fmt.Errorf("orchestrator: update uniforms: %w", err)
	}
	if err := o.dispatchCompute(); err != nil {
		return fmt.Errorf("orchestrator: compute dispatch: %w", err)
	}
	o.draw()
	return nil
}

func (o *Orchestrator) updateUniforms() error {
	if o.cfg.Mode == field.ModeMetaball {
		iu := field.NewMetaballIntUniform(o.desc.N, len(o.balls.Balls))
		if err := o.pool.WriteFieldUniforms(iu, field.FloatUniform{}); err != nil {
			return err
		}
		if err := o.pool.WriteMetaballs(o.balls.Records()); err != nil {
			return err
		}
	} else {
		iu := field.NewImplicitIntUniform(o.desc.N, o.anim.SurfaceType)
		fu := field.FloatUniform{AnimationTime: o.anim.AnimationTime}
		if err := o.pool.WriteFieldUniforms(iu, fu); err != nil {
			return err
		}
	}

	colormapDirection := o.ColormapDirection
	colormapReverse := o.ColormapReverse
	if o.anim != nil {
		colormapDirection = o.anim.ColormapDirection
		colormapReverse = o.anim.ColormapReverse
	}
	extractIU := marchcubes.NewIntUniform(o.desc.N, colormapDirection, colormapReverse)
	extractFU := marchcubes.NewFloatUniform(o.isolevel, o.scale)
	if err := o.pool.WriteExtractUniforms(extractIU, extractFU); err != nil {
		return err
	}

	// Indirect block mirrors the standard DrawElementsIndirectCommand
	// layout {count, instanceCount, firstIndex, baseVertex}; count is the
	// fixed total budget (IndicesPerCell for every cell), not a compacted count, per §4.1's no-atomics
	// slot allocation.
	if err := o.pool.WriteIndirect(uint32(o.desc.IndexCount()), 1, 0, 0); err != nil {
		return err
	}

	if err := o.writeViewProjection(); err != nil {
		return err
	}
	return glgl.WriteUniform(o.lightUBO, []camera.Light{o.light})
}

func (o *Orchestrator) dispatchCompute() error {
	gx, gy, gz := o.desc.DispatchGroups()

	o.fieldProgram.Bind()
	o.pool.BindFieldGroup(o.cfg.Mode == field.ModeMetaball)
	if err := o.fieldProgram.RunCompute(gx, gy, gz); err != nil {
		return err
	}

	o.extractProgram.Bind()
	o.pool.BindExtractGroup()
	return o.extractProgram.RunCompute(gx, gy, gz)
}

// draw renders the frame into the offscreen framebuffer Resize built (so the
// depth attachment, and the MSAA color attachment when sample_count > 1, are
// actually exercised per spec §4.6's "render pass with depth + optional
// MSAA"), then blits the result to the default framebuffer for presentation
// — a blit also resolves a multisampled source into the single-sample
// backbuffer.
func (o *Orchestrator) draw() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)
	gl.Viewport(0, 0, int32(o.width), int32(o.height))
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.05, 0.05, 0.08, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	o.surfaceProgram.Bind()
	o.vao.Bind()
	o.indexBuf.Bind()
	glgl.DrawIndexedTriangles(int32(o.desc.IndexCount()))

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, o.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, 0, int32(o.width), int32(o.height), 0, 0, int32(o.width), int32(o.height), gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}
