//go:build !tinygo && cgo

package glgl

import (
	"errors"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// RenderTarget is a single texture (depth, multisampled color or plain color)
// that a render pass attaches to an offscreen framebuffer. Rebuilt on resize;
// see [NewDepthTexture], [NewMSAAColorTexture] and [NewColorTexture].
type RenderTarget struct {
	rid uint32
	// target is the GL texture target (gl.TEXTURE_2D or gl.TEXTURE_2D_MULTISAMPLE).
	target uint32
}

// NewDepthTexture allocates a depth-only texture sized to (width,height),
// suitable for use as a depth attachment on a framebuffer bound before a
// render pass. sampleCount > 1 requests a multisampled depth texture.
func NewDepthTexture(width, height, sampleCount int32) RenderTarget {
	var id uint32
	gl.GenTextures(1, &id)
	target := uint32(gl.TEXTURE_2D)
	if sampleCount > 1 {
		target = gl.TEXTURE_2D_MULTISAMPLE
		gl.BindTexture(target, id)
		gl.TexImage2DMultisample(target, sampleCount, gl.DEPTH_COMPONENT24, width, height, true)
	} else {
		gl.BindTexture(target, id)
		gl.TexImage2D(target, 0, gl.DEPTH_COMPONENT24, width, height, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
		gl.TexParameteri(target, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(target, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	}
	return RenderTarget{rid: id, target: target}
}

// NewMSAAColorTexture allocates a multisampled color texture matching the
// swapchain's format, used as the resolve source when sampleCount > 1.
func NewMSAAColorTexture(width, height, sampleCount int32, internalFormat uint32) RenderTarget {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, id)
	gl.TexImage2DMultisample(gl.TEXTURE_2D_MULTISAMPLE, sampleCount, internalFormat, width, height, true)
	return RenderTarget{rid: id, target: gl.TEXTURE_2D_MULTISAMPLE}
}

// Delete frees the underlying GL texture.
func (t RenderTarget) Delete() {
	var p runtime.Pinner
	p.Pin(&t.rid)
	gl.DeleteTextures(1, &t.rid)
	p.Unpin()
}

// NewColorTexture allocates a plain (non-multisampled) color texture sized to
// (width,height), used as a framebuffer's color attachment when rendering at
// a single sample.
func NewColorTexture(width, height int32, internalFormat uint32) RenderTarget {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(internalFormat), width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return RenderTarget{rid: id, target: gl.TEXTURE_2D}
}

// NewFramebuffer creates a framebuffer object and binds it to the current context.
func NewFramebuffer() uint32 {
	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	return fbo
}

// FramebufferTexture attaches rt's texture to the framebuffer currently bound
// to gl.FRAMEBUFFER at the given attachment point (gl.DEPTH_ATTACHMENT,
// gl.COLOR_ATTACHMENT0, ...).
func FramebufferTexture(attachment uint32, rt RenderTarget) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, rt.target, rt.rid, 0)
}

// AddAttributeFromSSBO binds ssbo's underlying buffer object to the array
// buffer target and wires it into vao at the attribute layout describes,
// letting a buffer written by a compute shader (position, normal, color)
// double as a vertex attribute source without a copy.
func (vao VertexArray) AddAttributeFromSSBO(ssbo ShaderStorageBuffer, layout AttribLayout) error {
	if !strings.HasSuffix(layout.Name, "\x00") {
		return ErrStringNotNullTerminated
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, ssbo.id)
	vertAttrib := gl.GetAttribLocation(layout.Program.rid, gl.Str(layout.Name))
	if vertAttrib < 0 {
		return errors.New("vertex attribute not found:" + layout.Name[:len(layout.Name)-1])
	}
	gl.EnableVertexAttribArray(uint32(vertAttrib))
	gl.VertexAttribPointerWithOffset(uint32(vertAttrib), int32(layout.Packing), uint32(layout.Type),
		layout.Normalize, int32(layout.Stride), uintptr(layout.Offset))
	return Err()
}

// IndexBufferFromSSBO wraps ssbo's underlying buffer object as an
// IndexBuffer, so the extraction pass's index SSBO can be bound as the
// element array for [DrawIndexedTriangles].
func IndexBufferFromSSBO(ssbo ShaderStorageBuffer) IndexBuffer {
	return IndexBuffer{rid: ssbo.id}
}

// DrawIndexedTriangles issues an indexed triangle draw call over count u32
// indices starting at index 0. Degenerate (all-zero) triangles written by the
// extraction pass are submitted like any other; the rasterizer discards them
// since they have zero area.
func DrawIndexedTriangles(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, unsafe.Pointer(nil))
}

// SetUniformName4f looks up a vec4 uniform by name and sets it, combining
// [Program.UniformLocation] and [Program.SetUniformf] into the one-shot form
// used for infrequently-touched scalar program uniforms (material tints,
// debug toggles) that don't warrant caching the location themselves.
func (p Program) SetUniformName4f(name string, floats ...float32) error {
	loc, err := p.UniformLocation(name)
	if err != nil {
		return err
	}
	return p.SetUniformf(loc, floats...)
}
