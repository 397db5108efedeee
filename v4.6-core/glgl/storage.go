//go:build !tinygo && cgo

package glgl

import (
	"errors"
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// NewShaderStorageBufferBytes creates a new SSBO of the given byte size with
// no initial contents (the GPU-side memory is left undefined until written).
// Unlike [NewShaderStorageBuffer] it takes no typed data slice, which makes it
// the right constructor for buffers whose layout is defined purely by a GLSL
// `buffer` block and written to exclusively by a compute shader or by
// [UploadSSBO], such as a Marching-Cubes value/vertex/index buffer sized from
// a lattice resolution rather than from a Go-side slice.
func NewShaderStorageBufferBytes(cfg ShaderStorageBufferConfig, sizeBytes int) (ssbo ShaderStorageBuffer, err error) {
	if sizeBytes <= 0 {
		return ssbo, errors.New("size must be positive")
	}
	var p runtime.Pinner
	p.Pin(&ssbo.id)
	gl.GenBuffers(1, &ssbo.id)
	p.Unpin()
	ssbo.sz = sizeBytes
	ssbo.usage = cfg.Usage

	ssbo.Bind()
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, ssbo.sz, nil, uint32(StaticDraw))
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, cfg.Base, ssbo.id)
	return ssbo, Err()
}

// UploadSSBO uploads data into an already allocated SSBO starting at byte
// offset 0. The caller must ensure len(data)*sizeof(T) does not exceed the
// buffer's allocated size.
func UploadSSBO[T any](ssbo ShaderStorageBuffer, data []T) error {
	if len(data) == 0 {
		return errors.New("zero length or nil buffer")
	}
	ssbo.Bind()
	sz := elemSize[T]() * len(data)
	gl.BufferSubData(gl.SHADER_STORAGE_BUFFER, 0, sz, gl.Ptr(data))
	return Err()
}

// UploadSSBOAt uploads data into an already allocated SSBO starting at the
// given byte offset. Used to lay out several logically distinct arrays (such
// as an edge table followed by a triangle table) inside one physical buffer.
func UploadSSBOAt[T any](ssbo ShaderStorageBuffer, byteOffset int, data []T) error {
	if len(data) == 0 {
		return errors.New("zero length or nil buffer")
	}
	ssbo.Bind()
	sz := elemSize[T]() * len(data)
	gl.BufferSubData(gl.SHADER_STORAGE_BUFFER, byteOffset, sz, gl.Ptr(data))
	return Err()
}

// Size returns the byte size of the buffer as allocated.
func (ssbo ShaderStorageBuffer) Size() int { return ssbo.sz }

// NewUniformBuffer creates a uniform buffer object (UBO) of the given byte
// size, bound to base in the default uniform binding point, analogous to
// [NewShaderStorageBufferBytes] but for GL_UNIFORM_BUFFER.
func NewUniformBuffer(base uint32, sizeBytes int) (ubo UniformBuffer, err error) {
	if sizeBytes <= 0 {
		return ubo, errors.New("size must be positive")
	}
	var p runtime.Pinner
	p.Pin(&ubo.id)
	gl.GenBuffers(1, &ubo.id)
	p.Unpin()
	ubo.sz = sizeBytes

	ubo.Bind()
	gl.BufferData(gl.UNIFORM_BUFFER, ubo.sz, nil, uint32(DynamicDraw))
	gl.BindBufferBase(gl.UNIFORM_BUFFER, base, ubo.id)
	return ubo, Err()
}

func (ubo UniformBuffer) Bind() { gl.BindBuffer(gl.UNIFORM_BUFFER, ubo.id) }
func (ubo UniformBuffer) Delete() {
	var p runtime.Pinner
	p.Pin(&ubo.id)
	gl.DeleteBuffers(1, &ubo.id)
	p.Unpin()
}
func (ubo UniformBuffer) Size() int { return ubo.sz }

// WriteUniform overwrites the uniform buffer's contents starting at byte offset 0.
func WriteUniform[T any](ubo UniformBuffer, data []T) error {
	if len(data) == 0 {
		return errors.New("zero length or nil buffer")
	}
	ubo.Bind()
	sz := elemSize[T]() * len(data)
	if sz > ubo.sz {
		return errors.New("write exceeds uniform buffer size")
	}
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, sz, gl.Ptr(data))
	return Err()
}
