// Package camera holds the default scene camera, light, and material the
// graphics stage contract (spec §4.8) expects, and packs them into the
// exact byte layouts C8 consumes: a 192-byte vertex uniform
// (view-projection + model + normal matrix), a 48-byte light uniform, and a
// 16-byte material uniform.
package camera

import "github.com/gpucubes/marchgl/math/ms3"

// Camera is a fixed look-at camera; Eye, Center and Up feed ms3.LookAtMat4.
type Camera struct {
	Eye, Center, Up ms3.Vec
	FovY            float32 // radians
	Near, Far       float32
}

// Default returns the scene camera both original Rust examples use:
// eye at (2,2,3), looking at the origin, up = +Y (implicit_surface.rs lines
// 120-167, SPEC_FULL.md Supplemented Feature 1).
func Default() Camera {
	return Camera{
		Eye:    ms3.Vec{X: 2, Y: 2, Z: 3},
		Center: ms3.Vec{},
		Up:     ms3.Vec{Y: 1},
		FovY:   0.785398, // ~45 degrees
		Near:   0.1,
		Far:    100,
	}
}

// ViewProjection returns the combined view-projection matrix for the given
// viewport aspect ratio (width/height).
func (c Camera) ViewProjection(aspect float32) ms3.Mat4 {
	view := ms3.LookAtMat4(c.Eye, c.Center, c.Up)
	proj := ms3.PerspectiveMat4(c.FovY, aspect, c.Near, c.Far)
	return ms3.MulMat4(proj, view)
}

// Light is the 48-byte light uniform: direction, color, and the camera eye
// position the Phong specular term needs, grounded on
// implicit_surface.rs lines 120-167 (SPEC_FULL.md Supplemented Feature 1):
// direction (-0.5,-0.5,-0.5), white specular, eye position = camera position.
type Light struct {
	Direction ms3.Vec
	Color     ms3.Vec
	EyePos    ms3.Vec
}

// DefaultLight returns the fixed light both originals use.
func DefaultLight(eye ms3.Vec) Light {
	return Light{
		Direction: ms3.Vec{X: -0.5, Y: -0.5, Z: -0.5},
		Color:     ms3.Vec{X: 1, Y: 1, Z: 1},
		EyePos:    eye,
	}
}

// Material is the 16-byte Phong material uniform, grounded on
// SPEC_FULL.md Supplemented Feature 2 (both originals share these values).
type Material struct {
	Ambient, Diffuse, Specular, Shininess float32
}

// DefaultMaterial returns {0.1, 0.7, 0.4, 30.0}, identical in both original
// Rust examples.
func DefaultMaterial() Material {
	return Material{Ambient: 0.1, Diffuse: 0.7, Specular: 0.4, Shininess: 30.0}
}

// VertexUniform is the 192-byte vertex-stage uniform block of spec §4.8:
// view-projection (64B), model (64B), and normal matrix (64B).
type VertexUniform struct {
	ViewProjection [16]float32
	Model          [16]float32
	Normal         [16]float32
}

// BuildVertexUniform packs viewProj and model into a VertexUniform, deriving
// the normal matrix as the transpose of the model matrix's inverse so
// non-uniform scaling doesn't skew shaded normals.
func BuildVertexUniform(viewProj, model ms3.Mat4) VertexUniform {
	normal := model.Inverse().Transpose()
	var vu VertexUniform
	// ms3.Mat4.Array is row-major; GLSL std140 mat4 members are column-major.
	vu.ViewProjection = viewProj.Transpose().Array()
	vu.Model = model.Transpose().Array()
	vu.Normal = normal.Transpose().Array()
	return vu
}
