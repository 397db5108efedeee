package camera

import (
	"testing"
	"unsafe"

	"github.com/gpucubes/marchgl/math/ms3"
)

func TestUniformSizes(t *testing.T) {
	if sz := unsafe.Sizeof(Light{}); sz != 48 {
		t.Fatalf("sizeof(Light) = %d, want 48", sz)
	}
	if sz := unsafe.Sizeof(Material{}); sz != 16 {
		t.Fatalf("sizeof(Material) = %d, want 16", sz)
	}
	if sz := unsafe.Sizeof(VertexUniform{}); sz != 192 {
		t.Fatalf("sizeof(VertexUniform) = %d, want 192", sz)
	}
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	if m.Ambient != 0.1 || m.Diffuse != 0.7 || m.Specular != 0.4 || m.Shininess != 30.0 {
		t.Fatalf("DefaultMaterial() = %+v, want {0.1,0.7,0.4,30.0}", m)
	}
}

func TestDefaultCameraLooksAtOrigin(t *testing.T) {
	c := Default()
	if c.Eye != (ms3.Vec{X: 2, Y: 2, Z: 3}) {
		t.Fatalf("Default().Eye = %+v, want (2,2,3)", c.Eye)
	}
	if c.Center != (ms3.Vec{}) {
		t.Fatalf("Default().Center = %+v, want origin", c.Center)
	}
}

func TestBuildVertexUniformIdentity(t *testing.T) {
	id := ms3.IdentityMat4()
	vu := BuildVertexUniform(id, id)
	for i, v := range vu.Model {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if v != want {
			t.Fatalf("identity model matrix element %d = %v, want %v", i, v, want)
		}
	}
}
