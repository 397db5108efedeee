package ms3

import "testing"

func TestLookAtMat4MapsOriginToEyeDistanceDownNegZ(t *testing.T) {
	const tol = 1e-5
	eye := Vec{Z: 5}
	view := LookAtMat4(eye, Vec{}, Vec{Y: 1})
	p := view.MulPosition(Vec{Z: 0})
	want := Vec{Z: -5}
	if !EqualElem(p, want, tol) {
		t.Errorf("LookAtMat4 origin transform: want %v, got %v", want, p)
	}
}

func TestPerspectiveMat4PreservesAspect(t *testing.T) {
	const tol = 1e-5
	m := PerspectiveMat4(1.0, 2.0, 0.1, 100)
	arr := m.Array()
	if arr[0] == 0 {
		t.Fatal("perspective matrix has zero x-scale term")
	}
	ratio := arr[5] / arr[0]
	if ratio < 2-tol || ratio > 2+tol {
		t.Errorf("y/x scale ratio = %v, want ~2 (matching aspect)", ratio)
	}
}
