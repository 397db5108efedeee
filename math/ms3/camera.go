package ms3

import (
	math "github.com/chewxy/math32"
)

// PerspectiveMat4 returns a right-handed perspective projection matrix with
// vertical field of view fovY (radians), the given aspect ratio, and near/far
// clip planes, matching the OpenGL NDC depth range [-1,1].
func PerspectiveMat4(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math.Tan(fovY/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}
}

// LookAtMat4 returns a right-handed view matrix placing the camera at eye,
// looking toward center, with the given up direction.
func LookAtMat4(eye, center, up Vec) Mat4 {
	f := Unit(Sub(center, eye))
	s := Unit(Cross(f, up))
	u := Cross(s, f)
	return Mat4{
		s.X, s.Y, s.Z, -Dot(s, eye),
		u.X, u.Y, u.Z, -Dot(u, eye),
		-f.X, -f.Y, -f.Z, Dot(f, eye),
		0, 0, 0, 1,
	}
}
