package anim

import math "github.com/chewxy/math32"

func sincos(angleRadians float32) (s, c float32) {
	return math.Sincos(angleRadians)
}
