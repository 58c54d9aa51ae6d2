package core

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Matrices are mgl32 column-major values. They go to GL with transpose=false.

// AxisZ is the ecliptic normal every body spins and orbits around
var AxisZ = mgl32.Vec3{0, 0, 1}

// Translate builds a translation matrix
func Translate(x, y, z float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, z)
}

// Scale builds a non-uniform scale matrix
func Scale(x, y, z float32) mgl32.Mat4 {
	return mgl32.Scale3D(x, y, z)
}

// Rotate builds a right-handed rotation of angle radians about axis.
// The axis is normalized first so callers may pass any non-zero vector.
func Rotate(axis mgl32.Vec3, angle float32) mgl32.Mat4 {
	if axis.Len() == 0 {
		return mgl32.Ident4()
	}
	return mgl32.HomogRotate3D(angle, axis.Normalize())
}

// LookAt builds a view matrix with the camera at eye looking towards at.
//
// The camera frame is n = eye-at, u = up x n, v = n x u, so the view looks
// down -n with v as the screen-space up.
func LookAt(eye, at, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, at, up)
}

// Perspective builds an OpenGL clip-space projection. fovy is in radians.
func Perspective(fovy, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fovy, aspect, near, far)
}

// Determinant3 returns the determinant of a 3x3 matrix
func Determinant3(m mgl32.Mat3) float32 {
	return m.Det()
}

// Determinant4 returns the determinant of a 4x4 matrix
func Determinant4(m mgl32.Mat4) float32 {
	return m.Det()
}

// Inverse3 inverts a 3x3 matrix. A singular input logs a warning and
// yields the zero matrix.
func Inverse3(m mgl32.Mat3) mgl32.Mat3 {
	det := m.Det()
	if det != 0 {
		// Inv gives up on |det| below ~1e-20, so invert a copy scaled to
		// unit determinant and scale the result back.
		k := float32(math.Pow(math.Abs(float64(det)), -1.0/3))
		if inv := m.Mul(k).Inv(); inv != (mgl32.Mat3{}) {
			return inv.Mul(k)
		}
	}
	log.Printf("warning: 3x3 inverse of singular matrix")
	return mgl32.Mat3{}
}

// Inverse4 inverts a 4x4 matrix. A singular input logs a warning and
// yields the zero matrix.
func Inverse4(m mgl32.Mat4) mgl32.Mat4 {
	det := m.Det()
	if det != 0 {
		k := float32(math.Pow(math.Abs(float64(det)), -1.0/4))
		if inv := m.Mul(k).Inv(); inv != (mgl32.Mat4{}) {
			return inv.Mul(k)
		}
	}
	log.Printf("warning: 4x4 inverse of singular matrix")
	return mgl32.Mat4{}
}

// DegToRad converts degrees to radians
func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float32) float32 {
	return rad * 180 / math.Pi
}

// MipLevels returns the length of a full mip chain for a w x h image
func MipLevels(width, height int) int {
	s := width
	if height > s {
		s = height
	}
	levels := 0
	for s > 0 {
		s >>= 1
		levels++
	}
	return levels
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return mgl32.Clamp(v, lo, hi)
}

// Saturate clamps v to [0, 1]
func Saturate(v float32) float32 {
	return mgl32.Clamp(v, 0, 1)
}

// Smoothstep is the C1-continuous Hermite ramp on [0, 1]
func Smoothstep(t float32) float32 {
	t = Saturate(t)
	return t * t * (3 - 2*t)
}
