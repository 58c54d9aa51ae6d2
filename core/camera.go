package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a first-person camera. Angles holds the view direction as
// spherical angles in degrees: X is the polar angle measured from -y
// (90 = level), Y is the azimuth around y (180 = looking down -z).
type Camera struct {
	Eye mgl32.Vec3
	At  mgl32.Vec3
	Up  mgl32.Vec3

	Fovy   float32 // radians
	Aspect float32
	Near   float32
	Far    float32

	Angles mgl32.Vec2
}

// Polar angle limits in degrees
const (
	MinPolarAngle = 1.0
	MaxPolarAngle = 179.0
)

// NewCamera returns a camera in its default pose for a w x h viewport
func NewCamera(width, height int) *Camera {
	c := &Camera{}
	c.Reset()
	c.SetViewport(width, height)
	return c
}

// Reset restores the default position and orientation. The aspect ratio is
// kept since it belongs to the window.
func (c *Camera) Reset() {
	aspect := c.Aspect
	*c = Camera{
		Eye:    mgl32.Vec3{0, 0, 10},
		At:     mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Fovy:   math.Pi / 4,
		Aspect: aspect,
		Near:   1,
		Far:    1000,
		Angles: mgl32.Vec2{90, 180},
	}
}

// SetViewport updates the aspect ratio. A zero height (minimised window)
// keeps the previous value.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		if c.Aspect == 0 {
			c.Aspect = 1
		}
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl32.Mat4 {
	return LookAt(c.Eye, c.At, c.Up)
}

// Projection returns the camera-to-clip matrix
func (c *Camera) Projection() mgl32.Mat4 {
	return Perspective(c.Fovy, c.Aspect, c.Near, c.Far)
}

// Translate moves eye and target together
func (c *Camera) Translate(d mgl32.Vec3) {
	c.Eye = c.Eye.Add(d)
	c.At = c.At.Add(d)
}

// Direction returns the unit view direction for the current angles
func (c *Camera) Direction() mgl32.Vec3 {
	return SphericalDirection(c.Angles[0], c.Angles[1])
}

// ApplyFirstPerson turns the camera by the cursor offset from the window
// centre. sensitivity is in degrees per pixel. It reports whether the
// cursor had moved at all.
func (c *Camera) ApplyFirstPerson(width, height int, x, y float64, sensitivity float32) bool {
	dx := int(x) - width/2
	dy := int(y) - height/2
	if dx == 0 && dy == 0 {
		return false
	}

	c.Angles[0] = Clamp(c.Angles[0]-float32(dy)*sensitivity, MinPolarAngle, MaxPolarAngle)
	c.Angles[1] = WrapDegrees(c.Angles[1] - float32(dx)*sensitivity)

	c.At = c.Eye.Add(c.Direction())
	return true
}

// SphericalDirection converts a polar angle (from -y) and an azimuth, both
// in degrees, to a unit vector
func SphericalDirection(polar, azimuth float32) mgl32.Vec3 {
	st, ct := math.Sincos(float64(DegToRad(polar)))
	sa, ca := math.Sincos(float64(DegToRad(azimuth)))
	return mgl32.Vec3{float32(st * sa), float32(-ct), float32(st * ca)}
}

// WrapDegrees maps an angle into [0, 360)
func WrapDegrees(deg float32) float32 {
	deg = float32(math.Mod(float64(deg), 360))
	if deg < 0 {
		deg += 360
	}
	return deg
}
