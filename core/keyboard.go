package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is one of the four movement keys
type Direction int

const (
	Forward Direction = iota // W
	Left                     // A
	Back                     // S
	Right                    // D
)

// MovementKeys tracks which WASD keys are held
type MovementKeys struct {
	pressed [4]bool
}

// Set records a press or release
func (k *MovementKeys) Set(d Direction, pressed bool) {
	if d < Forward || d > Right {
		return
	}
	k.pressed[d] = pressed
}

// Pressed reports whether d is held
func (k *MovementKeys) Pressed(d Direction) bool {
	if d < Forward || d > Right {
		return false
	}
	return k.pressed[d]
}

// Any reports whether any movement key is held
func (k *MovementKeys) Any() bool {
	for _, p := range k.pressed {
		if p {
			return true
		}
	}
	return false
}

// Clear releases every key, e.g. when the window loses focus
func (k *MovementKeys) Clear() {
	k.pressed = [4]bool{}
}

// FacingAngle returns the walking direction in degrees counter-clockwise
// from the view direction. Opposite keys cancel each other.
func (k *MovementKeys) FacingAngle() float32 {
	lr := axis(k.pressed[Left], k.pressed[Right])
	fb := axis(k.pressed[Forward], k.pressed[Back])

	switch {
	case lr == 0 && fb == 1:
		return 0
	case lr == 1 && fb == 1:
		return 45
	case lr == 1 && fb == 0:
		return 90
	case lr == 1 && fb == -1:
		return 135
	case lr == 0 && fb == -1:
		return 180
	case lr == -1 && fb == -1:
		return 225
	case lr == -1 && fb == 0:
		return 270
	case lr == -1 && fb == 1:
		return 315
	}
	return 0
}

func axis(pos, neg bool) int {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}

// Displacement returns the per-frame movement for a camera at eye looking
// at at. Movement stays in the xz plane.
func (k *MovementKeys) Displacement(eye, at mgl32.Vec3, scale float32) mgl32.Vec3 {
	view := at.Sub(eye)
	if view.Len() == 0 {
		return mgl32.Vec3{}
	}
	n := view.Normalize()

	rad := float64(-DegToRad(k.FacingAngle()))
	s, c := math.Sincos(rad)
	return mgl32.Vec3{
		float32(c)*n[0] - float32(s)*n[2],
		0,
		float32(s)*n[0] + float32(c)*n[2],
	}.Mul(scale)
}
