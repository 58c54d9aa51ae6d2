package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Body kinds reported in an ephemeris
const (
	KindStar   = "star"
	KindPlanet = "planet"
	KindMoon   = "moon"
)

// BodyState is the world-space state of one sphere at a given time
type BodyState struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	Parent   string     `json:"parent,omitempty"`
	Position mgl32.Vec3 `json:"position"`
	Radius   float32    `json:"radius"`
}

// orbitFrame places a child at distance on the parent's revolving frame
func orbitFrame(revolve, distance, t float32) mgl32.Mat4 {
	return Rotate(AxisZ, t*revolve).Mul4(Translate(distance, 0, 0))
}

// PlanetModel returns the model matrix of a planet (or the sun) at time t.
// Scale, spin, push out to the orbit, then revolve around the sun.
func PlanetModel(b Body, t float32) mgl32.Mat4 {
	spin := Rotate(AxisZ, t*b.Rotate).Mul4(Scale(b.Radius, b.Radius, b.Radius))
	return orbitFrame(b.Revolve, b.Distance, t).Mul4(spin)
}

// MoonModel returns the model matrix of a moon orbiting parent at time t
func MoonModel(m Moon, parent Body, t float32) mgl32.Mat4 {
	local := PlanetModel(m.Body, t)
	return orbitFrame(parent.Revolve, parent.Distance, t).Mul4(local)
}

// RingModel returns the model matrix of a ring. Rings follow the parent's
// orbit but do not spin.
func RingModel(r Ring, parent Body, t float32) mgl32.Mat4 {
	return orbitFrame(parent.Revolve, parent.Distance, t).Mul4(Scale(r.Scale, r.Scale, r.Scale))
}

// Position extracts the world translation of a model matrix
func Position(model mgl32.Mat4) mgl32.Vec3 {
	return model.Col(3).Vec3()
}

// Ephemeris returns the state of every sphere at time t: the sun, the
// planets in catalog order, then the moons.
func Ephemeris(t float32) []BodyState {
	states := make([]BodyState, 0, len(Planets)+len(Moons))
	for i, p := range Planets {
		kind := KindPlanet
		parent := Planets[Sun].Name
		if i == Sun {
			kind = KindStar
			parent = ""
		}
		states = append(states, BodyState{
			Name:     p.Name,
			Kind:     kind,
			Parent:   parent,
			Position: Position(PlanetModel(p, t)),
			Radius:   p.Radius,
		})
	}
	for _, m := range Moons {
		parent := Planets[m.Parent]
		states = append(states, BodyState{
			Name:     m.Name,
			Kind:     KindMoon,
			Parent:   parent.Name,
			Position: Position(MoonModel(m, parent, t)),
			Radius:   m.Radius,
		})
	}
	return states
}

// Clock turns wall time into simulation time
type Clock struct {
	scale  float64
	now    float64
	paused bool
}

// NewClock creates a clock advancing scale simulation seconds per wall second
func NewClock(scale float64) *Clock {
	return &Clock{scale: scale}
}

// Advance adds dt wall seconds unless paused
func (c *Clock) Advance(dt float64) {
	if c.paused || dt <= 0 {
		return
	}
	c.now += dt * c.scale
}

// Now returns the simulation time in seconds
func (c *Clock) Now() float32 {
	return float32(c.now)
}

// Scale returns the wall-to-simulation multiplier
func (c *Clock) Scale() float64 {
	return c.scale
}

// TogglePause flips the paused state and returns the new state
func (c *Clock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Paused reports whether the clock is stopped
func (c *Clock) Paused() bool {
	return c.paused
}

// Reset rewinds to zero without changing the paused state
func (c *Clock) Reset() {
	c.now = 0
}
