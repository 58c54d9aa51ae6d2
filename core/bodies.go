package core

// Body describes one sphere of the system.
//
// Rotate and Revolve are angular speeds in radians per simulation second.
// Distance is the orbit radius around the parent (the sun for planets).
type Body struct {
	Name     string
	Radius   float32
	Rotate   float32
	Revolve  float32
	Distance float32
	Texture  int
}

// Moon is a body orbiting one of the planets
type Moon struct {
	Parent int
	Body
}

// Ring is a flat annulus centred on a planet
type Ring struct {
	Parent  int
	Scale   float32
	Texture int
}

// Planet indices into Planets
const (
	Sun = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// MoonTexture is the planet texture slot shared by every moon
const MoonTexture = 9

// Texture counts expected by the renderer
const (
	PlanetTextureCount = 10
	RingTextureCount   = 2
)

// Planets holds the sun and the eight planets. The sun is drawn unlit.
var Planets = [9]Body{
	{"sun", 3.0, 0.10, 0.0, 0.0, 0},
	{"mercury", 0.3, 0.08, 2.0, 5.5, 1},
	{"venus", 0.5, 0.05, 1.3, 8.0, 2},
	{"earth", 1.0, 0.5, 0.9, 10.0, 3},
	{"mars", 0.8, 0.5, 0.4, 13.4, 4},
	{"jupiter", 1.8, 0.8, 0.33, 20.7, 5},
	{"saturn", 1.4, 0.8, 0.25, 31.0, 6},
	{"uranus", 1.1, 0.7, 0.17, 37.1, 7},
	{"neptune", 1.2, 0.6, 0.10, 43.6, 8},
}

// Moons lists every moon with its parent planet
var Moons = [12]Moon{
	{Earth, Body{"moon", 0.25, 0.4, 2.5, 2.2, MoonTexture}},
	{Jupiter, Body{"io", 0.27, 0.7, 5.8, 2.0, MoonTexture}},
	{Jupiter, Body{"europa", 0.22, 0.3, 7.7, 2.3, MoonTexture}},
	{Jupiter, Body{"ganymede", 0.25, 0.9, 8.0, 2.6, MoonTexture}},
	{Jupiter, Body{"callisto", 0.23, 0.6, 6.5, 2.9, MoonTexture}},
	{Uranus, Body{"miranda", 0.15, 0.7, 5.8, 2.0, MoonTexture}},
	{Uranus, Body{"ariel", 0.14, 0.3, 7.7, 2.2, MoonTexture}},
	{Uranus, Body{"umbriel", 0.16, 0.9, 8.0, 2.4, MoonTexture}},
	{Uranus, Body{"titania", 0.13, 0.6, 3.0, 2.6, MoonTexture}},
	{Uranus, Body{"oberon", 0.15, 0.6, 6.5, 2.8, MoonTexture}},
	{Neptune, Body{"triton", 0.12, 0.6, 4.5, 2.5, MoonTexture}},
	{Neptune, Body{"nereid", 0.12, 0.6, 7.0, 3.0, MoonTexture}},
}

// Rings lists the ring meshes. Texture indexes the ring texture slots.
var Rings = [2]Ring{
	{Saturn, 1.9, 0},
	{Uranus, 1.6, 1},
}
