package core

import "github.com/go-gl/mathgl/mgl32"

// Light is a point light in world space
type Light struct {
	Position mgl32.Vec4
	Ambient  mgl32.Vec4
	Diffuse  mgl32.Vec4
	Specular mgl32.Vec4
}

// Material holds the Blinn-Phong coefficients shared by all lit bodies
type Material struct {
	Ambient   mgl32.Vec4
	Diffuse   mgl32.Vec4
	Specular  mgl32.Vec4
	Shininess float32
}

// SunLight sits at the origin inside the sun
func SunLight() Light {
	return Light{
		Position: mgl32.Vec4{0, 0, 0, 1},
		Ambient:  mgl32.Vec4{0.2, 0.2, 0.2, 1},
		Diffuse:  mgl32.Vec4{0.8, 0.8, 0.8, 1},
		Specular: mgl32.Vec4{1, 1, 1, 1},
	}
}

// DefaultMaterial returns the planet surface material
func DefaultMaterial() Material {
	return Material{
		Ambient:   mgl32.Vec4{0.2, 0.2, 0.2, 1},
		Diffuse:   mgl32.Vec4{0.8, 0.8, 0.8, 1},
		Specular:  mgl32.Vec4{1, 1, 1, 1},
		Shininess: 1000,
	}
}
