package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved layout shared by every mesh: position, normal,
// texture coordinate. 8 floats, 32 bytes, no padding.
type Vertex struct {
	Pos  mgl32.Vec3
	Norm mgl32.Vec3
	Tex  mgl32.Vec2
}

// Byte offsets of the vertex attributes
const (
	VertexStride     = 8 * 4
	VertexPosOffset  = 0
	VertexNormOffset = 3 * 4
	VertexTexOffset  = 6 * 4
)

// Mesh is an indexed triangle list
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Sphere tessellation
const (
	SphereLatitudes  = 36
	SphereLongitudes = 72
)

// Ring tessellation
const (
	RingSegments    = 32
	RingInnerRadius = 1.0
	RingOuterRadius = 1.8
)

// SphereMesh builds a UV sphere around the z axis.
//
// Both poles and the seam are duplicated so each vertex carries its own
// texture coordinate. Latitude k runs from the +z pole (k=0) to the -z pole.
func SphereMesh(radius float32) Mesh {
	const (
		lat = SphereLatitudes
		lon = SphereLongitudes
	)
	m := Mesh{
		Vertices: make([]Vertex, 0, lat*lon),
		Indices:  make([]uint32, 0, (lat-1)*lon*6),
	}

	for k := 0; k < lat; k++ {
		theta := math.Pi / float64(lat-1) * float64(k)
		sinT, cosT := math.Sincos(theta)
		for l := 0; l < lon; l++ {
			phi := 2 * math.Pi / float64(lon-1) * float64(l)
			sinP, cosP := math.Sincos(phi)

			n := mgl32.Vec3{float32(sinT * cosP), float32(sinT * sinP), float32(cosT)}
			m.Vertices = append(m.Vertices, Vertex{
				Pos:  n.Mul(radius),
				Norm: n,
				Tex:  mgl32.Vec2{float32(phi / (2 * math.Pi)), float32(1 - theta/math.Pi)},
			})
		}
	}

	for k := uint32(0); k < lat-1; k++ {
		for l := uint32(0); l < lon; l++ {
			a := k*lon + l%lon
			b := (k+1)*lon + l%lon
			c := k*lon + (l+1)%lon
			d := (k+1)*lon + (l+1)%lon
			m.Indices = append(m.Indices, a, b, c, c, b, d)
		}
	}
	return m
}

// RingMesh builds a flat annulus in the xy plane from an inner and an outer
// loop of vertices. The u coordinate selects the inner (0) or outer (1)
// edge of the ring texture.
//
// Normals lean out of the plane (z = 2) so the ring catches some diffuse
// light when seen edge-on.
func RingMesh() Mesh {
	const seg = RingSegments
	m := Mesh{
		Vertices: make([]Vertex, 0, 2*seg),
		Indices:  make([]uint32, 0, seg*6),
	}

	for k := 0; k < 2; k++ {
		radius := float32(RingInnerRadius)
		if k == 1 {
			radius = RingOuterRadius
		}
		for l := 0; l < seg; l++ {
			sinT, cosT := math.Sincos(2 * math.Pi / seg * float64(l))
			c, s := float32(cosT), float32(sinT)
			m.Vertices = append(m.Vertices, Vertex{
				Pos:  mgl32.Vec3{radius * c, radius * s, 0},
				Norm: mgl32.Vec3{radius * c, radius * s, 2},
				Tex:  mgl32.Vec2{float32(k), float32(1 - k)},
			})
		}
	}

	for k := uint32(0); k < seg; k++ {
		next := (k + 1) % seg
		m.Indices = append(m.Indices, k, seg+k, next, next, seg+k, seg+next)
	}
	return m
}
