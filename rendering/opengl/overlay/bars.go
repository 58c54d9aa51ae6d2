package overlay

import "github.com/go-gl/mathgl/mgl32"

// Stats is what the HUD shows
type Stats struct {
	FPS       float64
	TimeScale float64
	Distance  float32 // camera distance from the sun
	Paused    bool
}

// Full-scale values of each bar
const (
	MaxFPS       = 120.0
	MaxTimeScale = 4.0
	MaxDistance  = 100.0
)

// Layout in pixels from the top-left corner
const (
	boxX      = 10
	boxY      = 10
	boxW      = 240
	boxH      = 80
	barX      = boxX + 20
	barMaxW   = boxW - 40
	barH      = 10
	rowHeight = 22
	firstRowY = boxY + 14
)

// floatsPerVertex is x, y, r, g, b, a
const floatsPerVertex = 6

var (
	backgroundColor = mgl32.Vec4{0.1, 0.1, 0.3, 0.6}
	fpsColor        = mgl32.Vec4{0.0, 1.0, 0.0, 1.0}
	timeColor       = mgl32.Vec4{0.5, 0.5, 1.0, 1.0}
	pausedColor     = mgl32.Vec4{1.0, 0.3, 0.3, 1.0}
	distanceColor   = mgl32.Vec4{1.0, 1.0, 0.0, 1.0}
)

// BuildBars returns the HUD triangles as interleaved x, y, r, g, b, a
// floats in screen pixels with the origin at the top-left
func BuildBars(s Stats) []float32 {
	v := make([]float32, 0, 4*6*floatsPerVertex)
	v = appendRect(v, boxX, boxY, boxW, boxH, backgroundColor)

	tc := timeColor
	scale := s.TimeScale
	if s.Paused {
		tc = pausedColor
		scale = MaxTimeScale
	}

	rows := []struct {
		fill  float32
		color mgl32.Vec4
	}{
		{fraction(s.FPS, MaxFPS), fpsColor},
		{fraction(scale, MaxTimeScale), tc},
		{fraction(float64(s.Distance), MaxDistance), distanceColor},
	}
	for i, r := range rows {
		y := float32(firstRowY + i*rowHeight)
		v = appendRect(v, barX, y, r.fill*barMaxW, barH, r.color)
	}
	return v
}

// fraction maps value onto [0, 1] of full
func fraction(value, full float64) float32 {
	if value <= 0 || full <= 0 {
		return 0
	}
	if value >= full {
		return 1
	}
	return float32(value / full)
}

// appendRect adds two triangles covering (x, y, w, h)
func appendRect(v []float32, x, y, w, h float32, c mgl32.Vec4) []float32 {
	corners := [6][2]float32{
		{x, y}, {x + w, y}, {x, y + h},
		{x + w, y}, {x + w, y + h}, {x, y + h},
	}
	for _, p := range corners {
		v = append(v, p[0], p[1], c[0], c[1], c[2], c[3])
	}
	return v
}
