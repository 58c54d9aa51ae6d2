package core

import (
	"bytes"
	"log"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func nearVec3(a, b mgl32.Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func TestRotateAboutZ(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
		in    mgl32.Vec3
		want  mgl32.Vec3
	}{
		{"quarter turn", math.Pi / 2, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{"half turn", math.Pi, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{-1, 0, 0}},
		{"axis is fixed", 1.234, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, 2}},
		{"negative angle", -math.Pi / 2, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Rotate(AxisZ, tc.angle).Mul4x1(tc.in.Vec4(1)).Vec3()
			if !nearVec3(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRotateNormalizesAxis(t *testing.T) {
	a := Rotate(mgl32.Vec3{0, 0, 5}, 0.7)
	b := Rotate(AxisZ, 0.7)
	if !a.ApproxEqualThreshold(b, epsilon) {
		t.Errorf("scaled axis gave %v, want %v", a, b)
	}
	if !Rotate(mgl32.Vec3{}, 1).ApproxEqual(mgl32.Ident4()) {
		t.Error("zero axis should give identity")
	}
}

func TestLookAtFrame(t *testing.T) {
	view := LookAt(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	// The target lands on the -z axis at the eye distance.
	target := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !nearVec3(target, mgl32.Vec3{0, 0, -10}) {
		t.Errorf("target in view space = %v", target)
	}

	// Rows are u, v, n of the camera frame.
	eye := mgl32.Vec3{3, 4, 5}
	at := mgl32.Vec3{1, 0, -2}
	up := mgl32.Vec3{0, 1, 0}
	n := eye.Sub(at).Normalize()
	u := up.Cross(n).Normalize()
	v := n.Cross(u)
	m := LookAt(eye, at, up)
	for i, row := range []mgl32.Vec3{u, v, n} {
		got := mgl32.Vec3{m.At(i, 0), m.At(i, 1), m.At(i, 2)}
		if !nearVec3(got, row) {
			t.Errorf("row %d = %v, want %v", i, got, row)
		}
		if !near(m.At(i, 3), -row.Dot(eye)) {
			t.Errorf("row %d translation = %v, want %v", i, m.At(i, 3), -row.Dot(eye))
		}
	}
}

func TestPerspectiveElements(t *testing.T) {
	fovy := float32(math.Pi / 4)
	aspect := float32(16.0 / 9.0)
	n, f := float32(1), float32(1000)
	p := Perspective(fovy, aspect, n, f)

	cot := float32(1 / math.Tan(float64(fovy)/2))
	checks := []struct {
		row, col int
		want     float32
	}{
		{0, 0, cot / aspect},
		{1, 1, cot},
		{2, 2, (n + f) / (n - f)},
		{2, 3, 2 * n * f / (n - f)},
		{3, 2, -1},
		{3, 3, 0},
		{0, 1, 0},
	}
	for _, c := range checks {
		if !near(p.At(c.row, c.col), c.want) {
			t.Errorf("p[%d][%d] = %v, want %v", c.row, c.col, p.At(c.row, c.col), c.want)
		}
	}
}

func TestInverse4(t *testing.T) {
	tests := []struct {
		name string
		m    mgl32.Mat4
		det  float32
	}{
		{"affine", Translate(1, 2, 3).Mul4(Rotate(mgl32.Vec3{1, 1, 0}, 0.6)).Mul4(Scale(2, 3, 4)), 24},
		{"tiny determinant", Scale(1e-7, 1e-7, 1e-7), 1e-21},
		{"huge determinant", Scale(1e6, 1e6, 1e6), 1e18},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv := Inverse4(tc.m)
			if !inv.Mul4(tc.m).ApproxEqualThreshold(mgl32.Ident4(), epsilon) {
				t.Errorf("inv*m = %v", inv.Mul4(tc.m))
			}
			if d := Determinant4(tc.m); math.Abs(float64(d-tc.det)) > 1e-4*math.Abs(float64(tc.det)) {
				t.Errorf("det = %v, want %v", d, tc.det)
			}
		})
	}
}

func TestInverse3TinyDeterminant(t *testing.T) {
	m := Scale(1e-8, 1e-8, 1e-8).Mat3()
	if !Inverse3(m).Mul3(m).ApproxEqualThreshold(mgl32.Ident3(), epsilon) {
		t.Errorf("inv*m = %v", Inverse3(m).Mul3(m))
	}
}

func TestInverseSingular(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	m := Scale(1, 0, 1)
	if d := Determinant4(m); d != 0 {
		t.Fatalf("det = %v, want 0", d)
	}
	if got := Inverse4(m); got != (mgl32.Mat4{}) {
		t.Errorf("singular inverse = %v", got)
	}
	if !strings.Contains(buf.String(), "warning: 4x4 inverse of singular matrix") {
		t.Errorf("missing 4x4 warning, log = %q", buf.String())
	}

	buf.Reset()
	if got := Inverse3(m.Mat3()); got != (mgl32.Mat3{}) {
		t.Errorf("singular 3x3 inverse = %v", got)
	}
	if !strings.Contains(buf.String(), "warning: 3x3 inverse of singular matrix") {
		t.Errorf("missing 3x3 warning, log = %q", buf.String())
	}
}

func TestInverseNoWarningWhenInvertible(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	Inverse4(Scale(1e-7, 1e-7, 1e-7))
	Inverse3(Scale(2, 3, 4).Mat3())
	if buf.Len() != 0 {
		t.Errorf("unexpected log output %q", buf.String())
	}
}

func TestInverse3(t *testing.T) {
	m := mgl32.Mat3{2, 0, 1, 1, 3, 0, 0, 1, 4}
	if !Inverse3(m).Mul3(m).ApproxEqualThreshold(mgl32.Ident3(), epsilon) {
		t.Error("inv*m is not identity")
	}
	if !near(Determinant3(m), m.Det()) {
		t.Errorf("det = %v", Determinant3(m))
	}
}

func TestMipLevels(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 1, 2},
		{1024, 576, 11},
		{1023, 10, 10},
		{3, 4096, 13},
	}
	for _, tc := range tests {
		if got := MipLevels(tc.w, tc.h); got != tc.want {
			t.Errorf("MipLevels(%d, %d) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestScalarHelpers(t *testing.T) {
	if !near(DegToRad(180), math.Pi) {
		t.Errorf("DegToRad(180) = %v", DegToRad(180))
	}
	if !near(RadToDeg(math.Pi/2), 90) {
		t.Errorf("RadToDeg(pi/2) = %v", RadToDeg(math.Pi/2))
	}
	if Saturate(-1) != 0 || Saturate(2) != 1 || Saturate(0.25) != 0.25 {
		t.Error("Saturate out of range")
	}
	if Smoothstep(0) != 0 || Smoothstep(1) != 1 || !near(Smoothstep(0.5), 0.5) {
		t.Error("Smoothstep endpoints")
	}
}
