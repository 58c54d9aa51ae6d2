package overlay

import "testing"

// barWidth returns the width of rect i (0 = background)
func barWidth(v []float32, i int) float32 {
	base := i * 6 * floatsPerVertex
	return v[base+floatsPerVertex] - v[base]
}

func TestBuildBars(t *testing.T) {
	v := BuildBars(Stats{FPS: 60, TimeScale: 1, Distance: 25})

	if len(v) != 4*6*floatsPerVertex {
		t.Fatalf("len = %d", len(v))
	}
	if got := barWidth(v, 0); got != boxW {
		t.Errorf("background width = %v", got)
	}

	tests := []struct {
		name string
		rect int
		want float32
	}{
		{"fps", 1, barMaxW / 2},
		{"time scale", 2, barMaxW / 4},
		{"distance", 3, barMaxW / 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := barWidth(v, tc.rect); got != tc.want {
				t.Errorf("width = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBuildBarsClampsAndPauses(t *testing.T) {
	v := BuildBars(Stats{FPS: 1000, TimeScale: 0.5, Distance: -3, Paused: true})

	if got := barWidth(v, 1); got != barMaxW {
		t.Errorf("fps bar = %v, want full", got)
	}
	// A paused clock shows a full red bar.
	if got := barWidth(v, 2); got != barMaxW {
		t.Errorf("paused bar = %v", got)
	}
	red := v[2*6*floatsPerVertex+2]
	if red != pausedColor[0] {
		t.Errorf("paused colour red = %v", red)
	}
	if got := barWidth(v, 3); got != 0 {
		t.Errorf("negative distance bar = %v", got)
	}
}

func TestBarsStackDownwards(t *testing.T) {
	v := BuildBars(Stats{})
	var last float32
	for i := 1; i <= 3; i++ {
		y := v[i*6*floatsPerVertex+1]
		if y <= last {
			t.Errorf("row %d y = %v not below %v", i, y, last)
		}
		last = y
	}
}
