package grid

import "testing"

type fixedMetrics struct {
	width int
}

func (f fixedMetrics) GridWidthPx() int { return f.width }

func TestProvider_Geometry(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		columns  int
		gutter   int
		wantCol  int
		measured bool
	}{
		{"unmeasured viewport", 0, 7, 40, 0, false},
		{"narrower than gutter", 30, 7, 40, 0, false},
		{"week view", 740, 7, 40, 100, true},
		{"day view", 740, 1, 40, 700, true},
		{"rounds down", 745, 7, 40, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProvider(fixedMetrics{width: tt.width}, tt.columns, tt.gutter)
			geom := p.Geometry()
			if geom.DayColumnWidthPx != tt.wantCol {
				t.Errorf("DayColumnWidthPx = %d, want %d", geom.DayColumnWidthPx, tt.wantCol)
			}
			if geom.Measured() != tt.measured {
				t.Errorf("Measured() = %v, want %v", geom.Measured(), tt.measured)
			}
		})
	}
}

func TestProvider_NilMetrics(t *testing.T) {
	p := NewProvider(nil, 7, 40)
	if p.Geometry().Measured() {
		t.Error("geometry with nil metrics should be unmeasured")
	}
}

func TestSnapMinutes_RoundTripQuantumStability(t *testing.T) {
	// For every minute of the day, converting to pixels and back then
	// snapping must land on the same quantum as snapping directly.
	for m := 0; m < MinutesPerDay; m++ {
		roundTripped := SnapMinutes(PixelsToMinutes(MinutesToPixels(m)), 0)
		direct := SnapMinutes(m, 0)
		if roundTripped != direct {
			t.Fatalf("minute %d: round trip snapped to %d, direct snap %d", m, roundTripped, direct)
		}
		if roundTripped%SnapQuantum != 0 {
			t.Fatalf("minute %d: snapped value %d not on quantum", m, roundTripped)
		}
	}
}

func TestSnapMinutes_ClampsToDuration(t *testing.T) {
	tests := []struct {
		name     string
		mins     int
		duration int
		want     int
	}{
		{"negative clamps to zero", -30, 60, 0},
		{"snaps to nearest quantum", 37, 60, 45},
		{"snaps down", 36, 60, 30},
		{"end of day clamps", 1430, 60, 1380},
		{"beyond day clamps", 9999, 60, 1380},
		{"exact fit", 1380, 60, 1380},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SnapMinutes(tt.mins, tt.duration)
			if got != tt.want {
				t.Errorf("SnapMinutes(%d, %d) = %d, want %d", tt.mins, tt.duration, got, tt.want)
			}
		})
	}
}

func TestSnapDelta_PreservesSign(t *testing.T) {
	tests := []struct {
		mins int
		want int
	}{
		{0, 0},
		{7, 0},
		{8, 15},
		{-8, -15},
		{-37, -45},
		{30, 30},
	}

	for _, tt := range tests {
		if got := SnapDelta(tt.mins); got != tt.want {
			t.Errorf("SnapDelta(%d) = %d, want %d", tt.mins, got, tt.want)
		}
	}
}

func TestGeometry_DayIndexFromX(t *testing.T) {
	geom := Geometry{DayColumnWidthPx: 100, GutterWidthPx: 40, Columns: 7}

	tests := []struct {
		name string
		x    float64
		want int
	}{
		{"far left of gutter", -5000, 0},
		{"inside gutter", 10, 0},
		{"first column", 50, 0},
		{"second column", 150, 1},
		{"third column boundary", 240, 2},
		{"last column", 690, 6},
		{"far right", 100000, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := geom.DayIndexFromX(tt.x); got != tt.want {
				t.Errorf("DayIndexFromX(%v) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestGeometry_DayIndexFromX_Monotonic(t *testing.T) {
	geom := Geometry{DayColumnWidthPx: 97, GutterWidthPx: 33, Columns: 7}

	prev := 0
	for x := -500; x < 2000; x++ {
		got := geom.DayIndexFromX(float64(x))
		if got < 0 || got > 6 {
			t.Fatalf("DayIndexFromX(%d) = %d out of range", x, got)
		}
		if got < prev {
			t.Fatalf("DayIndexFromX not non-decreasing at x=%d: %d < %d", x, got, prev)
		}
		prev = got
	}
}

func TestGeometry_Unmeasured(t *testing.T) {
	geom := Geometry{}
	if geom.Measured() {
		t.Error("zero geometry should be unmeasured")
	}
	if got := geom.DayIndexFromX(500); got != 0 {
		t.Errorf("unmeasured DayIndexFromX = %d, want 0", got)
	}
}
