package field

import (
	"math"
	"slices"
	"testing"

	"github.com/iburimskiy/rosette-field/internal/config"
	"github.com/iburimskiy/rosette-field/internal/geom"
	"github.com/iburimskiy/rosette-field/internal/ornament"
)

func defaultParams() Params {
	return ParamsFrom(config.Default())
}

func withLayout(angle, spacing, radius float64) Params {
	p := defaultParams()
	p.AngleDeg = angle
	p.Spacing = spacing
	p.Radius = radius
	return p
}

func TestPositionsDefault(t *testing.T) {
	pos := Positions(800, 600, defaultParams())
	if len(pos) != 24 {
		t.Fatalf("positions = %d, want 24", len(pos))
	}
	if pos[0] != (geom.Vec2{X: -100, Y: -100}) {
		t.Errorf("first position = %v, want {-100 -100}", pos[0])
	}

	xStep, yStep := defaultParams().Steps()
	// second row is shifted by half a column and one row pitch down
	row1 := pos[3]
	if math.Abs(row1.X-(-100+xStep/2)) > 1e-9 || math.Abs(row1.Y-(-100+yStep*2.3)) > 1e-9 {
		t.Errorf("row 1 start = %v", row1)
	}
}

func TestPositionsDeterministic(t *testing.T) {
	p := withLayout(13, 250, 70)
	a := Positions(1024, 768, p)
	b := Positions(1024, 768, p)
	if !slices.Equal(a, b) {
		t.Fatal("same inputs produced different layouts")
	}
}

func TestPositionsRowMajorWithinMargin(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		params Params
	}{
		{"default", 800, 600, defaultParams()},
		{"wide", 1920, 400, withLayout(7, 400, 100)},
		{"steep", 500, 900, withLayout(40, 180, 60)},
		{"tiny", 1, 1, withLayout(7, 400, 100)},
		{"empty", 0, 0, withLayout(7, 400, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := Positions(tt.w, tt.h, tt.params)
			r := tt.params.Radius
			for i, c := range pos {
				if c.X < -r || c.X > float64(tt.w)+r || c.Y < -r || c.Y > float64(tt.h)+r {
					t.Errorf("position %d %v outside margin", i, c)
				}
				if i > 0 && c.Y < pos[i-1].Y {
					t.Errorf("position %d breaks row-major order", i)
				}
			}
		})
	}
}

// Dense enough lattices leave no viewport point farther than one radius
// from a center.
func TestPositionsCoverViewport(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		params Params
	}{
		{"800x600 spacing 200", 800, 600, withLayout(7, 200, 100)},
		{"800x600 spacing 150 angle 5", 800, 600, withLayout(5, 150, 100)},
		{"640x480 radius 80", 640, 480, withLayout(10, 150, 80)},
		{"1024x640", 1024, 640, withLayout(7, 200, 100)},
		{"300x200", 300, 200, withLayout(7, 200, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := Positions(tt.w, tt.h, tt.params)
			for x := 0; x <= tt.w; x += 10 {
				for y := 0; y <= tt.h; y += 10 {
					p := geom.Vec2{X: float64(x), Y: float64(y)}
					if !coveredWithin(pos, p, tt.params.Radius) {
						t.Fatalf("point %v is farther than %v from every center", p, tt.params.Radius)
					}
				}
			}
		})
	}
}

func coveredWithin(centers []geom.Vec2, p geom.Vec2, r float64) bool {
	for _, c := range centers {
		if geom.Dist(c, p) <= r {
			return true
		}
	}
	return false
}

func TestPositionsDegenerateStepsStayBounded(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"flat", withLayout(0, 100, 10)},
		{"vertical", withLayout(90, 100, 10)},
		{"zero spacing", withLayout(7, 0, 10)},
		{"negative spacing", withLayout(7, -50, 10)},
		{"nan spacing", withLayout(7, math.NaN(), 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xStep, yStep := tt.params.Steps()
			if xStep < MinStep || yStep < MinStep {
				t.Fatalf("steps %v, %v below MinStep", xStep, yStep)
			}
			pos := Positions(50, 50, tt.params)
			if len(pos) == 0 {
				t.Fatal("degenerate layout produced no positions")
			}
			// one candidate per pixel step at most
			if limit := (50 + 2*10 + 1) * (50 + 2*10 + 1); len(pos) > limit {
				t.Fatalf("positions = %d, exceeds %d", len(pos), limit)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	cfg := config.Default()
	opts := ornament.OptionsFrom(cfg.Ornament)
	f := Build(800, 600, ParamsFrom(cfg), opts, ornament.NewRand(1))

	if f.Len() < 1 {
		t.Fatal("field is empty")
	}
	if w, h := f.Size(); w != 800 || h != 600 {
		t.Errorf("Size = %dx%d", w, h)
	}
	pos := Positions(800, 600, ParamsFrom(cfg))
	for i, o := range f.Ornaments() {
		if got := len(o.Particles()); got != 320 {
			t.Errorf("ornament %d particles = %d, want 320", i, got)
		}
		if o.Center() != pos[i] {
			t.Errorf("ornament %d at %v, want %v", i, o.Center(), pos[i])
		}
	}
	if f.At(0) != f.Ornaments()[0] {
		t.Error("At(0) mismatch")
	}
}

func TestBuildZeroViewport(t *testing.T) {
	cfg := config.Default()
	f := Build(0, 0, ParamsFrom(cfg), ornament.OptionsFrom(cfg.Ornament), ornament.NewRand(1))
	for _, o := range f.Ornaments() {
		c := o.Center()
		if c.X > 100 || c.Y > 100 {
			t.Errorf("zero viewport ornament at %v", c)
		}
	}
}
