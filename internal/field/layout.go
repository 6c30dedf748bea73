// Package field places ornaments on a tilted brick grid that covers the
// viewport and builds the ornament collection from those positions.
package field

import (
	"math"

	"github.com/iburimskiy/rosette-field/internal/config"
	"github.com/iburimskiy/rosette-field/internal/geom"
)

// MinStep is the smallest grid step used for placement. Flat or vertical
// tilts produce a zero step on one axis; clamping keeps the loops bounded.
const MinStep = 1.0

// Params are the layout inputs. RowPitch compresses rows relative to the
// tilt's vertical step; the overscan counts add columns and rows beyond the
// computed cover to absorb the tilt's skew.
type Params struct {
	AngleDeg    float64
	Spacing     float64
	Radius      float64
	RowPitch    float64
	ColOverscan int
	RowOverscan int
}

// ParamsFrom extracts layout parameters from the startup config.
func ParamsFrom(cfg *config.Config) Params {
	return Params{
		AngleDeg:    cfg.Layout.Angle,
		Spacing:     cfg.Layout.Spacing,
		Radius:      cfg.Ornament.Radius,
		RowPitch:    cfg.Layout.RowPitch,
		ColOverscan: cfg.Layout.ColOverscan,
		RowOverscan: cfg.Layout.RowOverscan,
	}
}

// Steps returns the grid cell projected along the tilt, each axis clamped
// to MinStep.
func (p Params) Steps() (xStep, yStep float64) {
	a := geom.Radians(p.AngleDeg)
	return clampStep(p.Spacing * math.Cos(a)), clampStep(p.Spacing * math.Sin(a))
}

func clampStep(s float64) float64 {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < MinStep {
		return MinStep
	}
	return s
}

// cover is how many steps span extent, at least one.
func cover(extent int, step float64) int {
	return max(1, int(math.Ceil(float64(extent)/step)))
}

// Positions returns ornament centers in row-major order. Rows start at
// (-r, -r); odd rows shift right by half a column. Only centers within r of
// the viewport are kept. The result depends only on its arguments.
func Positions(width, height int, p Params) []geom.Vec2 {
	xStep, yStep := p.Steps()
	cols := cover(width, xStep) + max(0, p.ColOverscan)
	rows := cover(height, yStep) + max(0, p.RowOverscan)
	pitch := yStep * p.RowPitch
	if !(pitch > 0) {
		pitch = yStep
	}

	r := p.Radius
	w, h := float64(width), float64(height)
	start := geom.Vec2{X: -r, Y: -r}

	var out []geom.Vec2
	for row := 0; row < rows; row++ {
		offsetX := float64(row%2) * (xStep / 2)
		y := start.Y + float64(row)*pitch
		if y > h+r {
			break
		}
		for col := 0; col < cols; col++ {
			x := start.X + float64(col)*xStep + offsetX
			if x >= -r && x <= w+r && y >= -r && y <= h+r {
				out = append(out, geom.Vec2{X: x, Y: y})
			}
		}
	}
	return out
}
