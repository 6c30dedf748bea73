// Package render defines the drawing surface ornaments paint on and its
// Ebitengine-backed implementation.
package render

import (
	"image/color"

	"github.com/iburimskiy/rosette-field/internal/geom"
)

// Canvas is the set of primitives an ornament needs. Coordinates are in
// viewport space and pass through the current transform.
type Canvas interface {
	FillCircle(center geom.Vec2, radius float64, clr color.Color)
	StrokeCircle(center geom.Vec2, radius, width float64, clr color.Color)
	Line(from, to geom.Vec2, width float64, clr color.Color)
	// Curve draws a smooth open curve passing through every point.
	Curve(points []geom.Vec2, width float64, clr color.Color)

	// PushRotation saves the current transform and rotates subsequent
	// drawing by angle radians around pivot.
	PushRotation(angle float64, pivot geom.Vec2)
	// Pop restores the transform saved by the matching PushRotation.
	Pop()
}

// Faded wraps c so every color's alpha is multiplied by alpha.
// An alpha of 1 or more returns c unchanged.
func Faded(c Canvas, alpha float64) Canvas {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return &fadedCanvas{Canvas: c, alpha: alpha}
}

type fadedCanvas struct {
	Canvas
	alpha float64
}

func (f *fadedCanvas) scale(clr color.Color) color.Color {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	n.A = uint8(float64(n.A) * f.alpha)
	return n
}

func (f *fadedCanvas) FillCircle(center geom.Vec2, radius float64, clr color.Color) {
	f.Canvas.FillCircle(center, radius, f.scale(clr))
}

func (f *fadedCanvas) StrokeCircle(center geom.Vec2, radius, width float64, clr color.Color) {
	f.Canvas.StrokeCircle(center, radius, width, f.scale(clr))
}

func (f *fadedCanvas) Line(from, to geom.Vec2, width float64, clr color.Color) {
	f.Canvas.Line(from, to, width, f.scale(clr))
}

func (f *fadedCanvas) Curve(points []geom.Vec2, width float64, clr color.Color) {
	f.Canvas.Curve(points, width, f.scale(clr))
}
