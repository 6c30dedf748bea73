package ornament

import (
	"image/color"

	"github.com/iburimskiy/rosette-field/internal/config"
	"github.com/iburimskiy/rosette-field/internal/geom"
	"github.com/iburimskiy/rosette-field/internal/render"
)

var (
	ringStroke     = color.NRGBA{255, 255, 255, config.RingStrokeAlpha}
	pearlHighlight = color.NRGBA{255, 255, 255, config.PearlHighlightAlpha}
)

// Draw paints the ornament rotated around its own center. The border is
// always drawn last so it sits above the rings.
func (o *Ornament) Draw(c render.Canvas) {
	c.PushRotation(o.rotation, o.center)

	c.FillCircle(o.center, o.radius*config.BackgroundScale, o.background)

	if o.mode == ModeRays {
		for _, ray := range o.rays {
			from := geom.Polar(o.center, ray.Angle, ray.Inner)
			to := geom.Polar(o.center, ray.Angle, ray.Outer)
			c.Line(from, to, config.RayStrokeWidth, ray.Color)
		}
	} else {
		for _, p := range o.particles {
			c.FillCircle(p.Pos, p.Size/2, p.Color)
		}
	}

	for _, ring := range o.rings {
		r := ring.Radius / 2
		c.FillCircle(o.center, r, ring.Color)
		c.StrokeCircle(o.center, r, ring.Width, ringStroke)
	}

	o.drawBorder(c)

	c.Pop()
}

func (o *Ornament) drawBorder(c render.Canvas) {
	n := len(o.border)
	for i := 0; i < n; i++ {
		pts := vinePoints(o.border[i], o.border[(i+1)%n])
		c.Curve(pts, o.vineThickness, o.vineColors[i])
	}

	if o.pearlSize <= 0 {
		return
	}
	offset := o.pearlSize / 4
	for _, v := range o.border {
		c.FillCircle(v, o.pearlSize/2, white)
		c.FillCircle(geom.Vec2{X: v.X - offset, Y: v.Y - offset}, o.pearlSize/6, pearlHighlight)
	}
}
