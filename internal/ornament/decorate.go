package ornament

import (
	"image/color"
	"math"

	"github.com/iburimskiy/rosette-field/internal/config"
	"github.com/iburimskiy/rosette-field/internal/geom"
)

var white = color.NRGBA{255, 255, 255, 255}

func pickBackground(r Rand) color.NRGBA {
	if chance(r, 0.7) {
		return white
	}
	return color.NRGBA{channel(r, 100, 255), channel(r, 100, 255), channel(r, 100, 255), 255}
}

// makeRings returns 1..RingCountMax rings, outermost first, with radii
// from 0.8r down to 0.1r scaled by 1.3 and strokes from 4 down to 1.
func makeRings(r Rand, radius float64) []Ring {
	n := max(1, int(math.Ceil(r.Float64()*config.RingCountMax)))
	rings := make([]Ring, n)
	for i := range rings {
		rings[i] = Ring{
			Radius: geom.MapRange(float64(i), 0, float64(n-1), radius*0.8, radius*0.1) * 1.3,
			Color:  config.RingPalette[i%len(config.RingPalette)],
			Width:  geom.MapRange(float64(i), 0, float64(n-1), 4, 1),
		}
	}
	return rings
}

// makeParticles lays out layers*perLayer particles on concentric layer
// circles. Every particle of one ornament shares a base color.
func makeParticles(r Rand, center geom.Vec2, radius float64, layers, perLayer int) []Particle {
	if layers < 1 || perLayer < 1 {
		return nil
	}
	col := color.NRGBA{channel(r, 100, 255), channel(r, 100, 255), channel(r, 100, 255), 255}
	particles := make([]Particle, 0, layers*perLayer)
	for layer := 0; layer < layers; layer++ {
		layerRadius := radius / float64(layers) * float64(layer+1)
		baseSize := geom.MapRange(float64(layer), 0, float64(layers-1), 4, 12)
		for i := 0; i < perLayer; i++ {
			angle := 2*math.Pi/float64(perLayer)*float64(i) + between(r, -0.05, 0.05)
			dist := layerRadius + between(r, -2, 0)
			size := baseSize * between(r, 0.8, 1.2)
			p := geom.Polar(center, angle, dist)
			particles = append(particles, newParticle(r, p.X, p.Y, col, size))
		}
	}
	return particles
}

func makeRays(r Rand, radius float64) []Ray {
	rays := make([]Ray, config.RayCount)
	inner := radius * 0.4
	for i := range rays {
		rays[i] = Ray{
			Angle: 2 * math.Pi / config.RayCount * float64(i),
			Inner: inner,
			Outer: inner + radius*0.6,
			Color: color.NRGBA{channel(r, 200, 255), channel(r, 100, 200), 50, 255},
		}
	}
	return rays
}

// updateBorder recomputes the octagon for the current radius. Vertex 0 sits
// at -π/8 and the rest follow at π/4 steps.
func (o *Ornament) updateBorder() {
	step := 2 * math.Pi / config.BorderVertices
	for i := range o.border {
		o.border[i] = geom.Polar(o.center, step*float64(i)-math.Pi/8, o.radius*config.BorderScale)
	}
}

// vinePoints samples a wavy line from start to end: every VineSegment
// pixels, displaced along the edge normal by an envelope-shaped sine.
func vinePoints(start, end geom.Vec2) []geom.Vec2 {
	d := geom.Dist(start, end)
	if d == 0 {
		return []geom.Vec2{start, end}
	}
	steps := max(1, int(d/config.VineSegment))
	perp := geom.Vec2{X: -(end.Y - start.Y) / d, Y: (end.X - start.X) / d}

	pts := make([]geom.Vec2, steps+1)
	for i := range pts {
		t := float64(i) / float64(steps)
		amp := config.VineAmplitude * math.Sin(t*math.Pi)
		wave := amp * math.Sin(t*2*math.Pi*config.VineFrequency)
		pts[i] = geom.LerpVec(start, end, t).Add(perp.Scale(wave))
	}
	return pts
}
