package ornament

import (
	"image/color"

	"github.com/iburimskiy/rosette-field/internal/geom"
)

const particleJitter = 0.5

// Particle is a static decorative dot. Size is its diameter.
type Particle struct {
	Pos   geom.Vec2
	Color color.NRGBA
	Size  float64
}

func newParticle(r Rand, x, y float64, col color.NRGBA, size float64) Particle {
	return Particle{
		Pos: geom.Vec2{
			X: x + between(r, -particleJitter, particleJitter),
			Y: y + between(r, -particleJitter, particleJitter),
		},
		Color: col,
		Size:  size,
	}
}
