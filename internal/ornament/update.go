package ornament

import (
	"math"

	"github.com/iburimskiy/rosette-field/internal/config"
	"github.com/iburimskiy/rosette-field/internal/geom"
)

// Update advances one frame: rotation while hovered, then one easing step
// of the scale animation if one is running.
func (o *Ornament) Update() {
	if o.hovered {
		o.rotation += o.rotationSpeed
	}

	if o.phase == PhaseIdle {
		return
	}

	o.radius = geom.Lerp(o.radius, o.targetRadius, config.AnimationSpeed)
	switch o.phase {
	case PhaseShrinking:
		if math.Abs(o.radius-o.targetRadius) < config.SnapThreshold {
			o.phase = PhaseExpanding
			o.targetRadius = o.originalRadius
		}
	case PhaseExpanding:
		if math.Abs(o.radius-o.originalRadius) < config.SnapThreshold {
			o.radius = o.originalRadius
			o.phase = PhaseIdle
		}
	}

	o.updateBorder()
}

// Contains reports whether (x, y) is strictly inside the current radius.
func (o *Ornament) Contains(x, y float64) bool {
	return geom.Dist(geom.Vec2{X: x, Y: y}, o.center) < o.radius
}

// Hover enables rotation when (x, y) is inside the ornament and disables
// it otherwise.
func (o *Ornament) Hover(x, y float64) {
	o.hovered = o.Contains(x, y)
}

// Click starts a shrink-expand cycle. It reports false, changing nothing,
// while a cycle is already running.
func (o *Ornament) Click() bool {
	if o.phase != PhaseIdle {
		return false
	}
	o.phase = PhaseShrinking
	o.targetRadius = o.originalRadius * config.ShrinkFactor
	return true
}
