// Package ornament builds, animates and draws a single rosette: a disc
// with concentric rings, a particle or ray layer and an octagonal
// vine-and-pearl border.
package ornament

import (
	"image/color"

	"github.com/iburimskiy/rosette-field/internal/config"
	"github.com/iburimskiy/rosette-field/internal/geom"
)

// Mode selects the decorative layer drawn between background and rings.
type Mode uint8

const (
	ModeParticles Mode = iota
	ModeRays
)

func (m Mode) String() string {
	if m == ModeRays {
		return "rays"
	}
	return "particles"
}

// Phase is the scale animation state. Rotation is independent of it and
// gated only by hover.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseShrinking
	PhaseExpanding
)

func (p Phase) String() string {
	switch p {
	case PhaseShrinking:
		return "shrinking"
	case PhaseExpanding:
		return "expanding"
	}
	return "idle"
}

// Options are the fixed construction parameters shared by every ornament
// of a field.
type Options struct {
	Radius            float64
	Layers            int
	ParticlesPerLayer int
	VineThickness     float64
	PearlSize         float64
}

// OptionsFrom extracts ornament options from the startup config.
func OptionsFrom(c config.OrnamentConfig) Options {
	return Options{
		Radius:            c.Radius,
		Layers:            c.Layers,
		ParticlesPerLayer: c.ParticlesPerLayer,
		VineThickness:     c.VineThickness,
		PearlSize:         c.PearlSize,
	}
}

// Ring is one concentric circle. Rings are ordered outermost first.
// Radius is the ring's drawn extent; the circle is drawn with half of it.
type Ring struct {
	Radius float64
	Color  color.NRGBA
	Width  float64
}

// Ray is one radial spoke, drawn in ray mode.
type Ray struct {
	Angle        float64
	Inner, Outer float64
	Color        color.NRGBA
}

// Ornament is one rosette of the field. It owns all of its state; nothing
// outside the package mutates it except through Update, Hover and Click.
type Ornament struct {
	center         geom.Vec2
	radius         float64
	originalRadius float64
	targetRadius   float64

	background color.NRGBA
	mode       Mode
	rings      []Ring
	particles  []Particle
	rays       []Ray

	border        [config.BorderVertices]geom.Vec2
	vineColors    [config.BorderVertices]color.NRGBA
	vineThickness float64
	pearlSize     float64

	rotation      float64
	rotationSpeed float64
	hovered       bool
	phase         Phase
}

// New builds an ornament centered at center. All random choices are drawn
// from r, in a fixed order, so a seeded source reproduces the decoration.
func New(center geom.Vec2, opts Options, r Rand) *Ornament {
	o := &Ornament{
		center:         center,
		radius:         opts.Radius,
		originalRadius: opts.Radius,
		targetRadius:   opts.Radius,
		vineThickness:  opts.VineThickness,
		pearlSize:      opts.PearlSize,
	}

	o.background = pickBackground(r)
	o.mode = ModeRays
	if chance(r, 0.8) {
		o.mode = ModeParticles
	}
	o.rings = makeRings(r, opts.Radius)
	o.particles = makeParticles(r, center, opts.Radius, opts.Layers, opts.ParticlesPerLayer)
	o.rays = makeRays(r, opts.Radius)
	for i := range o.vineColors {
		o.vineColors[i] = color.NRGBA{channel(r, 100, 255), channel(r, 100, 200), channel(r, 100, 200), 255}
	}
	o.rotationSpeed = between(r, config.MinRotation, config.MaxRotation)

	o.updateBorder()
	return o
}

// Accessors for the controller, the host and tests.

func (o *Ornament) Center() geom.Vec2 { return o.center }
func (o *Ornament) Radius() float64 { return o.radius }
func (o *Ornament) OriginalRadius() float64 { return o.originalRadius }
func (o *Ornament) TargetRadius() float64 { return o.targetRadius }
func (o *Ornament) Background() color.NRGBA { return o.background }
func (o *Ornament) Mode() Mode { return o.mode }
func (o *Ornament) Rings() []Ring { return o.rings }
func (o *Ornament) Particles() []Particle { return o.particles }
func (o *Ornament) Rays() []Ray { return o.rays }
func (o *Ornament) Rotation() float64 { return o.rotation }
func (o *Ornament) RotationSpeed() float64 { return o.rotationSpeed }
func (o *Ornament) Hovered() bool { return o.hovered }
func (o *Ornament) Phase() Phase { return o.phase }
func (o *Ornament) Animating() bool { return o.phase != PhaseIdle }
func (o *Ornament) Border() [config.BorderVertices]geom.Vec2 { return o.border }
