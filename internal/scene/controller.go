// Package scene owns the live field of ornaments and routes frames and
// pointer events to it.
package scene

import (
	"log"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/rosette-field/internal/config"
	"github.com/iburimskiy/rosette-field/internal/field"
	"github.com/iburimskiy/rosette-field/internal/ornament"
	"github.com/iburimskiy/rosette-field/internal/render"
)

// Settings are the fixed inputs the controller rebuilds fields from.
type Settings struct {
	Layout   field.Params
	Ornament ornament.Options
	// FadeIn is how long a new field takes to fade in, in seconds.
	FadeIn float64
}

// SettingsFrom extracts controller settings from the startup config.
func SettingsFrom(cfg *config.Config) Settings {
	return Settings{
		Layout:   field.ParamsFrom(cfg),
		Ornament: ornament.OptionsFrom(cfg.Ornament),
		FadeIn:   cfg.FadeIn,
	}
}

// Stats is a snapshot of the field for status display.
type Stats struct {
	Ornaments int
	Animating int
	Rotating  int
}

// Controller holds the current field. It only iterates and dispatches;
// ornament state changes happen inside the ornaments.
type Controller struct {
	settings Settings
	rng      ornament.Rand

	field field.Field
	built bool

	fade  *gween.Tween
	alpha float64
}

// New returns a controller with no field. Call Resize with the viewport
// size to build the first one.
func New(settings Settings, rng ornament.Rand) *Controller {
	return &Controller{
		settings: settings,
		rng:      rng,
		alpha:    1,
	}
}

// Resize rebuilds the field for a new viewport size. It reports whether a
// rebuild happened; an unchanged size keeps the current field.
func (c *Controller) Resize(width, height int) bool {
	if c.built {
		if w, h := c.field.Size(); w == width && h == height {
			return false
		}
	}
	c.rebuild(width, height)
	return true
}

// Rebuild discards the field and builds a new one for the same viewport,
// with fresh decoration.
func (c *Controller) Rebuild() {
	w, h := c.field.Size()
	c.rebuild(w, h)
}

func (c *Controller) rebuild(width, height int) {
	start := time.Now()
	c.field = field.Build(width, height, c.settings.Layout, c.settings.Ornament, c.rng)
	c.built = true
	log.Printf("[Scene] Built field %dx%d: %d ornaments in %v",
		width, height, c.field.Len(), time.Since(start).Round(time.Microsecond))

	if c.settings.FadeIn > 0 {
		c.fade = gween.New(0, 1, float32(c.settings.FadeIn), ease.OutQuad)
		c.alpha = 0
	} else {
		c.fade = nil
		c.alpha = 1
	}
}

// Update advances every ornament one frame, in field order, and the
// fade-in by dt seconds.
func (c *Controller) Update(dt float64) {
	for _, o := range c.field.Ornaments() {
		o.Update()
	}

	if c.fade != nil {
		v, done := c.fade.Update(float32(dt))
		c.alpha = float64(v)
		if done {
			c.fade = nil
			c.alpha = 1
		}
	}
}

// Draw renders the field back to front in field order.
func (c *Controller) Draw(canvas render.Canvas) {
	target := render.Faded(canvas, c.alpha)
	for _, o := range c.field.Ornaments() {
		o.Draw(target)
	}
}

// PointerMove updates every ornament's hover state against the pointer.
// Overlapping ornaments may all rotate at once.
func (c *Controller) PointerMove(x, y float64) {
	for _, o := range c.field.Ornaments() {
		o.Hover(x, y)
	}
}

// Click hands the click to the first ornament, in field order, that
// contains the pointer. It returns that ornament (nil if none) and whether
// a new animation started; an ornament already animating ignores it.
func (c *Controller) Click(x, y float64) (*ornament.Ornament, bool) {
	for _, o := range c.field.Ornaments() {
		if o.Contains(x, y) {
			return o, o.Click()
		}
	}
	return nil, false
}

// Field returns the current field.
func (c *Controller) Field() field.Field { return c.field }

// Alpha is the current fade-in opacity in [0, 1].
func (c *Controller) Alpha() float64 { return c.alpha }

// Stats counts ornaments by state.
func (c *Controller) Stats() Stats {
	s := Stats{Ornaments: c.field.Len()}
	for _, o := range c.field.Ornaments() {
		if o.Animating() {
			s.Animating++
		}
		if o.Hovered() {
			s.Rotating++
		}
	}
	return s
}
