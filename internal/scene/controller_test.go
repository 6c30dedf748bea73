package scene

import (
	"testing"

	"github.com/iburimskiy/rosette-field/internal/config"
	"github.com/iburimskiy/rosette-field/internal/geom"
	"github.com/iburimskiy/rosette-field/internal/ornament"
	"github.com/iburimskiy/rosette-field/internal/render"
)

func newController(t *testing.T, mutate func(*Settings)) *Controller {
	t.Helper()
	s := SettingsFrom(config.Default())
	s.FadeIn = 0
	if mutate != nil {
		mutate(&s)
	}
	return New(s, ornament.NewRand(1))
}

// overlapping packs ornaments so neighbours in a row share area.
func overlapping(s *Settings) {
	s.Layout.Spacing = 100
	s.Layout.AngleDeg = 30
}

func TestResizeBuildsAndRebuilds(t *testing.T) {
	c := newController(t, nil)
	if c.Field().Len() != 0 {
		t.Fatal("field built before first resize")
	}

	if !c.Resize(800, 600) {
		t.Fatal("first Resize did not build")
	}
	if got := c.Field().Len(); got != 24 {
		t.Fatalf("ornaments = %d, want 24", got)
	}
	first := c.Field().At(0)

	if c.Resize(800, 600) {
		t.Error("Resize to the same size rebuilt the field")
	}
	if c.Field().At(0) != first {
		t.Error("same-size Resize replaced ornaments")
	}

	first.Click()
	if !c.Resize(1024, 640) {
		t.Fatal("Resize to a new size did not rebuild")
	}
	for i, o := range c.Field().Ornaments() {
		if o == first {
			t.Fatal("old ornament survived resize")
		}
		if o.Animating() {
			t.Errorf("ornament %d animating after rebuild", i)
		}
	}
}

func TestRebuildKeepsSize(t *testing.T) {
	c := newController(t, nil)
	c.Resize(800, 600)
	before := c.Field().At(0)
	c.Rebuild()
	if w, h := c.Field().Size(); w != 800 || h != 600 {
		t.Errorf("size after Rebuild = %dx%d", w, h)
	}
	if c.Field().Len() != 24 || c.Field().At(0) == before {
		t.Error("Rebuild did not produce a fresh field of the same layout")
	}
	if c.Field().At(0).Center() != before.Center() {
		t.Error("Rebuild moved ornaments")
	}
}

func TestPointerMoveHoverIndependence(t *testing.T) {
	c := newController(t, overlapping)
	c.Resize(800, 600)

	a, b := c.Field().At(0).Center(), c.Field().At(1).Center()
	p := geom.LerpVec(a, b, 0.5)
	c.PointerMove(p.X, p.Y)

	rotating := 0
	for i, o := range c.Field().Ornaments() {
		if o.Hovered() != o.Contains(p.X, p.Y) {
			t.Errorf("ornament %d hovered=%v, contains=%v", i, o.Hovered(), o.Contains(p.X, p.Y))
		}
		if o.Hovered() {
			rotating++
		}
	}
	if rotating < 2 {
		t.Errorf("rotating = %d, want both overlapping ornaments", rotating)
	}
	if got := c.Stats().Rotating; got != rotating {
		t.Errorf("Stats().Rotating = %d, want %d", got, rotating)
	}

	c.PointerMove(-10000, -10000)
	if c.Stats().Rotating != 0 {
		t.Error("pointer outside every ornament left some rotating")
	}
}

func TestClickFirstHitOnly(t *testing.T) {
	c := newController(t, overlapping)
	c.Resize(800, 600)

	a, b := c.Field().At(0).Center(), c.Field().At(1).Center()
	p := geom.LerpVec(a, b, 0.5)

	hit, started := c.Click(p.X, p.Y)
	if hit == nil || !started {
		t.Fatalf("Click = %v, %v; want a started hit", hit, started)
	}

	firstHit := -1
	for i, o := range c.Field().Ornaments() {
		if o.Contains(p.X, p.Y) && firstHit < 0 {
			firstHit = i
		}
	}
	if hit != c.Field().At(firstHit) {
		t.Errorf("click went to %v, want ornament %d", hit.Center(), firstHit)
	}
	for i, o := range c.Field().Ornaments() {
		if i != firstHit && o.Animating() {
			t.Errorf("ornament %d animating after single click", i)
		}
	}
	if c.Stats().Animating != 1 {
		t.Errorf("Stats().Animating = %d, want 1", c.Stats().Animating)
	}

	again, started := c.Click(p.X, p.Y)
	if again != hit || started {
		t.Error("second click should land on the same ornament without restarting it")
	}
	for i, o := range c.Field().Ornaments() {
		if i != firstHit && o.Animating() {
			t.Errorf("second click passed through to ornament %d", i)
		}
	}
}

func TestClickMiss(t *testing.T) {
	c := newController(t, nil)
	if hit, _ := c.Click(10, 10); hit != nil {
		t.Error("click on empty controller hit something")
	}
	c.Resize(800, 600)
	if hit, started := c.Click(-10000, -10000); hit != nil || started {
		t.Error("click far outside hit an ornament")
	}
}

func TestClickAnimationRunsToCompletion(t *testing.T) {
	c := newController(t, nil)
	c.Resize(800, 600)
	o := c.Field().At(4)
	center := o.Center()
	c.Click(center.X, center.Y)

	minRadius := o.Radius()
	for i := 0; i < 1000 && o.Animating(); i++ {
		c.Update(1.0 / 60)
		minRadius = min(minRadius, o.Radius())
	}
	if o.Animating() {
		t.Fatal("animation still running after 1000 frames")
	}
	if minRadius > 51 || o.Radius() != 100 {
		t.Errorf("min radius %v, final radius %v", minRadius, o.Radius())
	}
}

func TestDrawEveryOrnamentInOrder(t *testing.T) {
	c := newController(t, nil)
	c.Resize(800, 600)

	rec := &render.Recorder{}
	c.Update(1.0 / 60)
	c.Draw(rec)

	if got := rec.Count(render.OpPush); got != c.Field().Len() {
		t.Errorf("pushes = %d, want %d", got, c.Field().Len())
	}
	if rec.Depth() != 0 || rec.MaxDepth != 1 {
		t.Errorf("depth = %d, max %d; want balanced, single level", rec.Depth(), rec.MaxDepth)
	}

	i := 0
	for _, op := range rec.Ops {
		if op.Kind != render.OpPush {
			continue
		}
		if want := c.Field().At(i).Center(); op.Points[0] != want {
			t.Fatalf("push %d pivots on %v, want %v", i, op.Points[0], want)
		}
		i++
	}
}

func TestEmptyFieldIsQuiet(t *testing.T) {
	c := newController(t, nil)
	rec := &render.Recorder{}
	c.PointerMove(1, 1)
	c.Update(1.0 / 60)
	c.Draw(rec)
	if len(rec.Ops) != 0 {
		t.Errorf("empty field drew %d ops", len(rec.Ops))
	}
	if s := c.Stats(); s != (Stats{}) {
		t.Errorf("Stats = %+v, want zero", s)
	}
}

func TestFadeIn(t *testing.T) {
	c := newController(t, func(s *Settings) { s.FadeIn = 0.5 })
	c.Resize(800, 600)
	if c.Alpha() != 0 {
		t.Fatalf("alpha after rebuild = %v, want 0", c.Alpha())
	}

	rec := &render.Recorder{}
	c.Draw(rec)
	for _, op := range rec.Ops {
		if op.Kind == render.OpFillCircle && op.Color.A != 0 {
			t.Fatalf("visible fill during fade start: %v", op.Color)
		}
	}

	c.Update(0.25)
	if a := c.Alpha(); a <= 0 || a >= 1 {
		t.Errorf("alpha mid-fade = %v, want in (0, 1)", a)
	}
	for i := 0; i < 40; i++ {
		c.Update(1.0 / 60)
	}
	if c.Alpha() != 1 {
		t.Errorf("alpha after fade = %v, want 1", c.Alpha())
	}
}
