// Package game adapts the rosette scene to Ebitengine: window size,
// pointer and key input, audio feedback and screenshots.
package game

import (
	"image"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/rosette-field/internal/config"
	"github.com/iburimskiy/rosette-field/internal/ornament"
	"github.com/iburimskiy/rosette-field/internal/render"
	"github.com/iburimskiy/rosette-field/internal/scene"
)

// Game implements ebiten.Game.
type Game struct {
	scene    *scene.Controller
	canvas   *render.EbitenCanvas
	clear    color.RGBA
	settings *SettingsManager
	chime    *chime

	// viewport
	width, height int

	// pointer: hover is forwarded only when the cursor moves
	cursorX, cursorY int
	cursorKnown      bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	// screenshot: requested in Update, captured in Draw, saved next Update
	shotRequested bool
	shot          *image.NRGBA

	started time.Time
	lastErr error
}

// NewGame wires a scene controller for cfg. Decoration randomness comes
// from rng.
func NewGame(cfg *config.Config, settings *SettingsManager, rng ornament.Rand) *Game {
	return &Game{
		scene:    scene.New(scene.SettingsFrom(cfg), rng),
		canvas:   render.NewEbitenCanvas(nil, true),
		clear:    cfg.BackgroundColor(),
		settings: settings,
		chime:    newChime(chimeSampleRate),
		prevKey:  map[ebiten.Key]bool{},
		started:  time.Now(),
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyM) {
		on := g.settings.ToggleSound()
		log.Printf("[Game] Sound %s", onOff(on))
		g.savePreferences()
	}
	if justPressed(ebiten.KeyH) {
		g.settings.ToggleHUD()
		g.savePreferences()
	}
	if justPressed(ebiten.KeyF) {
		on := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(on)
		g.settings.SetFullscreen(on)
		g.savePreferences()
	}
	if justPressed(ebiten.KeyR) {
		g.scene.Rebuild()
	}
	if justPressed(ebiten.KeyS) {
		g.shotRequested = true
	}

	if g.shot != nil {
		g.saveScreenshot(g.shot)
		g.shot = nil
	}

	g.handlePointer()

	g.scene.Update(frameTime())
	return nil
}

func frameTime() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1 / float64(tps)
}

func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	if !g.cursorKnown || x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY, g.cursorKnown = x, y, true
		g.scene.PointerMove(float64(x), float64(y))
	}

	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return
	}
	hit, started := g.scene.Click(float64(x), float64(y))
	if !started {
		return
	}
	prefs := g.settings.Preferences()
	if !prefs.SoundEnabled {
		return
	}
	if err := g.chime.play(chimeFrequency(len(hit.Rings())), prefs.Volume); err != nil {
		if g.lastErr == nil {
			log.Printf("[Game] Chime disabled: %v", err)
		}
		g.lastErr = err
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)

	g.canvas.Reset(screen)
	g.scene.Draw(g.canvas)

	if g.shotRequested {
		g.shot = captureScreen(screen)
		g.shotRequested = false
	}

	if g.settings.Preferences().ShowHUD {
		g.drawHUD(screen)
	}
}

// Layout follows the window size; any change rebuilds the field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(g.width, g.height)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) savePreferences() {
	if err := g.settings.Save(); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
}

func (g *Game) saveScreenshot(img *image.NRGBA) {
	path, err := askScreenshotPath(screenshotName(time.Now()))
	if err != nil {
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	if err := writePNG(path, img); err != nil {
		g.lastErr = err
		return
	}
	log.Printf("[Game] Screenshot saved to %s", path)
}
