package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/rosette-field/internal/scene"
)

const hudHelp = "Hover to spin, click to pulse | [M]ute [H]UD [F]ullscreen [S]creenshot [R]eseed [Q]uit"

func hudStatus(s scene.Stats, tps float64, elapsed time.Duration, sound bool, lastErr error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ornaments: %d | Pulsing: %d | Spinning: %d | TPS: %.1f | %s | Sound: %s",
		s.Ornaments, s.Animating, s.Rotating, tps, formatDuration(elapsed), onOff(sound))
	if lastErr != nil {
		b.WriteString(" | Error: ")
		b.WriteString(lastErr.Error())
	}
	return b.String()
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	prefs := g.settings.Preferences()
	status := hudStatus(g.scene.Stats(), ebiten.ActualTPS(), time.Since(g.started), prefs.SoundEnabled, g.lastErr)
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, hudHelp, 12, 28)
}
