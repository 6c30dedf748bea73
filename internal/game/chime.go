package game

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/rosette-field/internal/geom"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeDuration   = 600 * time.Millisecond
	chimeDecay      = 7.0
	chimeAttack     = 0.005
	chimeBase       = 392.0 // G4
)

// pentatonic steps in semitones, indexed by ring count - 1
var chimeSteps = []int{0, 2, 4, 7, 9, 12, 14}

var errAudioUnavailable = errors.New("audio output unavailable")

// chime plays a short bell tone when an ornament starts pulsing. The
// speaker is opened on first use; if that fails the chime stays silent.
type chime struct {
	sampleRate beep.SampleRate
	mu         sync.Mutex
	ready      bool
	failed     bool
}

func newChime(sr beep.SampleRate) *chime {
	return &chime{sampleRate: sr}
}

func (c *chime) init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready {
		return nil
	}
	if c.failed {
		return errAudioUnavailable
	}
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Second/20)); err != nil {
		c.failed = true
		return fmt.Errorf("init speaker: %w", err)
	}
	c.ready = true
	return nil
}

// play queues one tone at freq Hz. volume is clamped to [0, 1].
func (c *chime) play(freq, volume float64) error {
	volume = geom.Clamp01(volume)
	if volume == 0 {
		return nil
	}
	if err := c.init(); err != nil {
		return err
	}
	speaker.Play(tone(c.sampleRate, freq, chimeDuration, volume))
	return nil
}

// chimeFrequency maps an ornament's ring count onto a pentatonic scale so
// busier ornaments ring higher.
func chimeFrequency(rings int) float64 {
	i := min(max(rings-1, 0), len(chimeSteps)-1)
	return chimeBase * math.Pow(2, float64(chimeSteps[i])/12)
}

// tone is a sine with a short linear attack and exponential decay. It
// ends after d.
func tone(sr beep.SampleRate, freq float64, d time.Duration, amp float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			env := math.Exp(-t * chimeDecay)
			if t < chimeAttack {
				env *= t / chimeAttack
			}
			v := amp * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
