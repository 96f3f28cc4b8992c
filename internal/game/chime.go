package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/iburimskiy/perfect-circle/internal/config"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeDuration   = 250 * time.Millisecond
	chimeDecay      = 10.0 // 1/s
	chimeBaseFreq   = 330.0
	chimeFreqStep   = 5.5 // Hz per score point
	levelWindow     = 512
)

// chimeFrequency maps a score to a pitch: higher scores ring higher.
func chimeFrequency(score float64) float64 {
	return chimeBaseFreq + chimeFreqStep*clamp(score, 0, 100)
}

// newChime returns a decaying sine tone of length d.
func newChime(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			v := math.Sin(2*math.Pi*freq*t) * math.Exp(-chimeDecay*t)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

// output is the audio device the chime player drives.
type output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Clear()
	Play(s ...beep.Streamer)
}

// beepSpeaker plays through the package-level beep speaker. Its Clear and Play
// take the speaker lock themselves, so callers must not hold it.
type beepSpeaker struct{}

func (beepSpeaker) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (beepSpeaker) Clear() { speaker.Clear() }

func (beepSpeaker) Play(s ...beep.Streamer) { speaker.Play(s...) }

// chimePlayer plays score chimes on an output. The output is initialised on
// first use; if that fails the player stays silent.
type chimePlayer struct {
	out      output
	volume   float64
	tap      *visualTap
	initDone bool
	disabled bool
}

func newChimePlayer(volume float64) *chimePlayer {
	return &chimePlayer{out: beepSpeaker{}, volume: volume}
}

// Play starts a chime for score, cutting off any chime still ringing.
func (c *chimePlayer) Play(score float64) error {
	if c.disabled {
		return nil
	}
	if !c.initDone {
		if err := c.out.Init(chimeSampleRate, chimeSampleRate.N(time.Second/20)); err != nil {
			c.disabled = true
			return fmt.Errorf("game: speaker init: %w", err)
		}
		c.initDone = true
	}

	t := newVisualTap(&effects.Volume{
		Streamer: newChime(chimeSampleRate, chimeFrequency(score), chimeDuration),
		Base:     2,
		Volume:   c.volume,
	}, config.ChimeRingSize)

	c.out.Clear()
	c.tap = t
	c.out.Play(t)
	return nil
}

// Level returns the loudness of what is currently playing, 0 when idle.
func (c *chimePlayer) Level() float64 {
	if c.tap == nil {
		return 0
	}
	return c.tap.level(levelWindow)
}
