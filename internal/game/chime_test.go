package game

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/faiface/beep"
	. "github.com/smartystreets/goconvey/convey"
)

// sliceStreamer streams a fixed ramp of samples.
type sliceStreamer struct {
	samples [][2]float64
}

func (s *sliceStreamer) Stream(out [][2]float64) (int, bool) {
	if len(s.samples) == 0 {
		return 0, false
	}
	n := copy(out, s.samples)
	s.samples = s.samples[n:]
	return n, true
}

func (s *sliceStreamer) Err() error { return nil }

func ramp(n int) [][2]float64 {
	out := make([][2]float64, n)
	for i := range out {
		out[i] = [2]float64{float64(i), float64(i)}
	}
	return out
}

func TestChime(t *testing.T) {
	Convey("Given a chime streamer", t, func() {
		sr := beep.SampleRate(1000)
		s := newChime(sr, 100, chimeDuration)

		Convey("When it is drained", func() {
			buf := make([][2]float64, 64)
			var total int
			peak := 0.0
			for {
				n, ok := s.Stream(buf)
				if !ok {
					break
				}
				total += n
				for _, smp := range buf[:n] {
					peak = math.Max(peak, math.Abs(smp[0]))
					So(smp[0], ShouldEqual, smp[1])
				}
			}

			Convey("Then it produces exactly its duration in samples within [-1, 1]", func() {
				So(chimeDuration, ShouldEqual, 250*time.Millisecond)
				So(total, ShouldEqual, sr.N(chimeDuration))
				So(total, ShouldEqual, 250)
				So(peak, ShouldBeLessThanOrEqualTo, 1)
				So(peak, ShouldBeGreaterThan, 0)
			})
		})
	})

	Convey("Given scores across the range", t, func() {
		Convey("Then higher scores ring higher and stay in range", func() {
			So(chimeFrequency(0), ShouldEqual, chimeBaseFreq)
			So(chimeFrequency(100), ShouldBeGreaterThan, chimeFrequency(50))
			So(chimeFrequency(250), ShouldEqual, chimeFrequency(100))
		})
	})
}

func TestVisualTap(t *testing.T) {
	Convey("Given a tap with a small ring", t, func() {
		tap := newVisualTap(&sliceStreamer{samples: ramp(10)}, 4)

		Convey("When more samples stream than the ring holds", func() {
			buf := make([][2]float64, 3)
			for {
				if _, ok := tap.Stream(buf); !ok {
					break
				}
			}

			Convey("Then the snapshot holds the latest samples in order", func() {
				So(tap.snapshot(4), ShouldResemble, [][2]float64{{6, 6}, {7, 7}, {8, 8}, {9, 9}})
				So(tap.snapshot(2), ShouldResemble, [][2]float64{{8, 8}, {9, 9}})
				So(len(tap.snapshot(100)), ShouldEqual, 4)
			})

			Convey("Then the level is the RMS of the window", func() {
				want := math.Sqrt((8.0*8.0 + 9.0*9.0) / 2)
				So(tap.level(2), ShouldAlmostEqual, want, 1e-9)
			})
		})
	})

	Convey("Given a tap that has not streamed", t, func() {
		tap := newVisualTap(&sliceStreamer{}, 8)

		Convey("Then it is silent", func() {
			So(tap.level(8), ShouldEqual, 0.0)
			So(tap.Err(), ShouldBeNil)
		})
	})

	Convey("Given a chime player that never played", t, func() {
		c := newChimePlayer(0)

		Convey("Then its level is zero", func() {
			So(c.Level(), ShouldEqual, 0.0)
		})
	})
}

// lockingOutput guards its mixer with one mutex the way the beep speaker does.
type lockingOutput struct {
	mu      sync.Mutex
	initErr error
	inits   int
	clears  int
	playing []beep.Streamer
}

func (o *lockingOutput) Init(beep.SampleRate, int) error {
	o.inits++
	return o.initErr
}

func (o *lockingOutput) Clear() {
	o.mu.Lock()
	o.clears++
	o.playing = nil
	o.mu.Unlock()
}

func (o *lockingOutput) Play(s ...beep.Streamer) {
	o.mu.Lock()
	o.playing = append(o.playing, s...)
	o.mu.Unlock()
}

func TestChimePlayer(t *testing.T) {
	Convey("Given a chime player on a locking output", t, func() {
		out := &lockingOutput{}
		c := &chimePlayer{out: out, volume: -1}

		Convey("When two scores are played back to back", func() {
			done := make(chan error, 1)
			go func() {
				if err := c.Play(40); err != nil {
					done <- err
					return
				}
				done <- c.Play(95)
			}()

			var err error
			select {
			case err = <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("Play blocked")
			}

			Convey("Then the output is initialised once and only the latest chime rings", func() {
				So(err, ShouldBeNil)
				So(out.inits, ShouldEqual, 1)
				So(out.clears, ShouldEqual, 2)
				So(len(out.playing), ShouldEqual, 1)
				So(out.playing[0], ShouldEqual, c.tap)
			})
		})

		Convey("When the output cannot be initialised", func() {
			out.initErr = errors.New("no audio device")
			err := c.Play(50)
			again := c.Play(60)

			Convey("Then the player reports once and stays silent", func() {
				So(errors.Is(err, out.initErr), ShouldBeTrue)
				So(again, ShouldBeNil)
				So(out.inits, ShouldEqual, 1)
				So(out.playing, ShouldBeEmpty)
				So(c.Level(), ShouldEqual, 0.0)
			})
		})
	})
}

func TestScoreTier(t *testing.T) {
	Convey("Given scores at the tier boundaries", t, func() {
		So(scoreTier(90), ShouldEqual, tierExcellent)
		So(scoreTier(89.9), ShouldEqual, tierGood)
		So(scoreTier(70), ShouldEqual, tierGood)
		So(scoreTier(69.9), ShouldEqual, tierPoor)
		So(formatScore(97.24, true), ShouldEqual, "97.2")
		So(formatScore(0, false), ShouldEqual, "--")
	})

	Convey("Given hues outside [0, 360)", t, func() {
		r1, g1, b1 := hsvToRgb(-30, 1, 1)
		r2, g2, b2 := hsvToRgb(330, 1, 1)
		So([]uint8{r1, g1, b1}, ShouldResemble, []uint8{r2, g2, b2})
	})
}
