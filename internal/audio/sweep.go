package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveTriangle
)

// floorGain is where the exponential fade ends.
const floorGain = 0.01

// sweep is a one-shot tone whose frequency and gain both glide
// exponentially from a start to an end value over its duration.
type sweep struct {
	wave      WaveType
	rate      beep.SampleRate
	startFreq float64
	endFreq   float64
	gain      float64
	phase     float64
	position  int
	duration  int
}

// NewSweep creates a frequency sweep from startFreq to endFreq at gain.
func NewSweep(wave WaveType, startFreq, endFreq float64, duration time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		wave:      wave,
		rate:      rate,
		startFreq: startFreq,
		endFreq:   endFreq,
		gain:      gain,
		duration:  rate.N(duration),
	}
}

// expRamp interpolates exponentially between two positive values.
func expRamp(from, to, t float64) float64 {
	if from <= 0 || to <= 0 {
		return from + (to-from)*t
	}
	return from * math.Pow(to/from, t)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.duration)
		freq := expRamp(s.startFreq, s.endFreq, t)
		vol := expRamp(s.gain, floorGain, t)

		var val float64
		switch s.wave {
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(s.phase-0.5)
		}

		samples[i][0] = val * vol
		samples[i][1] = val * vol

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }
