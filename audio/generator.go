package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator generates a sine tone with a linear fade-out over length samples
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	length int
	pos    int
}

func NewToneGenerator(sr beep.SampleRate, freq, volume float64, length int) *ToneGenerator {
	if length < 1 {
		length = 1
	}
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		volume: volume,
		length: length,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fade to silence at length to avoid a click
		env := 1 - float64(g.pos)/float64(g.length)
		if env < 0 {
			env = 0
		}

		v := g.volume * env * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
