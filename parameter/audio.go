package parameter

import "time"

// Audio Cues
const (
	AudioSampleRate   = 44100
	AudioBufferPeriod = 100 * time.Millisecond
	AudioCueDuration  = 50 * time.Millisecond
	AudioFireFreq     = 880.0
	AudioJumpFreq     = 440.0
	AudioCueVolume    = 0.3
)
