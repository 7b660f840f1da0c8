package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// Cue describes one short tone
type Cue struct {
	Freq   float64
	Volume float64
}

// DefaultCues maps semantic events to their tones
func DefaultCues() map[event.EventType]Cue {
	return map[event.EventType]Cue{
		event.EventJump: {Freq: parameter.AudioJumpFreq, Volume: parameter.AudioCueVolume},
		event.EventFire: {Freq: parameter.AudioFireFreq, Volume: parameter.AudioCueVolume},
	}
}

// SoundManager plays event cues through a shared mixer
// Safe for concurrent use; the speaker callback reads the mixer on its own goroutine
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cues        map[event.EventType]Cue
	logger      *zap.Logger
	initialized bool
}

// NewSoundManager creates an uninitialized manager; PlayCue is a no-op until Initialize succeeds
func NewSoundManager(logger *zap.Logger) *SoundManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		cues:   DefaultCues(),
		logger: logger.Named("audio"),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferPeriod)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup clears the mixer; beep has no speaker close, clearing stops output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayCue queues the tone for t, ignoring events without a cue
func (sm *SoundManager) PlayCue(t event.EventType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	cue, ok := sm.cues[t]
	if !ok {
		return
	}

	speaker.Lock()
	sm.mixer.Add(NewCueStreamer(sampleRate, cue))
	speaker.Unlock()
}

// NewCueStreamer returns a finite streamer for one cue
func NewCueStreamer(sr beep.SampleRate, cue Cue) beep.Streamer {
	n := sr.N(parameter.AudioCueDuration)
	return beep.Take(n, NewToneGenerator(sr, cue.Freq, cue.Volume, n))
}
