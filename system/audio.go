package system

import (
	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/parameter"
)

// AudioCueSystem plays a short cue for Jump and Fire
// No-op when the audio resource is absent or disabled
type AudioCueSystem struct {
	world *engine.World
}

func NewAudioCueSystem(world *engine.World) *AudioCueSystem {
	return &AudioCueSystem{world: world}
}

func (s *AudioCueSystem) Name() string {
	return "audio_cue"
}

func (s *AudioCueSystem) Priority() int {
	return parameter.PriorityAudioCue
}

func (s *AudioCueSystem) Update(w *engine.World) {
	audio := w.Resources.Audio
	if audio == nil || !audio.Enabled || audio.Player == nil {
		return
	}

	for _, ev := range w.Resources.Event.Queue.Batch() {
		switch ev.Type {
		case event.EventJump, event.EventFire:
			audio.Player.PlayCue(ev.Type)
		}
	}
}
