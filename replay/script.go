// Package replay decodes YAML input scripts into frames for the headless host
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gamefeel/input"
	"github.com/lixenwraith/gamefeel/parameter"
)

// ErrEmpty is returned for a script without frames
var ErrEmpty = errors.New("replay: script has no frames")

// Script is the document form of an input recording
//
//	name: walk
//	dt: 16ms
//	frames:
//	  - held: [KeyW]
//	    repeat: 60
//	  - keys: [{key: Space}]
//	    mouse: [{button: Left}]
//	    motion: [[12, -3]]
//	    gamepad: [{button: South, value: 1}, {axis: LeftStickX, value: 0.4}]
type Script struct {
	Name   string        `yaml:"name"`
	DT     time.Duration `yaml:"dt"` // Default frame delta
	Frames []FrameSpec   `yaml:"frames"`
}

// FrameSpec describes one frame, optionally repeated
// Held keys, dt and motion repeat; discrete transitions fire on the first copy only
type FrameSpec struct {
	DT      time.Duration `yaml:"dt"`
	Held    []string      `yaml:"held"`
	Keys    []KeySpec     `yaml:"keys"`
	Mouse   []MouseSpec   `yaml:"mouse"`
	Motion  [][2]float64  `yaml:"motion"`
	Gamepad []GamepadSpec `yaml:"gamepad"`
	Repeat  int           `yaml:"repeat"`
}

// KeySpec is a key transition; State defaults to pressed
type KeySpec struct {
	Key   string `yaml:"key"`
	State string `yaml:"state"`
}

// MouseSpec is a mouse button transition; State defaults to pressed
type MouseSpec struct {
	Button string `yaml:"button"`
	State  string `yaml:"state"`
}

// GamepadSpec sets exactly one of Button or Axis
type GamepadSpec struct {
	Pad    int     `yaml:"pad"`
	Button string  `yaml:"button"`
	Axis   string  `yaml:"axis"`
	Value  float64 `yaml:"value"`
}

// Load reads and decodes a script file
func Load(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Script{}, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// Decode parses a script, rejecting unknown fields
func Decode(r io.Reader) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, ErrEmpty
		}
		return Script{}, fmt.Errorf("decode: %w", err)
	}
	if len(s.Frames) == 0 {
		return Script{}, ErrEmpty
	}
	if s.DT <= 0 {
		s.DT = parameter.FrameUpdateInterval
	}
	return s, nil
}

// Expand turns the script into input frames, repeats included
func (s Script) Expand() ([]input.Frame, error) {
	if len(s.Frames) == 0 {
		return nil, ErrEmpty
	}

	out := make([]input.Frame, 0, len(s.Frames))
	for i, spec := range s.Frames {
		first, err := spec.build(s.DT)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		out = append(out, first)

		for r := 1; r < spec.Repeat; r++ {
			out = append(out, input.Frame{
				Delta:  first.Delta,
				Held:   first.Held,
				Motion: append([]mgl64.Vec2(nil), first.Motion...),
			})
		}
	}
	return out, nil
}

func (spec FrameSpec) build(defaultDT time.Duration) (input.Frame, error) {
	f := input.Frame{Delta: spec.DT}
	if f.Delta <= 0 {
		f.Delta = defaultDT
	}

	for _, name := range spec.Held {
		k, err := input.ParseKey(name)
		if err != nil {
			return f, fmt.Errorf("held: %w", err)
		}
		f.Held.Press(k)
	}

	for _, ks := range spec.Keys {
		k, err := input.ParseKey(ks.Key)
		if err != nil {
			return f, fmt.Errorf("keys: %w", err)
		}
		state, err := parseState(ks.State)
		if err != nil {
			return f, fmt.Errorf("keys: %w", err)
		}
		f.Keys = append(f.Keys, input.KeyEvent{Key: k, State: state})
	}

	for _, ms := range spec.Mouse {
		b, err := input.ParseMouseButton(ms.Button)
		if err != nil {
			return f, fmt.Errorf("mouse: %w", err)
		}
		state, err := parseState(ms.State)
		if err != nil {
			return f, fmt.Errorf("mouse: %w", err)
		}
		f.MouseButtons = append(f.MouseButtons, input.MouseButtonEvent{Button: b, State: state})
	}

	for _, m := range spec.Motion {
		f.Motion = append(f.Motion, mgl64.Vec2{m[0], m[1]})
	}

	for _, gs := range spec.Gamepad {
		ev, err := gs.build()
		if err != nil {
			return f, fmt.Errorf("gamepad: %w", err)
		}
		f.Gamepad = append(f.Gamepad, ev)
	}
	return f, nil
}

func (gs GamepadSpec) build() (input.GamepadEvent, error) {
	ev := input.GamepadEvent{Gamepad: gs.Pad, Value: gs.Value}
	switch {
	case gs.Button != "" && gs.Axis != "":
		return ev, fmt.Errorf("entry sets both button %q and axis %q", gs.Button, gs.Axis)
	case gs.Button != "":
		b, err := input.ParseGamepadButton(gs.Button)
		if err != nil {
			return ev, err
		}
		ev.Kind = input.GamepadButtonChanged
		ev.Button = b
	case gs.Axis != "":
		a, err := input.ParseGamepadAxis(gs.Axis)
		if err != nil {
			return ev, err
		}
		ev.Kind = input.GamepadAxisChanged
		ev.Axis = a
	default:
		return ev, errors.New("entry needs a button or an axis")
	}
	return ev, nil
}

func parseState(s string) (input.ButtonState, error) {
	if s == "" {
		return input.Pressed, nil
	}
	return input.ParseButtonState(s)
}
