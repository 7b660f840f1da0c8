package input

import (
	"fmt"

	"github.com/lixenwraith/gamefeel/parameter"
)

// Bindings maps gameplay actions to keys
type Bindings struct {
	Forward Key
	Back    Key
	Left    Key
	Right   Key
	Sprint  Key
	Jump    Key
	Pause   Key
	Escape  Key
}

// BindingNames is the textual form used by config files
type BindingNames struct {
	Forward string `yaml:"forward" env:"FORWARD"`
	Back    string `yaml:"back" env:"BACK"`
	Left    string `yaml:"left" env:"LEFT"`
	Right   string `yaml:"right" env:"RIGHT"`
	Sprint  string `yaml:"sprint" env:"SPRINT"`
	Jump    string `yaml:"jump" env:"JUMP"`
	Pause   string `yaml:"pause" env:"PAUSE"`
	Escape  string `yaml:"escape" env:"ESCAPE"`
}

// DefaultBindingNames returns WASD + Shift/Space/P/Escape
func DefaultBindingNames() BindingNames {
	return BindingNames{
		Forward: parameter.BindForward,
		Back:    parameter.BindBack,
		Left:    parameter.BindLeft,
		Right:   parameter.BindRight,
		Sprint:  parameter.BindSprint,
		Jump:    parameter.BindJump,
		Pause:   parameter.BindPause,
		Escape:  parameter.BindEscape,
	}
}

// DefaultBindings resolves DefaultBindingNames; the defaults always parse
func DefaultBindings() Bindings {
	b, err := DefaultBindingNames().Resolve()
	if err != nil {
		panic(err)
	}
	return b
}

// Resolve parses every name, rejecting unknown keys and duplicate assignments
// Empty names fall back to the default binding for that action
func (n BindingNames) Resolve() (Bindings, error) {
	def := DefaultBindingNames()
	fields := []struct {
		action string
		name   string
		def    string
	}{
		{"forward", n.Forward, def.Forward},
		{"back", n.Back, def.Back},
		{"left", n.Left, def.Left},
		{"right", n.Right, def.Right},
		{"sprint", n.Sprint, def.Sprint},
		{"jump", n.Jump, def.Jump},
		{"pause", n.Pause, def.Pause},
		{"escape", n.Escape, def.Escape},
	}

	var b Bindings
	targets := []*Key{&b.Forward, &b.Back, &b.Left, &b.Right, &b.Sprint, &b.Jump, &b.Pause, &b.Escape}
	seen := make(map[Key]string, len(fields))

	for i, f := range fields {
		name := f.name
		if name == "" {
			name = f.def
		}
		k, err := ParseKey(name)
		if err != nil {
			return Bindings{}, fmt.Errorf("binding %s: %w", f.action, err)
		}
		if prev, dup := seen[k]; dup {
			return Bindings{}, fmt.Errorf("binding %s: key %s already bound to %s", f.action, k, prev)
		}
		seen[k] = f.action
		*targets[i] = k
	}
	return b, nil
}
