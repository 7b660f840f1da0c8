package input

import "fmt"

// Key is a host-independent physical key code
// Names follow the US layout position ("KeyW" is W on QWERTY)
type Key uint8

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	Space
	Enter
	Escape
	Tab
	Backspace
	ShiftLeft
	ShiftRight
	ControlLeft
	ControlRight
	AltLeft
	AltRight
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight

	keyCount
)

var (
	keyNames  [keyCount]string
	nameToKey = make(map[string]Key, keyCount)
)

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = fmt.Sprintf("Key%c", 'A'+rune(k-KeyA))
	}
	for k := Digit0; k <= Digit9; k++ {
		keyNames[k] = fmt.Sprintf("Digit%c", '0'+rune(k-Digit0))
	}
	named := map[Key]string{
		KeyUnknown:   "Unknown",
		Space:        "Space",
		Enter:        "Enter",
		Escape:       "Escape",
		Tab:          "Tab",
		Backspace:    "Backspace",
		ShiftLeft:    "ShiftLeft",
		ShiftRight:   "ShiftRight",
		ControlLeft:  "ControlLeft",
		ControlRight: "ControlRight",
		AltLeft:      "AltLeft",
		AltRight:     "AltRight",
		ArrowUp:      "ArrowUp",
		ArrowDown:    "ArrowDown",
		ArrowLeft:    "ArrowLeft",
		ArrowRight:   "ArrowRight",
	}
	for k, name := range named {
		keyNames[k] = name
	}
	for k := KeyUnknown + 1; k < keyCount; k++ {
		nameToKey[keyNames[k]] = k
	}
}

func (k Key) String() string {
	if k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// ParseKey resolves a key name as produced by Key.String
func ParseKey(name string) (Key, error) {
	k, ok := nameToKey[name]
	if !ok {
		return KeyUnknown, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// KeyForRune maps a printable character to its key, ignoring case
func KeyForRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Digit0 + Key(r-'0')
	case r == ' ':
		return Space
	}
	return KeyUnknown
}

// KeySet is the set of keys held down this frame
// Zero value is an empty set
type KeySet struct {
	bits [2]uint64
}

func (s *KeySet) Press(k Key) {
	if k == KeyUnknown || k >= keyCount {
		return
	}
	s.bits[k/64] |= 1 << (k % 64)
}

func (s *KeySet) Release(k Key) {
	if k >= keyCount {
		return
	}
	s.bits[k/64] &^= 1 << (k % 64)
}

func (s KeySet) Pressed(k Key) bool {
	if k >= keyCount {
		return false
	}
	return s.bits[k/64]&(1<<(k%64)) != 0
}

// Keys returns held keys in code order
func (s KeySet) Keys() []Key {
	var out []Key
	for k := KeyUnknown + 1; k < keyCount; k++ {
		if s.Pressed(k) {
			out = append(out, k)
		}
	}
	return out
}

// Empty reports whether no key is held
func (s KeySet) Empty() bool {
	return s.bits[0] == 0 && s.bits[1] == 0
}
