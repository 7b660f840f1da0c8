package terminal

import (
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/gamefeel/input"
	"github.com/lixenwraith/gamefeel/parameter"
)

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape:     input.Escape,
	tcell.KeyEnter:      input.Enter,
	tcell.KeyTab:        input.Tab,
	tcell.KeyBackspace:  input.Backspace,
	tcell.KeyBackspace2: input.Backspace,
	tcell.KeyUp:         input.ArrowUp,
	tcell.KeyDown:       input.ArrowDown,
	tcell.KeyLeft:       input.ArrowLeft,
	tcell.KeyRight:      input.ArrowRight,
}

// keysFor maps one terminal key report to input keys, implied modifiers first
// Uppercase letters imply ShiftLeft since terminals do not report a bare shift
func keysFor(k tcell.Key, r rune, mod tcell.ModMask) []input.Key {
	var main input.Key
	if k == tcell.KeyRune {
		main = input.KeyForRune(r)
		if r >= 'A' && r <= 'Z' {
			mod |= tcell.ModShift
		}
	} else if sk, ok := specialKeys[k]; ok {
		main = sk
	}
	if main == input.KeyUnknown {
		return nil
	}

	keys := make([]input.Key, 0, 4)
	if mod&tcell.ModShift != 0 {
		keys = append(keys, input.ShiftLeft)
	}
	if mod&tcell.ModCtrl != 0 {
		keys = append(keys, input.ControlLeft)
	}
	if mod&tcell.ModAlt != 0 {
		keys = append(keys, input.AltLeft)
	}
	return append(keys, main)
}

// holdTracker synthesizes key-up for terminals, which only report presses and repeats
// A key stays held until window passes without another report
type holdTracker struct {
	window time.Duration
	until  map[input.Key]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{window: window, until: make(map[input.Key]time.Time)}
}

// touch extends the hold on k; reports true when k was not already held
func (t *holdTracker) touch(k input.Key, now time.Time) bool {
	_, held := t.until[k]
	t.until[k] = now.Add(t.window)
	return !held
}

// expire appends a release for every key whose hold lapsed, in key order
func (t *holdTracker) expire(dst []input.KeyEvent, now time.Time) []input.KeyEvent {
	var lapsed []input.Key
	for k, until := range t.until {
		if !now.Before(until) {
			lapsed = append(lapsed, k)
		}
	}
	sort.Slice(lapsed, func(i, j int) bool { return lapsed[i] < lapsed[j] })
	for _, k := range lapsed {
		delete(t.until, k)
		dst = append(dst, input.KeyEvent{Key: k, State: input.Released})
	}
	return dst
}

func (t *holdTracker) held() input.KeySet {
	var s input.KeySet
	for k := range t.until {
		s.Press(k)
	}
	return s
}

var mouseButtons = [...]struct {
	tc tcell.ButtonMask
	in input.MouseButton
}{
	{tcell.ButtonPrimary, input.MouseLeft},
	{tcell.ButtonSecondary, input.MouseRight},
	{tcell.ButtonMiddle, input.MouseMiddle},
}

const buttonMask = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// mouseTracker turns absolute terminal mouse reports into transitions and deltas
type mouseTracker struct {
	buttons tcell.ButtonMask
	x, y    int
	tracked bool
}

// update diffs one report against the previous one
// Motion counts while the cursor is locked, otherwise only while dragging
func (m *mouseTracker) update(dst []input.MouseButtonEvent, x, y int, btn tcell.ButtonMask, locked bool) ([]input.MouseButtonEvent, mgl64.Vec2, bool) {
	btn &= buttonMask
	for _, b := range mouseButtons {
		was, is := m.buttons&b.tc != 0, btn&b.tc != 0
		switch {
		case is && !was:
			dst = append(dst, input.MouseButtonEvent{Button: b.in, State: input.Pressed})
		case was && !is:
			dst = append(dst, input.MouseButtonEvent{Button: b.in, State: input.Released})
		}
	}

	var d mgl64.Vec2
	moved := m.tracked && (x != m.x || y != m.y) && (locked || btn != 0)
	if moved {
		d = mgl64.Vec2{float64(x-m.x) * parameter.TerminalMotionScale, float64(y-m.y) * parameter.TerminalMotionScale}
	}
	m.buttons, m.x, m.y, m.tracked = btn, x, y, true
	return dst, d, moved
}
