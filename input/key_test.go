package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNamesRoundTrip(t *testing.T) {
	for k := KeyUnknown + 1; k < keyCount; k++ {
		got, err := ParseKey(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "KeyW", KeyW.String())
	assert.Equal(t, "Digit7", Digit7.String())

	_, err := ParseKey("KeyÆ")
	assert.Error(t, err)
}

func TestKeySet(t *testing.T) {
	var s KeySet
	assert.True(t, s.Empty())

	s.Press(KeyW)
	s.Press(ArrowRight)
	s.Press(KeyUnknown)
	assert.True(t, s.Pressed(KeyW))
	assert.True(t, s.Pressed(ArrowRight))
	assert.False(t, s.Pressed(KeyUnknown))
	assert.Equal(t, []Key{KeyW, ArrowRight}, s.Keys())

	s.Release(KeyW)
	assert.False(t, s.Pressed(KeyW))
}

func TestKeyForRune(t *testing.T) {
	assert.Equal(t, KeyW, KeyForRune('w'))
	assert.Equal(t, KeyW, KeyForRune('W'))
	assert.Equal(t, Digit3, KeyForRune('3'))
	assert.Equal(t, Space, KeyForRune(' '))
	assert.Equal(t, KeyUnknown, KeyForRune('!'))
}

func TestBindingsRejectDuplicates(t *testing.T) {
	names := DefaultBindingNames()
	names.Jump = "KeyW"
	_, err := names.Resolve()
	assert.ErrorContains(t, err, "already bound to forward")

	names = DefaultBindingNames()
	names.Pause = "NotAKey"
	_, err = names.Resolve()
	assert.ErrorContains(t, err, "binding pause")
}

func TestDeviceNames(t *testing.T) {
	b, err := ParseGamepadButton("RightTrigger2")
	require.NoError(t, err)
	assert.Equal(t, RightTrigger2, b)

	a, err := ParseGamepadAxis("LeftStickY")
	require.NoError(t, err)
	assert.Equal(t, LeftStickY, a)

	m, err := ParseMouseButton("Right")
	require.NoError(t, err)
	assert.Equal(t, MouseRight, m)

	s, err := ParseButtonState("released")
	require.NoError(t, err)
	assert.Equal(t, Released, s)
}
