// Package keytracker provides edge-triggered key state for keyboard shortcuts.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	prevPressed bool
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	return k.update(ebiten.IsKeyPressed(key))
}

func (k *KeyStateTracker) update(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}

// Shortcut is a key plus modifiers that fires once per press. Modifiers
// must match exactly, so Ctrl+S and Ctrl+Shift+S are distinct shortcuts.
// Ctrl also accepts the Meta key.
type Shortcut struct {
	Key     ebiten.Key
	Ctrl    bool
	Shift   bool
	tracker KeyStateTracker
}

// JustPressed polls ebiten once and reports whether the shortcut fired.
// Call it exactly once per frame.
func (s *Shortcut) JustPressed() bool {
	return s.match(ebiten.IsKeyPressed)
}

func (s *Shortcut) match(isPressed func(ebiten.Key) bool) bool {
	ctrl := isPressed(ebiten.KeyControl) || isPressed(ebiten.KeyMeta)
	shift := isPressed(ebiten.KeyShift)
	down := isPressed(s.Key) && ctrl == s.Ctrl && shift == s.Shift
	return s.tracker.update(down)
}
