package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/downtoearth/ecs/component"
)

// holdWindow is how long a key counts as held after its last press.
// Terminals only report presses and key repeats, never releases.
const holdWindow = 150 * time.Millisecond

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// keyState turns terminal key presses into a per-frame Intent.
type keyState struct {
	lastPress [dirCount]time.Time
	lastFire  time.Time
	autofire  bool
	toggle    bool
	aimX      int
	aimY      int
}

// press records one key event. It reports false for keys it doesn't handle.
func (k *keyState) press(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		k.lastPress[dirUp] = now
		return true
	case tcell.KeyDown:
		k.lastPress[dirDown] = now
		return true
	case tcell.KeyLeft:
		k.lastPress[dirLeft] = now
		return true
	case tcell.KeyRight:
		k.lastPress[dirRight] = now
		return true
	case tcell.KeyTab:
		k.toggle = true
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'w':
		k.lastPress[dirUp] = now
	case 's':
		k.lastPress[dirDown] = now
	case 'a':
		k.lastPress[dirLeft] = now
	case 'd':
		k.lastPress[dirRight] = now
	case ' ', 'j':
		k.lastFire = now
	case 'f':
		k.autofire = !k.autofire
	case 'q':
		k.toggle = true
	case 'i':
		k.aimX, k.aimY = 0, -1
	case 'k':
		k.aimX, k.aimY = 0, 1
	case 'u':
		k.aimX, k.aimY = -1, -1
	case 'o':
		k.aimX, k.aimY = 1, -1
	case 'n':
		k.aimX, k.aimY = -1, 1
	case '.':
		k.aimX, k.aimY = 1, 1
	case 'h':
		k.aimX, k.aimY = -1, 0
	case 'l':
		k.aimX, k.aimY = 1, 0
	default:
		return false
	}
	return true
}

// intent builds this frame's Intent. ToggleMode is edge-triggered and is
// cleared once read.
func (k *keyState) intent(now time.Time) component.Intent {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) <= holdWindow
	}
	in := component.Intent{
		Up:         held(k.lastPress[dirUp]),
		Down:       held(k.lastPress[dirDown]),
		Left:       held(k.lastPress[dirLeft]),
		Right:      held(k.lastPress[dirRight]),
		Fire:       k.autofire || held(k.lastFire),
		ToggleMode: k.toggle,
		AimX:       k.aimX,
		AimY:       k.aimY,
	}
	k.toggle = false
	return in
}
