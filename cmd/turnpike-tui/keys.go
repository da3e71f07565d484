package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/turnpike/car"
)

// holdWindow is how long after its last repeat a key still counts as held.
// Terminals report presses and auto-repeats but never releases.
const holdWindow = 150 * time.Millisecond

// keyState remembers when each driving intent was last pressed
type keyState map[string]time.Time

// press records a key event. It reports whether the key maps to an intent.
func (ks keyState) press(ev *tcell.EventKey, now time.Time) bool {
	name := intentFor(ev)
	if name == "" {
		return false
	}
	ks[name] = now
	return true
}

// intents returns the intents whose key was pressed within holdWindow of now
func (ks keyState) intents(now time.Time) car.Intents {
	var held []string
	for name, at := range ks {
		if now.Sub(at) < holdWindow {
			held = append(held, name)
		}
	}
	return car.IntentsFromNames(held...)
}

func intentFor(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "accelerate"
	case tcell.KeyDown:
		return "brake"
	case tcell.KeyLeft:
		return "steerLeft"
	case tcell.KeyRight:
		return "steerRight"
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return "accelerate"
		case 's', 'S':
			return "brake"
		case 'a', 'A':
			return "steerLeft"
		case 'd', 'D':
			return "steerRight"
		}
	}
	return ""
}
