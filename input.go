package audiogui

import (
	"fmt"
	"strings"
	"time"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Modifiers is the set of keyboard modifier keys currently held.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper

	ModNone Modifiers = 0
)

// Contains reports whether every key in keys is held in m.
// An empty set is never contained, so it can be used to disable fine dragging.
func (m Modifiers) Contains(keys Modifiers) bool {
	return keys != ModNone && m&keys == keys
}

// String returns a "ctrl+shift" style name.
func (m Modifiers) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	for _, mod := range modifierNames {
		if m&mod.mod != 0 {
			parts = append(parts, mod.name)
		}
	}
	return strings.Join(parts, "+")
}

var modifierNames = []struct {
	name string
	mod  Modifiers
}{
	{"ctrl", ModCtrl},
	{"shift", ModShift},
	{"alt", ModAlt},
	{"super", ModSuper},
}

// ParseModifiers parses names such as "ctrl", "ctrl+shift" or "none".
func ParseModifiers(s string) (Modifiers, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return ModNone, nil
	}
	var m Modifiers
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		switch part {
		case "ctrl", "control":
			m |= ModCtrl
		case "shift":
			m |= ModShift
		case "alt", "option":
			m |= ModAlt
		case "super", "cmd", "command", "meta":
			m |= ModSuper
		default:
			return ModNone, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return m, nil
}

// EventKind identifies what an Event carries.
type EventKind int

const (
	EventPointerMoved EventKind = iota
	EventButtonPressed
	EventButtonReleased
	EventModifiersChanged
)

func (k EventKind) String() string {
	switch k {
	case EventPointerMoved:
		return "PointerMoved"
	case EventButtonPressed:
		return "ButtonPressed"
	case EventButtonReleased:
		return "ButtonReleased"
	case EventModifiersChanged:
		return "ModifiersChanged"
	default:
		return "Unknown"
	}
}

// Event is one input event forwarded by the host toolkit.
//
// Pos is the pointer position when the event happened. Modifiers is only
// meaningful for EventModifiersChanged; Button only for button events.
type Event struct {
	Kind      EventKind
	Pos       Vec2
	Button    MouseButton
	Modifiers Modifiers
	Time      time.Time
}

// PointerMoved creates a pointer move event.
func PointerMoved(pos Vec2, t time.Time) Event {
	return Event{Kind: EventPointerMoved, Pos: pos, Time: t}
}

// ButtonPressed creates a button press event.
func ButtonPressed(button MouseButton, pos Vec2, t time.Time) Event {
	return Event{Kind: EventButtonPressed, Button: button, Pos: pos, Time: t}
}

// ButtonReleased creates a button release event.
func ButtonReleased(button MouseButton, pos Vec2, t time.Time) Event {
	return Event{Kind: EventButtonReleased, Button: button, Pos: pos, Time: t}
}

// ModifiersChanged creates an event carrying the full set of held modifiers.
func ModifiersChanged(mods Modifiers, t time.Time) Event {
	return Event{Kind: EventModifiersChanged, Modifiers: mods, Time: t}
}
