package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 4
)

// KeyEvent is a single key transition. Repeat marks auto-repeated presses of
// a key that is being held down.
type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
	Repeat  bool
}

// Action is what a key means to the game.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionQuit
)

var keyActions = map[ebiten.Key]Action{
	ebiten.KeyA:      ActionLeft,
	ebiten.KeyLeft:   ActionLeft,
	ebiten.KeyD:      ActionRight,
	ebiten.KeyRight:  ActionRight,
	ebiten.KeySpace:  ActionJump,
	ebiten.KeyW:      ActionJump,
	ebiten.KeyUp:     ActionJump,
	ebiten.KeyEscape: ActionQuit,
}

// watchedKeys is keyActions' key set in a stable order.
var watchedKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyLeft,
	ebiten.KeyD, ebiten.KeyRight,
	ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp,
	ebiten.KeyEscape,
}

func ActionFor(key ebiten.Key) Action {
	return keyActions[key]
}

// Apply updates the input flags from a key event. Left and right follow the
// held state. Jump is only set by a fresh press and cleared on release.
func (in *PlayerInput) Apply(ev KeyEvent) {
	switch ActionFor(ev.Key) {
	case ActionLeft:
		in.Left = ev.Pressed
	case ActionRight:
		in.Right = ev.Pressed
	case ActionJump:
		if !ev.Pressed {
			in.Jump = false
		} else if !ev.Repeat {
			in.Jump = true
		}
	}
}

// PollKeys turns this frame's keyboard state into key events.
func PollKeys() []KeyEvent {
	var events []KeyEvent
	for _, key := range watchedKeys {
		switch {
		case inpututil.IsKeyJustPressed(key):
			events = append(events, KeyEvent{Key: key, Pressed: true})
		case inpututil.IsKeyJustReleased(key):
			events = append(events, KeyEvent{Key: key, Pressed: false})
		case ebiten.IsKeyPressed(key) && isRepeatTick(inpututil.KeyPressDuration(key)):
			events = append(events, KeyEvent{Key: key, Pressed: true, Repeat: true})
		}
	}
	return events
}

func isRepeatTick(held int) bool {
	return held > keyRepeatDelay && (held-keyRepeatDelay)%keyRepeatInterval == 0
}
