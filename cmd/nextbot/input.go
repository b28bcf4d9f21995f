package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nextbot-maze/player"
)

// action is one logical key binding
type action uint8

const (
	actNone action = iota
	actForward
	actBack
	actStrafeLeft
	actStrafeRight
	actTurnLeft
	actTurnRight
	actJump
	actPause
	actMute
	actRestart
	actZoomIn
	actZoomOut
	actQuit
	actCount
)

// holdTicks keeps a movement key active between terminal key repeats,
// terminals report presses only
const holdTicks = 10

// keyAction maps a key event to its binding
func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyUp:
		return actForward
	case tcell.KeyDown:
		return actBack
	case tcell.KeyLeft:
		return actTurnLeft
	case tcell.KeyRight:
		return actTurnRight
	case tcell.KeyRune:
	default:
		return actNone
	}

	switch ev.Rune() {
	case 'w', 'W':
		return actForward
	case 's', 'S':
		return actBack
	case 'a', 'A':
		return actStrafeLeft
	case 'd', 'D':
		return actStrafeRight
	case 'j':
		return actTurnLeft
	case 'l':
		return actTurnRight
	case ' ':
		return actJump
	case 'p', 'P':
		return actPause
	case 'm', 'M':
		return actMute
	case 'r', 'R':
		return actRestart
	case '+', '=':
		return actZoomIn
	case '-':
		return actZoomOut
	case 'q', 'Q':
		return actQuit
	}
	return actNone
}

// inputState turns discrete presses into a held movement intent
type inputState struct {
	hold [actCount]int
}

// press refreshes the hold window of a movement action
func (s *inputState) press(a action) {
	s.hold[a] = holdTicks
}

// release drops every held key, used on pause and restart
func (s *inputState) release() {
	s.hold = [actCount]int{}
}

// intent samples the held keys and ages them by one tick
// Jump is edge-triggered and consumed on the tick it is read
func (s *inputState) intent() player.Intent {
	held := func(a action) float64 {
		if s.hold[a] > 0 {
			return 1
		}
		return 0
	}

	in := player.Intent{
		Forward: held(actForward) - held(actBack),
		Strafe:  held(actStrafeLeft) - held(actStrafeRight),
		Turn:    held(actTurnLeft) - held(actTurnRight),
		Jump:    s.hold[actJump] > 0,
	}
	s.hold[actJump] = 0

	for i := range s.hold {
		if s.hold[i] > 0 {
			s.hold[i]--
		}
	}
	return in
}

// splitList splits a comma-separated flag value, dropping empty items
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
