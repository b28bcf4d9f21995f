package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want action
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), actForward},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), actForward},
		{"a strafes", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), actStrafeLeft},
		{"arrow left turns", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), actTurnLeft},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), actJump},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), actPause},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), actQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), actNone},
		{"function key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), actNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyAction(tt.ev); got != tt.want {
				t.Errorf("Expected action %d, got %d", tt.want, got)
			}
		})
	}
}

func TestInputStateHold(t *testing.T) {
	var s inputState
	s.press(actForward)
	s.press(actStrafeRight)

	for i := 0; i < holdTicks; i++ {
		in := s.intent()
		if in.Forward != 1 || in.Strafe != -1 {
			t.Fatalf("Expected forward and right strafe held on tick %d, got %+v", i, in)
		}
	}
	if in := s.intent(); in.Forward != 0 || in.Strafe != 0 {
		t.Errorf("Expected hold to expire, got %+v", in)
	}
}

func TestInputStateJumpOnce(t *testing.T) {
	var s inputState
	s.press(actJump)

	if !s.intent().Jump {
		t.Error("Expected jump on the first tick")
	}
	if s.intent().Jump {
		t.Error("Expected jump to be consumed")
	}
}

func TestInputStateRelease(t *testing.T) {
	var s inputState
	s.press(actBack)
	s.release()
	if in := s.intent(); in.Forward != 0 {
		t.Errorf("Expected released keys to be idle, got %+v", in)
	}
}
