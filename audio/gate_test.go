package audio

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

type fakeVoice struct {
	gain    float64
	stopped bool
}

func (v *fakeVoice) SetGain(g float64) { v.gain = g }
func (v *fakeVoice) Stop()             { v.stopped = true }

type fakePlayer struct {
	loaded map[int]bool
	plays  []int
	voices []*fakeVoice
	done   []func()
}

func newFakePlayer(indices ...int) *fakePlayer {
	p := &fakePlayer{loaded: make(map[int]bool)}
	for _, i := range indices {
		p.loaded[i] = true
	}
	return p
}

func (p *fakePlayer) Loaded(i int) bool { return p.loaded[i] }

func (p *fakePlayer) Play(i int, gain float64, done func()) (Voice, bool) {
	v := &fakeVoice{gain: gain}
	p.plays = append(p.plays, i)
	p.voices = append(p.voices, v)
	p.done = append(p.done, done)
	return v, true
}

func TestBandsGain(t *testing.T) {
	b := DefaultBands()
	cases := []struct {
		d, want float64
	}{
		{0, 1}, {30, 1}, {30.01, 0.6}, {45, 0.6}, {52.5, 0.3}, {60, 0}, {75, 0},
	}
	for _, c := range cases {
		if got := b.Gain(c.d); abs(got-c.want) > 1e-9 {
			t.Errorf("Gain(%f): expected %f, got %f", c.d, c.want, got)
		}
	}
}

func TestBandsMonotonicFade(t *testing.T) {
	b := DefaultBands()
	prev := b.Gain(0)
	for d := 0.0; d <= b.Outer+5; d += 0.05 {
		g := b.Gain(d)
		if g > prev {
			t.Fatalf("Gain increased at %f: %f > %f", d, g, prev)
		}
		if g < 0 || g > 1 {
			t.Fatalf("Gain %f out of range at %f", g, d)
		}
		prev = g
	}
}

func TestGateCooldown(t *testing.T) {
	p := newFakePlayer(0)
	g := NewGate(p, DefaultBands(), 3*time.Second)
	listener := mgl64.Vec3{0, 2, 0}
	agents := []mgl64.Vec3{{10, 2, 0}}

	g.Update(0, listener, agents)
	if len(p.plays) != 1 {
		t.Fatalf("Expected first trigger, got %d plays", len(p.plays))
	}
	p.done[0]()

	// Finished, but inside the cooldown
	g.Update(2*time.Second, listener, agents)
	if len(p.plays) != 1 {
		t.Fatalf("Expected no trigger inside cooldown, got %d plays", len(p.plays))
	}

	g.Update(3*time.Second+time.Millisecond, listener, agents)
	if len(p.plays) != 2 {
		t.Fatalf("Expected trigger after cooldown, got %d plays", len(p.plays))
	}
}

func TestGateOneVoicePerAgent(t *testing.T) {
	p := newFakePlayer(0, 1)
	g := NewGate(p, DefaultBands(), 0)
	listener := mgl64.Vec3{}
	agents := []mgl64.Vec3{{5, 0, 0}, {0, 0, 50}}

	for tick := 0; tick < 100; tick++ {
		g.Update(time.Duration(tick)*time.Second, listener, agents)
	}
	if len(p.plays) != 2 {
		t.Fatalf("Expected one play per agent while voices are live, got %d", len(p.plays))
	}
	if g.Active() != 2 || !g.Playing(0) || !g.Playing(1) {
		t.Error("Expected both agents playing")
	}
}

func TestGateTracksGain(t *testing.T) {
	p := newFakePlayer(0)
	g := NewGate(p, DefaultBands(), time.Second)
	listener := mgl64.Vec3{}

	gains := g.Update(0, listener, []mgl64.Vec3{{10, 0, 0}})
	if gains[0] != 1 {
		t.Errorf("Expected full gain, got %f", gains[0])
	}
	gains = g.Update(time.Second/60, listener, []mgl64.Vec3{{52.5, 0, 0}})
	if abs(gains[0]-0.3) > 1e-9 || abs(p.voices[0].gain-0.3) > 1e-9 {
		t.Errorf("Expected live gain 0.3, got %f / %f", gains[0], p.voices[0].gain)
	}
	// Beyond the outer radius a live voice fades to zero but keeps playing
	gains = g.Update(2*time.Second/60, listener, []mgl64.Vec3{{90, 0, 0}})
	if gains[0] != 0 || !g.Playing(0) {
		t.Errorf("Expected silent live voice, got %f playing=%v", gains[0], g.Playing(0))
	}
}

func TestGateRequirements(t *testing.T) {
	p := newFakePlayer(1)
	g := NewGate(p, DefaultBands(), 0)
	listener := mgl64.Vec3{}

	// Agent 0 not loaded, agent 1 out of range
	g.Update(0, listener, []mgl64.Vec3{{1, 0, 0}, {61, 0, 0}})
	if len(p.plays) != 0 {
		t.Fatalf("Expected no plays, got %v", p.plays)
	}

	// Vertical distance is ignored
	g.Update(time.Second, listener, []mgl64.Vec3{{1, 0, 0}, {0, 500, 59}})
	if len(p.plays) != 1 || p.plays[0] != 1 {
		t.Errorf("Expected agent 1 to play, got %v", p.plays)
	}
}

func TestGateStaleCompletion(t *testing.T) {
	p := newFakePlayer(0)
	g := NewGate(p, DefaultBands(), 0)
	listener := mgl64.Vec3{}
	agents := []mgl64.Vec3{{1, 0, 0}}

	g.Update(0, listener, agents)
	g.StopAll()
	if !p.voices[0].stopped || g.Playing(0) {
		t.Fatal("Expected StopAll to stop the voice")
	}

	g.Update(time.Second, listener, agents)
	if len(p.plays) != 2 {
		t.Fatalf("Expected retrigger, got %d plays", len(p.plays))
	}

	// Completion of the stopped voice must not clear the new one
	p.done[0]()
	g.Update(time.Second+time.Millisecond, listener, agents)
	if !g.Playing(0) || len(p.plays) != 2 {
		t.Error("Stale completion cleared the live voice")
	}

	p.done[1]()
	g.Update(2*time.Second, listener, agents)
	if len(p.plays) != 3 {
		t.Errorf("Expected retrigger after completion, got %d plays", len(p.plays))
	}
}

func TestGateNopPlayer(t *testing.T) {
	g := NewGate(nil, DefaultBands(), 0)
	gains := g.Update(0, mgl64.Vec3{}, []mgl64.Vec3{{1, 0, 0}})
	if gains[0] != 0 || g.Active() != 0 {
		t.Error("Expected silence without a player")
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
