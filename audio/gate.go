package audio

import (
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/parameter"
	"github.com/lixenwraith/nextbot-maze/vmath"
)

// Voice is one playing sound
type Voice interface {
	SetGain(gain float64)
	Stop()
}

// Player plays decoded buffers aligned by agent index
// done is called once when the sound finishes naturally, possibly from another goroutine
type Player interface {
	Play(index int, gain float64, done func()) (Voice, bool)
	Loaded(index int) bool
}

// slot is the per-agent sound state
type slot struct {
	voice     Voice
	gen       uint64 // Bumped per trigger, stale completions are ignored
	triggered bool
	last      time.Duration
	gain      float64
}

func (s *slot) playing() bool {
	return s.voice != nil
}

type completion struct {
	index int
	gen   uint64
}

// Gate enforces at most one sound per agent, a per-agent trigger cooldown and
// distance-banded gain
// Update and StopAll are called from the simulation goroutine only
type Gate struct {
	bands    Bands
	cooldown time.Duration
	player   Player
	slots    []slot

	mu   sync.Mutex
	done []completion
}

// NewGate creates a gate; a nil player behaves as NopPlayer
func NewGate(player Player, bands Bands, cooldown time.Duration) *Gate {
	if player == nil {
		player = NopPlayer{}
	}
	return &Gate{
		bands:    bands,
		cooldown: cooldown,
		player:   player,
		done:     make([]completion, 0, parameter.AudioCompletionQueue),
	}
}

// Bands returns the gain bands
func (g *Gate) Bands() Bands {
	return g.bands
}

// complete queues a finished voice, safe from any goroutine
func (g *Gate) complete(index int, gen uint64) {
	g.mu.Lock()
	g.done = append(g.done, completion{index: index, gen: gen})
	g.mu.Unlock()
}

// drain applies queued completions
func (g *Gate) drain() {
	g.mu.Lock()
	pending := g.done
	g.done = make([]completion, 0, cap(pending))
	g.mu.Unlock()

	for _, c := range pending {
		if c.index < len(g.slots) && g.slots[c.index].gen == c.gen {
			g.slots[c.index].voice = nil
			g.slots[c.index].gain = 0
		}
	}
}

// Update is the per-tick pass over agent positions, returning each agent's current gain
// (0 when silent)
// Live voices track distance every tick; idle agents trigger when audible,
// off cooldown and their buffer is loaded
func (g *Gate) Update(now time.Duration, listener mgl64.Vec3, positions []mgl64.Vec3) []float64 {
	g.drain()
	if len(g.slots) < len(positions) {
		g.slots = append(g.slots, make([]slot, len(positions)-len(g.slots))...)
	}

	gains := make([]float64, len(positions))
	for i, p := range positions {
		s := &g.slots[i]
		d := vmath.HorizontalDistance(listener, p)
		gain := g.bands.Gain(d)

		if s.playing() {
			s.voice.SetGain(gain)
			s.gain = gain
			gains[i] = gain
			continue
		}

		if !g.bands.Audible(d) {
			continue
		}
		if s.triggered && now-s.last <= g.cooldown {
			continue
		}
		if !g.player.Loaded(i) {
			continue
		}

		gen := s.gen + 1
		idx := i
		v, ok := g.player.Play(i, gain, func() { g.complete(idx, gen) })
		if !ok {
			continue
		}
		s.voice = v
		s.gen = gen
		s.triggered = true
		s.last = now
		s.gain = gain
		gains[i] = gain
	}
	return gains
}

// Playing reports whether agent i has a live voice
func (g *Gate) Playing(i int) bool {
	return i < len(g.slots) && g.slots[i].playing()
}

// Active counts live voices
func (g *Gate) Active() int {
	n := 0
	for i := range g.slots {
		if g.slots[i].playing() {
			n++
		}
	}
	return n
}

// StopAll silences every voice; cooldown timestamps are kept
func (g *Gate) StopAll() {
	for i := range g.slots {
		s := &g.slots[i]
		if s.voice != nil {
			s.voice.Stop()
			s.voice = nil
			s.gain = 0
		}
		s.gen++
	}
}
