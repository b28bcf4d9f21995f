package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/collision"
	"github.com/lixenwraith/nextbot-maze/config"
	"github.com/lixenwraith/nextbot-maze/engine"
	"github.com/lixenwraith/nextbot-maze/world"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

var block = collision.AABB{Min: mgl64.Vec3{10, 0, -5}, Max: mgl64.Vec3{20, 10, 5}}

func newSession(t *testing.T, radius float64, colliders ...collision.AABB) *engine.Session {
	t.Helper()
	w, err := world.FromModel(colliders, collision.AABB{
		Min: mgl64.Vec3{-100, 0, -100},
		Max: mgl64.Vec3{100, 20, 100},
	})
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Maze.Seed = 3
	cfg.Pursuit.Agents = 1
	cfg.Pursuit.Patterns = []string{"direct"}
	cfg.Spawn.RadiusMin = radius
	cfg.Spawn.RadiusMax = radius

	s, err := engine.NewSession(engine.Options{Config: cfg, World: w})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func rowText(screen tcell.Screen, row int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, row)
		b.WriteRune(ch)
	}
	return b.String()
}

// screenText joins every row below the status bar
func screenText(screen tcell.Screen) string {
	_, height := screen.Size()
	var b strings.Builder
	for y := 1; y < height; y++ {
		b.WriteString(rowText(screen, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestRenderFrameLayout(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, 30, block)
	m := NewMinimap(screen)

	m.RenderFrame(s)

	if status := rowText(screen, 0); !strings.Contains(status, "HP 100") || !strings.Contains(status, "BOTS 1") {
		t.Errorf("Expected status bar with health and bot count, got %q", status)
	}

	// Player at the origin faces +Z, which is screen down
	ch, _, _, _ := screen.GetContent(40, 12)
	if ch != '↓' {
		t.Errorf("Expected player arrow at screen center, got %q", ch)
	}

	_, _, style, _ := screen.GetContent(47, 12)
	_, bg, _ := style.Decompose()
	if bg != RgbWall {
		t.Errorf("Expected wall background right of the player, got %v", bg)
	}

	if !strings.ContainsRune(screenText(screen), 'D') {
		t.Error("Expected direct bot glyph on screen")
	}
}

func TestRenderFrameBanners(t *testing.T) {
	screen := newScreen(t)
	m := NewMinimap(screen)

	paused := newSession(t, 30, block)
	paused.Step(engine.TickInput{Paused: true})
	m.RenderFrame(paused)
	if !strings.Contains(screenText(screen), "PAUSED") {
		t.Error("Expected pause banner")
	}

	caught := newSession(t, 2)
	caught.Step(engine.TickInput{})
	if !caught.Dead() {
		t.Fatal("Expected the adjacent bot to catch the player")
	}
	m.RenderFrame(caught)
	text := screenText(screen)
	if !strings.Contains(text, "CAUGHT BY direct") {
		t.Error("Expected death banner naming the pattern")
	}
	if !strings.Contains(rowText(screen, 0), "HP 0") {
		t.Error("Expected zero health in the status bar")
	}
}

func TestArrowFor(t *testing.T) {
	tests := []struct {
		dx, dz float64
		want   rune
	}{
		{1, 0, '→'},
		{0, 1, '↓'},
		{-1, 0, '←'},
		{0, -1, '↑'},
		{1, 1, '↘'},
		{-1, -1, '↖'},
	}
	for _, tt := range tests {
		if got := arrowFor(tt.dx, tt.dz); got != tt.want {
			t.Errorf("Expected %q for (%v,%v), got %q", tt.want, tt.dx, tt.dz, got)
		}
	}
}

func TestZoomClamps(t *testing.T) {
	m := NewMinimap(newScreen(t))
	for i := 0; i < 20; i++ {
		m.Zoom(2)
	}
	if m.Scale != 16 {
		t.Errorf("Expected scale clamped at 16, got %f", m.Scale)
	}
	for i := 0; i < 20; i++ {
		m.Zoom(0.5)
	}
	if m.Scale != 0.25 {
		t.Errorf("Expected scale clamped at 0.25, got %f", m.Scale)
	}
}
