// Package render draws a top-down view of a session onto a tcell screen.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nextbot-maze/engine"
	"github.com/lixenwraith/nextbot-maze/pursuit"
)

const (
	// DefaultScale is world units per terminal column
	DefaultScale = 2.0

	// cellAspect is the height/width ratio of a terminal cell
	cellAspect = 2.0

	// wallClearance is the minimum height above the floor for a collider to draw as a wall
	wallClearance = 0.5
)

// patternGlyphs marks each bot with its pattern
var patternGlyphs = [pursuit.PatternCount]rune{
	pursuit.PatternDirect:     'D',
	pursuit.PatternFlankLeft:  'L',
	pursuit.PatternFlankRight: 'R',
	pursuit.PatternZigzag:     'Z',
	pursuit.PatternErratic:    'E',
	pursuit.PatternCircling:   'O',
	pursuit.PatternSpiral:     'S',
	pursuit.PatternStalker:    'K',
	pursuit.PatternCharger:    'C',
	pursuit.PatternPatience:   'W',
	pursuit.PatternArcher:     'A',
	pursuit.PatternPredator:   'P',
	pursuit.PatternFearful:    'F',
	pursuit.PatternSwarmer:    'M',
	pursuit.PatternJitter:     'J',
	pursuit.PatternPatrol:     'T',
	pursuit.PatternTracker:    'X',
}

// Arrows indexed by octant, 0 is screen right, counting clockwise
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Minimap renders the world centered on the player
// Screen right is +X and screen down is +Z, the view from above
type Minimap struct {
	screen tcell.Screen
	Scale  float64
}

// NewMinimap creates a renderer for screen
func NewMinimap(screen tcell.Screen) *Minimap {
	return &Minimap{screen: screen, Scale: DefaultScale}
}

// Zoom multiplies the scale by factor, clamped to a usable range
func (m *Minimap) Zoom(factor float64) {
	m.Scale = min(max(m.Scale*factor, 0.25), 16)
}

// RenderFrame draws one frame and shows it
func (m *Minimap) RenderFrame(s *engine.Session) {
	m.screen.Clear()
	width, height := m.screen.Size()
	if width <= 0 || height <= 1 {
		return
	}
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	m.fill(0, 0, width, height, ' ', defaultStyle)

	// Row 0 is the status bar
	view := viewport{
		cx:    float64(width) / 2,
		cy:    1 + float64(height-1)/2,
		px:    s.Player.Position[0],
		pz:    s.Player.Position[2],
		scale: m.Scale,
	}

	m.drawWalls(s, view, width, height, defaultStyle)
	m.drawAgents(s, view, width, height, defaultStyle)
	m.drawPlayer(s, view, defaultStyle)
	m.drawStatusBar(s, width, defaultStyle)

	switch {
	case s.Dead():
		m.drawBanner(fmt.Sprintf(" CAUGHT BY %s  r restart  q quit ", killerName(s)), width, height, defaultStyle.Background(RgbBannerBg))
	case s.Paused():
		m.drawBanner(" PAUSED  p resume  q quit ", width, height, defaultStyle.Background(RgbPauseBg))
	}

	m.screen.Show()
}

type viewport struct {
	cx, cy float64 // Screen center
	px, pz float64 // World point at the center
	scale  float64
}

func (v viewport) toScreen(x, z float64) (int, int) {
	col := v.cx + (x-v.px)/v.scale
	row := v.cy + (z-v.pz)/(v.scale*cellAspect)
	return int(math.Floor(col)), int(math.Floor(row))
}

func (m *Minimap) drawWalls(s *engine.Session, view viewport, width, height int, defaultStyle tcell.Style) {
	floor := s.World.FloorY
	wallStyle := defaultStyle.Background(RgbWall)

	for _, b := range s.World.Collision.Colliders {
		if b.Max[1] <= floor+wallClearance {
			continue
		}
		x0, y0 := view.toScreen(b.Min[0], b.Min[2])
		x1, y1 := view.toScreen(b.Max[0], b.Max[2])
		x0, y0 = max(x0, 0), max(y0, 1)
		x1, y1 = min(x1, width-1), min(y1, height-1)
		if x0 > x1 || y0 > y1 {
			continue
		}
		m.fill(x0, y0, x1-x0+1, y1-y0+1, ' ', wallStyle)
	}
}

func (m *Minimap) drawAgents(s *engine.Session, view viewport, width, height int, defaultStyle tcell.Style) {
	for i, a := range s.Agents {
		col, row := view.toScreen(a.Position[0], a.Position[2])
		if col < 0 || col >= width || row < 1 || row >= height {
			continue
		}

		color := RgbAgentQuiet
		switch {
		case !s.Visuals[i].Ready:
			color = RgbAgentDim
		case i < len(s.Gains) && s.Gains[i] > 0:
			color = RgbAgentLoud
		}
		glyph := '?'
		if int(a.Pattern) < len(patternGlyphs) {
			glyph = patternGlyphs[a.Pattern]
		}
		m.screen.SetContent(col, row, glyph, nil, defaultStyle.Foreground(color).Bold(true))
	}
}

func (m *Minimap) drawPlayer(s *engine.Session, view viewport, defaultStyle tcell.Style) {
	col, row := view.toScreen(s.Player.Position[0], s.Player.Position[2])
	f := s.Player.Facing()
	m.screen.SetContent(col, row, arrowFor(f[0], f[2]), nil, defaultStyle.Foreground(RgbPlayer).Bold(true))
}

// arrowFor picks the arrow closest to a ground direction in screen space
func arrowFor(dx, dz float64) rune {
	angle := math.Atan2(dz, dx)
	octant := int(math.Round(angle/(math.Pi/4))+8) % 8
	return arrows[octant]
}

func (m *Minimap) drawStatusBar(s *engine.Session, width int, defaultStyle tcell.Style) {
	barStyle := defaultStyle.Foreground(RgbStatusBar)
	m.fill(0, 0, width, 1, ' ', barStyle)

	status := fmt.Sprintf(" %s  DIST %.0f  HP %.0f  BOTS %d  LOUD %.2f ",
		formatElapsed(s.Clock().Elapsed()),
		s.Stats.Distance,
		s.Health,
		len(s.Agents),
		s.Stats.Loudest,
	)
	m.text(0, 0, status, barStyle)

	seed := fmt.Sprintf(" SEED %d ", s.Seed)
	if x := width - len(seed); x > len(status) {
		m.text(x, 0, seed, defaultStyle.Foreground(RgbStatusDim))
	}
}

func (m *Minimap) drawBanner(msg string, width, height int, style tcell.Style) {
	x := max((width-len([]rune(msg)))/2, 0)
	y := max(height/2, 1)
	m.text(x, y, msg, style.Foreground(RgbStatusBar).Bold(true))
}

func (m *Minimap) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			m.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (m *Minimap) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		m.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func killerName(s *engine.Session) string {
	for _, a := range s.Agents {
		if a.ID == s.Killer() {
			return a.Pattern.String()
		}
	}
	return "unknown"
}

func formatElapsed(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("%02d:%04.1f", minutes, seconds)
}
