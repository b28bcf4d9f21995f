package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB palette of the minimap
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(86, 95, 137)   // Muted slate
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange, same as the cursor
	RgbAgentQuiet = tcell.NewRGBColor(224, 175, 104) // Amber, out of earshot
	RgbAgentLoud  = tcell.NewRGBColor(255, 80, 80)   // Red, audible
	RgbAgentDim   = tcell.NewRGBColor(120, 120, 120) // Asset not ready
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbBannerBg   = tcell.NewRGBColor(180, 50, 50)   // Dark red
	RgbPauseBg    = tcell.NewRGBColor(60, 100, 200)  // Dark blue
)
