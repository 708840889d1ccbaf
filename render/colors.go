package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termsnake/constant"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(110, 110, 120) // Dark gray
	RgbFood       = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHead       = tcell.NewRGBColor(230, 255, 230) // Pale green-white
)

// Snake body colors by speed band, slowest first
var speedBands = []tcell.Color{
	tcell.NewRGBColor(0, 200, 0),    // Normal green
	tcell.NewRGBColor(160, 220, 40), // Yellow green
	tcell.NewRGBColor(255, 210, 0),  // Gold
	tcell.NewRGBColor(255, 140, 0),  // Orange
	tcell.NewRGBColor(255, 60, 60),  // Red
}

// SpeedColor returns the body color for a speed tier
func SpeedColor(speed int) tcell.Color {
	band := speed / constant.SpeedBandWidth
	if band < 0 {
		band = 0
	}
	if band >= len(speedBands) {
		band = len(speedBands) - 1
	}
	return speedBands[band]
}

var (
	styleDefault = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	styleBorder  = styleDefault.Foreground(RgbBorder)
	styleFood    = styleDefault.Foreground(RgbFood).Bold(true)
	styleStatus  = styleDefault.Foreground(RgbStatusBar)
)
