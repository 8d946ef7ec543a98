package ebiten

import "image/color"

// Color palette for the labyrinth
var (
	colorBackground      = color.RGBA{15, 12, 20, 255}
	colorFloor           = color.RGBA{150, 140, 120, 255}
	colorWall            = color.RGBA{60, 55, 70, 255}
	colorWallLine        = color.RGBA{200, 190, 170, 255}
	colorExit            = color.RGBA{100, 255, 100, 255}
	colorTreasure        = color.RGBA{255, 210, 80, 255}
	colorDiamond         = color.RGBA{120, 220, 255, 255}
	colorPlayer          = color.RGBA{0, 255, 0, 255}
	colorMinotaur        = color.RGBA{255, 80, 80, 255}
	colorText            = color.RGBA{220, 215, 235, 255}
	colorSubtle          = color.RGBA{130, 125, 160, 255}
	colorPanelBackground = color.RGBA{30, 25, 45, 220}
	colorBarTrack        = color.RGBA{110, 50, 50, 255}
	colorBarZone         = color.RGBA{60, 150, 80, 255}
	colorBarMarker       = color.RGBA{255, 255, 255, 255}
)

// Tile size constraints
const (
	tileSizeStep = 4
	baseFontSize = 16.0 // Base font size at default tile size
	wallWidth    = 2
)

const (
	keyRepeatInitialDelay = 350 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 120 // Interval between repeat events (milliseconds)
)
