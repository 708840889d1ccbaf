package constant

// Glyphs
const (
	GlyphBorder    = '#'
	GlyphEmpty     = ' '
	GlyphFood      = '●'
	GlyphSnakeHead = '█'
	GlyphSnakeBody = '▓'
)

// Layout
const (
	// ArenaOffset is the border thickness around the arena, in cells
	ArenaOffset = 1
)

// SpeedBandWidth is the number of speed levels sharing one snake color
const SpeedBandWidth = 5
