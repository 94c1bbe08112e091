package constants

// Screen layout
const (
	// HeaderRows is the number of rows above the grid (title + rule)
	HeaderRows = 2

	// ChromeRows is the number of terminal rows not available to the grid
	// Header rows plus one spare row at the bottom
	ChromeRows = 3

	// HeaderColumn is the column the title starts at
	HeaderColumn = 1
)

// Header text
const (
	HeaderTitle       = "Pipes"
	HeaderCycleFormat = "Pipes | Cycle: %d"
)

// Glyphs
const (
	RuneRule       = '_'
	RuneHorizontal = '-'
	RuneVertical   = '|'
	RuneTurn       = '+'
)
