package core

// CellState enumerates the values a grid cell can hold. The numeric values are
// stable and double as the display-buffer byte.
type CellState uint8

const (
	// Empty is vacant land.
	Empty CellState = iota
	// Resource is mineral-bearing land placed by the seed pass only.
	Resource
	// Road is a player-painted path.
	Road
	// Residential grows on Empty land next to a Road.
	Residential
	// Commercial grows wherever more than four Roads meet.
	Commercial
	// Mining grows on Resource land next to a Road.
	Mining

	numCellStates
)

// NumCellStates is the size of the CellState enumeration.
const NumCellStates = int(numCellStates)

var cellNames = [numCellStates]string{
	Empty:       "empty",
	Resource:    "resource",
	Road:        "road",
	Residential: "residential",
	Commercial:  "commercial",
	Mining:      "mining",
}

var cellRunes = [numCellStates]rune{
	Empty:       '.',
	Resource:    '*',
	Road:        '#',
	Residential: 'r',
	Commercial:  'c',
	Mining:      'm',
}

// String returns the lowercase name of the state.
func (s CellState) String() string {
	if s < numCellStates {
		return cellNames[s]
	}
	return "unknown"
}

// Rune returns the glyph used for ASCII snapshots.
func (s CellState) Rune() rune {
	if s < numCellStates {
		return cellRunes[s]
	}
	return '?'
}

// IsDerived reports whether the state is produced by the simulator rather than
// by seeding or painting.
func (s CellState) IsDerived() bool {
	return s == Residential || s == Commercial || s == Mining
}

// AllCellStates lists every state in enumeration order.
func AllCellStates() []CellState {
	out := make([]CellState, 0, NumCellStates)
	for s := Empty; s < numCellStates; s++ {
		out = append(out, s)
	}
	return out
}
