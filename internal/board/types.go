// Package board parses placement specifications and resolves them into a
// sparse letter grid. A specification declares a root word and a sequence of
// placements, each anchored to an earlier word at a shared letter:
//
//	SCURRIES H
//	NINES[4] @ SCURRIES[0] V
//
// Parsing, structural validation and grid construction each collect
// validation.Error values and keep going, so one broken placement does not
// hide problems elsewhere on the board.
package board

// Direction is a word's orientation on the grid.
type Direction string

const (
	Horizontal Direction = "H" // left to right
	Vertical   Direction = "V" // top to bottom
)

// WordEntry is one declared placement. The root entry has no target; every
// other entry intersects an earlier word: Word[WordIdx] sits on top of
// Target[TargetIdx].
type WordEntry struct {
	Word      string
	Direction Direction
	Target    string
	TargetIdx int
	WordIdx   int
	Line      int // 1-based line in the specification, for error reports
}

// Root reports whether the entry is the board's root word.
func (e WordEntry) Root() bool { return e.Target == "" }

// Position is a word's resolved placement: the coordinate of its first
// letter and its orientation.
type Position struct {
	X, Y int
	Dir  Direction
}

// Point is a single grid coordinate. X grows rightward, Y downward.
type Point struct {
	X, Y int
}
