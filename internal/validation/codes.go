// Package validation defines the error model shared by every stage of the
// board verification pipeline: the closed set of error codes, their cascade
// levels, the Error and Result values, and the presentation-time cascading
// filter. Stages report problems as Error values collected into lists; the
// pipeline never aborts on a finding.
package validation

// Code identifies one category of board validation failure.
type Code string

const (
	// Parse stage (cascade level 0 - fatal, masks everything downstream).
	EmptyBoard  Code = "EMPTY_BOARD"  // specification has no content lines
	InvalidRoot Code = "INVALID_ROOT" // first line is not "WORD DIRECTION"
	InvalidLine Code = "INVALID_LINE" // placement line fails the grammar

	// Structure stage (cascade level 1).
	TargetNotFound Code = "TARGET_NOT_FOUND" // referenced word not declared earlier
	TargetIndexOOB Code = "TARGET_INDEX_OOB" // target index past end of target word
	WordIndexOOB   Code = "WORD_INDEX_OOB"   // word index past end of the new word
	LetterMismatch Code = "LETTER_MISMATCH"  // intersection letters differ
	SameDirection  Code = "SAME_DIRECTION"   // word parallel to its target

	// Grid stage (cascade level 2).
	GridConflict Code = "GRID_CONFLICT" // two words claim a cell with different letters

	// Word stage (cascade level 3).
	InvalidWord       Code = "INVALID_WORD"       // declared word fails the lexicon
	AccidentalInvalid Code = "ACCIDENTAL_INVALID" // undeclared run fails the lexicon
	AccidentalValid   Code = "ACCIDENTAL_VALID"   // undeclared run is a real word (warning)

	// Tile stage (cascade level 4).
	TilesNotInHand Code = "TILES_NOT_IN_HAND" // board uses letters the hand does not hold
	TilesUnused    Code = "TILES_UNUSED"      // hand letters left off the board (warning)
)

// Cascade levels, most severe first. A lower level present in the error set
// suppresses higher levels at presentation time (see FilterCascading).
const (
	LevelFatal    = 0 // parse failures
	LevelCritical = 1 // structural failures
	LevelHigh     = 2 // grid conflicts
	LevelMedium   = 3 // word validation
	LevelLow      = 4 // tile accounting
)

// CascadeLevel maps a code to its cascade level. The switch is exhaustive
// over the Code constants so adding a code without a level fails review.
func CascadeLevel(c Code) int {
	switch c {
	case EmptyBoard, InvalidRoot, InvalidLine:
		return LevelFatal
	case TargetNotFound, TargetIndexOOB, WordIndexOOB, LetterMismatch, SameDirection:
		return LevelCritical
	case GridConflict:
		return LevelHigh
	case InvalidWord, AccidentalInvalid, AccidentalValid:
		return LevelMedium
	case TilesNotInHand, TilesUnused:
		return LevelLow
	}
	return LevelLow
}

// IsWarning reports whether a code is advisory only. Warnings are collected
// separately and never affect Result.Valid.
func IsWarning(c Code) bool {
	return c == AccidentalValid || c == TilesUnused
}
