package verify

import (
	"bananaverify/internal/board"
	"bananaverify/internal/validation"
)

// ValidateWords cross-checks the declared word list against the runs
// actually formed on the grid. Declared words failing the lexicon are
// errors; undeclared runs are accidental words, errors when they fail the
// lexicon and warnings when they happen to be real words.
func (v *Verifier) ValidateWords(declared, gridWords []string) (errs, warns []validation.Error) {
	intended := make(map[string]bool, len(declared))
	flagged := make(map[string]bool)

	for _, w := range declared {
		intended[w] = true
		if flagged[w] {
			continue
		}
		if !v.lex.Contains(w) {
			flagged[w] = true
			errs = append(errs, validation.NewError(validation.InvalidWord,
				"%q is not a valid dictionary word", w).WithWord(w))
		}
	}

	for _, w := range gridWords {
		if intended[w] {
			continue
		}
		if v.lex.Contains(w) {
			warns = append(warns, validation.NewError(validation.AccidentalValid,
				"accidental word %q formed on grid (valid, but not declared)", w).WithWord(w))
		} else {
			errs = append(errs, validation.NewError(validation.AccidentalInvalid,
				"accidental word %q on grid is not a valid dictionary word", w).WithWord(w))
		}
	}
	return errs, warns
}

// validateBoardWords is the grid-aware word stage. Beyond ValidateWords it
// checks that each declared multi-letter word appears verbatim as a run in
// its declared direction; a word swallowed by a longer run (or displaced
// entirely) is as wrong as a misspelled one. Words in skip carry a
// structural error already and are left alone, though they still count as
// intended so their runs are never flagged as accidental.
func (v *Verifier) validateBoardWords(entries []board.WordEntry, grid board.Grid, skip map[string]bool) (errs, warns []validation.Error) {
	intended := make(map[string]bool, len(entries))
	flagged := make(map[string]bool)
	for _, e := range entries {
		intended[e.Word] = true
	}

	runs := grid.Runs()
	present := map[board.Direction]map[string]bool{
		board.Horizontal: {},
		board.Vertical:   {},
	}
	for dir, list := range runs {
		for _, w := range list {
			present[dir][w] = true
		}
	}

	for _, e := range entries {
		if skip[e.Word] || flagged[e.Word] {
			continue
		}
		if !v.lex.Contains(e.Word) {
			flagged[e.Word] = true
			errs = append(errs, validation.NewError(validation.InvalidWord,
				"%q is not a valid dictionary word", e.Word).WithWord(e.Word).WithLine(e.Line))
			continue
		}
		if len(e.Word) >= 2 && !present[e.Direction][e.Word] {
			flagged[e.Word] = true
			errs = append(errs, validation.NewError(validation.InvalidWord,
				"%q does not appear on the grid as a %s run", e.Word, e.Direction).
				WithWord(e.Word).WithLine(e.Line))
		}
	}

	for _, w := range grid.Words() {
		if intended[w] {
			continue
		}
		if v.lex.Contains(w) {
			warns = append(warns, validation.NewError(validation.AccidentalValid,
				"accidental word %q formed on grid (valid, but not declared)", w).WithWord(w))
		} else {
			errs = append(errs, validation.NewError(validation.AccidentalInvalid,
				"accidental word %q on grid is not a valid dictionary word", w).WithWord(w))
		}
	}
	return errs, warns
}
