// Package verify runs the multi-stage board verification pipeline: parse,
// structural checks, grid construction, dictionary checks, tile accounting.
// Every stage reports findings as validation.Error values and the pipeline
// continues past local problems, so a single call returns the complete
// picture. The one exception is a parse failure, which halts everything
// downstream: there is no coherent structure to analyze.
package verify

import (
	"bananaverify/internal/board"
	"bananaverify/internal/lexicon"
	"bananaverify/internal/logging"
	"bananaverify/internal/validation"
)

// Verifier runs the pipeline against a fixed lexicon. Verifiers are
// stateless apart from the read-only lexicon and are safe for concurrent
// use.
type Verifier struct {
	lex *lexicon.Lexicon
}

// New returns a Verifier backed by lex, or by the embedded default
// dictionary when lex is nil.
func New(lex *lexicon.Lexicon) *Verifier {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Verifier{lex: lex}
}

// Verify validates a board specification against the game rules and, when
// hand is non-empty, against the player's tile multiset. The result is a
// pure function of the inputs: re-verifying the same specification and hand
// yields an identical result.
func (v *Verifier) Verify(spec, hand string) validation.Result {
	entries, parseErrs := board.Parse(spec)
	words := declaredWords(entries)

	if len(parseErrs) > 0 {
		logging.L(logging.Parse).Debugw("parse failed, skipping downstream stages",
			"errors", len(parseErrs))
		return validation.Result{Valid: false, Errors: parseErrs, Words: words}
	}

	errs := board.ValidateStructure(entries)

	// Entries with structural errors keep their computed position so their
	// children can still place, but their own letters never reach the grid
	// and they skip the word stage. Reporting a grid conflict or a missing
	// run for a word already known to be misplaced is noise.
	broken := make(map[string]bool, len(errs))
	for _, e := range errs {
		if e.Word != "" {
			broken[e.Word] = true
		}
	}
	placeable := entries[:0:0]
	for _, e := range entries {
		if !broken[e.Word] {
			placeable = append(placeable, e)
		}
	}

	positions := board.ComputePositions(entries)
	grid, gridErrs := board.BuildGrid(placeable, positions)
	errs = append(errs, gridErrs...)

	wordErrs, warns := v.validateBoardWords(entries, grid, broken)
	errs = append(errs, wordErrs...)

	if hand != "" {
		tileErrs, tileWarns := checkTiles(grid, hand)
		errs = append(errs, tileErrs...)
		warns = append(warns, tileWarns...)
	}

	logging.L(logging.Verify).Debugw("pipeline complete",
		"entries", len(entries),
		"tiles", len(grid),
		"errors", len(errs),
		"warnings", len(warns))

	return validation.Result{
		Valid:       len(errs) == 0,
		Errors:      errs,
		Warnings:    warns,
		Words:       words,
		Grid:        grid.Render(),
		TilesUsed:   len(grid),
		LettersUsed: grid.Letters(),
	}
}

// CheckWord queries the verifier's lexicon directly. Case-insensitive.
func (v *Verifier) CheckWord(word string) bool {
	return v.lex.Contains(word)
}

func declaredWords(entries []board.WordEntry) []string {
	if len(entries) == 0 {
		return nil
	}
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	return words
}
