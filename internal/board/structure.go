package board

import "bananaverify/internal/validation"

// ValidateStructure checks every non-root entry against the words declared
// before it: the target must exist, both intersection indices must be in
// bounds, the shared letters must match, and the entry must run
// perpendicular to its target. Errors accumulate; an entry with errors still
// registers as a placement target so later entries and the grid builder can
// report whatever remains coherent.
//
// A target name matching several earlier entries resolves to the most
// recently declared one.
func ValidateStructure(entries []WordEntry) []validation.Error {
	var errs []validation.Error
	if len(entries) == 0 {
		return errs
	}

	placed := map[string]WordEntry{entries[0].Word: entries[0]}

	for _, e := range entries[1:] {
		target, ok := placed[e.Target]
		if !ok {
			errs = append(errs, validation.NewError(validation.TargetNotFound,
				"target word %q not placed before %q", e.Target, e.Word).
				WithWord(e.Word).WithLine(e.Line))
			placed[e.Word] = e
			continue
		}

		wordOK := e.WordIdx < len(e.Word)
		targetOK := e.TargetIdx < len(e.Target)
		if !targetOK {
			errs = append(errs, validation.NewError(validation.TargetIndexOOB,
				"target index %d out of bounds for %q (length %d)", e.TargetIdx, e.Target, len(e.Target)).
				WithWord(e.Word).WithLine(e.Line))
		}
		if !wordOK {
			errs = append(errs, validation.NewError(validation.WordIndexOOB,
				"word index %d out of bounds for %q (length %d)", e.WordIdx, e.Word, len(e.Word)).
				WithWord(e.Word).WithLine(e.Line))
		}
		if wordOK && targetOK && e.Word[e.WordIdx] != e.Target[e.TargetIdx] {
			errs = append(errs, validation.NewError(validation.LetterMismatch,
				"letter mismatch: %s[%d]=%q vs %s[%d]=%q; %s must share the letter %q at position %d",
				e.Word, e.WordIdx, string(e.Word[e.WordIdx]),
				e.Target, e.TargetIdx, string(e.Target[e.TargetIdx]),
				e.Word, string(e.Target[e.TargetIdx]), e.WordIdx).
				WithWord(e.Word).WithLine(e.Line))
		}
		if e.Direction == target.Direction {
			errs = append(errs, validation.NewError(validation.SameDirection,
				"%q must be perpendicular to %q (both are %s)", e.Word, e.Target, e.Direction).
				WithWord(e.Word).WithLine(e.Line))
		}

		placed[e.Word] = e
	}
	return errs
}
