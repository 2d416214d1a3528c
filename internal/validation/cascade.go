package validation

import "bananaverify/internal/logging"

// DefaultMaxShown bounds how many errors a single round of feedback carries.
// Past experience with model-facing feedback: more than a handful of errors
// per turn drowns the fix-the-first-thing signal.
const DefaultMaxShown = 5

// FilterCascading reduces a full error set to the subset worth presenting,
// applying level-based suppression in strict priority order:
//
//	level 0 present: show only level-0 errors (nothing below parses anyway)
//	level 1 present: show level 1 plus INVALID_WORD and TILES_NOT_IN_HAND
//	level 2 present: show level 2 plus all word- and tile-level errors
//	otherwise:       show everything
//
// The shown list keeps declaration order and is truncated to maxShown
// entries (maxShown <= 0 selects DefaultMaxShown); the number of suppressed
// errors is returned separately. Warnings always pass through in full and
// are never capped. The input slices are not mutated.
func FilterCascading(errors, warnings []Error, maxShown int) (shown, warns []Error, suppressed int) {
	if maxShown <= 0 {
		maxShown = DefaultMaxShown
	}
	warns = append([]Error(nil), warnings...)
	if len(errors) == 0 {
		return nil, warns, 0
	}

	present := make(map[int]bool, len(errors))
	for _, e := range errors {
		present[e.Level] = true
	}

	var keep func(Error) bool
	switch {
	case present[LevelFatal]:
		keep = func(e Error) bool { return e.Level == LevelFatal }
	case present[LevelCritical]:
		keep = func(e Error) bool {
			return e.Level == LevelCritical || e.Code == InvalidWord || e.Code == TilesNotInHand
		}
	case present[LevelHigh]:
		keep = func(e Error) bool { return e.Level >= LevelHigh }
	default:
		keep = func(Error) bool { return true }
	}

	for _, e := range errors {
		if keep(e) {
			shown = append(shown, e)
		}
	}
	if len(shown) > maxShown {
		suppressed = len(shown) - maxShown
		shown = shown[:maxShown]
	}
	if hidden := len(errors) - len(shown) - suppressed; hidden > 0 || suppressed > 0 {
		logging.L(logging.Cascade).Debugw("cascade filter applied",
			"total", len(errors), "shown", len(shown),
			"cascade_hidden", hidden, "capped", suppressed)
	}
	return shown, warns, suppressed
}
