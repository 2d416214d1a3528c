package verify

import (
	"fmt"
	"strings"

	"bananaverify/internal/board"
	"bananaverify/internal/validation"
)

// checkTiles compares the multiset of letters placed on the grid against
// the player's hand. Letters used beyond what the hand holds are an error;
// hand letters left unplaced are a warning only. Non-letter characters in
// the hand string (separators, whitespace) are ignored.
func checkTiles(grid board.Grid, hand string) (errs, warns []validation.Error) {
	var have, used [26]int
	for _, r := range strings.ToUpper(hand) {
		if r >= 'A' && r <= 'Z' {
			have[r-'A']++
		}
	}
	for _, c := range grid {
		used[c-'A']++
	}

	var deficit, leftover []string
	for i := 0; i < 26; i++ {
		letter := string(rune('A' + i))
		if used[i] > have[i] {
			deficit = append(deficit, fmt.Sprintf("%s (used %d, have %d)", letter, used[i], have[i]))
		}
		if have[i] > used[i] {
			leftover = append(leftover, fmt.Sprintf("%s x%d", letter, have[i]-used[i]))
		}
	}

	if len(deficit) > 0 {
		errs = append(errs, validation.NewError(validation.TilesNotInHand,
			"board uses tiles not in hand: %s", strings.Join(deficit, ", ")))
	}
	if len(leftover) > 0 {
		warns = append(warns, validation.NewError(validation.TilesUnused,
			"unused hand tiles: %s", strings.Join(leftover, ", ")))
	}
	return errs, warns
}
