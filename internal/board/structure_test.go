package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bananaverify/internal/validation"
)

func mustParse(t *testing.T, spec string) []WordEntry {
	t.Helper()
	entries, errs := Parse(spec)
	require.Empty(t, errs)
	return entries
}

func codes(errs []validation.Error) []validation.Code {
	out := make([]validation.Code, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidateStructure_CleanBoard(t *testing.T) {
	entries := mustParse(t, "SCURRIES H\nNINES[4] @ SCURRIES[0] V")
	assert.Empty(t, ValidateStructure(entries))
}

func TestValidateStructure_TargetNotFound(t *testing.T) {
	entries := mustParse(t, "CAT H\nTAR[0] @ TIGER[2] V")
	errs := ValidateStructure(entries)
	require.Len(t, errs, 1)
	assert.Equal(t, validation.TargetNotFound, errs[0].Code)
	assert.Equal(t, "TAR", errs[0].Word)
	assert.Equal(t, validation.LevelCritical, errs[0].Level)
}

func TestValidateStructure_TargetNotFoundSkipsOtherChecks(t *testing.T) {
	// Same direction and nonsense indices, but the missing target is the
	// only finding for this entry.
	entries := mustParse(t, "CAT H\nTAR[9] @ TIGER[9] H")
	errs := ValidateStructure(entries)
	require.Len(t, errs, 1)
	assert.Equal(t, validation.TargetNotFound, errs[0].Code)
}

func TestValidateStructure_IndexBounds(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []validation.Code
	}{
		{
			name: "target index out of bounds",
			spec: "CAT H\nTAR[0] @ CAT[5] V",
			want: []validation.Code{validation.TargetIndexOOB},
		},
		{
			name: "word index out of bounds",
			spec: "CAT H\nTAR[7] @ CAT[2] V",
			want: []validation.Code{validation.WordIndexOOB},
		},
		{
			name: "both out of bounds reported together",
			spec: "CAT H\nTAR[7] @ CAT[5] V",
			want: []validation.Code{validation.TargetIndexOOB, validation.WordIndexOOB},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStructure(mustParse(t, tt.spec))
			assert.Equal(t, tt.want, codes(errs))
		})
	}
}

func TestValidateStructure_LetterMismatch(t *testing.T) {
	entries := mustParse(t, "CAT H\nDOG[0] @ CAT[0] V")
	errs := ValidateStructure(entries)
	require.Len(t, errs, 1)
	assert.Equal(t, validation.LetterMismatch, errs[0].Code)
	assert.Equal(t, "DOG", errs[0].Word)
	assert.Contains(t, errs[0].Message, `"D"`)
	assert.Contains(t, errs[0].Message, `"C"`)
}

func TestValidateStructure_NoMismatchWhenIndexOOB(t *testing.T) {
	// An out-of-bounds index makes the letter comparison meaningless, so
	// only the bounds error is reported.
	errs := ValidateStructure(mustParse(t, "CAT H\nDOG[0] @ CAT[5] V"))
	assert.Equal(t, []validation.Code{validation.TargetIndexOOB}, codes(errs))
}

func TestValidateStructure_SameDirection(t *testing.T) {
	entries := mustParse(t, "CAT H\nTAR[0] @ CAT[2] H")
	errs := ValidateStructure(entries)
	require.Len(t, errs, 1)
	assert.Equal(t, validation.SameDirection, errs[0].Code)
}

func TestValidateStructure_MismatchAndSameDirectionBothFire(t *testing.T) {
	errs := ValidateStructure(mustParse(t, "CAT H\nDOG[0] @ CAT[0] H"))
	assert.Equal(t,
		[]validation.Code{validation.LetterMismatch, validation.SameDirection},
		codes(errs))
}

func TestValidateStructure_BrokenEntryStillRegisters(t *testing.T) {
	// NINES has a letter mismatch but later entries may still target it.
	spec := "SCURRIES H\nNINES[0] @ SCURRIES[1] V\nTAR[2] @ NINES[1] H"
	errs := ValidateStructure(mustParse(t, spec))
	want := []validation.Code{validation.LetterMismatch, validation.LetterMismatch}
	assert.Equal(t, want, codes(errs))
}

func TestValidateStructure_MostRecentTargetWins(t *testing.T) {
	// AT is declared twice, first horizontal then vertical. The final
	// placement targets AT horizontally: against the older horizontal AT
	// that would be SAME_DIRECTION, against the most recent vertical AT
	// it is clean.
	spec := "CAT H\nTA[1] @ CAT[1] V\nAT[1] @ TA[0] H\nAT[0] @ CAT[1] V\nTAR[1] @ AT[0] H"
	errs := ValidateStructure(mustParse(t, spec))
	assert.Empty(t, errs)
}
