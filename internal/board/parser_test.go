package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bananaverify/internal/validation"
)

func TestParse_RootOnly(t *testing.T) {
	entries, errs := Parse("SCURRIES H")
	require.Empty(t, errs)
	require.Len(t, entries, 1)
	assert.Equal(t, "SCURRIES", entries[0].Word)
	assert.Equal(t, Horizontal, entries[0].Direction)
	assert.True(t, entries[0].Root())
	assert.Equal(t, 1, entries[0].Line)
}

func TestParse_Placements(t *testing.T) {
	spec := "SCURRIES H\nNINES[4] @ SCURRIES[0] V\nTAR[0] @ NINES[2] H"
	entries, errs := Parse(spec)
	require.Empty(t, errs)
	require.Len(t, entries, 3)

	second := entries[1]
	assert.Equal(t, "NINES", second.Word)
	assert.Equal(t, Vertical, second.Direction)
	assert.Equal(t, "SCURRIES", second.Target)
	assert.Equal(t, 4, second.WordIdx)
	assert.Equal(t, 0, second.TargetIdx)
	assert.Equal(t, 2, second.Line)
	assert.False(t, second.Root())
}

func TestParse_WrapperAndWhitespace(t *testing.T) {
	spec := "prefix chatter\n<board>\n  CAT H  \n\n  TAR[0] @ CAT[2] V\n</board>\ntrailing"
	entries, errs := Parse(spec)
	require.Empty(t, errs)
	require.Len(t, entries, 2)
	assert.Equal(t, "CAT", entries[0].Word)
	assert.Equal(t, "TAR", entries[1].Word)
}

func TestParse_CaseNormalization(t *testing.T) {
	entries, errs := Parse("cat h\ntar[0] @ cat[2] v")
	require.Empty(t, errs)
	require.Len(t, entries, 2)
	assert.Equal(t, "CAT", entries[0].Word)
	assert.Equal(t, Horizontal, entries[0].Direction)
	assert.Equal(t, "TAR", entries[1].Word)
	assert.Equal(t, "CAT", entries[1].Target)
	assert.Equal(t, Vertical, entries[1].Direction)
}

func TestParse_EmptyBoard(t *testing.T) {
	for _, spec := range []string{"", "   \n\t\n", "<board>\n</board>"} {
		entries, errs := Parse(spec)
		assert.Nil(t, entries)
		require.Len(t, errs, 1, "spec %q", spec)
		assert.Equal(t, validation.EmptyBoard, errs[0].Code)
		assert.Equal(t, validation.LevelFatal, errs[0].Level)
	}
}

func TestParse_InvalidRootAborts(t *testing.T) {
	tests := []string{
		"CAT X",
		"CAT",
		"CAT3 H",
		"[0] @ CAT[2] V",
		"CAT H extra",
	}
	for _, spec := range tests {
		entries, errs := Parse(spec + "\nTAR[0] @ CAT[2] V")
		assert.Nil(t, entries, "root %q", spec)
		require.Len(t, errs, 1, "root %q", spec)
		assert.Equal(t, validation.InvalidRoot, errs[0].Code)
		assert.Equal(t, 1, errs[0].Line)
	}
}

func TestParse_InvalidLinesCollected(t *testing.T) {
	spec := "CAT H\n" +
		"TAR[0] @ CAT[2] V\n" + // good
		"DOG[x] @ CAT[0] V\n" + // non-numeric index
		"COG 0 @ CAT[1] V\n" + // missing brackets
		"RAT[0] @ CAT[0]\n" // missing direction
	entries, errs := Parse(spec)

	require.Len(t, entries, 2, "good lines still produce entries")
	require.Len(t, errs, 3)
	for i, e := range errs {
		assert.Equal(t, validation.InvalidLine, e.Code)
		assert.Equal(t, i+3, e.Line)
	}
}
