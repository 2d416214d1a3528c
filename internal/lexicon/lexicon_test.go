package lexicon

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ContainsExactlyInput(t *testing.T) {
	lex, err := Build([]string{"CAT", "CATS", "CAR", "CARD", "DOG"})
	require.NoError(t, err)
	assert.Equal(t, 5, lex.Len())

	for _, w := range []string{"CAT", "CATS", "CAR", "CARD", "DOG"} {
		assert.True(t, lex.Contains(w), "expected %s to be present", w)
	}
	for _, w := range []string{"CA", "CATSS", "C", "DO", "ARD", ""} {
		assert.False(t, lex.Contains(w), "expected %s to be absent", w)
	}
}

func TestBuild_CaseInsensitive(t *testing.T) {
	lex, err := Build([]string{"hello", "World"})
	require.NoError(t, err)

	assert.True(t, lex.Contains("HELLO"))
	assert.True(t, lex.Contains("hello"))
	assert.True(t, lex.Contains("HeLLo"))
	assert.True(t, lex.Contains("world"))
	assert.False(t, lex.Contains("hell o"))
	assert.False(t, lex.Contains("héllo"))
}

func TestBuild_RejectsNonAlpha(t *testing.T) {
	_, err := Build([]string{"OK", "NOT-OK"})
	assert.Error(t, err)

	_, err = Build([]string{"WORD1"})
	assert.Error(t, err)
}

func TestBuild_DeduplicatesAndTrims(t *testing.T) {
	lex, err := Build([]string{" CAT ", "CAT", "cat", "", "DOG"})
	require.NoError(t, err)
	assert.Equal(t, 2, lex.Len())
}

func TestBuild_SuffixSharing(t *testing.T) {
	// Words with a fully shared suffix should produce fewer records than
	// a plain trie would: RUNNING/JUMPING/WALKING share -ING states.
	shared, err := Build([]string{"RUNNING", "JUMPING", "WALKING"})
	require.NoError(t, err)
	disjoint, err := Build([]string{"RUNNINA", "JUMPINB", "WALKINC"})
	require.NoError(t, err)

	assert.Less(t, shared.Stats().Records, disjoint.Stats().Records)
}

func TestLoad_PlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(plain, []byte("ALPHA\nBETA\n\nGAMMA\n"), 0o644))

	packed := filepath.Join(dir, "words.txt.gz")
	f, err := os.Create(packed)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("ALPHA\nBETA\nGAMMA\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	for _, path := range []string{plain, packed} {
		lex, err := Load(path)
		require.NoError(t, err, "load %s", path)
		assert.Equal(t, 3, lex.Len())
		assert.True(t, lex.Contains("beta"))
		assert.False(t, lex.Contains("DELTA"))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestDefault_EmbeddedDictionary(t *testing.T) {
	lex := Default()
	require.NotNil(t, lex)
	assert.Same(t, lex, Default(), "Default must memoize")

	assert.Greater(t, lex.Len(), 5000)

	for _, w := range []string{"CAT", "TAR", "DOG", "SCURRIES", "NINES", "AT", "TA", "QI", "ZA"} {
		assert.True(t, lex.Contains(w), "expected %s in embedded dictionary", w)
	}
	for _, w := range []string{"XQZJW", "AAAA", "ZZZZZ", "HJKL"} {
		assert.False(t, lex.Contains(w), "did not expect %s in embedded dictionary", w)
	}
}

func TestStats_Footprint(t *testing.T) {
	s := Default().Stats()
	assert.Equal(t, s.Records*4, s.Bytes)
	assert.Less(t, s.Bytes, 1<<20, "packed dictionary must stay under a megabyte")
}

func TestContains_NilSafe(t *testing.T) {
	var lex *Lexicon
	assert.False(t, lex.Contains("CAT"))
}
