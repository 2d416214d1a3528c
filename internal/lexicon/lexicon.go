// Package lexicon answers word-membership queries against a fixed dictionary.
// The dictionary is compiled once into a packed DAWG (prefix- and
// suffix-sharing automaton) and is immutable afterwards, so a single Lexicon
// may be shared by any number of concurrent verification calls.
package lexicon

import (
	"bufio"
	"bytes"
	"compress/gzip"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"bananaverify/internal/logging"
)

// Embedded curated word list (uppercase, one word per line). Deployments
// that need the full tournament list point verifier.dictionary_path at an
// external file instead; see config.
//
//go:embed data/words.txt.gz
var embeddedWords []byte

// Lexicon is a read-only word-membership oracle.
type Lexicon struct {
	records []uint32
	words   int
}

// Stats describes a built lexicon.
type Stats struct {
	Words   int // distinct words accepted
	Records int // packed DAWG edge records
	Bytes   int // memory footprint of the record array
}

// Build constructs a Lexicon from a word list. Input is normalized to
// uppercase; entries containing anything outside A-Z are rejected.
func Build(words []string) (*Lexicon, error) {
	clean := make([]string, 0, len(words))
	for _, w := range words {
		u := strings.ToUpper(strings.TrimSpace(w))
		if u == "" {
			continue
		}
		if !isUpperAlpha(u) {
			return nil, fmt.Errorf("lexicon: invalid word %q", w)
		}
		clean = append(clean, u)
	}
	records, count, err := build(clean)
	if err != nil {
		return nil, err
	}
	return &Lexicon{records: records, words: count}, nil
}

// Load reads a word list file, optionally gzip-compressed, one word per line.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return read(r)
}

// Contains reports whether word is in the dictionary. Matching is
// case-insensitive and exact; anything outside A-Z makes the answer false.
func (l *Lexicon) Contains(word string) bool {
	if l == nil || len(l.records) == 0 || word == "" {
		return false
	}
	idx := 0
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			return false
		}
		next, ok := child(l.records, idx, c)
		if !ok {
			return false
		}
		idx = next
	}
	_, ok := child(l.records, idx, eow)
	return ok
}

// Len returns the number of distinct words accepted.
func (l *Lexicon) Len() int { return l.words }

// Stats returns size information for the built automaton.
func (l *Lexicon) Stats() Stats {
	return Stats{Words: l.words, Records: len(l.records), Bytes: 4 * len(l.records)}
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the process-wide lexicon built from the embedded word
// list. Construction happens once, on first use; the result is shared.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		zr, err := gzip.NewReader(bytes.NewReader(embeddedWords))
		if err != nil {
			panic(fmt.Sprintf("lexicon: embedded word list corrupt: %v", err))
		}
		defer zr.Close()
		defaultLex, err = read(zr)
		if err != nil {
			panic(fmt.Sprintf("lexicon: embedded word list corrupt: %v", err))
		}
		s := defaultLex.Stats()
		logging.L(logging.Boot).Debugw("embedded dictionary ready",
			"words", s.Words, "records", s.Records, "bytes", s.Bytes)
	})
	return defaultLex
}

func read(r io.Reader) (*Lexicon, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			words = append(words, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read word list: %w", err)
	}
	return Build(words)
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
