package lexicon

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// The packed DAWG uses one uint32 record per edge:
//
//	bit 31     last-edge flag: set when this is NOT the final edge of a node
//	bits 24-30 edge letter ('A'-'Z', or eow for end-of-word)
//	bits 0-23  record index of the child node's first edge
//
// A node is a run of consecutive records. Lookup walks the word one letter
// at a time and then requires an end-of-word edge, so membership costs one
// node scan per letter regardless of dictionary size.
const (
	moreFlag   = 1 << 31
	linkMask   = 0x00ffffff
	letterMask = 0x7f
	eow        = '$'
)

// ErrTooLarge is returned when a word list overflows the 24-bit link space.
var ErrTooLarge = errors.New("lexicon: word list too large for packed encoding")

type trieNode struct {
	next  [26]*trieNode
	final bool

	// set during minimization and layout
	id     int
	offset int
}

// build constructs the minimized packed edge array for the given words.
// Words must already be uppercase A-Z only; order and duplicates are fine.
func build(words []string) ([]uint32, int, error) {
	uniq := make([]string, len(words))
	copy(uniq, words)
	sort.Strings(uniq)

	root := &trieNode{}
	count := 0
	prev := ""
	for _, w := range uniq {
		if w == "" || w == prev {
			continue
		}
		prev = w
		n := root
		for i := 0; i < len(w); i++ {
			c := w[i] - 'A'
			if n.next[c] == nil {
				n.next[c] = &trieNode{}
			}
			n = n.next[c]
		}
		n.final = true
		count++
	}
	if count == 0 {
		return nil, 0, nil
	}

	// Suffix sharing: hash-cons equivalent subtrees bottom-up so that, e.g.,
	// the tails of SCURRIES and CARRIES collapse into one chain.
	registry := make(map[string]*trieNode)
	nextID := 0
	var minimize func(n *trieNode) *trieNode
	minimize = func(n *trieNode) *trieNode {
		var sig strings.Builder
		if n.final {
			sig.WriteByte('!')
		}
		for c := 0; c < 26; c++ {
			if n.next[c] == nil {
				continue
			}
			n.next[c] = minimize(n.next[c])
			fmt.Fprintf(&sig, "%c%d", 'A'+c, n.next[c].id)
		}
		key := sig.String()
		if m, ok := registry[key]; ok {
			return m
		}
		n.id = nextID
		nextID++
		registry[key] = n
		return n
	}
	root = minimize(root)

	// Lay nodes out breadth-first, root's edges at record 0, then pack.
	order := []*trieNode{root}
	seen := map[*trieNode]bool{root: true}
	offset := 0
	for i := 0; i < len(order); i++ {
		n := order[i]
		n.offset = offset
		if n.final {
			offset++
		}
		for c := 0; c < 26; c++ {
			if child := n.next[c]; child != nil {
				offset++
				if !seen[child] {
					seen[child] = true
					order = append(order, child)
				}
			}
		}
	}
	if offset > linkMask {
		return nil, 0, ErrTooLarge
	}

	records := make([]uint32, 0, offset)
	for _, n := range order {
		start := len(records)
		if n.final {
			records = append(records, uint32(eow)<<24)
		}
		for c := 0; c < 26; c++ {
			if child := n.next[c]; child != nil {
				records = append(records, uint32('A'+c)<<24|uint32(child.offset))
			}
		}
		// every record of the node except the last carries the more flag
		for i := start; i < len(records)-1; i++ {
			records[i] |= moreFlag
		}
	}
	return records, count, nil
}

// child scans the node starting at idx for an edge labeled c, returning the
// child's record index.
func child(records []uint32, idx int, c byte) (int, bool) {
	for {
		rec := records[idx]
		if byte(rec>>24&letterMask) == c {
			return int(rec & linkMask), true
		}
		if rec&moreFlag == 0 {
			return 0, false
		}
		idx++
	}
}
