package board

import (
	"fmt"
	"sort"
	"strings"

	"bananaverify/internal/logging"
	"bananaverify/internal/validation"
)

// Grid is the sparse letter grid: occupied cells only.
type Grid map[Point]byte

// ComputePositions resolves each word's starting coordinate by walking the
// placement chain in declaration order. The root anchors at the origin;
// every child derives its start from its target's coordinate at the shared
// letter. Entries whose target never resolved are skipped (the structural
// validator has already reported them). Duplicate word texts resolve to the
// most recent declaration, mirroring target resolution.
func ComputePositions(entries []WordEntry) map[string]Position {
	positions := make(map[string]Position, len(entries))
	if len(entries) == 0 {
		return positions
	}
	root := entries[0]
	positions[root.Word] = Position{X: 0, Y: 0, Dir: root.Direction}

	for _, e := range entries[1:] {
		tp, ok := positions[e.Target]
		if !ok {
			continue
		}
		sharedX, sharedY := tp.X, tp.Y
		if tp.Dir == Horizontal {
			sharedX += e.TargetIdx
		} else {
			sharedY += e.TargetIdx
		}
		start := Position{X: sharedX, Y: sharedY, Dir: e.Direction}
		if e.Direction == Horizontal {
			start.X -= e.WordIdx
		} else {
			start.Y -= e.WordIdx
		}
		positions[e.Word] = start
	}
	return positions
}

// BuildGrid writes every positioned word into the grid in declaration order.
// The first letter written to a cell wins; a later word claiming the cell
// with a different letter records a conflict attributed to that later word,
// keeping both attribution and rendering deterministic.
func BuildGrid(entries []WordEntry, positions map[string]Position) (Grid, []validation.Error) {
	grid := make(Grid)
	var errs []validation.Error

	for _, e := range entries {
		pos, ok := positions[e.Word]
		if !ok {
			continue
		}
		for i := 0; i < len(e.Word); i++ {
			cell := Point{X: pos.X, Y: pos.Y}
			if pos.Dir == Horizontal {
				cell.X += i
			} else {
				cell.Y += i
			}
			letter := e.Word[i]
			existing, occupied := grid[cell]
			if occupied && existing != letter {
				errs = append(errs, validation.NewError(validation.GridConflict,
					"cell conflict at (%d,%d): existing %q vs new %q from %q",
					cell.X, cell.Y, string(existing), string(letter), e.Word).
					WithWord(e.Word).WithLine(e.Line))
				continue
			}
			grid[cell] = letter
		}
	}
	if len(errs) > 0 {
		logging.L(logging.Grid).Debugw("grid built with conflicts",
			"cells", len(grid), "conflicts", len(errs))
	}
	return grid, errs
}

// bounds returns the inclusive bounding box of the occupied cells.
func (g Grid) bounds() (minX, minY, maxX, maxY int) {
	first := true
	for p := range g {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

// Render draws the grid as text, one row per line, '.' for empty cells.
// The output is independent of where the root happened to be anchored.
func (g Grid) Render() string {
	if len(g) == 0 {
		return ""
	}
	minX, minY, maxX, maxY := g.bounds()
	var b strings.Builder
	for y := minY; y <= maxY; y++ {
		if y > minY {
			b.WriteByte('\n')
		}
		for x := minX; x <= maxX; x++ {
			if c, ok := g[Point{X: x, Y: y}]; ok {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Runs returns every maximal horizontal and vertical run of two or more
// contiguous letters, keyed by direction. These are the words actually
// formed on the grid, declared or not.
func (g Grid) Runs() map[Direction][]string {
	runs := map[Direction][]string{}
	if len(g) == 0 {
		return runs
	}
	minX, minY, maxX, maxY := g.bounds()

	for y := minY; y <= maxY; y++ {
		var run []byte
		for x := minX; x <= maxX+1; x++ { // one past the edge flushes the last run
			if c, ok := g[Point{X: x, Y: y}]; ok {
				run = append(run, c)
				continue
			}
			if len(run) >= 2 {
				runs[Horizontal] = append(runs[Horizontal], string(run))
			}
			run = run[:0]
		}
	}
	for x := minX; x <= maxX; x++ {
		var run []byte
		for y := minY; y <= maxY+1; y++ {
			if c, ok := g[Point{X: x, Y: y}]; ok {
				run = append(run, c)
				continue
			}
			if len(run) >= 2 {
				runs[Vertical] = append(runs[Vertical], string(run))
			}
			run = run[:0]
		}
	}
	return runs
}

// Words returns the distinct run texts in both directions, sorted.
func (g Grid) Words() []string {
	seen := map[string]bool{}
	for _, list := range g.Runs() {
		for _, w := range list {
			seen[w] = true
		}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Letters returns every placed letter as a sorted slice, one element per
// occupied cell.
func (g Grid) Letters() []string {
	letters := make([]string, 0, len(g))
	for _, c := range g {
		letters = append(letters, string(c))
	}
	sort.Strings(letters)
	return letters
}

// Visualize parses a specification and renders its grid, failing if the
// specification does not parse or the grid has conflicts. Meant for quick
// inspection, not verification; use verify.Verify for the full pipeline.
func Visualize(spec string) (string, error) {
	entries, parseErrs := Parse(spec)
	if len(parseErrs) > 0 {
		return "", fmt.Errorf("board: %s", parseErrs[0].Message)
	}
	positions := ComputePositions(entries)
	grid, gridErrs := BuildGrid(entries, positions)
	if len(gridErrs) > 0 {
		return "", fmt.Errorf("board: %s", gridErrs[0].Message)
	}
	return grid.Render(), nil
}
