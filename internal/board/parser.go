package board

import (
	"regexp"
	"strconv"
	"strings"

	"bananaverify/internal/validation"
)

var (
	wrapperRe = regexp.MustCompile(`(?s)<board>(.*?)</board>`)
	rootRe    = regexp.MustCompile(`(?i)^([A-Z]+)\s+([HV])$`)
	lineRe    = regexp.MustCompile(`(?i)^([A-Z]+)\[(\d+)\]\s*@\s*([A-Z]+)\[(\d+)\]\s+([HV])$`)
)

// stripWrapper extracts the content between <board> tags if present,
// otherwise returns the input unchanged. The orchestration layer embeds the
// specification inside the wrapper when prompting.
func stripWrapper(spec string) string {
	if m := wrapperRe.FindStringSubmatch(spec); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(spec)
}

// Parse turns a raw board specification into ordered word entries. All
// structurally unparseable lines after a valid root are collected rather
// than stopping at the first; an invalid root aborts immediately since no
// later line can anchor to anything.
func Parse(spec string) ([]WordEntry, []validation.Error) {
	var lines []string
	for _, l := range strings.Split(stripWrapper(spec), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	if len(lines) == 0 {
		return nil, []validation.Error{
			validation.NewError(validation.EmptyBoard, "board specification is empty"),
		}
	}

	m := rootRe.FindStringSubmatch(lines[0])
	if m == nil {
		return nil, []validation.Error{
			validation.NewError(validation.InvalidRoot, "invalid root line format: %q", lines[0]).WithLine(1),
		}
	}

	entries := []WordEntry{{
		Word:      strings.ToUpper(m[1]),
		Direction: Direction(strings.ToUpper(m[2])),
		Line:      1,
	}}

	var errs []validation.Error
	for i, line := range lines[1:] {
		lineNo := i + 2
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			errs = append(errs,
				validation.NewError(validation.InvalidLine, "invalid line format: %q", line).WithLine(lineNo))
			continue
		}
		wordIdx, err1 := strconv.Atoi(m[2])
		targetIdx, err2 := strconv.Atoi(m[4])
		if err1 != nil || err2 != nil {
			// only reachable on absurdly long digit runs
			errs = append(errs,
				validation.NewError(validation.InvalidLine, "invalid index in line: %q", line).WithLine(lineNo))
			continue
		}
		entries = append(entries, WordEntry{
			Word:      strings.ToUpper(m[1]),
			Direction: Direction(strings.ToUpper(m[5])),
			Target:    strings.ToUpper(m[3]),
			TargetIdx: targetIdx,
			WordIdx:   wordIdx,
			Line:      lineNo,
		})
	}
	return entries, errs
}
