package validation

import "fmt"

// Error is a single validation finding. Immutable once created; stages
// append them to lists and continue rather than aborting.
type Error struct {
	Code    Code   `json:"code"`
	Level   int    `json:"cascade_level"`
	Message string `json:"message"`
	Word    string `json:"word,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// NewError builds an Error for code with a formatted message. The cascade
// level is derived from the code so the two can never disagree.
func NewError(code Code, format string, args ...any) Error {
	return Error{
		Code:    code,
		Level:   CascadeLevel(code),
		Message: fmt.Sprintf(format, args...),
	}
}

// WithWord returns a copy of the error attributed to a word.
func (e Error) WithWord(word string) Error {
	e.Word = word
	return e
}

// WithLine returns a copy of the error attributed to a 1-based input line.
func (e Error) WithLine(line int) Error {
	e.Line = line
	return e
}

// Result is the complete outcome of one verification call.
type Result struct {
	Valid       bool     `json:"valid"`
	Errors      []Error  `json:"errors"`
	Warnings    []Error  `json:"warnings"`
	Words       []string `json:"words"`
	Grid        string   `json:"grid,omitempty"`
	TilesUsed   int      `json:"tiles_used"`
	LettersUsed []string `json:"letters_used,omitempty"`
}
