// Package plan parses coach-maintained training plan sheets into the
// week/session/exercise hierarchy. The sheets carry no row-type column:
// exercise titles and set prescriptions are interleaved in the same session
// column, so cell content shape is the only classification signal.
package plan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CellKind describes what a session-column cell denotes.
type CellKind int

const (
	KindTitle   CellKind = iota // exercise name, e.g. "Squat"
	KindSetSpec                 // set prescription, e.g. "80%x5" or "5"
)

// Classify decides whether a cell holds an exercise title or a set spec.
// A cell is a set spec when its trimmed text contains '%' or starts with a
// decimal digit; everything else, including the empty string, is a title.
// Downstream data depends on this exact two-rule heuristic — do not extend it.
func Classify(cell string) CellKind {
	s := strings.TrimSpace(cell)
	if strings.ContainsRune(s, '%') {
		return KindSetSpec
	}
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsDigit(r) {
		return KindSetSpec
	}
	return KindTitle
}
