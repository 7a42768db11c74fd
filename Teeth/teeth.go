package Teeth

import (
	"regexp"
	"sort"
	"strings"
)

// Selection is a set of selected tooth identifiers, e.g. "UL3" for the
// third tooth of the upper-left quadrant.
type Selection map[string]struct{}

// Parse splits a stored teeth-location string into a selection set.
// Tokens are trimmed and empties dropped, but otherwise accepted
// verbatim; shape validation is left to Valid.
func Parse(serialized string) Selection {
	selection := Selection{}
	for _, token := range strings.Split(serialized, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		selection[token] = struct{}{}
	}
	return selection
}

// Toggle returns a new selection with tooth removed if present,
// added otherwise. The receiver is not modified.
func (sel Selection) Toggle(tooth string) Selection {
	next := make(Selection, len(sel)+1)
	for t := range sel {
		next[t] = struct{}{}
	}
	if _, ok := next[tooth]; ok {
		delete(next, tooth)
	} else {
		next[tooth] = struct{}{}
	}
	return next
}

func (sel Selection) Contains(tooth string) bool {
	_, ok := sel[tooth]
	return ok
}

// Serialize renders the selection in canonical form: lexicographically
// sorted, joined with ", ".
func (sel Selection) Serialize() string {
	teeth := make([]string, 0, len(sel))
	for t := range sel {
		teeth = append(teeth, t)
	}
	sort.Strings(teeth)
	return strings.Join(teeth, ", ")
}

var toothPattern = regexp.MustCompile(`^(UL|UR|LL|LR)[1-8]$`)

// Valid reports whether tooth matches the quadrant notation. Parse
// does not enforce this; stored selections may carry other tokens.
func Valid(tooth string) bool {
	return toothPattern.MatchString(tooth)
}

type Quadrant struct {
	Name      string `json:"name"`
	Abbr      string `json:"abbr"`
	Positions []int  `json:"positions"`
}

// Layout returns the four quadrants in display order. Left-side
// quadrants show positions 8 down to 1, right-side 1 up to 8. Display
// order only; serialization stays lexicographic.
func Layout() []Quadrant {
	return []Quadrant{
		{Name: "Upper Left", Abbr: "UL", Positions: descending()},
		{Name: "Upper Right", Abbr: "UR", Positions: ascending()},
		{Name: "Lower Left", Abbr: "LL", Positions: descending()},
		{Name: "Lower Right", Abbr: "LR", Positions: ascending()},
	}
}

func ascending() []int {
	positions := make([]int, 0, 8)
	for i := 1; i <= 8; i++ {
		positions = append(positions, i)
	}
	return positions
}

func descending() []int {
	positions := make([]int, 0, 8)
	for i := 8; i >= 1; i-- {
		positions = append(positions, i)
	}
	return positions
}
