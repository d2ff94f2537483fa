// Package region finds nested delimited regions in plain text.
//
// It is a small stand-in for an editor's syntax-aware region detection, good enough
// to feed the painter from the command line.
package region

import (
	"strings"

	"github.com/nestshade/nestshade/util"
)

// Region is a delimited span. Start and End are the 1-based lines holding the
// opening and closing delimiters; Level is its nesting depth, outermost being 1.
type Region struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Level int `json:"level"`
}

// Delimiters is an opening/closing token pair.
type Delimiters struct {
	Open  string
	Close string
}

// Braces matches curly braces.
var Braces = Delimiters{Open: "{", Close: "}"}

type opening struct {
	line  int
	level int
}

// Scan matches delimiters across lines. Unmatched closers are ignored and unclosed
// openers are dropped. Regions are returned in the order they close.
func Scan(lines []string, d Delimiters) []Region {
	if d.Open == "" || d.Close == "" || d.Open == d.Close {
		return nil
	}

	var (
		regions []Region
		stack   util.Stack[opening]
	)

	for i, line := range lines {
		for rest := line; rest != ""; {
			o, c := strings.Index(rest, d.Open), strings.Index(rest, d.Close)

			switch {
			case o >= 0 && (c < 0 || o < c):
				stack.Push(opening{line: i + 1, level: stack.Len() + 1})
				rest = rest[o+len(d.Open):]
			case c >= 0:
				if stack.Len() > 0 {
					open := stack.Pop()
					regions = append(regions, Region{Start: open.line, End: i + 1, Level: open.level})
				}
				rest = rest[c+len(d.Close):]
			default:
				rest = ""
			}
		}
	}

	return regions
}

// Multiline keeps only regions spanning more than one line.
func Multiline(regions []Region) []Region {
	out := make([]Region, 0, len(regions))
	for _, r := range regions {
		if r.End > r.Start {
			out = append(out, r)
		}
	}
	return out
}
