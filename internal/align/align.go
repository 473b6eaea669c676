// Package align grows hunks toward "natural" boundary lines (blank lines, closing braces) so that diffs read better, then merges hunks that grew into contact.
//
// It is the caller the hunk package expects: it owns the new text, supplies PreviousLine/NextLine before every shift, and never lets a hunk absorb a line owned
// by a neighbouring hunk.
package align

import (
	"regexp"

	"github.com/codalotl/hunkalign/internal/hunk"
)

// DefaultAnchorPatterns match blank lines and lines made only of closing brackets (optionally followed by ',' or ';').
var DefaultAnchorPatterns = []string{
	`^\s*$`,
	`^\s*[})\]]+[,;]?\s*$`,
}

// DefaultAnchors returns DefaultAnchorPatterns, compiled.
func DefaultAnchors() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(DefaultAnchorPatterns))
	for _, p := range DefaultAnchorPatterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// Options controls how far and in which directions hunks grow.
type Options struct {
	Up       bool             // Grow toward the start of the file.
	Down     bool             // Grow toward the end of the file.
	MaxSteps int              // Max lines absorbed per direction, per hunk. <= 0 disables growing.
	Anchors  []*regexp.Regexp // A line matching any of these is a boundary a hunk stops at.
}

// IsAnchor reports whether line matches any of o.Anchors.
func (o Options) IsAnchor(line string) bool {
	for _, re := range o.Anchors {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// Align is ExpandAll followed by hunk.MergeAdjacent: hunks that grew into contact are collapsed into one.
func Align(hunks []hunk.Hunk, lines []string, opts Options) []hunk.Hunk {
	return hunk.MergeAdjacent(ExpandAll(hunks, lines, opts))
}

// ExpandAll expands each hunk with Expand, keeping it clear of its neighbours: a hunk may grow up to, but not into, the (already expanded) previous hunk and
// the next hunk. hunks must be ordered and non-overlapping, and lines is the new text the hunks were computed against (see diff.Lines).
func ExpandAll(hunks []hunk.Hunk, lines []string, opts Options) []hunk.Hunk {
	expanded := make([]hunk.Hunk, 0, len(hunks))
	for i, h := range hunks {
		lo := 0
		if len(expanded) > 0 {
			lo = expanded[len(expanded)-1].NewEnd
		}
		hi := len(lines) + 1
		if i+1 < len(hunks) {
			hi = hunks[i+1].NewStart
		}
		expanded = append(expanded, Expand(h, lines, lo, hi, opts))
	}
	return expanded
}

// Expand grows h one line at a time with hunk.ShiftUp and hunk.ShiftDown until the line just outside the hunk is an anchor, opts.MaxSteps is reached, or no
// context is available. Context is refreshed from lines before every shift and once more at the end, so the returned hunk carries correct PreviousLine/NextLine.
//
// Only new lines strictly between lo and hi count as context: lo is the last line owned by the previous hunk (0 if none), and hi is the first line owned by the
// next hunk (len(lines)+1 if none).
//
// The returned hunk keeps h's NewlineAddedAtEnd only as the shift operations allow: growing down clears it.
func Expand(h hunk.Hunk, lines []string, lo, hi int, opts Options) hunk.Hunk {
	h = withContext(h, lines, lo, hi)
	if opts.MaxSteps <= 0 {
		return h
	}

	if opts.Up {
		for step := 0; step < opts.MaxSteps; step++ {
			if h.PreviousLine == nil || opts.IsAnchor(*h.PreviousLine) {
				break
			}
			shifted, ok := hunk.ShiftUp(h)
			if !ok {
				break
			}
			h = withContext(shifted, lines, lo, hi)
		}
	}

	if opts.Down {
		for step := 0; step < opts.MaxSteps; step++ {
			if h.NextLine == nil || opts.IsAnchor(*h.NextLine) {
				break
			}
			shifted, ok := hunk.ShiftDown(h)
			if !ok {
				break
			}
			h = withContext(shifted, lines, lo, hi)
		}
	}

	return h
}

// withContext returns h with PreviousLine/NextLine read from lines, limited to the open interval (lo, hi).
func withContext(h hunk.Hunk, lines []string, lo, hi int) hunk.Hunk {
	var prev, next *string
	if n := h.NewStart - 1; n > lo && n >= 1 && n <= len(lines) {
		prev = hunk.Line(lines[n-1])
	}
	if n := h.NewEnd + 1; n < hi && n >= 1 && n <= len(lines) {
		next = hunk.Line(lines[n-1])
	}
	return h.WithContext(prev, next)
}
