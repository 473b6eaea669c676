package hunk

import "fmt"

// Hunk is one contiguous region of change between an old and a new version of a line-numbered text.
//
// Hunk is a value type. Copying a Hunk shares NewContent and the context pointers, so callers that keep a Hunk around should treat those as read-only.
type Hunk struct {
	OldStart int `json:"oldStart"` // First replaced line in the old text (1-based).
	OldEnd   int `json:"oldEnd"`   // Last replaced line in the old text (inclusive); OldStart-1 for a pure insertion.
	NewStart int `json:"newStart"` // First line in the new text (1-based).
	NewEnd   int `json:"newEnd"`   // Last line in the new text (inclusive); NewStart-1 for a pure deletion.

	NewContent []string `json:"newContent"` // New lines for [NewStart, NewEnd], without EOLs.

	PreviousLine *string `json:"previousLine,omitempty"` // Unchanged line just before the hunk, if known.
	NextLine     *string `json:"nextLine,omitempty"`     // Unchanged line just after the hunk, if known.

	NewlineAddedAtEnd bool `json:"newlineAddedAtEnd,omitempty"` // A trailing newline was synthesized at end of file.
}

// Line returns a pointer to a copy of s. It is a convenience for filling PreviousLine and NextLine.
func Line(s string) *string {
	return &s
}

// String returns a compact description of h's ranges, ex: "old 3-4 new 3-5".
func (h Hunk) String() string {
	return fmt.Sprintf("old %d-%d new %d-%d", h.OldStart, h.OldEnd, h.NewStart, h.NewEnd)
}

// WithContext returns a copy of h with PreviousLine and NextLine replaced by prev and next (nil clears).
func (h Hunk) WithContext(prev, next *string) Hunk {
	h.PreviousLine = cloneLine(prev)
	h.NextLine = cloneLine(next)
	return h
}

func cloneLine(s *string) *string {
	if s == nil {
		return nil
	}
	return Line(*s)
}

// cloneContent returns a copy of lines with room for extra more elements.
func cloneContent(lines []string, extra int) []string {
	out := make([]string, 0, len(lines)+extra)
	return append(out, lines...)
}
