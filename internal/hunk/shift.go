package hunk

// ShiftUp moves h's start boundary up one line by absorbing h.PreviousLine into the hunk. It returns false if h has no PreviousLine (ex: the hunk already starts
// at the top of the file); that is an expected outcome, not an error.
//
// The result starts one line earlier in both numbering spaces, has PreviousLine prepended to NewContent, and carries no PreviousLine or NextLine: the caller
// must supply fresh context if it wants to shift again. NewlineAddedAtEnd is kept, since moving the start never changes whether the hunk reaches end of file.
func ShiftUp(h Hunk) (Hunk, bool) {
	if h.PreviousLine == nil {
		return Hunk{}, false
	}

	content := make([]string, 0, len(h.NewContent)+1)
	content = append(content, *h.PreviousLine)
	content = append(content, h.NewContent...)

	return Hunk{
		OldStart:          h.OldStart - 1,
		OldEnd:            h.OldEnd,
		NewStart:          h.NewStart - 1,
		NewEnd:            h.NewEnd,
		NewContent:        content,
		NewlineAddedAtEnd: h.NewlineAddedAtEnd,
	}, true
}

// ShiftDown moves h's end boundary down one line by absorbing h.NextLine into the hunk. It returns false if h has no NextLine.
//
// The result ends one line later in both numbering spaces, has NextLine appended to NewContent, and carries no PreviousLine or NextLine. NewlineAddedAtEnd is
// always cleared: a line now exists after the original hunk, so any newline synthesized at end of file no longer belongs to it.
func ShiftDown(h Hunk) (Hunk, bool) {
	if h.NextLine == nil {
		return Hunk{}, false
	}

	content := cloneContent(h.NewContent, 1)
	content = append(content, *h.NextLine)

	return Hunk{
		OldStart:   h.OldStart,
		OldEnd:     h.OldEnd + 1,
		NewStart:   h.NewStart,
		NewEnd:     h.NewEnd + 1,
		NewContent: content,
	}, true
}
