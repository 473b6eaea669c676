package hunk

// Adjacent reports whether b starts on the line right after a ends, in both the old and the new numbering. Touching in only one space is not enough: that
// happens when edits between a and b desynchronize the two numberings.
func Adjacent(a, b Hunk) bool {
	return b.OldStart == a.OldEnd+1 && b.NewStart == a.NewEnd+1
}

// MergeAdjacent collapses every run of adjacent hunks (see Adjacent) into a single hunk and returns the resulting sequence, preserving order. Hunks separated
// by at least one unchanged line pass through unchanged.
//
// A merged hunk spans from the first member's starts to the last member's ends, with the members' NewContent concatenated in order. PreviousLine comes from
// the first member; NextLine and NewlineAddedAtEnd come from the last member. Context and EOF flags of inner members are dropped.
//
// hunks must be ordered by position and must not overlap; MergeAdjacent does not check this (see ValidateSequence). An empty input yields an empty, non-nil
// result.
func MergeAdjacent(hunks []Hunk) []Hunk {
	out := make([]Hunk, 0, len(hunks))
	if len(hunks) == 0 {
		return out
	}

	cur := hunks[0]
	merged := false // whether cur owns its NewContent (so appending can't clobber an input)
	for _, next := range hunks[1:] {
		if !Adjacent(cur, next) {
			out = append(out, cur)
			cur = next
			merged = false
			continue
		}
		if !merged {
			cur.NewContent = cloneContent(cur.NewContent, len(next.NewContent))
			merged = true
		}
		cur = mergePair(cur, next)
	}
	out = append(out, cur)

	return out
}

// mergePair folds b into a. a.NewContent must be owned by the caller, since b's content is appended to it.
func mergePair(a, b Hunk) Hunk {
	return Hunk{
		OldStart:          a.OldStart,
		OldEnd:            b.OldEnd,
		NewStart:          a.NewStart,
		NewEnd:            b.NewEnd,
		NewContent:        append(a.NewContent, b.NewContent...),
		PreviousLine:      a.PreviousLine,
		NextLine:          b.NextLine,
		NewlineAddedAtEnd: b.NewlineAddedAtEnd,
	}
}
