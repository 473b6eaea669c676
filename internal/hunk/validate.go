package hunk

import (
	"errors"
	"fmt"
)

var errInvalidHunk = errors.New("invalid hunk")

// IsInvalidHunk reports whether err (as returned from Validate or ValidateSequence) indicates a malformed hunk or hunk sequence.
func IsInvalidHunk(err error) bool {
	return errors.Is(err, errInvalidHunk)
}

func invalidHunkError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(errInvalidHunk, err)
}

// Validate checks h's range and content-length invariants and returns an error on the first violation. A hunk whose old and new ranges are both empty changes
// nothing and is rejected.
func Validate(h Hunk) error {
	return invalidHunkError(validate(h))
}

func validate(h Hunk) error {
	if h.OldStart < 1 {
		return fmt.Errorf("%v: oldStart must be >= 1", h)
	}
	if h.NewStart < 1 {
		return fmt.Errorf("%v: newStart must be >= 1", h)
	}
	if h.OldEnd < h.OldStart-1 {
		return fmt.Errorf("%v: oldEnd must be >= oldStart-1", h)
	}
	if h.NewEnd < h.NewStart-1 {
		return fmt.Errorf("%v: newEnd must be >= newStart-1", h)
	}
	if h.OldEnd == h.OldStart-1 && h.NewEnd == h.NewStart-1 {
		return fmt.Errorf("%v: empty on both sides", h)
	}
	if want := h.NewEnd - h.NewStart + 1; len(h.NewContent) != want {
		return fmt.Errorf("%v: newContent has %d lines, want %d", h, len(h.NewContent), want)
	}
	return nil
}

// ValidateSequence checks every hunk with Validate, then checks that hunks are ordered by position and do not overlap in either numbering space.
func ValidateSequence(hunks []Hunk) error {
	for i, h := range hunks {
		if err := validate(h); err != nil {
			return invalidHunkError(fmt.Errorf("hunk[%d]: %w", i, err))
		}
		if i == 0 {
			continue
		}
		prev := hunks[i-1]
		if h.OldStart <= prev.OldEnd || h.NewStart <= prev.NewEnd {
			return invalidHunkError(fmt.Errorf("hunk[%d] (%v) overlaps or precedes hunk[%d] (%v)", i, h, i-1, prev))
		}
	}
	return nil
}
