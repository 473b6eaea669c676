// Package hunk manipulates line-numbered change hunks before they are rendered or applied.
//
// Representation: A Hunk replaces the inclusive 1-based line range [OldStart, OldEnd] of an "old" text with [NewStart, NewEnd] of a "new" text, and carries the
// new lines in NewContent. Optional context describes the unchanged lines just outside the hunk:
//   - PreviousLine: the unchanged line immediately before OldStart/NewStart.
//   - NextLine: the unchanged line immediately after OldEnd/NewEnd.
//   - NewlineAddedAtEnd: the hunk sits at end of file and a trailing newline was synthesized there.
//
// Invariants:
//   - start <= end+1 in both numbering spaces (start == end+1 is an empty range: a pure insertion on the old side, a pure deletion on the new side).
//   - len(NewContent) == NewEnd - NewStart + 1.
//   - PreviousLine/NextLine are outside the hunk; they never describe NewContent.
//
// Operations are pure: they never mutate their inputs and always return freshly built hunks.
//   - ShiftUp / ShiftDown absorb one line of context into the hunk, or report that no shift is possible.
//   - MergeAdjacent collapses runs of hunks that touch in both numbering spaces.
//
// Validation is the caller's job. Validate and ValidateSequence are provided for callers that accept hunks from untrusted sources; the operations themselves do not
// validate.
package hunk
