// Package diff computes line-numbered hunks between an "old" and a "new" text.
//
// Compute runs a line diff and emits one hunk.Hunk per maximal run of changed lines. Hunks are separated by at least one unchanged line, so their PreviousLine
// and NextLine context is always an unchanged line that exists in both texts.
//
// Getting hunks:
//
//	hunks := diff.Compute(oldText, newText)
//	hunks = align.Align(hunks, diff.Lines(newText), opts)
//
// Newlines: '\n' is the line separator, and NewContent/PreviousLine/NextLine never include it. A trailing "\r" is kept as line text. A missing final newline is
// not a change; when the new text lacks one, the hunk reaching its end is marked NewlineAddedAtEnd.
package diff
