package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/codalotl/hunkalign/internal/hunk"
)

// lineEOL is the line separator. A trailing "\r" is kept as part of a line's text.
const lineEOL = "\n"

// Compute diffs oldText to newText line by line and returns one hunk per maximal run of changed lines, in order.
//
// Numbering follows the hunk package: a pure insertion after old line k has OldStart=k+1, OldEnd=k; a pure deletion has NewEnd=NewStart-1 and no content.
// NewContent holds new lines without EOLs. PreviousLine/NextLine are set to the unchanged neighbouring lines when they exist.
//
// If newText doesn't end with "\n", a newline is synthesized for its last line, and the hunk reaching the end of the new text gets NewlineAddedAtEnd. A missing
// final newline on either side is not itself a change, so texts differing only in that respect yield no hunks.
func Compute(oldText, newText string) []hunk.Hunk {
	if oldText == newText {
		return nil
	}

	newMissingEOL := newText != "" && !strings.HasSuffix(newText, lineEOL)
	oldNorm := withEOL(oldText)
	newNorm := withEOL(newText)

	dmp := diffmatchpatch.New()
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldNorm, newNorm)
	lineDiffs := dmp.DiffMainRunes(rOld, rNew, false)
	lineDiffs = dmp.DiffCleanupMerge(lineDiffs)

	// Decode rune-string back to the original lines using the lineArray mapping.
	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, lineArray[idx])
			}
		}
		return out
	}

	var hunks []hunk.Hunk
	var oldLine, newLine int // lines consumed so far on each side
	var dels int
	var ins []string

	flush := func() {
		if dels == 0 && len(ins) == 0 {
			return
		}
		content := make([]string, 0, len(ins))
		for _, l := range ins {
			content = append(content, strings.TrimSuffix(l, lineEOL))
		}
		hunks = append(hunks, hunk.Hunk{
			OldStart:   oldLine + 1,
			OldEnd:     oldLine + dels,
			NewStart:   newLine + 1,
			NewEnd:     newLine + len(ins),
			NewContent: content,
		})
		oldLine += dels
		newLine += len(ins)
		dels = 0
		ins = nil
	}

	for _, d := range lineDiffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			n := len(decode(d.Text))
			oldLine += n
			newLine += n
		case diffmatchpatch.DiffDelete:
			dels += len(decode(d.Text))
		case diffmatchpatch.DiffInsert:
			ins = append(ins, decode(d.Text)...)
		}
	}
	flush()

	newLines := Lines(newText)
	for i := range hunks {
		h := &hunks[i]
		if h.NewStart >= 2 {
			h.PreviousLine = hunk.Line(newLines[h.NewStart-2])
		}
		if h.NewEnd < len(newLines) {
			h.NextLine = hunk.Line(newLines[h.NewEnd])
		}
		if newMissingEOL && h.NewEnd == len(newLines) {
			h.NewlineAddedAtEnd = true
		}
	}

	return hunks
}

// Lines splits text into lines without their "\n". A trailing "\n" does not produce an extra empty line, and "" yields nil.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, lineEOL), lineEOL)
}

func withEOL(text string) string {
	if text == "" || strings.HasSuffix(text, lineEOL) {
		return text
	}
	return text + lineEOL
}
