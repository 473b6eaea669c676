package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/codalotl/hunkalign/internal/hunk"
)

const (
	formatJSON = "json"
	formatText = "text"
)

// shiftResult is one element of the `shift` command's output.
type shiftResult struct {
	Shifted bool      `json:"shifted"`
	Hunk    hunk.Hunk `json:"hunk"`
}

func validateFormat(format string) error {
	switch format {
	case formatJSON, formatText:
		return nil
	}
	return usageError{err: fmt.Errorf("unknown --format %q (want %q or %q)", format, formatJSON, formatText)}
}

// readHunks decodes a JSON array of hunks from path, or from stdin if path is "-".
func readHunks(stdin io.Reader, path string) ([]hunk.Hunk, error) {
	r := stdin
	name := "stdin"
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		name = path
	}

	var hunks []hunk.Hunk
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&hunks); err != nil {
		return nil, fmt.Errorf("decode hunks from %s: %w", name, err)
	}
	return hunks, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeHunks(w io.Writer, format string, noColor bool, hunks []hunk.Hunk) error {
	if format == formatText {
		return writeText(w, noColor, hunks)
	}
	if hunks == nil {
		hunks = []hunk.Hunk{}
	}
	return writeJSON(w, hunks)
}

// writeText writes a human-oriented listing of hunks. It is not a unified diff: old lines aren't known, so only the new side is shown, with "+ " marking hunk
// content and "  " marking context. If noColor is false, color.NoColor (terminal detection) still applies.
func writeText(w io.Writer, noColor bool, hunks []hunk.Hunk) error {
	header := color.New(color.FgCyan, color.Bold)
	added := color.New(color.FgGreen)
	note := color.New(color.Faint)
	if noColor {
		for _, c := range []*color.Color{header, added, note} {
			c.DisableColor()
		}
	}

	for i, h := range hunks {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := header.Fprintf(w, "@@ old %d-%d new %d-%d @@\n", h.OldStart, h.OldEnd, h.NewStart, h.NewEnd); err != nil {
			return err
		}
		if h.PreviousLine != nil {
			if _, err := fmt.Fprintf(w, "  %s\n", *h.PreviousLine); err != nil {
				return err
			}
		}
		for _, line := range h.NewContent {
			if _, err := added.Fprintf(w, "+ %s\n", line); err != nil {
				return err
			}
		}
		if h.NextLine != nil {
			if _, err := fmt.Fprintf(w, "  %s\n", *h.NextLine); err != nil {
				return err
			}
		}
		if h.NewlineAddedAtEnd {
			if _, err := note.Fprintln(w, "(eof newline added)"); err != nil {
				return err
			}
		}
	}
	return nil
}
