package hunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftUp(t *testing.T) {
	h := Hunk{
		OldStart:          10,
		OldEnd:            11,
		NewStart:          12,
		NewEnd:            13,
		NewContent:        []string{"b", "c"},
		PreviousLine:      Line("a"),
		NextLine:          Line("d"),
		NewlineAddedAtEnd: true,
	}

	got, ok := ShiftUp(h)
	require.True(t, ok)
	assert.Equal(t, Hunk{
		OldStart:          9,
		OldEnd:            11,
		NewStart:          11,
		NewEnd:            13,
		NewContent:        []string{"a", "b", "c"},
		NewlineAddedAtEnd: true,
	}, got)

	// Input is untouched:
	assert.Equal(t, []string{"b", "c"}, h.NewContent)
	assert.Equal(t, "a", *h.PreviousLine)
	assert.Equal(t, 10, h.OldStart)
}

func TestShiftUp_NoPreviousLine(t *testing.T) {
	tests := []struct {
		name string
		h    Hunk
	}{
		{name: "zero hunk", h: Hunk{}},
		{name: "only next line", h: Hunk{OldStart: 1, OldEnd: 1, NewStart: 1, NewEnd: 1, NewContent: []string{"x"}, NextLine: Line("y")}},
		{name: "eof flag", h: Hunk{OldStart: 1, OldEnd: 0, NewStart: 1, NewEnd: 1, NewContent: []string{"x"}, NewlineAddedAtEnd: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ShiftUp(tc.h)
			assert.False(t, ok)
		})
	}
}

func TestShiftUp_EmptyPreviousLine(t *testing.T) {
	// A blank line is still a line of context.
	h := Hunk{OldStart: 2, OldEnd: 2, NewStart: 2, NewEnd: 2, NewContent: []string{"x"}, PreviousLine: Line("")}

	got, ok := ShiftUp(h)
	require.True(t, ok)
	assert.Equal(t, []string{"", "x"}, got.NewContent)
	assert.Equal(t, 1, got.OldStart)
	assert.Equal(t, 1, got.NewStart)
}

func TestShiftUp_PureDeletion(t *testing.T) {
	// Deleting old line 5; the new side is empty at 5..4.
	h := Hunk{OldStart: 5, OldEnd: 5, NewStart: 5, NewEnd: 4, NewContent: []string{}, PreviousLine: Line("four")}

	got, ok := ShiftUp(h)
	require.True(t, ok)
	assert.Equal(t, 4, got.OldStart)
	assert.Equal(t, 5, got.OldEnd)
	assert.Equal(t, 4, got.NewStart)
	assert.Equal(t, 4, got.NewEnd)
	assert.Equal(t, []string{"four"}, got.NewContent)
	require.NoError(t, Validate(got))
}

func TestShiftDown(t *testing.T) {
	h := Hunk{
		OldStart:     10,
		OldEnd:       11,
		NewStart:     12,
		NewEnd:       13,
		NewContent:   []string{"b", "c"},
		PreviousLine: Line("a"),
		NextLine:     Line("d"),
	}

	got, ok := ShiftDown(h)
	require.True(t, ok)
	assert.Equal(t, Hunk{
		OldStart:   10,
		OldEnd:     12,
		NewStart:   12,
		NewEnd:     14,
		NewContent: []string{"b", "c", "d"},
	}, got)

	assert.Equal(t, []string{"b", "c"}, h.NewContent)
	assert.Equal(t, "d", *h.NextLine)
}

func TestShiftDown_ClearsNewlineAddedAtEnd(t *testing.T) {
	h := Hunk{OldStart: 3, OldEnd: 3, NewStart: 3, NewEnd: 3, NewContent: []string{"x"}, NextLine: Line("y"), NewlineAddedAtEnd: true}

	got, ok := ShiftDown(h)
	require.True(t, ok)
	assert.False(t, got.NewlineAddedAtEnd)
	assert.Nil(t, got.PreviousLine)
	assert.Nil(t, got.NextLine)
	assert.True(t, h.NewlineAddedAtEnd)
}

func TestShiftDown_NoNextLine(t *testing.T) {
	h := Hunk{OldStart: 3, OldEnd: 3, NewStart: 3, NewEnd: 3, NewContent: []string{"x"}, PreviousLine: Line("w")}

	_, ok := ShiftDown(h)
	assert.False(t, ok)
}

func TestShift_DoesNotAliasInputContent(t *testing.T) {
	// Spare capacity in the input must not let the result write into the input's backing array.
	content := make([]string, 1, 8)
	content[0] = "x"
	h := Hunk{OldStart: 3, OldEnd: 3, NewStart: 3, NewEnd: 3, NewContent: content, NextLine: Line("y")}

	down, ok := ShiftDown(h)
	require.True(t, ok)
	down.NewContent[0] = "changed"
	assert.Equal(t, "x", h.NewContent[0])
}

func TestShift_ConsumesContext(t *testing.T) {
	// Each shift consumes its context, so a second shift needs fresh context from the caller.
	h := Hunk{OldStart: 3, OldEnd: 3, NewStart: 3, NewEnd: 3, NewContent: []string{"x"}, PreviousLine: Line("w"), NextLine: Line("y")}

	up, ok := ShiftUp(h)
	require.True(t, ok)
	_, ok = ShiftUp(up)
	assert.False(t, ok)
	_, ok = ShiftDown(up)
	assert.False(t, ok)

	up = up.WithContext(Line("v"), Line("y"))
	up2, ok := ShiftUp(up)
	require.True(t, ok)
	assert.Equal(t, []string{"v", "w", "x"}, up2.NewContent)
	assert.Equal(t, 1, up2.OldStart)
}
