package hunk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		h       Hunk
		wantErr bool
	}{
		{name: "replacement", h: single(3, "x")},
		{name: "pure insertion", h: Hunk{OldStart: 4, OldEnd: 3, NewStart: 4, NewEnd: 4, NewContent: []string{"x"}}},
		{name: "pure deletion", h: Hunk{OldStart: 4, OldEnd: 5, NewStart: 4, NewEnd: 3}},
		{name: "zero start", h: Hunk{OldStart: 0, OldEnd: 0, NewStart: 1, NewEnd: 1, NewContent: []string{"x"}}, wantErr: true},
		{name: "inverted old range", h: Hunk{OldStart: 5, OldEnd: 3, NewStart: 5, NewEnd: 5, NewContent: []string{"x"}}, wantErr: true},
		{name: "inverted new range", h: Hunk{OldStart: 5, OldEnd: 5, NewStart: 5, NewEnd: 3}, wantErr: true},
		{name: "empty on both sides", h: Hunk{OldStart: 5, OldEnd: 4, NewStart: 5, NewEnd: 4}, wantErr: true},
		{name: "content too short", h: Hunk{OldStart: 1, OldEnd: 1, NewStart: 1, NewEnd: 2, NewContent: []string{"x"}}, wantErr: true},
		{name: "content too long", h: Hunk{OldStart: 1, OldEnd: 1, NewStart: 1, NewEnd: 1, NewContent: []string{"x", "y"}}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.h)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsInvalidHunk(err))
		})
	}
}

func TestValidateSequence(t *testing.T) {
	require.NoError(t, ValidateSequence(nil))
	require.NoError(t, ValidateSequence([]Hunk{single(1, "a"), single(2, "b"), single(9, "i")}))

	err := ValidateSequence([]Hunk{single(5, "e"), single(2, "b")})
	require.Error(t, err)
	assert.True(t, IsInvalidHunk(err))
	assert.Contains(t, err.Error(), "hunk[1]")

	err = ValidateSequence([]Hunk{
		{OldStart: 1, OldEnd: 3, NewStart: 1, NewEnd: 3, NewContent: []string{"a", "b", "c"}},
		single(3, "c"),
	})
	require.Error(t, err)
	assert.True(t, IsInvalidHunk(err))

	err = ValidateSequence([]Hunk{single(1, "a"), {OldStart: 2, OldEnd: 2, NewStart: 2, NewEnd: 3}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hunk[1]")
}

func TestValidateSequence_RejectsEmptyHunks(t *testing.T) {
	empty := Hunk{OldStart: 5, OldEnd: 4, NewStart: 5, NewEnd: 4, NewContent: []string{}}

	err := ValidateSequence([]Hunk{empty, empty})
	require.Error(t, err)
	assert.True(t, IsInvalidHunk(err))
	assert.Contains(t, err.Error(), "hunk[0]")
}

func TestIsInvalidHunk(t *testing.T) {
	assert.False(t, IsInvalidHunk(nil))
	assert.False(t, IsInvalidHunk(errors.New("other")))
}
