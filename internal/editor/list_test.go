package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"last to first", 3, 0, []string{"d", "a", "b", "c"}},
		{"backward", 2, 1, []string{"a", "c", "b", "d"}},
		{"same index", 1, 1, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []string{"a", "b", "c", "d"}
			got, err := Move(items, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"a", "b", "c", "d"}, items, "input must not change")
		})
	}
}

func TestMove_OutOfRange(t *testing.T) {
	items := []string{"a", "b"}
	got, err := Move(items, 0, 5)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Equal(t, items, got)

	_, err = Move(items, -1, 0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

type entry struct{ ID, Label string }

func entryID(e entry) string { return e.ID }

func TestMoveByID(t *testing.T) {
	items := []entry{{"n1", "Home"}, {"n2", "Services"}, {"n3", "About"}}

	got, err := MoveByID(items, entryID, "n3", "n1")
	require.NoError(t, err)
	assert.Equal(t, []string{"n3", "n1", "n2"}, []string{got[0].ID, got[1].ID, got[2].ID})

	got, err = MoveByID(items, entryID, "n2", "n2")
	require.NoError(t, err)
	assert.Equal(t, items, got)

	_, err = MoveByID(items, entryID, "missing", "n1")
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestInsertRemoveReplace(t *testing.T) {
	items := []string{"a", "c"}

	got, err := Insert(items, 1, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	got, err = Insert(items, 2, "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d"}, got)

	_, err = Insert(items, 3, "x")
	assert.Error(t, err)

	got, err = Remove(items, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, got)

	got, err = Replace(items, 1, "z")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "z"}, got)

	assert.Equal(t, []string{"a", "c"}, items)
}
