package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDSlice(t *testing.T) {
	ids := IDSlice{4, 1, 3}.Copy()
	assert.Equal(t, IDSlice{1, 3, 4}, ids)
	assert.True(t, ids.Contains(3))
	assert.False(t, ids.Contains(2))

	idx, ok := ids.Search(4)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	assert.NoError(t, NewIDSlice(5).Valid())
	assert.ErrorIs(t, IDSlice{0, 1}.Valid(), ErrZeroID)
	assert.Error(t, IDSlice{1, 2, 1}.Valid())
}

func TestIDFromString(t *testing.T) {
	id, err := IDFromString("42")
	require.NoError(t, err)
	assert.Equal(t, ID(42), id)
	assert.Equal(t, "42", id.String())
	assert.Equal(t, []byte{0, 42}, id.Bytes())

	_, err = IDFromString("0")
	assert.ErrorIs(t, err, ErrZeroID)
	_, err = IDFromString("70000")
	assert.Error(t, err)
}
