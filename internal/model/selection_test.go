package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionSetToggle(t *testing.T) {
	id := uuid.New()

	s := NewSelectionSet()
	assert.False(t, s.Contains(id))

	s = s.Toggle(id)
	assert.True(t, s.Contains(id))
	assert.Equal(t, 1, s.Len())

	// Toggling twice restores the starting state.
	s = s.Toggle(id)
	assert.False(t, s.Contains(id))
	assert.Equal(t, 0, s.Len())
}

func TestSelectionSetToggleOnNil(t *testing.T) {
	var s SelectionSet
	id := uuid.New()

	s = s.Toggle(id)
	assert.True(t, s.Contains(id))
}

func TestSelectionSetNoDuplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	s := NewSelectionSet(a, a, b)

	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.IDs(), 2)
}

func TestSelectionSetJSONRoundTrip(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	s := NewSelectionSet(a, b)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded SelectionSet
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.True(t, decoded.Contains(a))
	assert.True(t, decoded.Contains(b))
	assert.Equal(t, 2, decoded.Len())
}

func TestSelectionSetScan(t *testing.T) {
	a := uuid.New()
	s := NewSelectionSet(a)

	value, err := s.Value()
	require.NoError(t, err)

	var scanned SelectionSet
	require.NoError(t, scanned.Scan(value))
	assert.True(t, scanned.Contains(a))

	var empty SelectionSet
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, 0, empty.Len())
}
