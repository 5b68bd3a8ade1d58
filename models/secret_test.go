package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_OrderAndOverwrite(t *testing.T) {
	st := NewStore()
	st.Set("B_KEY", "2")
	st.Set("A_KEY", "1")
	st.Set("C_KEY", "3")

	assert.Equal(t, []string{"B_KEY", "A_KEY", "C_KEY"}, st.Keys())

	// Overwriting keeps the original position.
	st.Set("A_KEY", "updated")
	assert.Equal(t, []string{"B_KEY", "A_KEY", "C_KEY"}, st.Keys())

	v, ok := st.Get("A_KEY")
	require.True(t, ok)
	assert.Equal(t, "updated", v)
	assert.Equal(t, 3, st.Len())
}

func TestStore_Delete(t *testing.T) {
	st := NewStore()
	st.Set("A_KEY", "1")
	st.Set("B_KEY", "2")

	assert.True(t, st.Delete("A_KEY"))
	assert.False(t, st.Delete("A_KEY"))
	assert.Equal(t, []string{"B_KEY"}, st.Keys())

	_, ok := st.Get("A_KEY")
	assert.False(t, ok)
}

func TestStore_JSONRoundTripPreservesOrder(t *testing.T) {
	st := NewStore()
	st.Set("Z_KEY", "last alphabetically, first inserted")
	st.Set("A_KEY", "value with \"quotes\" and\nnewline")
	st.Set("M_KEY", "")

	data, err := json.Marshal(st)
	require.NoError(t, err)

	got := NewStore()
	require.NoError(t, json.Unmarshal(data, got))

	assert.Equal(t, st.Keys(), got.Keys())
	assert.Equal(t, st.Snapshot(), got.Snapshot())
}

func TestStore_EmptySerializesToArray(t *testing.T) {
	data, err := json.Marshal(NewStore())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	got := NewStore()
	require.NoError(t, json.Unmarshal(data, got))
	assert.Equal(t, 0, got.Len())
}
