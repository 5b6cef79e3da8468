package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumeClearsFlash(t *testing.T) {
	s := NewState()
	s.Flash.Success = "The list has been created."

	f := s.Consume()
	assert.Equal(t, "The list has been created.", f.Success)
	assert.True(t, s.Flash.Empty())
	assert.True(t, s.Consume().Empty())
}

func TestDecodedStateIsIndependent(t *testing.T) {
	s := NewState()
	l, err := s.Lists.Create("Groceries")
	require.NoError(t, err)
	_, err = l.AddTodo("Milk")
	require.NoError(t, err)

	data, err := Encode(s)
	require.NoError(t, err)

	copy1, err := Decode(data)
	require.NoError(t, err)
	copy2, err := Decode(data)
	require.NoError(t, err)

	found, err := copy1.Lists.Find(1)
	require.NoError(t, err)
	found.CompleteAll()

	other, err := copy2.Lists.Find(1)
	require.NoError(t, err)
	assert.False(t, other.Todos[0].Completed, "decoded copies must not share todos")

	next, err := copy2.Lists.Create("Chores")
	require.NoError(t, err)
	assert.Equal(t, 2, next.ID, "id counter survives the round trip")
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	require.Error(t, err)
}
