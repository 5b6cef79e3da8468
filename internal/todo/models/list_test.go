package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(t *testing.T, todos ...string) *List {
	t.Helper()
	l := &List{ID: 1, Name: "test"}
	for _, name := range todos {
		_, err := l.AddTodo(name)
		require.NoError(t, err)
	}
	return l
}

func TestAddTodo(t *testing.T) {
	t.Run("ids are scoped to the list", func(t *testing.T) {
		a := newList(t, "one", "two")
		b := newList(t, "other")

		assert.Equal(t, 1, a.Todos[0].ID)
		assert.Equal(t, 2, a.Todos[1].ID)
		assert.Equal(t, 1, b.Todos[0].ID)
	})

	t.Run("rejects invalid lengths without mutating", func(t *testing.T) {
		l := newList(t, "keep")
		for _, name := range []string{"", strings.Repeat("y", MaxNameLength+1)} {
			_, err := l.AddTodo(name)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, MsgTodoNameLength, err.Error())
		}
		assert.Len(t, l.Todos, 1)
	})

	t.Run("duplicate todo names are allowed", func(t *testing.T) {
		l := newList(t, "same", "same")
		assert.Len(t, l.Todos, 2)
	})

	t.Run("ids are not reused after deletion", func(t *testing.T) {
		l := newList(t, "a", "b")
		l.DeleteTodo(2)
		todo, err := l.AddTodo("c")
		require.NoError(t, err)
		assert.Equal(t, 3, todo.ID)
	})
}

func TestDeleteTodo(t *testing.T) {
	l := newList(t, "a", "b", "c")
	l.DeleteTodo(2)
	l.DeleteTodo(2)
	l.DeleteTodo(99)

	require.Len(t, l.Todos, 2)
	assert.Equal(t, "a", l.Todos[0].Name)
	assert.Equal(t, "c", l.Todos[1].Name)
}

func TestSetCompleted(t *testing.T) {
	t.Run("round trip restores the original state", func(t *testing.T) {
		l := newList(t, "a")
		require.NoError(t, l.SetCompleted(1, true))
		assert.True(t, l.Todos[0].Completed)
		require.NoError(t, l.SetCompleted(1, false))
		assert.False(t, l.Todos[0].Completed)
	})

	t.Run("missing todo is not found", func(t *testing.T) {
		l := newList(t, "a")
		err := l.SetCompleted(5, true)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.Equal(t, MsgTodoNotFound, err.Error())
	})
}

func TestCompleteAll(t *testing.T) {
	l := newList(t, "a", "b", "c")
	require.NoError(t, l.SetCompleted(2, true))

	l.CompleteAll()

	for _, todo := range l.Todos {
		assert.True(t, todo.Completed)
	}
	assert.True(t, IsListComplete(l))
}

func TestCounts(t *testing.T) {
	l := newList(t, "a", "b", "c")
	require.NoError(t, l.SetCompleted(1, true))

	assert.Equal(t, 3, l.TodosCount())
	assert.Equal(t, 2, l.TodosRemainingCount())
}
