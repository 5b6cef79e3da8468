package models

import "slices"

// Completable is implemented by both lists and todos so the same sorting
// and rendering helpers serve either. Todos answer from their explicit flag;
// lists derive completion from their todos.
type Completable interface {
	IsComplete() bool
}

// IsListComplete is true when the list has todos and none is incomplete.
func IsListComplete(l *List) bool {
	if len(l.Todos) == 0 {
		return false
	}
	for _, t := range l.Todos {
		if !t.Completed {
			return false
		}
	}
	return true
}

// IsItemComplete reports completion for a list or a todo.
func IsItemComplete(item Completable) bool {
	return item.IsComplete()
}

// SortByCompletion returns a copy of items with incomplete items first.
// Relative order within each group is preserved.
func SortByCompletion[T Completable](items []T) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		ac, bc := IsItemComplete(a), IsItemComplete(b)
		switch {
		case ac == bc:
			return 0
		case !ac:
			return -1
		default:
			return 1
		}
	})
	return sorted
}
