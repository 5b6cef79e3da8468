package models

// List is a named, ordered collection of todos.
//
// Invariants:
//   - Name is 1–100 characters and unique among the lists of one session
//   - Todo IDs are unique within the list and never reused
type List struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Todos      []*Todo `json:"todos"`
	NextTodoID int     `json:"next_todo_id,omitempty"`
}

// AddTodo validates name and appends a new incomplete todo.
func (l *List) AddTodo(name string) (*Todo, error) {
	if !validNameLength(name) {
		return nil, errTodoNameLength
	}
	todo := &Todo{ID: l.nextTodoID(), Name: name}
	l.Todos = append(l.Todos, todo)
	return todo, nil
}

// FindTodo returns the todo with the given id.
func (l *List) FindTodo(id int) (*Todo, error) {
	for _, t := range l.Todos {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, todoNotFound()
}

// DeleteTodo removes the todo with the given id. Missing ids are ignored.
func (l *List) DeleteTodo(id int) {
	for i, t := range l.Todos {
		if t.ID == id {
			l.Todos = append(l.Todos[:i], l.Todos[i+1:]...)
			return
		}
	}
}

// SetCompleted sets the completion flag of one todo.
func (l *List) SetCompleted(id int, completed bool) error {
	todo, err := l.FindTodo(id)
	if err != nil {
		return err
	}
	todo.Completed = completed
	return nil
}

// CompleteAll marks every todo complete.
func (l *List) CompleteAll() {
	for _, t := range l.Todos {
		t.Completed = true
	}
}

// IsComplete falls back to the list's derived status since lists carry no
// flag of their own.
func (l *List) IsComplete() bool {
	return IsListComplete(l)
}

// TodosCount is the number of todos in the list.
func (l *List) TodosCount() int {
	return len(l.Todos)
}

// TodosRemainingCount is the number of incomplete todos.
func (l *List) TodosRemainingCount() int {
	n := 0
	for _, t := range l.Todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

func (l *List) nextTodoID() int {
	id := 1
	for _, t := range l.Todos {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	if l.NextTodoID > id {
		id = l.NextTodoID
	}
	l.NextTodoID = id + 1
	return id
}
