package models

// Todo is a named item owned by exactly one List.
type Todo struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// IsComplete reports the todo's explicit completion flag.
func (t *Todo) IsComplete() bool {
	return t.Completed
}
