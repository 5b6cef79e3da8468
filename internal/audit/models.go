package audit

import "time"

// Action names a state change in a session's lists.
type Action string

const (
	ActionListCreated      Action = "list_created"
	ActionListRenamed      Action = "list_renamed"
	ActionListDeleted      Action = "list_deleted"
	ActionListCompletedAll Action = "list_completed_all"
	ActionTodoAdded        Action = "todo_added"
	ActionTodoDeleted      Action = "todo_deleted"
	ActionTodoCompleted    Action = "todo_completed"
	ActionTodoReopened     Action = "todo_reopened"
)

// Event is emitted from the todo service to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	RequestID string    `json:"request_id,omitempty"`
	Action    Action    `json:"action"`
	ListID    int       `json:"list_id"`
	TodoID    int       `json:"todo_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}
