package models

import (
	"encoding/json"
	"fmt"

	todo "todolists/internal/todo/models"
)

// State is everything a browser session holds between requests.
type State struct {
	Lists todo.Lists `json:"lists"`
	Flash Flash      `json:"flash"`
}

// Flash carries one-shot messages shown on the next rendered page.
type Flash struct {
	Success string `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	Info    string `json:"info,omitempty"`
}

// Empty reports whether no message is pending.
func (f Flash) Empty() bool {
	return f.Success == "" && f.Error == "" && f.Info == ""
}

// Consume returns the pending messages and clears them.
func (s *State) Consume() Flash {
	f := s.Flash
	s.Flash = Flash{}
	return f
}

// NewState returns an empty session.
func NewState() *State {
	return &State{}
}

// Encode serializes the state for storage.
func Encode(s *State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return data, nil
}

// Decode parses stored session bytes into a fresh State.
func Decode(data []byte) (*State, error) {
	s := NewState()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}
