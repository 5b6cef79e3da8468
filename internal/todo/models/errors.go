package models

import (
	dErrors "todolists/pkg/domain-errors"
)

// User-facing messages. The HTTP layer shows these verbatim.
const (
	MsgListNameLength = "The list name must be between 1 and 100 characters."
	MsgListNameUnique = "List name must be unique."
	MsgTodoNameLength = "Todo must be between 1 and 100 characters."
	MsgListNotFound   = "The specified list was not found."
	MsgTodoNotFound   = "The specified todo was not found."
)

var (
	errListNameLength = dErrors.New(dErrors.CodeValidation, MsgListNameLength)
	errListNameUnique = dErrors.New(dErrors.CodeValidation, MsgListNameUnique)
	errTodoNameLength = dErrors.New(dErrors.CodeValidation, MsgTodoNameLength)
)

// IsValidation reports whether err rejects user input.
func IsValidation(err error) bool {
	return dErrors.HasCode(err, dErrors.CodeValidation)
}

// IsNotFound reports whether err refers to a missing list or todo.
func IsNotFound(err error) bool {
	return dErrors.HasCode(err, dErrors.CodeNotFound)
}

func listNotFound() error {
	return dErrors.New(dErrors.CodeNotFound, MsgListNotFound)
}

func todoNotFound() error {
	return dErrors.New(dErrors.CodeNotFound, MsgTodoNotFound)
}
