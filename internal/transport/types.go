package transport

import (
	"errors"

	"templatedesk/internal/common"
)

// Status tags the outcome of every command the frontend can call
type Status string

const (
	StatusOK        Status = "ok"
	StatusNotFound  Status = "not_found"
	StatusCancelled Status = "cancelled"
	StatusError     Status = "error"
)

// Result is returned by every facade command. Data is only set on success.
type Result struct {
	Status  Status      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func okResult(data interface{}) Result {
	return Result{Status: StatusOK, Data: data}
}

// errorResult maps an error onto the tagged outcome shown to the user
func errorResult(err error) Result {
	switch {
	case errors.Is(err, common.ErrCancelled):
		return Result{Status: StatusCancelled}
	case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrInvalidName):
		return Result{Status: StatusNotFound, Message: err.Error()}
	default:
		return Result{Status: StatusError, Message: err.Error()}
	}
}

// Dialog interface for system dialogs
type DialogHandler interface {
	// PickTemplate returns the chosen path, or "" when the user cancels
	PickTemplate() (string, error)
}

// Navigator points the host window at a new document
type Navigator interface {
	LoadURL(uri string) error
}

// Emitter pushes events to the frontend
type Emitter interface {
	Emit(event string, data ...interface{})
}

// Host groups the collaborators provided by the window host
type Host struct {
	Dialogs   DialogHandler
	Navigator Navigator
	Emitter   Emitter
}
