package server

import "fmt"

// ErrUnknownLight defines unknown light error.
type ErrUnknownLight struct {
	ID string
}

// Error formats output.
func (e *ErrUnknownLight) Error() string {
	return fmt.Sprintf("light %s is unknown", e.ID)
}

// ErrUnknownCommand defines unknown command error.
type ErrUnknownCommand struct {
	Name string
}

// Error formats output.
func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("command %s is unknown", e.Name)
}

// ErrBadRequest defines generic request parse error.
type ErrBadRequest struct {
}

// Error formats output.
func (e *ErrBadRequest) Error() string {
	return "bad request"
}
