package light

import (
	"fmt"
	"strings"
)

// ErrInvalidRequest defines a service call with mutually exclusive
// fields. Rejected before any device call is made.
type ErrInvalidRequest struct {
	Fields []string
}

// Error formats output.
func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("mutually exclusive fields: %s", strings.Join(e.Fields, ", "))
}

// ErrUnknownCommand defines an unrecognized service verb.
type ErrUnknownCommand struct {
	Command string
}

// Error formats output.
func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("unknown command %q", e.Command)
}
