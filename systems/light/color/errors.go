package color

import "fmt"

// ErrUnknownColorName defines an unrecognized named color.
// Soft failure: the caller substitutes white and proceeds.
type ErrUnknownColorName struct {
	Name string
}

// Error formats output.
func (e *ErrUnknownColorName) Error() string {
	return fmt.Sprintf("unknown color name %q", e.Name)
}

// ErrNoConversion defines a missing route between two color modes.
type ErrNoConversion struct {
	From string
	To   string
}

// Error formats output.
func (e *ErrNoConversion) Error() string {
	return fmt.Sprintf("no conversion from %s to %s", e.From, e.To)
}
