package profiles

import "fmt"

// ErrProfileParse defines a malformed profile file row.
// The offending row is skipped, the rest of the file still loads.
type ErrProfileParse struct {
	Row    []string
	Reason string
}

// Error formats output.
func (e *ErrProfileParse) Error() string {
	return fmt.Sprintf("bad profile row %v: %s", e.Row, e.Reason)
}
