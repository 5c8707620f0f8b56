package enums

import "fmt"

// ErrInvalidCapabilitySet defines an impossible combination of
// declared supported color modes. Raised at registration time,
// fatal for that device's setup.
type ErrInvalidCapabilitySet struct {
	Modes []ColorMode
}

// Error formats output.
func (e *ErrInvalidCapabilitySet) Error() string {
	names := make([]string, 0, len(e.Modes))
	for _, v := range SortColorModes(e.Modes) {
		names = append(names, v.String())
	}

	return fmt.Sprintf("invalid supported color modes %v", names)
}
