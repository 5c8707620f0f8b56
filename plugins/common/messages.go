package common

// MsgLightUpdate contains a notification about a light state change.
type MsgLightUpdate struct {
	EntityID  string
	FirstSeen bool
}
