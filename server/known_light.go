package server

import (
	"github.com/lumen-home/light/systems/light"
)

// Known lights, constructed from configuration.
type knownLight struct {
	ID           string                      `json:"id"`
	State        *light.StateAttributes      `json:"state"`
	Capabilities *light.CapabilityAttributes `json:"capabilities"`
	Commands     []string                    `json:"commands"`
	LastSeen     int64                       `json:"last_seen"`
}
