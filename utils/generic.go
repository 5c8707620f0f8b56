package utils

import (
	"strings"
	"time"
)

// TimeNow returns epoch UTC.
func TimeNow() int64 {
	return time.Now().UTC().Unix()
}

// NormalizeEntityID brings entity IDs to a single form.
func NormalizeEntityID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
