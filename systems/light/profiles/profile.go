// Package profiles contains named lighting presets storage.
package profiles

import (
	"strconv"
	"strings"

	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/systems/light/color"
)

// Profile is a named, reusable lighting preset.
// The hue/saturation color is derived from the file's xy pair once
// at load time and never recomputed. Immutable after construction.
type Profile struct {
	Name       string
	HSColor    *common.HS
	Brightness *uint8
	Transition *float64
}

// Apply sets the profile's fields on the params, never overwriting
// a value the caller already supplied.
func (p *Profile) Apply(params *device.CommandParams) {
	if p.HSColor != nil && params.HSColor == nil {
		v := *p.HSColor
		params.HSColor = &v
	}
	if p.Brightness != nil && params.Brightness == nil {
		v := *p.Brightness
		params.Brightness = &v
	}
	if p.Transition != nil && params.Transition == nil {
		v := *p.Transition
		params.Transition = &v
	}
}

// Builds a profile from a (name, x, y, brightness[, transition]) row.
// Empty strings are permitted for x and y jointly, meaning no color.
func profileFromRow(rec []string) (*Profile, error) {
	if len(rec) != 4 && len(rec) != 5 {
		return nil, &ErrProfileParse{Row: rec, Reason: "expected 4 or 5 columns"}
	}

	name := strings.TrimSpace(rec[0])
	if name == "" {
		return nil, &ErrProfileParse{Row: rec, Reason: "empty profile name"}
	}

	profile := &Profile{Name: name}

	xRaw, yRaw := strings.TrimSpace(rec[1]), strings.TrimSpace(rec[2])
	if (xRaw == "") != (yRaw == "") {
		return nil, &ErrProfileParse{Row: rec, Reason: "x and y must be set together"}
	}

	if xRaw != "" {
		x, err := strconv.ParseFloat(xRaw, 64)
		if err != nil || x < 0 || x > 1 {
			return nil, &ErrProfileParse{Row: rec, Reason: "invalid x chromaticity"}
		}

		y, err := strconv.ParseFloat(yRaw, 64)
		if err != nil || y < 0 || y > 1 {
			return nil, &ErrProfileParse{Row: rec, Reason: "invalid y chromaticity"}
		}

		hs := color.XYToHS(common.XY{X: x, Y: y})
		profile.HSColor = &hs
	}

	if raw := strings.TrimSpace(rec[3]); raw != "" {
		brightness, err := strconv.Atoi(raw)
		if err != nil || brightness < 0 || brightness > 255 {
			return nil, &ErrProfileParse{Row: rec, Reason: "invalid brightness"}
		}

		v := uint8(brightness)
		profile.Brightness = &v
	}

	if len(rec) == 5 {
		if raw := strings.TrimSpace(rec[4]); raw != "" {
			transition, err := strconv.ParseFloat(raw, 64)
			if err != nil || transition < 0 || transition > 6553 {
				return nil, &ErrProfileParse{Row: rec, Reason: "invalid transition"}
			}

			profile.Transition = &transition
		}
	}

	return profile, nil
}
