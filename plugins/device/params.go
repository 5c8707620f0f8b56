package device

import (
	"github.com/lumen-home/light/plugins/common"
)

// CommandParams carries one pending turn-on/turn-off/toggle request.
// Built by merging explicit call arguments, profile defaults and
// step-accumulation results. Private per invocation, mutated only
// during normalization and discarded after dispatch.
type CommandParams struct {
	Transition        *float64      `json:"transition,omitempty" validate:"omitempty,gte=0,lte=6553"`
	Brightness        *uint8        `json:"brightness,omitempty"`
	BrightnessPct     *float64      `json:"brightness_pct,omitempty" validate:"omitempty,gte=0,lte=100"`
	BrightnessStep    *int          `json:"brightness_step,omitempty" validate:"omitempty,gte=-255,lte=255"`
	BrightnessStepPct *float64      `json:"brightness_step_pct,omitempty" validate:"omitempty,gte=-100,lte=100"`
	ColorName         *string       `json:"color_name,omitempty"`
	ColorTemp         *int          `json:"color_temp,omitempty" validate:"omitempty,gte=1"`
	Kelvin            *int          `json:"kelvin,omitempty" validate:"omitempty,gt=0"`
	HSColor           *common.HS    `json:"hs_color,omitempty"`
	XYColor           *common.XY    `json:"xy_color,omitempty"`
	RGBColor          *common.RGB   `json:"rgb_color,omitempty"`
	RGBWColor         *common.RGBW  `json:"rgbw_color,omitempty"`
	RGBWWColor        *common.RGBWW `json:"rgbww_color,omitempty"`
	White             *uint8        `json:"white,omitempty"`
	WhiteValue        *uint8        `json:"white_value,omitempty"`
	Flash             *Flash        `json:"flash,omitempty" validate:"omitempty,oneof=short long"`
	Effect            *string       `json:"effect,omitempty"`
	Profile           *string       `json:"profile,omitempty"`
}

// Clone returns a deep copy, so normalization never mutates
// the caller's request.
func (p *CommandParams) Clone() *CommandParams {
	if p == nil {
		return &CommandParams{}
	}

	clone := &CommandParams{}
	if p.Transition != nil {
		v := *p.Transition
		clone.Transition = &v
	}
	if p.Brightness != nil {
		v := *p.Brightness
		clone.Brightness = &v
	}
	if p.BrightnessPct != nil {
		v := *p.BrightnessPct
		clone.BrightnessPct = &v
	}
	if p.BrightnessStep != nil {
		v := *p.BrightnessStep
		clone.BrightnessStep = &v
	}
	if p.BrightnessStepPct != nil {
		v := *p.BrightnessStepPct
		clone.BrightnessStepPct = &v
	}
	if p.ColorName != nil {
		v := *p.ColorName
		clone.ColorName = &v
	}
	if p.ColorTemp != nil {
		v := *p.ColorTemp
		clone.ColorTemp = &v
	}
	if p.Kelvin != nil {
		v := *p.Kelvin
		clone.Kelvin = &v
	}
	if p.HSColor != nil {
		v := *p.HSColor
		clone.HSColor = &v
	}
	if p.XYColor != nil {
		v := *p.XYColor
		clone.XYColor = &v
	}
	if p.RGBColor != nil {
		v := *p.RGBColor
		clone.RGBColor = &v
	}
	if p.RGBWColor != nil {
		v := *p.RGBWColor
		clone.RGBWColor = &v
	}
	if p.RGBWWColor != nil {
		v := *p.RGBWWColor
		clone.RGBWWColor = &v
	}
	if p.White != nil {
		v := *p.White
		clone.White = &v
	}
	if p.WhiteValue != nil {
		v := *p.WhiteValue
		clone.WhiteValue = &v
	}
	if p.Flash != nil {
		v := *p.Flash
		clone.Flash = &v
	}
	if p.Effect != nil {
		v := *p.Effect
		clone.Effect = &v
	}
	if p.Profile != nil {
		v := *p.Profile
		clone.Profile = &v
	}

	return clone
}

// IsEmpty reports whether no parameter is set.
func (p *CommandParams) IsEmpty() bool {
	return p == nil || *p == (CommandParams{})
}

// SetBrightness stores an absolute brightness value.
func (p *CommandParams) SetBrightness(v uint8) {
	p.Brightness = &v
}

// SetTransition stores a transition time in seconds.
func (p *CommandParams) SetTransition(v float64) {
	p.Transition = &v
}

// SetHSColor stores a hue/saturation color.
func (p *CommandParams) SetHSColor(v common.HS) {
	p.HSColor = &v
}
