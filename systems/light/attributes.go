package light

import (
	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/plugins/device/enums"
	"github.com/lumen-home/light/systems/light/color"
)

// StateAttributes describes the reported state of a light, with all
// color representations derivable from the active mode filled in.
type StateAttributes struct {
	EntityID   string          `json:"entity_id"`
	On         bool            `json:"on"`
	ColorMode  enums.ColorMode `json:"color_mode,omitempty"`
	Brightness *uint8          `json:"brightness,omitempty"`
	ColorTemp  *int            `json:"color_temp,omitempty"`
	HSColor    *common.HS      `json:"hs_color,omitempty"`
	RGBColor   *common.RGB     `json:"rgb_color,omitempty"`
	XYColor    *common.XY      `json:"xy_color,omitempty"`
	RGBWColor  *common.RGBW    `json:"rgbw_color,omitempty"`
	RGBWWColor *common.RGBWW   `json:"rgbww_color,omitempty"`
	WhiteValue *uint8          `json:"white_value,omitempty"`
	Effect     *string         `json:"effect,omitempty"`
}

// CapabilityAttributes describes the fixed capabilities of a light.
type CapabilityAttributes struct {
	EntityID            string            `json:"entity_id"`
	SupportedColorModes []enums.ColorMode `json:"supported_color_modes"`
	MinMireds           *int              `json:"min_mireds,omitempty"`
	MaxMireds           *int              `json:"max_mireds,omitempty"`
	EffectList          []string          `json:"effect_list,omitempty"`
}

// GetCapabilityAttributes builds the capability attributes for a light.
func GetCapabilityAttributes(l device.ILight) *CapabilityAttributes {
	supported := EffectiveSupportedColorModes(l)
	attrs := &CapabilityAttributes{
		EntityID:            l.EntityID(),
		SupportedColorModes: enums.SortColorModes(supported),
	}

	if enums.ColorTempSupported(supported) {
		min, max := l.MinMireds(), l.MaxMireds()
		attrs.MinMireds = &min
		attrs.MaxMireds = &max
	}

	if l.SupportedFeatures().Has(enums.FeatureEffect) {
		attrs.EffectList = l.EffectList()
	}

	return attrs
}

// GetStateAttributes builds the state attributes for a light.
func GetStateAttributes(l device.ILight, logger common.ILoggerProvider) *StateAttributes {
	attrs := &StateAttributes{EntityID: l.EntityID()}
	if !l.IsOn() {
		return attrs
	}

	attrs.On = true
	mode := EffectiveColorMode(l)
	supported := EffectiveSupportedColorModes(l)
	features := l.SupportedFeatures()

	if !enums.SliceContainsColorMode(supported, mode) {
		logger.Debug("Light set to unsupported color mode",
			common.LogSystemToken, logSystem,
			common.LogLightNameToken, l.EntityID(),
			common.LogColorModeToken, mode.String())
	}

	attrs.ColorMode = mode

	if enums.SliceContainsColorMode(enums.ColorModesBrightness, mode) ||
		features.Has(enums.FeatureBrightness) {
		if b, ok := l.Brightness(); ok {
			attrs.Brightness = &b
		}
	}

	if mode == enums.ColorModeColorTemp {
		if ct, ok := l.ColorTemp(); ok {
			attrs.ColorTemp = &ct
		}
	}

	if enums.SliceContainsColorMode(enums.ColorModesColor, mode) ||
		mode == enums.ColorModeColorTemp {
		fillConvertedColor(l, mode, attrs)
	}

	// Backwards compatibility for lights without declared modes.
	if l.SupportedColorModes() == nil {
		if features.Has(enums.FeatureColorTemp) {
			if ct, ok := l.ColorTemp(); ok {
				attrs.ColorTemp = &ct
			}
		}
		if features.Has(enums.FeatureWhiteValue) {
			if w, ok := l.WhiteValue(); ok {
				attrs.WhiteValue = &w
			}
			if _, ok := l.HSColor(); ok {
				fillConvertedColor(l, enums.ColorModeHS, attrs)
			}
		}
	}

	if features.Has(enums.FeatureEffect) {
		if effect, ok := l.Effect(); ok {
			attrs.Effect = &effect
		}
	}

	return attrs
}

// Derives the companion color representations for the active mode.
func fillConvertedColor(l device.ILight, mode enums.ColorMode, attrs *StateAttributes) {
	bounds := color.Range{MinMireds: l.MinMireds(), MaxMireds: l.MaxMireds()}

	switch mode {
	case enums.ColorModeHS:
		hs, ok := l.HSColor()
		if !ok {
			return
		}
		rgb := color.HSToRGB(hs)
		xy := color.HSToXY(hs)
		attrs.HSColor = &hs
		attrs.RGBColor = &rgb
		attrs.XYColor = &xy
	case enums.ColorModeXY:
		xy, ok := l.XYColor()
		if !ok {
			return
		}
		hs := color.XYToHS(xy)
		rgb := color.XYToRGB(xy)
		attrs.HSColor = &hs
		attrs.RGBColor = &rgb
		attrs.XYColor = &xy
	case enums.ColorModeRGB:
		rgb, ok := l.RGBColor()
		if !ok {
			return
		}
		hs := color.RGBToHS(rgb)
		xy := color.RGBToXY(rgb)
		attrs.HSColor = &hs
		attrs.RGBColor = &rgb
		attrs.XYColor = &xy
	case enums.ColorModeRGBW:
		rgbw, ok := legacyRGBWColor(l)
		if !ok {
			return
		}
		rgb := color.RGBWToRGB(rgbw)
		hs := color.RGBToHS(rgb)
		xy := color.RGBToXY(rgb)
		attrs.HSColor = &hs
		attrs.RGBColor = &rgb
		attrs.XYColor = &xy
		attrs.RGBWColor = &rgbw
	case enums.ColorModeRGBWW:
		rgbww, ok := l.RGBWWColor()
		if !ok {
			return
		}
		rgb := color.RGBWWToRGB(rgbww, bounds.MinMireds, bounds.MaxMireds)
		hs := color.RGBToHS(rgb)
		xy := color.RGBToXY(rgb)
		attrs.HSColor = &hs
		attrs.RGBColor = &rgb
		attrs.XYColor = &xy
		attrs.RGBWWColor = &rgbww
	case enums.ColorModeColorTemp:
		ct, ok := l.ColorTemp()
		if !ok {
			return
		}
		hs := color.TemperatureToHS(float64(color.MiredToKelvin(ct)))
		rgb := color.HSToRGB(hs)
		xy := color.HSToXY(hs)
		attrs.HSColor = &hs
		attrs.RGBColor = &rgb
		attrs.XYColor = &xy
	}
}

// Infers an rgbw tuple from hue/saturation plus the deprecated white
// value for lights that never report rgbw directly.
func legacyRGBWColor(l device.ILight) (common.RGBW, bool) {
	if rgbw, ok := l.RGBWColor(); ok {
		return rgbw, true
	}

	hs, hasHS := l.HSColor()
	w, hasWhite := l.WhiteValue()
	if !hasHS || !hasWhite {
		return common.RGBW{}, false
	}

	rgb := color.HSToRGB(hs)
	return common.RGBW{R: rgb.R, G: rgb.G, B: rgb.B, W: w}, true
}
