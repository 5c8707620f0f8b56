// Package light contains the light-domain negotiation and dispatch engine.
package light

import (
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/plugins/device/enums"
)

// EffectiveSupportedColorModes returns the declared modes set, falling
// back to inference from the legacy feature bitmask for integrations
// that predate color-mode declaration.
func EffectiveSupportedColorModes(l device.ILight) []enums.ColorMode {
	if modes := l.SupportedColorModes(); modes != nil {
		return modes
	}

	return enums.ColorModesFromFeatures(l.SupportedFeatures())
}

// EffectiveColorMode returns the single mode currently in use,
// inferring it when the device does not report one. The fallback
// order rgbw > hs > color_temp > brightness > onoff is a
// compatibility contract and must be preserved exactly.
func EffectiveColorMode(l device.ILight) enums.ColorMode {
	if mode := l.ColorMode(); mode != enums.ColorModeUnknown {
		return mode
	}

	supported := EffectiveSupportedColorModes(l)
	_, hasHS := l.HSColor()
	_, hasWhite := l.WhiteValue()
	_, hasCT := l.ColorTemp()
	_, hasBrightness := l.Brightness()

	if enums.SliceContainsColorMode(supported, enums.ColorModeRGBW) && hasWhite && hasHS {
		return enums.ColorModeRGBW
	}
	if enums.SliceContainsColorMode(supported, enums.ColorModeHS) && hasHS {
		return enums.ColorModeHS
	}
	if enums.SliceContainsColorMode(supported, enums.ColorModeColorTemp) && hasCT {
		return enums.ColorModeColorTemp
	}
	if enums.SliceContainsColorMode(supported, enums.ColorModeBrightness) && hasBrightness {
		return enums.ColorModeBrightness
	}
	if enums.SliceContainsColorMode(supported, enums.ColorModeOnOff) {
		return enums.ColorModeOnOff
	}

	return enums.ColorModeUnknown
}
