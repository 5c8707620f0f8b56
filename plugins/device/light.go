// Package device contains contracts between light integrations and the core.
package device

import (
	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device/enums"
)

// Default color temperature range, matches the Philips Hue bounds
// assumed by integrations that don't report their own.
const (
	// DefaultMinMireds describes the coldest color temperature.
	DefaultMinMireds = 153
	// DefaultMaxMireds describes the warmest color temperature.
	DefaultMaxMireds = 500
)

// ILight defines the command interface a light integration exposes
// to the domain engine. The core only invokes it and never branches
// on the concrete integration type, only on declared capabilities.
type ILight interface {
	EntityID() string
	IsOn() bool

	// SupportedColorModes returns the declared modes set, nil for
	// legacy integrations that predate color-mode declaration.
	SupportedColorModes() []enums.ColorMode
	SupportedFeatures() enums.LightFeature
	// ColorMode returns the mode currently reported by the device,
	// ColorModeUnknown when not reported.
	ColorMode() enums.ColorMode

	Brightness() (uint8, bool)
	HSColor() (common.HS, bool)
	XYColor() (common.XY, bool)
	RGBColor() (common.RGB, bool)
	RGBWColor() (common.RGBW, bool)
	RGBWWColor() (common.RGBWW, bool)
	ColorTemp() (int, bool)
	// WhiteValue returns the deprecated standalone white channel.
	WhiteValue() (uint8, bool)

	MinMireds() int
	MaxMireds() int
	EffectList() []string
	Effect() (string, bool)

	TurnOn(params *CommandParams) error
	TurnOff(params *CommandParams) error
}

// Flash describes requested flash behavior.
type Flash string

const (
	// FlashShort describes short flash request.
	FlashShort Flash = "short"
	// FlashLong describes long flash request.
	FlashLong Flash = "long"
)
