// Package virtual contains an in-memory light integration.
// It keeps whatever state it was told to assume, which makes it
// useful for demos and for driving the full command pipeline in tests.
package virtual

import (
	"sync"

	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/plugins/device/enums"
	"github.com/lumen-home/light/providers"
)

const (
	// Logger system.
	logSystem = "device.virtual"
)

// ConstructVirtualLight has data required for a new virtual light.
type ConstructVirtualLight struct {
	Logger  common.ILoggerProvider
	Config  *providers.RawLight
	Updates chan *common.MsgLightUpdate
}

// In-memory light.
type virtualLight struct {
	sync.Mutex

	logger  common.ILoggerProvider
	updates chan *common.MsgLightUpdate

	entityID   string
	colorModes []enums.ColorMode
	features   enums.LightFeature
	minMireds  int
	maxMireds  int
	effectList []string

	on         bool
	colorMode  enums.ColorMode
	brightness *uint8
	hs         *common.HS
	xy         *common.XY
	rgb        *common.RGB
	rgbw       *common.RGBW
	rgbww      *common.RGBWW
	colorTemp  *int
	whiteValue *uint8
	effect     *string
}

// NewVirtualLight constructs a new in-memory light.
// Declared color modes are checked against the exclusivity rules
// before the light is accepted.
func NewVirtualLight(ctor *ConstructVirtualLight) (device.ILight, error) {
	features := enums.LightFeature(0)
	for _, f := range ctor.Config.Features {
		features |= f
	}

	if len(ctor.Config.ColorModes) > 0 {
		if err := enums.ValidateColorModes(ctor.Config.ColorModes); err != nil {
			return nil, err
		}

		features = enums.FeaturesFromColorModes(features, ctor.Config.ColorModes)
	}

	minMireds := ctor.Config.MinMireds
	if 0 == minMireds {
		minMireds = device.DefaultMinMireds
	}

	maxMireds := ctor.Config.MaxMireds
	if 0 == maxMireds {
		maxMireds = device.DefaultMaxMireds
	}

	return &virtualLight{
		logger:     ctor.Logger,
		updates:    ctor.Updates,
		entityID:   ctor.Config.Name,
		colorModes: ctor.Config.ColorModes,
		features:   features,
		minMireds:  minMireds,
		maxMireds:  maxMireds,
		effectList: ctor.Config.Effects,
		colorMode:  enums.ColorModeUnknown,
	}, nil
}

// EntityID returns light's ID.
func (l *virtualLight) EntityID() string {
	return l.entityID
}

// IsOn returns current on/off state.
func (l *virtualLight) IsOn() bool {
	l.Lock()
	defer l.Unlock()
	return l.on
}

// SupportedColorModes returns declared modes, nil for a legacy definition.
func (l *virtualLight) SupportedColorModes() []enums.ColorMode {
	return l.colorModes
}

// SupportedFeatures returns supported features bitmask.
func (l *virtualLight) SupportedFeatures() enums.LightFeature {
	return l.features
}

// ColorMode returns mode of the last applied color.
func (l *virtualLight) ColorMode() enums.ColorMode {
	l.Lock()
	defer l.Unlock()
	return l.colorMode
}

// Brightness returns current brightness.
func (l *virtualLight) Brightness() (uint8, bool) {
	l.Lock()
	defer l.Unlock()

	if nil == l.brightness {
		return 0, false
	}
	return *l.brightness, true
}

// HSColor returns current hue/saturation color.
func (l *virtualLight) HSColor() (common.HS, bool) {
	l.Lock()
	defer l.Unlock()

	if nil == l.hs {
		return common.HS{}, false
	}
	return *l.hs, true
}

// XYColor returns current xy color.
func (l *virtualLight) XYColor() (common.XY, bool) {
	l.Lock()
	defer l.Unlock()

	if nil == l.xy {
		return common.XY{}, false
	}
	return *l.xy, true
}

// RGBColor returns current rgb color.
func (l *virtualLight) RGBColor() (common.RGB, bool) {
	l.Lock()
	defer l.Unlock()

	if nil == l.rgb {
		return common.RGB{}, false
	}
	return *l.rgb, true
}

// RGBWColor returns current rgbw color.
func (l *virtualLight) RGBWColor() (common.RGBW, bool) {
	l.Lock()
	defer l.Unlock()

	if nil == l.rgbw {
		return common.RGBW{}, false
	}
	return *l.rgbw, true
}

// RGBWWColor returns current rgbww color.
func (l *virtualLight) RGBWWColor() (common.RGBWW, bool) {
	l.Lock()
	defer l.Unlock()

	if nil == l.rgbww {
		return common.RGBWW{}, false
	}
	return *l.rgbww, true
}

// ColorTemp returns current color temperature in mireds.
func (l *virtualLight) ColorTemp() (int, bool) {
	l.Lock()
	defer l.Unlock()

	if nil == l.colorTemp {
		return 0, false
	}
	return *l.colorTemp, true
}

// WhiteValue returns deprecated standalone white channel.
func (l *virtualLight) WhiteValue() (uint8, bool) {
	l.Lock()
	defer l.Unlock()

	if nil == l.whiteValue {
		return 0, false
	}
	return *l.whiteValue, true
}

// MinMireds returns the coldest supported color temperature.
func (l *virtualLight) MinMireds() int {
	return l.minMireds
}

// MaxMireds returns the warmest supported color temperature.
func (l *virtualLight) MaxMireds() int {
	return l.maxMireds
}

// EffectList returns supported effects.
func (l *virtualLight) EffectList() []string {
	return l.effectList
}

// Effect returns currently running effect.
func (l *virtualLight) Effect() (string, bool) {
	l.Lock()
	defer l.Unlock()

	if nil == l.effect {
		return "", false
	}
	return *l.effect, true
}

// TurnOn assumes the requested state.
func (l *virtualLight) TurnOn(params *device.CommandParams) error {
	l.Lock()

	l.on = true
	l.applyColor(params)

	if nil != params.White {
		v := *params.White
		l.brightness = &v
		l.colorMode = enums.ColorModeWhite
	} else if nil != params.Brightness {
		v := *params.Brightness
		l.brightness = &v
	}

	if nil != params.WhiteValue {
		v := *params.WhiteValue
		l.whiteValue = &v
	}

	if nil != params.Effect {
		v := *params.Effect
		l.effect = &v
	}

	if nil != params.Flash {
		l.logger.Debug("Flashing light", common.LogSystemToken, logSystem,
			common.LogLightNameToken, l.entityID)
	}

	l.Unlock()
	l.notify()
	return nil
}

// TurnOff turns the light off.
func (l *virtualLight) TurnOff(params *device.CommandParams) error {
	l.Lock()
	l.on = false
	l.Unlock()

	l.notify()
	return nil
}

// Stores requested color and tracks the resulting color mode.
func (l *virtualLight) applyColor(params *device.CommandParams) {
	switch {
	case nil != params.HSColor:
		v := *params.HSColor
		l.hs = &v
		l.colorMode = enums.ColorModeHS
	case nil != params.XYColor:
		v := *params.XYColor
		l.xy = &v
		l.colorMode = enums.ColorModeXY
	case nil != params.RGBColor:
		v := *params.RGBColor
		l.rgb = &v
		l.colorMode = enums.ColorModeRGB
	case nil != params.RGBWColor:
		v := *params.RGBWColor
		l.rgbw = &v
		l.colorMode = enums.ColorModeRGBW
	case nil != params.RGBWWColor:
		v := *params.RGBWWColor
		l.rgbww = &v
		l.colorMode = enums.ColorModeRGBWW
	case nil != params.ColorTemp:
		v := *params.ColorTemp
		l.colorTemp = &v
		l.colorMode = enums.ColorModeColorTemp
	case nil != params.White:
	default:
		if enums.ColorModeUnknown == l.colorMode {
			l.colorMode = l.defaultColorMode()
		}
	}
}

// Picks mode for state reports when no color was ever set.
func (l *virtualLight) defaultColorMode() enums.ColorMode {
	if len(l.colorModes) > 0 {
		if enums.SliceContainsColorMode(l.colorModes, enums.ColorModeBrightness) {
			return enums.ColorModeBrightness
		}
		if enums.SliceContainsColorMode(l.colorModes, enums.ColorModeOnOff) {
			return enums.ColorModeOnOff
		}
		return l.colorModes[0]
	}

	return enums.ColorModeUnknown
}

// Publishes a state change.
func (l *virtualLight) notify() {
	if nil == l.updates {
		return
	}

	l.updates <- &common.MsgLightUpdate{EntityID: l.entityID}
}
