package light

import (
	"math"

	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/plugins/device/enums"
	"github.com/lumen-home/light/systems/light/color"
	"github.com/lumen-home/light/systems/light/profiles"
)

// Normalizer rewrites a raw service call into the color representation
// and parameter set the target device actually supports.
type Normalizer struct {
	profiles profiles.IProfileProvider
	logger   common.ILoggerProvider
}

// ConstructNormalizer has data required for a new normalizer.
type ConstructNormalizer struct {
	Profiles profiles.IProfileProvider
	Logger   common.ILoggerProvider
}

// NewNormalizer constructs a new request normalizer.
func NewNormalizer(ctor *ConstructNormalizer) *Normalizer {
	return &Normalizer{
		profiles: ctor.Profiles,
		logger:   ctor.Logger,
	}
}

// Normalize arbitrates an incoming turn-on request into a single
// coherent device command. The second return is true when the request
// resolved to zero brightness and must be treated as a turn-off:
// a deliberate policy, not an error. The input is never mutated.
func (n *Normalizer) Normalize(light device.ILight,
	raw *device.CommandParams) (*device.CommandParams, bool, error) {
	params := raw.Clone()

	if err := validateExclusive(params); err != nil {
		return nil, false, err
	}

	// Brightness steps anchor on live state, not defaults, so they
	// resolve before any profile or color processing.
	if params.BrightnessStep != nil || params.BrightnessStepPct != nil {
		n.resolveBrightnessStep(light, params)
	}
	n.preprocess(params)

	if params.IsEmpty() || !light.IsOn() || params.Transition == nil {
		n.profiles.ApplyDefault(light.EntityID(), light.IsOn(), params)
	}

	declared := light.SupportedColorModes()
	effective := EffectiveSupportedColorModes(light)
	bounds := color.Range{MinMireds: light.MinMireds(), MaxMireds: light.MaxMireds()}

	// Backwards compatibility: split an rgbw request into rgb plus
	// white value for lights that only raise the legacy feature bit.
	if params.RGBWColor != nil && declared == nil &&
		enums.SliceContainsColorMode(effective, enums.ColorModeRGBW) {
		rgbw := *params.RGBWColor
		params.RGBWColor = nil
		params.RGBColor = &common.RGB{R: rgbw.R, G: rgbw.G, B: rgbw.B}
		w := rgbw.W
		params.WhiteValue = &w
	}

	n.emulateColorTemp(light, params, declared, effective, bounds)
	n.convertColor(params, declared, effective, bounds)

	// If both white and brightness are specified, white wins.
	if declared != nil && params.White != nil &&
		enums.SliceContainsColorMode(declared, enums.ColorModeWhite) {
		if params.Brightness != nil {
			params.White = params.Brightness
			params.Brightness = nil
		}
	}

	// Deprecated white value has no meaning once modes are declared.
	if declared != nil {
		params.WhiteValue = nil
	}

	n.filterTurnOn(light, params, effective)

	if (params.Brightness != nil && *params.Brightness == 0) ||
		(params.White != nil && *params.White == 0) {
		return params, true, nil
	}

	return params, false, nil
}

// Resolves a relative brightness request against the current
// brightness, 0 when the light is off, clamped to [0, 255].
func (n *Normalizer) resolveBrightnessStep(light device.ILight, params *device.CommandParams) {
	brightness := 0
	if light.IsOn() {
		if b, ok := light.Brightness(); ok {
			brightness = int(b)
		}
	}

	if params.BrightnessStep != nil {
		brightness += *params.BrightnessStep
		params.BrightnessStep = nil
	} else {
		brightness += int(math.Round(*params.BrightnessStepPct / 100 * 255))
		params.BrightnessStepPct = nil
	}

	if brightness < 0 {
		brightness = 0
	}
	if brightness > 255 {
		brightness = 255
	}

	params.SetBrightness(uint8(brightness))
}

// Resolves profile, named color, kelvin and percent shorthand into
// canonical fields.
func (n *Normalizer) preprocess(params *device.CommandParams) {
	if params.Profile != nil {
		name := *params.Profile
		params.Profile = nil
		n.profiles.Apply(name, params)
	}

	if params.ColorName != nil {
		name := *params.ColorName
		params.ColorName = nil

		rgb, err := color.NameToRGB(name)
		if err != nil {
			n.logger.Warn("Got unknown color, falling back to white",
				common.LogSystemToken, logSystemNormalizer, common.LogColorNameToken, name)
			rgb = common.RGB{R: 255, G: 255, B: 255}
		}
		params.RGBColor = &rgb
	}

	if params.Kelvin != nil {
		mireds := color.KelvinToMired(*params.Kelvin)
		params.Kelvin = nil
		params.ColorTemp = &mireds
	}

	if params.BrightnessPct != nil {
		pct := *params.BrightnessPct
		params.BrightnessPct = nil
		params.SetBrightness(uint8(math.Round(255 * pct / 100)))
	}
}

// Emulates a color temperature request on lights without native
// support: synthesize rgbww channels when possible, otherwise go
// through Kelvin to hue/saturation.
func (n *Normalizer) emulateColorTemp(light device.ILight, params *device.CommandParams,
	declared, effective []enums.ColorMode, bounds color.Range) {
	if params.ColorTemp == nil {
		return
	}

	if declared != nil && !enums.ColorTempSupported(declared) &&
		enums.SliceContainsColorMode(declared, enums.ColorModeRGBWW) {
		mireds := *params.ColorTemp
		params.ColorTemp = nil

		brightness := uint8(255)
		if params.Brightness != nil {
			brightness = *params.Brightness
		} else if b, ok := light.Brightness(); ok {
			brightness = b
		}

		rgbww := color.TemperatureToRGBWW(mireds, brightness, bounds.MinMireds, bounds.MaxMireds)
		params.RGBWWColor = &rgbww
		return
	}

	if !enums.ColorTempSupported(effective) {
		mireds := *params.ColorTemp
		params.ColorTemp = nil

		if enums.ColorSupported(effective) {
			hs := color.TemperatureToHS(float64(color.MiredToKelvin(mireds)))
			params.HSColor = &hs
		}
	}
}

// Rewrites an explicit color request into a representation the target
// supports. Legacy lights without declared modes always fall back to
// hue/saturation, declared lights go through the cascade graph.
func (n *Normalizer) convertColor(params *device.CommandParams,
	declared, effective []enums.ColorMode, bounds color.Range) {
	if declared == nil {
		n.convertColorLegacy(params, bounds)
		return
	}

	value, ok := takeColorValue(params)
	if !ok {
		return
	}

	converted, ok := color.Cascade(value, declared, bounds)
	if !ok {
		// No color mode available at all, filtering drops the field.
		storeColorValue(params, value)
		return
	}

	storeColorValue(params, converted)
}

// Legacy read path for lights that predate mode declaration.
func (n *Normalizer) convertColorLegacy(params *device.CommandParams, bounds color.Range) {
	switch {
	case params.RGBColor != nil:
		hs := color.RGBToHS(*params.RGBColor)
		params.RGBColor = nil
		params.HSColor = &hs
	case params.XYColor != nil:
		hs := color.XYToHS(*params.XYColor)
		params.XYColor = nil
		params.HSColor = &hs
	case params.RGBWColor != nil:
		hs := color.RGBToHS(color.RGBWToRGB(*params.RGBWColor))
		params.RGBWColor = nil
		params.HSColor = &hs
	case params.RGBWWColor != nil:
		rgb := color.RGBWWToRGB(*params.RGBWWColor, bounds.MinMireds, bounds.MaxMireds)
		hs := color.RGBToHS(rgb)
		params.RGBWWColor = nil
		params.HSColor = &hs
	}
}

// Strips fields the device's declared features and modes cannot use.
func (n *Normalizer) filterTurnOn(light device.ILight, params *device.CommandParams,
	effective []enums.ColorMode) {
	features := light.SupportedFeatures()

	if !features.Has(enums.FeatureEffect) {
		params.Effect = nil
	}
	if !features.Has(enums.FeatureFlash) {
		params.Flash = nil
	}
	if !features.Has(enums.FeatureTransition) {
		params.Transition = nil
	}
	if !features.Has(enums.FeatureWhiteValue) {
		params.WhiteValue = nil
	}

	if !enums.BrightnessSupported(effective) {
		params.Brightness = nil
	}
	if !enums.ColorTempSupported(effective) {
		params.ColorTemp = nil
	}
	if !enums.SliceContainsColorMode(effective, enums.ColorModeHS) {
		params.HSColor = nil
	}
	if !enums.SliceContainsColorMode(effective, enums.ColorModeXY) {
		params.XYColor = nil
	}
	if !enums.SliceContainsColorMode(effective, enums.ColorModeRGB) {
		params.RGBColor = nil
	}
	if !enums.SliceContainsColorMode(effective, enums.ColorModeRGBW) {
		params.RGBWColor = nil
	}
	if !enums.SliceContainsColorMode(effective, enums.ColorModeRGBWW) {
		params.RGBWWColor = nil
	}
	if !enums.SliceContainsColorMode(effective, enums.ColorModeWhite) {
		params.White = nil
	}
}

// Pops the single explicit color field from the params.
func takeColorValue(params *device.CommandParams) (color.Value, bool) {
	switch {
	case params.HSColor != nil:
		v := color.NewHSValue(*params.HSColor)
		params.HSColor = nil
		return v, true
	case params.RGBColor != nil:
		v := color.NewRGBValue(*params.RGBColor)
		params.RGBColor = nil
		return v, true
	case params.XYColor != nil:
		v := color.NewXYValue(*params.XYColor)
		params.XYColor = nil
		return v, true
	case params.RGBWColor != nil:
		v := color.NewRGBWValue(*params.RGBWColor)
		params.RGBWColor = nil
		return v, true
	case params.RGBWWColor != nil:
		v := color.NewRGBWWValue(*params.RGBWWColor)
		params.RGBWWColor = nil
		return v, true
	}

	return color.Value{}, false
}

func storeColorValue(params *device.CommandParams, v color.Value) {
	switch v.Mode {
	case enums.ColorModeHS:
		c := v.HS
		params.HSColor = &c
	case enums.ColorModeXY:
		c := v.XY
		params.XYColor = &c
	case enums.ColorModeRGB:
		c := v.RGB
		params.RGBColor = &c
	case enums.ColorModeRGBW:
		c := v.RGBW
		params.RGBWColor = &c
	case enums.ColorModeRGBWW:
		c := v.RGBWW
		params.RGBWWColor = &c
	}
}

// Rejects requests carrying more than one field of an exclusive group.
func validateExclusive(params *device.CommandParams) error {
	brightness := make([]string, 0, 1)
	if params.Brightness != nil {
		brightness = append(brightness, "brightness")
	}
	if params.BrightnessPct != nil {
		brightness = append(brightness, "brightness_pct")
	}
	if params.BrightnessStep != nil {
		brightness = append(brightness, "brightness_step")
	}
	if params.BrightnessStepPct != nil {
		brightness = append(brightness, "brightness_step_pct")
	}
	if len(brightness) > 1 {
		return &ErrInvalidRequest{Fields: brightness}
	}

	colors := make([]string, 0, 1)
	if params.Profile != nil {
		colors = append(colors, "profile")
	}
	if params.ColorName != nil {
		colors = append(colors, "color_name")
	}
	if params.ColorTemp != nil {
		colors = append(colors, "color_temp")
	}
	if params.Kelvin != nil {
		colors = append(colors, "kelvin")
	}
	if params.HSColor != nil {
		colors = append(colors, "hs_color")
	}
	if params.XYColor != nil {
		colors = append(colors, "xy_color")
	}
	if params.RGBColor != nil {
		colors = append(colors, "rgb_color")
	}
	if params.RGBWColor != nil {
		colors = append(colors, "rgbw_color")
	}
	if params.RGBWWColor != nil {
		colors = append(colors, "rgbww_color")
	}
	if params.White != nil {
		colors = append(colors, "white")
	}
	if len(colors) > 1 {
		return &ErrInvalidRequest{Fields: colors}
	}

	return nil
}
