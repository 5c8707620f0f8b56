package enums

import "fmt"

// LightFeature describes legacy bitmask with light features.
// Brightness, color-temp, color and white-value bits predate
// color-mode declaration and survive only at the boundary with
// legacy integrations.
type LightFeature int

const (
	// FeatureBrightness describes deprecated brightness support bit.
	FeatureBrightness LightFeature = 1
	// FeatureColorTemp describes deprecated color temperature support bit.
	FeatureColorTemp LightFeature = 2
	// FeatureEffect describes effect support bit.
	FeatureEffect LightFeature = 4
	// FeatureFlash describes flash support bit.
	FeatureFlash LightFeature = 8
	// FeatureColor describes deprecated color support bit.
	FeatureColor LightFeature = 16
	// FeatureTransition describes transition time support bit.
	FeatureTransition LightFeature = 32
	// FeatureWhiteValue describes deprecated white channel support bit.
	FeatureWhiteValue LightFeature = 128
)

var featureNames = map[LightFeature]string{
	FeatureBrightness: "brightness",
	FeatureColorTemp:  "color_temp",
	FeatureEffect:     "effect",
	FeatureFlash:      "flash",
	FeatureColor:      "color",
	FeatureTransition: "transition",
	FeatureWhiteValue: "white_value",
}

// String returns feature bit name.
func (i LightFeature) String() string {
	return featureNames[i]
}

// LightFeatureString returns feature bit from its name.
func LightFeatureString(s string) (LightFeature, error) {
	for k, v := range featureNames {
		if v == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%s does not belong to LightFeature values", s)
}

// UnmarshalYAML implements yaml un-marshaller.
func (i *LightFeature) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	var err error
	*i, err = LightFeatureString(s)
	return err
}

// Has checks whether feature bit is raised.
func (i LightFeature) Has(f LightFeature) bool {
	return i&f != 0
}

// ColorModesFromFeatures infers a supported-modes set from the legacy
// feature bitmask. The mapping is lossy: effect, flash and transition
// bits carry no color information and are ignored.
func ColorModesFromFeatures(features LightFeature) []ColorMode {
	modes := make([]ColorMode, 0)

	if features.Has(FeatureColorTemp) {
		modes = append(modes, ColorModeColorTemp)
	}
	if features.Has(FeatureColor) {
		modes = append(modes, ColorModeHS)
	}
	if features.Has(FeatureWhiteValue) {
		modes = append(modes, ColorModeRGBW)
	}
	if len(modes) == 0 && features.Has(FeatureBrightness) {
		modes = append(modes, ColorModeBrightness)
	}
	if len(modes) == 0 {
		modes = append(modes, ColorModeOnOff)
	}

	return modes
}

// FeaturesFromColorModes raises legacy feature bits matching a
// supported-modes set on top of already declared feature flags.
// Lossy in the other direction: rgb, rgbw, rgbww and xy all collapse
// into the single color bit.
func FeaturesFromColorModes(features LightFeature, modes []ColorMode) LightFeature {
	if modes == nil {
		return features
	}

	if ColorSupported(modes) {
		features |= FeatureColor
	}
	if BrightnessSupported(modes) {
		features |= FeatureBrightness
	}
	if ColorTempSupported(modes) {
		features |= FeatureColorTemp
	}

	return features
}
