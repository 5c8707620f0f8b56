package color

import (
	"math"

	"github.com/lumen-home/light/plugins/common"
)

// MiredToKelvin converts a color temperature in mireds to Kelvin.
func MiredToKelvin(mireds int) int {
	return int(math.Floor(1000000 / float64(mireds)))
}

// KelvinToMired converts a color temperature in Kelvin to mireds.
func KelvinToMired(kelvin int) int {
	return int(math.Floor(1000000 / float64(kelvin)))
}

// TemperatureToRGB returns an RGB approximation of a black body at
// the given temperature. Tanner Helland's curve fit, valid between
// 1000K and 40000K, input clamped to that range.
func TemperatureToRGB(kelvin float64) (r, g, b float64) {
	if kelvin < 1000 {
		kelvin = 1000
	} else if kelvin > 40000 {
		kelvin = 40000
	}

	t := kelvin / 100
	return tempRed(t), tempGreen(t), tempBlue(t)
}

// TemperatureToHS converts a color temperature in Kelvin to
// its hue/saturation approximation.
func TemperatureToHS(kelvin float64) common.HS {
	r, g, b := TemperatureToRGB(kelvin)
	return rgbFloatToHS(r, g, b)
}

// TemperatureToRGBWW synthesizes dedicated white channels from a color
// temperature in mireds at the given brightness, splitting between the
// cold and warm channels over the device's mireds range.
func TemperatureToRGBWW(mireds int, brightness uint8, minMireds, maxMireds int) common.RGBWW {
	miredRange := float64(maxMireds - minMireds)
	cold := (float64(maxMireds-mireds) / miredRange) * float64(brightness)
	warm := float64(brightness) - cold

	return common.RGBWW{
		CW: clampByte(math.Round(cold)),
		WW: clampByte(math.Round(warm)),
	}
}

func tempRed(t float64) float64 {
	if t <= 66 {
		return 255
	}

	return bound(329.698727446 * math.Pow(t-60, -0.1332047592))
}

func tempGreen(t float64) float64 {
	if t <= 66 {
		return bound(99.4708025861*math.Log(t) - 161.1195681661)
	}

	return bound(288.1221695283 * math.Pow(t-60, -0.0755148492))
}

func tempBlue(t float64) float64 {
	if t >= 66 {
		return 255
	}
	if t <= 19 {
		return 0
	}

	return bound(138.5177312231*math.Log(t-10) - 305.0447927307)
}

func bound(v float64) float64 {
	return math.Max(0, math.Min(v, 255))
}
