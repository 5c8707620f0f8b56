package color

import (
	"testing"

	"github.com/lumen-home/light/plugins/common"
	"github.com/stretchr/testify/assert"
)

// Tests primary colors hue/saturation decomposition.
func TestRGBToHS(t *testing.T) {
	in := []struct {
		rgb      common.RGB
		expected common.HS
	}{
		{common.RGB{R: 255}, common.HS{Hue: 0, Saturation: 100}},
		{common.RGB{G: 255}, common.HS{Hue: 120, Saturation: 100}},
		{common.RGB{B: 255}, common.HS{Hue: 240, Saturation: 100}},
		{common.RGB{R: 255, G: 255, B: 255}, common.HS{Hue: 0, Saturation: 0}},
		{common.RGB{}, common.HS{Hue: 0, Saturation: 0}},
	}

	for k, v := range in {
		assert.Equal(t, v.expected, RGBToHS(v.rgb), "case %d", k)
	}
}

// Tests hue/saturation to rgb for primary colors.
func TestHSToRGB(t *testing.T) {
	in := []struct {
		hs       common.HS
		expected common.RGB
	}{
		{common.HS{Hue: 0, Saturation: 100}, common.RGB{R: 255}},
		{common.HS{Hue: 120, Saturation: 100}, common.RGB{G: 255}},
		{common.HS{Hue: 240, Saturation: 100}, common.RGB{B: 255}},
		{common.HS{Hue: 0, Saturation: 0}, common.RGB{R: 255, G: 255, B: 255}},
	}

	for k, v := range in {
		assert.Equal(t, v.expected, HSToRGB(v.hs), "case %d", k)
	}
}

// Tests hs to rgb and back round trip.
func TestHSRoundTrip(t *testing.T) {
	in := []common.HS{
		{Hue: 30, Saturation: 80},
		{Hue: 210.5, Saturation: 45},
		{Hue: 300, Saturation: 100},
	}

	for k, v := range in {
		out := RGBToHS(HSToRGB(v))
		assert.InDelta(t, v.Hue, out.Hue, 1, "hue %d", k)
		assert.InDelta(t, v.Saturation, out.Saturation, 1, "saturation %d", k)
	}
}

// Tests xy conversion corner cases.
func TestRGBToXY(t *testing.T) {
	assert.Equal(t, common.XY{}, RGBToXY(common.RGB{}), "black")

	white := RGBToXY(common.RGB{R: 255, G: 255, B: 255})
	assert.InDelta(t, 0.3227, white.X, 0.01, "white x")
	assert.InDelta(t, 0.329, white.Y, 0.01, "white y")
}

// Tests rgb to xy and back round trip.
func TestXYRoundTrip(t *testing.T) {
	in := []common.RGB{
		{R: 255, G: 0, B: 0},
		{R: 128, G: 200, B: 64},
		{R: 10, G: 10, B: 250},
	}

	for k, v := range in {
		xy := RGBToXY(v)
		out := RGBToXY(XYToRGB(xy))
		assert.InDelta(t, xy.X, out.X, 0.02, "x %d", k)
		assert.InDelta(t, xy.Y, out.Y, 0.02, "y %d", k)
	}
}

// Tests white channel extraction.
func TestRGBToRGBW(t *testing.T) {
	in := []struct {
		rgb      common.RGB
		expected common.RGBW
	}{
		{common.RGB{R: 255, G: 255, B: 255}, common.RGBW{W: 255}},
		{common.RGB{R: 255}, common.RGBW{R: 255}},
		{common.RGB{}, common.RGBW{}},
	}

	for k, v := range in {
		assert.Equal(t, v.expected, RGBToRGBW(v.rgb), "case %d", k)
	}
}

// Tests folding white channel back.
func TestRGBWToRGB(t *testing.T) {
	in := []struct {
		rgbw     common.RGBW
		expected common.RGB
	}{
		{common.RGBW{W: 255}, common.RGB{R: 255, G: 255, B: 255}},
		{common.RGBW{R: 255}, common.RGB{R: 255}},
		{common.RGBW{}, common.RGB{}},
	}

	for k, v := range in {
		assert.Equal(t, v.expected, RGBWToRGB(v.rgbw), "case %d", k)
	}
}

// Tests cold/warm white decomposition keeps channel scale.
func TestRGBWWRoundTrip(t *testing.T) {
	in := []common.RGB{
		{R: 255, G: 255, B: 255},
		{R: 255, G: 100, B: 50},
	}

	for k, v := range in {
		rgbww := RGBToRGBWW(v, 153, 500)
		out := RGBWWToRGB(rgbww, 153, 500)
		assert.InDelta(t, float64(v.R), float64(out.R), 5, "r %d", k)
		assert.InDelta(t, float64(v.G), float64(out.G), 5, "g %d", k)
		assert.InDelta(t, float64(v.B), float64(out.B), 5, "b %d", k)
	}
}

// Tests named color lookup normalization.
func TestNameToRGB(t *testing.T) {
	rgb, err := NameToRGB("red")
	assert.NoError(t, err, "red")
	assert.Equal(t, common.RGB{R: 255}, rgb, "red value")

	rgb, err = NameToRGB("Light Goldenrod Yellow")
	assert.NoError(t, err, "spaced name")
	assert.Equal(t, common.RGB{R: 250, G: 250, B: 210}, rgb, "spaced name value")

	_, err = NameToRGB("not a color")
	assert.Error(t, err, "unknown name")
	assert.IsType(t, &ErrUnknownColorName{}, err, "unknown name type")
}

// Tests mired/kelvin floor conversions.
func TestMiredKelvin(t *testing.T) {
	assert.Equal(t, 6535, MiredToKelvin(153), "153 mireds")
	assert.Equal(t, 2000, MiredToKelvin(500), "500 mireds")
	assert.Equal(t, 153, KelvinToMired(6500), "6500K")
	assert.Equal(t, 500, KelvinToMired(2000), "2000K")
}

// Tests black body approximation at known points.
func TestTemperatureToRGB(t *testing.T) {
	r, g, b := TemperatureToRGB(6600)
	assert.Equal(t, 255.0, r, "6600K red")
	assert.Equal(t, 255.0, g, "6600K green")
	assert.Equal(t, 255.0, b, "6600K blue")

	r, g, b = TemperatureToRGB(2000)
	assert.Equal(t, 255.0, r, "2000K red")
	assert.InDelta(t, 136.9, g, 1, "2000K green")
	assert.InDelta(t, 13.9, b, 1, "2000K blue")

	// Out of range input is clamped.
	r1, g1, b1 := TemperatureToRGB(500)
	r2, g2, b2 := TemperatureToRGB(1000)
	assert.Equal(t, r2, r1, "clamped red")
	assert.Equal(t, g2, g1, "clamped green")
	assert.Equal(t, b2, b1, "clamped blue")
}

// Tests warm temperatures resolve to saturated warm hues.
func TestTemperatureToHS(t *testing.T) {
	hs := TemperatureToHS(2000)
	assert.InDelta(t, 30.6, hs.Hue, 2, "2000K hue")
	assert.InDelta(t, 94.5, hs.Saturation, 2, "2000K saturation")

	hs = TemperatureToHS(6600)
	assert.Equal(t, 0.0, hs.Saturation, "6600K is white")
}

// Tests cold/warm split over the mireds range.
func TestTemperatureToRGBWW(t *testing.T) {
	in := []struct {
		mireds     int
		brightness uint8
		expected   common.RGBWW
	}{
		{153, 200, common.RGBWW{CW: 200, WW: 0}},
		{500, 200, common.RGBWW{CW: 0, WW: 200}},
		{326, 200, common.RGBWW{CW: 100, WW: 100}},
	}

	for k, v := range in {
		out := TemperatureToRGBWW(v.mireds, v.brightness, 153, 500)
		assert.InDelta(t, float64(v.expected.CW), float64(out.CW), 1, "cw %d", k)
		assert.InDelta(t, float64(v.expected.WW), float64(out.WW), 1, "ww %d", k)
		assert.Equal(t, int(v.brightness), int(out.CW)+int(out.WW), "sum %d", k)
	}
}
