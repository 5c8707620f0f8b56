// Package color contains pure conversions between light color representations.
package color

import (
	"math"

	"github.com/lumen-home/light/plugins/common"
)

// RGBToHS converts red/green/blue to hue/saturation.
func RGBToHS(c common.RGB) common.HS {
	return rgbFloatToHS(float64(c.R), float64(c.G), float64(c.B))
}

// HSToRGB converts hue/saturation to red/green/blue at full value.
func HSToRGB(c common.HS) common.RGB {
	r, g, b := hsvToRGB(c.Hue/360, c.Saturation/100, 1)
	return common.RGB{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}

// HSToXY converts hue/saturation to xy chromaticity.
func HSToXY(c common.HS) common.XY {
	return RGBToXY(HSToRGB(c))
}

// XYToHS converts xy chromaticity to hue/saturation.
func XYToHS(c common.XY) common.HS {
	rgb := XYToRGB(c)
	return rgbFloatToHS(float64(rgb.R), float64(rgb.G), float64(rgb.B))
}

// RGBToXY converts red/green/blue to xy chromaticity using
// gamma correction and the Wide RGB D65 formula.
func RGBToXY(c common.RGB) common.XY {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return common.XY{}
	}

	r := gammaCorrect(float64(c.R) / 255)
	g := gammaCorrect(float64(c.G) / 255)
	b := gammaCorrect(float64(c.B) / 255)

	x := r*0.664511 + g*0.154324 + b*0.162028
	y := r*0.283881 + g*0.668433 + b*0.047685
	z := r*0.000088 + g*0.072310 + b*0.986039

	sum := x + y + z
	return common.XY{X: round6(x / sum), Y: round6(y / sum)}
}

// XYToRGB converts xy chromaticity to red/green/blue at full brightness.
func XYToRGB(c common.XY) common.RGB {
	vy := c.Y
	if vy == 0 {
		vy += 0.00000000001
	}

	y := 1.0
	x := (y / vy) * c.X
	z := (y / vy) * (1 - c.X - vy)

	// Wide RGB D65 back-conversion.
	r := x*1.656492 - y*0.354851 - z*0.255038
	g := -x*0.707196 + y*1.655397 + z*0.036152
	b := x*0.051713 - y*0.121364 + z*1.011530

	r = reverseGamma(r)
	g = reverseGamma(g)
	b = reverseGamma(b)

	r = math.Max(0, r)
	g = math.Max(0, g)
	b = math.Max(0, b)

	if max := math.Max(r, math.Max(g, b)); max > 1 {
		r /= max
		g /= max
		b /= max
	}

	return common.RGB{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}

// RGBToRGBW extracts the white channel as the minimum of the input
// channels and re-scales the remainder to the full range.
func RGBToRGBW(c common.RGB) common.RGBW {
	w := math.Min(float64(c.R), math.Min(float64(c.G), float64(c.B)))
	out := matchMaxScale(
		[]float64{float64(c.R), float64(c.G), float64(c.B)},
		[]float64{float64(c.R) - w, float64(c.G) - w, float64(c.B) - w, w})

	return common.RGBW{R: out[0], G: out[1], B: out[2], W: out[3]}
}

// RGBWToRGB folds the white channel back into the color channels.
func RGBWToRGB(c common.RGBW) common.RGB {
	out := matchMaxScale(
		[]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.W)},
		[]float64{float64(c.R) + float64(c.W), float64(c.G) + float64(c.W), float64(c.B) + float64(c.W)})

	return common.RGB{R: out[0], G: out[1], B: out[2]}
}

// RGBToRGBWW decomposes color into dedicated cold/warm white channels.
// The white level is anchored on the midpoint of the device's color
// temperature range, hence the mireds bounds parameters.
func RGBToRGBWW(c common.RGB, minMireds, maxMireds int) common.RGBWW {
	miredMidpoint := float64(minMireds) + float64(maxMireds-minMireds)/2
	wr, wg, wb := TemperatureToRGB(1000000 / miredMidpoint)

	// Find the ratio of the midpoint white in the input channels.
	whiteLevel := math.Min(
		safeDiv(float64(c.R), wr),
		math.Min(safeDiv(float64(c.G), wg), safeDiv(float64(c.B), wb)))

	out := matchMaxScale(
		[]float64{float64(c.R), float64(c.G), float64(c.B)},
		[]float64{
			float64(c.R) - wr*whiteLevel,
			float64(c.G) - wg*whiteLevel,
			float64(c.B) - wb*whiteLevel,
			math.Round(whiteLevel * 255),
			math.Round(whiteLevel * 255)})

	return common.RGBWW{R: out[0], G: out[1], B: out[2], CW: out[3], WW: out[4]}
}

// RGBWWToRGB folds cold/warm white channels back into color channels.
func RGBWWToRGB(c common.RGBWW, minMireds, maxMireds int) common.RGB {
	ctRatio := 0.5
	if c.CW != 0 || c.WW != 0 {
		ctRatio = float64(c.WW) / (float64(c.CW) + float64(c.WW))
	}

	ctMireds := float64(minMireds) + ctRatio*float64(maxMireds-minMireds)
	var wr, wg, wb float64
	if ctMireds > 0 {
		wr, wg, wb = TemperatureToRGB(1000000 / ctMireds)
	}

	whiteLevel := math.Max(float64(c.CW), float64(c.WW)) / 255
	out := matchMaxScale(
		[]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.CW), float64(c.WW)},
		[]float64{
			float64(c.R) + wr*whiteLevel,
			float64(c.G) + wg*whiteLevel,
			float64(c.B) + wb*whiteLevel})

	return common.RGB{R: out[0], G: out[1], B: out[2]}
}

// Scales the output channels so their maximum matches the input
// maximum, keeping the full channel range in use.
func matchMaxScale(input, output []float64) []uint8 {
	var maxIn, maxOut float64
	for _, v := range input {
		maxIn = math.Max(maxIn, v)
	}
	for _, v := range output {
		maxOut = math.Max(maxOut, v)
	}

	factor := 0.0
	if maxOut != 0 {
		factor = maxIn / maxOut
	}

	result := make([]uint8, len(output))
	for i, v := range output {
		result[i] = clampByte(math.Round(v * factor))
	}

	return result
}

func rgbFloatToHS(r, g, b float64) common.HS {
	h, s, _ := rgbToHSV(r/255, g/255, b/255)
	return common.HS{Hue: round3(h * 360), Saturation: round3(s * 100)}
}

// Standard hsv decomposition, hue in [0, 1).
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	v = max

	if max == min {
		return 0, 0, v
	}

	s = (max - min) / max
	rc := (max - r) / (max - min)
	gc := (max - g) / (max - min)
	bc := (max - b) / (max - min)

	switch max {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}

	h = h / 6
	h = h - math.Floor(h)
	return h, s, v
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func gammaCorrect(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}

	return v / 12.92
}

func reverseGamma(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}

	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}

	return uint8(v)
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	return a / b
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round6(v float64) float64 {
	return math.Round(v*1000000) / 1000000
}
