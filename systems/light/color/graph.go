package color

import (
	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device/enums"
)

// Range defines a device's color temperature bounds in mireds.
type Range struct {
	MinMireds int
	MaxMireds int
}

// Value is a tagged union over the multi-channel color representations.
// Only the field matching Mode is meaningful.
type Value struct {
	Mode  enums.ColorMode
	HS    common.HS
	XY    common.XY
	RGB   common.RGB
	RGBW  common.RGBW
	RGBWW common.RGBWW
}

// NewHSValue wraps a hue/saturation color.
func NewHSValue(c common.HS) Value {
	return Value{Mode: enums.ColorModeHS, HS: c}
}

// NewXYValue wraps an xy chromaticity color.
func NewXYValue(c common.XY) Value {
	return Value{Mode: enums.ColorModeXY, XY: c}
}

// NewRGBValue wraps a red/green/blue color.
func NewRGBValue(c common.RGB) Value {
	return Value{Mode: enums.ColorModeRGB, RGB: c}
}

// NewRGBWValue wraps a red/green/blue/white color.
func NewRGBWValue(c common.RGBW) Value {
	return Value{Mode: enums.ColorModeRGBW, RGBW: c}
}

// NewRGBWWValue wraps a red/green/blue/cold-white/warm-white color.
func NewRGBWWValue(c common.RGBWW) Value {
	return Value{Mode: enums.ColorModeRGBWW, RGBWW: c}
}

type edge struct {
	from enums.ColorMode
	to   enums.ColorMode
}

type convertFunc func(Value, Range) Value

// Direct conversion edges. Every other pair is routed through
// rgb as the pivot representation.
var edges = map[edge]convertFunc{
	{enums.ColorModeHS, enums.ColorModeRGB}: func(v Value, _ Range) Value {
		return NewRGBValue(HSToRGB(v.HS))
	},
	{enums.ColorModeRGB, enums.ColorModeHS}: func(v Value, _ Range) Value {
		return NewHSValue(RGBToHS(v.RGB))
	},
	{enums.ColorModeHS, enums.ColorModeXY}: func(v Value, _ Range) Value {
		return NewXYValue(HSToXY(v.HS))
	},
	{enums.ColorModeXY, enums.ColorModeHS}: func(v Value, _ Range) Value {
		return NewHSValue(XYToHS(v.XY))
	},
	{enums.ColorModeRGB, enums.ColorModeXY}: func(v Value, _ Range) Value {
		return NewXYValue(RGBToXY(v.RGB))
	},
	{enums.ColorModeXY, enums.ColorModeRGB}: func(v Value, _ Range) Value {
		return NewRGBValue(XYToRGB(v.XY))
	},
	{enums.ColorModeRGB, enums.ColorModeRGBW}: func(v Value, _ Range) Value {
		return NewRGBWValue(RGBToRGBW(v.RGB))
	},
	{enums.ColorModeRGBW, enums.ColorModeRGB}: func(v Value, _ Range) Value {
		return NewRGBValue(RGBWToRGB(v.RGBW))
	},
	{enums.ColorModeRGB, enums.ColorModeRGBWW}: func(v Value, r Range) Value {
		return NewRGBWWValue(RGBToRGBWW(v.RGB, r.MinMireds, r.MaxMireds))
	},
	{enums.ColorModeRGBWW, enums.ColorModeRGB}: func(v Value, r Range) Value {
		return NewRGBValue(RGBWWToRGB(v.RGBWW, r.MinMireds, r.MaxMireds))
	},
}

// Precomputed conversion routes between every pair of color modes.
// The graph is fixed, so the shortest path is resolved once at start.
var routes = map[edge][]convertFunc{}

// Cascade target preference per source mode. The orders are a
// compatibility contract inherited from the legacy per-pair dispatch
// rules and must not be re-derived.
var cascadeOrder = map[enums.ColorMode][]enums.ColorMode{
	enums.ColorModeHS: {enums.ColorModeRGB, enums.ColorModeRGBW,
		enums.ColorModeRGBWW, enums.ColorModeXY},
	enums.ColorModeRGB: {enums.ColorModeRGBW, enums.ColorModeRGBWW,
		enums.ColorModeHS, enums.ColorModeXY},
	enums.ColorModeXY: {enums.ColorModeHS, enums.ColorModeRGB,
		enums.ColorModeRGBW, enums.ColorModeRGBWW},
	enums.ColorModeRGBW: {enums.ColorModeRGB, enums.ColorModeRGBWW,
		enums.ColorModeHS, enums.ColorModeXY},
	enums.ColorModeRGBWW: {enums.ColorModeRGB, enums.ColorModeRGBW,
		enums.ColorModeHS, enums.ColorModeXY},
}

func init() {
	for _, from := range enums.ColorModesColor {
		for _, to := range enums.ColorModesColor {
			if from == to {
				continue
			}

			key := edge{from, to}
			if direct, ok := edges[key]; ok {
				routes[key] = []convertFunc{direct}
				continue
			}

			routes[key] = []convertFunc{
				edges[edge{from, enums.ColorModeRGB}],
				edges[edge{enums.ColorModeRGB, to}],
			}
		}
	}
}

// Convert rewrites a color value into the target representation
// following the precomputed route.
func Convert(v Value, to enums.ColorMode, r Range) (Value, error) {
	if v.Mode == to {
		return v, nil
	}

	route, ok := routes[edge{v.Mode, to}]
	if !ok {
		return v, &ErrNoConversion{From: v.Mode.String(), To: to.String()}
	}

	for _, step := range route {
		v = step(v, r)
	}

	return v, nil
}

// Cascade rewrites a color value into the best representation the
// target supports, following the fixed preference order for the
// source mode. The second return is false when the target supports
// no multi-channel color mode at all.
func Cascade(v Value, supported []enums.ColorMode, r Range) (Value, bool) {
	if enums.SliceContainsColorMode(supported, v.Mode) {
		return v, true
	}

	for _, target := range cascadeOrder[v.Mode] {
		if !enums.SliceContainsColorMode(supported, target) {
			continue
		}

		converted, err := Convert(v, target, r)
		if err != nil {
			return v, false
		}

		return converted, true
	}

	return v, false
}
