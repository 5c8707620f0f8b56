package common

// HS defines hue/saturation color parameter type.
// Hue is degrees in [0, 360), saturation is percents in [0, 100].
type HS struct {
	Hue        float64 `json:"hue" yaml:"hue" validate:"gte=0,lt=360"`
	Saturation float64 `json:"saturation" yaml:"saturation" validate:"gte=0,lte=100"`
}

// XY defines CIE 1931 chromaticity color parameter type.
type XY struct {
	X float64 `json:"x" yaml:"x" validate:"gte=0,lte=1"`
	Y float64 `json:"y" yaml:"y" validate:"gte=0,lte=1"`
}

// RGB defines red/green/blue color parameter type.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// RGBW defines red/green/blue color parameter type with
// a dedicated white channel.
type RGBW struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	W uint8 `json:"w" yaml:"w"`
}

// RGBWW defines red/green/blue color parameter type with
// dedicated cold-white and warm-white channels.
type RGBWW struct {
	R  uint8 `json:"r" yaml:"r"`
	G  uint8 `json:"g" yaml:"g"`
	B  uint8 `json:"b" yaml:"b"`
	CW uint8 `json:"cw" yaml:"cw"`
	WW uint8 `json:"ww" yaml:"ww"`
}
