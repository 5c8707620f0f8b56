//+build !release

package mocks

import (
	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/plugins/device/enums"
)

// FakeLight is a light with pre-set state and recorded commands.
type FakeLight struct {
	ID    string
	On    bool
	Modes []enums.ColorMode
	Feat  enums.LightFeature
	Mode  enums.ColorMode

	Bright  *uint8
	HS      *common.HS
	XY      *common.XY
	RGB     *common.RGB
	RGBW    *common.RGBW
	RGBWW   *common.RGBWW
	CT      *int
	White   *uint8
	Effects []string
	Running *string

	Min int
	Max int

	OnCalls  []*device.CommandParams
	OffCalls []*device.CommandParams
	CmdError error
}

// FakeNewLight creates a new fake light.
func FakeNewLight(id string, modes ...enums.ColorMode) *FakeLight {
	return &FakeLight{
		ID:       id,
		Modes:    modes,
		Mode:     enums.ColorModeUnknown,
		Min:      device.DefaultMinMireds,
		Max:      device.DefaultMaxMireds,
		OnCalls:  make([]*device.CommandParams, 0),
		OffCalls: make([]*device.CommandParams, 0),
	}
}

func (f *FakeLight) EntityID() string {
	return f.ID
}

func (f *FakeLight) IsOn() bool {
	return f.On
}

func (f *FakeLight) SupportedColorModes() []enums.ColorMode {
	return f.Modes
}

func (f *FakeLight) SupportedFeatures() enums.LightFeature {
	return f.Feat
}

func (f *FakeLight) ColorMode() enums.ColorMode {
	return f.Mode
}

func (f *FakeLight) Brightness() (uint8, bool) {
	if nil == f.Bright {
		return 0, false
	}
	return *f.Bright, true
}

func (f *FakeLight) HSColor() (common.HS, bool) {
	if nil == f.HS {
		return common.HS{}, false
	}
	return *f.HS, true
}

func (f *FakeLight) XYColor() (common.XY, bool) {
	if nil == f.XY {
		return common.XY{}, false
	}
	return *f.XY, true
}

func (f *FakeLight) RGBColor() (common.RGB, bool) {
	if nil == f.RGB {
		return common.RGB{}, false
	}
	return *f.RGB, true
}

func (f *FakeLight) RGBWColor() (common.RGBW, bool) {
	if nil == f.RGBW {
		return common.RGBW{}, false
	}
	return *f.RGBW, true
}

func (f *FakeLight) RGBWWColor() (common.RGBWW, bool) {
	if nil == f.RGBWW {
		return common.RGBWW{}, false
	}
	return *f.RGBWW, true
}

func (f *FakeLight) ColorTemp() (int, bool) {
	if nil == f.CT {
		return 0, false
	}
	return *f.CT, true
}

func (f *FakeLight) WhiteValue() (uint8, bool) {
	if nil == f.White {
		return 0, false
	}
	return *f.White, true
}

func (f *FakeLight) MinMireds() int {
	return f.Min
}

func (f *FakeLight) MaxMireds() int {
	return f.Max
}

func (f *FakeLight) EffectList() []string {
	return f.Effects
}

func (f *FakeLight) Effect() (string, bool) {
	if nil == f.Running {
		return "", false
	}
	return *f.Running, true
}

func (f *FakeLight) TurnOn(params *device.CommandParams) error {
	f.OnCalls = append(f.OnCalls, params)
	if nil == f.CmdError {
		f.On = true
	}
	return f.CmdError
}

func (f *FakeLight) TurnOff(params *device.CommandParams) error {
	f.OffCalls = append(f.OffCalls, params)
	if nil == f.CmdError {
		f.On = false
	}
	return f.CmdError
}

// SetBrightness pre-sets current brightness.
func (f *FakeLight) SetBrightness(v uint8) *FakeLight {
	f.Bright = &v
	return f
}

// SetColorTemp pre-sets current color temperature.
func (f *FakeLight) SetColorTemp(v int) *FakeLight {
	f.CT = &v
	return f
}

// SetHS pre-sets current hue/saturation color.
func (f *FakeLight) SetHS(v common.HS) *FakeLight {
	f.HS = &v
	return f
}
