// Package providers describes interfaces for internal subsystems.
package providers

import (
	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device/enums"
)

// ISettingsProvider defines settings loader provider logic.
type ISettingsProvider interface {
	SystemLogger() common.ILoggerProvider
	Validator() IValidatorProvider
	Cron() ICronProvider
	MasterSettings() *MasterSettings
	LightsConfig() []*RawLight
}

// MasterSettings has configured data for the service.
type MasterSettings struct {
	Port           int    `yaml:"port" validate:"required,port" default:"8000"`
	ProfilesPath   string `yaml:"profilesPath"`
	ProfilesReload string `yaml:"profilesReload" default:"@every 6h"`
	Logger         string `yaml:"logger" validate:"oneof=console structured" default:"console"`
}

// RawLight has data describing a single light entity,
// loaded from config files.
type RawLight struct {
	Name       string               `yaml:"name" validate:"required"`
	ColorModes []enums.ColorMode    `yaml:"colorModes"`
	Features   []enums.LightFeature `yaml:"features"`
	MinMireds  int                  `yaml:"minMireds" validate:"gte=0" default:"153"`
	MaxMireds  int                  `yaml:"maxMireds" validate:"gte=0" default:"500"`
	Effects    []string             `yaml:"effects"`
}
