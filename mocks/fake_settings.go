//+build !release

package mocks

import (
	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/providers"
)

// Fake settings.
type fakeSettings struct {
	logger common.ILoggerProvider
	cron   *fakeCron
	lights []*providers.RawLight
	master *providers.MasterSettings
}

func (f *fakeSettings) SystemLogger() common.ILoggerProvider {
	return f.logger
}

func (f *fakeSettings) Validator() providers.IValidatorProvider {
	return FakeNewValidator(true)
}

func (f *fakeSettings) Cron() providers.ICronProvider {
	return f.cron
}

func (f *fakeSettings) MasterSettings() *providers.MasterSettings {
	return f.master
}

func (f *fakeSettings) LightsConfig() []*providers.RawLight {
	return f.lights
}

// FakeNewSettings creates a new fake settings provider.
func FakeNewSettings(logCallback func(string), lights []*providers.RawLight) *fakeSettings {
	return &fakeSettings{
		logger: FakeNewLogger(logCallback),
		cron:   FakeNewCron(),
		lights: lights,
		master: &providers.MasterSettings{
			Port:           8000,
			ProfilesReload: "@every 6h",
			Logger:         "console",
		},
	}
}
