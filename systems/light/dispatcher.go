package light

import (
	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/plugins/device/enums"
	"github.com/lumen-home/light/systems/light/profiles"
)

const (
	// Logger system representation.
	logSystem = "light"
	// Normalizer logger system representation.
	logSystemNormalizer = "light.normalizer"
)

// Dispatcher routes turn-on/turn-off/toggle invocations through the
// normalizer to the device command interface.
type Dispatcher struct {
	normalizer *Normalizer
	profiles   profiles.IProfileProvider
	logger     common.ILoggerProvider
}

// ConstructDispatcher has data required for a new dispatcher.
type ConstructDispatcher struct {
	Profiles profiles.IProfileProvider
	Logger   common.ILoggerProvider
}

// NewDispatcher constructs a new service dispatcher.
func NewDispatcher(ctor *ConstructDispatcher) *Dispatcher {
	return &Dispatcher{
		normalizer: NewNormalizer(&ConstructNormalizer{
			Profiles: ctor.Profiles,
			Logger:   ctor.Logger,
		}),
		profiles: ctor.Profiles,
		logger:   ctor.Logger,
	}
}

// Handle dispatches a service verb to its handler.
func (d *Dispatcher) Handle(cmd enums.Command, light device.ILight,
	params *device.CommandParams) error {
	switch cmd {
	case enums.CmdTurnOn:
		return d.TurnOn(light, params)
	case enums.CmdTurnOff:
		return d.TurnOff(light, params)
	case enums.CmdToggle:
		return d.Toggle(light, params)
	}

	return &ErrUnknownCommand{Command: cmd.String()}
}

// TurnOn handles turning a light on. If brightness resolves to 0,
// the request is routed to turn-off instead.
func (d *Dispatcher) TurnOn(light device.ILight, params *device.CommandParams) error {
	normalized, off, err := d.normalizer.Normalize(light, params)
	if err != nil {
		return err
	}

	if off {
		d.logger.Debug("Zero brightness requested, turning light off",
			common.LogSystemToken, logSystem, common.LogLightNameToken, light.EntityID())
		return d.TurnOff(light, params)
	}

	d.logger.Debug("Turning light on", common.LogSystemToken, logSystem,
		common.LogLightNameToken, light.EntityID())
	return light.TurnOn(normalized)
}

// TurnOff handles turning a light off. Color and brightness carry no
// meaning for turn-off, only transition, flash and effect survive.
func (d *Dispatcher) TurnOff(light device.ILight, params *device.CommandParams) error {
	p := params.Clone()
	if p.Transition == nil {
		d.profiles.ApplyDefault(light.EntityID(), true, p)
	}

	d.logger.Debug("Turning light off", common.LogSystemToken, logSystem,
		common.LogLightNameToken, light.EntityID())
	return light.TurnOff(filterTurnOff(light, p))
}

// Toggle reads the current on/off state once and dispatches. The
// read-then-branch is not transactional, a concurrent external state
// change is an accepted race.
func (d *Dispatcher) Toggle(light device.ILight, params *device.CommandParams) error {
	if light.IsOn() {
		return d.TurnOff(light, params)
	}

	return d.TurnOn(light, params)
}

// Keeps only the turn-off parameters the device's features support.
func filterTurnOff(light device.ILight, params *device.CommandParams) *device.CommandParams {
	features := light.SupportedFeatures()
	filtered := &device.CommandParams{}

	if features.Has(enums.FeatureTransition) {
		filtered.Transition = params.Transition
	}
	if features.Has(enums.FeatureFlash) {
		filtered.Flash = params.Flash
	}
	if features.Has(enums.FeatureEffect) {
		filtered.Effect = params.Effect
	}

	return filtered
}
