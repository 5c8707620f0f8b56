package server

import (
	"encoding/json"

	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/plugins/device/enums"
)

// Invokes light command. The ID is either an exact entity ID
// or a glob pattern matching several lights.
func (s *Server) commandInvokeLightCommand(lightID string, opName string, data []byte) error {
	command, err := enums.CommandString(opName)
	if err != nil {
		s.Logger.Warn("Received unknown command", common.LogSystemToken, logSystem,
			common.LogLightNameToken, lightID, common.LogLightCommandToken, opName)
		return &ErrUnknownCommand{Name: opName}
	}

	lights := s.state.Match(lightID)
	if 0 == len(lights) {
		s.Logger.Warn("Failed to find light", common.LogSystemToken, logSystem,
			common.LogLightNameToken, lightID)
		return &ErrUnknownLight{ID: lightID}
	}

	params := &device.CommandParams{}
	if len(data) > 0 {
		err := json.Unmarshal(data, params)
		if err != nil {
			s.Logger.Error("Failed to unmarshal input request", err,
				common.LogSystemToken, logSystem)
			return &ErrBadRequest{}
		}
	}

	if !s.Settings.Validator().Validate(params) {
		s.Logger.Warn("Received invalid command params", common.LogSystemToken, logSystem,
			common.LogLightNameToken, lightID, common.LogLightCommandToken, opName)
		return &ErrBadRequest{}
	}

	var lastErr error
	for _, l := range lights {
		err := s.dispatcher.Handle(command, l, params)
		if err != nil {
			s.Logger.Error("Failed to invoke light command", err,
				common.LogSystemToken, logSystem, common.LogLightNameToken, l.EntityID(),
				common.LogLightCommandToken, opName)
			lastErr = err
		}
	}

	return lastErr
}
