package server

// muxKeys describes enum with known API tokens.
type muxKeys string

const (
	// urlLightID describes light ID URL param.
	urlLightID muxKeys = "lightID"
	// urlCommandName describes light command name URL param.
	urlCommandName muxKeys = "commandName"
	// routeAPI describes base api prefix.
	routeAPI = "/api/v1"
)
