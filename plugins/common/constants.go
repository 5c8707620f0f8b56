package common

const (
	// LogSystemToken describes system log entry.
	LogSystemToken = "system"
	// LogErrorToken describes error log entry.
	LogErrorToken = "error"
	// LogFileToken describes file log entry.
	LogFileToken = "file"
	// LogLightNameToken describes light entity log entry.
	LogLightNameToken = "light"
	// LogLightCommandToken describes light command log entry.
	LogLightCommandToken = "light_cmd"
	// LogColorModeToken describes color mode log entry.
	LogColorModeToken = "color_mode"
	// LogColorNameToken describes named color log entry.
	LogColorNameToken = "color_name"
	// LogProfileToken describes lighting profile log entry.
	LogProfileToken = "profile"
	// LogFieldToken describes field log entry.
	LogFieldToken = "field"
	// LogRowToken describes profile file row log entry.
	LogRowToken = "row"
	// LogURLToken describes URL log entry.
	LogURLToken = "url"
)
