// Package settings is responsible for parsing yaml-based configuration.
package settings

import (
	"bytes"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/providers"
	"github.com/lumen-home/light/systems/logger"
	"github.com/lumen-home/light/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "settings"
)

const (
	// Describes config record for the service itself.
	configRecordMaster = "master"
	// Describes config record for a single light.
	configRecordLight = "light"
)

// StartUpOptions defines arguments allowed by the system.
type StartUpOptions struct {
	ConfigFolder string `short:"c" long:"config" description:"Configuration files location." default:"./configs"`
}

// Defines loaded config record.
type rawRecord struct {
	System string
	Config []byte
}

// System settings.
type settingsProvider struct {
	logger    common.ILoggerProvider
	cron      providers.ICronProvider
	validator providers.IValidatorProvider

	mSettings    *providers.MasterSettings
	lightsConfig []*providers.RawLight
}

// Load system configuration.
func Load(options *StartUpOptions) providers.ISettingsProvider {
	settings := settingsProvider{
		logger:       logger.NewConsoleLogger(),
		lightsConfig: make([]*providers.RawLight, 0),
	}

	settings.validator = utils.NewValidator(settings.logger)

	allRecords := make([]*rawRecord, 0)
	files, err := configFiles(options.ConfigFolder)
	if err != nil {
		settings.logger.Fatal("Didn't get any configuration", err,
			common.LogSystemToken, logSystem)
		return nil
	}

	for _, name := range files {
		fileData, err := ioutil.ReadFile(name) // nolint: gosec
		if err != nil {
			settings.logger.Error("Failed to read config file", err,
				common.LogSystemToken, logSystem, common.LogFileToken, name)
			continue
		}

		allRecords = append(allRecords, settings.loadFile(fileData)...)
	}

	for _, v := range allRecords {
		settings.parseRecord(v)
	}

	settings.loadLoggerProvider()
	settings.validate()
	return &settings
}

// SystemLogger returns default system logger.
func (s *settingsProvider) SystemLogger() common.ILoggerProvider {
	return s.logger
}

// Validator returns structures validator.
func (s *settingsProvider) Validator() providers.IValidatorProvider {
	return s.validator
}

// Cron returns system's cron provider.
func (s *settingsProvider) Cron() providers.ICronProvider {
	return s.cron
}

// MasterSettings returns service configuration.
func (s *settingsProvider) MasterSettings() *providers.MasterSettings {
	return s.mSettings
}

// LightsConfig returns configured lights definitions.
func (s *settingsProvider) LightsConfig() []*providers.RawLight {
	return s.lightsConfig
}

// Validates whether all necessary settings are present.
func (s *settingsProvider) validate() {
	if nil == s.mSettings {
		s.logger.Warn("Service settings are not defined, using the default ones",
			common.LogSystemToken, logSystem)
		set := &providers.MasterSettings{}
		if !s.validator.Validate(set) {
			panic("Incorrect default service settings")
		}

		s.mSettings = set
	}

	s.cron = utils.NewCron()
	_, err := s.cron.AddFunc("@every 10s", func() {
		s.logger.Flush()
	})

	if err != nil {
		panic("Failed to register logger flushing")
	}
}

// Processes single yaml file.
func (s *settingsProvider) loadFile(fileData []byte) []*rawRecord {
	records := make([]*rawRecord, 0)
	decoder := yaml.NewDecoder(bytes.NewReader(fileData))
	for {
		var value map[string]interface{}
		err := decoder.Decode(&value)
		if err == io.EOF {
			break
		}

		if err != nil {
			s.logger.Error("Failed to parse config file", err, common.LogSystemToken, logSystem)
			continue
		}

		recordType := ""
		if cs, ok := value["system"].(string); ok {
			recordType = strings.ToLower(cs)
		}

		if recordType == "" {
			s.logger.Warn("Failed to parse a record in the config file: system is not defined",
				common.LogSystemToken, logSystem)
			continue
		}

		byteData, err := yaml.Marshal(value)
		if err != nil {
			s.logger.Error("Failed to parse config file", err,
				common.LogSystemToken, recordType)
			continue
		}

		records = append(records, &rawRecord{
			System: recordType,
			Config: byteData,
		})
	}

	return records
}

// Processes single config record.
func (s *settingsProvider) parseRecord(record *rawRecord) {
	s.logger.Debug("Processing config", common.LogSystemToken, record.System)

	switch record.System {
	case configRecordMaster:
		s.loadMasterDefinition(record)
	case configRecordLight:
		s.loadLightDefinition(record)
	default:
		s.logger.Warn("Unknown record's system", common.LogSystemToken, record.System)
	}
}

// Loads service configuration.
func (s *settingsProvider) loadMasterDefinition(record *rawRecord) {
	if nil != s.mSettings {
		s.logger.Warn("Duplicated service config record", common.LogSystemToken, logSystem)
		return
	}

	set := &providers.MasterSettings{}
	if err := yaml.Unmarshal(record.Config, &set); err != nil {
		panic("Failed to unmarshal service config")
	}

	if !s.validator.Validate(set) {
		panic("Incorrect service settings")
	}

	s.mSettings = set
}

// Loads single light definition.
func (s *settingsProvider) loadLightDefinition(record *rawRecord) {
	light := &providers.RawLight{}
	if err := yaml.Unmarshal(record.Config, &light); err != nil {
		s.logger.Error("Failed to unmarshal light config", err,
			common.LogSystemToken, logSystem)
		return
	}

	if !s.validator.Validate(light) {
		s.logger.Warn("Ignoring light since config is invalid",
			common.LogSystemToken, logSystem, common.LogLightNameToken, light.Name)
		return
	}

	light.Name = strings.ToLower(light.Name)
	for _, e := range s.lightsConfig {
		if e.Name == light.Name {
			s.logger.Warn("Ignoring light since name is duplicated",
				common.LogSystemToken, logSystem, common.LogLightNameToken, light.Name)
			return
		}
	}

	s.lightsConfig = append(s.lightsConfig, light)
}

// Switches to the configured logger implementation.
func (s *settingsProvider) loadLoggerProvider() {
	if nil == s.mSettings || s.mSettings.Logger != "structured" {
		return
	}

	s.logger = logger.NewStructuredLogger()
	s.validator.SetLogger(s.logger)
}

// Returns yaml files from the config folder.
func configFiles(folder string) ([]string, error) {
	files, err := ioutil.ReadDir(folder)
	if err != nil {
		return nil, errors.Wrap(err, "config folder read failed")
	}

	names := make([]string, 0)
	for _, f := range files {
		if f.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(f.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		names = append(names, filepath.Join(folder, f.Name()))
	}

	if 0 == len(names) {
		return nil, errors.New("no config files found")
	}

	return names, nil
}
