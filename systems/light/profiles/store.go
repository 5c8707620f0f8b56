package profiles

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/providers"
	"github.com/pkg/errors"
)

const (
	// Logger system representation.
	logSystem = "profiles"
	// Group-wide default profile lookup key prefix.
	groupAllLights = "group.all_lights"
	// Default profile name suffix.
	defaultSuffix = ".default"
)

// IProfileProvider defines lighting profiles store logic.
type IProfileProvider interface {
	Get(name string) (*Profile, bool)
	Apply(name string, params *device.CommandParams)
	ApplyDefault(entityID string, stateOn bool, params *device.CommandParams)
	Reload() error
}

// ConstructProfiles has data required for a new profiles store.
type ConstructProfiles struct {
	Logger common.ILoggerProvider
	// UserPath is the overridable profiles file, empty to skip.
	UserPath string
	// Cron schedules periodic reloads when ReloadSpec is set.
	Cron       providers.ICronProvider
	ReloadSpec string
}

// Profiles store implementation. Readers never observe a partially
// built mapping: loads build a fresh map and swap it wholesale.
type store struct {
	sync.RWMutex

	logger   common.ILoggerProvider
	userPath string

	data map[string]*Profile
}

// NewProfileStore constructs a new profiles store and performs
// the initial load.
func NewProfileStore(ctor *ConstructProfiles) (IProfileProvider, error) {
	s := &store{
		logger:   ctor.Logger,
		userPath: ctor.UserPath,
		data:     make(map[string]*Profile),
	}

	if err := s.Reload(); err != nil {
		return nil, errors.Wrap(err, "initial profiles load failed")
	}

	if ctor.Cron != nil && ctor.ReloadSpec != "" {
		_, err := ctor.Cron.AddFunc(ctor.ReloadSpec, func() {
			if err := s.Reload(); err != nil {
				s.logger.Error("Failed to reload profiles", err,
					common.LogSystemToken, logSystem)
			}
		})
		if err != nil {
			return nil, errors.Wrap(err, "profiles reload schedule failed")
		}
	}

	return s, nil
}

// Reload re-reads all layered sources and atomically replaces
// the mapping.
func (s *store) Reload() error {
	data := make(map[string]*Profile)
	s.loadSource(data, strings.NewReader(builtinProfiles), "builtin")

	if s.userPath != "" {
		reader, err := os.Open(s.userPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return errors.Wrap(err, "user profiles open failed")
			}
		} else {
			s.loadSource(data, reader, s.userPath)
			reader.Close() // nolint: gosec, errcheck
		}
	}

	s.Lock()
	s.data = data
	s.Unlock()

	return nil
}

// Loads a single csv source into the mapping. Header row is skipped,
// bad rows are logged and dropped, later sources overwrite earlier
// entries with the same name.
func (s *store) loadSource(data map[string]*Profile, source io.Reader, name string) {
	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1

	header := true
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			s.logger.Error("Failed to read profile row", err,
				common.LogSystemToken, logSystem, common.LogFileToken, name)
			continue
		}

		if header {
			header = false
			continue
		}

		profile, err := profileFromRow(rec)
		if err != nil {
			s.logger.Error("Failed to parse profile row", err,
				common.LogSystemToken, logSystem, common.LogFileToken, name,
				common.LogRowToken, strings.Join(rec, ","))
			continue
		}

		data[profile.Name] = profile
	}
}

// Get returns a profile by name.
func (s *store) Get(name string) (*Profile, bool) {
	s.RLock()
	defer s.RUnlock()

	profile, ok := s.data[name]
	return profile, ok
}

// Apply merges the named profile into the params, explicit request
// values always win.
func (s *store) Apply(name string, params *device.CommandParams) {
	profile, ok := s.Get(name)
	if !ok {
		return
	}

	profile.Apply(params)
}

// ApplyDefault merges the entity-specific default profile, falling
// back to the group-wide one. When the light is already on and the
// command carries parameters, only the transition time is merged in:
// an on-light mid-command already has a desired appearance.
func (s *store) ApplyDefault(entityID string, stateOn bool, params *device.CommandParams) {
	for _, id := range []string{entityID, groupAllLights} {
		profile, ok := s.Get(id + defaultSuffix)
		if !ok {
			continue
		}

		if !stateOn || params.IsEmpty() {
			profile.Apply(params)
		} else if profile.Transition != nil && params.Transition == nil {
			v := *profile.Transition
			params.Transition = &v
		}
	}
}
