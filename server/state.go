package server

import (
	"sort"
	"sync"
	"time"

	"github.com/gobwas/glob"
	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/plugins/device/enums"
	"github.com/lumen-home/light/providers"
	"github.com/lumen-home/light/systems/device/virtual"
	"github.com/lumen-home/light/systems/light"
	"github.com/lumen-home/light/utils"
	"github.com/patrickmn/go-cache"
)

// IServerStateProvider defines server state logic.
type IServerStateProvider interface {
	GetAllLights() []*knownLight
	GetLight(id string) *knownLight
	GetDevice(id string) device.ILight
	Match(pattern string) []device.ILight
}

// Registered lights' state.
type serverState struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	KnownLights map[string]device.ILight

	lastSeen   map[string]int64
	stateCache *cache.Cache
	fanOut     providers.IInternalFanOutProvider

	mutex *sync.Mutex
}

// Constructs a new server state.
func newServerState(settings providers.ISettingsProvider,
	fanOut providers.IInternalFanOutProvider) *serverState {
	s := serverState{
		Settings: settings,
		Logger:   settings.SystemLogger(),

		KnownLights: make(map[string]device.ILight),
		lastSeen:    make(map[string]int64),
		stateCache:  cache.New(30*time.Second, time.Minute),
		fanOut:      fanOut,

		mutex: &sync.Mutex{},
	}

	for _, v := range settings.LightsConfig() {
		l, err := virtual.NewVirtualLight(&virtual.ConstructVirtualLight{
			Logger:  s.Logger,
			Config:  v,
			Updates: fanOut.ChannelInLightUpdates(),
		})

		if err != nil {
			s.Logger.Error("Skipping light with invalid capabilities", err,
				common.LogSystemToken, logSystem, common.LogLightNameToken, v.Name)
			continue
		}

		s.KnownLights[l.EntityID()] = l
		s.lastSeen[l.EntityID()] = utils.TimeNow()
	}

	go s.updatesCycle()
	return &s
}

// Tracks lights updates to keep reported state fresh.
func (s *serverState) updatesCycle() {
	_, updates := s.fanOut.SubscribeLightUpdates()
	for msg := range updates {
		s.mutex.Lock()
		s.lastSeen[msg.EntityID] = utils.TimeNow()
		s.mutex.Unlock()

		s.stateCache.Delete(msg.EntityID)
	}
}

// GetAllLights returns list of all known lights.
func (s *serverState) GetAllLights() []*knownLight {
	s.mutex.Lock()
	ids := make([]string, 0, len(s.KnownLights))
	for k := range s.KnownLights {
		ids = append(ids, k)
	}
	s.mutex.Unlock()

	sort.Strings(ids)
	lights := make([]*knownLight, 0, len(ids))
	for _, id := range ids {
		lights = append(lights, s.GetLight(id))
	}

	return lights
}

// GetLight returns light's reported state by ID.
func (s *serverState) GetLight(id string) *knownLight {
	id = utils.NormalizeEntityID(id)

	s.mutex.Lock()
	l, ok := s.KnownLights[id]
	seen := s.lastSeen[id]
	s.mutex.Unlock()

	if !ok {
		return nil
	}

	return &knownLight{
		ID:           id,
		State:        s.getStateAttributes(l),
		Capabilities: light.GetCapabilityAttributes(l),
		Commands:     commandNames(),
		LastSeen:     seen,
	}
}

// GetDevice returns light by ID.
func (s *serverState) GetDevice(id string) device.ILight {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.KnownLights[utils.NormalizeEntityID(id)]
}

// Match returns lights with IDs matching the pattern.
func (s *serverState) Match(pattern string) []device.ILight {
	pattern = utils.NormalizeEntityID(pattern)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if l, ok := s.KnownLights[pattern]; ok {
		return []device.ILight{l}
	}

	r, err := glob.Compile(pattern)
	if err != nil {
		s.Logger.Warn("Light selector misconfiguration",
			common.LogSystemToken, logSystem, "selector", pattern)
		return nil
	}

	matched := make([]device.ILight, 0)
	for id, l := range s.KnownLights {
		if r.Match(id) {
			matched = append(matched, l)
		}
	}

	return matched
}

// Returns cached state attributes, rebuilding on miss.
func (s *serverState) getStateAttributes(l device.ILight) *light.StateAttributes {
	if state, ok := s.stateCache.Get(l.EntityID()); ok {
		return state.(*light.StateAttributes)
	}

	state := light.GetStateAttributes(l, s.Logger)
	s.stateCache.Set(l.EntityID(), state, cache.DefaultExpiration)
	return state
}

// Commands accepted by every light.
func commandNames() []string {
	return []string{
		enums.CmdTurnOn.String(),
		enums.CmdTurnOff.String(),
		enums.CmdToggle.String(),
	}
}
