// Package server contains the lights service.
package server

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/providers"
	"github.com/lumen-home/light/systems/fanout"
	"github.com/lumen-home/light/systems/light"
	"github.com/lumen-home/light/systems/light/profiles"
	"github.com/pkg/errors"
)

const (
	// Logger system representation.
	logSystem = "server"
)

// Server describes the lights service node.
type Server struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	state      IServerStateProvider
	dispatcher *light.Dispatcher
	fanOut     providers.IInternalFanOutProvider
	wsSettings websocket.Upgrader
}

// NewServer constructs a new lights service.
func NewServer(settings providers.ISettingsProvider) (*Server, error) {
	fanOut := fanout.NewFanOut()

	profileStore, err := profiles.NewProfileStore(&profiles.ConstructProfiles{
		Logger:     settings.SystemLogger(),
		UserPath:   settings.MasterSettings().ProfilesPath,
		Cron:       settings.Cron(),
		ReloadSpec: settings.MasterSettings().ProfilesReload,
	})
	if err != nil {
		return nil, errors.Wrap(err, "profiles init failed")
	}

	server := Server{
		Logger:   settings.SystemLogger(),
		Settings: settings,

		fanOut: fanOut,
		state:  newServerState(settings, fanOut),
		dispatcher: light.NewDispatcher(&light.ConstructDispatcher{
			Profiles: profileStore,
			Logger:   settings.SystemLogger(),
		}),
		wsSettings: websocket.Upgrader{},
	}

	return &server, nil
}

// Start launches the service.
func (s *Server) Start() {
	router := mux.NewRouter()
	s.registerAPI(router)
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", s.Settings.MasterSettings().Port),
			handlers.CompressHandler(router))
		if err != nil {
			s.Logger.Fatal("Failed to start server", err, common.LogSystemToken, logSystem)
		}
	}()

	s.Logger.Info(fmt.Sprintf("Started server on port %d", s.Settings.MasterSettings().Port),
		common.LogSystemToken, logSystem)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	for range c {
		s.Logger.Info("Received stop command, exiting", common.LogSystemToken, logSystem)
		s.Logger.Flush()
		os.Exit(0)
	}
}

// All API registration.
func (s *Server) registerAPI(router *mux.Router) {
	publicRouter := router.PathPrefix("/pub").Subrouter()
	publicRouter.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	apiRouter := router.PathPrefix(routeAPI).Subrouter()
	apiRouter.HandleFunc("/light", s.getLights).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/light/{%s}", urlLightID),
		s.getLight).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/light/{%s}/{%s}", urlLightID, urlCommandName),
		s.lightCommand).Methods(http.MethodPost)
	apiRouter.HandleFunc("/ws", s.handleWS)
	apiRouter.Use(s.logMiddleware)
}
