package server

import (
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
)

// Returns all known lights.
func (s *Server) getLights(writer http.ResponseWriter, request *http.Request) { // nolint: unparam
	respond(writer, s.state.GetAllLights())
}

// Returns single light's reported state and capabilities.
func (s *Server) getLight(writer http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	l := s.state.GetLight(vars[string(urlLightID)])
	if nil == l {
		respondNotFound(writer)
		return
	}

	respond(writer, l)
}

// Executes light command.
func (s *Server) lightCommand(writer http.ResponseWriter, request *http.Request) { // nolint: unparam
	vars := mux.Vars(request)
	b, _ := ioutil.ReadAll(request.Body)
	respondOkError(writer, s.commandInvokeLightCommand(vars[string(urlLightID)],
		vars[string(urlCommandName)], b))
}

// Simple liveness response.
func (s *Server) ping(writer http.ResponseWriter, request *http.Request) { // nolint: unparam
	respondOk(writer)
}
