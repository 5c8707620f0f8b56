package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/lumen-home/light/plugins/common"
)

type wsCmd struct {
	ID  string      `json:"id"`
	Cmd string      `json:"cmd"`
	Val interface{} `json:"value"`
}

// Handles WS upgrade request.
func (s *Server) handleWS(writer http.ResponseWriter, request *http.Request) {
	c, err := s.wsSettings.Upgrade(writer, request, nil)
	if err != nil {
		s.Logger.Error("Failed to establish a WS connection", err,
			common.LogSystemToken, logSystem)
		return
	}

	go s.processWSConnection(c)
}

// Processes incoming WS connections.
//noinspection GoUnhandledErrorResult
func (s *Server) processWSConnection(conn *websocket.Conn) {
	stop := make(chan bool, 1)
	go s.processIncomingWSMessages(conn, stop)
	subID, updates := s.fanOut.SubscribeLightUpdates()
	defer s.fanOut.UnSubscribeLightUpdates(subID)

	for {
		select {
		case msg := <-stop:
			if msg {
				return
			}
		case msg, ok := <-updates:
			{
				if !ok {
					return
				}

				kl := s.state.GetLight(msg.EntityID)
				if nil == kl {
					continue
				}

				conn.WriteJSON(kl) // nolint: gosec, errcheck
			}
		}
	}
}

// Processes incoming WS messages.
//noinspection GoUnhandledErrorResult
func (s *Server) processIncomingWSMessages(conn *websocket.Conn, stop chan bool) {
	defer conn.Close() // nolint: errcheck
	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			s.Logger.Info("Closing WS connection", common.LogSystemToken, logSystem)
			stop <- true
			return
		}

		// Ping request comes as a un-wrapped string
		if 4 == len(message) {
			conn.WriteMessage(mt, []byte("pong")) // nolint: gosec, errcheck
			continue
		}

		cmd := &wsCmd{}
		err = json.Unmarshal(message, cmd)
		if err != nil {
			s.Logger.Error("Failed to un-marshal WS command", err,
				common.LogSystemToken, logSystem)
			continue
		}

		data, err := json.Marshal(cmd.Val)
		if err != nil {
			s.Logger.Error("Failed to marshal WS command", err,
				common.LogSystemToken, logSystem)
			continue
		}

		s.commandInvokeLightCommand(cmd.ID, cmd.Cmd, data) // nolint: gosec, errcheck
	}
}
