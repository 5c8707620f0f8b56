package server

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/lumen-home/light/mocks"
	"github.com/lumen-home/light/plugins/device/enums"
	"github.com/lumen-home/light/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Constructs a server with a couple of virtual lights
// and exposes its API through a test HTTP server.
func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	srv, err := NewServer(mocks.FakeNewSettings(nil, []*providers.RawLight{
		{
			Name:       "light.desk",
			ColorModes: []enums.ColorMode{enums.ColorModeHS},
		},
		{
			Name:       "light.shelf",
			ColorModes: []enums.ColorMode{enums.ColorModeBrightness},
		},
	}))
	require.NoError(t, err, "server init")

	router := mux.NewRouter()
	srv.registerAPI(router)
	return srv, httptest.NewServer(router)
}

func httpGet(t *testing.T, url string) (int, string) {
	resp, err := http.Get(url) // nolint: gosec
	require.NoError(t, err, "GET %s", url)
	defer resp.Body.Close() // nolint: errcheck
	b, _ := ioutil.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func httpPost(t *testing.T, url string, body string) int {
	resp, err := http.Post(url, "application/json", // nolint: gosec
		bytes.NewBufferString(body))
	require.NoError(t, err, "POST %s", url)
	resp.Body.Close() // nolint: errcheck
	return resp.StatusCode
}

// Tests liveness and lights listing endpoints.
func TestServerAPIQueries(t *testing.T) {
	_, ts := newTestServer(t)
	defer ts.Close()

	code, body := httpGet(t, ts.URL+"/pub/ping")
	assert.Equal(t, http.StatusOK, code, "ping status")
	assert.Contains(t, body, "OK", "ping body")

	code, body = httpGet(t, ts.URL+"/api/v1/light")
	assert.Equal(t, http.StatusOK, code, "lights status")
	assert.Contains(t, body, "light.desk", "first light listed")
	assert.Contains(t, body, "light.shelf", "second light listed")

	code, body = httpGet(t, ts.URL+"/api/v1/light/light.desk")
	assert.Equal(t, http.StatusOK, code, "light status")
	assert.Contains(t, body, `"supported_color_modes":["hs"]`, "capabilities reported")

	code, _ = httpGet(t, ts.URL+"/api/v1/light/light.unknown")
	assert.Equal(t, http.StatusNotFound, code, "unknown light")
}

// Tests command invocation through the REST API.
func TestServerAPICommands(t *testing.T) {
	srv, ts := newTestServer(t)
	defer ts.Close()

	code := httpPost(t, ts.URL+"/api/v1/light/light.desk/turn_on", `{"brightness": 200}`)
	assert.Equal(t, http.StatusOK, code, "turn on status")
	assert.True(t, srv.state.GetDevice("light.desk").IsOn(), "light is on")

	code = httpPost(t, ts.URL+"/api/v1/light/light.*/turn_off", "")
	assert.Equal(t, http.StatusOK, code, "glob turn off status")
	assert.False(t, srv.state.GetDevice("light.desk").IsOn(), "first light is off")
	assert.False(t, srv.state.GetDevice("light.shelf").IsOn(), "second light is off")

	code = httpPost(t, ts.URL+"/api/v1/light/light.desk/blink", "")
	assert.Equal(t, http.StatusInternalServerError, code, "unknown command")

	code = httpPost(t, ts.URL+"/api/v1/light/light.closet/turn_on", "")
	assert.Equal(t, http.StatusInternalServerError, code, "unknown light")

	code = httpPost(t, ts.URL+"/api/v1/light/light.desk/turn_on", `{"brightness":`)
	assert.Equal(t, http.StatusInternalServerError, code, "broken payload")

	code = httpPost(t, ts.URL+"/api/v1/light/light.desk/turn_on",
		`{"brightness": 10, "hs_color": {"hue": 20, "saturation": 30}, "color_temp": 300}`)
	assert.Equal(t, http.StatusInternalServerError, code, "conflicting params rejected")
}

// Tests the WS endpoint, both incoming commands and state push.
func TestServerWebSocket(t *testing.T) {
	_, ts := newTestServer(t)
	defer ts.Close()
	defer leaktest.CheckTimeout(t, 1*time.Second)()

	url := fmt.Sprintf("ws%s/api/v1/ws", strings.TrimPrefix(ts.URL, "http"))
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err, "dial")
	defer conn.Close() // nolint: errcheck

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")), "ping write")
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err, "pong read")
	assert.Equal(t, "pong", string(msg), "pong payload")

	time.Sleep(100 * time.Millisecond)
	cmd := &wsCmd{
		ID:  "light.desk",
		Cmd: "turn_on",
		Val: map[string]interface{}{"brightness": 250},
	}
	require.NoError(t, conn.WriteJSON(cmd), "command write")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second)) // nolint: gosec, errcheck
	kl := &knownLight{}
	require.NoError(t, conn.ReadJSON(kl), "push read")
	assert.Equal(t, "light.desk", kl.ID, "pushed light")
	assert.True(t, kl.State.On, "pushed state")
	assert.Equal(t, uint8(250), *kl.State.Brightness, "pushed brightness")
}
