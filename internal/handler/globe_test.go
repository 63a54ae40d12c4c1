package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fan-globe/internal/globe"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGlobe(t *testing.T) (*globe.Controller, *GlobeHandler) {
	t.Helper()
	ctrl := globe.NewController(globe.WithClock(clockwork.NewFakeClock()))
	t.Cleanup(ctrl.Close)
	return ctrl, NewGlobeHandler(ctrl, zerolog.Nop())
}

func decodeGlobe(t *testing.T, w *httptest.ResponseRecorder) globeResponse {
	t.Helper()
	var resp globeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGlobeHandler_Globe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, h := newTestGlobe(t)

	c, w := newJSONContext(http.MethodGet, "/api/globe", nil)
	h.Globe(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"auto_rotating"`)

	resp := decodeGlobe(t, w)
	assert.Equal(t, globe.MapBackdropURL, resp.MapURL)
	assert.Equal(t, "default", resp.Theme.Name)
	assert.InDelta(t, globe.InitialZoom, resp.View.Zoom, 1e-9)
}

func TestGlobeHandler_Pointer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl, h := newTestGlobe(t)

	steps := []struct {
		body          any
		expectedState string
	}{
		{body: pointerRequest{Type: "down", X: 100, Y: 100}, expectedState: "dragging"},
		{body: pointerRequest{Type: "move", X: 110, Y: 100}, expectedState: "dragging"},
		{body: pointerRequest{Type: "up"}, expectedState: "paused"},
	}

	for _, step := range steps {
		c, w := newJSONContext(http.MethodPost, "/api/globe/pointer", step.body)
		h.Pointer(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"state":"`+step.expectedState+`"`)
	}

	assert.InDelta(t, globe.InitialYaw+10*globe.DragSensitivity, ctrl.View().Rotation.Yaw, 1e-9)
}

func TestGlobeHandler_BadRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		call func(h *GlobeHandler, c *gin.Context)
		body string
	}{
		{name: "unknown pointer type", call: (*GlobeHandler).Pointer, body: `{"type":"hover"}`},
		{name: "pointer without type", call: (*GlobeHandler).Pointer, body: `{"x":1}`},
		{name: "wheel without delta", call: (*GlobeHandler).Wheel, body: `{}`},
		{name: "focus without lon", call: (*GlobeHandler).Focus, body: `{"lat":10}`},
		{name: "focus out of range", call: (*GlobeHandler).Focus, body: `{"lat":95,"lon":0}`},
		{name: "theme without flag", call: (*GlobeHandler).Theme, body: `{}`},
		{name: "malformed", call: (*GlobeHandler).Wheel, body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := newTestGlobe(t)

			c, w := newJSONContext(http.MethodPost, "/", tt.body)
			tt.call(h, c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestGlobeHandler_WheelTouchFocusTheme(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl, h := newTestGlobe(t)

	c, w := newJSONContext(http.MethodPost, "/api/globe/wheel", `{"deltaY":0}`)
	h.Wheel(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, globe.InitialZoom*globe.ZoomInFactor, decodeGlobe(t, w).View.Zoom, 1e-9)
	assert.Equal(t, globe.StatePaused, ctrl.View().State)

	c, w = newJSONContext(http.MethodPost, "/api/globe/touch", nil)
	h.Touch(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, globe.StatePaused, ctrl.View().State)

	c, w = newJSONContext(http.MethodPost, "/api/globe/focus", `{"lat":40.75,"lon":-73.99}`)
	h.Focus(c)
	require.Equal(t, http.StatusOK, w.Code)
	rot := decodeGlobe(t, w).View.Rotation
	assert.InDelta(t, 73.99, rot.Yaw, 1e-9)
	assert.InDelta(t, -40.75, rot.Pitch, 1e-9)

	c, w = newJSONContext(http.MethodPut, "/api/globe/theme", `{"retro":true}`)
	h.Theme(c)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeGlobe(t, w)
	assert.True(t, resp.View.Retro)
	assert.Equal(t, "retro", resp.Theme.Name)
}

func TestGlobeHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl, h := newTestGlobe(t)

	r := gin.New()
	r.GET("/api/globe/stream", h.Stream)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/globe/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	readView := func() globe.View {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)

		var v globe.View
		require.NoError(t, json.Unmarshal(payload, &v))
		return v
	}

	first := readView()
	assert.Equal(t, globe.StateAutoRotating, first.State)

	ctrl.Wheel(1)
	second := readView()
	assert.InDelta(t, globe.InitialZoom*globe.ZoomOutFactor, second.Zoom, 1e-9)
	assert.Equal(t, globe.StatePaused, second.State)

	ctrl.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}
