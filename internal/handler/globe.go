package handler

import (
	"net/http"
	"time"

	"fan-globe/internal/globe"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = (streamPongWait * 9) / 10
	streamReadLimit  = 4 * 1024
)

// GlobeController is the rotation state machine behind the globe endpoints.
type GlobeController interface {
	View() globe.View
	PointerDown(x, y float64)
	PointerMove(x, y float64, boost bool)
	PointerUp()
	TouchStart()
	Wheel(deltaY float64)
	FocusOn(lat, lon float64)
	SetRetro(retro bool)
	Subscribe() *globe.Subscription
}

// GlobeHandler translates client input events into controller calls.
type GlobeHandler struct {
	globe    GlobeController
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewGlobeHandler creates a new globe handler
func NewGlobeHandler(ctrl GlobeController, logger zerolog.Logger) *GlobeHandler {
	return &GlobeHandler{
		globe: ctrl,
		upgrader: websocket.Upgrader{
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
			HandshakeTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type globeResponse struct {
	View   globe.View  `json:"view"`
	Theme  globe.Theme `json:"theme"`
	MapURL string      `json:"map_url"`
}

type pointerRequest struct {
	Type  string  `json:"type" binding:"required,oneof=down move up"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Shift bool    `json:"shift"`
}

type wheelRequest struct {
	DeltaY *float64 `json:"deltaY" binding:"required"`
}

type focusRequest struct {
	Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lon *float64 `json:"lon" binding:"required,gte=-180,lte=180"`
}

type themeRequest struct {
	Retro *bool `json:"retro" binding:"required"`
}

// Globe handles GET /api/globe requests
//
//	@Summary	Current globe view
//	@Tags		globe
//	@Produce	json
//	@Success	200	{object}	globeResponse
//	@Router		/api/globe [get]
func (h *GlobeHandler) Globe(c *gin.Context) {
	h.respond(c)
}

// Pointer handles POST /api/globe/pointer requests
//
//	@Summary	Pointer down, move or up
//	@Tags		globe
//	@Accept		json
//	@Produce	json
//	@Param		event	body		pointerRequest	true	"Pointer event"
//	@Success	200		{object}	globeResponse
//	@Failure	400		{object}	map[string]string
//	@Router		/api/globe/pointer [post]
func (h *GlobeHandler) Pointer(c *gin.Context) {
	var req pointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be one of down, move, up"})
		return
	}

	switch req.Type {
	case "down":
		h.globe.PointerDown(req.X, req.Y)
	case "move":
		h.globe.PointerMove(req.X, req.Y, req.Shift)
	case "up":
		h.globe.PointerUp()
	}
	h.respond(c)
}

// Wheel handles POST /api/globe/wheel requests
//
//	@Summary	Zoom with the scroll wheel
//	@Tags		globe
//	@Accept		json
//	@Produce	json
//	@Param		event	body		wheelRequest	true	"Wheel event"
//	@Success	200		{object}	globeResponse
//	@Failure	400		{object}	map[string]string
//	@Router		/api/globe/wheel [post]
func (h *GlobeHandler) Wheel(c *gin.Context) {
	var req wheelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field 'deltaY'"})
		return
	}
	h.globe.Wheel(*req.DeltaY)
	h.respond(c)
}

// Touch handles POST /api/globe/touch requests
//
//	@Summary	Touch start
//	@Tags		globe
//	@Produce	json
//	@Success	200	{object}	globeResponse
//	@Router		/api/globe/touch [post]
func (h *GlobeHandler) Touch(c *gin.Context) {
	h.globe.TouchStart()
	h.respond(c)
}

// Focus handles POST /api/globe/focus requests
//
//	@Summary	Center the globe on a coordinate
//	@Tags		globe
//	@Accept		json
//	@Produce	json
//	@Param		target	body		focusRequest	true	"Coordinate"
//	@Success	200		{object}	globeResponse
//	@Failure	400		{object}	map[string]string
//	@Router		/api/globe/focus [post]
func (h *GlobeHandler) Focus(c *gin.Context) {
	var req focusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be within [-90, 90] and lon within [-180, 180]"})
		return
	}
	h.globe.FocusOn(*req.Lat, *req.Lon)
	h.respond(c)
}

// Theme handles PUT /api/globe/theme requests
//
//	@Summary	Toggle the retro theme
//	@Tags		globe
//	@Accept		json
//	@Produce	json
//	@Param		theme	body		themeRequest	true	"Theme"
//	@Success	200		{object}	globeResponse
//	@Failure	400		{object}	map[string]string
//	@Router		/api/globe/theme [put]
func (h *GlobeHandler) Theme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field 'retro'"})
		return
	}
	h.globe.SetRetro(*req.Retro)
	h.respond(c)
}

// Stream handles GET /api/globe/stream requests, pushing a view snapshot
// whenever the globe changes.
//
//	@Summary	Websocket stream of globe views
//	@Tags		globe
//	@Router		/api/globe/stream [get]
func (h *GlobeHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()

	sub := h.globe.Subscribe()
	defer sub.Close()

	done := make(chan struct{})
	go h.drain(conn, done)

	ping := time.NewTicker(streamPingPeriod)
	defer ping.Stop()

	for {
		select {
		case view, ok := <-sub.C():
			if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
				return
			}
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "globe closed"))
				return
			}
			payload, err := json.Marshal(view)
			if err != nil {
				h.logger.Error().Err(err).Msg("failed to encode globe view")
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// drain reads until the peer goes away so control frames are processed.
func (h *GlobeHandler) drain(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(streamReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug().Err(err).Msg("globe stream closed")
			}
			return
		}
	}
}

func (h *GlobeHandler) respond(c *gin.Context) {
	view := h.globe.View()
	c.JSON(http.StatusOK, globeResponse{View: view, Theme: globe.ThemeFor(view.Retro), MapURL: globe.MapBackdropURL})
}
