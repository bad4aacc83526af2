package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"president.com/server/game"
	"president.com/server/timer"
	"president.com/server/ws"
)

var restLogger = log.With().Str("logger_name", "rest::rest").Logger()

var sessionManager *game.Manager
var hub *ws.Hub
var makeReceiver game.ReceiverFactory
var pacer *timer.Pacer

//
// APP error definition
//
type appError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RunRestServer blocks serving the REST surface, the metrics endpoint
// and the websocket upgrade path.
func RunRestServer(manager *game.Manager, wsHub *ws.Hub, receiverFactory game.ReceiverFactory, sessionPacer *timer.Pacer, port int) {
	sessionManager = manager
	hub = wsHub
	makeReceiver = receiverFactory
	pacer = sessionPacer

	r := gin.Default()

	r.POST("/new-game", newGame)
	r.POST("/join", joinGame)
	r.GET("/game/:code", gameState)
	r.GET("/health", health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws", func(c *gin.Context) {
		hub.HandleWS(c.Writer, c.Request)
	})
	r.Run(fmt.Sprintf(":%d", port))
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func newGame(c *gin.Context) {
	restLogger.Info().Msgf("New game is received")
	options := game.DefaultOptions()
	if err := c.BindJSON(&options); err != nil {
		c.IndentedJSON(http.StatusBadRequest, appError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}
	session, err := sessionManager.CreateSession(options, makeReceiver)
	if err != nil {
		status := http.StatusInternalServerError
		if game.IsConfigurationError(err) {
			status = http.StatusBadRequest
		}
		c.IndentedJSON(status, appError{Code: status, Message: err.Error()})
		return
	}
	if pacer != nil {
		pacer.Track(session)
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.ID(),
		"code":      session.Code(),
	})
}

func joinGame(c *gin.Context) {
	type Payload struct {
		Code     string `json:"code"`
		Name     string `json:"name"`
		Attended *bool  `json:"attended"`
	}
	var payload Payload
	if err := c.BindJSON(&payload); err != nil {
		c.IndentedJSON(http.StatusBadRequest, appError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}
	session, err := sessionManager.SessionByCode(payload.Code)
	if err != nil {
		c.IndentedJSON(http.StatusNotFound, appError{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
		return
	}
	attended := true
	if payload.Attended != nil {
		attended = *payload.Attended
	}
	seatID, err := session.JoinSeat(payload.Name, attended)
	if err != nil {
		c.IndentedJSON(http.StatusConflict, appError{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"seatId": seatID,
		"code":   session.Code(),
	})
}

func gameState(c *gin.Context) {
	session, err := sessionManager.SessionByCode(c.Param("code"))
	if err != nil {
		c.IndentedJSON(http.StatusNotFound, appError{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot(c.Query("seatId")))
}
