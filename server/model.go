package server

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/zucenko/rover/model"
)

type SolveServer struct {
	Cfg      Config
	Upgrader *websocket.Upgrader
}

type ClientSessionState int

const (
	CS_NEW ClientSessionState = iota
	CS_OPEN
	CS_ERR
	CS_OVER
)

// ClientSession is one websocket client with its own grid. Grids are never
// shared between sessions.
type ClientSession struct {
	State ClientSessionState
	Id    uuid.UUID
	Cfg   Config
	Conn  *websocket.Conn
	Grid  *model.Grid

	Events         chan model.ClientMessage
	MessagesToSend chan model.ServerMessage
	Closed         chan struct{}
}
