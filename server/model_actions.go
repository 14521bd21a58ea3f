package server

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/rover/model"
)

func NewSolveServer(cfg Config) *SolveServer {
	return &SolveServer{
		Cfg:      cfg,
		Upgrader: &websocket.Upgrader{},
	}
}

func (s *SolveServer) HandleSolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleSolve - connection received")
		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleSolve websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		cs := &ClientSession{
			State:          CS_NEW,
			Id:             uuid.New(),
			Cfg:            s.Cfg,
			Conn:           con,
			Events:         make(chan model.ClientMessage, 10),
			MessagesToSend: make(chan model.ServerMessage, 10),
			Closed:         make(chan struct{}),
		}
		log.Printf("HandleSolve session %s starting", cs.Id)

		go cs.Loop()
		go cs.LoopChannelWrite()
		cs.LoopChannelRead()
		log.Printf("HandleSolve session %s over", cs.Id)
	}
}

func (cs *ClientSession) Loop() {
	log.Printf("ClientSession.Loop start %s", cs.Id)
	for {
		select {
		case cm := <-cs.Events:
			select {
			case cs.MessagesToSend <- cs.Turn(cm):
			case <-cs.Closed:
				log.Printf("ClientSession.Loop ended %s", cs.Id)
				return
			}
		case <-cs.Closed:
			log.Printf("ClientSession.Loop ended %s", cs.Id)
			return
		}
	}
}

// Turn handles one client message and builds the reply.
func (cs *ClientSession) Turn(cm model.ClientMessage) model.ServerMessage {
	switch cm.Op {
	case "scenario":
		grid, err := cs.buildScenario(cm)
		if err != nil {
			log.Warnf("session %s scenario: %v", cs.Id, err)
			return model.ServerMessage{Session: cs.Id.String(), Error: err.Error()}
		}
		cs.Grid = grid
		return model.ServerMessage{
			Session:   cs.Id.String(),
			Obstacles: grid.Obstacles(),
		}

	case "solve":
		route, ok := model.FindRoute(cs.grid())
		if !ok {
			// a normal outcome, the client decides whether to force
			return model.ServerMessage{Session: cs.Id.String(), Found: false}
		}
		return model.ServerMessage{
			Session: cs.Id.String(),
			Found:   true,
			Route:   route.Cells,
			Steps:   route.Steps(),
		}

	case "force":
		route := model.Solve(cs.grid())
		return model.ServerMessage{
			Session: cs.Id.String(),
			Found:   true,
			Route:   route.Cells,
			Crossed: route.Crossed,
			Steps:   route.Steps(),
		}

	default:
		return model.ServerMessage{
			Session: cs.Id.String(),
			Error:   fmt.Sprintf("unknown op %q", cm.Op),
		}
	}
}

// grid returns the session grid, building the default scenario on first use.
func (cs *ClientSession) grid() *model.Grid {
	if cs.Grid == nil {
		grid, err := cs.buildScenario(model.ClientMessage{})
		if err != nil {
			log.Warnf("session %s default scenario: %v", cs.Id, err)
			grid = model.NewGrid()
			grid.PlaceFixed()
		}
		cs.Grid = grid
	}
	return cs.Grid
}

func (cs *ClientSession) buildScenario(cm model.ClientMessage) (*model.Grid, error) {
	var grid *model.Grid
	var err error
	switch {
	case cm.Layout != "":
		grid, err = model.Read(strings.NewReader(cm.Layout))
	case cs.Cfg.Layout != "":
		grid, err = model.Load(cs.Cfg.Layout)
	default:
		grid = model.NewGrid()
		grid.PlaceFixed()
	}
	if err != nil {
		return nil, err
	}

	n := cm.Obstacles
	if n == 0 {
		n = cs.Cfg.Obstacles
	}
	if n > 0 {
		seed := cm.Seed
		if seed == 0 {
			seed = cs.Cfg.Seed
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		placed := grid.Scatter(n, rand.New(rand.NewSource(seed)))
		log.Printf("session %s scattered %d obstacles, seed %d", cs.Id, len(placed), seed)
	}
	return grid, nil
}

func (cs *ClientSession) LoopChannelRead() {
	log.Printf("LoopChannelRead started %s", cs.Id)
	cs.State = CS_OPEN
loop:
	for {
		cm := model.ClientMessage{}
		if err := cs.Conn.ReadJSON(&cm); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				cs.State = CS_OVER
			} else {
				log.Printf("LoopChannelRead err reading from Conn %v", err)
				cs.State = CS_ERR
			}
			break loop
		}
		select {
		case cs.Events <- cm:
		default:
			log.Warnf("dropping message, session %s events full", cs.Id)
		}
	}
	close(cs.Closed)
	log.Printf("LoopChannelRead ended %s state %s", cs.Id, cs.State.Name())
}

// this function only consumes. no worries about full buffer stuck
func (cs *ClientSession) LoopChannelWrite() {
	log.Printf("LoopChannelWrite started %s", cs.Id)
loop:
	for {
		select {
		case mes := <-cs.MessagesToSend:
			if err := cs.Conn.WriteJSON(mes); err != nil {
				log.Warnf("LoopChannelWrite cant write %v", err)
				cs.State = CS_ERR
				break loop
			}
		case <-cs.Closed:
			break loop
		}
	}
	log.Printf("LoopChannelWrite ended %s", cs.Id)
}
