package main

import (
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/rover/server"
)

type Server struct {
	router      *way.Router
	SolveServer *server.SolveServer
}

func main() {
	cfg := server.FromEnv()
	Server := Server{
		SolveServer: server.NewSolveServer(cfg),
	}
	Server.routes()
	log.Printf("listening on port %s", cfg.Port)
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, Server.router))
}
