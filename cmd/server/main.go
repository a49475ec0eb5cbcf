package main

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"store-console/internal/config"
	"store-console/internal/database"
	"store-console/internal/gateway"
	"store-console/internal/server"
)

func main() {
	log.SetHandler(cli.Default)

	cfg := config.Load()
	database.Init(cfg.AuditDBDSN)

	gw := gateway.New(cfg.APIBaseURL)
	r := server.NewRouter(cfg, gw)

	addr := ":" + cfg.ServerPort
	log.Infof("starting console on %s (backend %s)", addr, cfg.APIBaseURL)
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
