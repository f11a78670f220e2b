package main

import (
	"fmt"
	"log"

	"docvault/internal/config"
	"docvault/internal/database"
	"docvault/internal/server"
	"docvault/internal/session"
)

func main() {
	cfg := config.Load()
	db := database.Init(cfg.DBDSN)

	mgr := session.NewManager()
	r := server.NewRouter(cfg, db, mgr)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
