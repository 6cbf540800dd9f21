package main

import (
	"helpdesk-server/confs"
	"helpdesk-server/db"
	"helpdesk-server/server"
	"log"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	srv := server.NewServer(database, cfg)
	log.Printf("Starting HelpDesk server on %s", cfg.Addr())
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
