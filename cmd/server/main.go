package main

import (
	"log"

	"panelboard/internal/config"
	"panelboard/internal/logging"
	"panelboard/internal/server"
)

// @title           Panelboard API
// @version         1.0
// @description     Users, panels and the cards placed on them.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.basic BasicAuth

// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authentication
// @description The token returned by /auth/login.

// @schemes http
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	s, err := server.Init(cfg, logger)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	if err := s.Run(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
