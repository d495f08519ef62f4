package server

import (
	"github.com/hashicorp/go-hclog"

	"github.com/ironlog-io/ironlog/internal/config"
	"github.com/ironlog-io/ironlog/internal/logbook"
)

// Server contains the server configuration.
type Server struct {
	// Config is the config for the server.
	Config *config.Config

	// Logbook executes log operations against the storage folder.
	Logbook *logbook.Service

	// Logger is the logger for the server.
	Logger hclog.Logger
}
