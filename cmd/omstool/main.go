// The OMS tool server exposes the order ledger operations as MCP tools over
// stdio. It forwards every call to the OMS REST API and relays results
// verbatim; it adds no business logic.
package main

import (
	"oms/internal/toolserver"
	"oms/pkg/config"
	"oms/pkg/logger"

	"github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load configuration
	cfg := config.Load("omstool")

	// stdout carries the stdio transport, so logs go to stderr
	log := logger.NewStderr("omstool", cfg.LogLevel)
	defer log.Sync()

	log.Info("starting OMS tool server, forwarding to " + cfg.OMSBaseURL)

	client := toolserver.NewClient(cfg.OMSBaseURL, cfg.ToolTimeout)
	s := toolserver.NewServer(client, log)

	if err := server.ServeStdio(s); err != nil {
		log.Fatal("tool server error: " + err.Error())
	}
}
