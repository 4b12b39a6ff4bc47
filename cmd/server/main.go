/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the coverage quote engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load rule sets (built-in defaults, plus optional file overrides)
  3. Create API handler with dependencies
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -rules   Optional rule-set file(s), comma-separated YAML/JSON paths.
           Each file replaces (or adds) one insurer's catalog and rules.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Run with built-in rule tables
  ./server

  # Run with an experimental Samsung rule revision
  ./server -rules=./rules/samsung-v2.yaml

SEE ALSO:
  - api/server.go: Router configuration
  - factory/ruleset.go: Rule-set file format
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/oncare/coverage-engine/api"
	"github.com/oncare/coverage-engine/factory"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	rulesFlag := flag.String("rules", "", "comma-separated rule-set files (YAML/JSON) overriding built-in tables")
	flag.Parse()

	// Rule sets: built-in defaults, then file overrides
	ruleSets := factory.Defaults()
	if *rulesFlag != "" {
		for _, path := range strings.Split(*rulesFlag, ",") {
			path = strings.TrimSpace(path)
			if path == "" {
				continue
			}
			rs, err := factory.LoadFile(path)
			if err != nil {
				log.Fatalf("Failed to load rule set %s: %v", path, err)
			}
			ruleSets[rs.Catalog.Insurer()] = rs
			log.Printf("Loaded rule set for %s from %s", rs.Catalog.Insurer(), path)
		}
	}

	// Initialize handler and router
	handler := api.NewHandler(ruleSets)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
