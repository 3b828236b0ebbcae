// Command server runs the lead pipeline HTTP server: public intake and
// feed routes, the confirmation webhook, the admin portal API, and the
// client status listener.
//
// Configuration comes from CONFIG_PATH (fallback ./config.yaml) plus
// environment variables; a local .env file is loaded when present.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/propertypasalo/backend/internal/app"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
