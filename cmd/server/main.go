package main

import (
	"os"

	"sentryos/backend/internal/app"
)

// @title           SentryOS Backend API
// @version         1.0
// @description     Streaming assistant relay and call analysis endpoints for the SentryOS demo.
// @BasePath        /api/v1
func main() {
	os.Exit(app.Run())
}
