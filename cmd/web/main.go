package main

import (
	"accounts_backend/internal/app"
	"accounts_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited with error", "error", err)
	}
}
