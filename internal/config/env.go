package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/RendijsSmukulis/codevoid.io/internal/logfields"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads the first readable .env file so ${VAR} references in the
// site file resolve. Variables already set in the environment win.
func loadEnvFiles() {
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Failed to load env file", logfields.Path(path), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.Path(path))
		return
	}
}
