package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RendijsSmukulis/codevoid.io/internal/errors"
)

const initHeader = `# Site settings for the static site generator.
# Unset keys fall back to the built-in defaults; ${VAR} references are
# expanded from the environment and .env files.
`

// Init writes the default configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigExists(configPath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return errors.InternalError("failed to marshal default site file", err)
	}
	if err := os.WriteFile(configPath, append([]byte(initHeader), data...), 0o644); err != nil {
		return errors.WriteFailed(configPath, fmt.Errorf("write site file: %w", err))
	}
	return nil
}
