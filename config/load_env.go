package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

// LoadEnv loads environment variables from config/envs/.env.<env>.
// A missing file is not fatal; the OS environment is used as-is.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("env", env))
	}
}
