package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env files with priority: .env.local > .env.<APP_ENV> > .env
// godotenv.Load does NOT overwrite already-set env vars,
// so OS env vars always win and earlier files win over later ones.
// Returns list of files actually loaded.
func LoadDotEnv() []string {
	candidates := []string{".env.local"}
	if env := os.Getenv("APP_ENV"); env != "" {
		candidates = append(candidates, ".env."+env)
	}
	candidates = append(candidates, ".env")

	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}

// ConfigPath returns the config file path for the given environment
func ConfigPath(env string) string {
	if env == "" {
		env = "local"
	}
	return "configs/config." + env + ".yaml"
}
