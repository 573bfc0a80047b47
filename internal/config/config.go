package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	OpenAIAPIKey string
	ServerURL    string
	Model        string
}

// Load reads the client configuration from the environment, honoring a
// .env file in the working directory when present.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		ServerURL:    getEnv("MCP_SSE_URL", "http://127.0.0.1:8765/sse"),
		Model:        os.Getenv("OPENAI_MODEL"),
	}
	if cfg.OpenAIAPIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
