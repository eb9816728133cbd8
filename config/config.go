package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/snipfeed/snipfeed/errors"
)

// Text generation provider variants.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Keys struct {
	YouTube string
	Gemini  string
	OpenAI  string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Config is built once in main from the environment and injected into every
// component. Nothing outside this package reads ambient state.
type Config struct {
	APIPort         string
	TextGenProvider string
	Keys            Keys
	Postgres        Postgres
}

func Load() Config {
	// a .env file is optional, the environment itself wins
	_ = godotenv.Load()

	return Config{
		APIPort:         getParam("API_PORT", "8080"),
		TextGenProvider: getParam("TEXTGEN_PROVIDER", ProviderGemini),
		Keys: Keys{
			YouTube: getParam("YOUTUBE_API_KEY", ""),
			Gemini:  getParam("GEMINI_API_KEY", ""),
			OpenAI:  getParam("OPENAI_API_KEY", ""),
		},
		Postgres: Postgres{
			Host:     getParam("POSTGRES_HOST", "localhost"),
			Port:     getParam("POSTGRES_PORT", "5432"),
			User:     getParam("POSTGRES_USER", "snipfeed"),
			Password: getParam("POSTGRES_PASSWORD", "snipfeed"),
			Database: getParam("POSTGRES_DB", "snipfeed"),
		},
	}
}

// ValidateKeys reports whether both provider credentials needed for a request
// are present. The orchestrator runs this before any upstream call, so a
// misconfigured process keeps serving and fails every request.
func (c Config) ValidateKeys() error {
	if c.Keys.YouTube == "" {
		return errors.New(errors.CodeConfiguration, "youtube api key is not configured")
	}
	genKey := c.Keys.Gemini
	if c.TextGenProvider == ProviderOpenAI {
		genKey = c.Keys.OpenAI
	}
	if genKey == "" {
		return errors.New(errors.CodeConfiguration, "text generation api key is not configured")
	}
	return nil
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}
