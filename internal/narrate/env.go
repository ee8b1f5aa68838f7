package narrate

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file if present, populating GEMINI_API_KEY and any
// other narration-provider credentials into the process environment.
// Missing files are not an error — production deployments set the
// environment directly.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// GeminiAPIKey reads the configured Gemini API key, or "" if narration
// should fall back to TemplateProvider.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}
