package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything the mailer reads from the environment. It is
// constructed once in main and passed down explicitly; nothing else in the
// tree looks at os.Environ.
type Config struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	EmailSender    string `env:"EMAIL_SENDER"`
	EmailPassword  string `env:"EMAIL_PASSWORD"`
	EmailRecipient string `env:"EMAIL_RECIPIENT"`

	SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`

	LLMModel   string `env:"LLM_MODEL" envDefault:"gemini-2.5-flash"`
	LLMBaseURL string `env:"LLM_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai/"`

	QuickChartURL string `env:"QUICKCHART_URL" envDefault:"https://quickchart.io/chart/create"`

	HistoryFile string `env:"HISTORY_FILE" envDefault:"history.json"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the startup-fatal conditions only. Missing sender
// credentials surface later as a delivery failure, matching the error
// taxonomy: only the generation credential aborts before any work.
func (c Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY environment variable not set")
	}
	return nil
}
