package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN" required:"true"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET"`
	// SlackAppToken enables socket mode when set (xapp- token).
	SlackAppToken string `envconfig:"SLACK_APP_TOKEN"`

	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`

	SheetURL    string `envconfig:"SHEET_URL"`
	SheetName   string `envconfig:"SHEET_NAME" default:"manager"`
	SheetSecret string `envconfig:"SHEET_SECRET"`

	KnowledgePath string `envconfig:"KNOWLEDGE_PATH" default:"data/knowledge.json"`

	ClassifyThreshold   float64 `envconfig:"CLASSIFY_THRESHOLD" default:"0.82"`
	SearchMinSimilarity float64 `envconfig:"SEARCH_MIN_SIMILARITY" default:"0.82"`
	SearchTopN          int     `envconfig:"SEARCH_TOP_N" default:"3"`

	// RefreshInterval is how often the knowledge base and department
	// directory are reloaded. Zero disables periodic refresh.
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"10m"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("FRONTDESK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

func (c *Config) HasSheet() bool {
	return c.SheetURL != ""
}

func (c *Config) HasSocketMode() bool {
	return c.SlackAppToken != ""
}
