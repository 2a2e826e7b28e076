package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model.
// It captures ranking weights, feed assembly knobs, the AI content service, and storage.
type Config struct {
	Ranking RankingConfig `yaml:"ranking"`
	Feed    FeedConfig    `yaml:"feed"`
	GenAI   GenAIConfig   `yaml:"genai"`
	Storage StorageConfig `yaml:"storage"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

type RankingConfig struct {
	// Score = AffinityWeight*affinity + PopularityWeight*popularity + ExplorationWeight*U
	AffinityWeight    float64 `yaml:"affinityWeight" validate:"gte=0"`
	PopularityWeight  float64 `yaml:"popularityWeight" validate:"gte=0"`
	ExplorationWeight float64 `yaml:"explorationWeight" validate:"gte=0"`
	// Cold start affinity for every organic category
	Prior float64 `yaml:"prior" validate:"gte=0"`
	// Profile deltas per interaction
	LikeBoost     float64 `yaml:"likeBoost" validate:"gte=0"`
	ShareBoost    float64 `yaml:"shareBoost" validate:"gte=0"`
	CompleteBoost float64 `yaml:"completeBoost" validate:"gte=0"`
	SkipPenalty   float64 `yaml:"skipPenalty" validate:"gte=0"`
}

type FeedConfig struct {
	// Account excluded from the following feed (sponsor)
	BrandAccountID    string        `yaml:"brandAccountId"`
	FollowingLimit    int           `yaml:"followingLimit" validate:"gte=1"`
	AdInterval        int           `yaml:"adInterval" validate:"gte=1"`
	FollowingPageSize int           `yaml:"followingPageSize" validate:"gte=1"`
	TopPicks          int           `yaml:"topPicks" validate:"gte=0"`
	ExplorationPicks  int           `yaml:"explorationPicks" validate:"gte=0"`
	Latency           time.Duration `yaml:"latency" validate:"gte=0"`
}

type GenAIConfig struct {
	Provider string `yaml:"provider" validate:"oneof=gemini none"`
	Model    string `yaml:"model" validate:"required"`
	// If empty, read from env GEMINI_API_KEY or API_KEY
	APIKey      string        `yaml:"apiKey"`
	BaseURL     string        `yaml:"baseUrl" validate:"required,url"`
	RPS         float64       `yaml:"rps" validate:"gt=0"`
	Burst       int           `yaml:"burst" validate:"gte=1"`
	Timeout     time.Duration `yaml:"timeout" validate:"gt=0"`
	MaxAttempts int           `yaml:"maxAttempts" validate:"gte=1"`
}

type StorageConfig struct {
	// Interaction journal; empty disables it
	DBPath string `yaml:"dbPath"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Ranking: RankingConfig{
			AffinityWeight:    0.7,
			PopularityWeight:  0.2,
			ExplorationWeight: 0.1,
			Prior:             0.1,
			LikeBoost:         0.5,
			ShareBoost:        0.8,
			CompleteBoost:     0.2,
			SkipPenalty:       0.1,
		},
		Feed: FeedConfig{
			BrandAccountID:    "brand_coke",
			FollowingLimit:    5,
			AdInterval:        4,
			FollowingPageSize: 2,
			TopPicks:          2,
			ExplorationPicks:  1,
			Latency:           time.Second,
		},
		GenAI: GenAIConfig{
			Provider:    "gemini",
			Model:       "gemini-2.5-flash",
			BaseURL:     "https://generativelanguage.googleapis.com/v1beta",
			RPS:         1,
			Burst:       3,
			Timeout:     15 * time.Second,
			MaxAttempts: 3,
		},
		Storage: StorageConfig{DBPath: ""},
		Metrics: MetricsConfig{Addr: ""},
		Log:     LogConfig{Level: "info"},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if c.GenAI.APIKey == "" {
		c.GenAI.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.GenAI.APIKey == "" {
		c.GenAI.APIKey = os.Getenv("API_KEY")
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = os.Getenv("HAPPYAFRICA_DB")
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = os.Getenv("METRICS_ADDR")
	}
	if v := os.Getenv("HAPPYAFRICA_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

var validate = validator.New()

// Validate checks field constraints declared in struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// Load reads YAML config from path. Missing keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.ResolveEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to defaults when path does not exist.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		cfg.ResolveEnv()
		return cfg, cfg.Validate()
	}
	return Load(path)
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
