package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API       APIConfig       `yaml:"api"`
	Pages     PagesConfig     `yaml:"pages"`
	Challenge ChallengeConfig `yaml:"challenge"`
	Store     StoreConfig     `yaml:"store"`
	LogLevel  string          `yaml:"log_level"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type PagesConfig struct {
	ArticlePageSize int `yaml:"article_page_size"`
	AuthorPageSize  int `yaml:"author_page_size"`
}

type ChallengeConfig struct {
	TagSlug   string `yaml:"tag_slug"`
	TotalDays int    `yaml:"total_days"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

// Load reads the yaml config at path, expanding ${VAR} references from the
// environment (a .env file is honored if present). A missing file is not an
// error: defaults cover every field.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://api.devhub.education/api"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30 * time.Second
	}
	if c.Pages.ArticlePageSize == 0 {
		c.Pages.ArticlePageSize = 10
	}
	if c.Pages.AuthorPageSize == 0 {
		c.Pages.AuthorPageSize = 8
	}
	if c.Challenge.TagSlug == "" {
		c.Challenge.TagSlug = "cloud-challenge"
	}
	if c.Challenge.TotalDays == 0 {
		c.Challenge.TotalDays = 30
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
