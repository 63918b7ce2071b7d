package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything Chime needs to reach the library API.
type Config struct {
	APIURL   string
	APIToken string
	PageSize int
}

const (
	defaultConfigPath = "~/.config/chime/config.toml"
	defaultAPIURL     = "https://api.chime.dev/v1"
	defaultPageSize   = 50
)

// Environment variables that overlay the config file. A .env file in the
// working directory is loaded first, so local development tokens never
// have to live in the config.
const (
	envAPIURL   = "CHIME_API_URL"
	envAPIToken = "CHIME_API_TOKEN"
	envPageSize = "CHIME_PAGE_SIZE"
)

// Load locates and parses the config, falling back to defaults when
// missing. Environment variables override file values.
func Load(path string) (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Config{APIURL: defaultAPIURL, PageSize: defaultPageSize}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg.applyEnv()
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL   string `toml:"api_url"`
		APIToken string `toml:"api_token"`
		PageSize int    `toml:"page_size"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.APIURL); url != "" {
		cfg.APIURL = url
	}
	cfg.APIToken = strings.TrimSpace(raw.APIToken)
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}

	return cfg.applyEnv()
}

func (c Config) applyEnv() (Config, error) {
	if url := strings.TrimSpace(os.Getenv(envAPIURL)); url != "" {
		c.APIURL = url
	}
	if token := strings.TrimSpace(os.Getenv(envAPIToken)); token != "" {
		c.APIToken = token
	}
	if raw := strings.TrimSpace(os.Getenv(envPageSize)); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return Config{}, fmt.Errorf("invalid %s %q", envPageSize, raw)
		}
		c.PageSize = size
	}
	return c, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
