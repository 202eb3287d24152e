// Package config loads filesend settings from an optional TOML file and the
// environment. Environment variables win over the file; a .env file in the
// working directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/ib-77/railway/pkg/filesend"
)

// Config is the filesend CLI configuration.
type Config struct {
	Formats      []string `toml:"formats"`
	MaxAgeMonths int      `toml:"max_age_months"`
	KeyFile      string   `toml:"key_file"`
	Subject      string   `toml:"subject"`
	Out          string   `toml:"out"`
	Verbose      bool     `toml:"verbose"`
}

func Default() Config {
	return Config{
		Formats:      append([]string(nil), filesend.DefaultFormats...),
		MaxAgeMonths: filesend.DefaultMaxAgeMonths,
		KeyFile:      "filesend.key",
		Subject:      "filesend",
		Out:          "sent.msgpack",
	}
}

// Load reads path (skipped when empty) over the defaults, then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if len(c.Formats) == 0 {
		return errors.New("at least one accepted format is required")
	}
	if c.MaxAgeMonths <= 0 {
		return fmt.Errorf("max_age_months must be positive, got %d", c.MaxAgeMonths)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := getEnv("FILESEND_FORMATS", ""); v != "" {
		cfg.Formats = splitList(v)
	}
	cfg.KeyFile = getEnv("FILESEND_KEY_FILE", cfg.KeyFile)
	cfg.Subject = getEnv("FILESEND_SUBJECT", cfg.Subject)
	cfg.Out = getEnv("FILESEND_OUT", cfg.Out)

	var err error
	if cfg.MaxAgeMonths, err = getEnvInt("FILESEND_MAX_AGE_MONTHS", cfg.MaxAgeMonths); err != nil {
		return err
	}
	if cfg.Verbose, err = getEnvBool("FILESEND_VERBOSE", cfg.Verbose); err != nil {
		return err
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvBool returns def when key is unset and an error when it is set to
// something that is not a boolean.
func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return i, nil
}
