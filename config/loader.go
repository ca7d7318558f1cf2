package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed application.yaml
var embeddedConfig []byte

// Load reads .env (if any), the YAML file named by CONFIG_PATH or the
// embedded defaults, then applies environment variable overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()

	raw := embeddedConfig
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
		raw = b
	}

	cfg, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML on top of the embedded defaults.
func Parse(raw []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(embeddedConfig, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Env, "APP_ENV")
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Dataset.Path, "DATASET_PATH")
	setString(&cfg.Dataset.DayPartMode, "DAYPART_MODE")
	setString(&cfg.Geocoder.BaseURL, "NOMINATIM_BASE_URL")
	setString(&cfg.Geocoder.UserAgent, "GEOCODER_USER_AGENT")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")

	if err := setInt(&cfg.Redis.DB, "REDIS_DB"); err != nil {
		return err
	}
	if err := setInt(&cfg.Dataset.RefreshIntervalMinutes, "REFRESH_INTERVAL_MINUTES"); err != nil {
		return err
	}
	if err := setInt(&cfg.Map.MarkerLimit, "MARKER_LIMIT"); err != nil {
		return err
	}

	if cfg.Map.TileStyles == nil {
		cfg.Map.TileStyles = map[string]string{}
	}
	for _, part := range []string{"dawn", "day", "dusk", "night"} {
		if v := os.Getenv("TILE_STYLE_" + strings.ToUpper(part)); v != "" {
			cfg.Map.TileStyles[part] = v
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}
