package config

import (
	"os"
	"path/filepath"
	"time"
)

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const AMENITIES_CSV_RESOURCE = "amenities.csv"
const AMENITIES_JSON_RESOURCE = "amenities.json"
const NOMINATIM_SEARCH_RESPONSE_RESOURCE = "nominatim_search_response.json"

// Config is the application configuration.
type Config struct {
	Env      string         `yaml:"env"`
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
	Map      MapConfig      `yaml:"map"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type RedisConfig struct {
	Addr              string `yaml:"addr"`
	Password          string `yaml:"password"`
	DB                int    `yaml:"db"`
	SessionTTLMinutes int    `yaml:"session_ttl_minutes"`
}

type DatasetConfig struct {
	Path                   string `yaml:"path"`
	NormalizeMidnight      bool   `yaml:"normalize_midnight"`
	DayPartMode            string `yaml:"day_part_mode"`
	RefreshIntervalMinutes int    `yaml:"refresh_interval_minutes"`
}

type GeocoderConfig struct {
	BaseURL         string `yaml:"base_url"`
	UserAgent       string `yaml:"user_agent"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
	RetryAttempts   uint   `yaml:"retry_attempts"`
}

// MapConfig holds marker and basemap settings. TileStyles maps a day-part
// name (dawn, day, dusk, night) to a tile URL template.
type MapConfig struct {
	MarkerLimit int               `yaml:"marker_limit"`
	TileStyles  map[string]string `yaml:"tile_styles"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Redis.SessionTTLMinutes) * time.Minute
}

func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Dataset.RefreshIntervalMinutes) * time.Minute
}

func (c *Config) GeocoderTimeout() time.Duration {
	return time.Duration(c.Geocoder.TimeoutSeconds) * time.Second
}

func (c *Config) GeocoderCacheTTL() time.Duration {
	return time.Duration(c.Geocoder.CacheTTLMinutes) * time.Minute
}

// IsProd reports whether live external services should be used.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
