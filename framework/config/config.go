package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct.
type Config struct {
	App       AppConfig
	Log       LogConfig
	Container ContainerConfig

	// values read from the .env files; process environment wins over them
	values map[string]string
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
}

type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // console | json
}

type ContainerConfig struct {
	// Eager builds every shared component at boot instead of on first use.
	Eager bool
}

// Load reads .env files (if present) and populates a Config. Variables set in
// the process environment take precedence over the files, which are never
// written back into the environment.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist
	values, err := godotenv.Read(files...)
	if err != nil {
		values = map[string]string{}
	}

	cfg := &Config{values: values}
	cfg.App = AppConfig{
		Name:  cfg.Get("APP_NAME", "GoCalculator"),
		Env:   cfg.Get("APP_ENV", "local"),
		Debug: cfg.GetBool("APP_DEBUG", true),
	}
	cfg.Log = LogConfig{
		Level:  cfg.Get("LOG_LEVEL", "info"),
		Format: cfg.Get("LOG_FORMAT", "console"),
	}
	cfg.Container = ContainerConfig{
		Eager: cfg.GetBool("CONTAINER_EAGER", true),
	}
	return cfg
}

// Get returns a raw value, falling back to defaultVal.
func (c *Config) Get(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := c.values[key]; v != "" {
		return v
	}
	return defaultVal
}

// GetBool returns a bool value. Unparsable values fall back to defaultVal.
func (c *Config) GetBool(key string, defaultVal bool) bool {
	v := c.Get(key, "")
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
