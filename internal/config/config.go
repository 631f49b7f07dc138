package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App    AppConfig
	Remote RemoteConfig
	UI     UIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	SessionTTL         time.Duration
}

type RemoteConfig struct {
	// BaseURL of the OpenAI-compatible service. The credential itself is
	// supplied interactively per session, never from the environment.
	BaseURL      string
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// UIConfig is the static UI-behavior file (ui.yaml). It carries only the
// telemetry opt-out toggle and has no effect on request handling.
type UIConfig struct {
	DisableTelemetry bool `yaml:"disable_telemetry"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			SessionTTL:         getEnvAsDuration("SESSION_TTL", time.Hour),
		},
		Remote: RemoteConfig{
			BaseURL:      getEnv("OPENAI_BASE_URL", ""),
			PollInterval: getEnvAsDuration("UPLOAD_POLL_INTERVAL", time.Second),
			PollTimeout:  getEnvAsDuration("UPLOAD_POLL_TIMEOUT", 90*time.Second),
		},
		UI: loadUIConfig(getEnv("UI_CONFIG_PATH", "ui.yaml")),
	}
}

func loadUIConfig(path string) UIConfig {
	var ui UIConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return ui
	}
	if err := yaml.Unmarshal(data, &ui); err != nil {
		log.Printf("Warning: could not parse %s: %v", path, err)
	}
	return ui
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	// Plain numbers are read as seconds.
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
