package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres or sqlite
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
		BaseURL      string `yaml:"base_url"` // prefix for activation/reset links
	} `yaml:"email"`

	JWT struct {
		Secret     string `yaml:"secret"`
		TTL        int    `yaml:"ttl"`         // access token lifetime, minutes
		RefreshTTL int    `yaml:"refresh_ttl"` // refresh token lifetime, hours
	} `yaml:"jwt"`

	FirstSuperuserEmail    string `yaml:"first_superuser_email"`
	FirstSuperuserPassword string `yaml:"first_superuser_password"`
}

var AppConfig *Config

// LoadConfig populates AppConfig. Precedence: config file named by
// CONFIG_PATH (or config/config.yaml if present), then environment
// variables, then defaults. A .env file is honored when present.
func LoadConfig() {
	_ = godotenv.Load()

	cfg := defaultConfig()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	}

	applyEnvOverrides(cfg)

	AppConfig = cfg
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 4000
	cfg.Server.Env = "development"

	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "file::memory:?cache=shared"

	cfg.Email.SMTPHost = "localhost"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "no-reply@localhost"
	cfg.Email.UseTLS = false
	cfg.Email.BaseURL = "http://localhost:4000"

	cfg.JWT.Secret = "insecure-dev-secret"
	cfg.JWT.TTL = 60
	cfg.JWT.RefreshTTL = 24 * 7

	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
		cfg.Database.Driver = "postgres"
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("FIRST_SUPERUSER_EMAIL"); v != "" {
		cfg.FirstSuperuserEmail = v
	}
	if v := os.Getenv("FIRST_SUPERUSER_PASSWORD"); v != "" {
		cfg.FirstSuperuserPassword = v
	}
}

// GetConfig returns the loaded config, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
