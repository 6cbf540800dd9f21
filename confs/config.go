package confs

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds server settings. Values come from config.yaml when present
// and can be overridden per-key through environment variables.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	JWTSecret string `yaml:"jwt_secret"`
	BackupDir string `yaml:"backup_dir"`
	Chat      struct {
		// SessionTTLMinutes is how long an idle widget session stays in
		// the live-session cache before it is dropped.
		SessionTTLMinutes int `yaml:"session_ttl_minutes"`
	} `yaml:"chat"`
}

// LoadConfig loads .env (if present), then config.yaml (if present), then
// applies environment overrides.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Only log when the file exists but could not be read.
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 3590
	cfg.BackupDir = "backups"
	cfg.Chat.SessionTTLMinutes = 30

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config.yaml: %w", err)
		}
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Server.Port = p
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("BACKUP_DIR"); v != "" {
		cfg.BackupDir = v
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required (env or config.yaml)")
	}
	return cfg, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
