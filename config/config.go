package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath      string
	LogPath     string
	CatalogPath string
	SplashDelay time.Duration
	Agency      AgencyConfig
}

// AgencyConfig is the static contact card shown in the contact view and
// used for outbound WhatsApp links.
type AgencyConfig struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	Address  string `yaml:"address"`
	Hours    string `yaml:"hours"`
	WhatsApp string `yaml:"whatsapp"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:      getEnv("DB_PATH", "dharti.db"),
		LogPath:     getEnv("LOG_PATH", "dharti.log"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
		SplashDelay: time.Second,
		Agency:      defaultAgency(),
	}

	if d, err := time.ParseDuration(os.Getenv("SPLASH_DELAY")); err == nil {
		cfg.SplashDelay = d
	}

	if path := getEnv("AGENCY_PATH", "config/agency.yaml"); path != "" {
		if err := cfg.loadAgency(path); err != nil {
			return nil, err
		}
	}

	if number := os.Getenv("WHATSAPP_NUMBER"); number != "" {
		cfg.Agency.WhatsApp = number
	}

	return cfg, nil
}

func (c *Config) loadAgency(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, &c.Agency)
}

func defaultAgency() AgencyConfig {
	return AgencyConfig{
		Name:     "DHARTI",
		Tagline:  "Luxury Real Estate",
		Phone:    "+91 99999 99999",
		Email:    "info@dharti.com",
		Address:  "123 Luxury Plaza, Business District, Mumbai, Maharashtra 400001",
		Hours:    "Mon - Sat: 9:00 AM - 7:00 PM, Sunday: 10:00 AM - 5:00 PM",
		WhatsApp: "919999999999",
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
