package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Provider exposes application configuration to the rest of the app.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetContentPath() string
	GetContentWatch() bool
	GetLiveReload() bool
	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
	GetContactInbox() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string
	AppBaseURL    string
	SessionSecret string
	ContentPath   string
	ContentWatch  bool
	LiveReload    bool
	EmailProvider string
	EmailAPIKey   string
	EmailSender   string
	ContactInbox  string
}

const devSessionSecret = "salon-dev-session-secret-change-me"

// New loads configuration from a .env file, if any, and environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment, applying defaults.
func FromEnv() *Config {
	cfg := &Config{
		AppAddr:       getenv("APP_ADDR", ":8080"),
		AppBaseURL:    getenv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		ContentPath:   os.Getenv("CONTENT_PATH"),
		ContentWatch:  getbool("CONTENT_WATCH"),
		LiveReload:    getbool("LIVE_RELOAD"),
		EmailProvider: getenv("EMAIL_PROVIDER", "log"),
		EmailAPIKey:   os.Getenv("EMAIL_API_KEY"),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
		ContactInbox:  os.Getenv("CONTACT_INBOX"),
	}

	if cfg.SessionSecret == "" {
		log.Println("SESSION_SECRET is not set, using an insecure development secret")
		cfg.SessionSecret = devSessionSecret
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

func (c *Config) GetAppAddr() string       { return c.AppAddr }
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetContentPath() string   { return c.ContentPath }
func (c *Config) GetContentWatch() bool    { return c.ContentWatch }
func (c *Config) GetLiveReload() bool      { return c.LiveReload }
func (c *Config) GetEmailProvider() string { return c.EmailProvider }
func (c *Config) GetEmailAPIKey() string   { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string   { return c.EmailSender }
func (c *Config) GetContactInbox() string  { return c.ContactInbox }
