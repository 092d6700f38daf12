package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName      string
	AppEnv       string
	AppPort      string
	DatabaseURL  string
	SQLitePath   string
	TeacherToken string
	ParentToken  string
	AdminToken   string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// BearerTokens returns the static token→role mapping used to build the auth
// registry. Tokens are opaque configuration; there is no issuance flow.
func (c Config) BearerTokens() map[string]string {
	return map[string]string{
		c.TeacherToken: "teacher",
		c.ParentToken:  "parent",
		c.AdminToken:   "admin",
	}
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FEED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "special-ed-platform-backend")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("sqlite.path", "app.db")
	v.SetDefault("token.teacher", "teacher-token-123")
	v.SetDefault("token.parent", "parent-token-123")
	v.SetDefault("token.admin", "admin-token-123")

	cfg := Config{
		AppName:      v.GetString("app.name"),
		AppEnv:       v.GetString("app.env"),
		AppPort:      v.GetString("app.port"),
		DatabaseURL:  v.GetString("database.url"),
		SQLitePath:   v.GetString("sqlite.path"),
		TeacherToken: v.GetString("token.teacher"),
		ParentToken:  v.GetString("token.parent"),
		AdminToken:   v.GetString("token.admin"),
	}

	if cfg.TeacherToken == "" || cfg.ParentToken == "" || cfg.AdminToken == "" {
		return Config{}, fmt.Errorf("bearer tokens must not be blank")
	}

	return cfg, nil
}
