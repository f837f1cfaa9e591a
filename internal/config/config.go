package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	ierr "github.com/metagym/metagym-api/internal/errors"
)

// Configuration is the full application config, loaded from config files
// and METAGYM_* environment variables.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment"`
	Server     ServerConfig     `mapstructure:"server"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Email      EmailConfig      `mapstructure:"email"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Deployment modes.
const (
	ModeAPI        = "api"
	ModeProduction = "production"
	ModeTest       = "test"
)

type DeploymentConfig struct {
	Mode string `mapstructure:"mode" default:"api"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" default:":8080"`
}

type AuthConfig struct {
	Provider string         `mapstructure:"provider" default:"supabase"`
	Secret   string         `mapstructure:"secret"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
}

type SupabaseConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	ServiceKey string `mapstructure:"service_key"`
}

type EmailConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	APIKey      string `mapstructure:"api_key"`
	FromAddress string `mapstructure:"from_address" default:"Meta Gym <onboarding@metagym.dev>"`
	// CredentialsURL is the endpoint the approval workflow posts credential
	// notifications to. Usually this service's own /v1/notifications/credentials.
	CredentialsURL string `mapstructure:"credentials_url"`
	AdminPanelURL  string `mapstructure:"admin_panel_url" default:"https://admin.metagym.com"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" default:"info"`
}

// NewConfig loads configuration from ./config/config.yaml (optional), .env
// (optional), and the environment.
func NewConfig() (*Configuration, error) {
	// .env is a developer convenience; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("METAGYM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("Failed to read config file").
				Mark(ierr.ErrSystem)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to unmarshal configuration").
			Mark(ierr.ErrSystem)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", "api")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("auth.provider", "supabase")
	v.SetDefault("email.enabled", false)
	v.SetDefault("email.from_address", "Meta Gym <onboarding@metagym.dev>")
	v.SetDefault("email.admin_panel_url", "https://admin.metagym.com")
	v.SetDefault("logging.level", "info")
}

// Validate checks the invariants the server cannot start without.
func (c *Configuration) Validate() error {
	if c.Auth.Provider == "supabase" {
		if c.Auth.Supabase.BaseURL == "" || c.Auth.Supabase.ServiceKey == "" {
			return ierr.NewError("supabase configuration is incomplete").
				WithHint("auth.supabase.base_url and auth.supabase.service_key are required").
				Mark(ierr.ErrValidation)
		}
	}
	if c.Email.Enabled && c.Email.APIKey == "" {
		return ierr.NewError("email is enabled but api key is missing").
			WithHint("email.api_key is required when email.enabled is true").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// GetDefaultConfig returns a minimal configuration for tests and scripts.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: "test"},
		Server:     ServerConfig{Address: ":8080"},
		Auth: AuthConfig{
			Provider: "supabase",
			Secret:   "test-secret",
			Supabase: SupabaseConfig{
				BaseURL:    "http://localhost:54321",
				ServiceKey: "test-service-key",
			},
		},
		Email: EmailConfig{
			Enabled:       false,
			FromAddress:   "Meta Gym <onboarding@metagym.dev>",
			AdminPanelURL: "https://admin.metagym.com",
		},
		Logging: LoggingConfig{Level: "debug"},
	}
}

func (c *Configuration) String() string {
	return fmt.Sprintf("mode=%s addr=%s auth=%s email_enabled=%t",
		c.Deployment.Mode, c.Server.Address, c.Auth.Provider, c.Email.Enabled)
}
