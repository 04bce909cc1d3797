package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Waldur          WaldurConfig      `yaml:"waldur"`
	EOSC            EOSCConfig        `yaml:"eosc"`
	Sync            SyncConfig        `yaml:"sync"`
	Log             LogConfig         `yaml:"log"`
	Healthcheck     HealthcheckConfig `yaml:"healthcheck"`
	ShutdownTimeout Duration          `yaml:"shutdown_timeout"` // General shutdown timeout for graceful stops
}

// WaldurConfig contains source platform connection settings
type WaldurConfig struct {
	APIURL       string   `yaml:"api_url"`
	Token        string   `yaml:"token"`
	CustomerUUID string   `yaml:"customer_uuid"` // scope for offering listing
	HTTPTimeout  Duration `yaml:"http_timeout"`
}

// EOSCConfig contains destination connection settings for both EOSC APIs
type EOSCConfig struct {
	Portal       PortalConfig      `yaml:"portal"`
	Marketplace  MarketplaceConfig `yaml:"marketplace"`
	Auth         AuthConfig        `yaml:"auth"`
	HTTPTimeout  Duration          `yaml:"http_timeout"`
	RateLimitRPS float64           `yaml:"rate_limit_rps"` // paces all destination API calls
}

// PortalConfig contains provider portal API settings
type PortalConfig struct {
	BaseURL     string `yaml:"base_url"`
	CatalogueID string `yaml:"catalogue_id"`
}

// MarketplaceConfig contains marketplace/offer API settings.
// The marketplace uses its own base URL and an X-User-Token header,
// not the portal bearer token.
type MarketplaceConfig struct {
	BaseURL       string `yaml:"base_url"`
	OfferingToken string `yaml:"offering_token"`
}

// AuthConfig contains the AAI refresh-token exchange settings
type AuthConfig struct {
	RefreshTokenURL string `yaml:"refresh_token_url"`
	RefreshToken    string `yaml:"refresh_token"`
	ClientID        string `yaml:"client_id"`
	Scope           string `yaml:"scope"`
}

// SyncConfig contains reconciliation loop settings
type SyncConfig struct {
	Interval Duration `yaml:"interval"`
	Defaults Defaults `yaml:"defaults"`
}

// Defaults holds fallback values applied when the source carries no real
// classification or contact data. The taxonomy codes must be valid entries
// of the EOSC vocabularies.
type Defaults struct {
	SupportEmail        string   `yaml:"support_email"`
	PlaceholderURL      string   `yaml:"placeholder_url"`
	ProviderWebsite     string   `yaml:"provider_website"`
	Category            string   `yaml:"category"`
	Subcategory         string   `yaml:"subcategory"`
	ScientificDomain    string   `yaml:"scientific_domain"`
	ScientificSubdomain string   `yaml:"scientific_subdomain"`
	TargetUsers         []string `yaml:"target_users"`
	Tags                []string `yaml:"tags"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level   string `yaml:"level"`
	UseJSON bool   `yaml:"json"`
	Colors  bool   `yaml:"colors"`
}

// GetLevel returns the configured log level
func (c *LogConfig) GetLevel() string {
	return c.Level
}

// HealthcheckConfig contains health check server settings
type HealthcheckConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

// Duration is a wrapper around time.Duration for YAML unmarshalling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// GetShutdownTimeout returns the shutdown timeout
func (c *Config) GetShutdownTimeout() time.Duration {
	return c.ShutdownTimeout.Duration()
}

// Load reads, expands and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Waldur.HTTPTimeout == 0 {
		cfg.Waldur.HTTPTimeout = Duration(30 * time.Second)
	}
	if cfg.EOSC.HTTPTimeout == 0 {
		cfg.EOSC.HTTPTimeout = Duration(30 * time.Second)
	}
	if cfg.EOSC.RateLimitRPS == 0 {
		cfg.EOSC.RateLimitRPS = 5.0
	}
	if cfg.EOSC.Auth.Scope == "" {
		cfg.EOSC.Auth.Scope = "openid email profile"
	}

	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = Duration(10 * time.Minute)
	}

	d := &cfg.Sync.Defaults
	if d.SupportEmail == "" {
		d.SupportEmail = "support@puhuri.io"
	}
	if d.PlaceholderURL == "" {
		d.PlaceholderURL = "https://placeholder.example.com"
	}
	if d.ProviderWebsite == "" {
		d.ProviderWebsite = "https://share.neic.no/"
	}
	if d.Category == "" {
		d.Category = "category-aggregators_and_integrators-aggregators_and_integrators"
	}
	if d.Subcategory == "" {
		d.Subcategory = "subcategory-aggregators_and_integrators-aggregators_and_integrators-applications"
	}
	if d.ScientificDomain == "" {
		d.ScientificDomain = "scientific_domain-generic"
	}
	if d.ScientificSubdomain == "" {
		d.ScientificSubdomain = "scientific_subdomain-generic-generic"
	}
	if len(d.TargetUsers) == 0 {
		d.TargetUsers = []string{"target_user-researchers"}
	}
	if len(d.Tags) == 0 {
		d.Tags = []string{"data-access", "remote-access", "collaboration"}
	}

	if cfg.Healthcheck.Port == 0 {
		cfg.Healthcheck.Port = 9090
	}
	if cfg.Healthcheck.Host == "" {
		cfg.Healthcheck.Host = "0.0.0.0"
	}

	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = Duration(5 * time.Second)
	}
}

// Validate checks that every required setting is present. A missing value
// here is a fatal startup error: the daemon refuses to run half-configured.
func (cfg *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"waldur.api_url", cfg.Waldur.APIURL},
		{"waldur.token", cfg.Waldur.Token},
		{"waldur.customer_uuid", cfg.Waldur.CustomerUUID},
		{"eosc.portal.base_url", cfg.EOSC.Portal.BaseURL},
		{"eosc.portal.catalogue_id", cfg.EOSC.Portal.CatalogueID},
		{"eosc.marketplace.base_url", cfg.EOSC.Marketplace.BaseURL},
		{"eosc.marketplace.offering_token", cfg.EOSC.Marketplace.OfferingToken},
		{"eosc.auth.refresh_token_url", cfg.EOSC.Auth.RefreshTokenURL},
		{"eosc.auth.refresh_token", cfg.EOSC.Auth.RefreshToken},
		{"eosc.auth.client_id", cfg.EOSC.Auth.ClientID},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("mandatory setting %s is missing or empty", r.name)
		}
	}
	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}
func expandEnvVars(input string) string {
	// Match ${VAR} or ${VAR:default}
	re := regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

	return re.ReplaceAllStringFunc(input, func(match string) string {
		parts := re.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		varName := parts[1]
		defaultVal := ""
		if len(parts) >= 3 {
			defaultVal = parts[2]
		}

		if val := os.Getenv(varName); val != "" {
			return val
		}
		return defaultVal
	})
}
