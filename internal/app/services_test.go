package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waldur/eoscsync/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Waldur.APIURL = "https://api.example.com"
	cfg.Waldur.Token = "token"
	cfg.Waldur.CustomerUUID = "cust-1"
	cfg.Waldur.HTTPTimeout = config.Duration(5 * time.Second)
	cfg.EOSC.Portal.BaseURL = "https://providers.example.com"
	cfg.EOSC.Portal.CatalogueID = "cat"
	cfg.EOSC.Marketplace.BaseURL = "https://marketplace.example.com"
	cfg.EOSC.Marketplace.OfferingToken = "offering-token"
	cfg.EOSC.Auth.RefreshTokenURL = "https://aai.example.com/token"
	cfg.EOSC.Auth.RefreshToken = "refresh"
	cfg.EOSC.Auth.ClientID = "client"
	cfg.EOSC.HTTPTimeout = config.Duration(5 * time.Second)
	cfg.EOSC.RateLimitRPS = 5.0
	cfg.Sync.Interval = config.Duration(10 * time.Minute)
	cfg.Sync.Defaults = config.Defaults{
		SupportEmail:        "support@puhuri.io",
		PlaceholderURL:      "https://placeholder.example.com",
		ProviderWebsite:     "https://share.neic.no/",
		Category:            "category-aggregators_and_integrators-aggregators_and_integrators",
		Subcategory:         "subcategory-aggregators_and_integrators-aggregators_and_integrators-applications",
		ScientificDomain:    "scientific_domain-generic",
		ScientificSubdomain: "scientific_subdomain-generic-generic",
		TargetUsers:         []string{"target_user-researchers"},
		Tags:                []string{"data-access"},
	}
	return cfg
}

func TestNewServicesWiresEverything(t *testing.T) {
	services, err := NewServices(testConfig())
	require.NoError(t, err)

	assert.NotNil(t, services.Waldur)
	assert.NotNil(t, services.Tokens)
	assert.NotNil(t, services.Portal)
	assert.NotNil(t, services.Marketplace)
	assert.NotNil(t, services.Reconciler)
	assert.NotNil(t, services.Scheduler)
	assert.NotNil(t, services.Health)
}

func TestNewServicesRejectsUnknownTaxonomy(t *testing.T) {
	cfg := testConfig()
	cfg.Sync.Defaults.Category = "category-typo"

	_, err := NewServices(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestNewLimiterClampsBurst(t *testing.T) {
	// A fractional rate must not produce a zero burst; every Wait would
	// fail with "exceeds limiter's burst".
	limiter := newLimiter(0.5)
	assert.GreaterOrEqual(t, limiter.Burst(), 1)
	assert.True(t, limiter.Allow())

	limiter = newLimiter(5.0)
	assert.Equal(t, 5, limiter.Burst())
}
