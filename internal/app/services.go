package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/waldur/eoscsync/internal/config"
	"github.com/waldur/eoscsync/internal/eosc"
	"github.com/waldur/eoscsync/internal/scheduler"
	syncer "github.com/waldur/eoscsync/internal/sync"
	"github.com/waldur/eoscsync/internal/waldur"
)

// Services is a container for all application services.
// It manages service initialization order and dependencies.
type Services struct {
	cfg *config.Config

	// Clients
	Waldur      *waldur.Client
	Tokens      *eosc.TokenSource
	Portal      *eosc.PortalClient
	Marketplace *eosc.MarketplaceClient

	// Core
	Reconciler *syncer.Reconciler
	Scheduler  *scheduler.Scheduler
	Health     *HealthService

	wg sync.WaitGroup
}

// NewServices creates all services with proper dependency injection.
func NewServices(cfg *config.Config) (*Services, error) {
	if err := validateDefaults(cfg.Sync.Defaults); err != nil {
		return nil, err
	}

	s := &Services{cfg: cfg}

	s.Waldur = waldur.NewClient(
		cfg.Waldur.APIURL,
		cfg.Waldur.Token,
		cfg.Waldur.CustomerUUID,
		cfg.Waldur.HTTPTimeout.Duration(),
	)

	s.Tokens = eosc.NewTokenSource(
		cfg.EOSC.Auth.RefreshTokenURL,
		cfg.EOSC.Auth.RefreshToken,
		cfg.EOSC.Auth.ClientID,
		cfg.EOSC.Auth.Scope,
		cfg.EOSC.HTTPTimeout.Duration(),
	)

	// Both destination APIs share one limiter; they sit behind the same
	// rate-sensitive infrastructure.
	limiter := newLimiter(cfg.EOSC.RateLimitRPS)

	s.Portal = eosc.NewPortalClient(
		cfg.EOSC.Portal.BaseURL,
		cfg.EOSC.Portal.CatalogueID,
		s.Tokens,
		limiter,
		cfg.EOSC.HTTPTimeout.Duration(),
	)

	s.Marketplace = eosc.NewMarketplaceClient(
		cfg.EOSC.Marketplace.BaseURL,
		cfg.EOSC.Marketplace.OfferingToken,
		limiter,
		cfg.EOSC.HTTPTimeout.Duration(),
	)

	s.Reconciler = syncer.New(s.Waldur, s.Portal, s.Marketplace, cfg.EOSC.Portal.CatalogueID, cfg.Sync.Defaults)
	s.Scheduler = scheduler.New(s.Reconciler, cfg.Sync.Interval.Duration())
	s.Health = NewHealthService(cfg, s.Scheduler)

	return s, nil
}

// newLimiter builds the shared destination limiter. The burst never drops
// below 1: a fractional rate with burst 0 would reject every single wait.
func newLimiter(rps float64) *rate.Limiter {
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// validateDefaults checks the configured taxonomy codes against the portal
// vocabularies so a typo fails at startup instead of on every resource write.
func validateDefaults(d config.Defaults) error {
	if !eosc.ValidCategory(d.Category, d.Subcategory) {
		return fmt.Errorf("unknown category/subcategory pair: %s / %s", d.Category, d.Subcategory)
	}
	if !eosc.ValidScientificDomain(d.ScientificDomain, d.ScientificSubdomain) {
		return fmt.Errorf("unknown scientific domain/subdomain pair: %s / %s", d.ScientificDomain, d.ScientificSubdomain)
	}
	for _, tu := range d.TargetUsers {
		if !eosc.ValidTargetUser(tu) {
			return fmt.Errorf("unknown target user code: %s", tu)
		}
	}
	return nil
}

// Start starts all background services.
func (s *Services) Start(ctx context.Context) {
	s.Health.Start(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.Scheduler.Run(ctx); err != nil {
			log.Error().Err(err).Msg("Sync loop error")
		}
	}()
}

// Stop waits for background services to finish.
func (s *Services) Stop() error {
	s.wg.Wait()
	return nil
}
