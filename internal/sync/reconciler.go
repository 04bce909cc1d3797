// Package sync implements the reconciliation engine that mirrors source
// offerings into the destination catalogue.
package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/waldur/eoscsync/internal/config"
	"github.com/waldur/eoscsync/internal/eosc"
	"github.com/waldur/eoscsync/internal/mapper"
	"github.com/waldur/eoscsync/internal/waldur"
)

// Source lists offerings and customer data from the source platform.
type Source interface {
	ListOfferings(ctx context.Context) ([]waldur.Offering, error)
	GetCustomer(ctx context.Context, uuid string) (*waldur.Customer, error)
	ListServiceProviders(ctx context.Context, customerUUID string) ([]waldur.ServiceProvider, error)
	HomeportURL(ctx context.Context) (string, error)
	APIURL() string
}

// Portal mutates providers and resources in the destination provider portal.
type Portal interface {
	GetProvider(ctx context.Context, id string) (*eosc.Provider, error)
	CreateProvider(ctx context.Context, provider *eosc.Provider) (*eosc.Provider, error)
	UpdateProvider(ctx context.Context, provider *eosc.Provider) (*eosc.Provider, error)
	CatalogueResources(ctx context.Context) (*eosc.Snapshot, error)
	GetResource(ctx context.Context, id string) (*eosc.Resource, error)
	CreateResource(ctx context.Context, resource *eosc.Resource) (*eosc.Resource, error)
	UpdateResource(ctx context.Context, resource *eosc.Resource) (*eosc.Resource, error)
	DeleteResource(ctx context.Context, id string) (*eosc.Resource, error)
}

// Marketplace mutates offers in the destination marketplace.
type Marketplace interface {
	ListOffers(ctx context.Context, resourceID string) ([]eosc.Offer, error)
	CreateOffer(ctx context.Context, resourceID string, offer *eosc.Offer) (*eosc.Offer, error)
	DeactivateOffer(ctx context.Context, resourceID string, offerID int) error
}

// Reconciler runs one full sync cycle: it derives all state from the two
// remote systems, computes per-entity actions and applies them serially.
// Nothing is persisted locally between cycles.
type Reconciler struct {
	source      Source
	portal      Portal
	marketplace Marketplace
	catalogueID string
	defaults    config.Defaults
}

// New creates a Reconciler.
func New(source Source, portal Portal, marketplace Marketplace, catalogueID string, defaults config.Defaults) *Reconciler {
	return &Reconciler{
		source:      source,
		portal:      portal,
		marketplace: marketplace,
		catalogueID: catalogueID,
		defaults:    defaults,
	}
}

// RunCycle executes one reconciliation cycle. An error means the cycle was
// aborted before any destination writes; per-customer failures are contained
// inside the cycle and never surface here.
func (r *Reconciler) RunCycle(ctx context.Context) error {
	logger := log.With().Str("cycle", uuid.NewString()).Logger()

	offerings, err := r.source.ListOfferings(ctx)
	if err != nil {
		return fmt.Errorf("listing source offerings: %w", err)
	}
	if len(offerings) == 0 {
		logger.Info().Msg("No offerings are ready for sync with the destination catalogue")
		return nil
	}

	// Group offerings by owning customer, preserving encounter order.
	groups := make(map[string][]waldur.Offering)
	var order []string
	for _, offering := range offerings {
		if _, seen := groups[offering.CustomerUUID]; !seen {
			order = append(order, offering.CustomerUUID)
		}
		groups[offering.CustomerUUID] = append(groups[offering.CustomerUUID], offering)
	}

	// One snapshot per cycle. Without it no match can be trusted, so a
	// failed fetch aborts the cycle before any destination write happens.
	snapshot, err := r.portal.CatalogueResources(ctx)
	if err != nil {
		return fmt.Errorf("fetching catalogue snapshot: %w", err)
	}
	logger.Info().Int("resources", snapshot.Len()).Int("offerings", len(offerings)).Msg("Catalogue snapshot fetched")

	homeport, err := r.source.HomeportURL(ctx)
	if err != nil {
		return fmt.Errorf("resolving homeport URL: %w", err)
	}
	orderURL := mapper.OrderURL(r.source.APIURL())

	for _, customerUUID := range order {
		if err := r.processCustomer(ctx, logger, customerUUID, groups[customerUUID], snapshot, homeport, orderURL); err != nil {
			// One customer's bad data must never block the others.
			logger.Error().Err(err).Str("customer_uuid", customerUUID).
				Msg("Customer and its offerings can not be processed")
		}
	}
	return nil
}

// processCustomer syncs one customer group. Panics from malformed records
// are converted into errors so the caller's isolation holds.
func (r *Reconciler) processCustomer(ctx context.Context, logger zerolog.Logger,
	customerUUID string, offerings []waldur.Offering, snapshot *eosc.Snapshot,
	homeport, orderURL string) (err error) {

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic while processing customer: %v", rec)
		}
	}()

	customer, err := r.source.GetCustomer(ctx, customerUUID)
	if err != nil {
		return err
	}

	provider, err := r.syncProvider(ctx, logger, customer, homeport)
	if err != nil {
		return err
	}
	logger.Info().Int("offerings", len(offerings)).Str("provider", provider.ID).
		Msg("Syncing offerings of the provider")

	for _, offering := range offerings {
		offering := offering
		olog := logger.With().Str("offering", offering.Name).Str("customer", offering.CustomerName).Logger()
		olog.Info().Str("state", offering.State).Msg("Syncing offering")

		switch {
		case offering.SyncEnabled():
			resource, err := r.syncResource(ctx, olog, &offering, provider.ID, snapshot, homeport)
			if err != nil {
				return err
			}
			if err := r.syncOffers(ctx, olog, resource.ID, &offering, orderURL); err != nil {
				return err
			}
		case offering.Retired():
			r.retireResource(ctx, olog, &offering, snapshot)
		}
	}
	return nil
}

// syncProvider resolves the destination provider for a customer, creating
// it when absent and updating it otherwise. The existing users list is
// replayed verbatim on update: the portal owns provider-user approval state.
func (r *Reconciler) syncProvider(ctx context.Context, logger zerolog.Logger,
	customer *waldur.Customer, homeport string) (*eosc.Provider, error) {

	key, err := mapper.ProviderKey(customer)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("customer", customer.Name).Str("provider", key).Msg("Syncing customer")

	existing, err := r.portal.GetProvider(ctx, key)
	if err != nil && !errors.Is(err, eosc.ErrNotFound) {
		return nil, err
	}

	spDescription, err := r.serviceProviderDescription(ctx, customer.UUID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		payload, err := mapper.ProviderPayload(customer, spDescription, homeport, r.defaults, r.catalogueID, "", nil)
		if err != nil {
			return nil, err
		}
		created, err := r.portal.CreateProvider(ctx, payload)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("provider", created.ID).Msg("Provider has been created")
		return created, nil
	}

	payload, err := mapper.ProviderPayload(customer, spDescription, homeport, r.defaults, r.catalogueID, existing.ID, existing.Users)
	if err != nil {
		return nil, err
	}
	updated, err := r.portal.UpdateProvider(ctx, payload)
	if err != nil {
		if errors.Is(err, eosc.ErrUnchanged) {
			logger.Debug().Str("provider", existing.ID).Msg("Provider is already up to date")
		} else {
			// Provider updates are best-effort; the fetched record still
			// carries everything the rest of the cycle needs.
			logger.Warn().Err(err).Str("provider", existing.ID).Msg("Unable to update the provider")
		}
		return existing, nil
	}
	logger.Info().Str("provider", updated.ID).Msg("Provider has been updated")
	return updated, nil
}

func (r *Reconciler) serviceProviderDescription(ctx context.Context, customerUUID string) (string, error) {
	providers, err := r.source.ListServiceProviders(ctx, customerUUID)
	if err != nil {
		return "", err
	}
	if len(providers) == 0 {
		return "", nil
	}
	return providers[0].Description, nil
}

// syncResource creates or updates the resource mirroring an offering.
// Creation failures are fatal for the customer group; update failures are
// logged and the previously fetched record is used.
func (r *Reconciler) syncResource(ctx context.Context, logger zerolog.Logger,
	offering *waldur.Offering, providerID string, snapshot *eosc.Snapshot,
	homeport string) (*eosc.Resource, error) {

	resourceID, found := snapshot.ResolveByName(offering.Name)
	if !found {
		logger.Info().Msg("Resource is missing, creating a new one")
		payload := mapper.ResourcePayload(offering, providerID, "", homeport, r.defaults, r.catalogueID)
		created, err := r.portal.CreateResource(ctx, payload)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("resource", created.ID).Msg("Resource has been created")
		return created, nil
	}

	logger.Info().Str("resource", resourceID).Msg("Resource already exists, updating")
	existing, err := r.portal.GetResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	payload := mapper.ResourcePayload(offering, providerID, resourceID, homeport, r.defaults, r.catalogueID)
	updated, err := r.portal.UpdateResource(ctx, payload)
	if err != nil {
		if errors.Is(err, eosc.ErrUnchanged) {
			logger.Debug().Str("resource", resourceID).Msg("Resource is already up to date")
		} else {
			logger.Warn().Err(err).Str("resource", resourceID).Msg("Error during resource update")
		}
		return existing, nil
	}
	logger.Info().Str("resource", updated.ID).Msg("Resource has been updated")
	return updated, nil
}

// syncOffers creates one offer per plan that does not already exist under
// the resource. Offers are immutable once published: an existing name is
// skipped, never updated. A single failed creation does not abort the rest.
func (r *Reconciler) syncOffers(ctx context.Context, logger zerolog.Logger,
	resourceID string, offering *waldur.Offering, orderURL string) error {

	offers, err := r.marketplace.ListOffers(ctx, resourceID)
	if err != nil {
		return err
	}
	existing := make(map[string]struct{}, len(offers))
	for _, offer := range offers {
		existing[offer.Name] = struct{}{}
	}

	for _, plan := range offering.Plans {
		if _, ok := existing[plan.Name]; ok {
			logger.Info().Str("plan", plan.Name).Msg("Skipping plan, offer with the same name already exists")
			continue
		}
		payload := mapper.OfferPayload(offering, plan, orderURL)
		created, err := r.marketplace.CreateOffer(ctx, resourceID, payload)
		if err != nil {
			logger.Error().Err(err).Str("plan", plan.Name).Msg("Failed to create an offer")
			continue
		}
		logger.Info().Str("plan", plan.Name).Int("offer", created.ID).Msg("Offer has been created")
	}
	return nil
}

// retireResource removes the destination records of an offering that left
// the catalogue-visible lifecycle. A resource that is already absent is a
// no-op, not an error; deletion failures are logged and swallowed.
func (r *Reconciler) retireResource(ctx context.Context, logger zerolog.Logger,
	offering *waldur.Offering, snapshot *eosc.Snapshot) {

	resourceID, found := snapshot.ResolveByName(offering.Name)
	if !found {
		logger.Info().Msg("Resource is missing from the catalogue, skipping removal")
		return
	}

	logger.Info().Str("resource", resourceID).Msg("Resource is found, removing it from the portal")

	offers, err := r.marketplace.ListOffers(ctx, resourceID)
	if err != nil {
		logger.Error().Err(err).Str("resource", resourceID).Msg("Unable to list offers for deactivation")
	}
	for _, offer := range offers {
		if err := r.marketplace.DeactivateOffer(ctx, resourceID, offer.ID); err != nil {
			logger.Error().Err(err).Int("offer", offer.ID).Msg("Unable to deactivate offer")
			continue
		}
		logger.Info().Int("offer", offer.ID).Str("name", offer.Name).Msg("Offer has been deactivated")
	}

	if _, err := r.portal.DeleteResource(ctx, resourceID); err != nil {
		logger.Error().Err(err).Str("resource", resourceID).Msg("Unable to delete resource")
		return
	}
	logger.Info().Str("resource", resourceID).Msg("Resource has been removed from the catalogue")
}
