package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waldur/eoscsync/internal/config"
	"github.com/waldur/eoscsync/internal/eosc"
	"github.com/waldur/eoscsync/internal/waldur"
)

type fakeSource struct {
	offerings        []waldur.Offering
	customers        map[string]*waldur.Customer
	serviceProviders map[string][]waldur.ServiceProvider
	listErr          error
}

func (f *fakeSource) ListOfferings(ctx context.Context) ([]waldur.Offering, error) {
	return f.offerings, f.listErr
}

func (f *fakeSource) GetCustomer(ctx context.Context, uuid string) (*waldur.Customer, error) {
	customer, ok := f.customers[uuid]
	if !ok {
		return nil, fmt.Errorf("customer %s does not exist", uuid)
	}
	return customer, nil
}

func (f *fakeSource) ListServiceProviders(ctx context.Context, customerUUID string) ([]waldur.ServiceProvider, error) {
	return f.serviceProviders[customerUUID], nil
}

func (f *fakeSource) HomeportURL(ctx context.Context) (string, error) {
	return "https://self.example.com", nil
}

func (f *fakeSource) APIURL() string {
	return "https://api.self.example.com"
}

type fakePortal struct {
	providers   map[string]*eosc.Provider
	snapshot    map[string]string
	snapshotErr error
	resources   map[string]*eosc.Resource
	updateErr   error

	providerCreates []*eosc.Provider
	providerUpdates []*eosc.Provider
	resourceCreates []*eosc.Resource
	resourceUpdates []*eosc.Resource
	resourceDeletes []string
}

func newFakePortal() *fakePortal {
	return &fakePortal{
		providers: make(map[string]*eosc.Provider),
		snapshot:  make(map[string]string),
		resources: make(map[string]*eosc.Resource),
	}
}

func (f *fakePortal) writes() int {
	return len(f.providerCreates) + len(f.providerUpdates) +
		len(f.resourceCreates) + len(f.resourceUpdates) + len(f.resourceDeletes)
}

func (f *fakePortal) GetProvider(ctx context.Context, id string) (*eosc.Provider, error) {
	provider, ok := f.providers[id]
	if !ok {
		return nil, fmt.Errorf("provider %s: %w", id, eosc.ErrNotFound)
	}
	return provider, nil
}

func (f *fakePortal) CreateProvider(ctx context.Context, provider *eosc.Provider) (*eosc.Provider, error) {
	created := *provider
	if created.ID == "" {
		// The portal derives the id from the abbreviation.
		created.ID = strings.ToLower(provider.Abbreviation)
	}
	f.providerCreates = append(f.providerCreates, provider)
	f.providers[created.ID] = &created
	return &created, nil
}

func (f *fakePortal) UpdateProvider(ctx context.Context, provider *eosc.Provider) (*eosc.Provider, error) {
	f.providerUpdates = append(f.providerUpdates, provider)
	f.providers[provider.ID] = provider
	return provider, nil
}

func (f *fakePortal) CatalogueResources(ctx context.Context) (*eosc.Snapshot, error) {
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	return eosc.NewSnapshot(f.snapshot), nil
}

func (f *fakePortal) GetResource(ctx context.Context, id string) (*eosc.Resource, error) {
	resource, ok := f.resources[id]
	if !ok {
		return nil, fmt.Errorf("resource %s does not exist", id)
	}
	return resource, nil
}

func (f *fakePortal) CreateResource(ctx context.Context, resource *eosc.Resource) (*eosc.Resource, error) {
	created := *resource
	created.ID = "res-" + resource.Name
	f.resourceCreates = append(f.resourceCreates, resource)
	f.resources[created.ID] = &created
	return &created, nil
}

func (f *fakePortal) UpdateResource(ctx context.Context, resource *eosc.Resource) (*eosc.Resource, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.resourceUpdates = append(f.resourceUpdates, resource)
	f.resources[resource.ID] = resource
	return resource, nil
}

func (f *fakePortal) DeleteResource(ctx context.Context, id string) (*eosc.Resource, error) {
	f.resourceDeletes = append(f.resourceDeletes, id)
	deleted := f.resources[id]
	delete(f.resources, id)
	return deleted, nil
}

type fakeMarketplace struct {
	offers map[string][]eosc.Offer

	offerCreates []string
	deactivated  []int
}

func newFakeMarketplace() *fakeMarketplace {
	return &fakeMarketplace{offers: make(map[string][]eosc.Offer)}
}

func (f *fakeMarketplace) ListOffers(ctx context.Context, resourceID string) ([]eosc.Offer, error) {
	return f.offers[resourceID], nil
}

func (f *fakeMarketplace) CreateOffer(ctx context.Context, resourceID string, offer *eosc.Offer) (*eosc.Offer, error) {
	created := *offer
	created.ID = len(f.offerCreates) + 1
	f.offerCreates = append(f.offerCreates, offer.Name)
	f.offers[resourceID] = append(f.offers[resourceID], created)
	return &created, nil
}

func (f *fakeMarketplace) DeactivateOffer(ctx context.Context, resourceID string, offerID int) error {
	f.deactivated = append(f.deactivated, offerID)
	return nil
}

func activeOffering(name, customerUUID string) waldur.Offering {
	return waldur.Offering{
		UUID:         "off-" + name,
		Name:         name,
		CustomerUUID: customerUUID,
		CustomerName: "Customer " + customerUUID,
		State:        waldur.StateActive,
		Plans:        []waldur.Plan{{Name: name + " Standard"}},
	}
}

func validCustomer(uuid string) *waldur.Customer {
	return &waldur.Customer{
		UUID:    uuid,
		Name:    "Customer " + uuid,
		Address: "Helsinki Example Street 1",
		Country: "FI",
	}
}

func newReconciler(source Source, portal Portal, marketplace Marketplace) *Reconciler {
	return New(source, portal, marketplace, "cat", config.Defaults{
		SupportEmail:        "support@puhuri.io",
		PlaceholderURL:      "https://placeholder.example.com",
		ProviderWebsite:     "https://share.neic.no/",
		Category:            "category-other-other",
		Subcategory:         "subcategory-other-other",
		ScientificDomain:    "scientific_domain-generic",
		ScientificSubdomain: "scientific_subdomain-generic-generic",
		TargetUsers:         []string{"target_user-researchers"},
		Tags:                []string{"data-access"},
	})
}

func TestRunCycleCreatesProviderResourceAndOffer(t *testing.T) {
	source := &fakeSource{
		offerings: []waldur.Offering{activeOffering("HPC", "c1")},
		customers: map[string]*waldur.Customer{"c1": validCustomer("c1")},
	}
	portal := newFakePortal()
	marketplace := newFakeMarketplace()

	err := newReconciler(source, portal, marketplace).RunCycle(context.Background())
	require.NoError(t, err)

	require.Len(t, portal.providerCreates, 1)
	require.Len(t, portal.resourceCreates, 1)
	assert.Equal(t, "HPC", portal.resourceCreates[0].Name)
	assert.Equal(t, []string{"HPC Standard"}, marketplace.offerCreates)
}

func TestRunCycleSecondRunIsIdempotent(t *testing.T) {
	source := &fakeSource{
		offerings: []waldur.Offering{activeOffering("HPC", "c1")},
		customers: map[string]*waldur.Customer{"c1": validCustomer("c1")},
	}
	portal := newFakePortal()
	marketplace := newFakeMarketplace()
	reconciler := newReconciler(source, portal, marketplace)

	require.NoError(t, reconciler.RunCycle(context.Background()))

	// Simulate what the portal now knows: the created resource is part of
	// the next snapshot.
	portal.snapshot["HPC"] = "res-HPC"

	require.NoError(t, reconciler.RunCycle(context.Background()))

	assert.Len(t, portal.providerCreates, 1, "second cycle must not create a second provider")
	assert.Len(t, portal.resourceCreates, 1, "second cycle must not create a duplicate resource")
	assert.Len(t, portal.resourceUpdates, 1, "second cycle turns into an update")
	assert.Equal(t, []string{"HPC Standard"}, marketplace.offerCreates, "existing offer must be skipped")
}

func TestRunCycleSnapshotFailureAbortsBeforeAnyWrite(t *testing.T) {
	source := &fakeSource{
		offerings: []waldur.Offering{activeOffering("HPC", "c1")},
		customers: map[string]*waldur.Customer{"c1": validCustomer("c1")},
	}
	portal := newFakePortal()
	portal.snapshotErr = errors.New("boom")
	marketplace := newFakeMarketplace()

	err := newReconciler(source, portal, marketplace).RunCycle(context.Background())
	require.Error(t, err)
	assert.Zero(t, portal.writes())
	assert.Empty(t, marketplace.offerCreates)
}

func TestRunCycleEmptyListingIsNotAnError(t *testing.T) {
	source := &fakeSource{customers: map[string]*waldur.Customer{}}
	portal := newFakePortal()

	err := newReconciler(source, portal, newFakeMarketplace()).RunCycle(context.Background())
	require.NoError(t, err)
	assert.Zero(t, portal.writes())
}

func TestRunCycleCustomerFailureDoesNotBlockOthers(t *testing.T) {
	badCustomer := validCustomer("c1")
	badCustomer.Address = "Nowhere" // no street part, provider payload fails

	source := &fakeSource{
		offerings: []waldur.Offering{
			activeOffering("Broken", "c1"),
			activeOffering("Works", "c2"),
		},
		customers: map[string]*waldur.Customer{
			"c1": badCustomer,
			"c2": validCustomer("c2"),
		},
	}
	portal := newFakePortal()
	marketplace := newFakeMarketplace()

	err := newReconciler(source, portal, marketplace).RunCycle(context.Background())
	require.NoError(t, err, "per-customer failures stay inside the cycle")

	require.Len(t, portal.resourceCreates, 1)
	assert.Equal(t, "Works", portal.resourceCreates[0].Name)
	assert.Equal(t, []string{"Works Standard"}, marketplace.offerCreates)
}

func TestRunCycleRetiredOfferingMissingFromSnapshotIsNoop(t *testing.T) {
	offering := activeOffering("Gone", "c1")
	offering.State = waldur.StateArchived

	source := &fakeSource{
		offerings: []waldur.Offering{offering},
		customers: map[string]*waldur.Customer{"c1": validCustomer("c1")},
	}
	portal := newFakePortal()
	marketplace := newFakeMarketplace()

	err := newReconciler(source, portal, marketplace).RunCycle(context.Background())
	require.NoError(t, err)

	assert.Empty(t, portal.resourceDeletes)
	assert.Empty(t, portal.resourceCreates)
	assert.Empty(t, portal.resourceUpdates)
	assert.Empty(t, marketplace.deactivated)
}

func TestRunCycleRetiredOfferingIsRemoved(t *testing.T) {
	offering := activeOffering("Old", "c1")
	offering.State = waldur.StateDraft

	source := &fakeSource{
		offerings: []waldur.Offering{offering},
		customers: map[string]*waldur.Customer{"c1": validCustomer("c1")},
	}
	portal := newFakePortal()
	portal.snapshot["Old"] = "res-Old"
	portal.resources["res-Old"] = &eosc.Resource{ID: "res-Old", Name: "Old"}
	marketplace := newFakeMarketplace()
	marketplace.offers["res-Old"] = []eosc.Offer{{ID: 7, Name: "Old Standard"}}

	err := newReconciler(source, portal, marketplace).RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"res-Old"}, portal.resourceDeletes)
	assert.Equal(t, []int{7}, marketplace.deactivated)
}

func TestRunCycleUpdatePreservesProviderUsers(t *testing.T) {
	users := []eosc.ProviderUser{{ID: "u1", Email: "owner@example.com"}}
	source := &fakeSource{
		offerings: []waldur.Offering{activeOffering("HPC", "c1")},
		customers: map[string]*waldur.Customer{"c1": validCustomer("c1")},
	}
	portal := newFakePortal()
	portal.providers["cc"] = &eosc.Provider{ID: "cc", Name: "Customer c1", Users: users}
	marketplace := newFakeMarketplace()

	err := newReconciler(source, portal, marketplace).RunCycle(context.Background())
	require.NoError(t, err)

	require.Len(t, portal.providerUpdates, 1)
	assert.Equal(t, users, portal.providerUpdates[0].Users)
	assert.Empty(t, portal.providerCreates)
}

func TestRunCycleBestEffortResourceUpdate(t *testing.T) {
	source := &fakeSource{
		offerings: []waldur.Offering{activeOffering("HPC", "c1")},
		customers: map[string]*waldur.Customer{"c1": validCustomer("c1")},
	}
	portal := newFakePortal()
	portal.snapshot["HPC"] = "res-HPC"
	portal.resources["res-HPC"] = &eosc.Resource{ID: "res-HPC", Name: "HPC"}
	portal.updateErr = &eosc.StatusError{Operation: "updating resource res-HPC", Status: 500}
	marketplace := newFakeMarketplace()

	err := newReconciler(source, portal, marketplace).RunCycle(context.Background())
	require.NoError(t, err, "a failed resource update is best-effort, not fatal")

	// Offers are still reconciled against the previously fetched resource.
	assert.Equal(t, []string{"HPC Standard"}, marketplace.offerCreates)
}
