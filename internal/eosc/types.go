package eosc

// Contact is a named contact attached to providers and resources.
type Contact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// PublicContact is the public-facing contact entry of providers and
// resources. Unset optional fields are dropped from the payload; the portal
// fills its own defaults for absent keys.
type PublicContact struct {
	Email        string  `json:"email"`
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Organisation *string `json:"organisation,omitempty"`
	Phone        string  `json:"phone"`
	Position     *string `json:"position,omitempty"`
}

// Location is the legal address of a provider.
type Location struct {
	StreetNameAndNumber string `json:"streetNameAndNumber"`
	PostalCode          string `json:"postalCode"`
	City                string `json:"city"`
	Country             string `json:"country"`
}

// ProviderUser is an authorized contact of a provider. The portal owns the
// approval state of these entries; they are fetched and replayed verbatim
// on update, never fabricated.
type ProviderUser struct {
	ID      string `json:"id,omitempty"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
}

// Provider is the destination-side representation of a source customer.
// Its id, derived from the customer abbreviation, is the de facto natural
// key: the portal has no foreign-key link back to the source customer.
type Provider struct {
	ID                    string         `json:"id,omitempty"`
	Abbreviation          string         `json:"abbreviation"`
	Name                  string         `json:"name"`
	Website               string         `json:"website"`
	LegalEntity           bool           `json:"legalEntity"`
	LegalStatus           string         `json:"legalStatus"`
	Description           string         `json:"description"`
	Logo                  string         `json:"logo"`
	Location              Location       `json:"location"`
	ParticipatingCountries []string      `json:"participatingCountries"`
	CatalogueID           string         `json:"catalogueId"`
	Users                 []ProviderUser `json:"users"`
	MainContact           Contact        `json:"mainContact"`
	PublicContacts        []PublicContact `json:"publicContacts"`
	Affiliations          []string       `json:"affiliations,omitempty"`
}

// CategoryEntry classifies a resource into a category/subcategory pair.
type CategoryEntry struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// ScientificDomainEntry classifies a resource into a scientific
// domain/subdomain pair.
type ScientificDomainEntry struct {
	ScientificDomain    string `json:"scientificDomain"`
	ScientificSubdomain string `json:"scientificSubdomain"`
}

// Resource is the destination-side representation of one source offering.
// The id is assigned by the portal on creation; matching against source
// offerings is by exact name equality only.
type Resource struct {
	ID                          string                  `json:"id,omitempty"`
	Abbreviation                string                  `json:"abbreviation"`
	AccessModes                 []string                `json:"accessModes"`
	AccessTypes                 []string                `json:"accessTypes"`
	AccessPolicy                *string                 `json:"accessPolicy"`
	CatalogueID                 string                  `json:"catalogueId"`
	Categories                  []CategoryEntry         `json:"categories"`
	Certifications              []string                `json:"certifications"`
	ChangeLog                   []string                `json:"changeLog"`
	Description                 string                  `json:"description"`
	FundingBody                 []string                `json:"fundingBody"`
	FundingPrograms             []string                `json:"fundingPrograms"`
	GeographicalAvailabilities  []string                `json:"geographicalAvailabilities"`
	GrantProjectNames           []string                `json:"grantProjectNames"`
	HelpdeskEmail               string                  `json:"helpdeskEmail"`
	HelpdeskPage                string                  `json:"helpdeskPage"`
	LanguageAvailabilities      []string                `json:"languageAvailabilities"`
	LastUpdate                  *string                 `json:"lastUpdate"`
	LifeCycleStatus             *string                 `json:"lifeCycleStatus"`
	Logo                        string                  `json:"logo"`
	MainContact                 Contact                 `json:"mainContact"`
	Maintenance                 *string                 `json:"maintenance"`
	Multimedia                  []string                `json:"multimedia"`
	Name                        string                  `json:"name"`
	OpenSourceTechnologies      []string                `json:"openSourceTechnologies"`
	Order                       string                  `json:"order"`
	OrderType                   string                  `json:"orderType"`
	PaymentModel                *string                 `json:"paymentModel"`
	Pricing                     *string                 `json:"pricing"`
	PrivacyPolicy               string                  `json:"privacyPolicy"`
	PublicContacts              []PublicContact         `json:"publicContacts"`
	RelatedPlatforms            []string                `json:"relatedPlatforms"`
	RelatedResources            []string                `json:"relatedResources"`
	RequiredResources           []string                `json:"requiredResources"`
	ResourceGeographicLocations []string                `json:"resourceGeographicLocations"`
	ResourceLevel               *string                 `json:"resourceLevel"`
	ResourceOrganisation        string                  `json:"resourceOrganisation"`
	ResourceProviders           []string                `json:"resourceProviders"`
	ScientificDomains           []ScientificDomainEntry `json:"scientificDomains"`
	SecurityContactEmail        string                  `json:"securityContactEmail"`
	Standards                   []string                `json:"standards"`
	StatusMonitoring            *string                 `json:"statusMonitoring"`
	Tagline                     string                  `json:"tagline"`
	Tags                        []string                `json:"tags"`
	TargetUsers                 []string                `json:"targetUsers"`
	TermsOfUse                  string                  `json:"termsOfUse"`
	TrainingInformation         *string                 `json:"trainingInformation"`
	TRL                         string                  `json:"trl"`
	UseCases                    []string                `json:"useCases"`
	UserManual                  string                  `json:"userManual"`
	Version                     *string                 `json:"version"`
	Webpage                     string                  `json:"webpage"`
}

// ParameterConfig bounds a numeric range offer parameter.
type ParameterConfig struct {
	Minimum          int64 `json:"minimum"`
	Maximum          int64 `json:"maximum"`
	ExclusiveMinimum bool  `json:"exclusiveMinimum"`
	ExclusiveMaximum bool  `json:"exclusiveMaximum"`
}

// OfferParameter is one ordering parameter of a marketplace offer, derived
// from a source offering component.
type OfferParameter struct {
	ID          string           `json:"id"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	ValueType   string           `json:"value_type"`
	Unit        string           `json:"unit"`
	Config      *ParameterConfig `json:"config,omitempty"`
}

// Offer is the destination-side representation of one source plan.
// The name equals the plan name and is the matching key.
type Offer struct {
	ID           int              `json:"id,omitempty"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	OrderType    string           `json:"order_type"`
	PrimaryOMSID int              `json:"primary_oms_id"`
	OMSParams    map[string]any   `json:"oms_params"`
	OrderURL     string           `json:"order_url"`
	Internal     bool             `json:"internal"`
	Parameters   []OfferParameter `json:"parameters"`
}

// MarketplaceResource is the marketplace-side view of a catalogue resource.
type MarketplaceResource struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Snapshot is a full name-to-id listing of catalogue resources fetched once
// per cycle. All cross-system matching goes through ResolveByName so a real
// correlation key can replace name equality without touching callers.
type Snapshot struct {
	byName map[string]string
}

// NewSnapshot builds a snapshot from a name-to-id mapping.
func NewSnapshot(byName map[string]string) *Snapshot {
	if byName == nil {
		byName = make(map[string]string)
	}
	return &Snapshot{byName: byName}
}

// ResolveByName returns the resource id registered under the exact name.
// A renamed source offering will not resolve and is indistinguishable from
// a missing one.
func (s *Snapshot) ResolveByName(name string) (string, bool) {
	id, ok := s.byName[name]
	return id, ok
}

// Len returns the number of resources in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.byName)
}
