// Package mapper builds destination payloads from source records. All
// functions are pure: the same inputs always produce the same payload, and
// every fallback rule lives here in exactly one place.
package mapper

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/waldur/eoscsync/internal/config"
	"github.com/waldur/eoscsync/internal/eosc"
	"github.com/waldur/eoscsync/internal/waldur"
)

const (
	legalStatusPublicEntity = "provider_legal_status-public_legal_entity"
	fallbackLogoPath        = "images/login_logo.png"
)

// ConstructAbbreviation derives an abbreviation from a display name: the
// first character of every whitespace-delimited word that starts with an
// alphanumeric rune, upper-cased. Single-word names are upper-cased whole.
func ConstructAbbreviation(name string) string {
	words := strings.Fields(name)
	if len(words) <= 1 {
		return strings.ToUpper(name)
	}
	var b strings.Builder
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// ProviderKey derives the destination provider id for a customer: the
// abbreviation lower-cased, generated from the name when absent. This is
// the natural key for provider matching; there is no persisted link between
// the two systems.
func ProviderKey(customer *waldur.Customer) (string, error) {
	abbreviation := customer.Abbreviation
	if abbreviation == "" {
		abbreviation = ConstructAbbreviation(customer.Name)
	}
	key := strings.ToLower(abbreviation)
	if key == "" {
		return "", fmt.Errorf("customer %s: cannot derive provider key from empty name", customer.UUID)
	}
	return key, nil
}

// splitAddress splits a free-text address into city and street. The city is
// the first token, the street the remainder.
func splitAddress(address string) (city, street string, err error) {
	parts := strings.Fields(address)
	switch len(parts) {
	case 0:
		return "unknown", "unknown", nil
	case 1:
		return "", "", fmt.Errorf("address %q has no street part", address)
	default:
		return parts[0], strings.Join(parts[1:], " "), nil
	}
}

func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

func orEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// ProviderPayload builds the portal provider record for a customer.
// spDescription is the customer's service-provider description from the
// source (may be empty). The users list is replayed verbatim: the portal
// owns provider-user approval state and must never see a fabricated list.
func ProviderPayload(customer *waldur.Customer, spDescription, homeportURL string,
	defaults config.Defaults, catalogueID, providerID string, users []eosc.ProviderUser) (*eosc.Provider, error) {

	logo := customer.Image
	if logo == "" {
		logo = joinURL(homeportURL, fallbackLogoPath)
	}

	city, street, err := splitAddress(customer.Address)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", customer.UUID, err)
	}

	description := spDescription
	if description == "" {
		description = fmt.Sprintf("%s provider in EOSC portal", customer.Name)
	}

	abbreviation := customer.Abbreviation
	if abbreviation == "" {
		abbreviation = ConstructAbbreviation(customer.Name)
	}

	if users == nil {
		users = []eosc.ProviderUser{}
	}

	provider := &eosc.Provider{
		ID:           providerID,
		Abbreviation: abbreviation,
		Name:         customer.Name,
		Website:      orEmpty(customer.Homepage, defaults.ProviderWebsite),
		LegalEntity:  true,
		LegalStatus:  legalStatusPublicEntity,
		Description:  description,
		Logo:         logo,
		Location: eosc.Location{
			StreetNameAndNumber: street,
			PostalCode:          orEmpty(customer.Postal, "00000"),
			City:                city,
			Country:             orEmpty(customer.Country, "OT"),
		},
		ParticipatingCountries: []string{customer.Country},
		CatalogueID:            catalogueID,
		Users:                  users,
		MainContact: eosc.Contact{
			FirstName: "-",
			LastName:  "-",
			Email:     defaults.SupportEmail,
		},
		PublicContacts: []eosc.PublicContact{
			{Email: orEmpty(customer.Email, defaults.SupportEmail)},
		},
	}
	if customer.Division != "" {
		provider.Affiliations = []string{customer.Division}
	}
	return provider, nil
}

// ResourcePayload builds the portal resource record for an offering. The
// payload is a deterministic function of the offering and the provider id;
// classification fields come from the configured defaults because the
// source carries no real taxonomy data.
func ResourcePayload(offering *waldur.Offering, providerID, resourceID, homeportURL string,
	defaults config.Defaults, catalogueID string) *eosc.Resource {

	landing := joinURL(homeportURL, fmt.Sprintf("marketplace-public-offering/%s/", offering.UUID))

	supportEmail := orEmpty(offering.SupportEmail(), defaults.SupportEmail)

	logo := offering.Thumbnail
	if logo == "" {
		logo = joinURL(homeportURL, fallbackLogoPath)
	}

	return &eosc.Resource{
		ID:           resourceID,
		Abbreviation: ConstructAbbreviation(offering.Name),
		AccessModes:  []string{"access_mode-other"},
		AccessTypes:  []string{"access_type-remote", "access_type-virtual"},
		CatalogueID:  catalogueID,
		Categories: []eosc.CategoryEntry{
			{Category: defaults.Category, Subcategory: defaults.Subcategory},
		},
		Certifications:             []string{},
		ChangeLog:                  []string{},
		Description:                orEmpty(offering.Description, "None"),
		FundingBody:                []string{},
		FundingPrograms:            []string{},
		GeographicalAvailabilities: []string{"EO", "WW"},
		GrantProjectNames:          []string{},
		HelpdeskEmail:              supportEmail,
		HelpdeskPage:               "",
		LanguageAvailabilities:     []string{"en"},
		Logo:                       logo,
		MainContact: eosc.Contact{
			FirstName: "-",
			LastName:  "-",
			Email:     defaults.SupportEmail,
		},
		Multimedia:             []string{},
		Name:                   offering.Name,
		OpenSourceTechnologies: []string{},
		Order:                  landing,
		OrderType:              "order_type-order_required",
		PrivacyPolicy:          orEmpty(offering.PrivacyPolicyLink, defaults.PlaceholderURL),
		PublicContacts: []eosc.PublicContact{
			{Email: supportEmail, Phone: ""},
		},
		RelatedPlatforms:            []string{},
		RelatedResources:            []string{},
		RequiredResources:           []string{},
		ResourceGeographicLocations: []string{},
		ResourceOrganisation:        providerID,
		ResourceProviders:           []string{providerID},
		ScientificDomains: []eosc.ScientificDomainEntry{
			{ScientificDomain: defaults.ScientificDomain, ScientificSubdomain: defaults.ScientificSubdomain},
		},
		SecurityContactEmail: supportEmail,
		Standards:            []string{},
		Tagline:              strings.ToLower(offering.Name),
		Tags:                 defaults.Tags,
		TargetUsers:          defaults.TargetUsers,
		TermsOfUse:           orEmpty(offering.TermsOfServiceLink, defaults.PlaceholderURL),
		TRL:                  "trl-9",
		UseCases:             []string{},
		UserManual:           "",
		Webpage:              landing,
	}
}

// NormalizeLimit converts a raw component bound into an offer parameter
// bound: nil becomes 0, storage and ram values are converted from MB to GB.
func NormalizeLimit(value *float64, componentType string) int64 {
	if value == nil {
		return 0
	}
	if componentType == "storage" || componentType == "ram" {
		return int64(*value / 1024)
	}
	return int64(*value)
}

// OrderURL derives the public order URL from the source API URL; the
// marketplace rejects the bare API host.
func OrderURL(apiURL string) string {
	return strings.Replace(apiURL, "https://api.", "https://", 1)
}

// OfferParameters builds the ordering parameters of an offer from the
// offering's components. The fixed name parameter always comes first;
// limit and usage components become numeric ranges. Components with other
// billing types have no marketplace representation and are skipped.
func OfferParameters(offering *waldur.Offering, plan waldur.Plan) []eosc.OfferParameter {
	parameters := []eosc.OfferParameter{
		{
			ID:          "name",
			Label:       "Name",
			Description: "Name will be visible in accounting",
			Type:        "input",
			ValueType:   "string",
			Unit:        "",
		},
	}

	for _, component := range offering.Components {
		var id, description string
		switch component.BillingType {
		case "limit":
			id = "limit " + component.Type
			description = orEmpty(component.Description,
				fmt.Sprintf("Amount of %s in %s.", component.Name, plan.Name))
		case "usage":
			id = "attributes " + component.Type
			description = orEmpty(component.Description,
				fmt.Sprintf("Amount of %s in %s.", component.Name, offering.Name))
		default:
			continue
		}

		parameters = append(parameters, eosc.OfferParameter{
			ID:          id,
			Label:       component.Name,
			Description: description,
			Type:        "range",
			// The source only accepts numeric values for these components.
			ValueType: "integer",
			Unit:      component.MeasuredUnit,
			Config: &eosc.ParameterConfig{
				Minimum:          NormalizeLimit(component.MinValue, component.Type),
				Maximum:          NormalizeLimit(component.MaxValue, component.Type),
				ExclusiveMinimum: false,
				ExclusiveMaximum: false,
			},
		})
	}
	return parameters
}

// OfferPayload builds the marketplace offer for one plan of an offering.
func OfferPayload(offering *waldur.Offering, plan waldur.Plan, orderURL string) *eosc.Offer {
	return &eosc.Offer{
		Name:         plan.Name,
		Description:  orEmpty(plan.Description, "N/A"),
		OrderType:    "order_required",
		PrimaryOMSID: 2,
		OMSParams:    map[string]any{},
		OrderURL:     orderURL,
		Internal:     true,
		Parameters:   OfferParameters(offering, plan),
	}
}
