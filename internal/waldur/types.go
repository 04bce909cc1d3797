package waldur

// Offering states as reported by the source platform.
const (
	StateActive   = "Active"
	StatePaused   = "Paused"
	StateArchived = "Archived"
	StateDraft    = "Draft"
)

// Offering is a sellable service defined on the source platform.
// Read-only to this system.
type Offering struct {
	UUID               string         `json:"uuid"`
	Name               string         `json:"name"`
	CustomerUUID       string         `json:"customer_uuid"`
	CustomerName       string         `json:"customer_name"`
	State              string         `json:"state"`
	Description        string         `json:"description"`
	Thumbnail          string         `json:"thumbnail"`
	TermsOfServiceLink string         `json:"terms_of_service_link"`
	PrivacyPolicyLink  string         `json:"privacy_policy_link"`
	Attributes         map[string]any `json:"attributes"`
	Plans              []Plan         `json:"plans"`
	Components         []Component    `json:"components"`
}

// SupportEmail returns the custom support-email attribute, if set. The
// attributes dict is free-form and carries values of mixed types, the sync
// flag among them.
func (o *Offering) SupportEmail() string {
	email, _ := o.Attributes["vpc_Support_email"].(string)
	return email
}

// SyncEnabled reports whether the offering is in a state that should be
// mirrored to the destination catalogue.
func (o *Offering) SyncEnabled() bool {
	return o.State == StateActive || o.State == StatePaused
}

// Retired reports whether the offering has left the catalogue-visible
// lifecycle and its destination records should be removed.
func (o *Offering) Retired() bool {
	return o.State == StateArchived || o.State == StateDraft
}

// Plan is a named pricing tier within an offering.
type Plan struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Component is a billable dimension of an offering (e.g. CPU, storage).
type Component struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	BillingType  string   `json:"billing_type"`
	MeasuredUnit string   `json:"measured_unit"`
	MinValue     *float64 `json:"min_value"`
	MaxValue     *float64 `json:"max_value"`
}

// Customer is the source-side organization owning offerings. It seeds the
// destination provider record.
type Customer struct {
	UUID         string `json:"uuid"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Address      string `json:"address"`
	Postal       string `json:"postal"`
	Country      string `json:"country"`
	Homepage     string `json:"homepage"`
	Image        string `json:"image"`
	Email        string `json:"email"`
	Phone        string `json:"phone_number"`
	Division     string `json:"division_name"`
}

// ServiceProvider is the marketplace service-provider record of a customer;
// its description seeds the destination provider description.
type ServiceProvider struct {
	UUID         string `json:"uuid"`
	CustomerUUID string `json:"customer_uuid"`
	Description  string `json:"description"`
}
