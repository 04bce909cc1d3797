// Package waldur provides a read-only client for the source platform API.
package waldur

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// syncAttributeFilter selects only offerings explicitly marked for
// publication to the destination catalogue.
const syncAttributeFilter = `{"enable_sync_to_eosc":true}`

// Client provides access to the source platform REST API.
// Pure transport layer, no caching.
type Client struct {
	baseURL      string
	token        string
	customerUUID string
	httpClient   *http.Client
}

// NewClient creates a new source platform client. The customerUUID scopes
// every offering listing to one source customer hierarchy.
func NewClient(baseURL, token, customerUUID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		token:        token,
		customerUUID: customerUUID,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// APIURL returns the configured base URL.
func (c *Client) APIURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GET %s returned %d: %s", path, resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ListOfferings returns all offerings of the configured customer scope that
// are marked for destination sync.
func (c *Client) ListOfferings(ctx context.Context) ([]Offering, error) {
	query := url.Values{}
	query.Set("attributes", syncAttributeFilter)
	query.Set("customer_uuid", c.customerUUID)

	var offerings []Offering
	if err := c.get(ctx, "/api/marketplace-provider-offerings/", query, &offerings); err != nil {
		return nil, fmt.Errorf("listing offerings: %w", err)
	}
	return offerings, nil
}

// GetCustomer fetches one customer record by UUID.
func (c *Client) GetCustomer(ctx context.Context, uuid string) (*Customer, error) {
	var customer Customer
	if err := c.get(ctx, "/api/customers/"+uuid+"/", nil, &customer); err != nil {
		return nil, fmt.Errorf("fetching customer %s: %w", uuid, err)
	}
	return &customer, nil
}

// ListServiceProviders returns the service provider records of a customer.
func (c *Client) ListServiceProviders(ctx context.Context, customerUUID string) ([]ServiceProvider, error) {
	query := url.Values{}
	query.Set("customer_uuid", customerUUID)

	var providers []ServiceProvider
	if err := c.get(ctx, "/api/marketplace-service-providers/", query, &providers); err != nil {
		return nil, fmt.Errorf("listing service providers: %w", err)
	}
	return providers, nil
}

// HomeportURL returns the public homeport URL of the source deployment,
// used as the base for fallback logo and landing page links.
func (c *Client) HomeportURL(ctx context.Context) (string, error) {
	var configuration struct {
		WaldurCore struct {
			HomeportURL string `json:"HOMEPORT_URL"`
		} `json:"WALDUR_CORE"`
	}
	if err := c.get(ctx, "/api/configuration/", nil, &configuration); err != nil {
		return "", fmt.Errorf("fetching configuration: %w", err)
	}
	if configuration.WaldurCore.HomeportURL == "" {
		return "", fmt.Errorf("configuration has no homeport URL")
	}
	return configuration.WaldurCore.HomeportURL, nil
}
