// Package eosc provides clients for the two destination APIs: the provider
// portal (providers and resources, bearer-token auth) and the marketplace
// (offers, X-User-Token auth).
package eosc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// catalogueListQuantity caps the catalogue listing page size. The snapshot
// must cover the whole catalogue; current catalogues stay far below this.
const catalogueListQuantity = "1000"

// PortalClient provides access to the provider portal API. All calls carry
// a bearer token from the TokenSource and share a rate limiter with the
// marketplace client; the portal is soft rate-sensitive.
type PortalClient struct {
	baseURL     string
	catalogueID string
	tokens      *TokenSource
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewPortalClient creates a new provider portal client.
func NewPortalClient(baseURL, catalogueID string, tokens *TokenSource, limiter *rate.Limiter, timeout time.Duration) *PortalClient {
	return &PortalClient{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		catalogueID: catalogueID,
		tokens:      tokens,
		httpClient:  &http.Client{Timeout: timeout},
		limiter:     limiter,
	}
}

// CatalogueID returns the catalogue scope of this client.
func (c *PortalClient) CatalogueID() string {
	return c.catalogueID
}

func (c *PortalClient) providerPath(id string) string {
	return fmt.Sprintf("/api/catalogue/%s/provider/%s", c.catalogueID, id)
}

// do performs one portal request with bearer auth. On a 401 the cached
// token is invalidated and the request retried exactly once.
func (c *PortalClient) do(ctx context.Context, method, path string, query url.Values, payload any) (int, []byte, error) {
	status, body, err := c.doOnce(ctx, method, path, query, payload)
	if err == nil && status == http.StatusUnauthorized {
		log.Debug().Str("path", path).Msg("Portal returned 401, refreshing token")
		c.tokens.Invalidate()
		return c.doOnce(ctx, method, path, query, payload)
	}
	return status, body, err
}

func (c *PortalClient) doOnce(ctx context.Context, method, path string, query url.Values, payload any) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return 0, nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, buf.Bytes(), nil
}

// GetProvider fetches a provider by id. Returns ErrNotFound on 404.
func (c *PortalClient) GetProvider(ctx context.Context, id string) (*Provider, error) {
	status, body, err := c.do(ctx, http.MethodGet, c.providerPath(id), nil, nil)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
		var provider Provider
		if err := json.Unmarshal(body, &provider); err != nil {
			return nil, fmt.Errorf("decoding provider %s: %w", id, err)
		}
		return &provider, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("provider %s: %w", id, ErrNotFound)
	default:
		return nil, newStatusError("fetching provider "+id, status, body)
	}
}

// CreateProvider registers a new provider in the catalogue.
func (c *PortalClient) CreateProvider(ctx context.Context, provider *Provider) (*Provider, error) {
	status, body, err := c.do(ctx, http.MethodPost, c.providerPath(""), nil, provider)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, newStatusError("creating provider", status, body)
	}
	var created Provider
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decoding created provider: %w", err)
	}
	return &created, nil
}

// UpdateProvider replaces an existing provider record. When nothing changed
// the portal answers 200 with a non-JSON error body; that case surfaces as
// ErrUnchanged so the caller can keep the previously fetched record.
func (c *PortalClient) UpdateProvider(ctx context.Context, provider *Provider) (*Provider, error) {
	status, body, err := c.do(ctx, http.MethodPut, c.providerPath(""), nil, provider)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, newStatusError("updating provider "+provider.ID, status, body)
	}
	var updated Provider
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("updating provider %s: %w", provider.ID, ErrUnchanged)
	}
	return &updated, nil
}

// CatalogueResources fetches the full catalogue listing and returns a
// name-to-id snapshot. The reconciler aborts the whole cycle when this
// fails; syncing against a partial snapshot would mass-create duplicates.
func (c *PortalClient) CatalogueResources(ctx context.Context) (*Snapshot, error) {
	query := url.Values{}
	query.Set("catalogue_id", c.catalogueID)
	query.Set("quantity", catalogueListQuantity)

	status, body, err := c.do(ctx, http.MethodGet, "/service/byCatalogue", query, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newStatusError("listing catalogue resources", status, body)
	}

	var listing struct {
		Results []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("decoding catalogue listing: %w", err)
	}

	byName := make(map[string]string, len(listing.Results))
	for _, r := range listing.Results {
		byName[r.Name] = r.ID
	}
	return NewSnapshot(byName), nil
}

// GetResource fetches one resource by id.
func (c *PortalClient) GetResource(ctx context.Context, id string) (*Resource, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/resource/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newStatusError("fetching resource "+id, status, body)
	}
	var resource Resource
	if err := json.Unmarshal(body, &resource); err != nil {
		return nil, fmt.Errorf("decoding resource %s: %w", id, err)
	}
	return &resource, nil
}

// CreateResource registers a new resource. Any non-2xx status is an error;
// resource creation is never best-effort.
func (c *PortalClient) CreateResource(ctx context.Context, resource *Resource) (*Resource, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/resource/", nil, resource)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, newStatusError("creating resource "+resource.Name, status, body)
	}
	var created Resource
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decoding created resource: %w", err)
	}
	return &created, nil
}

// UpdateResource replaces an existing resource record. Returns ErrUnchanged
// for the portal's 200-with-non-JSON-body "no changes" answer.
func (c *PortalClient) UpdateResource(ctx context.Context, resource *Resource) (*Resource, error) {
	status, body, err := c.do(ctx, http.MethodPut, "/resource/", nil, resource)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, newStatusError("updating resource "+resource.ID, status, body)
	}
	var updated Resource
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("updating resource %s: %w", resource.ID, ErrUnchanged)
	}
	return &updated, nil
}

// DeleteResource removes a resource from the catalogue. 200 and 204 are
// success; the deleted record is returned when the portal includes it.
func (c *PortalClient) DeleteResource(ctx context.Context, id string) (*Resource, error) {
	status, body, err := c.do(ctx, http.MethodDelete, "/resource/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return nil, newStatusError("deleting resource "+id, status, body)
	}
	var deleted Resource
	if len(body) > 0 {
		if err := json.Unmarshal(body, &deleted); err != nil {
			// 204 bodies or non-JSON bodies are fine, the deletion happened.
			return nil, nil
		}
	}
	return &deleted, nil
}
