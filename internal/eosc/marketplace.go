package eosc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// MarketplaceClient provides access to the marketplace/offer API. It lives
// on its own base URL and authenticates with an X-User-Token header instead
// of the portal bearer token.
type MarketplaceClient struct {
	baseURL    string
	userToken  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewMarketplaceClient creates a new marketplace client.
func NewMarketplaceClient(baseURL, userToken string, limiter *rate.Limiter, timeout time.Duration) *MarketplaceClient {
	return &MarketplaceClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userToken:  userToken,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
	}
}

func (c *MarketplaceClient) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
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

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-User-Token", c.userToken)
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

// ListResources returns the marketplace view of all catalogue resources.
func (c *MarketplaceClient) ListResources(ctx context.Context) ([]MarketplaceResource, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/api/v1/resources/", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newStatusError("listing marketplace resources", status, body)
	}
	var listing struct {
		Resources []MarketplaceResource `json:"resources"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("decoding marketplace resource listing: %w", err)
	}
	return listing.Resources, nil
}

// ListOffers returns all offers attached to a resource.
func (c *MarketplaceClient) ListOffers(ctx context.Context, resourceID string) ([]Offer, error) {
	status, body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/resources/%s/offers/", resourceID), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("offers of resource %s: %w", resourceID, ErrNotFound)
	}
	if status != http.StatusOK {
		return nil, newStatusError("listing offers of resource "+resourceID, status, body)
	}
	var listing struct {
		Offers []Offer `json:"offers"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("decoding offers of resource %s: %w", resourceID, err)
	}
	return listing.Offers, nil
}

// CreateOffer attaches a new offer to a resource. The marketplace answers
// 201 on success; anything else is an error.
func (c *MarketplaceClient) CreateOffer(ctx context.Context, resourceID string, offer *Offer) (*Offer, error) {
	status, body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/resources/%s/offers/", resourceID), offer)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, newStatusError("creating offer "+offer.Name, status, body)
	}
	var created Offer
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decoding created offer: %w", err)
	}
	return &created, nil
}

// PatchOffer partially updates an existing offer. Offers are immutable once
// published in the current sync flow; this exists for the day the
// marketplace grows a status field worth flipping.
func (c *MarketplaceClient) PatchOffer(ctx context.Context, resourceID string, offerID int, offer *Offer) (*Offer, error) {
	status, body, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/resources/%s/offers/%d", resourceID, offerID), offer)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newStatusError(fmt.Sprintf("patching offer %d", offerID), status, body)
	}
	var patched Offer
	if err := json.Unmarshal(body, &patched); err != nil {
		return nil, fmt.Errorf("decoding patched offer: %w", err)
	}
	return &patched, nil
}

// DeleteOffer removes one offer from a resource.
func (c *MarketplaceClient) DeleteOffer(ctx context.Context, resourceID string, offerID int) error {
	status, body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/resources/%s/offers/%d", resourceID, offerID), nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return newStatusError(fmt.Sprintf("deleting offer %d", offerID), status, body)
	}
	return nil
}

// DeactivateOffer takes an offer out of the marketplace. The offer API has
// no soft-inactive flag, so deactivation deletes the offer.
func (c *MarketplaceClient) DeactivateOffer(ctx context.Context, resourceID string, offerID int) error {
	return c.DeleteOffer(ctx, resourceID, offerID)
}
