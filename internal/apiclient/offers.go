package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"ekthaa/internal/domain"
)

func (c *Client) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	var resp struct {
		Offers []domain.Offer `json:"offers"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/offers"}, &resp); err != nil {
		return nil, err
	}
	return resp.Offers, nil
}

func (c *Client) CreateOffer(ctx context.Context, in domain.OfferInput) (*domain.Offer, error) {
	var resp struct {
		Offer domain.Offer `json:"offer"`
	}
	if err := c.do(ctx, &call{method: http.MethodPost, path: "/offer", body: in}, &resp); err != nil {
		return nil, err
	}
	return &resp.Offer, nil
}

// ToggleOffer activates or deactivates an offer and returns the new state.
func (c *Client) ToggleOffer(ctx context.Context, id string) (bool, error) {
	var resp struct {
		IsActive bool `json:"is_active"`
	}
	path := "/offer/" + url.PathEscape(id) + "/toggle"
	if err := c.do(ctx, &call{method: http.MethodPut, path: path}, &resp); err != nil {
		return false, err
	}
	return resp.IsActive, nil
}

func (c *Client) DeleteOffer(ctx context.Context, id string) error {
	return c.do(ctx, &call{method: http.MethodDelete, path: "/offer/" + url.PathEscape(id)}, nil)
}
