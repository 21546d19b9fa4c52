package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"ekthaa/internal/domain"
)

func (c *Client) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	var resp struct {
		Vouchers []domain.Voucher `json:"vouchers"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/vouchers"}, &resp); err != nil {
		return nil, err
	}
	return resp.Vouchers, nil
}

func (c *Client) CreateVoucher(ctx context.Context, in domain.VoucherInput) (*domain.Voucher, error) {
	var resp struct {
		Voucher domain.Voucher `json:"voucher"`
	}
	if err := c.do(ctx, &call{method: http.MethodPost, path: "/voucher", body: in}, &resp); err != nil {
		return nil, err
	}
	return &resp.Voucher, nil
}

// ToggleVoucher activates or deactivates a voucher and returns the new state.
func (c *Client) ToggleVoucher(ctx context.Context, id string) (bool, error) {
	var resp struct {
		IsActive bool `json:"is_active"`
	}
	path := "/voucher/" + url.PathEscape(id) + "/toggle"
	if err := c.do(ctx, &call{method: http.MethodPut, path: path}, &resp); err != nil {
		return false, err
	}
	return resp.IsActive, nil
}

func (c *Client) DeleteVoucher(ctx context.Context, id string) error {
	return c.do(ctx, &call{method: http.MethodDelete, path: "/voucher/" + url.PathEscape(id)}, nil)
}
