package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"ekthaa/internal/domain"
)

// Dashboard returns the landing view aggregates.
func (c *Client) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	var resp domain.Dashboard
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/dashboard"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Summary returns the business summary block.
func (c *Client) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	var resp struct {
		Summary domain.DashboardSummary `json:"summary"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/business/summary"}, &resp); err != nil {
		return nil, err
	}
	return &resp.Summary, nil
}

func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var resp struct {
		Customers []domain.Customer `json:"customers"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/customers"}, &resp); err != nil {
		return nil, err
	}
	return resp.Customers, nil
}

// GetCustomer returns a customer with their ledger.
func (c *Client) GetCustomer(ctx context.Context, id string) (*domain.CustomerDetail, error) {
	var resp domain.CustomerDetail
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/customer/" + url.PathEscape(id)}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddCustomer(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	var resp struct {
		Customer domain.Customer `json:"customer"`
	}
	if err := c.do(ctx, &call{method: http.MethodPost, path: "/customer", body: in}, &resp); err != nil {
		return nil, err
	}
	return &resp.Customer, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, in domain.CustomerInput) (*domain.Customer, error) {
	var resp struct {
		Customer domain.Customer `json:"customer"`
	}
	path := "/customer/" + url.PathEscape(id) + "/update"
	if err := c.do(ctx, &call{method: http.MethodPut, path: path, body: in}, &resp); err != nil {
		return nil, err
	}
	return &resp.Customer, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, &call{method: http.MethodDelete, path: "/customer/" + url.PathEscape(id) + "/delete"}, nil)
}

func (c *Client) SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	var resp struct {
		Customers []domain.Customer `json:"customers"`
	}
	cl := &call{method: http.MethodGet, path: "/customers/search", query: url.Values{"q": {query}}}
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}
	return resp.Customers, nil
}

// SendReminder prepares a WhatsApp reminder for one customer.
func (c *Client) SendReminder(ctx context.Context, customerID string) (*domain.Reminder, error) {
	var resp domain.Reminder
	path := "/customer/" + url.PathEscape(customerID) + "/remind"
	if err := c.do(ctx, &call{method: http.MethodPost, path: path}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BulkReminders lists reminders for every customer with a balance due.
func (c *Client) BulkReminders(ctx context.Context) (*domain.BulkReminders, error) {
	var resp domain.BulkReminders
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/customers/remind-all"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
