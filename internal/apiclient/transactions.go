package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"ekthaa/internal/domain"
)

// CreateTransaction records a credit or payment. With a bill photo the request
// is multipart and the photo is sent as bill_image.
func (c *Client) CreateTransaction(ctx context.Context, in domain.TransactionInput) (*domain.Transaction, error) {
	cl := &call{method: http.MethodPost, path: "/transaction"}
	if in.BillPhoto != nil {
		cl.fields = []formField{
			{"customer_id", in.CustomerID},
			{"type", string(in.Type)},
			{"amount", strconv.FormatFloat(in.Amount, 'f', -1, 64)},
			{"notes", in.Notes},
		}
		cl.files = []*domain.FilePart{withField(in.BillPhoto, "bill_image")}
	} else {
		cl.body = in
	}

	var resp struct {
		Transaction domain.Transaction `json:"transaction"`
	}
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var resp struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/transactions"}, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	var resp struct {
		Transaction *domain.Transaction `json:"transaction"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/transaction/" + url.PathEscape(id)}, &resp); err != nil {
		return nil, err
	}
	if resp.Transaction == nil {
		return nil, domain.ErrNotFound
	}
	return resp.Transaction, nil
}

func (c *Client) CustomerTransactions(ctx context.Context, customerID string) ([]domain.Transaction, error) {
	var resp struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	path := "/customer/" + url.PathEscape(customerID) + "/transactions"
	if err := c.do(ctx, &call{method: http.MethodGet, path: path}, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, &call{method: http.MethodDelete, path: "/transaction/" + url.PathEscape(id) + "/delete"}, nil)
}

// BillURL returns the stored bill image URL of a transaction.
func (c *Client) BillURL(ctx context.Context, id string) (string, error) {
	var resp struct {
		BillURL string `json:"bill_url"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/transaction/" + url.PathEscape(id) + "/bill"}, &resp); err != nil {
		return "", err
	}
	return resp.BillURL, nil
}

func (c *Client) ListRecurring(ctx context.Context) ([]domain.RecurringTransaction, error) {
	var resp struct {
		Recurring []domain.RecurringTransaction `json:"recurring_transactions"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/recurring-transactions"}, &resp); err != nil {
		return nil, err
	}
	return resp.Recurring, nil
}

func (c *Client) CreateRecurring(ctx context.Context, in domain.RecurringInput) (*domain.RecurringTransaction, error) {
	var resp struct {
		Recurring domain.RecurringTransaction `json:"recurring_transaction"`
	}
	if err := c.do(ctx, &call{method: http.MethodPost, path: "/recurring-transaction", body: in}, &resp); err != nil {
		return nil, err
	}
	return &resp.Recurring, nil
}

func (c *Client) UpdateRecurring(ctx context.Context, id string, in domain.RecurringInput) (*domain.RecurringTransaction, error) {
	var resp struct {
		Recurring domain.RecurringTransaction `json:"recurring_transaction"`
	}
	path := "/recurring-transaction/" + url.PathEscape(id) + "/update"
	if err := c.do(ctx, &call{method: http.MethodPut, path: path, body: in}, &resp); err != nil {
		return nil, err
	}
	return &resp.Recurring, nil
}

func (c *Client) DeleteRecurring(ctx context.Context, id string) error {
	return c.do(ctx, &call{method: http.MethodDelete, path: "/recurring-transaction/" + url.PathEscape(id)}, nil)
}

// ToggleRecurring flips a recurring transaction between active and paused and
// returns the new state.
func (c *Client) ToggleRecurring(ctx context.Context, id string) (bool, error) {
	var resp struct {
		IsActive bool `json:"is_active"`
	}
	path := "/recurring-transaction/" + url.PathEscape(id) + "/toggle"
	if err := c.do(ctx, &call{method: http.MethodPut, path: path}, &resp); err != nil {
		return false, err
	}
	return resp.IsActive, nil
}
