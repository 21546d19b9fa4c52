package apiclient

import (
	"context"
	"net/http"

	"ekthaa/internal/domain"
	"ekthaa/internal/invoice"
)

func (c *Client) GetProfile(ctx context.Context) (*domain.Business, error) {
	var resp struct {
		Business domain.Business `json:"business"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/profile"}, &resp); err != nil {
		return nil, err
	}
	return &resp.Business, nil
}

// UpdateProfile sends only the non-empty fields. With a photo the request is
// multipart and the photo is sent as profile_photo.
func (c *Client) UpdateProfile(ctx context.Context, in domain.ProfileInput) (*domain.Business, error) {
	cl := &call{method: http.MethodPut, path: "/profile"}
	if in.ProfilePhoto != nil {
		if in.Name != "" {
			cl.fields = append(cl.fields, formField{"name", in.Name})
		}
		if in.Description != "" {
			cl.fields = append(cl.fields, formField{"description", in.Description})
		}
		if in.Phone != "" {
			cl.fields = append(cl.fields, formField{"phone_number", in.Phone})
		}
		cl.files = []*domain.FilePart{withField(in.ProfilePhoto, "profile_photo")}
	} else {
		cl.body = in
	}

	var resp struct {
		Business domain.Business `json:"business"`
	}
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}
	return &resp.Business, nil
}

// RegeneratePIN issues a new business PIN.
func (c *Client) RegeneratePIN(ctx context.Context) (string, error) {
	var resp struct {
		PIN string `json:"pin"`
	}
	if err := c.do(ctx, &call{method: http.MethodPost, path: "/profile/regenerate-pin"}, &resp); err != nil {
		return "", err
	}
	return resp.PIN, nil
}

// QRCode returns the PNG QR code encoding the business PIN.
func (c *Client) QRCode(ctx context.Context) ([]byte, error) {
	data, _, err := c.send(ctx, &call{method: http.MethodGet, path: "/profile/qr"})
	return data, err
}

func (c *Client) AccessPIN(ctx context.Context) (string, error) {
	var resp struct {
		AccessPIN string `json:"access_pin"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/business/access-pin"}, &resp); err != nil {
		return "", err
	}
	return resp.AccessPIN, nil
}

func (c *Client) UpdateLocation(ctx context.Context, loc domain.Location) error {
	return c.do(ctx, &call{method: http.MethodPost, path: "/location/update", body: loc}, nil)
}

func (c *Client) GetLocation(ctx context.Context) (*domain.Location, error) {
	var resp struct {
		Location domain.Location `json:"location"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/location"}, &resp); err != nil {
		return nil, err
	}
	return &resp.Location, nil
}

// GenerateInvoicePDF posts the invoice draft to the PDF generator and returns
// the rendered document.
func (c *Client) GenerateInvoicePDF(ctx context.Context, d *invoice.Draft) ([]byte, error) {
	data, _, err := c.send(ctx, &call{method: http.MethodPost, path: "/generate-invoice", body: d})
	return data, err
}

// Health reports the backend status string.
func (c *Client) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/health"}, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}
