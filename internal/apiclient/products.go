package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"ekthaa/internal/domain"
)

func (c *Client) ListProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.IsPublic != nil {
		q.Set("is_public", strconv.FormatBool(*f.IsPublic))
	}

	var resp struct {
		Products []domain.Product `json:"products"`
		Count    int              `json:"count"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/products", query: q}, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var resp struct {
		Product *domain.Product `json:"product"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/product/" + url.PathEscape(id)}, &resp); err != nil {
		return nil, err
	}
	if resp.Product == nil {
		return nil, domain.ErrNotFound
	}
	return resp.Product, nil
}

// AddProduct creates a product. With an image the request is multipart and the
// image is sent as product_image.
func (c *Client) AddProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	return c.saveProduct(ctx, http.MethodPost, "/product", in)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	return c.saveProduct(ctx, http.MethodPut, "/product/"+url.PathEscape(id), in)
}

func (c *Client) saveProduct(ctx context.Context, method, path string, in domain.ProductInput) (*domain.Product, error) {
	cl := &call{method: method, path: path}
	if in.Image != nil {
		cl.fields = productFields(&in)
		cl.files = []*domain.FilePart{withField(in.Image, "product_image")}
	} else {
		cl.body = in
	}

	var resp struct {
		Product domain.Product `json:"product"`
	}
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func productFields(in *domain.ProductInput) []formField {
	fields := []formField{
		{"name", in.Name},
		{"description", in.Description},
		{"category", in.Category},
		{"stock_quantity", strconv.Itoa(in.StockQuantity)},
		{"unit", in.Unit},
		{"price", strconv.FormatFloat(in.Price, 'f', -1, 64)},
		{"is_public", strconv.FormatBool(in.IsPublic)},
		{"low_stock_threshold", strconv.Itoa(in.LowStockThreshold)},
	}
	if in.Subcategory != "" {
		fields = append(fields, formField{"subcategory", in.Subcategory})
	}
	if in.HSNCode != "" {
		fields = append(fields, formField{"hsn_code", in.HSNCode})
	}
	return fields
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, &call{method: http.MethodDelete, path: "/product/" + url.PathEscape(id)}, nil)
}

// ProductCategories lists the backend's product category names.
func (c *Client) ProductCategories(ctx context.Context) ([]string, error) {
	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/products/categories"}, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// ProductUnits lists the backend's stock units.
func (c *Client) ProductUnits(ctx context.Context) ([]string, error) {
	var resp struct {
		Units []string `json:"units"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/products/units"}, &resp); err != nil {
		return nil, err
	}
	return resp.Units, nil
}
