package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"jaanmak/internal/domain/catalog"
)

func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	var raw []json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/products", "", nil, &raw); err != nil {
		return nil, err
	}
	return decodeList(raw, "product", c.logger, wireProduct.product), nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, in catalog.Input) (catalog.Product, error) {
	if err := in.Validate(); err != nil {
		return catalog.Product{}, err
	}
	var w wireProduct
	if err := c.do(ctx, http.MethodPost, "/products", token, in, &w); err != nil {
		return catalog.Product{}, err
	}
	return w.product()
}

func (c *Client) UpdateProduct(ctx context.Context, token string, p catalog.Product) (catalog.Product, error) {
	if err := p.Validate(); err != nil {
		return catalog.Product{}, err
	}
	var w wireProduct
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(p.ID), token, p, &w); err != nil {
		return catalog.Product{}, err
	}
	return w.product()
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), token, nil, nil)
}
