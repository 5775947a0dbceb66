// Package catalog fetches the product list from the upstream store API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Product is the upstream payload shape. The rating summary is kept as raw
// JSON and persisted verbatim.
type Product struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      json.RawMessage `json:"rating"`
}

type Client struct {
	rest *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		rest: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second),
	}
}

// FetchProducts retrieves the full catalog. No retries; a failed upstream
// call simply fails the import request.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	var products []Product

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&products).
		Get("/products")
	if err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("upstream responded with %s", resp.Status())
	}

	return products, nil
}
