package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/jsonapi"
	"github.com/a-h/productsearch/models"
)

const (
	DefaultBaseURL = "http://localhost:8000/products"
	DefaultAPIPort = "8000"
)

// BaseURLForHost picks the products API for a page served from hostname.
// Local hosts use localhost, anything else expects the API on the same host.
func BaseURLForHost(hostname string) string {
	switch hostname {
	case "", "localhost", "127.0.0.1", "::1":
		return DefaultBaseURL
	}
	return fmt.Sprintf("http://%s/products", net.JoinHostPort(hostname, DefaultAPIPort))
}

func New(baseURL string) Client {
	return Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type Client struct {
	baseURL string
}

// Endpoint returns the search URL, without a query.
func (c Client) Endpoint() string {
	url, err := jsonapi.URL(c.baseURL).Path("search", "").String()
	if err != nil {
		return c.baseURL
	}
	return url
}

func (c Client) Search(ctx context.Context, req models.SearchRequest) (resp models.SearchResults, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("search", "").Query(map[string]string{"q": req.Query}).String()
	if err != nil {
		return resp, err
	}
	err = c.get(ctx, url, req.RequestID, &resp)
	return resp, err
}

func (c Client) Product(ctx context.Context, req models.ProductRequest) (resp models.Product, err error) {
	url, err := jsonapi.URL(c.baseURL).Path(strconv.FormatInt(req.ID, 10), "").String()
	if err != nil {
		return resp, err
	}
	err = c.get(ctx, url, req.RequestID, &resp)
	return resp, err
}

func (c Client) Recommendations(ctx context.Context, req models.ProductRequest) (resp []models.Product, err error) {
	url, err := jsonapi.URL(c.baseURL).Path(strconv.FormatInt(req.ID, 10), "recommendations", "").String()
	if err != nil {
		return resp, err
	}
	err = c.get(ctx, url, req.RequestID, &resp)
	return resp, err
}

func (c Client) get(ctx context.Context, url, requestID string, v any) (err error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if requestID != "" {
		httpReq.Header.Set("X-Request-Id", requestID)
	}
	res, err := jsonapi.Raw(httpReq)
	if err != nil {
		return fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		return jsonapi.InvalidStatusError{
			Status: res.StatusCode,
			Body:   string(body),
		}
	}
	if err = json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
