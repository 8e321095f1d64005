package integration

import (
	"context"
	"testing"

	"github.com/a-h/productsearch/client"
	"github.com/a-h/productsearch/models"
)

// These tests expect `productsearch fixture --file products.yaml` to be running.
const apiURL = "http://localhost:8000/products"

func TestSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := client.New(apiURL)
	results, err := c.Search(context.Background(), models.SearchRequest{
		Query:     "comfortable shoes for running",
		RequestID: "integration-test-search",
	})
	if err != nil {
		t.Fatalf("failed to search: %v", err)
	}
	if len(results.Products) == 0 {
		t.Fatal("expected products")
	}
	for _, p := range results.Products {
		if p.Title == "" {
			t.Errorf("expected every product to have a title, got %+v", p)
		}
	}
}

func TestProductAndRecommendations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := client.New(apiURL)
	p, err := c.Product(context.Background(), models.ProductRequest{ID: 1})
	if err != nil {
		t.Fatalf("failed to get product: %v", err)
	}
	if p.ID != 1 {
		t.Errorf("expected product 1, got %d", p.ID)
	}
	related, err := c.Recommendations(context.Background(), models.ProductRequest{ID: 1})
	if err != nil {
		t.Fatalf("failed to get recommendations: %v", err)
	}
	for _, r := range related {
		if r.ID == 1 {
			t.Error("a product should not be recommended for itself")
		}
		if r.Category != p.Category {
			t.Errorf("expected category %q, got %q", p.Category, r.Category)
		}
	}
}
