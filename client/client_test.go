package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/jsonapi"
	"github.com/a-h/productsearch/models"
	"github.com/google/go-cmp/cmp"
)

func TestBaseURLForHost(t *testing.T) {
	tests := []struct {
		hostname string
		expected string
	}{
		{hostname: "", expected: "http://localhost:8000/products"},
		{hostname: "localhost", expected: "http://localhost:8000/products"},
		{hostname: "127.0.0.1", expected: "http://localhost:8000/products"},
		{hostname: "192.168.1.20", expected: "http://192.168.1.20:8000/products"},
		{hostname: "shop.example.com", expected: "http://shop.example.com:8000/products"},
		{hostname: "fe80::1", expected: "http://[fe80::1]:8000/products"},
	}
	for _, tt := range tests {
		if actual := BaseURLForHost(tt.hostname); actual != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.hostname, tt.expected, actual)
		}
	}
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{
			name:     "the search path has a trailing slash",
			baseURL:  "http://localhost:8000/products",
			expected: "http://localhost:8000/products/search/",
		},
		{
			name:     "trailing slashes on the base URL are ignored",
			baseURL:  "http://localhost:8000/products/",
			expected: "http://localhost:8000/products/search/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if actual := New(tt.baseURL).Endpoint(); actual != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, actual)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	var requests int
	var gotPath, gotQuery, gotRequestID string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title":"Trail Shoe","price":"59.5","distance":0.1},{"title":"Road Shoe"}]`))
	}))
	defer s.Close()

	c := New(s.URL + "/products")
	actual, err := c.Search(context.Background(), models.SearchRequest{
		Query:     "red running shoes & socks",
		RequestID: "search-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 1 {
		t.Errorf("expected 1 request, got %d", requests)
	}
	if gotPath != "/products/search/" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotQuery != "red running shoes & socks" {
		t.Errorf("query was not encoded correctly, got %q", gotQuery)
	}
	if gotRequestID != "search-1" {
		t.Errorf("expected request ID to be sent, got %q", gotRequestID)
	}
	distance := 0.1
	expected := models.SearchResults{
		Products: []models.Product{
			{Title: "Trail Shoe", Price: models.NewPrice(59.5), Distance: &distance},
			{Title: "Road Shoe"},
		},
		Count: 2,
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Error(diff)
	}
}

func TestSearchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "non-OK status codes return an InvalidStatusError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			check: func(t *testing.T, err error) {
				var ise jsonapi.InvalidStatusError
				if !errors.As(err, &ise) {
					t.Fatalf("expected InvalidStatusError, got %v", err)
				}
				if ise.Status != http.StatusInternalServerError {
					t.Errorf("expected status 500, got %d", ise.Status)
				}
			},
		},
		{
			name: "invalid JSON returns an error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>not json</html>`))
			},
			check: func(t *testing.T, err error) {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
			},
		},
		{
			name: "unexpected JSON shapes return an error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"detail":"Not found."}`))
			},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, models.ErrUnexpectedSearchBody) {
					t.Fatalf("expected ErrUnexpectedSearchBody, got %v", err)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := httptest.NewServer(tt.handler)
			defer s.Close()
			_, err := New(s.URL).Search(context.Background(), models.SearchRequest{Query: "x"})
			tt.check(t, err)
		})
	}
}

func TestSearchNetworkError(t *testing.T) {
	s := httptest.NewServer(http.NotFoundHandler())
	url := s.URL
	s.Close()

	_, err := New(url).Search(context.Background(), models.SearchRequest{Query: "x"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSearchCancelled(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(s.URL).Search(ctx, models.SearchRequest{Query: "x"})
	if err == nil {
		t.Error("expected error, got nil")
	}
}

func TestProduct(t *testing.T) {
	var gotPath string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":42,"asin":"TEST01","title":"Mechanical Keyboard","price":99.99}`))
	}))
	defer s.Close()

	actual, err := New(s.URL+"/products").Product(context.Background(), models.ProductRequest{ID: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/products/42/" {
		t.Errorf("unexpected path %q", gotPath)
	}
	expected := models.Product{ID: 42, ASIN: "TEST01", Title: "Mechanical Keyboard", Price: models.NewPrice(99.99)}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Error(diff)
	}
}

func TestRecommendations(t *testing.T) {
	var gotPath string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[{"id":2,"title":"Another Keyboard"}]`))
	}))
	defer s.Close()

	actual, err := New(s.URL+"/products").Recommendations(context.Background(), models.ProductRequest{ID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/products/1/recommendations/" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if len(actual) != 1 || actual[0].Title != "Another Keyboard" {
		t.Errorf("unexpected recommendations: %+v", actual)
	}
}
