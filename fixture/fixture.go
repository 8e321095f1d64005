// Package fixture loads a canned product catalog from YAML, for running the
// search UI without the real search service.
package fixture

import (
	"fmt"
	"io"
	"os"

	"github.com/a-h/productsearch/models"
	"gopkg.in/yaml.v3"
)

// HighConfidenceDistance is the distance below which the search service
// treats a match as exact.
const HighConfidenceDistance = 0.7

type file struct {
	Products []product `yaml:"products"`
}

type product struct {
	ID          int64    `yaml:"id"`
	ASIN        string   `yaml:"asin"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Brand       string   `yaml:"brand"`
	Price       *float64 `yaml:"price"`
	Distance    *float64 `yaml:"distance"`
}

func (p product) model() (m models.Product) {
	m = models.Product{
		ID:          p.ID,
		ASIN:        p.ASIN,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Brand:       p.Brand,
		Distance:    p.Distance,
	}
	if p.Price != nil {
		m.Price = models.NewPrice(*p.Price)
	}
	if p.Distance != nil {
		highConfidence := *p.Distance < HighConfidenceDistance
		m.IsHighConfidence = &highConfidence
	}
	return m
}

type Catalog struct {
	products []models.Product
}

func Load(name string) (*Catalog, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("fixture: failed to open %q: %w", name, err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Catalog, error) {
	var ff file
	if err := yaml.NewDecoder(r).Decode(&ff); err != nil && err != io.EOF {
		return nil, fmt.Errorf("fixture: failed to decode: %w", err)
	}
	c := &Catalog{products: make([]models.Product, len(ff.Products))}
	seen := make(map[int64]bool, len(ff.Products))
	for i, p := range ff.Products {
		if p.ID != 0 {
			if seen[p.ID] {
				return nil, fmt.Errorf("fixture: duplicate product id %d", p.ID)
			}
			seen[p.ID] = true
		}
		c.products[i] = p.model()
	}
	return c, nil
}

// All returns every product, in file order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id int64) (p models.Product, ok bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return p, false
}

// Related returns up to limit other products in the same category as the
// product with the given id, in file order.
func (c *Catalog) Related(id int64, limit int) (related []models.Product, ok bool) {
	target, ok := c.Get(id)
	if !ok {
		return nil, false
	}
	related = []models.Product{}
	for _, p := range c.products {
		if len(related) >= limit {
			break
		}
		if p.ID == id || p.Category != target.Category {
			continue
		}
		related = append(related, p)
	}
	return related, true
}

// HasExactMatches reports whether any product is a high confidence match.
func HasExactMatches(products []models.Product) bool {
	for _, p := range products {
		if p.Distance != nil && *p.Distance < HighConfidenceDistance {
			return true
		}
	}
	return false
}
