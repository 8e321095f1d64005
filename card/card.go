// Package card turns search results into display cards.
package card

import (
	"fmt"
	"strings"

	"github.com/a-h/productsearch/models"
)

const (
	DefaultCategory    = "Product"
	DefaultTitle       = "Untitled"
	DefaultDescription = "No description available."
	DefaultPrice       = "N/A"
)

// Card is the display form of a product.
type Card struct {
	Category    string
	Title       string
	Description string
	Price       string
	// Match is the similarity percentage, e.g. "87.5%". It's empty when the
	// product has no distance.
	Match string
	// HighConfidence is set when the search service flagged the match.
	HighConfidence bool
}

func (c Card) HasMatch() bool {
	return c.Match != ""
}

func New(p models.Product) Card {
	c := Card{
		Category:    valueOrDefault(p.Category, DefaultCategory),
		Title:       valueOrDefault(p.Title, DefaultTitle),
		Description: valueOrDefault(p.Description, DefaultDescription),
		Price:       FormatPrice(p.Price),
	}
	if p.Distance != nil {
		c.Match = FormatMatch(*p.Distance)
	}
	if p.IsHighConfidence != nil {
		c.HighConfidence = *p.IsHighConfidence
	}
	return c
}

func NewList(products []models.Product) []Card {
	cards := make([]Card, len(products))
	for i, p := range products {
		cards[i] = New(p)
	}
	return cards
}

// MatchPercent converts a similarity distance into a percentage, where a
// distance of 0 is a 100% match. Distances above 1 clamp to 0.
func MatchPercent(distance float64) float64 {
	return max(0, (1-distance)*100)
}

func FormatMatch(distance float64) string {
	return fmt.Sprintf("%.1f%%", MatchPercent(distance))
}

func FormatPrice(p models.Price) string {
	if !p.Valid {
		return DefaultPrice
	}
	return fmt.Sprintf("$%.2f", p.Amount)
}

func valueOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
