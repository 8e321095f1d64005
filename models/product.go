package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type Product struct {
	ID               int64    `json:"id,omitempty"`
	ASIN             string   `json:"asin,omitempty"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Category         string   `json:"category,omitempty"`
	Brand            string   `json:"brand,omitempty"`
	Price            Price    `json:"price"`
	Distance         *float64 `json:"distance,omitempty"`
	IsHighConfidence *bool    `json:"is_high_confidence,omitempty"`
}

// Price is a product price. The search service sends numbers, but decimal
// fields may arrive as strings, so both are accepted. Anything that isn't a
// number leaves the price unset rather than failing the whole response.
type Price struct {
	Amount float64
	Valid  bool
}

func NewPrice(amount float64) Price {
	return Price{Amount: amount, Valid: true}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	*p = Price{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		data = []byte(strings.TrimSpace(s))
	}
	amount, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return nil
	}
	*p = NewPrice(amount)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Amount)
}
