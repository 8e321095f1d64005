package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// SearchResults is the body of a search response.
type SearchResults struct {
	Products []Product
	// Count is the total number of matches reported by a paginated response,
	// or the length of Products otherwise.
	Count int
	// HasExactMatches is only set by paginated responses.
	HasExactMatches *bool
}

// SearchEnvelope is the paginated form of a search response.
type SearchEnvelope struct {
	Count           int       `json:"count"`
	Next            *string   `json:"next"`
	Previous        *string   `json:"previous"`
	Results         []Product `json:"results"`
	HasExactMatches *bool     `json:"has_exact_matches,omitempty"`
}

var ErrUnexpectedSearchBody = errors.New("search response is neither an array nor a results envelope")

func (sr *SearchResults) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrUnexpectedSearchBody
	}
	switch data[0] {
	case '[':
		var products []Product
		if err := json.Unmarshal(data, &products); err != nil {
			return err
		}
		*sr = SearchResults{Products: products, Count: len(products)}
		return nil
	case '{':
		var env SearchEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return err
		}
		if env.Results == nil {
			return ErrUnexpectedSearchBody
		}
		*sr = SearchResults{Products: env.Results, Count: env.Count, HasExactMatches: env.HasExactMatches}
		return nil
	}
	return ErrUnexpectedSearchBody
}

func (sr SearchResults) MarshalJSON() ([]byte, error) {
	if sr.Products == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(sr.Products)
}
