package models

type SearchRequest struct {
	// Query is the free-text product description.
	Query string
	// RequestID is sent to the search service as X-Request-Id so that
	// client and server logs can be matched up.
	RequestID string
}

type ProductRequest struct {
	ID        int64
	RequestID string
}
