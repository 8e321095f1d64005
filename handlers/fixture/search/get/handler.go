package get

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/productsearch/fixture"
	"github.com/a-h/productsearch/models"
	"github.com/a-h/respond"
)

type Options struct {
	// Envelope wraps results in the paginated response format.
	Envelope bool
	// FailStatus, if set, is returned for every search.
	FailStatus int
}

func New(log *slog.Logger, catalog *fixture.Catalog, opts Options) Handler {
	return Handler{
		log:     log,
		catalog: catalog,
		opts:    opts,
	}
}

// Handler answers searches with every product in the catalog.
type Handler struct {
	log     *slog.Logger
	catalog *fixture.Catalog
	opts    Options
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respond.WithJSON(w, map[string]string{"q": "This query parameter is required."}, http.StatusBadRequest)
		return
	}
	h.log.Info("search", slog.String("q", q), slog.String("requestID", r.Header.Get("X-Request-Id")))

	if h.opts.FailStatus != 0 {
		respond.WithError(w, http.StatusText(h.opts.FailStatus), h.opts.FailStatus)
		return
	}

	products := h.catalog.All()
	if !h.opts.Envelope {
		respond.WithJSON(w, products, http.StatusOK)
		return
	}
	hasExactMatches := fixture.HasExactMatches(products)
	respond.WithJSON(w, models.SearchEnvelope{
		Count:           len(products),
		Results:         products,
		HasExactMatches: &hasExactMatches,
	}, http.StatusOK)
}
