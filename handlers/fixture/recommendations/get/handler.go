package get

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/productsearch/fixture"
	"github.com/a-h/respond"
	"github.com/go-chi/chi/v5"
)

const maxRecommendations = 5

func New(log *slog.Logger, catalog *fixture.Catalog) Handler {
	return Handler{
		log:     log,
		catalog: catalog,
	}
}

// Handler recommends other products in the same category.
type Handler struct {
	log     *slog.Logger
	catalog *fixture.Catalog
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.WithError(w, "invalid product id", http.StatusBadRequest)
		return
	}
	related, ok := h.catalog.Related(id, maxRecommendations)
	if !ok {
		respond.WithError(w, "product not found", http.StatusNotFound)
		return
	}
	h.log.Debug("recommendations", slog.Int64("id", id), slog.Int("count", len(related)))
	respond.WithJSON(w, related, http.StatusOK)
}
