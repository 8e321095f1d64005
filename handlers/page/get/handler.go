package get

import (
	"log/slog"
	"net/http"

	"github.com/a-h/productsearch/search"
	"github.com/a-h/productsearch/views"
	"github.com/go-chi/chi/v5/middleware"
)

func New(log *slog.Logger, searcherFor func(r *http.Request) search.Searcher) Handler {
	return Handler{
		log:         log,
		searcherFor: searcherFor,
	}
}

// Handler renders the search page. When the URL has a query, the results are
// rendered into the page so that it works without JavaScript.
type Handler struct {
	log         *slog.Logger
	searcherFor func(r *http.Request) search.Searcher
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("requestID", middleware.GetReqID(r.Context())))

	page := views.Page{
		Query: r.URL.Query().Get("q"),
	}
	status := http.StatusOK
	if query, ok := search.Normalize(page.Query); ok {
		outcome := search.Run(r.Context(), log, h.searcherFor(r), query)
		results := views.NewResults(outcome)
		page.Results = &results
		if outcome.State == search.StateFailed {
			status = http.StatusBadGateway
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := views.RenderPage(w, page); err != nil {
		log.Error("failed to render page", slog.Any("error", err))
	}
}
