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

// Handler renders the results fragment for the page script.
type Handler struct {
	log         *slog.Logger
	searcherFor func(r *http.Request) search.Searcher
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	query, ok := search.Normalize(r.URL.Query().Get("q"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	log := h.log.With(slog.String("requestID", middleware.GetReqID(r.Context())))
	outcome := search.Run(r.Context(), log, h.searcherFor(r), query)

	status := http.StatusOK
	if outcome.State == search.StateFailed {
		status = http.StatusBadGateway
	}
	w.WriteHeader(status)
	if err := views.RenderResults(w, views.NewResults(outcome)); err != nil {
		log.Error("failed to render results", slog.Any("error", err))
	}
}
