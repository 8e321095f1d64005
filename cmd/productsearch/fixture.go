package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/productsearch/fixture"
	productget "github.com/a-h/productsearch/handlers/fixture/product/get"
	recommendationsget "github.com/a-h/productsearch/handlers/fixture/recommendations/get"
	searchget "github.com/a-h/productsearch/handlers/fixture/search/get"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

type FixtureCommand struct {
	File       string `help:"The YAML file containing the products." env:"FIXTURE_FILE" default:"products.yaml"`
	ListenAddr string `help:"The address to listen on." env:"FIXTURE_LISTEN_ADDR" default:"localhost:8000"`
	Envelope   bool   `help:"Return search results in a paginated envelope instead of an array." default:"false"`
	FailStatus int    `help:"Respond to every search with this HTTP status code." default:"0"`
	LogLevel   string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c FixtureCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	log.Info("loading fixture", slog.String("file", c.File))
	catalog, err := fixture.Load(c.File)
	if err != nil {
		return err
	}
	log.Info("fixture loaded", slog.Int("products", len(catalog.All())))

	s := &http.Server{
		Addr:    c.ListenAddr,
		Handler: cors.AllowAll().Handler(newFixtureRouter(log, catalog, searchget.Options{Envelope: c.Envelope, FailStatus: c.FailStatus})),
	}
	return listen(ctx, log, s, "", "")
}

func newFixtureRouter(log *slog.Logger, catalog *fixture.Catalog, opts searchget.Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logRequests(log))
	r.Use(middleware.Recoverer)
	r.Method(http.MethodGet, "/products/search/", searchget.New(log, catalog, opts))
	r.Method(http.MethodGet, "/products/{id}/", productget.New(log, catalog))
	r.Method(http.MethodGet, "/products/{id}/recommendations/", recommendationsget.New(log, catalog))
	return r
}
