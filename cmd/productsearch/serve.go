package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/a-h/productsearch/client"
	pageget "github.com/a-h/productsearch/handlers/page/get"
	resultsget "github.com/a-h/productsearch/handlers/results/get"
	"github.com/a-h/productsearch/search"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

type ServeCommand struct {
	APIURL      string `help:"The URL of the products API. If empty, the API is expected on port 8000 of the host the page is served from." env:"PRODUCTS_API_URL" default:""`
	ListenAddr  string `help:"The address to listen on." env:"LISTEN_ADDR" default:"localhost:9021"`
	TLSCertFile string `help:"The TLS certificate file." env:"TLS_CERT_FILE" default:""`
	TLSKeyFile  string `help:"The TLS key file." env:"TLS_KEY_FILE" default:""`
	LogLevel    string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c ServeCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	searcherFor := c.searcherFor
	if c.APIURL != "" {
		log.Info("using products API", slog.String("url", c.APIURL))
		fixed := client.New(c.APIURL)
		searcherFor = func(r *http.Request) search.Searcher { return fixed }
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logRequests(log))
	r.Use(middleware.Recoverer)
	r.Method(http.MethodGet, "/", pageget.New(log, searcherFor))
	r.Method(http.MethodGet, "/results", resultsget.New(log, searcherFor))

	s := &http.Server{
		Addr:    c.ListenAddr,
		Handler: cors.AllowAll().Handler(r),
	}
	return listen(ctx, log, s, c.TLSCertFile, c.TLSKeyFile)
}

// searcherFor targets the products API on the host that the page was
// requested from.
func (c ServeCommand) searcherFor(r *http.Request) search.Searcher {
	return client.New(client.BaseURLForHost(requestHostname(r)))
}

func requestHostname(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.Host)
	if err != nil {
		return r.Host
	}
	return host
}
