package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/a-h/productsearch/card"
	"github.com/a-h/productsearch/client"
	"github.com/a-h/productsearch/models"
	"github.com/a-h/productsearch/search"
)

var errEmptyQuery = errors.New("query is empty")

type SearchCommand struct {
	APIURL   string   `help:"The URL of the products API." env:"PRODUCTS_API_URL" default:"http://localhost:8000/products"`
	Query    []string `arg:"" help:"Description of the product to search for."`
	JSON     bool     `help:"Print the products as JSON." default:"false"`
	Pretty   bool     `help:"Pretty print the JSON output." default:"true"`
	Width    int      `help:"The width of the cards." env:"COLUMNS" default:"80"`
	LogLevel string   `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c SearchCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	query, ok := search.Normalize(strings.Join(c.Query, " "))
	if !ok {
		return errEmptyQuery
	}

	outcome := search.Run(ctx, log, client.New(c.APIURL), query)
	if c.JSON {
		if outcome.State == search.StateFailed {
			return fmt.Errorf("search failed: %w", outcome.Err)
		}
		return writeJSON(os.Stdout, outcome.Products, c.Pretty)
	}
	fmt.Fprintln(os.Stdout, renderOutcome(outcome, c.Width))
	if outcome.State == search.StateFailed {
		return fmt.Errorf("search failed: %w", outcome.Err)
	}
	return nil
}

// renderOutcome draws the cards, or the message shown in their place.
func renderOutcome(o search.Outcome, width int) string {
	switch o.State {
	case search.StateFailed:
		return card.ErrorStyle.Render(o.Message() + "\nTarget URL: " + o.Endpoint)
	case search.StateEmpty:
		return card.MessageStyle.Render(o.Message())
	case search.StateResults:
		return card.RenderList(card.NewList(o.Products), width)
	}
	return ""
}

func writeJSON(w io.Writer, products []models.Product, pretty bool) error {
	if products == nil {
		products = []models.Product{}
	}
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(products)
}
