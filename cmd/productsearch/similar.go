package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/a-h/productsearch/card"
	"github.com/a-h/productsearch/client"
	"github.com/a-h/productsearch/models"
	"github.com/google/uuid"
)

type SimilarCommand struct {
	APIURL   string `help:"The URL of the products API." env:"PRODUCTS_API_URL" default:"http://localhost:8000/products"`
	ID       int64  `arg:"" help:"The ID of the product."`
	JSON     bool   `help:"Print the products as JSON." default:"false"`
	Pretty   bool   `help:"Pretty print the JSON output." default:"true"`
	Width    int    `help:"The width of the cards." env:"COLUMNS" default:"80"`
	LogLevel string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c SimilarCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	rsc := client.New(c.APIURL)

	req := models.ProductRequest{ID: c.ID, RequestID: uuid.NewString()}
	log.Debug("fetching recommendations", slog.Int64("id", c.ID), slog.String("requestID", req.RequestID))
	products, err := rsc.Recommendations(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get recommendations for product %d: %w", c.ID, err)
	}
	log.Info("recommendations", slog.Int64("id", c.ID), slog.Int("count", len(products)))

	if c.JSON {
		return writeJSON(os.Stdout, products, c.Pretty)
	}
	if len(products) == 0 {
		fmt.Fprintln(os.Stdout, card.MessageStyle.Render("No similar products found."))
		return nil
	}
	fmt.Fprintln(os.Stdout, card.RenderList(card.NewList(products), c.Width))
	return nil
}
