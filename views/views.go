// Package views renders the search page and result fragments as HTML.
package views

import (
	"embed"
	"html/template"
	"io"

	"github.com/a-h/productsearch/card"
	"github.com/a-h/productsearch/search"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Results struct {
	State    search.State
	Cards    []card.Card
	Message  string
	Endpoint string
}

func NewResults(o search.Outcome) Results {
	return Results{
		State:    o.State,
		Cards:    card.NewList(o.Products),
		Message:  o.Message(),
		Endpoint: o.Endpoint,
	}
}

func (r Results) Failed() bool {
	return r.State == search.StateFailed
}

type Page struct {
	Query string
	// Results is nil until a search has been made.
	Results *Results
}

// ErrorMessage is shown by the page script when the results request fails.
func (p Page) ErrorMessage() string {
	return search.ErrorMessage
}

func RenderPage(w io.Writer, p Page) error {
	return templates.ExecuteTemplate(w, "page", p)
}

func RenderResults(w io.Writer, r Results) error {
	return templates.ExecuteTemplate(w, "results", r)
}
