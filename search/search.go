// Package search runs product searches and decides what the user sees.
package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/a-h/productsearch/models"
	"github.com/google/uuid"
)

const (
	NoResultsMessage = "No similar products found. Try a different description."
	ErrorMessage     = "Error connecting to the API."
)

type Searcher interface {
	Search(ctx context.Context, req models.SearchRequest) (models.SearchResults, error)
	// Endpoint is shown to the user when a search fails.
	Endpoint() string
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StateResults
	StateEmpty
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateResults:
		return "results"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the result of a single search.
type Outcome struct {
	// Seq orders searches started by a Session. It's zero for searches run
	// outside a session.
	Seq             uint64
	ID              string
	Query           string
	State           State
	Products        []models.Product
	HasExactMatches *bool
	Endpoint        string
	Err             error
	Duration        time.Duration
}

// Message is the fixed text shown instead of cards, if any.
func (o Outcome) Message() string {
	switch o.State {
	case StateEmpty:
		return NoResultsMessage
	case StateFailed:
		return ErrorMessage
	}
	return ""
}

// Normalize trims the query. Queries that are empty after trimming are not
// searched for.
func Normalize(input string) (query string, ok bool) {
	query = strings.TrimSpace(input)
	return query, query != ""
}

// Run issues exactly one search for query. Failures of any kind are reported
// in the outcome, never returned or panicked.
func Run(ctx context.Context, log *slog.Logger, searcher Searcher, query string) Outcome {
	return run(ctx, log, searcher, uuid.NewString(), query)
}

func run(ctx context.Context, log *slog.Logger, searcher Searcher, id, query string) (o Outcome) {
	o = Outcome{
		ID:       id,
		Query:    query,
		State:    StateLoading,
		Endpoint: searcher.Endpoint(),
	}
	log = log.With(slog.String("searchID", id), slog.String("query", query))
	log.Debug("searching", slog.String("endpoint", o.Endpoint))

	start := time.Now()
	results, err := searcher.Search(ctx, models.SearchRequest{Query: query, RequestID: id})
	o.Duration = time.Since(start)
	if err != nil {
		o.State = StateFailed
		o.Err = err
		if ctx.Err() != nil {
			log.Debug("search cancelled", slog.Any("error", err))
			return o
		}
		log.Error("search failed", slog.String("endpoint", o.Endpoint), slog.Any("error", err))
		return o
	}

	o.Products = results.Products
	o.HasExactMatches = results.HasExactMatches
	o.State = StateResults
	if len(o.Products) == 0 {
		o.State = StateEmpty
	}
	log.Info("search complete", slog.Int("results", len(o.Products)), slog.Duration("duration", o.Duration))
	return o
}

// Session tracks the searches of a single search box. Starting a search
// cancels the one in flight, and only the latest search's outcome is
// accepted for display.
type Session struct {
	log      *slog.Logger
	searcher Searcher

	m      sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewSession(log *slog.Logger, searcher Searcher) *Session {
	return &Session{
		log:      log,
		searcher: searcher,
	}
}

// Request is a search that has been started, but not yet run.
type Request struct {
	Seq   uint64
	ID    string
	Query string

	ctx      context.Context
	cancel   context.CancelFunc
	log      *slog.Logger
	searcher Searcher
}

// Start begins a new search for the input. If the trimmed input is empty,
// nothing happens and ok is false.
func (s *Session) Start(ctx context.Context, input string) (req Request, ok bool) {
	query, ok := Normalize(input)
	if !ok {
		return req, false
	}

	s.m.Lock()
	defer s.m.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	return Request{
		Seq:      s.seq,
		ID:       uuid.NewString(),
		Query:    query,
		ctx:      reqCtx,
		cancel:   cancel,
		log:      s.log,
		searcher: s.searcher,
	}, true
}

// Run performs the search. It blocks until the search service responds or
// the search is superseded.
func (r Request) Run() Outcome {
	defer r.cancel()
	o := run(r.ctx, r.log, r.searcher, r.ID, r.Query)
	o.Seq = r.Seq
	return o
}

// Accept reports whether the outcome belongs to the latest search.
func (s *Session) Accept(o Outcome) bool {
	s.m.Lock()
	defer s.m.Unlock()
	return o.Seq != 0 && o.Seq == s.seq
}

// Close cancels any search in flight.
func (s *Session) Close() {
	s.m.Lock()
	defer s.m.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
