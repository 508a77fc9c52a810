package viewstore

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/dataview/core/logger"
)

// Messages are the fallback user-facing failure messages used when the
// underlying error does not carry one.
type Messages struct {
	FetchFailed  string
	SearchFailed string
	DetailFailed string
}

func defaultMessages() Messages {
	return Messages{
		FetchFailed:  "Failed to fetch items.",
		SearchFailed: "Search failed.",
		DetailFailed: "Failed to fetch details.",
	}
}

// Store coordinates fetch, search, filter, and paginate transitions for one
// collection. Create with New; safe for concurrent use.
type Store[T any] struct {
	mu       sync.Mutex
	source   Source[T]
	catalog  CategorySource[T]
	detail   DetailSource[T]
	log      *slog.Logger
	messages Messages

	state State[T]
	seq   uint64
}

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithCategorySource enables the category dimension.
func WithCategorySource[T any](cs CategorySource[T]) Option[T] {
	return func(s *Store[T]) {
		s.catalog = cs
	}
}

// WithDetailSource enables single-record detail fetching.
func WithDetailSource[T any](ds DetailSource[T]) Option[T] {
	return func(s *Store[T]) {
		s.detail = ds
	}
}

// WithLogger sets the logger for discard and failure debug logging.
func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(s *Store[T]) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMessages overrides the fallback failure messages. Empty fields keep
// their defaults.
func WithMessages[T any](m Messages) Option[T] {
	return func(s *Store[T]) {
		if m.FetchFailed != "" {
			s.messages.FetchFailed = m.FetchFailed
		}
		if m.SearchFailed != "" {
			s.messages.SearchFailed = m.SearchFailed
		}
		if m.DetailFailed != "" {
			s.messages.DetailFailed = m.DetailFailed
		}
	}
}

// New creates a store over source with a fixed page size.
func New[T any](source Source[T], pageSize int, opts ...Option[T]) (*Store[T], error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}

	s := &Store[T]{
		source:   source,
		log:      slog.Default(),
		messages: defaultMessages(),
		state: State[T]{
			Page:     1,
			PageSize: pageSize,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Snapshot returns a copy of the current state.
func (s *Store[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetPage moves the pagination cursor without fetching. Values below 1 are
// floored to 1; the upper bound is not checked here, the caller is expected
// to disable navigation past TotalPages. The committed state is still
// clamped to the valid range once a fetch lands.
func (s *Store[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Page = n
}

// SetCategory scopes the listing to a category slug, resetting the page and
// clearing any active search. An empty slug clears the filter. Does not
// fetch; the caller batches the filter change with a FetchPage call.
func (s *Store[T]) SetCategory(slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slug == "" {
		s.state.Filter = Filter{}
	} else {
		s.state.Filter = Filter{Kind: FilterCategory, Category: slug}
	}
	s.state.Page = 1
	s.state.QueryText = ""
}

// ClearFilters resets the filter and pagination cursor without fetching.
func (s *Store[T]) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Filter = Filter{}
	s.state.Page = 1
	s.state.QueryText = ""
}

// SetQueryText mirrors the controlled input value into the snapshot
// immediately, independent of the debounced search execution.
func (s *Store[T]) SetQueryText(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.QueryText = raw
}

// ClearError discards the last failure message.
func (s *Store[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastError = ""
}

// ClearSelected discards the selected detail record.
func (s *Store[T]) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Selected = nil
}

// FetchPage fetches the current page under the current filter: the
// category-scoped listing when a category is active, the unscoped listing
// otherwise. On success the items and total are replaced and the page is
// clamped to the valid range; on failure the previous items stay in place
// and LastError is set. Returns ErrStale when a newer fetch superseded this
// one and the response was discarded.
//
// When the collection shrank underneath the cursor, the committed items are
// the (typically empty) result fetched at the old offset and the snapshot's
// Page moves to the new last page. The presentation layer detects the clamp
// by comparing the page it requested with the committed one and reissues
// FetchPage for the in-range items.
func (s *Store[T]) FetchPage(ctx context.Context) error {
	s.mu.Lock()
	token := s.issue()
	limit := s.state.PageSize
	offset := (s.state.Page - 1) * s.state.PageSize
	filter := s.state.Filter
	s.mu.Unlock()

	var page Page[T]
	var err error
	if filter.Kind == FilterCategory {
		if s.catalog == nil {
			err = ErrNoCategorySource
		} else {
			page, err = s.catalog.ListByCategory(ctx, filter.Category, limit, offset)
		}
	} else {
		page, err = s.source.List(ctx, limit, offset)
	}

	if err != nil {
		return s.fail(token, err, s.messages.FetchFailed)
	}
	return s.commit(token, page)
}

// Search executes a server-side search for query, activating the query
// filter and resetting the page. An empty (after trimming) query clears all
// filters and fetches the unscoped first page instead. A query that folds
// equal to the already active one is skipped without a network round trip,
// but only while that query's results stand: after a failure the same query
// is retried in full.
func (s *Store[T]) Search(ctx context.Context, query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		s.ClearFilters()
		return s.FetchPage(ctx)
	}

	fold := cases.Fold()
	folded := fold.String(trimmed)

	s.mu.Lock()
	if s.state.Filter.Kind == FilterQuery && s.state.LastError == "" &&
		fold.String(s.state.Filter.Query) == folded {
		s.mu.Unlock()
		return nil
	}
	s.state.Filter = Filter{Kind: FilterQuery, Query: trimmed}
	s.state.Page = 1
	s.state.QueryText = trimmed
	token := s.issue()
	s.mu.Unlock()

	page, err := s.source.Search(ctx, trimmed)
	if err != nil {
		return s.fail(token, err, s.messages.SearchFailed)
	}
	return s.commit(token, page)
}

// FetchCategories loads the category reference list once. Failures are
// swallowed: category filtering is an enhancement and the previous
// (possibly empty) list stays usable.
func (s *Store[T]) FetchCategories(ctx context.Context) error {
	if s.catalog == nil {
		return ErrNoCategorySource
	}

	s.mu.Lock()
	if s.state.Categories != nil {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	cats, err := s.catalog.Categories(ctx)
	if err != nil {
		s.log.Debug("category fetch failed", logger.Component("viewstore"), logger.Error(err))
		return nil
	}

	s.mu.Lock()
	s.state.Categories = cats
	s.mu.Unlock()
	return nil
}

// FetchByID fetches a single record into Selected for a detail screen.
// Participates in the same fencing sequence as the listing fetches.
func (s *Store[T]) FetchByID(ctx context.Context, id int) error {
	if s.detail == nil {
		return ErrNoDetailSource
	}

	s.mu.Lock()
	token := s.issue()
	s.state.Selected = nil
	s.mu.Unlock()

	item, err := s.detail.Get(ctx, id)
	if err != nil {
		return s.fail(token, err, s.messages.DetailFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		s.discarded(token)
		return ErrStale
	}
	s.state.Selected = &item
	s.state.Loading = false
	return nil
}

// issue registers a new fetch: bumps the fence, raises the loading flag,
// and clears the previous error. Callers must hold the lock.
func (s *Store[T]) issue() uint64 {
	s.seq++
	s.state.Loading = true
	s.state.LastError = ""
	return s.seq
}

// commit applies a successful page under the fence.
func (s *Store[T]) commit(token uint64, page Page[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		s.discarded(token)
		return ErrStale
	}

	s.state.Items = page.Items
	s.state.Total = page.Total
	s.state.Loading = false

	// Keep the cursor inside the committed range. An empty result set
	// resets to the first page. The items stay as fetched; the caller
	// observes the moved cursor and refetches for the in-range page.
	if tp := s.state.TotalPages(); s.state.Page > tp {
		s.state.Page = tp
	}
	return nil
}

// fail records a failure under the fence, keeping the previous items and
// total so a transient failure does not blank a populated view.
func (s *Store[T]) fail(token uint64, err error, fallback string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		s.discarded(token)
		return ErrStale
	}

	msg := fallback
	var um UserMessenger
	if errors.As(err, &um) && um.UserMessage() != "" {
		msg = um.UserMessage()
	}

	s.state.LastError = msg
	s.state.Loading = false

	s.log.Debug("fetch failed",
		logger.Component("viewstore"),
		logger.Seq(token),
		logger.Error(err),
	)
	return err
}

func (s *Store[T]) discarded(token uint64) {
	s.log.Debug("stale response discarded",
		logger.Component("viewstore"),
		logger.Seq(token),
	)
}
