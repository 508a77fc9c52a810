package viewstore

import "context"

// Page is one server-returned page of a collection.
type Page[T any] struct {
	Items []T
	Total int
}

// Source provides the listing and search operations backing a store.
type Source[T any] interface {
	// List returns one page of the unscoped collection.
	List(ctx context.Context, limit, offset int) (Page[T], error)
	// Search returns items matching the query as a single unpaginated page.
	Search(ctx context.Context, query string) (Page[T], error)
}

// CategorySource provides the category dimension for stores that have one.
type CategorySource[T any] interface {
	// ListByCategory returns one page of the collection scoped to a category.
	ListByCategory(ctx context.Context, slug string, limit, offset int) (Page[T], error)
	// Categories returns the immutable category reference list.
	Categories(ctx context.Context) ([]Category, error)
}

// DetailSource provides single-record lookup for detail screens.
type DetailSource[T any] interface {
	Get(ctx context.Context, id int) (T, error)
}

// Category is reference data for category filtering.
type Category struct {
	Slug string
	Name string
}

// UserMessenger is implemented by errors that carry a message safe to show
// to the user, such as a server-provided failure message.
type UserMessenger interface {
	UserMessage() string
}

// FilterKind discriminates the mutually exclusive filter states.
type FilterKind int

const (
	// FilterNone means the unscoped collection is listed.
	FilterNone FilterKind = iota
	// FilterQuery means a server-side search is active.
	FilterQuery
	// FilterCategory means the listing is scoped to a category.
	FilterCategory
)

// Filter is the active filter. Setting one kind clears the others.
type Filter struct {
	Kind     FilterKind
	Query    string
	Category string
}

// State is an immutable snapshot of a store. The Items slice must be
// treated as read-only; it is shared with the store until the next commit
// replaces it wholesale.
type State[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	Filter     Filter
	QueryText  string
	Categories []Category
	Selected   *T
	Loading    bool
	LastError  string
}

// TotalPages derives the page count from the total and page size.
// Search results count as a single page.
func (s State[T]) TotalPages() int {
	if s.Filter.Kind == FilterQuery {
		return 1
	}
	if s.Total <= 0 {
		return 1
	}
	return (s.Total + s.PageSize - 1) / s.PageSize
}

// CanPaginate reports whether pagination controls apply to the current
// state. Active search results are a single unpaginated page.
func (s State[T]) CanPaginate() bool {
	return s.Filter.Kind != FilterQuery
}
