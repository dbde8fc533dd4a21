package pagination

import "context"

// MaxPageSize is the largest page the API serves, and the page size the
// paginator assumes when the page size parameter is not sent.
const MaxPageSize = 250

// Page is one page of results.
type Page[T any] struct {
	Items []T

	// TotalCount is the total reported with this page, nil when absent.
	TotalCount *int
}

// PageFetcher fetches a single page by its 1-based number.
type PageFetcher[T any] interface {
	FetchPage(ctx context.Context, page int) (Page[T], error)
}

// PageFetcherFunc adapts a function to PageFetcher.
type PageFetcherFunc[T any] func(ctx context.Context, page int) (Page[T], error)

// FetchPage calls f.
func (f PageFetcherFunc[T]) FetchPage(ctx context.Context, page int) (Page[T], error) {
	return f(ctx, page)
}

// Policy selects the termination rule.
type Policy int

const (
	// TotalPagesOnly stops on the reported page count alone (cards).
	TotalPagesOnly Policy = iota

	// TotalPagesOrShortPage also stops on a short page (sets).
	TotalPagesOrShortPage
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case TotalPagesOnly:
		return "total_pages_only"
	case TotalPagesOrShortPage:
		return "total_pages_or_short_page"
	default:
		return "unknown"
	}
}

// Cursor is the paginator state.
type Cursor struct {
	// Page is the 1-based number of the page being fetched.
	Page int

	// PageSize is fixed for the whole loop.
	PageSize int

	// TotalPages is derived from the last reported total count. It stays
	// at its previous value for pages that report no count.
	TotalPages int
}

// NewCursor returns a cursor at page 1.
func NewCursor(pageSize int) Cursor {
	return Cursor{Page: 1, PageSize: pageSize}
}

// Observe records the total count reported with the current page.
func (c *Cursor) Observe(totalCount *int) {
	if totalCount == nil {
		return
	}
	c.TotalPages = ceilDiv(*totalCount, c.PageSize)
}

// Done reports whether the loop ends after the current page, which held
// pageLen items.
func (c *Cursor) Done(pageLen int, policy Policy) bool {
	if policy == TotalPagesOrShortPage && pageLen%c.PageSize != 0 {
		return true
	}
	return c.Page >= c.TotalPages
}

// Advance moves to the next page.
func (c *Cursor) Advance() {
	c.Page++
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
