package client

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Sternrassler/ptcg-client/pkg/pagination"
)

// ErrInvalidParams is returned before any request is sent when search
// parameters are out of range.
var ErrInvalidParams = errors.New("invalid search parameters")

// SearchParams are the optional query parameters of a search. Zero values
// are omitted from the request.
type SearchParams struct {
	// Query is the search query, e.g. "name:charizard subtypes:mega".
	Query string

	// Page is 1-based.
	Page int

	// PageSize is at most 250.
	PageSize int

	// OrderBy lists fields to sort by; prefix a field with "-" to sort descending.
	OrderBy []string
}

// NewSearch returns params for query with every other field unset.
func NewSearch(query string) SearchParams {
	return SearchParams{Query: query}
}

// Validate checks the page and page size ranges.
func (p SearchParams) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("%w: page must be >= 1 (got %d)", ErrInvalidParams, p.Page)
	}
	if p.PageSize < 0 || p.PageSize > pagination.MaxPageSize {
		return fmt.Errorf("%w: page size must be between 1 and %d (got %d)", ErrInvalidParams, pagination.MaxPageSize, p.PageSize)
	}
	return nil
}

// Values encodes the set parameters as q, page, pageSize and orderBy.
func (p SearchParams) Values() url.Values {
	v := url.Values{}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if len(p.OrderBy) > 0 {
		v.Set("orderBy", strings.Join(p.OrderBy, ","))
	}
	return v
}
