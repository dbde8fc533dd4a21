package client

import (
	"context"
	"net/url"

	"github.com/Sternrassler/ptcg-client/pkg/models"
	"github.com/Sternrassler/ptcg-client/pkg/pagination"
)

const setsPath = "sets"

// GetSet fetches a single set by ID.
//
// https://docs.pokemontcg.io/api-reference/sets/get-set
func (c *Client) GetSet(ctx context.Context, id string) (*models.Set, error) {
	set, err := fetchOne[models.Set](ctx, c, setsPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// SearchSets returns one page of sets matching params.
//
// https://docs.pokemontcg.io/api-reference/sets/search-sets
func (c *Client) SearchSets(ctx context.Context, params SearchParams) ([]models.Set, error) {
	page, err := c.SearchSetsPage(ctx, params)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// SearchSetsPage is SearchSets but also returns the reported total count.
func (c *Client) SearchSetsPage(ctx context.Context, params SearchParams) (pagination.Page[models.Set], error) {
	if err := params.Validate(); err != nil {
		return pagination.Page[models.Set]{}, err
	}
	return fetchPage[models.Set](ctx, c, setsPath, params.Values())
}

// GetAllSets pages through every set. Besides the reported count, a page
// that is not a multiple of the page size ends the loop.
func (c *Client) GetAllSets(ctx context.Context) ([]models.Set, error) {
	return fetchAll[models.Set](ctx, c, setsPath, pagination.TotalPagesOrShortPage)
}
