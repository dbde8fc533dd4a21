package client

import (
	"context"
	"net/url"

	"github.com/Sternrassler/ptcg-client/pkg/models"
	"github.com/Sternrassler/ptcg-client/pkg/pagination"
)

const cardsPath = "cards"

// GetCard fetches a single card by ID.
//
// https://docs.pokemontcg.io/api-reference/cards/get-card
func (c *Client) GetCard(ctx context.Context, id string) (*models.Card, error) {
	card, err := fetchOne[models.Card](ctx, c, cardsPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// SearchCards returns one page of cards matching params.
//
// https://docs.pokemontcg.io/api-reference/cards/search-cards
func (c *Client) SearchCards(ctx context.Context, params SearchParams) ([]models.Card, error) {
	page, err := c.SearchCardsPage(ctx, params)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// SearchCardsPage is SearchCards but also returns the reported total count.
func (c *Client) SearchCardsPage(ctx context.Context, params SearchParams) (pagination.Page[models.Card], error) {
	if err := params.Validate(); err != nil {
		return pagination.Page[models.Card]{}, err
	}
	return fetchPage[models.Card](ctx, c, cardsPath, params.Values())
}

// GetAllCards pages through every card. This takes a while.
func (c *Client) GetAllCards(ctx context.Context) ([]models.Card, error) {
	return fetchAll[models.Card](ctx, c, cardsPath, pagination.TotalPagesOnly)
}
