package client

import "context"

// Taxonomy names a flat string-list endpoint.
type Taxonomy string

const (
	Types      Taxonomy = "types"
	Subtypes   Taxonomy = "subtypes"
	Supertypes Taxonomy = "supertypes"
	Rarities   Taxonomy = "rarities"
)

// Taxonomies lists every taxonomy endpoint.
var Taxonomies = []Taxonomy{Types, Subtypes, Supertypes, Rarities}

// GetTaxonomy fetches the full list for t in a single request.
func (c *Client) GetTaxonomy(ctx context.Context, t Taxonomy) ([]string, error) {
	return fetchOne[[]string](ctx, c, string(t), nil)
}

// GetTypes returns all energy types.
//
// https://docs.pokemontcg.io/api-reference/types/get-types
func (c *Client) GetTypes(ctx context.Context) ([]string, error) {
	return c.GetTaxonomy(ctx, Types)
}

// GetSubtypes returns all card subtypes.
//
// https://docs.pokemontcg.io/api-reference/subtypes/get-subtypes
func (c *Client) GetSubtypes(ctx context.Context) ([]string, error) {
	return c.GetTaxonomy(ctx, Subtypes)
}

// GetSupertypes returns all card supertypes.
//
// https://docs.pokemontcg.io/api-reference/supertypes/get-supertypes
func (c *Client) GetSupertypes(ctx context.Context) ([]string, error) {
	return c.GetTaxonomy(ctx, Supertypes)
}

// GetRarities returns all rarities.
//
// https://docs.pokemontcg.io/api-reference/rarities/get-rarities
func (c *Client) GetRarities(ctx context.Context) ([]string, error) {
	return c.GetTaxonomy(ctx, Rarities)
}
