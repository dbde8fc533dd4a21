package models

// Set is an expansion set.
// https://docs.pokemontcg.io/api-reference/sets/set-object
type Set struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Series string `json:"series"`

	// PrintedTotal is the total printed on the cards, excluding secret rares.
	PrintedTotal int `json:"printedTotal"`

	// Total includes secret rares and alternate arts.
	Total int `json:"total"`

	// Legalities lists only the formats the set is legal in.
	Legalities Legality `json:"legalities"`

	// PtcgoCode is the code used by the Pokémon TCG Online client.
	PtcgoCode *string `json:"ptcgoCode,omitempty"`

	// ReleaseDate uses the format YYYY/MM/DD.
	ReleaseDate string `json:"releaseDate"`

	// UpdatedAt uses the format YYYY/MM/DD HH:MM:SS.
	UpdatedAt string `json:"updatedAt"`

	Images SetImages `json:"images"`
}

// UnmarshalJSON accepts both the camelCase and snake_case field names.
func (s *Set) UnmarshalJSON(data []byte) error {
	return decodeAliased(data, s)
}

// SetImages holds the set symbol and logo URLs.
type SetImages struct {
	Symbol string `json:"symbol"`
	Logo   string `json:"logo"`
}
