// Package models defines the Pokémon TCG catalog records returned by the API.
//
// Identifying fields (IDs, names and the required set metadata) are plain
// values. Every other field is a pointer, slice or map that stays nil when the
// server omits it, so "absent" and "present but empty" remain distinguishable:
//
//	if card.Legalities == nil {
//		// the server sent no legality information
//	}
//
// Records encode with the canonical camelCase wire names. Card and Set also
// decode the legacy snake_case spellings (evolves_from, printed_total, ...).
package models
