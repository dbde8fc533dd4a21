package models

// Card is a single card from the catalog.
// https://docs.pokemontcg.io/api-reference/cards/card-object
type Card struct {
	// ID is the unique identifier, e.g. "base1-4".
	ID string `json:"id"`

	// Name of the card.
	Name string `json:"name"`

	// Supertype such as Pokémon, Energy or Trainer.
	Supertype string `json:"supertype"`

	// Subtypes such as Basic, EX, Mega or Rapid Strike.
	Subtypes []string `json:"subtypes,omitzero"`

	// Level only appears on older Pokémon cards.
	Level *string `json:"level,omitempty"`

	// HP is the hit points as printed (a string on the wire).
	HP *string `json:"hp,omitempty"`

	// Types are the energy types, such as Fire or Water.
	Types []string `json:"types,omitzero"`

	EvolvesFrom *string  `json:"evolvesFrom,omitempty"`
	EvolvesTo   []string `json:"evolvesTo,omitzero"`

	// Rules such as VMAX or Mega rules and trainer card text.
	Rules []string `json:"rules,omitzero"`

	AncientTrait *AncientTrait `json:"ancientTrait,omitempty"`
	Abilities    []Ability     `json:"abilities,omitzero"`
	Attacks      []Attack      `json:"attacks,omitzero"`
	Weaknesses   []Weakness    `json:"weaknesses,omitzero"`
	Resistances  []Resistance  `json:"resistances,omitzero"`

	// RetreatCost lists one energy type per unit of cost.
	RetreatCost []string `json:"retreatCost,omitzero"`

	// ConvertedRetreatCost is len(RetreatCost) as reported by the server.
	ConvertedRetreatCost *int `json:"convertedRetreatCost,omitempty"`

	// Set is the set the card was printed in.
	Set Set `json:"set"`

	Number     *string `json:"number,omitempty"`
	Artist     *string `json:"artist,omitempty"`
	Rarity     *string `json:"rarity,omitempty"`
	FlavorText *string `json:"flavorText,omitempty"`

	NationalPokedexNumbers []int `json:"nationalPokedexNumbers,omitzero"`

	// Legalities lists only the formats in which the card is legal or banned.
	Legalities *Legality `json:"legalities,omitempty"`

	// RegulationMark is the tournament letter introduced with Sword & Shield.
	RegulationMark *string `json:"regulationMark,omitempty"`

	Images *CardImages `json:"images,omitempty"`

	// TCGPlayer prices are in US dollars.
	TCGPlayer *TCGPlayer `json:"tcgplayer,omitempty"`

	// CardMarket prices are in euros.
	CardMarket *CardMarket `json:"cardmarket,omitempty"`
}

// UnmarshalJSON accepts both the camelCase and snake_case field names.
func (c *Card) UnmarshalJSON(data []byte) error {
	return decodeAliased(data, c)
}

// AncientTrait is the ancient trait printed on some XY era cards.
type AncientTrait struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Ability is a Pokémon ability or Poké-Power/Poké-Body.
type Ability struct {
	Name string `json:"name"`
	Text string `json:"text"`

	// Type is e.g. "Ability" or "Pokémon-Power".
	Type string `json:"type"`
}

// Attack is one attack of a Pokémon card.
type Attack struct {
	// Cost lists the energy types required.
	Cost   []string `json:"cost"`
	Name   string   `json:"name"`
	Text   string   `json:"text"`
	Damage string   `json:"damage"`

	ConvertedEnergyCost *int `json:"convertedEnergyCost,omitempty"`
}

// Weakness is a type the card is weak against.
type Weakness struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Resistance is a type the card resists.
type Resistance struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// CardImages holds the card image URLs.
type CardImages struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

// Legality lists a card or set status per format. A format the card is not
// legal in is absent, not empty.
type Legality struct {
	Standard  *string `json:"standard,omitempty"`
	Expanded  *string `json:"expanded,omitempty"`
	Unlimited *string `json:"unlimited,omitempty"`
}
