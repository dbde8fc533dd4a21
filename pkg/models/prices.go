package models

// TCGPlayer is the TCGPlayer market information for a card.
type TCGPlayer struct {
	// URL of the store page.
	URL string `json:"url"`

	// UpdatedAt uses the format YYYY/MM/DD.
	UpdatedAt *string `json:"updatedAt,omitempty"`

	// Prices is keyed by print variant: normal, holofoil, reverseHolofoil,
	// 1stEditionHolofoil, 1stEditionNormal.
	Prices map[string]TCGPlayerPrices `json:"prices,omitzero"`
}

// TCGPlayerPrices are the US dollar prices of one print variant.
type TCGPlayerPrices struct {
	Low       *float64 `json:"low,omitempty"`
	Mid       *float64 `json:"mid,omitempty"`
	High      *float64 `json:"high,omitempty"`
	Market    *float64 `json:"market,omitempty"`
	DirectLow *float64 `json:"directLow,omitempty"`
}

// CardMarket is the cardmarket information for a card.
type CardMarket struct {
	URL       string            `json:"url"`
	UpdatedAt *string           `json:"updatedAt,omitempty"`
	Prices    *CardMarketPrices `json:"prices,omitempty"`
}

// CardMarketPrices are euro prices as published by cardmarket.
type CardMarketPrices struct {
	AverageSellPrice *float64 `json:"averageSellPrice,omitempty"`
	LowPrice         *float64 `json:"lowPrice,omitempty"`
	TrendPrice       *float64 `json:"trendPrice,omitempty"`
	GermanProLow     *float64 `json:"germanProLow,omitempty"`
	SuggestedPrice   *float64 `json:"suggestedPrice,omitempty"`
	ReverseHoloSell  *float64 `json:"reverseHoloSell,omitempty"`
	ReverseHoloLow   *float64 `json:"reverseHoloLow,omitempty"`
	ReverseHoloTrend *float64 `json:"reverseHoloTrend,omitempty"`
	LowPriceExPlus   *float64 `json:"lowPriceExPlus,omitempty"`
	Avg1             *float64 `json:"avg1,omitempty"`
	Avg7             *float64 `json:"avg7,omitempty"`
	Avg30            *float64 `json:"avg30,omitempty"`
	ReverseHoloAvg1  *float64 `json:"reverseHoloAvg1,omitempty"`
	ReverseHoloAvg7  *float64 `json:"reverseHoloAvg7,omitempty"`
	ReverseHoloAvg30 *float64 `json:"reverseHoloAvg30,omitempty"`
}
