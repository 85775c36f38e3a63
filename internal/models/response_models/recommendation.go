package response_models

type PriceOut struct {
	AgeType   string `json:"age_type"`
	PriceText string `json:"price_text"`
}

type OptionOut struct {
	ProductID  string     `json:"product_id"`
	OptionName string     `json:"option_name"`
	Prices     []PriceOut `json:"prices"`
}

// RankedProduct is one recommended product with its price options grouped by
// option name, in first-seen order.
type RankedProduct struct {
	ProductID   string      `json:"product_id"`
	Region      string      `json:"region"`
	ProductName string      `json:"product_name"`
	PlaceType   string      `json:"place_type"`
	Category    string      `json:"category"`
	Options     []OptionOut `json:"options"`
}

type RecommendationResponse struct {
	Products []RankedProduct `json:"products"`
	Report   string          `json:"report,omitempty"`
}
