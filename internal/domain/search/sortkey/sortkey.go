package sortkey

// Key is the result ordering strategy.
type Key string

// Sort key constants.
const (
	// Relevance orders by the combined weighted score.
	Relevance  Key = "relevance"
	Popularity Key = "popularity"
	Recency    Key = "recency"
	Rating     Key = "rating"
	// PriceLow orders by ascending price; PriceHigh by descending.
	PriceLow  Key = "price_low"
	PriceHigh Key = "price_high"
)

// IsValid checks if the key is one of the supported values.
func (k Key) IsValid() bool {
	switch k {
	case Relevance, Popularity, Recency, Rating, PriceLow, PriceHigh:
		return true
	}
	return false
}
