package models

// Restaurant is one establishment row after normalization and enrichment.
// RatingN, ReviewCountN, District and Price are always populated by the
// loader; the three reputation signals are always populated by enrichment,
// via documented fallbacks when review linkage is missing.
type Restaurant struct {
	Name         string  `json:"name"`
	PageURL      string  `json:"page_url,omitempty"`
	Address      string  `json:"address,omitempty"`
	Website      string  `json:"website,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	RatingN      float64 `json:"rating_n"`
	ReviewCountN int     `json:"rev_count_n"`
	District     string  `json:"district"`
	Price        string  `json:"price"`
	Cuisine      string  `json:"cuisine"`

	// Enrichment signals.
	ResponseRate float64 `json:"res_rate"`      // [0,1]
	Sentiment    float64 `json:"sentiment"`     // [0,100]
	RecencyScore float64 `json:"recency_score"` // [0,1]
}

// RestaurantSet is the normalized restaurant table. HasJoinKey records
// whether the source had a URL-like column at all; without one on both sides
// no review join is attempted for any restaurant.
type RestaurantSet struct {
	Restaurants []Restaurant
	HasJoinKey  bool
}

// ByName returns the restaurant with the exact given name.
func (s *RestaurantSet) ByName(name string) (*Restaurant, bool) {
	for i := range s.Restaurants {
		if s.Restaurants[i].Name == name {
			return &s.Restaurants[i], true
		}
	}
	return nil, false
}

// Loader defaults for restaurants missing the optional columns.
const (
	DefaultDistrict = "Frankfurt City"
	DefaultPrice    = "20-30"
)
