package models

import "time"

// Benchmarks are cohort-level reference points computed once per load and
// consumed read-only by scoring. ResponseRate and Recency are fixed industry
// standards, not derived from the cohort.
type Benchmarks struct {
	Rating        float64 `json:"rating"`         // 75th percentile of RatingN
	ResponseRate  float64 `json:"response_rate"`  // fixed 0.90
	Recency       float64 `json:"recency"`        // fixed 0.70
	ReviewVolume  float64 `json:"review_volume"`  // 75th percentile of ReviewCountN
	TopRating     float64 `json:"top_rating"`     // max RatingN
	AvgRating     float64 `json:"avg_rating"`     // mean RatingN
	MedianReviews float64 `json:"median_reviews"` // median ReviewCountN
}

// Dimension names used by scoring and gap analysis.
const (
	DimReputation      = "Reputation"
	DimResponsiveness  = "Responsiveness"
	DimDigitalPresence = "Digital Presence"
	DimIntelligence    = "Intelligence"
	DimVisibility      = "Visibility"
)

// DimensionScores holds the five weighted dimension scores and their
// composite, each in [0,100] and rounded to one decimal.
type DimensionScores struct {
	Reputation      float64 `json:"reputation"`
	Responsiveness  float64 `json:"responsiveness"`
	DigitalPresence float64 `json:"digital_presence"`
	Intelligence    float64 `json:"intelligence"`
	Visibility      float64 `json:"visibility"`
	Composite       float64 `json:"composite"`
}

// GapEntry is one dimension's distance to the market standard. A positive gap
// means the restaurant underperforms the standard.
type GapEntry struct {
	Dimension string  `json:"dimension"`
	Gap       float64 `json:"gap"`
}

// MomentumPoint is one month of review volume.
type MomentumPoint struct {
	Month time.Time `json:"month"`
	Count int       `json:"count"`
}

// Persona is the selected customer archetype plus the rendered sales pitch in
// both language variants.
type Persona struct {
	Primary    string `json:"primary"`
	Segment    string `json:"segment"`
	Motivation string `json:"motivation"`
	PitchEN    string `json:"pitch_en"`
	PitchDE    string `json:"pitch_de"`
}
