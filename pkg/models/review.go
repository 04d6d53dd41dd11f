package models

import "time"

// Review is one review row after normalization. PageURL is the join key back
// to a restaurant; it is empty when the source row carried no value.
type Review struct {
	PageURL        string    `json:"page_url,omitempty"`
	NormalizedDate time.Time `json:"normalized_date"`
	Rating         float64   `json:"review_rating"`
	OwnerResponse  string    `json:"owner_response,omitempty"`
}

// DefaultReviewRating is assumed when a review carries no parseable rating.
const DefaultReviewRating = 5.0

// ReviewSet is the normalized review table plus which optional columns the
// source actually had. Column absence is a table-level fact and drives the
// enrichment fallbacks, so it is recorded here rather than per row.
type ReviewSet struct {
	Reviews []Review

	HasJoinKey        bool
	HasDateColumn     bool
	HasResponseColumn bool
}
