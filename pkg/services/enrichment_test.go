package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/praxiotech/resto-insights/pkg/models"
)

func newTestEnrichment(seed uint64, now time.Time) *EnrichmentEngine {
	e := NewEnrichmentEngine(seed, zap.NewNop())
	e.now = func() time.Time { return now }
	return e
}

func TestEnrich_ResponseRateFromJoinedReviews(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	restaurants := &models.RestaurantSet{
		HasJoinKey: true,
		Restaurants: []models.Restaurant{
			{Name: "A", PageURL: "https://x/a", RatingN: 4.0},
			{Name: "B", PageURL: "https://x/b", RatingN: 3.5},
		},
	}
	reviews := &models.ReviewSet{
		HasJoinKey:        true,
		HasDateColumn:     true,
		HasResponseColumn: true,
		Reviews: []models.Review{
			{PageURL: "https://x/a", Rating: 5, OwnerResponse: "Danke", NormalizedDate: now.AddDate(0, 0, -10)},
			{PageURL: "https://x/a", Rating: 3, OwnerResponse: "", NormalizedDate: now.AddDate(0, 0, -200)},
			{PageURL: "https://x/a", Rating: 4, OwnerResponse: "", NormalizedDate: now.AddDate(0, 0, -120)},
			{PageURL: "https://x/b", Rating: 2, OwnerResponse: "Sorry", NormalizedDate: now.AddDate(0, 0, -30)},
		},
	}

	newTestEnrichment(42, now).Enrich(restaurants, reviews)

	a := restaurants.Restaurants[0]
	require.InDelta(t, 1.0/3.0, a.ResponseRate, 1e-9)
	// mean rating 4 -> (4-1)/4*100
	assert.InDelta(t, 75.0, a.Sentiment, 1e-9)
	// one review <90d (0.7) plus two <180d (incl. the fresh one) (2*0.3), over 3
	assert.InDelta(t, (0.7+2*0.3)/3, a.RecencyScore, 1e-9)

	b := restaurants.Restaurants[1]
	assert.InDelta(t, 1.0, b.ResponseRate, 1e-9)
	assert.InDelta(t, 25.0, b.Sentiment, 1e-9)
	// single fresh review counts for both windows, capped at 1.0
	assert.InDelta(t, 1.0, b.RecencyScore, 1e-9)
}

func TestEnrich_NoMatchingReviewsUsesFallbacks(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	restaurants := &models.RestaurantSet{
		HasJoinKey: true,
		Restaurants: []models.Restaurant{
			{Name: "Lonely", PageURL: "https://x/lonely", RatingN: 4.5},
			{Name: "NoURL", PageURL: "", RatingN: 3.0},
		},
	}
	reviews := &models.ReviewSet{
		HasJoinKey:        true,
		HasResponseColumn: true,
		Reviews:           []models.Review{{PageURL: "https://x/other", Rating: 5}},
	}

	newTestEnrichment(42, now).Enrich(restaurants, reviews)

	for _, r := range restaurants.Restaurants {
		assert.Equal(t, 0.0, r.ResponseRate, r.Name)
		assert.Equal(t, 0.5, r.RecencyScore, r.Name)
	}
	// sentiment falls back to the restaurant's own star rating rescaled
	assert.InDelta(t, 87.5, restaurants.Restaurants[0].Sentiment, 1e-9)
	assert.InDelta(t, 50.0, restaurants.Restaurants[1].Sentiment, 1e-9)
}

func TestEnrich_ResponseColumnAbsentMeansZeroRate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	restaurants := &models.RestaurantSet{
		HasJoinKey:  true,
		Restaurants: []models.Restaurant{{Name: "A", PageURL: "https://x/a", RatingN: 4.0}},
	}
	reviews := &models.ReviewSet{
		HasJoinKey: true,
		Reviews:    []models.Review{{PageURL: "https://x/a", Rating: 4, NormalizedDate: now.AddDate(0, 0, -10)}},
	}

	newTestEnrichment(42, now).Enrich(restaurants, reviews)
	assert.Equal(t, 0.0, restaurants.Restaurants[0].ResponseRate)
}

func TestEnrich_SyntheticModeWhenNoJoinKey(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	build := func() *models.RestaurantSet {
		return &models.RestaurantSet{
			HasJoinKey: false,
			Restaurants: []models.Restaurant{
				{Name: "A", RatingN: 4.5},
				{Name: "B", RatingN: 0},
				{Name: "C", RatingN: 5},
			},
		}
	}
	reviews := &models.ReviewSet{HasJoinKey: true}

	first := build()
	newTestEnrichment(42, now).Enrich(first, reviews)

	for _, r := range first.Restaurants {
		assert.Greater(t, r.ResponseRate, 0.0, r.Name)
		assert.Less(t, r.ResponseRate, 1.0, r.Name)
		assert.Equal(t, 0.5, r.RecencyScore, r.Name)
	}
	// unparseable rating (0) must not produce negative sentiment
	assert.Equal(t, 0.0, first.Restaurants[1].Sentiment)
	assert.InDelta(t, 100.0, first.Restaurants[2].Sentiment, 1e-9)

	// same seed, same draws
	second := build()
	newTestEnrichment(42, now).Enrich(second, reviews)
	for i := range first.Restaurants {
		assert.Equal(t, first.Restaurants[i].ResponseRate, second.Restaurants[i].ResponseRate)
	}

	// different seed, different draws
	third := build()
	newTestEnrichment(7, now).Enrich(third, reviews)
	assert.NotEqual(t, first.Restaurants[0].ResponseRate, third.Restaurants[0].ResponseRate)
}

func TestEnrich_SignalsAlwaysPopulated(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	restaurants := &models.RestaurantSet{
		HasJoinKey:  true,
		Restaurants: []models.Restaurant{{Name: "A", PageURL: "https://x/a", RatingN: 4.2}},
	}
	// review table resolved no join key at all: whole cohort synthetic
	reviews := &models.ReviewSet{HasJoinKey: false}

	newTestEnrichment(42, now).Enrich(restaurants, reviews)

	r := restaurants.Restaurants[0]
	assert.GreaterOrEqual(t, r.ResponseRate, 0.0)
	assert.LessOrEqual(t, r.ResponseRate, 1.0)
	assert.GreaterOrEqual(t, r.Sentiment, 0.0)
	assert.LessOrEqual(t, r.Sentiment, 100.0)
	assert.Equal(t, 0.5, r.RecencyScore)
}
