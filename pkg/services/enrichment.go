package services

import (
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/praxiotech/resto-insights/pkg/models"
)

// EnrichmentEngine joins restaurants to their reviews over the URL join key
// and derives the three reputation signals: response rate, sentiment and
// recency. When either table lacks a join key column, no join is attempted
// for any restaurant and the whole cohort runs on synthetic fallbacks.
type EnrichmentEngine struct {
	logger *zap.Logger

	// seed drives the Beta(2,3) response-rate fallback so runs are
	// reproducible. The drawn values are display filler, not a business
	// signal; they only exist so downstream views have plausible variance
	// when no review linkage is available.
	seed uint64

	now func() time.Time
}

// NewEnrichmentEngine creates an EnrichmentEngine with the given fallback
// seed.
func NewEnrichmentEngine(seed uint64, logger *zap.Logger) *EnrichmentEngine {
	return &EnrichmentEngine{
		logger: logger.Named("enrichment"),
		seed:   seed,
		now:    time.Now,
	}
}

// Enrich populates ResponseRate, Sentiment and RecencyScore on every
// restaurant in the set. All three are always set; insufficient data resolves
// to the documented neutral defaults, never to a missing value.
func (e *EnrichmentEngine) Enrich(restaurants *models.RestaurantSet, reviews *models.ReviewSet) {
	joinable := restaurants.HasJoinKey && reviews.HasJoinKey
	if !joinable {
		e.enrichSynthetic(restaurants)
		return
	}

	byURL := make(map[string][]*models.Review)
	for i := range reviews.Reviews {
		rv := &reviews.Reviews[i]
		byURL[rv.PageURL] = append(byURL[rv.PageURL], rv)
	}

	now := e.now()
	cutoff90 := now.AddDate(0, 0, -90)
	cutoff180 := now.AddDate(0, 0, -180)

	matchedTotal := 0
	for i := range restaurants.Restaurants {
		r := &restaurants.Restaurants[i]
		matched := byURL[r.PageURL]
		if r.PageURL == "" || len(matched) == 0 {
			r.ResponseRate = 0.0
			r.Sentiment = rescaleRating(r.RatingN)
			r.RecencyScore = 0.5
			continue
		}
		matchedTotal += len(matched)

		r.ResponseRate = responseRate(matched, reviews.HasResponseColumn)
		r.Sentiment = rescaleRating(meanRating(matched))
		r.RecencyScore = recencyScore(matched, cutoff90, cutoff180)
	}

	e.logger.Info("Enriched restaurants from joined reviews",
		zap.Int("restaurants", len(restaurants.Restaurants)),
		zap.Int("matched_reviews", matchedTotal))
}

// enrichSynthetic covers the no-join-possible mode: response rate drawn from
// a seeded Beta(2,3), sentiment from the restaurant's own star rating, and a
// neutral recency.
func (e *EnrichmentEngine) enrichSynthetic(restaurants *models.RestaurantSet) {
	beta := distuv.Beta{Alpha: 2, Beta: 3, Src: rand.NewPCG(e.seed, 0)}
	for i := range restaurants.Restaurants {
		r := &restaurants.Restaurants[i]
		r.ResponseRate = beta.Rand()
		r.Sentiment = rescaleRating(r.RatingN)
		r.RecencyScore = 0.5
	}

	e.logger.Warn("No join key on both tables, enrichment ran in synthetic mode",
		zap.Int("restaurants", len(restaurants.Restaurants)))
}

// rescaleRating maps a 1-5 star rating onto 0-100, clamped so ratings below 1
// (including the unparseable-rating default 0) do not yield negative
// sentiment.
func rescaleRating(rating float64) float64 {
	return math.Min(math.Max((rating-1)/4*100, 0), 100)
}

func responseRate(matched []*models.Review, hasResponseColumn bool) float64 {
	if !hasResponseColumn {
		return 0.0
	}
	answered := 0
	for _, rv := range matched {
		if rv.OwnerResponse != "" {
			answered++
		}
	}
	return float64(answered) / float64(len(matched))
}

func meanRating(matched []*models.Review) float64 {
	sum := 0.0
	for _, rv := range matched {
		sum += rv.Rating
	}
	return sum / float64(len(matched))
}

func recencyScore(matched []*models.Review, cutoff90, cutoff180 time.Time) float64 {
	n90, n180 := 0, 0
	for _, rv := range matched {
		if rv.NormalizedDate.After(cutoff90) {
			n90++
		}
		if rv.NormalizedDate.After(cutoff180) {
			n180++
		}
	}
	n := float64(len(matched))
	return math.Min((float64(n90)*0.7+float64(n180)*0.3)/n, 1.0)
}
