package services

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/praxiotech/resto-insights/pkg/models"
)

// Fixed industry standards used as benchmarks regardless of the cohort.
const (
	benchmarkResponseRate = 0.90
	benchmarkRecency      = 0.70
)

// ComputeBenchmarks derives the cohort-wide reference points from the
// enriched restaurant set. Pure aggregation, deterministic for a given set.
// An empty cohort yields zero aggregates with the fixed standards intact.
func ComputeBenchmarks(restaurants *models.RestaurantSet) models.Benchmarks {
	b := models.Benchmarks{
		ResponseRate: benchmarkResponseRate,
		Recency:      benchmarkRecency,
	}
	if len(restaurants.Restaurants) == 0 {
		return b
	}

	ratings := make([]float64, len(restaurants.Restaurants))
	counts := make([]float64, len(restaurants.Restaurants))
	for i, r := range restaurants.Restaurants {
		ratings[i] = r.RatingN
		counts[i] = float64(r.ReviewCountN)
	}

	b.TopRating = floats.Max(ratings)
	b.AvgRating = stat.Mean(ratings, nil)

	sort.Float64s(ratings)
	sort.Float64s(counts)
	b.Rating = stat.Quantile(0.75, stat.LinInterp, ratings, nil)
	b.ReviewVolume = stat.Quantile(0.75, stat.LinInterp, counts, nil)
	b.MedianReviews = stat.Quantile(0.5, stat.LinInterp, counts, nil)

	return b
}
