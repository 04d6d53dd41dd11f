package services

import (
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/praxiotech/resto-insights/pkg/models"
)

// Composite weights per dimension. Fixed design constants; individual
// dimensions are clamped to 100 before combination, so over-cap contributions
// are lost and balanced restaurants outscore single-metric extremes.
const (
	weightReputation      = 0.30
	weightResponsiveness  = 0.25
	weightDigitalPresence = 0.20
	weightIntelligence    = 0.15
	weightVisibility      = 0.10
)

// Market standards for gap analysis. The reputation standard is cohort
// derived (benchmark rating rescaled from 0-5 to 0-100); the rest are fixed.
const (
	standardResponsiveness  = 90.0
	standardDigitalPresence = 85.0
	standardIntelligence    = 75.0
	standardVisibility      = 70.0
)

const momentumMonths = 13

// ScoringEngine computes per-restaurant dimension scores, gap analysis,
// review momentum, lead flags and customer personas over an already loaded
// dataset. Every operation is read-only and safe to call concurrently; every
// operation returns a displayable value, resolving lookup failures to
// documented defaults instead of errors.
type ScoringEngine struct {
	logger *zap.Logger

	// seed drives the synthetic momentum counts, kept explicit for
	// reproducibility.
	seed uint64

	now func() time.Time
}

// NewScoringEngine creates a ScoringEngine with the given fallback seed.
func NewScoringEngine(seed uint64, logger *zap.Logger) *ScoringEngine {
	return &ScoringEngine{
		logger: logger.Named("scoring"),
		seed:   seed,
		now:    time.Now,
	}
}

// DimensionScores computes the five weighted dimension scores and their
// composite for the named restaurant. An unknown name yields all zeros.
func (s *ScoringEngine) DimensionScores(name string, restaurants *models.RestaurantSet) models.DimensionScores {
	r, ok := restaurants.ByName(name)
	if !ok {
		s.logger.Debug("Restaurant not found for scoring", zap.String("name", name))
		return models.DimensionScores{}
	}

	reputation := round1(math.Min(r.RatingN/5*70+math.Min(float64(r.ReviewCountN)/500, 1)*30, 100))
	responsiveness := round1(math.Min(r.ResponseRate*100, 100))
	digital := round1(math.Min(digitalPresenceRaw(r), 100))
	intelligence := round1(math.Min(r.Sentiment, 100))
	visibility := round1(math.Min(r.RecencyScore*100, 100))

	composite := reputation*weightReputation +
		responsiveness*weightResponsiveness +
		digital*weightDigitalPresence +
		intelligence*weightIntelligence +
		visibility*weightVisibility

	return models.DimensionScores{
		Reputation:      reputation,
		Responsiveness:  responsiveness,
		DigitalPresence: digital,
		Intelligence:    intelligence,
		Visibility:      visibility,
		Composite:       round1(composite),
	}
}

// digitalPresenceRaw scores the restaurant's digital footprint: website,
// phone, a flat base for having a listing at all, and a price-tier bonus.
func digitalPresenceRaw(r *models.Restaurant) float64 {
	score := 10.0
	if r.Website != "" {
		score = 50
	}
	if r.Phone != "" {
		score += 25
	}
	score += 15
	score += priceBonus(r.Price)
	return score
}

// priceBonus rewards the upscale tier marker, then the mid-tier token, and
// treats anything else (including missing price data) as the low default.
func priceBonus(price string) float64 {
	switch {
	case strings.Contains(price, "Mehr"):
		return 10
	case strings.Contains(price, "20"):
		return 5
	default:
		return 2
	}
}

// GapAnalysis returns per-dimension distance to the market standard, largest
// shortfall first. Positive means underperforming the standard.
func (s *ScoringEngine) GapAnalysis(scores models.DimensionScores, benchmarks models.Benchmarks) []models.GapEntry {
	gaps := []models.GapEntry{
		{Dimension: models.DimReputation, Gap: round1(benchmarks.Rating*20 - scores.Reputation)},
		{Dimension: models.DimResponsiveness, Gap: round1(standardResponsiveness - scores.Responsiveness)},
		{Dimension: models.DimDigitalPresence, Gap: round1(standardDigitalPresence - scores.DigitalPresence)},
		{Dimension: models.DimIntelligence, Gap: round1(standardIntelligence - scores.Intelligence)},
		{Dimension: models.DimVisibility, Gap: round1(standardVisibility - scores.Visibility)},
	}
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Gap > gaps[j].Gap })
	return gaps
}

// Momentum returns the monthly review-volume series for the named restaurant:
// at most 13 months, chronologically ascending. Reviews are matched by
// substring search of the name's first token against the join key values.
// Whenever real data cannot be derived (no join key column, no date column,
// no matching reviews) a synthetic series of the same shape is returned;
// momentum is a visualization aid and never fails.
func (s *ScoringEngine) Momentum(name string, reviews *models.ReviewSet) []models.MomentumPoint {
	if reviews == nil || !reviews.HasJoinKey || !reviews.HasDateColumn {
		return s.syntheticMomentum()
	}

	fragment := ""
	if fields := strings.Fields(name); len(fields) > 0 {
		fragment = fields[0]
	}

	counts := make(map[time.Time]int)
	matched := false
	for _, rv := range reviews.Reviews {
		if !strings.Contains(rv.PageURL, fragment) {
			continue
		}
		matched = true
		month := time.Date(rv.NormalizedDate.Year(), rv.NormalizedDate.Month(), 1, 0, 0, 0, 0, rv.NormalizedDate.Location())
		counts[month]++
	}
	if !matched {
		return s.syntheticMomentum()
	}

	series := make([]models.MomentumPoint, 0, len(counts))
	for month, count := range counts {
		series = append(series, models.MomentumPoint{Month: month, Count: count})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month.Before(series[j].Month) })
	if len(series) > momentumMonths {
		series = series[len(series)-momentumMonths:]
	}
	return series
}

// syntheticMomentum builds 13 consecutive month starts ending at the current
// month with Poisson(3.5) counts from the seeded source.
func (s *ScoringEngine) syntheticMomentum() []models.MomentumPoint {
	poisson := distuv.Poisson{Lambda: 3.5, Src: rand.NewPCG(s.seed, 0)}
	now := s.now()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	series := make([]models.MomentumPoint, 0, momentumMonths)
	for i := momentumMonths - 1; i >= 0; i-- {
		series = append(series, models.MomentumPoint{
			Month: current.AddDate(0, -i, 0),
			Count: int(poisson.Rand()),
		})
	}
	return series
}

// SilentWinner reports whether the named restaurant is a high-quality,
// low-engagement lead: strong rating, poor review-response rate. Unknown
// names are not flagged.
func (s *ScoringEngine) SilentWinner(name string, restaurants *models.RestaurantSet) bool {
	r, ok := restaurants.ByName(name)
	if !ok {
		return false
	}
	return r.RatingN >= 4.5 && r.ResponseRate < 0.30
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
