package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/praxiotech/resto-insights/pkg/apperrors"
	"github.com/praxiotech/resto-insights/pkg/coerce"
	"github.com/praxiotech/resto-insights/pkg/cuisine"
	"github.com/praxiotech/resto-insights/pkg/models"
	"github.com/praxiotech/resto-insights/pkg/tabular"
)

// Candidate header spellings, in priority order, for the columns the loaders
// resolve. Portal exports disagree on casing and naming; resolution is
// case-insensitive and first-match-wins.
var (
	nameCandidates        = []string{"name"}
	ratingCandidates      = []string{"rating"}
	reviewCountCandidates = []string{"review_count", "review_co", "reviews", "rev_count"}
	districtCandidates    = []string{"district"}
	priceCandidates       = []string{"price"}
	joinKeyCandidates     = []string{"page_url", "url", "link"}
	websiteCandidates     = []string{"website"}
	phoneCandidates       = []string{"phone"}
	addressCandidates     = []string{"address"}
)

// RestaurantLoader turns a raw restaurant table into a normalized
// RestaurantSet. Missing optional columns are filled with defaults; only a
// missing name column is a hard failure.
type RestaurantLoader struct {
	logger *zap.Logger
}

// NewRestaurantLoader creates a RestaurantLoader.
func NewRestaurantLoader(logger *zap.Logger) *RestaurantLoader {
	return &RestaurantLoader{logger: logger.Named("restaurant-loader")}
}

// Load normalizes the raw table. The output set always carries rating,
// review count, district and price values for every row regardless of the
// source schema.
func (l *RestaurantLoader) Load(t *tabular.Table) (*models.RestaurantSet, error) {
	nameCol, ok := tabular.FindColumn(t, nameCandidates...)
	if !ok {
		return nil, apperrors.ErrMissingNameColumn
	}

	ratingCol, hasRating := tabular.FindColumn(t, ratingCandidates...)
	countCol, hasCount := tabular.FindColumn(t, reviewCountCandidates...)
	districtCol, hasDistrict := tabular.FindColumn(t, districtCandidates...)
	priceCol, hasPrice := tabular.FindColumn(t, priceCandidates...)
	urlCol, hasURL := tabular.FindColumn(t, joinKeyCandidates...)
	websiteCol, _ := tabular.FindColumn(t, websiteCandidates...)
	phoneCol, _ := tabular.FindColumn(t, phoneCandidates...)
	addressCol, _ := tabular.FindColumn(t, addressCandidates...)

	set := &models.RestaurantSet{HasJoinKey: hasURL}
	for _, row := range t.Rows {
		r := models.Restaurant{
			Name:     strings.TrimSpace(row[nameCol]),
			District: models.DefaultDistrict,
			Price:    models.DefaultPrice,
		}
		if hasRating {
			r.RatingN = coerce.Rating(row[ratingCol])
		}
		if hasCount {
			r.ReviewCountN = coerce.Count(row[countCol])
		}
		if hasDistrict && strings.TrimSpace(row[districtCol]) != "" {
			r.District = row[districtCol]
		}
		if hasPrice && strings.TrimSpace(row[priceCol]) != "" {
			r.Price = row[priceCol]
		}
		if hasURL {
			r.PageURL = strings.TrimSpace(row[urlCol])
		}
		if websiteCol != "" {
			r.Website = strings.TrimSpace(row[websiteCol])
		}
		if phoneCol != "" {
			r.Phone = strings.TrimSpace(row[phoneCol])
		}
		if addressCol != "" {
			r.Address = strings.TrimSpace(row[addressCol])
		}
		r.Cuisine = cuisine.Classify(r.Name, r.Address)
		set.Restaurants = append(set.Restaurants, r)
	}

	l.logger.Info("Loaded restaurants",
		zap.Int("rows", len(set.Restaurants)),
		zap.Bool("has_join_key", hasURL),
		zap.Bool("has_rating_column", hasRating),
		zap.Bool("has_review_count_column", hasCount))

	return set, nil
}
