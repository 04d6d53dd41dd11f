package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxiotech/resto-insights/pkg/models"
	"github.com/praxiotech/resto-insights/pkg/tabular"
)

// DatasetService is the load entry point: it reads the restaurant and review
// files, normalizes and enriches them, and computes the cohort benchmarks.
// The returned Dataset is immutable; the only errors that escape are
// unreadable source files.
type DatasetService struct {
	restaurants *RestaurantLoader
	reviews     *ReviewLoader
	enrichment  *EnrichmentEngine
	logger      *zap.Logger
}

// NewDatasetService creates a DatasetService. seed drives the synthetic
// enrichment fallback.
func NewDatasetService(seed uint64, logger *zap.Logger) *DatasetService {
	return &DatasetService{
		restaurants: NewRestaurantLoader(logger),
		reviews:     NewReviewLoader(logger),
		enrichment:  NewEnrichmentEngine(seed, logger),
		logger:      logger.Named("dataset"),
	}
}

// Load reads both files and assembles a fully enriched, benchmarked dataset.
// reviewsPath may be empty, in which case enrichment runs in synthetic mode
// over an empty review table.
func (s *DatasetService) Load(restaurantsPath, reviewsPath string) (*models.Dataset, error) {
	restTable, err := tabular.ReadFile(restaurantsPath)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}
	restaurants, err := s.restaurants.Load(restTable)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}

	reviews := &models.ReviewSet{}
	if reviewsPath != "" {
		revTable, err := tabular.ReadFile(reviewsPath)
		if err != nil {
			return nil, fmt.Errorf("load reviews: %w", err)
		}
		reviews = s.reviews.Load(revTable)
	}

	s.enrichment.Enrich(restaurants, reviews)

	ds := &models.Dataset{
		ID:          uuid.New(),
		LoadedAt:    time.Now(),
		Restaurants: restaurants,
		Reviews:     reviews,
		Benchmarks:  ComputeBenchmarks(restaurants),
	}

	s.logger.Info("Dataset loaded",
		zap.String("dataset_id", ds.ID.String()),
		zap.Int("restaurants", len(restaurants.Restaurants)),
		zap.Int("reviews", len(reviews.Reviews)))

	return ds, nil
}
