package services

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/praxiotech/resto-insights/pkg/coerce"
	"github.com/praxiotech/resto-insights/pkg/models"
	"github.com/praxiotech/resto-insights/pkg/tabular"
)

var (
	reviewDateCandidates   = []string{"review_date", "reviewer_data", "date", "review_time"}
	reviewRatingCandidates = []string{"review_rating", "review_c", "rating", "stars"}
	responseCandidates     = []string{"owner_response", "owner_response_content"}
)

// ReviewLoader turns a raw review table into a normalized ReviewSet. A table
// with no date column stamps every review with the load time, a deliberately
// coarse treat-as-freshly-seen default.
type ReviewLoader struct {
	logger *zap.Logger

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewReviewLoader creates a ReviewLoader.
func NewReviewLoader(logger *zap.Logger) *ReviewLoader {
	return &ReviewLoader{logger: logger.Named("review-loader"), now: time.Now}
}

// Load normalizes the raw review table.
func (l *ReviewLoader) Load(t *tabular.Table) *models.ReviewSet {
	dateCol, hasDate := tabular.FindColumn(t, reviewDateCandidates...)
	ratingCol, hasRating := tabular.FindColumn(t, reviewRatingCandidates...)
	urlCol, hasURL := tabular.FindColumn(t, joinKeyCandidates...)
	respCol, hasResp := tabular.FindColumn(t, responseCandidates...)

	loadTime := l.now()
	set := &models.ReviewSet{
		HasJoinKey:        hasURL,
		HasDateColumn:     hasDate,
		HasResponseColumn: hasResp,
	}

	for _, row := range t.Rows {
		rv := models.Review{
			NormalizedDate: loadTime,
			Rating:         models.DefaultReviewRating,
		}
		if hasDate {
			rv.NormalizedDate = coerce.GermanDate(row[dateCol], loadTime)
		}
		if hasRating {
			if v, err := strconv.ParseFloat(strings.TrimSpace(row[ratingCol]), 64); err == nil {
				rv.Rating = v
			}
		}
		if hasURL {
			rv.PageURL = strings.TrimSpace(row[urlCol])
		}
		if hasResp {
			rv.OwnerResponse = strings.TrimSpace(row[respCol])
		}
		set.Reviews = append(set.Reviews, rv)
	}

	l.logger.Info("Loaded reviews",
		zap.Int("rows", len(set.Reviews)),
		zap.Bool("has_join_key", hasURL),
		zap.Bool("has_date_column", hasDate),
		zap.Bool("has_response_column", hasResp))

	return set
}
