package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/praxiotech/resto-insights/pkg/apperrors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDatasetService_LoadEndToEnd(t *testing.T) {
	dir := t.TempDir()
	restPath := writeFile(t, dir, "restaurants.csv",
		"Name,Rating,Review_Count\nTest,\"4,5\",100\n")

	svc := NewDatasetService(42, zap.NewNop())
	ds, err := svc.Load(restPath, "")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, ds.ID)
	require.Len(t, ds.Restaurants.Restaurants, 1)

	r := ds.Restaurants.Restaurants[0]
	assert.Equal(t, 4.5, r.RatingN)
	assert.Equal(t, 100, r.ReviewCountN)
	// no review linkage: synthetic enrichment still populates every signal
	assert.Greater(t, r.ResponseRate, 0.0)
	assert.Equal(t, 0.5, r.RecencyScore)

	// single-restaurant cohort: the benchmarks collapse onto its values
	assert.Equal(t, 4.5, ds.Benchmarks.TopRating)
	assert.Equal(t, 4.5, ds.Benchmarks.AvgRating)
	assert.Equal(t, 0.90, ds.Benchmarks.ResponseRate)

	// with no join key, Reputation = 4.5/5*70 + min(100/500,1)*30 = 69.0
	scoring := NewScoringEngine(42, zap.NewNop())
	scores := scoring.DimensionScores("Test", ds.Restaurants)
	assert.Equal(t, 69.0, scores.Reputation)
}

func TestDatasetService_LoadWithReviews(t *testing.T) {
	dir := t.TempDir()
	restPath := writeFile(t, dir, "restaurants.csv",
		"Name,Rating,Review_Count,Page_URL\nTaverna,\"4,6\",200,https://x/taverna\n")
	revPath := writeFile(t, dir, "reviews.csv",
		"Page_URL,Review_Date,Review_Rating,Owner_Response\n"+
			"https://x/taverna,heute,5,Danke\n"+
			"https://x/taverna,vor 2 Monaten,3,\n")

	ds, err := NewDatasetService(42, zap.NewNop()).Load(restPath, revPath)
	require.NoError(t, err)

	r := ds.Restaurants.Restaurants[0]
	assert.InDelta(t, 0.5, r.ResponseRate, 1e-9)
	// mean rating 4 -> 75 on the 0-100 scale
	assert.InDelta(t, 75.0, r.Sentiment, 1e-9)
	// both reviews within 90 days: 0.7 + 0.3, capped at 1.0
	assert.InDelta(t, 1.0, r.RecencyScore, 1e-9)
}

func TestDatasetService_UnreadableFileSurfaces(t *testing.T) {
	svc := NewDatasetService(42, zap.NewNop())

	_, err := svc.Load(filepath.Join(t.TempDir(), "missing.csv"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnreadableFile)

	dir := t.TempDir()
	restPath := writeFile(t, dir, "restaurants.csv", "Name\nTest\n")
	_, err = svc.Load(restPath, filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnreadableFile)
}
