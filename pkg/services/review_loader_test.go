package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/praxiotech/resto-insights/pkg/tabular"
)

func newTestReviewLoader(now time.Time) *ReviewLoader {
	l := NewReviewLoader(zap.NewNop())
	l.now = func() time.Time { return now }
	return l
}

func TestReviewLoader_NormalizesDatesAndRatings(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	table := &tabular.Table{
		Headers: []string{"Review_Date", "Review_Rating", "Page_URL", "Owner_Response"},
		Rows: []tabular.Row{
			{"Review_Date": "vor 3 Monaten", "Review_Rating": "4", "Page_URL": "https://example.com/a", "Owner_Response": "Danke!"},
			{"Review_Date": "gestern", "Review_Rating": "nicht lesbar", "Page_URL": "https://example.com/a", "Owner_Response": ""},
		},
	}

	set := newTestReviewLoader(now).Load(table)
	require.Len(t, set.Reviews, 2)
	assert.True(t, set.HasJoinKey)
	assert.True(t, set.HasDateColumn)
	assert.True(t, set.HasResponseColumn)

	assert.Equal(t, now.AddDate(0, 0, -90), set.Reviews[0].NormalizedDate)
	assert.Equal(t, 4.0, set.Reviews[0].Rating)
	assert.Equal(t, "Danke!", set.Reviews[0].OwnerResponse)

	assert.Equal(t, now.AddDate(0, 0, -1), set.Reviews[1].NormalizedDate)
	// non-numeric rating falls back to the neutral default
	assert.Equal(t, 5.0, set.Reviews[1].Rating)
}

func TestReviewLoader_NoDateColumnStampsLoadTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	table := &tabular.Table{
		Headers: []string{"Stars"},
		Rows:    []tabular.Row{{"Stars": "3"}, {"Stars": "5"}},
	}

	set := newTestReviewLoader(now).Load(table)
	assert.False(t, set.HasDateColumn)
	for _, rv := range set.Reviews {
		assert.Equal(t, now, rv.NormalizedDate)
	}
}

func TestReviewLoader_RatingColumnPriority(t *testing.T) {
	// review_rating wins over a generic rating column when both exist
	table := &tabular.Table{
		Headers: []string{"Rating", "Review_Rating"},
		Rows:    []tabular.Row{{"Rating": "1", "Review_Rating": "4"}},
	}

	set := newTestReviewLoader(time.Now()).Load(table)
	assert.Equal(t, 4.0, set.Reviews[0].Rating)
}
