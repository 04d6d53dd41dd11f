package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/praxiotech/resto-insights/pkg/models"
)

func TestPersona_TierSelection(t *testing.T) {
	engine := newTestScoring(42, time.Now())

	tests := []struct {
		name        string
		rating      float64
		price       string
		wantPrimary string
	}{
		{name: "upscale by rating", rating: 4.8, price: "20-30", wantPrimary: "The Upscale Experience Seeker"},
		{name: "upscale by price marker", rating: 4.0, price: "Mehr als 40", wantPrimary: "The Upscale Experience Seeker"},
		{name: "established", rating: 4.5, price: "20-30", wantPrimary: "The Dinner Date Romantic"},
		{name: "boundary upscale", rating: 4.7, price: "", wantPrimary: "The Upscale Experience Seeker"},
		{name: "boundary established", rating: 4.4, price: "", wantPrimary: "The Dinner Date Romantic"},
		{name: "explorer", rating: 4.2, price: "10-20", wantPrimary: "The Curious Explorer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := singleRestaurantSet(models.Restaurant{
				Name: "T", RatingN: tt.rating, Price: tt.price, ReviewCountN: 250, ResponseRate: 0.2,
			})
			p := engine.Persona("T", set)
			assert.Equal(t, tt.wantPrimary, p.Primary)
			assert.NotEmpty(t, p.Segment)
			assert.NotEmpty(t, p.Motivation)
		})
	}
}

func TestPersona_PitchInterpolation(t *testing.T) {
	engine := newTestScoring(42, time.Now())
	set := singleRestaurantSet(models.Restaurant{
		Name: "Taverna Mythos", RatingN: 4.8, ReviewCountN: 1234, ResponseRate: 0.25, Price: "20-30",
	})

	p := engine.Persona("Taverna Mythos", set)

	assert.Contains(t, p.PitchEN, "Taverna Mythos")
	assert.Contains(t, p.PitchEN, "4.8")
	assert.Contains(t, p.PitchEN, "1,234")
	assert.Contains(t, p.PitchEN, "25%")
	assert.Contains(t, p.PitchDE, "Taverna Mythos")
	assert.Contains(t, p.PitchDE, "4.8")
}

func TestPersona_UnknownRestaurantUsesNeutralDefaults(t *testing.T) {
	engine := newTestScoring(42, time.Now())

	p := engine.Persona("Niemand", &models.RestaurantSet{})

	// rating 4.0 and mid-tier price land in the explorer tier
	assert.Equal(t, "The Curious Explorer", p.Primary)
	assert.Contains(t, p.PitchEN, "Niemand")
	assert.Contains(t, p.PitchEN, "4.0")
	assert.Contains(t, p.PitchEN, "100")
}
