package services

import (
	"sort"
	"strings"

	"github.com/praxiotech/resto-insights/pkg/models"
)

// Filter narrows a restaurant cohort for summary views. Zero value means no
// filtering.
type Filter struct {
	Cuisines  []string // empty = all
	MinRating float64
	Search    string // case-insensitive name substring
}

// CuisineStat aggregates one cuisine segment.
type CuisineStat struct {
	Cuisine   string  `json:"cuisine"`
	Count     int     `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

// Summary holds the cohort overview metrics shown on the dashboard's
// landing view.
type Summary struct {
	Restaurants int           `json:"restaurants"`
	AvgRating   float64       `json:"avg_rating"`
	BestRating  float64       `json:"best_rating"`
	TopCuisine  string        `json:"top_cuisine"`
	Cuisines    []CuisineStat `json:"cuisines"`
}

// ApplyFilter returns the restaurants matching all filter criteria.
func ApplyFilter(restaurants *models.RestaurantSet, f Filter) []models.Restaurant {
	allowed := map[string]bool{}
	for _, c := range f.Cuisines {
		allowed[c] = true
	}
	search := strings.ToLower(f.Search)

	var out []models.Restaurant
	for _, r := range restaurants.Restaurants {
		if len(allowed) > 0 && !allowed[r.Cuisine] {
			continue
		}
		if r.RatingN < f.MinRating {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Name), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Summarize computes the cohort overview over an already filtered slice.
func Summarize(restaurants []models.Restaurant) Summary {
	s := Summary{Restaurants: len(restaurants)}
	if len(restaurants) == 0 {
		return s
	}

	type agg struct {
		count int
		sum   float64
	}
	byCuisine := map[string]*agg{}
	total := 0.0
	for _, r := range restaurants {
		total += r.RatingN
		if r.RatingN > s.BestRating {
			s.BestRating = r.RatingN
		}
		a := byCuisine[r.Cuisine]
		if a == nil {
			a = &agg{}
			byCuisine[r.Cuisine] = a
		}
		a.count++
		a.sum += r.RatingN
	}
	s.AvgRating = total / float64(len(restaurants))

	for c, a := range byCuisine {
		s.Cuisines = append(s.Cuisines, CuisineStat{
			Cuisine:   c,
			Count:     a.count,
			AvgRating: a.sum / float64(a.count),
		})
	}
	sort.Slice(s.Cuisines, func(i, j int) bool {
		if s.Cuisines[i].Count != s.Cuisines[j].Count {
			return s.Cuisines[i].Count > s.Cuisines[j].Count
		}
		return s.Cuisines[i].Cuisine < s.Cuisines[j].Cuisine
	})
	s.TopCuisine = s.Cuisines[0].Cuisine
	return s
}
