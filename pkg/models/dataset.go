package models

import (
	"time"

	"github.com/google/uuid"
)

// Dataset is one fully loaded, enriched and benchmarked snapshot. It is
// immutable after load; all query operations read it concurrently without
// locking. ID names the load in logs and API responses.
type Dataset struct {
	ID          uuid.UUID      `json:"id"`
	LoadedAt    time.Time      `json:"loaded_at"`
	Restaurants *RestaurantSet `json:"restaurants"`
	Reviews     *ReviewSet     `json:"reviews"`
	Benchmarks  Benchmarks     `json:"benchmarks"`
}
