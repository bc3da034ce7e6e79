package api

import "github.com/bluegreyowl/gradebook/internal/store"

type StatisticsResponse struct {
	Status

	Statistics *store.Statistics `json:"statistics,omitempty"`
}
