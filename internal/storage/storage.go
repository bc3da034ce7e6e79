package storage

import (
	"github.com/bluegreyowl/gradebook/internal/models"
)

// Backend persists the whole record set at once. There is no
// incremental append: Save replaces everything the previous Save wrote.
type Backend interface {
	// Load reads all records in their stored order.
	// A missing data file is not an error, just an empty result.
	Load() ([]models.Student, error)

	// Save writes the full record set, replacing previous content.
	Save(students []models.Student) error

	Close() error

	// Describe names the backend and its location for logs.
	Describe() string
}
