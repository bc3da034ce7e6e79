package models

import (
	"github.com/bluegreyowl/gradebook/internal/grades"
)

type Student struct {
	RollNumber string  `json:"roll_number" gorm:"primaryKey"`
	Name       string  `json:"name"`
	Age        int     `json:"age"`
	Marks      float64 `json:"marks"`

	// Derived from Marks, never authoritative.
	Grade grades.Grade `json:"grade" gorm:"-"`
}
