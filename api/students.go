package api

import "github.com/bluegreyowl/gradebook/internal/models"

type AddStudentRequest struct {
	RollNumber string  `json:"roll_number" form:"roll_number"`
	Name       string  `json:"name" form:"name"`
	Age        int     `json:"age" form:"age"`
	Marks      float64 `json:"marks" form:"marks"`
}

type UpdateStudentRequest struct {
	Name  *string  `json:"name,omitempty" form:"name"`
	Age   *int     `json:"age,omitempty" form:"age"`
	Marks *float64 `json:"marks,omitempty" form:"marks"`
}

type StudentResponse struct {
	Status

	Student *models.Student `json:"student,omitempty"`
}

type StudentsResponse struct {
	Status

	Students []*models.Student `json:"students,omitempty"`
}
