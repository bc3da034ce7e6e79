// Package export renders read-only snapshots of the record set for
// use outside the application. It never mutates the store.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/bluegreyowl/gradebook/internal/models"
)

var csvHeader = []string{"roll_number", "name", "age", "marks", "grade"}

func WriteCsv(w io.Writer, students []*models.Student) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return errors.Wrap(err, "Failed to write header")
	}
	for _, student := range students {
		row := []string{
			student.RollNumber,
			student.Name,
			strconv.Itoa(student.Age),
			strconv.FormatFloat(student.Marks, 'f', -1, 64),
			string(student.Grade),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "Failed to write row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "Failed to flush export")
}

type Snapshot struct {
	ExportID      string            `json:"export_id"`
	ExportDate    string            `json:"export_date"`
	TotalStudents int               `json:"total_students"`
	Students      []*models.Student `json:"students"`
}

func WriteJson(w io.Writer, students []*models.Student) error {
	snapshot := Snapshot{
		ExportID:      uuid.New().String(),
		ExportDate:    time.Now().Format(time.RFC3339),
		TotalStudents: len(students),
		Students:      students,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(&snapshot), "Failed to encode export")
}
