package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/docker/go-units"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/bluegreyowl/gradebook/internal/logfield"
	"github.com/bluegreyowl/gradebook/internal/models"
)

var csvHeader = []string{"roll_number", "name", "age", "marks"}

const csvGradeColumn = "grade"

type CsvBackend struct {
	path   string
	logger *zap.Logger

	// When set, Save appends a trailing grade column.
	// Load never trusts it: the grade is recomputed from marks.
	persistGrade bool
}

func NewCsvBackend(logger *zap.Logger, path string, persistGrade bool) *CsvBackend {
	return &CsvBackend{
		path:         path,
		logger:       logger.Named("csv"),
		persistGrade: persistGrade,
	}
}

func (b *CsvBackend) Describe() string {
	return fmt.Sprintf("csv(%s)", b.path)
}

func (b *CsvBackend) Load() ([]models.Student, error) {
	file, err := os.Open(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			b.logger.Info("No data file found, starting empty", lf.Path(b.path))
			return nil, nil
		}
		return nil, errors.Wrap(err, "Failed to open data file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read data file")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	students := make([]models.Student, 0, len(rows)-1)
	for i, row := range rows[1:] {
		student, err := parseRow(row)
		if err != nil {
			b.logger.Warn("Skipping malformed row", lf.Line(i+2), zap.Error(err))
			continue
		}
		students = append(students, student)
	}

	b.logger.Info("Loaded records", lf.Path(b.path), lf.Count(len(students)))
	return students, nil
}

func (b *CsvBackend) Save(students []models.Student) error {
	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, ".gradebook-*.csv")
	if err != nil {
		return errors.Wrap(err, "Failed to create temp file")
	}
	defer os.Remove(tmp.Name())

	if err := b.write(tmp, students); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "Failed to close temp file")
	}

	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return errors.Wrap(err, "Failed to replace data file")
	}

	if info, err := os.Stat(b.path); err == nil {
		b.logger.Debug("Saved records",
			lf.Path(b.path),
			lf.Count(len(students)),
			zap.String("size", units.HumanSize(float64(info.Size()))),
		)
	}
	return nil
}

func (b *CsvBackend) write(file *os.File, students []models.Student) error {
	writer := csv.NewWriter(file)

	header := csvHeader
	if b.persistGrade {
		header = append(append([]string{}, csvHeader...), csvGradeColumn)
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "Failed to write header")
	}

	for i := range students {
		if err := writer.Write(b.formatRow(&students[i])); err != nil {
			return errors.Wrap(err, "Failed to write row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "Failed to flush data file")
}

func (b *CsvBackend) formatRow(student *models.Student) []string {
	row := []string{
		student.RollNumber,
		student.Name,
		strconv.Itoa(student.Age),
		strconv.FormatFloat(student.Marks, 'f', -1, 64),
	}
	if b.persistGrade {
		row = append(row, string(student.Grade))
	}
	return row
}

func (b *CsvBackend) Close() error {
	return nil
}

func checkHeader(row []string) error {
	if len(row) < len(csvHeader) {
		return errors.Errorf("unexpected header: %v", row)
	}
	for i, field := range csvHeader {
		if row[i] != field {
			return errors.Errorf("unexpected header column %d: %q, expected %q", i, row[i], field)
		}
	}
	return nil
}

// parseRow accepts both the bare schema and the extended one with a
// trailing grade column. The stored grade, if any, is dropped here.
func parseRow(row []string) (models.Student, error) {
	if len(row) < len(csvHeader) {
		return models.Student{}, errors.Errorf("expected at least %d columns, got %d", len(csvHeader), len(row))
	}

	age, err := strconv.Atoi(row[2])
	if err != nil {
		return models.Student{}, errors.Wrap(err, "bad age")
	}
	marks, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return models.Student{}, errors.Wrap(err, "bad marks")
	}

	return models.Student{
		RollNumber: row[0],
		Name:       row[1],
		Age:        age,
		Marks:      marks,
	}, nil
}
