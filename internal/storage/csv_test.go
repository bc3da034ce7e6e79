package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/bluegreyowl/gradebook/internal/models"
)

func tempCsv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "students.csv")
}

var someStudents = []models.Student{
	{RollNumber: "CS001", Name: "Ada Lovelace", Age: 28, Marks: 95},
	{RollNumber: "CS002", Name: "Charles Babbage", Age: 40, Marks: 87.5},
	{RollNumber: "AB003", Name: "Grace Hopper", Age: 37, Marks: 78},
}

func TestCsvRoundTrip(t *testing.T) {
	backend := NewCsvBackend(zap.NewNop(), tempCsv(t), false)

	if err := backend.Save(someStudents); err != nil {
		t.Fatal("Save failed:", err)
	}
	loaded, err := backend.Load()
	if err != nil {
		t.Fatal("Load failed:", err)
	}
	if !cmp.Equal(loaded, someStudents) {
		t.Fatalf("Round trip mismatch:\n%s", cmp.Diff(someStudents, loaded))
	}
}

func TestCsvRoundTripWithGradeColumn(t *testing.T) {
	path := tempCsv(t)
	backend := NewCsvBackend(zap.NewNop(), path, true)

	students := append([]models.Student{}, someStudents...)
	students[0].Grade = "A+"
	students[1].Grade = "A"
	students[2].Grade = "B+"

	if err := backend.Save(students); err != nil {
		t.Fatal("Save failed:", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "roll_number,name,age,marks,grade" {
		t.Fatal("Unexpected header:", lines[0])
	}
	if !strings.HasSuffix(lines[1], ",A+") {
		t.Fatal("Grade column missing:", lines[1])
	}

	// The persisted grade is advisory: load drops it.
	loaded, err := backend.Load()
	if err != nil {
		t.Fatal("Load failed:", err)
	}
	if !cmp.Equal(loaded, someStudents) {
		t.Fatalf("Grade column leaked into load:\n%s", cmp.Diff(someStudents, loaded))
	}
}

func TestCsvMissingFile(t *testing.T) {
	backend := NewCsvBackend(zap.NewNop(), tempCsv(t), false)

	loaded, err := backend.Load()
	if err != nil {
		t.Fatal("Missing file must not be an error:", err)
	}
	if len(loaded) != 0 {
		t.Fatal("Missing file must load empty:", loaded)
	}
}

const malformedCsv = `roll_number,name,age,marks
CS001,Ada Lovelace,28,95
CS002,Charles Babbage,forty,87.5
CS003,Grace Hopper,37,not-a-number
CS004
AB005,Alan Turing,41,91
`

func TestCsvSkipsMalformedRows(t *testing.T) {
	path := tempCsv(t)
	if err := os.WriteFile(path, []byte(malformedCsv), 0o644); err != nil {
		t.Fatal(err)
	}

	backend := NewCsvBackend(zap.NewNop(), path, false)
	loaded, err := backend.Load()
	if err != nil {
		t.Fatal("Load failed:", err)
	}

	expected := []models.Student{
		{RollNumber: "CS001", Name: "Ada Lovelace", Age: 28, Marks: 95},
		{RollNumber: "AB005", Name: "Alan Turing", Age: 41, Marks: 91},
	}
	if !cmp.Equal(loaded, expected) {
		t.Fatalf("Unexpected records:\n%s", cmp.Diff(expected, loaded))
	}
}

func TestCsvBadHeader(t *testing.T) {
	path := tempCsv(t)
	if err := os.WriteFile(path, []byte("id,who,marks\n1,Ada,95\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	backend := NewCsvBackend(zap.NewNop(), path, false)
	if _, err := backend.Load(); err == nil {
		t.Fatal("Expected header error")
	}
}

func TestCsvSaveReplacesWholeFile(t *testing.T) {
	path := tempCsv(t)
	backend := NewCsvBackend(zap.NewNop(), path, false)

	if err := backend.Save(someStudents); err != nil {
		t.Fatal(err)
	}
	if err := backend.Save(someStudents[:1]); err != nil {
		t.Fatal(err)
	}

	loaded, err := backend.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(loaded, someStudents[:1]) {
		t.Fatalf("Second save must replace the file:\n%+v", loaded)
	}
}

func TestCsvSaveEmptySet(t *testing.T) {
	backend := NewCsvBackend(zap.NewNop(), tempCsv(t), false)

	if err := backend.Save(nil); err != nil {
		t.Fatal("Save of empty set failed:", err)
	}
	loaded, err := backend.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 0 {
		t.Fatal("Expected empty set:", loaded)
	}
}
