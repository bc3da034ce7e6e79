package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bluegreyowl/gradebook/internal/models"
)

var someStudents = []*models.Student{
	{RollNumber: "CS001", Name: "Ada Lovelace", Age: 28, Marks: 95, Grade: "A+"},
	{RollNumber: "CS002", Name: "Charles Babbage", Age: 40, Marks: 87.5, Grade: "A"},
}

func TestCsvExport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCsv(&buf, someStudents); err != nil {
		t.Fatal("Export failed:", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "roll_number,name,age,marks,grade" {
		t.Fatal("Unexpected header:", lines[0])
	}
	if lines[1] != "CS001,Ada Lovelace,28,95,A+" {
		t.Fatal("Unexpected row:", lines[1])
	}
}

func TestJsonExport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJson(&buf, someStudents); err != nil {
		t.Fatal("Export failed:", err)
	}

	snapshot := Snapshot{}
	if err := json.Unmarshal(buf.Bytes(), &snapshot); err != nil {
		t.Fatal("Export is not valid json:", err)
	}
	if snapshot.ExportID == "" || snapshot.ExportDate == "" {
		t.Fatalf("Missing export metadata: %+v", snapshot)
	}
	if snapshot.TotalStudents != 2 || len(snapshot.Students) != 2 {
		t.Fatalf("Wrong student count: %+v", snapshot)
	}
	if snapshot.Students[0].Grade != "A+" {
		t.Fatal("Grade missing from export:", snapshot.Students[0])
	}
}
