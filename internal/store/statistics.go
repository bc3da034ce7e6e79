package store

import (
	"math"

	"github.com/bluegreyowl/gradebook/internal/grades"
)

type GradeStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Statistics is an aggregate snapshot of the record set. A zero Count
// means no data; the marks fields are meaningless then.
type Statistics struct {
	Count     int     `json:"count"`
	MeanMarks float64 `json:"mean_marks"`
	MinMarks  float64 `json:"min_marks"`
	MaxMarks  float64 `json:"max_marks"`

	Grades map[grades.Grade]GradeStat `json:"grades,omitempty"`
}

func (s *Store) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) == 0 {
		return Statistics{}
	}

	stats := Statistics{
		Count:    len(s.order),
		MinMarks: math.Inf(1),
		MaxMarks: math.Inf(-1),
		Grades:   make(map[grades.Grade]GradeStat),
	}

	sum := 0.0
	for _, roll := range s.order {
		student := s.records[roll]
		sum += student.Marks
		stats.MinMarks = math.Min(stats.MinMarks, student.Marks)
		stats.MaxMarks = math.Max(stats.MaxMarks, student.Marks)

		grade := stats.Grades[student.Grade]
		grade.Count++
		stats.Grades[student.Grade] = grade
	}

	stats.MeanMarks = round2(sum / float64(stats.Count))
	for grade, stat := range stats.Grades {
		stat.Percentage = round2(float64(stat.Count) / float64(stats.Count) * 100)
		stats.Grades[grade] = stat
	}
	return stats
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
