package store

import (
	"strings"
	"sync"

	"github.com/alexsergivan/transliterator"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/bluegreyowl/gradebook/internal/grades"
	lf "github.com/bluegreyowl/gradebook/internal/logfield"
	"github.com/bluegreyowl/gradebook/internal/models"
	"github.com/bluegreyowl/gradebook/internal/storage"
)

// Store owns the in-memory student collection and its persistence
// binding. Every mutation re-validates input, keeps roll numbers
// unique, recomputes the derived grade and flushes the whole set to
// the backend. Callers only ever see copies of stored records.
type Store struct {
	mu sync.Mutex

	logger   *zap.Logger
	scale    grades.Scale
	backend  storage.Backend
	translit *transliterator.Transliterator

	records map[string]*models.Student
	order   []string

	// Bumped on every successful mutation. Lets API layers cache
	// derived views (statistics) without watching the records.
	revision atomic.Int64
}

// Open loads the backend's record set into memory. An unreadable
// backend is recoverable: the store starts empty and logs a warning.
func Open(logger *zap.Logger, scale grades.Scale, backend storage.Backend) (*Store, error) {
	if err := scale.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		logger:   logger.Named("store"),
		scale:    scale,
		backend:  backend,
		translit: transliterator.NewTransliterator(nil),
		records:  make(map[string]*models.Student),
	}

	students, err := backend.Load()
	if err != nil {
		s.logger.Warn("Failed to load records, starting empty",
			lf.Backend(backend.Describe()), zap.Error(err))
		return s, nil
	}

	for i := range students {
		student := students[i]
		if _, found := s.records[student.RollNumber]; found {
			s.logger.Warn("Skipping duplicate roll number", lf.RollNumber(student.RollNumber))
			continue
		}
		student.Grade = scale.Grade(student.Marks)
		s.records[student.RollNumber] = &student
		s.order = append(s.order, student.RollNumber)
	}

	s.logger.Info("Opened store", lf.Backend(backend.Describe()), lf.Count(len(s.order)))
	return s, nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// Revision never decreases and changes only on successful mutations.
func (s *Store) Revision() int64 {
	return s.revision.Load()
}

// Scale returns a copy of the grade scale the store grades with.
func (s *Store) Scale() grades.Scale {
	return append(grades.Scale{}, s.scale...)
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

func (s *Store) Add(student models.Student) (*models.Student, error) {
	student.RollNumber = strings.TrimSpace(student.RollNumber)
	student.Name = strings.TrimSpace(student.Name)

	if err := validate(&student); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.records[student.RollNumber]; found {
		return nil, &DuplicateKeyError{student.RollNumber}
	}

	student.Grade = s.scale.Grade(student.Marks)
	s.records[student.RollNumber] = &student
	s.order = append(s.order, student.RollNumber)

	if err := s.persist(); err != nil {
		return nil, err
	}

	s.logger.Info("Added student",
		lf.RollNumber(student.RollNumber),
		lf.Name(student.Name),
		lf.Grade(string(student.Grade)),
	)
	return copyOf(&student), nil
}

func (s *Store) Get(rollNumber string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, found := s.records[rollNumber]
	if !found {
		return nil, &NotFoundError{rollNumber}
	}
	return copyOf(student), nil
}

// Search matches query as a case-insensitive substring of the name or
// the roll number. Both sides of the name match are also transliterated
// so accented names and their plain spellings find each other.
// An empty query matches everything. Results follow insertion order.
func (s *Store) Search(query string) []*models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	folded := s.normalizeName(strings.TrimSpace(query))

	found := make([]*models.Student, 0)
	for _, roll := range s.order {
		student := s.records[roll]
		if needle == "" ||
			strings.Contains(strings.ToLower(roll), needle) ||
			strings.Contains(strings.ToLower(student.Name), needle) ||
			strings.Contains(s.normalizeName(student.Name), folded) {
			found = append(found, copyOf(student))
		}
	}
	return found
}

// Update patches the given fields only. Nil fields keep their current
// value. The grade follows the marks.
type Update struct {
	Name  *string
	Age   *int
	Marks *float64
}

func (s *Store) Update(rollNumber string, update Update) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, found := s.records[rollNumber]
	if !found {
		return nil, &NotFoundError{rollNumber}
	}

	patched := *student
	if update.Name != nil {
		patched.Name = strings.TrimSpace(*update.Name)
	}
	if update.Age != nil {
		patched.Age = *update.Age
	}
	if update.Marks != nil {
		patched.Marks = *update.Marks
	}

	if err := validate(&patched); err != nil {
		return nil, err
	}

	patched.Grade = s.scale.Grade(patched.Marks)
	*student = patched

	if err := s.persist(); err != nil {
		return nil, err
	}

	s.logger.Info("Updated student",
		lf.RollNumber(rollNumber),
		lf.Grade(string(student.Grade)),
	)
	return copyOf(student), nil
}

func (s *Store) Delete(rollNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.records[rollNumber]; !found {
		return &NotFoundError{rollNumber}
	}

	delete(s.records, rollNumber)
	for i, roll := range s.order {
		if roll == rollNumber {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	if err := s.persist(); err != nil {
		return err
	}

	s.logger.Info("Deleted student", lf.RollNumber(rollNumber))
	return nil
}

type SortKey string

const (
	SortNone       SortKey = ""
	SortRollNumber SortKey = "roll_number"
	SortName       SortKey = "name"
	SortMarks      SortKey = "marks"
)

func ParseSortKey(key string) (SortKey, error) {
	switch SortKey(key) {
	case SortNone, SortRollNumber, SortName, SortMarks:
		return SortKey(key), nil
	}
	return SortNone, &ValidationError{"sort", "must be one of roll_number, name, marks"}
}

type ListOptions struct {
	// Restrict the result to one grade. Empty means all grades.
	Grade grades.Grade

	// Ascending sort; SortNone keeps insertion order.
	Sort SortKey
}

func (s *Store) List(opts ListOptions) []*models.Student {
	s.mu.Lock()
	students := make([]*models.Student, 0, len(s.order))
	for _, roll := range s.order {
		student := s.records[roll]
		if opts.Grade != "" && student.Grade != opts.Grade {
			continue
		}
		students = append(students, copyOf(student))
	}
	s.mu.Unlock()

	switch opts.Sort {
	case SortRollNumber:
		slices.SortStableFunc(students, func(lhs, rhs *models.Student) bool {
			return lhs.RollNumber < rhs.RollNumber
		})
	case SortName:
		slices.SortStableFunc(students, func(lhs, rhs *models.Student) bool {
			return strings.ToLower(lhs.Name) < strings.ToLower(rhs.Name)
		})
	case SortMarks:
		slices.SortStableFunc(students, func(lhs, rhs *models.Student) bool {
			return lhs.Marks < rhs.Marks
		})
	}
	return students
}

// persist flushes the full record set. Called with s.mu held.
func (s *Store) persist() error {
	students := make([]models.Student, 0, len(s.order))
	for _, roll := range s.order {
		students = append(students, *s.records[roll])
	}

	if err := s.backend.Save(students); err != nil {
		s.logger.Error("Failed to persist records",
			lf.Backend(s.backend.Describe()), zap.Error(err))
		return &PersistenceError{err}
	}

	s.revision.Inc()
	return nil
}

func (s *Store) normalizeName(name string) string {
	return strings.ToLower(s.translit.Transliterate(name, "en"))
}

func copyOf(student *models.Student) *models.Student {
	copied := *student
	return &copied
}

func validate(student *models.Student) error {
	if student.RollNumber == "" {
		return &ValidationError{"roll_number", "must not be empty"}
	}
	if len(student.Name) < 2 {
		return &ValidationError{"name", "must be at least 2 characters long"}
	}
	if student.Age < 1 || student.Age > 150 {
		return &ValidationError{"age", "must be between 1 and 150"}
	}
	if student.Marks < 0 || student.Marks > 100 {
		return &ValidationError{"marks", "must be between 0 and 100"}
	}
	return nil
}
