package grades

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// Band maps every marks value at or above Min to Grade,
// unless a higher band claims it first.
type Band struct {
	Grade Grade   `yaml:"grade"`
	Min   float64 `yaml:"min"`
}

// Scale is an ordered list of bands, highest Min first.
// The last band must have Min 0 so every marks value grades.
type Scale []Band

func Default() Scale {
	return Scale{
		{GradeAPlus, 90},
		{GradeA, 80},
		{GradeBPlus, 70},
		{GradeB, 60},
		{GradeC, 50},
		{GradeD, 40},
		{GradeF, 0},
	}
}

func (s Scale) Validate() error {
	if len(s) == 0 {
		return errors.New("empty grade scale")
	}
	for i, band := range s {
		if band.Grade == "" {
			return errors.Errorf("band %d has no grade", i)
		}
		if i > 0 && band.Min >= s[i-1].Min {
			return errors.Errorf("band %q: min %.2f is not below previous band", band.Grade, band.Min)
		}
	}
	if last := s[len(s)-1]; last.Min != 0 {
		return errors.Errorf("last band %q must start at 0, got %.2f", last.Grade, last.Min)
	}
	return nil
}

// Grade resolves marks to the first band whose lower bound is met.
// Bounds are inclusive: marks of exactly 90 grade as A+ on the default scale.
func (s Scale) Grade(marks float64) Grade {
	for _, band := range s {
		if marks >= band.Min {
			return band.Grade
		}
	}
	return s[len(s)-1].Grade
}

// Known reports whether grade appears in the scale.
func (s Scale) Known(grade Grade) bool {
	for _, band := range s {
		if band.Grade == grade {
			return true
		}
	}
	return false
}

func Parse(data []byte) (Scale, error) {
	scale := Scale{}
	if err := yaml.Unmarshal(data, &scale); err != nil {
		return nil, errors.Wrap(err, "Failed to parse grade scale")
	}
	if err := scale.Validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid grade scale")
	}
	return scale, nil
}

func Load(path string) (Scale, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read grade scale")
	}
	return Parse(data)
}
