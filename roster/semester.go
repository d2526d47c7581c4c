package roster

import (
	"errors"
	"fmt"

	"github.com/Pjt727/studygroup/data/db"
)

type Semester = db.SemesterEnum

var (
	SemesterFall   = db.SemesterEnumFall
	SemesterWinter = db.SemesterEnumWinter
	SemesterSpring = db.SemesterEnumSpring
	SemesterSummer = db.SemesterEnumSummer
)

var (
	// a course carries a semester that is not part of the enum, there is no
	// sensible weight to guess so the whole search fails
	ErrInvalidSemester = errors.New("invalid semester value")

	ErrMissingYear = errors.New("course is missing its year")
)

// weights only order terms inside of a single year
func SemesterWeight(s Semester) (int, error) {
	switch s {
	case SemesterFall:
		return 4, nil
	case SemesterWinter:
		return 3, nil
	case SemesterSpring:
		return 2, nil
	case SemesterSummer:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSemester, string(s))
	}
}

func courseScore(c CourseRecord) (int, error) {
	weight, err := SemesterWeight(c.Semester)
	if err != nil {
		return 0, err
	}
	return int(c.Year)*10 + weight, nil
}
