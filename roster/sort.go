package roster

import (
	"cmp"
	"slices"
)

type scoredCourse struct {
	course CourseRecord
	score  int
}

// SortCourses orders courses most recent term first, courses from the same term by
// subject code. Equal keys keep their relative order. Every semester is scored before
// anything moves so an invalid one leaves the slice untouched.
func SortCourses(courses []CourseRecord) error {
	scored := make([]scoredCourse, len(courses))
	for i, c := range courses {
		score, err := courseScore(c)
		if err != nil {
			return err
		}
		scored[i] = scoredCourse{course: c, score: score}
	}

	slices.SortStableFunc(scored, func(a, b scoredCourse) int {
		if n := cmp.Compare(b.score, a.score); n != 0 {
			return n
		}
		return cmp.Compare(a.course.SubjectCode, b.course.SubjectCode)
	})

	for i, s := range scored {
		courses[i] = s.course
	}
	return nil
}
