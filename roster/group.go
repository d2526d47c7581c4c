package roster

import (
	"fmt"

	"github.com/Pjt727/studygroup/data/db"
)

type StudentRow = db.StudentCourseRow

type CourseRecord struct {
	SubjectCode  string   `json:"subject_code"`
	CourseNumber string   `json:"course_number"`
	Semester     Semester `json:"semester"`
	Year         int32    `json:"year"`
}

type StudentRecord struct {
	ID        int32          `json:"student_id"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	Courses   []CourseRecord `json:"courses"`
}

// Group folds the flat join rows into one record per student. Records keep the order
// in which their student was first seen, the rows are expected to already be ordered
// by student id.
//
// Rows without a course still create the student. When q is active courses that do
// not match are skipped and students left without any course are dropped.
func Group(rows []StudentRow, q SearchQuery) ([]StudentRecord, error) {
	order := make([]int32, 0)
	byID := make(map[int32]*StudentRecord)

	for _, row := range rows {
		student, ok := byID[row.StudentID]
		if !ok {
			student = &StudentRecord{
				ID:        row.StudentID,
				FirstName: row.StudFirstName,
				LastName:  row.StudLastName,
				Phone:     row.StudPhoneNumber.String,
				Email:     row.StudEmail.String,
				Courses:   []CourseRecord{},
			}
			byID[row.StudentID] = student
			order = append(order, row.StudentID)
		}

		if !row.SubjectCode.Valid || row.SubjectCode.String == "" ||
			!row.CourseNumber.Valid || row.CourseNumber.String == "" {
			continue
		}
		if q.Active() && !q.Matches(row.SubjectCode.String, row.CourseNumber.String) {
			continue
		}
		if !row.Year.Valid {
			return nil, fmt.Errorf(
				"%w: student %d %s %s",
				ErrMissingYear,
				row.StudentID,
				row.SubjectCode.String,
				row.CourseNumber.String,
			)
		}
		student.Courses = append(student.Courses, CourseRecord{
			SubjectCode:  row.SubjectCode.String,
			CourseNumber: row.CourseNumber.String,
			Semester:     row.Semester.SemesterEnum,
			Year:         row.Year.Int32,
		})
	}

	students := make([]StudentRecord, 0, len(order))
	for _, id := range order {
		student := byID[id]
		if q.Active() && len(student.Courses) == 0 {
			continue
		}
		students = append(students, *student)
	}
	return students, nil
}
