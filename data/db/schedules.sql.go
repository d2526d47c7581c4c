package db

import (
	"context"
)

const addStudentCourse = `-- name: AddStudentCourse :exec
INSERT INTO student_schedules (student_id, course_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

type AddStudentCourseParams struct {
	StudentID int32 `json:"student_id"`
	CourseID  int32 `json:"course_id"`
}

func (q *Queries) AddStudentCourse(ctx context.Context, arg AddStudentCourseParams) error {
	_, err := q.db.Exec(ctx, addStudentCourse, arg.StudentID, arg.CourseID)
	return err
}

const removeStudentCourse = `-- name: RemoveStudentCourse :exec
DELETE FROM student_schedules
WHERE student_id = $1 AND course_id = $2
`

type RemoveStudentCourseParams struct {
	StudentID int32 `json:"student_id"`
	CourseID  int32 `json:"course_id"`
}

func (q *Queries) RemoveStudentCourse(ctx context.Context, arg RemoveStudentCourseParams) error {
	_, err := q.db.Exec(ctx, removeStudentCourse, arg.StudentID, arg.CourseID)
	return err
}

const listCourses = `-- name: ListCourses :many
SELECT c.course_id, sub.subject_code, c.course_number, c.semester, c.year
FROM courses c
JOIN subjects sub ON c.subject_id = sub.subject_id
ORDER BY c.year DESC, sub.subject_code, c.course_number
`

type ListCoursesRow struct {
	CourseID     int32        `json:"course_id"`
	SubjectCode  string       `json:"subject_code"`
	CourseNumber string       `json:"course_number"`
	Semester     SemesterEnum `json:"semester"`
	Year         int32        `json:"year"`
}

func (q *Queries) ListCourses(ctx context.Context) ([]ListCoursesRow, error) {
	rows, err := q.db.Query(ctx, listCourses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCoursesRow
	for rows.Next() {
		var i ListCoursesRow
		if err := rows.Scan(
			&i.CourseID,
			&i.SubjectCode,
			&i.CourseNumber,
			&i.Semester,
			&i.Year,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listStudentCourses = `-- name: ListStudentCourses :many
SELECT c.course_id, sub.subject_code, c.course_number, c.semester, c.year
FROM student_schedules ss
JOIN courses c ON ss.course_id = c.course_id
JOIN subjects sub ON c.subject_id = sub.subject_id
WHERE ss.student_id = $1
ORDER BY c.year DESC, sub.subject_code
`

func (q *Queries) ListStudentCourses(ctx context.Context, studentID int32) ([]ListCoursesRow, error) {
	rows, err := q.db.Query(ctx, listStudentCourses, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCoursesRow
	for rows.Next() {
		var i ListCoursesRow
		if err := rows.Scan(
			&i.CourseID,
			&i.SubjectCode,
			&i.CourseNumber,
			&i.Semester,
			&i.Year,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
