package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

// the roster search has optional filters so it cannot be expressed as a single
//    static query, it is built with squirrel instead

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type ListStudentCourseRowsParams struct {
	ExcludeStudentID int32 `json:"exclude_student_id"`
	// matched against the subject code with whitespace removed and uppercased
	SubjectCodePrefix  string      `json:"subject_code_prefix"`
	CourseNumberPrefix pgtype.Text `json:"course_number_prefix"`
}

// a student with no schedule produces a single row with every course column null
type StudentCourseRow struct {
	StudentID       int32            `json:"student_id"`
	StudFirstName   string           `json:"stud_first_name"`
	StudLastName    string           `json:"stud_last_name"`
	StudPhoneNumber pgtype.Text      `json:"stud_phone_number"`
	StudEmail       pgtype.Text      `json:"stud_email"`
	SubjectCode     pgtype.Text      `json:"subject_code"`
	CourseNumber    pgtype.Text      `json:"course_number"`
	Semester        NullSemesterEnum `json:"semester"`
	Year            pgtype.Int4      `json:"year"`
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func buildListStudentCourseRows(arg ListStudentCourseRowsParams) (string, []interface{}, error) {
	query := psql.Select(
		"s.student_id",
		"s.stud_first_name",
		"s.stud_last_name",
		"s.stud_phone_number",
		"s.stud_email",
		"sub.subject_code",
		"c.course_number",
		"c.semester",
		"c.year",
	).
		From("students s").
		LeftJoin("student_schedules ss ON s.student_id = ss.student_id").
		LeftJoin("courses c ON ss.course_id = c.course_id").
		LeftJoin("subjects sub ON c.subject_id = sub.subject_id").
		Where(squirrel.NotEq{"s.student_id": arg.ExcludeStudentID})

	if arg.SubjectCodePrefix != "" || arg.CourseNumberPrefix.Valid {
		query = query.Where(squirrel.Like{
			`upper(regexp_replace(sub.subject_code, '\s', '', 'g'))`: escapeLike(arg.SubjectCodePrefix) + "%",
		})
	}
	if arg.CourseNumberPrefix.Valid {
		query = query.Where(squirrel.Like{
			"upper(c.course_number)": escapeLike(strings.ToUpper(arg.CourseNumberPrefix.String)) + "%",
		})
	}

	return query.OrderBy("s.student_id ASC").ToSql()
}

func (q *Queries) ListStudentCourseRows(ctx context.Context, arg ListStudentCourseRowsParams) ([]StudentCourseRow, error) {
	sql, args, err := buildListStudentCourseRows(arg)
	if err != nil {
		return nil, fmt.Errorf("could not build student course rows query: %w", err)
	}
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []StudentCourseRow
	for rows.Next() {
		var i StudentCourseRow
		if err := rows.Scan(
			&i.StudentID,
			&i.StudFirstName,
			&i.StudLastName,
			&i.StudPhoneNumber,
			&i.StudEmail,
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
