package roster

import (
	"github.com/Pjt727/studygroup/data/db"
	"github.com/jackc/pgx/v5/pgtype"
)

func studentRow(id int32, first string) StudentRow {
	return StudentRow{
		StudentID:       id,
		StudFirstName:   first,
		StudLastName:    "Last",
		StudPhoneNumber: pgtype.Text{String: "555-0100", Valid: true},
		StudEmail:       pgtype.Text{},
	}
}

func courseRow(id int32, first string, subject string, number string, semester Semester, year int32) StudentRow {
	row := studentRow(id, first)
	row.SubjectCode = pgtype.Text{String: subject, Valid: true}
	row.CourseNumber = pgtype.Text{String: number, Valid: true}
	row.Semester = db.NullSemesterEnum{SemesterEnum: semester, Valid: true}
	row.Year = pgtype.Int4{Int32: year, Valid: true}
	return row
}
