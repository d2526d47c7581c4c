package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getStudent = `-- name: GetStudent :one
SELECT student_id, stud_first_name, stud_last_name, stud_phone_number, stud_email FROM students
WHERE student_id = $1
`

func (q *Queries) GetStudent(ctx context.Context, studentID int32) (Student, error) {
	row := q.db.QueryRow(ctx, getStudent, studentID)
	var i Student
	err := row.Scan(
		&i.StudentID,
		&i.StudFirstName,
		&i.StudLastName,
		&i.StudPhoneNumber,
		&i.StudEmail,
	)
	return i, err
}

const getStudentFirstName = `-- name: GetStudentFirstName :one
SELECT stud_first_name FROM students
WHERE student_id = $1
`

func (q *Queries) GetStudentFirstName(ctx context.Context, studentID int32) (string, error) {
	row := q.db.QueryRow(ctx, getStudentFirstName, studentID)
	var stud_first_name string
	err := row.Scan(&stud_first_name)
	return stud_first_name, err
}

const insertStudent = `-- name: InsertStudent :one
INSERT INTO students (stud_first_name, stud_last_name, stud_phone_number, stud_email)
VALUES ($1, $2, $3, $4)
RETURNING student_id
`

type InsertStudentParams struct {
	StudFirstName   string      `json:"stud_first_name"`
	StudLastName    string      `json:"stud_last_name"`
	StudPhoneNumber pgtype.Text `json:"stud_phone_number"`
	StudEmail       pgtype.Text `json:"stud_email"`
}

func (q *Queries) InsertStudent(ctx context.Context, arg InsertStudentParams) (int32, error) {
	row := q.db.QueryRow(ctx, insertStudent,
		arg.StudFirstName,
		arg.StudLastName,
		arg.StudPhoneNumber,
		arg.StudEmail,
	)
	var student_id int32
	err := row.Scan(&student_id)
	return student_id, err
}

const updateStudentProfile = `-- name: UpdateStudentProfile :exec
UPDATE students
SET stud_first_name = $2,
    stud_last_name = $3,
    stud_phone_number = $4,
    stud_email = $5
WHERE student_id = $1
`

type UpdateStudentProfileParams struct {
	StudentID       int32       `json:"student_id"`
	StudFirstName   string      `json:"stud_first_name"`
	StudLastName    string      `json:"stud_last_name"`
	StudPhoneNumber pgtype.Text `json:"stud_phone_number"`
	StudEmail       pgtype.Text `json:"stud_email"`
}

func (q *Queries) UpdateStudentProfile(ctx context.Context, arg UpdateStudentProfileParams) error {
	_, err := q.db.Exec(ctx, updateStudentProfile,
		arg.StudentID,
		arg.StudFirstName,
		arg.StudLastName,
		arg.StudPhoneNumber,
		arg.StudEmail,
	)
	return err
}
