package db_test

import (
	"context"
	"os"
	"testing"

	"github.com/Pjt727/studygroup/data/db"
	"github.com/Pjt727/studygroup/data/testdb"
	"github.com/Pjt727/studygroup/roster"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQueries(t *testing.T) *db.Queries {
	t.Helper()
	conn := os.Getenv("TEST_DB_CONN")
	if conn == "" {
		t.Skip("TEST_DB_CONN is not set")
	}
	require.NoError(t, testdb.SetupTestDb())

	pool, err := pgxpool.New(context.Background(), conn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return db.New(pool)
}

const seed = `
INSERT INTO subjects (subject_code) VALUES ('CS'), ('COMP SCI'), ('MATH');
INSERT INTO courses (subject_id, course_number, semester, year) VALUES
    (1, '101', 'Fall', 2023),
    (2, '200', 'Spring', 2024),
    (3, '150', 'Winter', 2024);
`

func TestRosterQueriesAgainstDatabase(t *testing.T) {
	ctx := context.Background()
	q := setupQueries(t)

	ids := make([]int32, 0, 3)
	for _, name := range []string{"Ada", "Ben", "Cy"} {
		id, err := q.InsertStudent(ctx, db.InsertStudentParams{
			StudFirstName: name,
			StudLastName:  "Tester",
			StudEmail:     pgtype.Text{String: name + "@example.com", Valid: true},
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	pool, err := pgxpool.New(ctx, os.Getenv("TEST_DB_CONN"))
	require.NoError(t, err)
	defer pool.Close()
	_, err = pool.Exec(ctx, seed)
	require.NoError(t, err)

	courses, err := q.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	for _, c := range courses {
		require.NoError(t, q.AddStudentCourse(ctx, db.AddStudentCourseParams{StudentID: ids[1], CourseID: c.CourseID}))
	}

	enrolled, err := q.ListStudentCourses(ctx, ids[1])
	require.NoError(t, err)
	assert.Len(t, enrolled, 3)

	rows, err := q.ListStudentCourseRows(ctx, db.ListStudentCourseRowsParams{ExcludeStudentID: ids[0]})
	require.NoError(t, err)
	students, err := roster.Search("", rows)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, ids[1], students[0].ID)
	assert.Len(t, students[0].Courses, 3)
	assert.Empty(t, students[1].Courses)

	found, err := roster.NewAggregator(q).Search(ctx, ids[0], "comp sci 2")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Len(t, found[0].Courses, 1)
	assert.Equal(t, "COMP SCI", found[0].Courses[0].SubjectCode)

	found, err = roster.NewAggregator(q).Search(ctx, ids[0], "1")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Len(t, found[0].Courses, 2)

	require.NoError(t, q.RemoveStudentCourse(ctx, db.RemoveStudentCourseParams{StudentID: ids[1], CourseID: courses[0].CourseID}))
	enrolled, err = q.ListStudentCourses(ctx, ids[1])
	require.NoError(t, err)
	assert.Len(t, enrolled, 2)
}

func TestStudentProfileQueries(t *testing.T) {
	ctx := context.Background()
	q := setupQueries(t)

	id, err := q.InsertStudent(ctx, db.InsertStudentParams{StudFirstName: "Ada", StudLastName: "Lovelace"})
	require.NoError(t, err)
	require.NoError(t, q.AuthInsertCredential(ctx, db.AuthInsertCredentialParams{
		Username:          "ada",
		EncryptedPassword: "not-a-real-hash",
		StudentID:         id,
	}))

	cred, err := q.AuthGetCredential(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, id, cred.StudentID)

	require.NoError(t, q.UpdateStudentProfile(ctx, db.UpdateStudentProfileParams{
		StudentID:       id,
		StudFirstName:   "Augusta",
		StudLastName:    "King",
		StudPhoneNumber: pgtype.Text{String: "555-0199", Valid: true},
	}))
	first, err := q.GetStudentFirstName(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Augusta", first)

	student, err := q.GetStudent(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "King", student.StudLastName)
	assert.False(t, student.StudEmail.Valid)
}

func TestCreateStudentAccount(t *testing.T) {
	ctx := context.Background()
	setupQueries(t)

	pool, err := pgxpool.New(ctx, os.Getenv("TEST_DB_CONN"))
	require.NoError(t, err)
	defer pool.Close()
	store := db.NewStore(pool)

	params := db.CreateStudentAccountParams{
		Student:           db.InsertStudentParams{StudFirstName: "Ada", StudLastName: "Lovelace"},
		Username:          "ada",
		EncryptedPassword: "hash",
	}
	id, err := store.CreateStudentAccount(ctx, params)
	require.NoError(t, err)

	_, err = store.CreateStudentAccount(ctx, params)
	assert.ErrorIs(t, err, db.ErrUsernameTaken)

	// the second student was rolled back with its credential
	rows, err := store.ListStudentCourseRows(ctx, db.ListStudentCourseRowsParams{ExcludeStudentID: id})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
