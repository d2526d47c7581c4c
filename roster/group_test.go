package roster

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupOneRecordPerStudent(t *testing.T) {
	rows := []StudentRow{
		courseRow(1, "Ada", "CS", "101", SemesterFall, 2023),
		courseRow(1, "Ada", "MATH", "200", SemesterSpring, 2024),
		studentRow(2, "Ben"),
		courseRow(3, "Cy", "ART", "110", SemesterSummer, 2022),
		courseRow(3, "Cy", "CS", "101", SemesterFall, 2023),
	}

	students, err := Group(rows, SearchQuery{})
	require.NoError(t, err)
	require.Len(t, students, 3)

	assert.Equal(t, []int32{1, 2, 3}, []int32{students[0].ID, students[1].ID, students[2].ID})
	assert.Len(t, students[0].Courses, 2)
	assert.Equal(t, "Ada", students[0].FirstName)
	assert.Equal(t, "555-0100", students[0].Phone)
	assert.Equal(t, "", students[0].Email)
}

func TestGroupKeepsStudentsWithoutCoursesWhenInactive(t *testing.T) {
	students, err := Group([]StudentRow{studentRow(9, "Nia")}, Normalize(""))
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.NotNil(t, students[0].Courses)
	assert.Empty(t, students[0].Courses)
}

func TestGroupDropsPartialCourseRows(t *testing.T) {
	row := studentRow(4, "Dee")
	row.SubjectCode = pgtype.Text{String: "CS", Valid: true}

	students, err := Group([]StudentRow{row}, SearchQuery{})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Empty(t, students[0].Courses)
}

func TestGroupActiveSearchFiltersCoursesAndStudents(t *testing.T) {
	rows := []StudentRow{
		courseRow(1, "Ada", "CS", "101", SemesterFall, 2023),
		courseRow(1, "Ada", "MATH", "200", SemesterSpring, 2024),
		studentRow(2, "Ben"),
		courseRow(3, "Cy", "ART", "110", SemesterSummer, 2022),
	}

	students, err := Group(rows, Normalize("cs"))
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, int32(1), students[0].ID)
	assert.Equal(t, []CourseRecord{{SubjectCode: "CS", CourseNumber: "101", Semester: SemesterFall, Year: 2023}}, students[0].Courses)
}

func TestGroupMissingYear(t *testing.T) {
	row := courseRow(1, "Ada", "CS", "101", SemesterFall, 2023)
	row.Year = pgtype.Int4{}

	_, err := Group([]StudentRow{row}, SearchQuery{})
	assert.ErrorIs(t, err, ErrMissingYear)
}

func TestGroupCountsDistinctStudents(t *testing.T) {
	rows := []StudentRow{
		courseRow(5, "E", "CS", "1", SemesterFall, 2020),
		courseRow(5, "E", "CS", "2", SemesterFall, 2020),
		courseRow(5, "E", "CS", "3", SemesterFall, 2020),
		studentRow(6, "F"),
		courseRow(7, "G", "CS", "1", SemesterFall, 2020),
	}
	students, err := Group(rows, SearchQuery{})
	require.NoError(t, err)
	assert.Len(t, students, 3)
}
