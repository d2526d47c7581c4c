package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/Pjt727/studygroup/data/db"
	"github.com/Pjt727/studygroup/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayUsersEscapes(t *testing.T) {
	var buf bytes.Buffer
	students := []roster.StudentRecord{{
		ID:        4,
		FirstName: "<script>",
		LastName:  "Tables",
		Courses: []roster.CourseRecord{
			{SubjectCode: "CS", CourseNumber: "101", Semester: db.SemesterEnumFall, Year: 2023},
		},
	}}
	err := Page("Students", true, DisplayUsers(`"cs`, students)).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt; Tables")
	assert.Contains(t, html, `value="&#34;cs"`)
	assert.Contains(t, html, "CS 101 Fall 2023")
	assert.Contains(t, html, `id="student-4"`)
}

func TestDisplayUsersEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayUsers("", nil).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "No students found.")
}

func TestLoginShowsError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Login("Invalid username or password.").Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `role="alert">Invalid username or password.</p>`)

	buf.Reset()
	require.NoError(t, Login("").Render(context.Background(), &buf))
	assert.NotContains(t, buf.String(), `role="alert"`)
}

func TestProfileListsCourses(t *testing.T) {
	var buf bytes.Buffer
	enrolled := []db.ListCoursesRow{{CourseID: 9, SubjectCode: "MATH", CourseNumber: "200", Semester: db.SemesterEnumSpring, Year: 2024}}
	err := Profile(ProfileForm{FirstName: "Ada"}, enrolled, enrolled, "", "").Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `action="/profile/courses/9/delete"`)
	assert.Contains(t, buf.String(), `<option value="9">MATH 200 Spring 2024</option>`)
}
