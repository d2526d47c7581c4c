package components

import (
	"context"
	"strconv"

	"github.com/Pjt727/studygroup/roster"
	"github.com/a-h/templ"
)

func DisplayUsers(search string, students []roster.StudentRecord) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Students</h1><form method="get" action="/displayUsers">`)
		h.raw(`<input type="search" name="search" placeholder="e.g. CS 101" value="`)
		h.text(search)
		h.raw(`"><button type="submit">Search</button></form>`)

		if len(students) == 0 {
			h.raw(`<p class="empty">No students found.</p>`)
			return
		}
		h.raw(`<ul class="roster">`)
		for _, student := range students {
			h.raw(`<li class="student" id="student-` + strconv.Itoa(int(student.ID)) + `"><h2>`)
			h.text(student.FirstName + " " + student.LastName)
			h.raw(`</h2>`)
			if student.Email != "" {
				h.raw(`<p class="email">`)
				h.text(student.Email)
				h.raw(`</p>`)
			}
			if student.Phone != "" {
				h.raw(`<p class="phone">`)
				h.text(student.Phone)
				h.raw(`</p>`)
			}
			if len(student.Courses) == 0 {
				h.raw(`<p class="empty">No courses yet.</p></li>`)
				continue
			}
			h.raw(`<ul class="courses">`)
			for _, course := range student.Courses {
				h.raw(`<li>`)
				h.text(course.SubjectCode + " " + course.CourseNumber + " " +
					string(course.Semester) + " " + strconv.Itoa(int(course.Year)))
				h.raw(`</li>`)
			}
			h.raw(`</ul></li>`)
		}
		h.raw(`</ul>`)
	})
}
