package components

import (
	"context"
	"strconv"

	"github.com/Pjt727/studygroup/data/db"
	"github.com/a-h/templ"
)

type ProfileForm struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Username  string
}

func courseLabel(c db.ListCoursesRow) string {
	return c.SubjectCode + " " + c.CourseNumber + " " + string(c.Semester) + " " + strconv.Itoa(int(c.Year))
}

func profileFields(h *htmlWriter, form ProfileForm) {
	field := func(label string, name string, inputType string, value string, required bool) {
		h.raw(`<label>` + label + ` <input type="` + inputType + `" name="` + name + `" value="`)
		h.text(value)
		h.raw(`"`)
		if required {
			h.raw(` required`)
		}
		h.raw(`></label>`)
	}
	field("First name", "first_name", "text", form.FirstName, true)
	field("Last name", "last_name", "text", form.LastName, true)
	field("Phone", "phone", "tel", form.Phone, false)
	field("Email", "email", "email", form.Email, false)
}

func CreateProfile(form ProfileForm, errText string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Create profile</h1>`)
		h.render(ctx, Notification(NotifyError, errText))
		h.raw(`<form method="post" action="/createProfile">`)
		profileFields(h, form)
		h.raw(`<label>Username <input type="text" name="username" required value="`)
		h.text(form.Username)
		h.raw(`"></label><label>Password <input type="password" name="password" required></label>`)
		h.raw(`<button type="submit">Create</button></form>`)
	})
}

func Profile(
	form ProfileForm,
	enrolled []db.ListCoursesRow,
	available []db.ListCoursesRow,
	errText string,
	notice string,
) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>My profile</h1>`)
		h.render(ctx, Notification(NotifyError, errText))
		h.render(ctx, Notification(NotifySuccess, notice))
		h.raw(`<form method="post" action="/profile">`)
		profileFields(h, form)
		h.raw(`<button type="submit">Save</button></form>`)

		h.raw(`<h2>My courses</h2>`)
		if len(enrolled) == 0 {
			h.raw(`<p class="empty">No courses yet.</p>`)
		} else {
			h.raw(`<ul class="courses">`)
			for _, c := range enrolled {
				id := strconv.Itoa(int(c.CourseID))
				h.raw(`<li>`)
				h.text(courseLabel(c))
				h.raw(` <form method="post" action="/profile/courses/` + id + `/delete">`)
				h.raw(`<button type="submit">Drop</button></form></li>`)
			}
			h.raw(`</ul>`)
		}

		if len(available) == 0 {
			return
		}
		h.raw(`<form method="post" action="/profile/courses"><select name="course_id">`)
		for _, c := range available {
			h.raw(`<option value="` + strconv.Itoa(int(c.CourseID)) + `">`)
			h.text(courseLabel(c))
			h.raw(`</option>`)
		}
		h.raw(`</select><button type="submit">Add course</button></form>`)
	})
}
