package serverstudents

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Pjt727/studygroup/data/db"
	logginghelpers "github.com/Pjt727/studygroup/data/logging-helpers"
	"github.com/Pjt727/studygroup/roster"
	"github.com/Pjt727/studygroup/server/components"
	"github.com/Pjt727/studygroup/server/sessions"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/crypto/bcrypt"
)

const (
	fallbackFirstName = "Student"
	profileSavedText  = "Profile saved."
	courseAddedText   = "Course added."
	courseDroppedText = "Course dropped."
)

type StudentStore interface {
	roster.RowSource
	GetStudentFirstName(ctx context.Context, studentID int32) (string, error)
	GetStudent(ctx context.Context, studentID int32) (db.Student, error)
	UpdateStudentProfile(ctx context.Context, arg db.UpdateStudentProfileParams) error
	CreateStudentAccount(ctx context.Context, arg db.CreateStudentAccountParams) (int32, error)
	ListCourses(ctx context.Context) ([]db.ListCoursesRow, error)
	ListStudentCourses(ctx context.Context, studentID int32) ([]db.ListCoursesRow, error)
	AddStudentCourse(ctx context.Context, arg db.AddStudentCourseParams) error
	RemoveStudentCourse(ctx context.Context, arg db.RemoveStudentCourseParams) error
}

type studentHandler struct {
	store      StudentStore
	aggregator *roster.Aggregator
	sessions   *sessions.Store
	logger     *slog.Logger
}

func (h *studentHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := components.Page(title, true, body).Render(r.Context(), w)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Could not render page", "title", title, "error", err)
	}
}

func currentSession(r *http.Request) sessions.Session {
	// routes are mounted behind EnsureLoggedIn
	session, _ := sessions.FromContext(r.Context())
	return session
}

func (h *studentHandler) dashboardHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := currentSession(r)

	firstName, err := h.store.GetStudentFirstName(ctx, session.StudentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Error fetching first name", "studentID", session.StudentID, "error", err)
		firstName = fallbackFirstName
	}
	h.renderPage(w, r, http.StatusOK, "Dashboard", components.Dashboard(firstName))
}

func (h *studentHandler) searchStudents(r *http.Request) (string, []roster.StudentRecord, error) {
	ctx := r.Context()
	session := currentSession(r)
	search := r.URL.Query().Get("search")

	students, err := h.aggregator.Search(ctx, session.StudentID, search)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, roster.ErrInvalidSemester) || errors.Is(err, roster.ErrMissingYear) {
			level = logginghelpers.LevelBrokenData
		}
		h.logger.Log(ctx, level, "Error fetching users", "search", search, "error", err)
		return search, nil, err
	}
	h.logger.Log(ctx, logginghelpers.LevelReportIO, "roster search",
		"search", search,
		"normalized", roster.Normalize(search).String(),
		"students", len(students),
	)
	return search, students, nil
}

func (h *studentHandler) displayUsers(w http.ResponseWriter, r *http.Request) {
	search, students, err := h.searchStudents(r)
	if err != nil {
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}
	h.renderPage(w, r, http.StatusOK, "Students", components.DisplayUsers(search, students))
}

func (h *studentHandler) getStudents(w http.ResponseWriter, r *http.Request) {
	_, students, err := h.searchStudents(r)
	if err != nil {
		http.Error(w, http.StatusText(500), 500)
		return
	}

	studentsJSON, err := json.Marshal(paginate(r.Context(), students))
	if err != nil {
		h.logger.Error("Could not marshal students", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(studentsJSON)
}

func optionalText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	return pgtype.Text{String: s, Valid: s != ""}
}

func profileFormFromRequest(r *http.Request) components.ProfileForm {
	return components.ProfileForm{
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
		Phone:     strings.TrimSpace(r.PostFormValue("phone")),
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		Username:  strings.TrimSpace(r.PostFormValue("username")),
	}
}

func (h *studentHandler) createProfileView(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, "Create profile", components.CreateProfile(components.ProfileForm{}, ""))
}

func (h *studentHandler) createProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.renderPage(w, r, http.StatusBadRequest, "Create profile",
			components.CreateProfile(components.ProfileForm{}, "Could not read the form."))
		return
	}
	form := profileFormFromRequest(r)
	password := r.PostFormValue("password")
	if form.FirstName == "" || form.LastName == "" || form.Username == "" || password == "" {
		h.renderPage(w, r, http.StatusBadRequest, "Create profile",
			components.CreateProfile(form, "First name, last name, username and password are required."))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "Could not encrypt password", "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	studentID, err := h.store.CreateStudentAccount(ctx, db.CreateStudentAccountParams{
		Student: db.InsertStudentParams{
			StudFirstName:   form.FirstName,
			StudLastName:    form.LastName,
			StudPhoneNumber: optionalText(form.Phone),
			StudEmail:       optionalText(form.Email),
		},
		Username:          form.Username,
		EncryptedPassword: string(hash),
	})
	if errors.Is(err, db.ErrUsernameTaken) {
		h.renderPage(w, r, http.StatusConflict, "Create profile",
			components.CreateProfile(form, "That username is already taken."))
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "Could not create profile", "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "created profile", "studentID", studentID, "username", form.Username)
	http.Redirect(w, r, "/displayUsers", http.StatusSeeOther)
}

func (h *studentHandler) renderProfile(w http.ResponseWriter, r *http.Request, status int, form *components.ProfileForm, errText string) {
	ctx := r.Context()
	session := currentSession(r)

	if form == nil {
		student, err := h.store.GetStudent(ctx, session.StudentID)
		if err != nil {
			h.logger.ErrorContext(ctx, "Could not get student", "studentID", session.StudentID, "error", err)
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		form = &components.ProfileForm{
			FirstName: student.StudFirstName,
			LastName:  student.StudLastName,
			Phone:     student.StudPhoneNumber.String,
			Email:     student.StudEmail.String,
		}
	}

	enrolled, err := h.store.ListStudentCourses(ctx, session.StudentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Could not list student courses", "studentID", session.StudentID, "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}
	courses, err := h.store.ListCourses(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Could not list courses", "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	enrolledIDs := make(map[int32]bool, len(enrolled))
	for _, c := range enrolled {
		enrolledIDs[c.CourseID] = true
	}
	available := make([]db.ListCoursesRow, 0, len(courses))
	for _, c := range courses {
		if !enrolledIDs[c.CourseID] {
			available = append(available, c)
		}
	}

	notice := h.sessions.PopNotice(r)
	h.renderPage(w, r, status, "My profile", components.Profile(*form, enrolled, available, errText, notice))
}

func (h *studentHandler) profileView(w http.ResponseWriter, r *http.Request) {
	h.renderProfile(w, r, http.StatusOK, nil, "")
}

func (h *studentHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := currentSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	form := profileFormFromRequest(r)
	if form.FirstName == "" || form.LastName == "" {
		h.renderProfile(w, r, http.StatusBadRequest, &form, "First and last name are required.")
		return
	}

	err := h.store.UpdateStudentProfile(ctx, db.UpdateStudentProfileParams{
		StudentID:       session.StudentID,
		StudFirstName:   form.FirstName,
		StudLastName:    form.LastName,
		StudPhoneNumber: optionalText(form.Phone),
		StudEmail:       optionalText(form.Email),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "Could not update profile", "studentID", session.StudentID, "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}
	h.sessions.SetNotice(r, profileSavedText)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func parseCourseID(s string) (int32, bool) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func (h *studentHandler) addCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := currentSession(r)
	courseID, ok := parseCourseID(r.FormValue("course_id"))
	if !ok {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	err := h.store.AddStudentCourse(ctx, db.AddStudentCourseParams{
		StudentID: session.StudentID,
		CourseID:  courseID,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "Could not add course", "studentID", session.StudentID, "courseID", courseID, "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}
	h.sessions.SetNotice(r, courseAddedText)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *studentHandler) removeCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := currentSession(r)
	courseID, ok := parseCourseID(chi.URLParam(r, "courseID"))
	if !ok {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	err := h.store.RemoveStudentCourse(ctx, db.RemoveStudentCourseParams{
		StudentID: session.StudentID,
		CourseID:  courseID,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "Could not remove course", "studentID", session.StudentID, "courseID", courseID, "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}
	h.sessions.SetNotice(r, courseDroppedText)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
