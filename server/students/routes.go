package serverstudents

import (
	"log/slog"

	"github.com/Pjt727/studygroup/roster"
	"github.com/Pjt727/studygroup/server/sessions"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func PopulateStudentRoutes(r *chi.Router, store StudentStore, sessionStore *sessions.Store, logger *slog.Logger) {
	h := &studentHandler{
		store:      store,
		aggregator: roster.NewAggregator(store),
		sessions:   sessionStore,
		logger:     logger.With("routes", "students"),
	}

	(*r).Group(func(r chi.Router) {
		r.Use(sessionStore.EnsureLoggedIn)

		r.Get("/", h.dashboardHome)
		r.Get("/displayUsers", h.displayUsers)
		r.With(populatePagination).Get("/api/students", h.getStudents)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/x-www-form-urlencoded", "multipart/form-data"))
			r.Get("/createProfile", h.createProfileView)
			r.Post("/createProfile", h.createProfile)

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.profileView)
				r.Post("/", h.updateProfile)
				r.Post("/courses", h.addCourse)
				r.Post("/courses/{courseID}/delete", h.removeCourse)
			})
		})
	})
}
