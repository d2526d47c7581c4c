package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Pjt727/studygroup/data"
	"github.com/Pjt727/studygroup/data/db"
	logginghelpers "github.com/Pjt727/studygroup/data/logging-helpers"
	"github.com/Pjt727/studygroup/internal/projectpath"
	serverauth "github.com/Pjt727/studygroup/server/auth"
	"github.com/Pjt727/studygroup/server/sessions"
	serverstudents "github.com/Pjt727/studygroup/server/students"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// console output always, plus JSON lines to logFile when one is configured
func newLogger(cfg Config, console io.Writer, logFile io.Writer) *slog.Logger {
	logger := slog.New(logginghelpers.NewHandler(console, &logginghelpers.Options{
		Level:   logginghelpers.LevelReportIO,
		NoColor: !cfg.Local,
	}))
	if logFile == nil {
		return logger
	}
	return logginghelpers.WithHandler(logger, slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: logginghelpers.LevelReportIO,
	}))
}

// NewRouter wires every route of the application onto a chi router.
func NewRouter(cfg Config, store *db.Store, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	// cors treats an empty origin list as allow all, so no origins means no cors at all
	if len(cfg.AllowedOrigins) > 0 {
		cors := cors.New(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300, // Maximum age for preflight requests
		})
		r.Use(cors.Handler)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	sessionStore := sessions.NewStore(cfg.SessionTTL, cfg.SecureCookies)

	var root chi.Router = r
	serverauth.PopulateAuthRoutes(&root, store, sessionStore, logger)
	serverstudents.PopulateStudentRoutes(&root, store, sessionStore, logger)

	fileServer(r, "/static", http.Dir(filepath.Join(projectpath.Root, "server", "static")))
	return r
}

func Serve(cfg Config) error {
	var logFile io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("could not open log file %s: %w", cfg.LogFile, err)
		}
		defer f.Close()
		logFile = f
	}
	logger := newLogger(cfg, os.Stderr, logFile)

	dbPool, err := data.NewPool(context.Background(), false)
	if err != nil {
		logger.Error("Fatal cannot connect to main db", "err", err)
		return err
	}
	defer dbPool.Close()

	r := NewRouter(cfg, db.NewStore(dbPool), logger)

	logger.Info("Running server on", "port", cfg.Port)
	return http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), r)
}

// https://github.com/go-chi/chi/blob/master/_examples/fileserver/main.go
func fileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit any URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", 301).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, r)
	})
}
