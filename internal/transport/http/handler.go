package http

import (
	"context"
	"encoding/json"
	"net/http"

	"portfolio/internal/contrib"
	"portfolio/internal/domain"
	"portfolio/internal/projects"
	"portfolio/internal/stats"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type ProfilesService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	PutProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.Profile, error)
}

type StatsService interface {
	Dashboard(ctx context.Context, userID string, enabled stats.EnabledPlatforms) (stats.Dashboard, error)
}

type ContributionsService interface {
	Contributions(ctx context.Context, userID string, view contrib.View) (contrib.Listing, error)
}

type ProjectsService interface {
	Projects(ctx context.Context, userID string) (projects.Summary, error)
}

type Handler struct {
	profilesService      ProfilesService
	statsService         StatsService
	contributionsService ContributionsService
	projectsService      ProjectsService
	log                  *zap.SugaredLogger
	pageSize             int
}

func NewHandler(
	profiles ProfilesService,
	dsa StatsService,
	contributions ContributionsService,
	prj ProjectsService,
	log *zap.SugaredLogger,
	pageSize int,
) *Handler {
	return &Handler{
		profilesService:      profiles,
		statsService:         dsa,
		contributionsService: contributions,
		projectsService:      prj,
		log:                  log.Named("http"),
		pageSize:             pageSize,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(requestLogger(h.log))
	router.Use(middleware.Recoverer)

	router.Route("/users/{userID}", func(r chi.Router) {
		r.Get("/", h.handleProfileGet)
		r.Put("/", h.handleProfilePut)
		r.Patch("/", h.handleProfilePatch)
		r.Get("/dsa", h.handleDashboard)
		r.Get("/contributions", h.handleContributions)
		r.Get("/projects", h.handleProjects)
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return router
}

// Helpers

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status, body := mappingDomainErrors(err)
	writeJSON(w, status, body)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: errorBody{
			Code:    "BAD_REQUEST",
			Message: message,
		},
	})
}
