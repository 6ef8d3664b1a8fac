// internal/api/handler.go
package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/model"
	"portfolio-site/internal/portfolio"
)

// Largest accepted request body.
const maxBodyBytes = 1 << 20

const emptyListingMessage = "No projects yet. Sync your GitHub repositories to get started."

// ProjectSyncer imports the repositories of a GitHub user.
type ProjectSyncer interface {
	SyncUser(ctx context.Context, handle string) (int, error)
}

// Handler is the container for API dependencies.
type Handler struct {
	portfolio  *portfolio.Service
	syncer     ProjectSyncer
	adminToken string
	logger     *slog.Logger
}

// NewRouter creates and configures a new chi router with all API routes.
func NewRouter(svc *portfolio.Service, syncer ProjectSyncer, adminToken string, logger *slog.Logger) http.Handler {
	h := &Handler{
		portfolio:  svc,
		syncer:     syncer,
		adminToken: adminToken,
		logger:     logger,
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger) // Chi's default logger
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// API Routes
	r.Get("/health", h.healthCheck)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/projects", h.listProjects)
		r.Post("/contact", h.submitContact)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/projects", h.addProject)
			r.Post("/projects/sync", h.syncProjects)
			r.Get("/contact", h.listContactMessages)
		})
	})

	return r
}

// healthCheck is a simple health endpoint.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type listProjectsResponse struct {
	model.ProjectListing
	Message string `json:"message,omitempty"`
}

// listProjects returns every stored project split into featured and other.
// GET /v1/projects
func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	listing, err := h.portfolio.ListProjects(r.Context())
	if err != nil {
		h.logger.Error("Failed to list projects", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to load projects. Please try again.")
		return
	}

	resp := listProjectsResponse{ProjectListing: listing}
	if listing.Empty {
		resp.Message = emptyListingMessage
	}
	respondWithJSON(w, http.StatusOK, resp)
}

type syncRequest struct {
	Handle string `json:"handle"`
}

type syncResponse struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// syncProjects imports the repositories of a GitHub user.
// POST /v1/projects/sync
func (h *Handler) syncProjects(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	handle := strings.TrimSpace(req.Handle)
	if handle == "" {
		h.respondWithServiceError(w, custom_errors.ErrHandleRequired)
		return
	}

	// A started sync runs to completion even if the client goes away.
	count, err := h.syncer.SyncUser(context.WithoutCancel(r.Context()), handle)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, syncResponse{
		Imported: count,
		Message:  fmt.Sprintf("Imported %d projects from GitHub", count),
	})
}

// addProject stores a manually entered project.
// POST /v1/projects
func (h *Handler) addProject(w http.ResponseWriter, r *http.Request) {
	var form model.ProjectForm
	if !decodeJSON(w, r, &form) {
		return
	}

	project, err := h.portfolio.AddProject(context.WithoutCancel(r.Context()), form)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, project)
}

// submitContact stores a message from the contact form.
// POST /v1/contact
func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var form model.ContactForm
	if !decodeJSON(w, r, &form) {
		return
	}

	msg, err := h.portfolio.SubmitContact(r.Context(), form)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, msg)
}

// listContactMessages returns received contact messages.
// GET /v1/contact
func (h *Handler) listContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.portfolio.ListContactMessages(r.Context())
	if err != nil {
		h.logger.Error("Failed to list contact messages", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

// requireAdmin rejects requests without the configured bearer token.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// respondWithServiceError maps service errors to status codes; messages are shown to the user as-is.
func (h *Handler) respondWithServiceError(w http.ResponseWriter, err error) {
	var vErr *custom_errors.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Error(), Fields: vErr.Fields})
	case errors.Is(err, custom_errors.ErrFetchFailed):
		h.logger.Warn("GitHub request failed", "error", errors.Unwrap(err))
		respondWithError(w, http.StatusBadGateway, err.Error())
	default:
		h.logger.Error("Request failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
