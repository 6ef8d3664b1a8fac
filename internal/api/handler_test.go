package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio-site/internal/database"
	"portfolio-site/internal/database/dbmock"
	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/portfolio"
)

const testToken = "admin-token"

type stubSyncer struct {
	count   int
	err     error
	handles []string
}

func (s *stubSyncer) SyncUser(_ context.Context, handle string) (int, error) {
	s.handles = append(s.handles, handle)
	return s.count, s.err
}

func setupRouter(t *testing.T) (http.Handler, *dbmock.MockQuerier, *stubSyncer) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mockQ := new(dbmock.MockQuerier)
	syncer := &stubSyncer{}
	return NewRouter(portfolio.NewService(mockQ, logger), syncer, testToken, logger), mockQ, syncer
}

func doRequest(h http.Handler, method, path, body string, admin bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	router, _, _ := setupRouter(t)

	rec := doRequest(router, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListProjects(t *testing.T) {
	t.Run("returns featured and other groups", func(t *testing.T) {
		router, mockQ, _ := setupRouter(t)
		mockQ.On("ListProjects", mock.Anything).Return([]database.Project{
			{ID: 1, Name: "cli", Featured: true},
			{ID: 2, Name: "notes"},
		}, nil).Once()

		rec := doRequest(router, http.MethodGet, "/v1/projects", "", false)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Len(t, body["featured"], 1)
		assert.Len(t, body["other"], 1)
		assert.Equal(t, float64(2), body["total"])
		assert.Equal(t, false, body["empty"])
		assert.NotContains(t, body, "message")
	})

	t.Run("empty store prompts for a sync", func(t *testing.T) {
		router, mockQ, _ := setupRouter(t)
		mockQ.On("ListProjects", mock.Anything).Return([]database.Project(nil), nil).Once()

		rec := doRequest(router, http.MethodGet, "/v1/projects", "", false)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["empty"])
		assert.Equal(t, emptyListingMessage, body["message"])
		assert.Equal(t, []any{}, body["featured"])
	})

	t.Run("read failure asks for a retry", func(t *testing.T) {
		router, mockQ, _ := setupRouter(t)
		mockQ.On("ListProjects", mock.Anything).Return([]database.Project(nil), errors.New("connection refused")).Once()

		rec := doRequest(router, http.MethodGet, "/v1/projects", "", false)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to load projects. Please try again.", decodeBody(t, rec)["error"])
	})
}

func TestSyncProjects(t *testing.T) {
	t.Run("requires the admin token", func(t *testing.T) {
		router, _, syncer := setupRouter(t)

		rec := doRequest(router, http.MethodPost, "/v1/projects/sync", `{"handle":"octo"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, syncer.handles)
	})

	t.Run("trims the handle and reports the imported count", func(t *testing.T) {
		router, _, syncer := setupRouter(t)
		syncer.count = 4

		rec := doRequest(router, http.MethodPost, "/v1/projects/sync", `{"handle":"  octo "}`, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"imported":4,"message":"Imported 4 projects from GitHub"}`, rec.Body.String())
		assert.Equal(t, []string{"octo"}, syncer.handles)
	})

	t.Run("blank handle is rejected before syncing", func(t *testing.T) {
		router, _, syncer := setupRouter(t)

		rec := doRequest(router, http.MethodPost, "/v1/projects/sync", `{"handle":"   "}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, map[string]any{"handle": "GitHub username is required"}, body["fields"])
		assert.Empty(t, syncer.handles)
	})

	t.Run("fetch failure is a bad gateway with a generic message", func(t *testing.T) {
		router, _, syncer := setupRouter(t)
		syncer.err = &custom_errors.FetchError{Handle: "octo", Err: errors.New("403 API rate limit exceeded")}

		rec := doRequest(router, http.MethodPost, "/v1/projects/sync", `{"handle":"octo"}`, true)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "failed to fetch GitHub repositories", decodeBody(t, rec)["error"])
	})

	t.Run("store failure is surfaced verbatim", func(t *testing.T) {
		router, _, syncer := setupRouter(t)
		syncer.err = errors.New(`relation "projects" does not exist`)

		rec := doRequest(router, http.MethodPost, "/v1/projects/sync", `{"handle":"octo"}`, true)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, `relation "projects" does not exist`, decodeBody(t, rec)["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _, _ := setupRouter(t)

		rec := doRequest(router, http.MethodPost, "/v1/projects/sync", `{`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAddProject(t *testing.T) {
	t.Run("stores comma separated labels as lists", func(t *testing.T) {
		router, mockQ, _ := setupRouter(t)
		mockQ.On("CreateProject", mock.Anything, mock.MatchedBy(func(p database.CreateProjectParams) bool {
			return p.Name == "Shop" &&
				assert.ObjectsAreEqual([]string{"React", "Node.js"}, p.TechStack) &&
				assert.ObjectsAreEqual([]string{}, p.Topics)
		})).Return(database.Project{ID: 3, Name: "Shop", TechStack: []string{"React", "Node.js"}}, nil).Once()

		rec := doRequest(router, http.MethodPost, "/v1/projects",
			`{"name":"Shop","description":"An online shop","github_url":"https://github.com/octo/shop","tech_stack":"React, Node.js"}`, true)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, []any{"React", "Node.js"}, body["tech_stack"])
		mockQ.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		router, mockQ, _ := setupRouter(t)

		rec := doRequest(router, http.MethodPost, "/v1/projects", `{"name":"Shop"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := decodeBody(t, rec)["fields"].(map[string]any)
		assert.Contains(t, fields, "description")
		assert.Contains(t, fields, "github_url")
		mockQ.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
	})

	t.Run("wrong token", func(t *testing.T) {
		router, _, _ := setupRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/projects", strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestContact(t *testing.T) {
	t.Run("anyone can submit", func(t *testing.T) {
		router, mockQ, _ := setupRouter(t)
		mockQ.On("CreateContactMessage", mock.Anything, mock.Anything).
			Return(database.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hi"}, nil).Once()

		rec := doRequest(router, http.MethodPost, "/v1/contact", `{"name":"Ada","email":"ada@example.com","message":"Hi"}`, false)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Ada", decodeBody(t, rec)["name"])
	})

	t.Run("invalid email", func(t *testing.T) {
		router, _, _ := setupRouter(t)

		rec := doRequest(router, http.MethodPost, "/v1/contact", `{"name":"Ada","email":"ada","message":"Hi"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("listing requires admin", func(t *testing.T) {
		router, mockQ, _ := setupRouter(t)
		mockQ.On("ListContactMessages", mock.Anything).Return([]database.ContactMessage{{Name: "Ada"}}, nil).Once()

		assert.Equal(t, http.StatusUnauthorized, doRequest(router, http.MethodGet, "/v1/contact", "", false).Code)

		rec := doRequest(router, http.MethodGet, "/v1/contact", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		var messages []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
		assert.Len(t, messages, 1)
	})
}
