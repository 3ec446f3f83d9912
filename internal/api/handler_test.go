package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"devdigest/internal/digest"
	"devdigest/internal/github"
	"devdigest/internal/models"
)

// MockGitHubService is a mock implementation of GitHubService
type MockGitHubService struct {
	mock.Mock
}

func (m *MockGitHubService) GetUserProfile(ctx context.Context, username string) (*models.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockGitHubService) GetUserEvents(ctx context.Context, username string) ([]github.Event, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]github.Event), args.Error(1)
}

// MockSummarizer is a mock implementation of Summarizer
type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, batch []models.Contribution) string {
	args := m.Called(ctx, batch)
	return args.String(0)
}

// failingCompleter always errors, forcing the generator onto the fallback path.
type failingCompleter struct{}

func (failingCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	return "", errors.New("generative API unavailable")
}

func setupTestHandler(summarizer Summarizer) (*Handler, *MockGitHubService) {
	mockGitHub := new(MockGitHubService)
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil)) // Discard logs during tests

	handler := NewHandler(mockGitHub, summarizer, 7, logger)
	return handler, mockGitHub
}

func setupTestRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", handler.Index)
	router.GET("/healthz", handler.Health)
	router.POST("/analyze", handler.Analyze)
	return router
}

func postAnalyze(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyze_MissingUsername(t *testing.T) {
	handler, _ := setupTestHandler(new(MockSummarizer))
	router := setupTestRouter(handler)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "empty username", body: `{"username": ""}`},
		{name: "invalid json", body: `{"username": `},
		{name: "days only", body: `{"days": 7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postAnalyze(router, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "Username required", response.Error)
		})
	}
}

func TestAnalyze_UserNotFound(t *testing.T) {
	handler, mockGitHub := setupTestHandler(new(MockSummarizer))
	router := setupTestRouter(handler)

	mockGitHub.On("GetUserProfile", mock.Anything, "octocat").
		Return(nil, github.NewUserNotFoundError("octocat"))

	w := postAnalyze(router, `{"username": "octocat", "days": 7}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "User 'octocat' not found", response.Error)
	mockGitHub.AssertExpectations(t)
}

func TestAnalyze_EmptyActivity(t *testing.T) {
	mockSummarizer := new(MockSummarizer)
	handler, mockGitHub := setupTestHandler(mockSummarizer)
	router := setupTestRouter(handler)

	mockGitHub.On("GetUserProfile", mock.Anything, "octocat").Return(&models.Profile{
		AvatarURL:   "https://avatars.githubusercontent.com/u/583231",
		Name:        "The Octocat",
		PublicRepos: 8,
	}, nil)
	mockGitHub.On("GetUserEvents", mock.Anything, "octocat").Return([]github.Event{}, nil)
	mockSummarizer.On("Summarize", mock.Anything, mock.Anything).Return("No recent activity found")

	w := postAnalyze(router, `{"username": "octocat"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var response AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "No recent activity found", response.Summary)
	assert.Equal(t, []string{"development"}, response.Tags)
	assert.Zero(t, response.CommitCount)
	assert.Zero(t, response.PRCount)
	assert.Zero(t, response.IssueCount)
	assert.Empty(t, response.Contributions)
	mockGitHub.AssertExpectations(t)
}

func TestAnalyze_FullPipeline(t *testing.T) {
	mockSummarizer := new(MockSummarizer)
	handler, mockGitHub := setupTestHandler(mockSummarizer)
	router := setupTestRouter(handler)

	now := time.Now()
	events := []github.Event{
		{
			Type:      "PushEvent",
			CreatedAt: now.Add(-1 * time.Hour),
			Repo:      github.EventRepo{Name: "octocat/hello-world"},
			Payload: github.EventPayload{Commits: []github.EventCommit{
				{Message: "Fix login bug"},
				{Message: "Add dashboard widget"},
			}},
		},
		{
			Type:      "PullRequestEvent",
			CreatedAt: now.Add(-2 * time.Hour),
			Repo:      github.EventRepo{Name: "octocat/hello-world"},
			Payload:   github.EventPayload{PullRequest: &github.EventRef{Title: "Implement dark mode"}},
		},
		{
			Type:      "IssuesEvent",
			CreatedAt: now.Add(-3 * time.Hour),
			Repo:      github.EventRepo{Name: "octocat/spoon-knife"},
			Payload:   github.EventPayload{Issue: &github.EventRef{Title: "Crash on startup"}},
		},
		{
			// Outside the window, must be dropped.
			Type:      "PushEvent",
			CreatedAt: now.AddDate(0, 0, -30),
			Repo:      github.EventRepo{Name: "octocat/hello-world"},
			Payload:   github.EventPayload{Commits: []github.EventCommit{{Message: "Ancient commit"}}},
		},
	}

	mockGitHub.On("GetUserProfile", mock.Anything, "octocat").Return(&models.Profile{
		AvatarURL:   "https://avatars.githubusercontent.com/u/583231",
		Name:        "The Octocat",
		Bio:         "GitHub mascot",
		PublicRepos: 8,
	}, nil)
	mockGitHub.On("GetUserEvents", mock.Anything, "octocat").Return(events, nil)
	mockSummarizer.On("Summarize", mock.Anything, mock.Anything).Return("• Fixed login and shipped dark mode")

	w := postAnalyze(router, `{"username": "octocat", "days": 7}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var response AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "The Octocat", response.Name)
	assert.Equal(t, "GitHub mascot", response.Bio)
	assert.Equal(t, 8, response.PublicRepos)
	assert.Equal(t, 2, response.CommitCount)
	assert.Equal(t, 1, response.PRCount)
	assert.Equal(t, 1, response.IssueCount)
	assert.Equal(t, "• Fixed login and shipped dark mode", response.Summary)
	assert.ElementsMatch(t, []string{"bugfix", "feature"}, response.Tags)
	require.Len(t, response.Contributions, 4)
	assert.Equal(t, models.KindCommit, response.Contributions[0].Kind)
	mockGitHub.AssertExpectations(t)
	mockSummarizer.AssertExpectations(t)
}

func TestAnalyze_GenerationFailureFallsBack(t *testing.T) {
	// Real generator wired to a completer that always fails: the request
	// must still succeed with the deterministic fallback summary.
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))
	generator := digest.NewGenerator(failingCompleter{}, logger)

	handler, mockGitHub := setupTestHandler(generator)
	router := setupTestRouter(handler)

	now := time.Now()
	events := []github.Event{
		{
			Type:      "PushEvent",
			CreatedAt: now.Add(-1 * time.Hour),
			Repo:      github.EventRepo{Name: "octocat/hello-world"},
			Payload: github.EventPayload{Commits: []github.EventCommit{
				{Message: "auth: fix refresh"},
				{Message: "auth: fix expiry"},
			}},
		},
	}

	mockGitHub.On("GetUserProfile", mock.Anything, "octocat").Return(&models.Profile{Name: "octocat"}, nil)
	mockGitHub.On("GetUserEvents", mock.Anything, "octocat").Return(events, nil)

	w := postAnalyze(router, `{"username": "octocat"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var response AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "• Made 2 improvements to auth", response.Summary)
	mockGitHub.AssertExpectations(t)
}

func TestAnalyze_DaysCoercion(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "absent days", body: `{"username": "octocat"}`},
		{name: "string days", body: `{"username": "octocat", "days": "soon"}`},
		{name: "negative days", body: `{"username": "octocat", "days": -3}`},
		{name: "numeric string days", body: `{"username": "octocat", "days": "14"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSummarizer := new(MockSummarizer)
			handler, mockGitHub := setupTestHandler(mockSummarizer)
			router := setupTestRouter(handler)

			mockGitHub.On("GetUserProfile", mock.Anything, "octocat").Return(&models.Profile{Name: "octocat"}, nil)
			mockGitHub.On("GetUserEvents", mock.Anything, "octocat").Return([]github.Event{}, nil)
			mockSummarizer.On("Summarize", mock.Anything, mock.Anything).Return("No recent activity found")

			w := postAnalyze(router, tt.body)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestIndex(t *testing.T) {
	handler, _ := setupTestHandler(new(MockSummarizer))
	router := setupTestRouter(handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "DevDigest")
}

func TestHealth(t *testing.T) {
	handler, _ := setupTestHandler(new(MockSummarizer))
	router := setupTestRouter(handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
