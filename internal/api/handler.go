package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"devdigest/internal/digest"
	apperrors "devdigest/internal/errors"
	"devdigest/internal/github"
	"devdigest/internal/models"
	"devdigest/internal/web"
)

// GitHubService fetches a user's profile and recent public events.
type GitHubService interface {
	GetUserProfile(ctx context.Context, username string) (*models.Profile, error)
	GetUserEvents(ctx context.Context, username string) ([]github.Event, error)
}

// Summarizer turns a contribution batch into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, batch []models.Contribution) string
}

type Handler struct {
	github        GitHubService
	summarizer    Summarizer
	defaultWindow int
	logger        *logrus.Logger
}

func NewHandler(githubService GitHubService, summarizer Summarizer, defaultWindow int, logger *logrus.Logger) *Handler {
	return &Handler{
		github:        githubService,
		summarizer:    summarizer,
		defaultWindow: defaultWindow,
		logger:        logger,
	}
}

type analyzeRequest struct {
	Username string      `json:"username"`
	Days     interface{} `json:"days"`
}

// Analyze handles POST /analyze
// @Summary Analyze a GitHub user's recent activity
// @Description Fetches recent public activity for a user, classifies it and returns a short summary
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body api.AnalyzeRequestDoc true "Analysis request"
// @Success 200 {object} api.AnalyzeResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
		respondWithError(c, apperrors.NewValidationError("Username required", nil))
		return
	}

	days := windowDays(req.Days, h.defaultWindow)
	log := h.logger.WithFields(logrus.Fields{
		"username": req.Username,
		"days":     days,
	})

	profile, err := h.github.GetUserProfile(c.Request.Context(), req.Username)
	if err != nil {
		log.WithError(err).Error("Profile fetch failed")
		respondWithError(c, apperrors.NewUpstreamError(err.Error(), err))
		return
	}

	events, err := h.github.GetUserEvents(c.Request.Context(), req.Username)
	if err != nil {
		log.WithError(err).Error("Events fetch failed")
		respondWithError(c, apperrors.NewUpstreamError(err.Error(), err))
		return
	}

	batch := digest.MapEvents(events, days, time.Now())

	// Classification and summarization are independent; neither sees the
	// other's result.
	tags := digest.ExtractTags(batch)
	summary := h.summarizer.Summarize(c.Request.Context(), batch)

	var commitCount, prCount, issueCount int
	for _, contribution := range batch {
		switch contribution.Kind {
		case models.KindCommit:
			commitCount++
		case models.KindPullRequest:
			prCount++
		case models.KindIssue:
			issueCount++
		}
	}

	log.WithField("contributions", len(batch)).Info("Analysis completed")

	c.JSON(http.StatusOK, AnalyzeResponse{
		AvatarURL:     profile.AvatarURL,
		Name:          profile.Name,
		Bio:           profile.Bio,
		PublicRepos:   profile.PublicRepos,
		CommitCount:   commitCount,
		PRCount:       prCount,
		IssueCount:    issueCount,
		Summary:       summary,
		Tags:          tags,
		Contributions: batch,
	})
}

// Index handles GET /
// @Summary Landing page
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML landing page"
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

// Health handles GET /healthz
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondWithError maps the application error taxonomy to HTTP responses.
// Only the error's message is surfaced, never the type prefix or the cause.
func respondWithError(c *gin.Context, err *apperrors.AppError) {
	status := http.StatusInternalServerError
	if apperrors.IsInvalidInput(err) {
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorResponse{Error: err.Message})
}

// windowDays coerces the requested day window. Anything unspecified,
// non-numeric or non-positive falls back to the default.
func windowDays(v interface{}, defaultDays int) int {
	switch d := v.(type) {
	case float64:
		if d > 0 {
			return int(d)
		}
	case string:
		if n, err := strconv.Atoi(d); err == nil && n > 0 {
			return n
		}
	}
	return defaultDays
}
