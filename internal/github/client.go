package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"devdigest/internal/models"
)

const eventsPerPage = 100

// Client talks to the GitHub REST API for a single user's profile and
// public events. When no token is configured it falls back to
// unauthenticated (rate-limited) access.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
	logger  *logrus.Logger
}

// ClientOption allows configuring the GitHub client
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.client = httpClient
	}
}

// NewClient creates a new GitHub client. An empty token means
// unauthenticated requests.
func NewClient(token, baseURL string, logger *logrus.Logger, opts ...ClientOption) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = 15 * time.Second

	client := &Client{
		client:  httpClient,
		baseURL: baseURL,
		token:   token,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// GetUserProfile fetches the public profile for a username. Any non-success
// status from GitHub is reported as a UserNotFoundError.
func (c *Client) GetUserProfile(ctx context.Context, username string) (*models.Profile, error) {
	if username == "" {
		return nil, &ValidationError{Field: "username", Value: "cannot be empty"}
	}

	url := fmt.Sprintf("%s/users/%s", c.baseURL, username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewGitHubError(0, "profile request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"username": username,
			"status":   resp.StatusCode,
		}).Warn("Profile lookup rejected by GitHub")
		return nil, NewUserNotFoundError(username)
	}

	var profile userProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, NewGitHubError(resp.StatusCode, "failed to decode profile", err)
	}

	result := &models.Profile{
		AvatarURL:   profile.AvatarURL,
		Name:        username,
		PublicRepos: profile.PublicRepos,
	}
	if profile.Name != nil && *profile.Name != "" {
		result.Name = *profile.Name
	}
	if profile.Bio != nil {
		result.Bio = *profile.Bio
	}

	return result, nil
}

// GetUserEvents fetches the most recent page of public events for a
// username. Absence of activity is not an error: any upstream failure is
// logged and reported as an empty event list.
func (c *Client) GetUserEvents(ctx context.Context, username string) ([]Event, error) {
	if username == "" {
		return nil, &ValidationError{Field: "username", Value: "cannot be empty"}
	}

	url := fmt.Sprintf("%s/users/%s/events?per_page=%d", c.baseURL, username, eventsPerPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WithField("username", username).WithError(err).Warn("Events request failed, treating as no activity")
		return []Event{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.WithFields(logrus.Fields{
			"username": username,
			"status":   resp.StatusCode,
			"body":     string(body),
		}).Warn("Events fetch returned non-success status, treating as no activity")
		return []Event{}, nil
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		c.logger.WithField("username", username).WithError(err).Warn("Failed to decode events, treating as no activity")
		return []Event{}, nil
	}

	return events, nil
}
