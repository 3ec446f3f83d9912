package github

import "fmt"

// GitHubError represents an unexpected response from the GitHub API
type GitHubError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *GitHubError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *GitHubError) Unwrap() error {
	return e.Err
}

// UserNotFoundError represents a profile lookup the platform rejected. The
// message text is surfaced verbatim in the analyze response.
type UserNotFoundError struct {
	Username string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("User '%s' not found", e.Username)
}

// ValidationError represents invalid input to client methods
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: invalid %s: %s", e.Field, e.Value)
}

// NewGitHubError creates a new GitHubError with the given status code and message
func NewGitHubError(statusCode int, message string, err error) error {
	return &GitHubError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// NewUserNotFoundError creates a new UserNotFoundError
func NewUserNotFoundError(username string) error {
	return &UserNotFoundError{Username: username}
}

// IsUserNotFound checks if an error is a UserNotFoundError
func IsUserNotFound(err error) bool {
	_, ok := err.(*UserNotFoundError)
	return ok
}
