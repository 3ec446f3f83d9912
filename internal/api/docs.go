package api

import "devdigest/internal/models"

// AnalyzeRequestDoc documents the analyze request body
// @Description Request body for the analyze endpoint
// @swagger:model AnalyzeRequestDoc
type AnalyzeRequestDoc struct {
	// GitHub username to analyze
	Username string `json:"username" example:"octocat"`
	// Trailing window in days (defaults to 7)
	Days int `json:"days" example:"7"`
}

// AnalyzeResponse is the aggregate analysis payload
// @Description Aggregate analysis of a user's recent GitHub activity
// @swagger:model AnalyzeResponse
type AnalyzeResponse struct {
	// Avatar image URL from the GitHub profile
	AvatarURL string `json:"avatar_url" example:"https://avatars.githubusercontent.com/u/583231"`
	// Display name, falling back to the username
	Name string `json:"name" example:"The Octocat"`
	// Profile biography, empty when unset
	Bio string `json:"bio" example:""`
	// Number of public repositories
	PublicRepos int `json:"public_repos" example:"8"`
	// Commits in the analyzed batch
	CommitCount int `json:"commit_count" example:"5"`
	// Pull requests in the analyzed batch
	PRCount int `json:"pr_count" example:"2"`
	// Issues in the analyzed batch
	IssueCount int `json:"issue_count" example:"1"`
	// Bullet-point activity summary
	Summary string `json:"summary" example:"• Fixed login bugs"`
	// Category labels derived from the batch
	Tags []string `json:"tags" example:"bugfix,feature"`
	// The analyzed contributions, newest first
	Contributions []models.Contribution `json:"contributions"`
}

// ErrorResponse is the error payload for failed requests
// @Description Error payload
// @swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error message
	Error string `json:"error" example:"Username required"`
}
