package models

// Profile holds the public GitHub profile fields surfaced in the analyze
// response. Values come verbatim from the GitHub API; Name falls back to
// the username when the profile has no display name set.
type Profile struct {
	AvatarURL   string `json:"avatar_url"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
}
