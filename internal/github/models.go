package github

import "time"

// userProfile matches the response of GET /users/{username}. Name and Bio
// are null for accounts that never set them.
type userProfile struct {
	Login       string  `json:"login"`
	AvatarURL   string  `json:"avatar_url"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
}

// Event is a raw public activity record from GET /users/{username}/events.
// Only the fields the digest pipeline consumes are decoded; everything else
// in the payload is dropped.
type Event struct {
	Type      string       `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	Repo      EventRepo    `json:"repo"`
	Payload   EventPayload `json:"payload"`
}

type EventRepo struct {
	Name string `json:"name"`
}

// EventPayload carries the union of payload shapes across the event types
// we care about. A push event has Commits; pull-request and issue events
// have their respective refs. Absent pieces decode to zero values.
type EventPayload struct {
	Commits     []EventCommit `json:"commits"`
	PullRequest *EventRef     `json:"pull_request"`
	Issue       *EventRef     `json:"issue"`
}

type EventCommit struct {
	Message string `json:"message"`
}

type EventRef struct {
	Title string `json:"title"`
}
