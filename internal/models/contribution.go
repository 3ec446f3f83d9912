package models

import "time"

// ContributionKind classifies what a contribution represents
type ContributionKind string

const (
	KindCommit      ContributionKind = "commit"
	KindPullRequest ContributionKind = "pull_request"
	KindIssue       ContributionKind = "issue"
)

// Contribution is the normalized representation of a single user-relevant
// activity derived from a raw GitHub event. Immutable once constructed;
// never persisted.
type Contribution struct {
	Kind  ContributionKind `json:"kind"`
	Title string           `json:"title"`
	Date  time.Time        `json:"date"`
	Repo  string           `json:"repo"`
}
