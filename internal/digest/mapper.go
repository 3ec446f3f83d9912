package digest

import (
	"sort"
	"time"

	"devdigest/internal/github"
	"devdigest/internal/models"
	"devdigest/pkg/utils"
)

// maxBatchSize caps how many contributions a single analysis considers.
const maxBatchSize = 15

// MapEvents flattens raw GitHub events into normalized contributions,
// keeping only events inside the trailing window ending at now. Push events
// yield one contribution per commit (first line of the commit message);
// pull-request and issue events yield one each; every other event type is
// ignored. Events with missing payload pieces contribute nothing.
//
// The result is sorted by date descending (stable) and truncated to
// maxBatchSize entries.
func MapEvents(events []github.Event, windowDays int, now time.Time) []models.Contribution {
	cutoff := now.AddDate(0, 0, -windowDays)

	contributions := make([]models.Contribution, 0, len(events))
	for _, event := range events {
		if event.CreatedAt.IsZero() || event.CreatedAt.Before(cutoff) {
			continue
		}

		switch event.Type {
		case "PushEvent":
			for _, commit := range event.Payload.Commits {
				contributions = append(contributions, models.Contribution{
					Kind:  models.KindCommit,
					Title: utils.FirstLine(commit.Message),
					Date:  event.CreatedAt,
					Repo:  event.Repo.Name,
				})
			}
		case "PullRequestEvent":
			if event.Payload.PullRequest == nil {
				continue
			}
			contributions = append(contributions, models.Contribution{
				Kind:  models.KindPullRequest,
				Title: event.Payload.PullRequest.Title,
				Date:  event.CreatedAt,
				Repo:  event.Repo.Name,
			})
		case "IssuesEvent":
			if event.Payload.Issue == nil {
				continue
			}
			contributions = append(contributions, models.Contribution{
				Kind:  models.KindIssue,
				Title: event.Payload.Issue.Title,
				Date:  event.CreatedAt,
				Repo:  event.Repo.Name,
			})
		}
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].Date.After(contributions[j].Date)
	})

	if len(contributions) > maxBatchSize {
		contributions = contributions[:maxBatchSize]
	}

	return contributions
}
