package digest

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"devdigest/internal/models"
)

// NoActivitySummary is returned verbatim for an empty batch.
const NoActivitySummary = "No recent activity found"

const systemPrompt = `You summarize GitHub activity with these rules:
1. Group identical/similar items together
2. Remove technical implementation details unless crucial
3. Start each bullet with a verb
4. Include the impact/benefit
5. Maximum 3-5 bullet points`

// Completer produces a chat completion for a system/user prompt pair.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Generator produces the natural-language summary of a contribution batch,
// preferring the generative API and degrading to the deterministic
// aggregator when the call fails in any way.
type Generator struct {
	completer Completer
	logger    *logrus.Logger
}

// NewGenerator creates a summary generator
func NewGenerator(completer Completer, logger *logrus.Logger) *Generator {
	return &Generator{
		completer: completer,
		logger:    logger,
	}
}

// Summarize returns a bullet-point summary of the batch. Generation
// failures are recovered locally and never surfaced to the caller.
func (g *Generator) Summarize(ctx context.Context, batch []models.Contribution) string {
	if len(batch) == 0 {
		return NoActivitySummary
	}

	lines := make([]string, 0, len(batch))
	for _, c := range batch {
		lines = append(lines, fmt.Sprintf("- %s: %s (%s)", strings.ToUpper(string(c.Kind)), c.Title, c.Repo))
	}
	activities := strings.Join(lines, "\n")

	summary, err := g.completer.Complete(ctx, systemPrompt, "Clean and summarize these activities:\n"+activities)
	if err != nil {
		g.logger.WithError(err).Warn("Summary generation failed, using fallback aggregator")
		return FallbackSummary(batch)
	}

	if !strings.HasPrefix(summary, "•") {
		summary = "• " + summary
	}
	return summary
}
