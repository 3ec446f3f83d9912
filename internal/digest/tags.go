package digest

import (
	"strings"

	"devdigest/internal/models"
)

// defaultTag is used when no contribution matches any rule.
const defaultTag = "development"

// tagRules are checked in order; the first rule with a keyword found in the
// title wins for that contribution.
var tagRules = []struct {
	tag      string
	keywords []string
}{
	{"bugfix", []string{"fix", "bug", "error", "resolve"}},
	{"feature", []string{"feat", "add", "implement", "create", "new"}},
	{"documentation", []string{"doc", "readme", "comment", "guide"}},
	{"refactoring", []string{"refactor", "optimize", "improve"}},
	{"testing", []string{"test", "coverage", "spec"}},
}

// ExtractTags assigns category labels to a contribution batch using
// case-insensitive keyword matching on titles. The result is de-duplicated
// in first-seen order and never empty.
func ExtractTags(batch []models.Contribution) []string {
	seen := make(map[string]bool)
	tags := make([]string, 0, len(tagRules))

	for _, c := range batch {
		title := strings.ToLower(c.Title)
		for _, rule := range tagRules {
			if !containsAny(title, rule.keywords) {
				continue
			}
			if !seen[rule.tag] {
				seen[rule.tag] = true
				tags = append(tags, rule.tag)
			}
			break
		}
	}

	if len(tags) == 0 {
		return []string{defaultTag}
	}
	return tags
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
