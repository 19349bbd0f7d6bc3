package llm

import (
	"strings"
	"unicode/utf8"
)

const diffPromptLimit = 4000

const systemPrompt = "You are a professional Git commit message generator, " +
	"helping developers generate commit messages that comply with the " +
	"Conventional Commits specification."

// buildPrompt wraps the staged diff in the generation instruction. Oversized
// diffs are truncated to keep the request within a reasonable token budget.
func buildPrompt(diff string) string {
	if len(diff) > diffPromptLimit {
		diff = truncateToValidUTF8(diff, diffPromptLimit) + "\n...(diff is too long, truncated)"
	}

	var b strings.Builder
	b.WriteString("Generate a concise commit message for the following staged changes.\n")
	b.WriteString("Respond with the commit message only, no explanations, no code fences.\n\n")
	b.WriteString("Diff:\n")
	b.WriteString(diff)
	return b.String()
}

// truncateToValidUTF8 cuts s to at most limit bytes without splitting a rune.
func truncateToValidUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	truncated := s[:limit]
	for len(truncated) > 0 && !utf8.ValidString(truncated) {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated
}
