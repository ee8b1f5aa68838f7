package narrate

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// CleanNarration strips conversational wrapping an LLM-backed provider
// sometimes adds around its rendered rationale (a leading/trailing fenced
// code block) so the result is pure markdown.
func CleanNarration(rendered string) string {
	cleaned := strings.TrimSpace(rendered)
	for _, fence := range []string{"```markdown", "```"} {
		if strings.HasPrefix(cleaned, fence) && strings.HasSuffix(cleaned, "```") {
			cleaned = strings.TrimSuffix(strings.TrimPrefix(cleaned, fence), "```")
			cleaned = strings.TrimSpace(cleaned)
			break
		}
	}
	return cleaned
}

// IsRenderableMarkdown reports whether goldmark can parse the narration
// without panicking. Goldmark is permissive by design, so this is a
// last-resort sanity check, not a strict validator.
func IsRenderableMarkdown(rendered string) bool {
	doc := goldmark.DefaultParser().Parse(text.NewReader([]byte(rendered)))
	return doc != nil
}
