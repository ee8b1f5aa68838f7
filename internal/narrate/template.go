package narrate

import (
	"context"
	"fmt"
	"strings"
)

// TemplateProvider is the deterministic default narration provider: pure
// string formatting, no network call, no variance run to run. Always
// available, used when no API key is configured for an LLM-backed
// provider.
type TemplateProvider struct{}

func NewTemplateProvider() *TemplateProvider { return &TemplateProvider{} }

func (p *TemplateProvider) Name() string { return "template" }

func (p *TemplateProvider) Narrate(_ context.Context, req NarrationRequest) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s", req.Rank, req.CompanyName)
	if req.GoalLabel != "" {
		fmt.Fprintf(&b, " — %s", req.GoalLabel)
	}
	fmt.Fprintf(&b, "\n\n%s (score %.1f)\n", req.ResolutionID, req.RankScore)
	if len(req.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for _, s := range req.Steps {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	if len(req.Evidence) > 0 {
		b.WriteString("\nEvidence:\n")
		for _, e := range req.Evidence {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}
	return b.String(), nil
}
