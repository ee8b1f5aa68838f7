package narrate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider renders narration with a Gemini model. It is the only
// non-deterministic Provider in this package — callers that need
// reproducible output across runs should use TemplateProvider instead.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider constructs a client against the given API key. The
// model defaults to "gemini-2.0-flash" when empty.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("narrate: gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Narrate(ctx context.Context, req NarrationRequest) (string, error) {
	prompt := buildPrompt(req)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("narrate: gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("narrate: gemini returned empty narration")
	}
	return CleanNarration(text), nil
}

func buildPrompt(req NarrationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a one-paragraph rationale for action rank #%d at %s.\n", req.Rank, req.CompanyName)
	if req.GoalLabel != "" {
		fmt.Fprintf(&b, "It advances the goal: %s.\n", req.GoalLabel)
	}
	fmt.Fprintf(&b, "Resolution: %s. Steps: %s.\n", req.ResolutionID, strings.Join(req.Steps, "; "))
	if len(req.Evidence) > 0 {
		fmt.Fprintf(&b, "Evidence: %s.\n", strings.Join(req.Evidence, "; "))
	}
	b.WriteString("Plain prose, no markdown headers, 3-4 sentences.")
	return b.String()
}
