package narrate

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// ExtractMeetingText converts a raw.Meeting's Summary into plain prose
// suitable for narration, handling the "html" SummaryFormat case by
// stripping markup, noise elements, and boilerplate. Plain and markdown
// summaries are returned as-is — markdown cleanup already lives in
// derive.MeetingPlainText, which this package never needs to call (narrate
// depends on engine, not the other way around).
func ExtractMeetingText(m raw.Meeting) (string, error) {
	if m.SummaryFormat != "html" {
		return m.Summary, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(m.Summary))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, nav, footer, header").Remove()

	var paragraphs []string
	doc.Find("p, li, h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	if len(paragraphs) == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.Join(paragraphs, "\n\n"), nil
}
