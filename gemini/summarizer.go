// Package gemini provides article summarization using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/ewozniak/clipvault"
	"google.golang.org/genai"
)

// DefaultModel is the model used for summarization.
const DefaultModel = "gemini-3-flash-preview"

// maxContentChars truncates very long articles before prompting; the lead
// of an article is enough for a two-sentence abstract.
const maxContentChars = 24000

// Ensure Summarizer implements clipvault.Summarizer at compile time.
var _ clipvault.Summarizer = (*Summarizer)(nil)

// Summarizer produces short abstracts of saved articles with Gemini.
// Summarization is best-effort: callers are expected to treat errors as
// "no summary" and save the article anyway.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize returns a short abstract of the article content.
func (s *Summarizer) Summarize(ctx context.Context, content, title string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", clipvault.Errorf(clipvault.EINVALID, "no content to summarize")
	}

	prompt := BuildUserPrompt(content, title)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", clipvault.Errorf(clipvault.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for summarization calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize web articles for a personal archive. Reply with two or three plain sentences capturing what the article says. No preamble, no markdown.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the summarization prompt for one article.
func BuildUserPrompt(content, title string) string {
	if runes := []rune(content); len(runes) > maxContentChars {
		content = string(runes[:maxContentChars])
	}

	var sb strings.Builder
	sb.WriteString("<article>\n")
	if title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n", content)
	sb.WriteString("</article>\n\n")
	sb.WriteString("Summarize this article.")
	return sb.String()
}
