package tagging

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash"

// GeminiTagger asks a Gemini model for 3-5 categorization tags per
// filename. Any model failure falls back to keyword tags; bulk imports
// must keep going without the API.
type GeminiTagger struct {
	client *genai.Client
	model  string
}

// NewGeminiTagger builds a tagger from an explicit API key. model may be
// empty to use the default.
func NewGeminiTagger(ctx context.Context, apiKey, model string) (*GeminiTagger, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &GeminiTagger{client: client, model: model}, nil
}

func (t *GeminiTagger) TagsFor(ctx context.Context, filename string) []string {
	prompt := fmt.Sprintf(`Analyze this business document filename and generate relevant tags for categorization.
Filename: %q

Provide 3-5 tags that would help categorize this document for a leather-goods
manufacturer (think invoices, orders, certificates, spec sheets, shipping and
customs paperwork, quality reports).
Return only the tags as a comma-separated list, no explanations.`, filename)

	resp, err := t.client.GenerativeModel(t.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Warn().Err(err).Str("filename", filename).Msg("gemini tagging failed, using fallback tags")
		return FallbackTags(filename)
	}

	tags := parseTags(resp)
	if len(tags) == 0 {
		return FallbackTags(filename)
	}
	return tags
}

func parseTags(resp *genai.GenerateContentResponse) []string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}

	var tags []string
	for _, raw := range strings.Split(text.String(), ",") {
		if tag := strings.TrimSpace(raw); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Close releases the underlying API client
func (t *GeminiTagger) Close() error {
	return t.client.Close()
}
