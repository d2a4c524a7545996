package tagging

import (
	"context"
	"path/filepath"
	"strings"
)

// Tagger produces categorization tags for a document filename. A Tagger
// never fails: implementations fall back to keyword tags on any error.
type Tagger interface {
	TagsFor(ctx context.Context, filename string) []string
}

// FallbackTagger derives tags from filename keywords only
type FallbackTagger struct{}

func NewFallbackTagger() *FallbackTagger {
	return &FallbackTagger{}
}

func (t *FallbackTagger) TagsFor(_ context.Context, filename string) []string {
	return FallbackTags(filename)
}

// FallbackTags maps well-known business-document keywords in the filename
// to tags. Returns a single generic tag when nothing matches.
func FallbackTags(filename string) []string {
	name := strings.ToLower(strings.TrimSuffix(filename, filepath.Ext(filename)))

	keywords := []struct {
		substr string
		tag    string
	}{
		{"invoice", "invoice"},
		{"receipt", "receipt"},
		{"order", "order"},
		{"certificate", "certificate"},
		{"cert", "certificate"},
		{"contract", "contract"},
		{"agreement", "contract"},
		{"spec", "spec-sheet"},
		{"datasheet", "spec-sheet"},
		{"shipping", "shipping"},
		{"customs", "customs"},
		{"export", "export"},
		{"import", "import"},
		{"quality", "quality-report"},
		{"inspection", "quality-report"},
		{"tannery", "tannery"},
		{"leather", "leather"},
		{"sample", "sample"},
	}

	var tags []string
	seen := make(map[string]bool)
	for _, kw := range keywords {
		if strings.Contains(name, kw.substr) && !seen[kw.tag] {
			tags = append(tags, kw.tag)
			seen[kw.tag] = true
		}
	}

	if len(tags) == 0 {
		return []string{"business-document"}
	}
	return tags
}
