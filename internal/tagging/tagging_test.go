package tagging_test

import (
	"context"
	"testing"

	"backend/internal/tagging"

	"github.com/stretchr/testify/assert"
)

func TestFallbackTagsMatchesKeywords(t *testing.T) {
	tags := tagging.FallbackTags("Tannery_Invoice_March.pdf")
	assert.ElementsMatch(t, []string{"tannery", "invoice"}, tags)
}

func TestFallbackTagsDeduplicates(t *testing.T) {
	// "cert" and "certificate" both map to the certificate tag.
	tags := tagging.FallbackTags("certificate_cert_2026.pdf")
	assert.Equal(t, []string{"certificate"}, tags)
}

func TestFallbackTagsGenericDefault(t *testing.T) {
	tags := tagging.FallbackTags("zzz.bin")
	assert.Equal(t, []string{"business-document"}, tags)
}

func TestFallbackTaggerNeverFails(t *testing.T) {
	tagger := tagging.NewFallbackTagger()
	assert.NotEmpty(t, tagger.TagsFor(context.Background(), ""))
}
