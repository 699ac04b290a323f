package yaml_test

import (
	"strings"
	"testing"

	"github.com/ewozniak/clipvault"
	"github.com/ewozniak/clipvault/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	enc := yaml.NewEncoder()

	got, err := enc.Encode(&clipvault.Frontmatter{
		URL:    "https://example.com/a",
		Saved:  "2026-02-15",
		Title:  "A Title",
		Source: "example.com",
		Tags:   []string{"golang", "testing"},
		Status: "complete",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "---\n"))
	assert.True(t, strings.HasSuffix(got, "---\n"))
	assert.Contains(t, got, "url: https://example.com/a\n")
	assert.Contains(t, got, "saved: \"2026-02-15\"\n")
	assert.Contains(t, got, "title: A Title\n")
	assert.Contains(t, got, "status: complete\n")
	assert.NotContains(t, got, "author:")
	assert.NotContains(t, got, "warning:")

	// url must come before title: the duplicate scanner reads fields in
	// declaration order within the header block.
	assert.Less(t, strings.Index(got, "url:"), strings.Index(got, "title:"))
}

func TestEncoder_Encode_OptionalFields(t *testing.T) {
	t.Parallel()

	enc := yaml.NewEncoder()

	got, err := enc.Encode(&clipvault.Frontmatter{
		URL:     "https://example.com/a",
		Saved:   "2026-02-15",
		Title:   "Paywalled",
		Source:  "example.com",
		Tags:    []string{"untagged"},
		Status:  "partial",
		Warning: "content may be incomplete (possible paywall)",
	})
	require.NoError(t, err)

	assert.Contains(t, got, "status: partial\n")
	assert.Contains(t, got, "warning: content may be incomplete (possible paywall)\n")
}

func TestEncoder_Encode_NilFrontmatter(t *testing.T) {
	t.Parallel()

	enc := yaml.NewEncoder()

	_, err := enc.Encode(nil)
	assert.Equal(t, clipvault.EINVALID, clipvault.ErrorCode(err))
}
