package htmltomarkdown_test

import (
	"testing"

	"github.com/ewozniak/clipvault"
	"github.com/ewozniak/clipvault/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()

	got, err := conv.Convert("<h2>Section</h2><p>Some <strong>bold</strong> text.</p>")
	require.NoError(t, err)

	assert.Contains(t, got, "## Section")
	assert.Contains(t, got, "**bold**")
	assert.True(t, got[len(got)-1] == '\n')
}

func TestConverter_Convert_Links(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()

	got, err := conv.Convert(`<p><a href="https://example.com">a link</a></p>`)
	require.NoError(t, err)

	assert.Contains(t, got, "[a link](https://example.com)")
}

func TestConverter_Convert_EmptyInput(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()

	_, err := conv.Convert("   ")
	assert.Equal(t, clipvault.EINVALID, clipvault.ErrorCode(err))
}
