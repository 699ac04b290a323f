package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ewozniak/clipvault"
	"github.com/ewozniak/clipvault/fs"
	"github.com/ewozniak/clipvault/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *clipvault.Document {
	return &clipvault.Document{
		ID:          "0b2f7a1e-0000-0000-0000-000000000000",
		URL:         "https://example.com/a",
		Title:       "A Title",
		Source:      "example.com",
		Author:      "Jo Writer",
		Tags:        []string{"golang", "testing"},
		Status:      clipvault.StatusComplete,
		Content:     "Body paragraph.",
		ContentHash: "abc123",
		SavedAt:     time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestWriter_CreateDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer := fs.NewWriter(yaml.NewEncoder())
	path := filepath.Join(dir, "A Title (2026-02-15).md")

	err := writer.CreateDocument(context.Background(), testDocument(), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "---\n"))
	assert.Contains(t, content, "url: https://example.com/a\n")
	assert.Contains(t, content, "saved: \"2026-02-15\"\n")
	assert.Contains(t, content, "author: Jo Writer\n")
	assert.Contains(t, content, "\n# A Title\n\nBody paragraph.\n")
}

func TestWriter_CreateDocument_HeaderReadableByScanner(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer := fs.NewWriter(yaml.NewEncoder())
	path := filepath.Join(dir, "A Title (2026-02-15).md")

	require.NoError(t, writer.CreateDocument(context.Background(), testDocument(), path))

	match, err := fs.NewScanner(dir).FindDuplicate(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, path, match.File)
	assert.Equal(t, "A Title", match.Title)
}

func TestWriter_CreateDocument_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "Vault", "Articles")
	writer := fs.NewWriter(yaml.NewEncoder())

	err := writer.CreateDocument(context.Background(), testDocument(), filepath.Join(dir, "doc.md"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "doc.md"))
}

func TestWriter_CreateDocument_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer := fs.NewWriter(yaml.NewEncoder())

	require.NoError(t, writer.CreateDocument(context.Background(), testDocument(), filepath.Join(dir, "doc.md")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.md", entries[0].Name())
}

func TestWriter_CreateDocument_InvalidDocument(t *testing.T) {
	t.Parallel()

	writer := fs.NewWriter(yaml.NewEncoder())

	doc := testDocument()
	doc.Tags = nil

	err := writer.CreateDocument(context.Background(), doc, filepath.Join(t.TempDir(), "doc.md"))
	assert.Equal(t, clipvault.EINVALID, clipvault.ErrorCode(err))
}
