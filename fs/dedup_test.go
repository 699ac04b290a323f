package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ewozniak/clipvault/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, url, title string) string {
	t.Helper()
	content := "---\nurl: " + url + "\nsaved: \"2026-02-15\"\ntitle: " + title +
		"\nsource: example.com\ntags:\n    - untagged\nstatus: complete\n---\n\n# " + title + "\n\nbody\n"
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanner_FindDuplicate_Match(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "Other (2026-02-15).md", "https://example.com/other", "Other")
	want := writeDoc(t, dir, "Target (2026-02-15).md", "https://example.com/a", "Target")

	scanner := fs.NewScanner(dir)

	match, err := scanner.FindDuplicate(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, want, match.File)
	assert.Equal(t, "Target", match.Title)
}

func TestScanner_FindDuplicate_NoMatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "Target (2026-02-15).md", "https://example.com/a", "Target")

	scanner := fs.NewScanner(dir)

	match, err := scanner.FindDuplicate(context.Background(), "https://example.com/b")
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestScanner_FindDuplicate_MissingDirectory(t *testing.T) {
	t.Parallel()

	scanner := fs.NewScanner(filepath.Join(t.TempDir(), "does-not-exist"))

	match, err := scanner.FindDuplicate(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestScanner_FindDuplicate_SkipsMalformedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.md"), []byte("no frontmatter here"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unterminated.md"), []byte("---\nurl: x\n"), 0644))
	want := writeDoc(t, dir, "Valid (2026-02-15).md", "https://example.com/a", "Valid")

	scanner := fs.NewScanner(dir)

	match, err := scanner.FindDuplicate(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, want, match.File)
}

func TestScanner_FindDuplicate_IgnoresQueueAndNonMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".queue.json"), []byte(`[{"url":"https://example.com/a"}]`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("url: https://example.com/a"), 0644))

	scanner := fs.NewScanner(dir)

	match, err := scanner.FindDuplicate(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestScanner_FindDuplicate_QuotedTitle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "---\nurl: https://example.com/a\ntitle: \"Quoted: Title\"\nstatus: complete\n---\n\nbody\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "q.md"), []byte(content), 0644))

	scanner := fs.NewScanner(dir)

	match, err := scanner.FindDuplicate(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "Quoted: Title", match.Title)
}
