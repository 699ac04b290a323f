package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ewozniak/clipvault/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", "2026-02-15")
	require.NoError(t, err)
	return func() time.Time { return ts }
}

func TestSanitizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "A Perfectly Fine Title", "A Perfectly Fine Title"},
		{"illegal characters", `What: Is/This\Even?`, "What- Is-This-Even"},
		{"collapses whitespace", "Too   many\t spaces", "Too many spaces"},
		{"trims hyphens", "<<Wrapped>>", "Wrapped"},
		{"control characters", "Tab\x09Bell\x07Title", "TabBellTitle"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.SanitizeTitle(tt.in))
		})
	}
}

func TestSanitizeTitle_CapsLength(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("abcde ", 40)
	got := fs.SanitizeTitle(long)

	assert.LessOrEqual(t, len(got), 120)
	assert.False(t, strings.HasSuffix(got, " "))
}

func TestNamer_Generate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	namer := fs.NewNamerAt(dir, fixedClock(t))

	plan, err := namer.Generate("Foo", "example.com")
	require.NoError(t, err)

	assert.Equal(t, "Foo (2026-02-15).md", plan.Filename)
	assert.Equal(t, filepath.Join(dir, "Foo (2026-02-15).md"), plan.Path)
}

func TestNamer_Generate_CollisionSuffix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	namer := fs.NewNamerAt(dir, fixedClock(t))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foo (2026-02-15).md"), []byte("x"), 0644))

	plan, err := namer.Generate("Foo", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "Foo (2026-02-15)-2.md", plan.Filename)

	require.NoError(t, os.WriteFile(plan.Path, []byte("x"), 0644))

	plan, err = namer.Generate("Foo", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "Foo (2026-02-15)-3.md", plan.Filename)
}

func TestNamer_Generate_Fallbacks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	namer := fs.NewNamerAt(dir, fixedClock(t))

	plan, err := namer.Generate("", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com (2026-02-15).md", plan.Filename)

	plan, err = namer.Generate("???", "")
	require.NoError(t, err)
	assert.Equal(t, "Untitled Article (2026-02-15).md", plan.Filename)
}
