package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ewozniak/clipvault"
)

// maxHeaderBytes bounds how much of a document is read when scanning for
// its frontmatter block.
const maxHeaderBytes = 8 << 10

// Ensure Scanner implements clipvault.DuplicateFinder at compile time.
var _ clipvault.DuplicateFinder = (*Scanner)(nil)

// Scanner detects already-saved URLs by scanning document frontmatter.
// It reads only the header block of each file and compares the stored url
// field by exact string equality; stored values are assumed canonical.
// The scan is linear over the article directory, which is bounded by the
// size of a single operator's archive.
type Scanner struct {
	dir string
}

// NewScanner creates a Scanner over the given article directory.
func NewScanner(dir string) *Scanner {
	return &Scanner{dir: dir}
}

// FindDuplicate returns the first document whose url field equals
// normalizedURL, scanning files in name order. A missing article directory
// means no duplicates. Unreadable or malformed files are skipped.
func (s *Scanner) FindDuplicate(ctx context.Context, normalizedURL string) (*clipvault.DuplicateMatch, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".md") {
			continue
		}

		path := filepath.Join(s.dir, name)
		header, ok := readHeader(path)
		if !ok {
			continue
		}

		if headerField(header, "url") == normalizedURL {
			return &clipvault.DuplicateMatch{
				File:  path,
				Title: headerField(header, "title"),
			}, nil
		}
	}

	return nil, nil
}

// readHeader returns the text between the first and second "---" delimiter
// lines of the file at path. ok is false when the file cannot be read or
// has no frontmatter block within the first maxHeaderBytes.
func readHeader(path string) (header string, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	buf, err := io.ReadAll(io.LimitReader(f, maxHeaderBytes))
	if err != nil {
		return "", false
	}

	text := string(buf)
	if !strings.HasPrefix(text, "---\n") {
		return "", false
	}
	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", false
	}
	return rest[:end+1], true
}

// fieldPatterns caches a regexp per frontmatter field name.
var fieldPatterns = map[string]*regexp.Regexp{
	"url":   regexp.MustCompile(`(?m)^url:\s*(.+?)\s*$`),
	"title": regexp.MustCompile(`(?m)^title:\s*(.+?)\s*$`),
}

// headerField extracts a single scalar field from a frontmatter block.
// This is deliberately a dumb line match rather than a YAML parse; it is
// the only place that reads stored metadata, so a structured parser can
// replace it without touching callers.
func headerField(header, name string) string {
	re, ok := fieldPatterns[name]
	if !ok {
		re = regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(name) + `:\s*(.+?)\s*$`)
	}
	m := re.FindStringSubmatch(header)
	if m == nil {
		return ""
	}
	value := m[1]
	// yaml quotes titles containing special characters
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' ||
		value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return value
}
