package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/ewozniak/clipvault"
)

// maxBaseNameLength caps the sanitized title portion of a filename.
const maxBaseNameLength = 120

// Ensure Namer implements clipvault.FilenameGenerator at compile time.
var _ clipvault.FilenameGenerator = (*Namer)(nil)

// Namer derives collision-free document filenames inside an article
// directory. Collisions are resolved by probing the live filesystem, which
// is safe under the single-writer assumption.
type Namer struct {
	dir string
	now func() time.Time
}

// NewNamer creates a Namer for the given article directory.
func NewNamer(dir string) *Namer {
	return &Namer{dir: dir, now: time.Now}
}

// NewNamerAt is like NewNamer with an injected clock, for tests.
func NewNamerAt(dir string, now func() time.Time) *Namer {
	return &Namer{dir: dir, now: now}
}

// Generate returns the first free target path for a document named after
// title. The current date is appended so the same article title can be
// saved again on a later day without a suffix.
func (n *Namer) Generate(title, domain string) (*clipvault.FilenamePlan, error) {
	base := SanitizeTitle(title)
	if base == "" {
		base = SanitizeTitle(domain)
	}
	if base == "" {
		base = "Untitled Article"
	}

	base = fmt.Sprintf("%s (%s)", base, n.now().Format("2006-01-02"))

	filename := base + ".md"
	path := filepath.Join(n.dir, filename)
	for i := 2; exists(path); i++ {
		filename = fmt.Sprintf("%s-%d.md", base, i)
		path = filepath.Join(n.dir, filename)
	}

	return &clipvault.FilenamePlan{Filename: filename, Path: path}, nil
}

// SanitizeTitle turns a title into a safe base filename: control characters
// stripped, filesystem-illegal characters replaced with hyphens, whitespace
// collapsed, leading and trailing hyphens trimmed, length capped.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsControl(r):
			// drop
		case strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}

	clean := strings.Join(strings.Fields(b.String()), " ")
	clean = strings.Trim(clean, "- ")

	if runes := []rune(clean); len(runes) > maxBaseNameLength {
		clean = strings.TrimRight(string(runes[:maxBaseNameLength]), "- ")
	}
	return clean
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
