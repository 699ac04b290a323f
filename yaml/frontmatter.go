// Package yaml provides YAML serialization of document frontmatter.
package yaml

import (
	"strings"

	"github.com/ewozniak/clipvault"
	"gopkg.in/yaml.v3"
)

// Ensure Encoder implements clipvault.FrontmatterEncoder at compile time.
var _ clipvault.FrontmatterEncoder = (*Encoder)(nil)

// Encoder serializes frontmatter blocks with gopkg.in/yaml.v3. Field order
// follows the Frontmatter struct declaration, so every saved document has
// the same header layout.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode returns the frontmatter block including the "---" delimiters.
func (e *Encoder) Encode(fm *clipvault.Frontmatter) (string, error) {
	if fm == nil {
		return "", clipvault.Errorf(clipvault.EINVALID, "nil frontmatter")
	}

	body, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(body)
	b.WriteString("---\n")
	return b.String(), nil
}
