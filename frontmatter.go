package clipvault

// Frontmatter is the metadata header written at the top of every saved
// document. Field order is fixed so the header scan in duplicate detection
// sees a stable layout.
type Frontmatter struct {
	URL       string   `yaml:"url"`
	Saved     string   `yaml:"saved"`
	Title     string   `yaml:"title"`
	Source    string   `yaml:"source"`
	Author    string   `yaml:"author,omitempty"`
	Published string   `yaml:"published,omitempty"`
	Tags      []string `yaml:"tags"`
	Status    string   `yaml:"status"`
	Warning   string   `yaml:"warning,omitempty"`
	Summary   string   `yaml:"summary,omitempty"`
}

// FrontmatterEncoder serializes a Frontmatter block, including the
// surrounding "---" delimiter lines.
type FrontmatterEncoder interface {
	Encode(fm *Frontmatter) (string, error)
}
