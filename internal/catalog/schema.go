package catalog

// Catalog is the top-level YAML structure behind the featured page.
type Catalog struct {
	Version     string       `yaml:"version" json:"version"`
	Collections []Collection `yaml:"collections" json:"collections"`
}

// Collection groups template slugs under a themed heading.
type Collection struct {
	Slug        string   `yaml:"slug" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Emoji       string   `yaml:"emoji" json:"emoji,omitempty"`
	Templates   []string `yaml:"templates" json:"templates"`
}
