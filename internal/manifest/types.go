package manifest

// FileName is the manifest's file name at the root of a template catalog.
const FileName = "templates.yaml"

// CatalogManifest lists the templates offered by a catalog, in display order.
type CatalogManifest struct {
	Templates []TemplateEntry `yaml:"templates" json:"templates"`
}

// TemplateEntry describes one starter template.
type TemplateEntry struct {
	Name        string `yaml:"name" json:"name"`                                   // e.g., "react-ts"
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`             // shown in the selector; defaults to Name
	Description string `yaml:"description,omitempty" json:"description,omitempty"` // shown by "templates"
	Dir         string `yaml:"dir,omitempty" json:"dir,omitempty"`                 // defaults to "template-<name>"
}

// DirPrefix is prepended to a template name to form its default directory.
const DirPrefix = "template-"

// DisplayTitle returns Title, falling back to Name.
func (e TemplateEntry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Name
}

// SourceDir returns Dir, falling back to "template-<name>".
func (e TemplateEntry) SourceDir() string {
	if e.Dir != "" {
		return e.Dir
	}
	return DirPrefix + e.Name
}
