// Package catalog provides the starter templates that create-rspack can copy.
// The built-in templates are embedded in the binary; a directory on disk with
// the same layout can replace them.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/rspack-contrib/create-rspack/internal/manifest"
)

// The all: prefix keeps files such as _gitignore, which go:embed skips by default.
//
//go:embed all:templates
var embedded embed.FS

// BuiltinSource is the Source of the embedded catalog.
const BuiltinSource = "built-in"

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Template is one selectable starter template.
type Template struct {
	Name        string
	Title       string
	Description string
	Dir         string // directory within the catalog filesystem
}

// Catalog is a closed, ordered set of templates backed by a filesystem.
type Catalog struct {
	fsys      fs.FS
	source    string
	templates []Template
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, fmt.Errorf("opening embedded templates: %w", err)
	}
	c, err := Load(sub)
	if err != nil {
		return nil, err
	}
	c.source = BuiltinSource
	return c, nil
}

// FromDir returns a catalog read from a directory on disk.
func FromDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates directory %s is not a directory", dir)
	}
	c, err := Load(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("loading templates from %s: %w", dir, err)
	}
	c.source = dir
	return c, nil
}

// Open returns the catalog at dir, or the built-in catalog when dir is empty.
func Open(dir string) (*Catalog, error) {
	if dir == "" {
		return Default()
	}
	return FromDir(dir)
}

// Load builds a catalog from fsys. When fsys has a templates.yaml at its root,
// the manifest defines the templates and their order. Otherwise every
// template-<name> directory becomes a template, sorted by name.
func Load(fsys fs.FS) (*Catalog, error) {
	var templates []Template

	_, err := fs.Stat(fsys, manifest.FileName)
	switch {
	case err == nil:
		m, err := manifest.ParseFS(fsys)
		if err != nil {
			return nil, err
		}
		for _, e := range m.Templates {
			templates = append(templates, Template{
				Name:        e.Name,
				Title:       e.DisplayTitle(),
				Description: e.Description,
				Dir:         e.SourceDir(),
			})
		}
	case errors.Is(err, fs.ErrNotExist):
		templates, err = discover(fsys)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("checking for %s: %w", manifest.FileName, err)
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("no templates found")
	}

	for _, t := range templates {
		info, err := fs.Stat(fsys, t.Dir)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", t.Name, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("template %q: %s is not a directory", t.Name, t.Dir)
		}
	}

	return &Catalog{fsys: fsys, templates: templates}, nil
}

// discover lists template-<name> directories. fs.ReadDir returns them sorted.
func discover(fsys fs.FS) ([]Template, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	var templates []Template
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), manifest.DirPrefix) {
			continue
		}
		name := strings.TrimPrefix(entry.Name(), manifest.DirPrefix)
		if !namePattern.MatchString(name) {
			continue
		}
		templates = append(templates, Template{
			Name:  name,
			Title: name,
			Dir:   entry.Name(),
		})
	}
	return templates, nil
}

// Source describes where the catalog was loaded from.
func (c *Catalog) Source() string { return c.source }

// List returns the templates in display order.
func (c *Catalog) List() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Names returns the template names in display order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.templates))
	for i, t := range c.templates {
		names[i] = t.Name
	}
	return names
}

// Find looks up a template by exact name.
func (c *Catalog) Find(name string) (Template, bool) {
	for _, t := range c.templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// FS returns the template's file tree.
func (c *Catalog) FS(t Template) (fs.FS, error) {
	sub, err := fs.Sub(c.fsys, t.Dir)
	if err != nil {
		return nil, fmt.Errorf("opening template %q: %w", t.Name, err)
	}
	return sub, nil
}

// Width returns the length of the longest template name, for aligned listings.
func (c *Catalog) Width() int {
	w := 0
	for _, t := range c.templates {
		if len(t.Name) > w {
			w = len(t.Name)
		}
	}
	return w
}

// UnknownTemplateError reports a template name the catalog does not contain.
func (c *Catalog) UnknownTemplateError(name string) error {
	if name == "" {
		name = "(empty)"
	}
	return fmt.Errorf("unknown template %q (available: %s)", name, strings.Join(c.Names(), ", "))
}
