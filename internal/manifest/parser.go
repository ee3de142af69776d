package manifest

import (
	"fmt"
	"io/fs"
	"strings"

	"go.yaml.in/yaml/v3"
)

// InvalidError reports a manifest that failed schema validation.
type InvalidError struct {
	Source string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("invalid manifest %s: %s", e.Source, strings.Join(msgs, "; "))
}

// Parse validates data against the catalog schema and decodes it.
// source names the manifest in error messages.
func Parse(data []byte, source string) (*CatalogManifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: source, Issues: result.Issues}
	}

	var m CatalogManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", source, err)
	}

	seen := make(map[string]bool, len(m.Templates))
	for _, t := range m.Templates {
		if seen[t.Name] {
			return nil, fmt.Errorf("invalid manifest %s: duplicate template name %q", source, t.Name)
		}
		seen[t.Name] = true
	}

	return &m, nil
}

// ParseFS reads and parses the manifest at the root of fsys.
func ParseFS(fsys fs.FS) (*CatalogManifest, error) {
	data, err := fs.ReadFile(fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}
	return Parse(data, FileName)
}
