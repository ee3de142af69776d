// Package target resolves the directory a new project is written to.
package target

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rspack-contrib/create-rspack/internal/ui"
)

// Asker asks a free-form question and returns the raw answer.
type Asker interface {
	Text(message, initial string) (string, error)
}

// Resolver prompts for a project folder until it names a path that does not exist.
type Resolver struct {
	Asker       Asker
	Out         io.Writer // conflict messages
	Dir         string    // base for relative names, normally the working directory
	DefaultName string    // used when the answer is blank
	Message     string    // question text; defaults to "Project folder"
}

// FormatTargetDir trims whitespace and strips trailing path separators.
// Applying it twice gives the same result as applying it once.
func FormatTargetDir(input string) string {
	return strings.TrimRightFunc(strings.TrimSpace(input), func(r rune) bool {
		return r == '/' || r == filepath.Separator || unicode.IsSpace(r)
	})
}

// Normalize formats input and falls back to def when nothing is left.
func Normalize(input, def string) string {
	if name := FormatTargetDir(input); name != "" {
		return name
	}
	return def
}

// Path resolves name against dir. Absolute names are returned cleaned.
func Path(dir, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(dir, name)
}

// Exists reports whether any filesystem entry is present at path. Symlinks
// count, dangling or not. Errors other than "not exist" count as absent; the
// later create reports the real problem.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Resolve asks until the answer names a path that does not exist and returns
// the normalized name and its resolved path. The only error is the Asker's,
// such as prompt.ErrCancelled.
func (r *Resolver) Resolve() (name, root string, err error) {
	message := r.Message
	if message == "" {
		message = "Project folder"
	}
	warn := ui.New(r.Out).Warning

	for {
		answer, err := r.Asker.Text(message, r.DefaultName)
		if err != nil {
			return "", "", err
		}

		name = Normalize(answer, r.DefaultName)
		root = Path(r.Dir, name)
		if !Exists(root) {
			return name, root, nil
		}

		fmt.Fprintln(r.Out, warn.Render(ConflictMessage(name)))
	}
}

// ConflictMessage is shown when the chosen folder already exists.
func ConflictMessage(name string) string {
	return fmt.Sprintf("%s is not empty, please choose another project name", name)
}
