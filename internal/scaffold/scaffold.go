package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrTargetExists is returned by Create when the target directory already exists.
var ErrTargetExists = errors.New("target directory already exists")

// RenameFiles maps placeholder names shipped in templates to the names written
// to disk. A published package cannot carry a literal .gitignore.
var RenameFiles = map[string]string{
	"_gitignore": ".gitignore",
}

// Result holds the outcome of a copy.
type Result struct {
	OutputDir string
	Files     []string // destination-relative, slash-separated, in copy order
}

// DestName returns the on-disk name for a template entry.
func DestName(name string) string {
	if renamed, ok := RenameFiles[name]; ok {
		return renamed
	}
	return name
}

// Create claims root as a new directory and copies src into it. Missing parent
// directories are created. If root already exists the returned error wraps
// ErrTargetExists and nothing is written.
func Create(src fs.FS, root string) (*Result, error) {
	if err := os.MkdirAll(filepath.Dir(root), dirPerm); err != nil {
		return nil, fmt.Errorf("creating parent of %s: %w", root, err)
	}
	if err := os.Mkdir(root, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%s: %w", root, ErrTargetExists)
		}
		return nil, fmt.Errorf("creating %s: %w", root, err)
	}
	return Copy(src, root)
}

// Copy recursively copies the tree in src to dst, applying RenameFiles at
// every level. Symbolic links in src are followed. Existing files are overwritten. On error the partially copied
// tree is left in place.
func Copy(src fs.FS, dst string) (*Result, error) {
	result := &Result{OutputDir: dst}
	if err := copyDir(src, ".", dst, "", result); err != nil {
		return result, err
	}
	return result, nil
}

// copyDir copies srcDir (a path within src) into dstDir. rel is dstDir's
// path relative to the copy root, used for Result.Files.
func copyDir(src fs.FS, srcDir, dstDir, rel string, result *Result) error {
	if err := os.MkdirAll(dstDir, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dstDir, err)
	}

	entries, err := fs.ReadDir(src, srcDir)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		srcPath := path.Join(srcDir, entry.Name())
		name := DestName(entry.Name())
		dstPath := filepath.Join(dstDir, name)
		relPath := path.Join(rel, name)

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			// Links are followed; a linked directory is copied as a directory.
			info, err := fs.Stat(src, srcPath)
			if err != nil {
				return fmt.Errorf("resolving template link %s: %w", srcPath, err)
			}
			isDir = info.IsDir()
		}

		if isDir {
			if err := copyDir(src, srcPath, dstPath, relPath, result); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(src, srcPath, dstPath); err != nil {
			return err
		}
		result.Files = append(result.Files, relPath)
	}

	return nil
}

// copyFile streams the bytes of srcPath to dstPath, creating or truncating it.
func copyFile(src fs.FS, srcPath, dstPath string) error {
	in, err := src.Open(srcPath)
	if err != nil {
		return fmt.Errorf("opening template file %s: %w", srcPath, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dstPath, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", dstPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dstPath, err)
	}
	return nil
}
