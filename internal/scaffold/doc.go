// Package scaffold materializes a starter template on disk. It claims the
// target directory, copies the template tree byte-for-byte, and renames
// reserved placeholder files (such as _gitignore) to their real names.
package scaffold
