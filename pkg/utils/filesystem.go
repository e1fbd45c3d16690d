// Package utils provides the process execution and filesystem indirections
// used throughout the service. Both are exposed as swappable package level
// variables so tests can substitute mocks or in-memory implementations.
package utils

import (
	"os"

	"github.com/spf13/afero"
)

// FileSystem defines the filesystem operations the service performs. It
// abstracts the underlying filesystem implementation, allowing tests to run
// against an in-memory filesystem.
type FileSystem interface {
	// ReadFile reads the file at the given path and returns its contents.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to the file at the given path with the specified
	// permissions, creating or truncating it as needed.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// Stat returns the FileInfo for the file at the given path.
	Stat(path string) (os.FileInfo, error)

	// Open opens the file at the given path for reading.
	Open(path string) (afero.File, error)

	// Remove deletes the file at the given path.
	Remove(path string) error

	// MkdirAll creates a directory along with any necessary parents.
	MkdirAll(path string, perm os.FileMode) error

	// ReadDir reads the directory at the given path and returns its entries.
	ReadDir(dirname string) ([]os.FileInfo, error)

	// Exists checks if the file or directory at the given path exists.
	Exists(path string) (bool, error)

	// DirExists checks if the directory at the given path exists.
	DirExists(path string) (bool, error)
}

// aferoFS is a concrete implementation of the FileSystem interface using
// afero.Fs.
type aferoFS struct {
	fs afero.Fs
}

// FS is the global FileSystem instance used throughout the application.
// It defaults to a real filesystem but can be swapped for testing purposes.
var FS FileSystem = &aferoFS{fs: afero.NewOsFs()}

func (a *aferoFS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

func (a *aferoFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(a.fs, path, data, perm)
}

func (a *aferoFS) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

func (a *aferoFS) Open(path string) (afero.File, error) {
	return a.fs.Open(path)
}

func (a *aferoFS) Remove(path string) error {
	return a.fs.Remove(path)
}

func (a *aferoFS) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) ReadDir(dirname string) ([]os.FileInfo, error) {
	return afero.ReadDir(a.fs, dirname)
}

func (a *aferoFS) Exists(path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

func (a *aferoFS) DirExists(path string) (bool, error) {
	return afero.DirExists(a.fs, path)
}

// For tests.
func NewMemMapFS() FileSystem {
	return &aferoFS{fs: afero.NewMemMapFs()}
}

// NewBasePathFS creates a FileSystem that is rooted at the given basePath.
// All file operations will be relative to this base path.
func NewBasePathFS(baseFS afero.Fs, basePath string) FileSystem {
	return &aferoFS{fs: afero.NewBasePathFs(baseFS, basePath)}
}
