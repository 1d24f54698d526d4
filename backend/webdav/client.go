package webdav

import (
	"io"
	"os"
)

// Client defines the subset of gowebdav methods used by this backend. *gowebdav.Client satisfies it.
type Client interface {
	// ReadDir lists the children of a collection.
	ReadDir(path string) ([]os.FileInfo, error)

	// Stat returns the properties of a resource.
	Stat(path string) (os.FileInfo, error)

	// Mkdir creates a collection.
	Mkdir(path string, mode os.FileMode) error

	// Write uploads data to path, replacing what is there.
	Write(path string, data []byte, mode os.FileMode) error

	// Rename moves a resource.
	Rename(oldpath, newpath string, overwrite bool) error

	// Copy copies a resource.
	Copy(oldpath, newpath string, overwrite bool) error

	// RemoveAll deletes a resource and everything below it.
	RemoveAll(path string) error

	// ReadStream downloads a resource.
	ReadStream(path string) (io.ReadCloser, error)
}
