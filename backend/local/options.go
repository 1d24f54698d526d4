package local

import (
	"os"

	"github.com/mitchellh/go-homedir"
)

// Options holds local provider options.
type Options struct {
	// Root is the directory the provider is confined to. "~" is expanded. Env var FP_LOCAL_ROOT.
	Root string `json:"root,omitempty"`

	// PageSize splits listings into pages of that many items. 0 returns whole folders.
	PageSize int `json:"pageSize,omitempty"`

	// BufferSize is the buffer used to copy file content. 0 uses the default.
	BufferSize int `json:"bufferSize,omitempty"`
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		Root: os.Getenv("FP_LOCAL_ROOT"),
	}
}

// rootPath returns the absolute root directory.
func (o Options) rootPath() (string, error) {
	if o.Root == "" {
		return homedir.Dir()
	}
	return homedir.Expand(o.Root)
}
