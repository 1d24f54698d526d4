package dropbox

import (
	"os"
	"time"
)

// Options holds configuration options for the Dropbox provider.
type Options struct {
	// AccessToken is the OAuth2 access token for Dropbox API authentication (required).
	// env var FP_DROPBOX_ACCESS_TOKEN
	AccessToken string

	// Timeout bounds metadata calls (default: 30s).
	Timeout time.Duration

	// ContentTimeout bounds downloads (default: 5m).
	ContentTimeout time.Duration

	// PageSize limits listing and search pages. 0 leaves the page size to Dropbox.
	PageSize int
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		AccessToken:    os.Getenv("FP_DROPBOX_ACCESS_TOKEN"),
		Timeout:        30 * time.Second,
		ContentTimeout: 5 * time.Minute,
	}
}
