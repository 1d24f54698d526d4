package googledrive

import (
	"os"
	"time"
)

// Options holds configuration options for the Google Drive provider.
type Options struct {
	// AccessToken is a static OAuth2 access token, used when no token source is configured.
	// env var FP_GDRIVE_ACCESS_TOKEN
	AccessToken string

	// Endpoint overrides the Drive API base URL, ie: "https://www.googleapis.com/drive/v3/".
	Endpoint string

	// Timeout bounds every request (default: 30s).
	Timeout time.Duration

	// PageSize limits listing and search pages (default: 100).
	PageSize int
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		AccessToken: os.Getenv("FP_GDRIVE_ACCESS_TOKEN"),
		Timeout:     30 * time.Second,
		PageSize:    100,
	}
}
