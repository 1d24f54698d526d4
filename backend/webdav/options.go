package webdav

import (
	"os"
	"time"
)

// Options holds WebDAV provider options.
type Options struct {
	URL      string `json:"url,omitempty"`      // env var FP_WEBDAV_URL
	User     string `json:"user,omitempty"`     // env var FP_WEBDAV_USER
	Password string `json:"password,omitempty"` // env var FP_WEBDAV_PASSWORD

	// Timeout bounds every request. 0 disables the timeout.
	Timeout time.Duration `json:"timeout,omitempty"`

	// PageSize splits listings into pages of that many items. 0 returns whole folders.
	PageSize int `json:"pageSize,omitempty"`

	// SearchDepth is how many levels below the root Search descends.
	SearchDepth int `json:"searchDepth,omitempty"`
}

// NewOptions creates Options with default values, credentials taken from the environment.
func NewOptions() Options {
	return Options{
		URL:         os.Getenv("FP_WEBDAV_URL"),
		User:        os.Getenv("FP_WEBDAV_USER"),
		Password:    os.Getenv("FP_WEBDAV_PASSWORD"),
		Timeout:     30 * time.Second,
		SearchDepth: 5,
	}
}
