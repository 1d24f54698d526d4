package docspace

import (
	"os"
	"time"
)

// Options holds document server provider options.
type Options struct {
	URL   string `json:"url,omitempty"`   // env var FP_DOCSPACE_URL
	Token string `json:"token,omitempty"` // env var FP_DOCSPACE_TOKEN

	// Timeout bounds every API call. Downloads are not bounded.
	Timeout time.Duration `json:"timeout,omitempty"`

	// PageSize is the count sent with listings when the filter does not set one.
	PageSize int `json:"pageSize,omitempty"`

	// RoomsRootID is the folder id that lists rooms. Empty disables the rooms endpoint.
	RoomsRootID string `json:"roomsRootId,omitempty"`

	// Archive lists archived rooms and makes deletes immediate.
	Archive bool `json:"archive,omitempty"`
}

// NewOptions creates Options with default values, the portal and token taken from the environment.
func NewOptions() Options {
	return Options{
		URL:      os.Getenv("FP_DOCSPACE_URL"),
		Token:    os.Getenv("FP_DOCSPACE_TOKEN"),
		Timeout:  30 * time.Second,
		PageSize: 100,
	}
}
