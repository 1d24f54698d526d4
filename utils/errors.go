package utils

import "fmt"

func wrap(action string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", action, err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return wrap("list error", err)
}

// WrapSearchError returns a wrapped search error
func WrapSearchError(err error) error {
	return wrap("search error", err)
}

// WrapCreateError returns a wrapped create error
func WrapCreateError(err error) error {
	return wrap("create error", err)
}

// WrapRenameError returns a wrapped rename error
func WrapRenameError(err error) error {
	return wrap("rename error", err)
}

// WrapDeleteError returns a wrapped delete error
func WrapDeleteError(err error) error {
	return wrap("delete error", err)
}

// WrapTransferError returns a wrapped transfer error
func WrapTransferError(err error) error {
	return wrap("transfer error", err)
}

// WrapShareError returns a wrapped share error
func WrapShareError(err error) error {
	return wrap("share error", err)
}

// WrapStatusError returns a wrapped operation status error
func WrapStatusError(err error) error {
	return wrap("operation status error", err)
}

// WrapFileInfoError returns a wrapped file info error
func WrapFileInfoError(err error) error {
	return wrap("file info error", err)
}

// WrapDownloadError returns a wrapped download error
func WrapDownloadError(err error) error {
	return wrap("download error", err)
}
