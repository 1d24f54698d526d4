package utils

import (
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
)

const (
	// ErrBadName constant is returned when an item name is empty, a dot entry, or contains a slash
	ErrBadName = "item name is invalid - may not be empty, '.', '..' or contain slashes"
	// TouchCopyMinBufferSize min buffer size used in TouchCopyBuffered in bytes
	TouchCopyMinBufferSize = 262144
	// MaxDuplicateSuffix bounds the search for a free "name (n).ext" in DuplicateName
	MaxDuplicateSuffix = 1000
)

// regex to test whether the last character is a '/'
var hasTrailingSlash = regexp.MustCompile("/$")

// regex to test whether the first character is a '/'
var hasLeadingSlash = regexp.MustCompile("^/")

// regex matching a trailing " (n)" duplicate suffix on a base name
var duplicateSuffix = regexp.MustCompile(`^(.*) \((\d+)\)$`)

// RemoveTrailingSlash removes trailing slash, if any
func RemoveTrailingSlash(p string) string {
	return strings.TrimRight(p, "/")
}

// EnsureTrailingSlash adds a trailing slash if there is none. Only ever uses / since paths here are remote paths.
func EnsureTrailingSlash(dir string) string {
	if hasTrailingSlash.MatchString(dir) {
		return dir
	}
	return dir + "/"
}

// EnsureLeadingSlash is like EnsureTrailingSlash except that it adds the leading slash if needed.
func EnsureLeadingSlash(dir string) string {
	if hasLeadingSlash.MatchString(dir) {
		return dir
	}
	return "/" + dir
}

// CleanPath returns an absolute, slash separated, cleaned path without trailing slash. The empty string and "."
// both resolve to "/".
func CleanPath(p string) string {
	return path.Clean(EnsureLeadingSlash(p))
}

// JoinPath joins a folder path and an item name into a clean absolute path.
func JoinPath(dir, name string) string {
	return path.Join(CleanPath(dir), name)
}

// ParentPath returns the folder containing p. The parent of "/" is "/".
func ParentPath(p string) string {
	return path.Dir(CleanPath(p))
}

// IsWithin reports whether p is dir itself or lives somewhere below dir.
func IsWithin(p, dir string) bool {
	p, dir = CleanPath(p), CleanPath(dir)
	if p == dir || dir == "/" {
		return true
	}
	return strings.HasPrefix(p, dir+"/")
}

// ValidateName ensures that a name can be used for a single file or folder.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\") {
		return errors.New(ErrBadName)
	}
	return nil
}

// DuplicateName returns name, or the first "base (n).ext" for which taken reports false. A name that already
// carries a suffix continues counting from it: "a (2).txt" yields "a (3).txt".
func DuplicateName(name string, taken func(candidate string) (bool, error)) (string, error) {
	used, err := taken(name)
	if err != nil || !used {
		return name, err
	}

	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		base, ext = ext, ""
	}
	start := 1
	if m := duplicateSuffix.FindStringSubmatch(base); m != nil {
		base = m[1]
		_, _ = fmt.Sscanf(m[2], "%d", &start)
		start++
	}

	for n := start; n < start+MaxDuplicateSuffix; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free name for %q after %d attempts", name, MaxDuplicateSuffix)
}

// TouchCopyBuffered is a wrapper around io.CopyBuffer which ensures that even empty source files (reader) will get written as an
// empty file. It guarantees a Write() call on the target file.
// bufferSize is in bytes and if is less than TouchCopyMinBufferSize will result in a buffer of size TouchCopyMinBufferSize
// bytes. If bufferSize is > TouchCopyMinBufferSize it will result in a buffer of size bufferSize bytes
func TouchCopyBuffered(writer io.Writer, reader io.Reader, bufferSize int) (int64, error) {
	if bufferSize < TouchCopyMinBufferSize {
		bufferSize = TouchCopyMinBufferSize
	}
	size, err := io.CopyBuffer(writer, reader, make([]byte, bufferSize))
	if err != nil {
		return size, err
	}

	// If no bytes were copied, write an empty byte slice to ensure the target is touched
	if size == 0 {
		_, err = writer.Write([]byte{})
	}
	return size, err
}

// Ptr returns a pointer to the given value.
func Ptr[T any](value T) *T {
	return &value
}
