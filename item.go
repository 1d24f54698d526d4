package fileprovider

import (
	"path"
	"strings"
	"time"
)

// Access is the level of rights the current user has on an item.
type Access int

// Access levels, numbered as the document server numbers them.
const (
	AccessNone      Access = 0
	AccessReadWrite Access = 1
	AccessRead      Access = 2
	AccessRestrict  Access = 3
	AccessComment   Access = 6
)

// String returns the lower case access name.
func (a Access) String() string {
	switch a {
	case AccessNone:
		return "none"
	case AccessReadWrite:
		return "readwrite"
	case AccessRead:
		return "read"
	case AccessRestrict:
		return "restrict"
	case AccessComment:
		return "comment"
	}
	return "unknown"
}

// ParseAccess is the inverse of Access.String. Unknown names yield AccessNone and false.
func ParseAccess(s string) (Access, bool) {
	for _, a := range []Access{AccessNone, AccessReadWrite, AccessRead, AccessRestrict, AccessComment} {
		if strings.EqualFold(a.String(), s) {
			return a, true
		}
	}
	return AccessNone, false
}

// Security is the set of actions the backend allows on an item.
type Security struct {
	CanRename   bool
	CanDelete   bool
	CanMove     bool
	CanCopy     bool
	CanShare    bool
	CanEditRoom bool
}

// FullSecurity allows every action. Backends without per-item rights report it for writable items.
func FullSecurity() Security {
	return Security{CanRename: true, CanDelete: true, CanMove: true, CanCopy: true, CanShare: true}
}

// ReadOnlySecurity only allows copying.
func ReadOnlySecurity() Security {
	return Security{CanCopy: true}
}

// ItemInfo holds the attributes shared by files and folders.
type ItemInfo struct {
	ID           string
	Title        string
	ParentID     string
	Created      time.Time
	Modified     time.Time
	Access       Access
	ProviderItem bool
	Security     Security
}

// Item is either a *CloudFile or a *CloudFolder.
type Item interface {
	Info() *ItemInfo
}

// CloudFile is a file on a backend.
type CloudFile struct {
	ItemInfo
	FileExtension string
	ContentLength int64
	Version       int
	ViewURL       string
	WebURL        string
}

// Info returns the shared attributes of the file.
func (f *CloudFile) Info() *ItemInfo { return &f.ItemInfo }

// CloudFolder is a folder on a backend, possibly the mount point of an external storage account.
type CloudFolder struct {
	ItemInfo
	Pinned       bool
	Shared       bool
	ProviderKey  string
	FilesCount   int
	FoldersCount int
}

// Info returns the shared attributes of the folder.
func (f *CloudFolder) Info() *ItemInfo { return &f.ItemInfo }

// IsMountPoint reports whether item is a folder representing a connected external storage account.
func IsMountPoint(item Item) bool {
	folder, ok := item.(*CloudFolder)
	return ok && folder.ProviderItem && folder.ProviderKey != ""
}

// IsReadOnly reports whether the current user may not modify item.
func IsReadOnly(item Item) bool {
	a := item.Info().Access
	return a == AccessRead || a == AccessRestrict || a == AccessComment
}

// Extension returns the lower case extension of name including the dot, or "" if it has none.
func Extension(name string) string {
	return strings.ToLower(path.Ext(name))
}

// CopyItem returns a shallow copy of item of the same concrete type.
func CopyItem(item Item) Item {
	switch it := item.(type) {
	case *CloudFile:
		cp := *it
		return &cp
	case *CloudFolder:
		cp := *it
		return &cp
	}
	return item
}

// Renamed returns a copy of item with Title set to newName. A file's FileExtension follows the new name since it is
// derived from the title. Every other attribute is preserved.
func Renamed(item Item, newName string) Item {
	cp := CopyItem(item)
	cp.Info().Title = newName
	if f, ok := cp.(*CloudFile); ok {
		f.FileExtension = Extension(newName)
	}
	return cp
}

// SplitItems separates items into files and folders, dropping anything else.
func SplitItems(items []Item) (files []*CloudFile, folders []*CloudFolder) {
	for _, item := range items {
		switch it := item.(type) {
		case *CloudFile:
			files = append(files, it)
		case *CloudFolder:
			folders = append(folders, it)
		}
	}
	return files, folders
}

// SplitMountPoints separates mount points from the items whose content can be deleted.
func SplitMountPoints(items []Item) (content []Item, mounts []*CloudFolder) {
	for _, item := range items {
		if IsMountPoint(item) {
			mounts = append(mounts, item.(*CloudFolder))
			continue
		}
		content = append(content, item)
	}
	return content, mounts
}

// IDs returns the ids of items in order.
func IDs[T Item](items []T) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.Info().ID)
	}
	return ids
}

// Explorer is the result of a listing or search: the folder listed, its children and an optional cursor for
// the next page.
type Explorer struct {
	Current *CloudFolder
	Folders []*CloudFolder
	Files   []*CloudFile
	Cursor  string
	Total   int
}

// Items returns folders followed by files.
func (e *Explorer) Items() []Item {
	items := make([]Item, 0, len(e.Folders)+len(e.Files))
	for _, f := range e.Folders {
		items = append(items, f)
	}
	for _, f := range e.Files {
		items = append(items, f)
	}
	return items
}

// Count returns the number of children held by the explorer.
func (e *Explorer) Count() int {
	return len(e.Folders) + len(e.Files)
}

// HasMore reports whether a continuation cursor is available.
func (e *Explorer) HasMore() bool {
	return e.Cursor != ""
}

// Append adds the children of next, a continuation page, and takes over its cursor.
func (e *Explorer) Append(next *Explorer) {
	if next == nil {
		return
	}
	e.Folders = append(e.Folders, next.Folders...)
	e.Files = append(e.Files, next.Files...)
	e.Cursor = next.Cursor
	if next.Total > e.Total {
		e.Total = next.Total
	}
}
