package fileprovider

import (
	"context"
	"io"
	"time"
)

// FileProvider represents one storage backend with any authentication accounted for. Implementations are not
// safe for concurrent use; callers serialize access to a single instance.
type FileProvider interface {
	// Name returns the human readable name of the backend ie: Dropbox, WebDAV, etc...
	Name() string

	// Scheme is the short identifier the backend is registered under: docs, dbx, gdrive, webdav, file.
	Scheme() string

	// ListItems returns the contents of the folder with the given id. A fresh listing invalidates every
	// continuation cursor previously handed out by the provider.
	ListItems(ctx context.Context, folderID string, filter Filter) (*Explorer, error)

	// ContinueListing returns the next page of a listing or search. A cursor is valid for exactly one call;
	// stale or unknown cursors fail with ErrInvalidCursor before any remote call is made.
	ContinueListing(ctx context.Context, cursor string) (*Explorer, error)

	// Search runs a query across the backend. An empty cursor starts a new search, a non-empty one continues a
	// previous search the same way ContinueListing does.
	Search(ctx context.Context, query string, cursor string) (*Explorer, error)

	// CreateFile creates an empty file named name in the folder. ErrNameConflict is returned if the name is taken.
	CreateFile(ctx context.Context, folderID, name string) (*CloudFile, error)

	// CreateFolder creates a folder named name in the folder. ErrNameConflict is returned if the name is taken.
	CreateFolder(ctx context.Context, folderID, name string) (*CloudFolder, error)

	// Rename changes the title of an item. The returned item keeps every attribute of item except Title and, for
	// files, the FileExtension derived from it. ErrForbidden is returned for read-only items and version mismatches.
	Rename(ctx context.Context, item Item, newName string) (Item, error)

	// Delete removes items, returning one Operation per backend-side job. Mount points are unmounted rather
	// than having their content deleted. Deleting no items is a no-op.
	Delete(ctx context.Context, items []Item, from *CloudFolder) ([]Operation, error)

	// Transfer moves (isMove) or copies items into dest, resolving name collisions with policy.
	Transfer(ctx context.Context, items []Item, dest *CloudFolder, policy ConflictPolicy, isMove bool) ([]Operation, error)

	// Share creates or updates the external link of an item.
	Share(ctx context.Context, item Item, settings ShareSettings) (*ShareResult, error)

	// OperationStatus is a synchronous check of the provider's outstanding batch jobs. Polling cadence and
	// timeouts are the caller's business.
	OperationStatus(ctx context.Context) (Operation, error)

	// FileInfo refreshes the authoritative metadata of a single file.
	FileInfo(ctx context.Context, item Item) (*CloudFile, error)
}

// Downloader is implemented by providers able to stream file content.
type Downloader interface {
	Download(ctx context.Context, file *CloudFile, w io.Writer) (int64, error)
}

// Terminator is implemented by providers able to cancel their server-side batch jobs.
type Terminator interface {
	Terminate(ctx context.Context) ([]Operation, error)
}

// Unmounter disconnects an external storage account mounted at folder.
type Unmounter interface {
	Unmount(ctx context.Context, folder *CloudFolder) error
}

// UnmountFunc adapts a function to the Unmounter interface.
type UnmountFunc func(ctx context.Context, folder *CloudFolder) error

// Unmount calls f(ctx, folder).
func (f UnmountFunc) Unmount(ctx context.Context, folder *CloudFolder) error {
	return f(ctx, folder)
}

// FilterType narrows a listing to one kind of item.
type FilterType int

// Filter types, numbered as the document server numbers them.
const (
	FilterAll           FilterType = 0
	FilterFolders       FilterType = 2
	FilterDocuments     FilterType = 3
	FilterPresentations FilterType = 4
	FilterSpreadsheets  FilterType = 5
	FilterImages        FilterType = 7
	FilterArchives      FilterType = 10
	FilterFiles         FilterType = 11
	FilterMedia         FilterType = 12
)

// SortField is the attribute a listing is ordered by.
type SortField string

// Sort fields.
const (
	SortByTitle    SortField = "title"
	SortByModified SortField = "DateAndTime"
	SortBySize     SortField = "size"
	SortByType     SortField = "type"
)

// SortOrder is either ascending or descending.
type SortOrder string

// Sort orders.
const (
	SortAsc  SortOrder = "ascending"
	SortDesc SortOrder = "descending"
)

// Filter holds the named listing options.
type Filter struct {
	Search         string
	Type           FilterType
	SortBy         SortField
	SortOrder      SortOrder
	WithSubfolders bool

	// PageSize limits a page on backends that paginate; 0 uses the backend default.
	PageSize int
}

// ShareSettings describes the external link an item should have.
type ShareSettings struct {
	Access         Access
	DenyDownload   bool
	ExpirationDate *time.Time
	Password       string
	Title          string

	// Revoke removes the link instead of creating it.
	Revoke bool
}

// ShareResult is the state of an item's external link after Share.
type ShareResult struct {
	ItemID string
	Link   string
	Access Access
	Shared bool
}
