package googledrive

import (
	"mime"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"

	"github.com/MCPEngu/fileprovider"
)

const folderMimeType = "application/vnd.google-apps.folder"

func rootFolder() *fileprovider.CloudFolder {
	security := fileprovider.FullSecurity()
	security.CanRename, security.CanDelete, security.CanMove, security.CanShare = false, false, false, false
	return &fileprovider.CloudFolder{
		ItemInfo: fileprovider.ItemInfo{
			ID:       RootID,
			Title:    rootTitle,
			Access:   fileprovider.AccessReadWrite,
			Security: security,
		},
	}
}

func isFolder(f *drive.File) bool {
	return f.MimeType == folderMimeType
}

func toItem(f *drive.File, parentID string) fileprovider.Item {
	if isFolder(f) {
		return toFolder(f, parentID)
	}
	return toFile(f, parentID)
}

func toFile(f *drive.File, parentID string) *fileprovider.CloudFile {
	return &fileprovider.CloudFile{
		ItemInfo:      info(f, parentID),
		FileExtension: fileprovider.Extension(f.Name),
		ContentLength: f.Size,
		Version:       int(f.Version),
		ViewURL:       f.WebViewLink,
		WebURL:        f.WebContentLink,
	}
}

func toFolder(f *drive.File, parentID string) *fileprovider.CloudFolder {
	return &fileprovider.CloudFolder{
		ItemInfo: info(f, parentID),
		Shared:   f.Shared,
	}
}

func info(f *drive.File, parentID string) fileprovider.ItemInfo {
	access, security := fileprovider.AccessReadWrite, fileprovider.FullSecurity()
	if c := f.Capabilities; c != nil {
		if !c.CanEdit {
			access = fileprovider.AccessRead
		}
		security = fileprovider.Security{
			CanRename: c.CanRename,
			CanDelete: c.CanDelete || c.CanTrash,
			CanMove:   c.CanMoveItemWithinDrive,
			CanCopy:   c.CanCopy,
			CanShare:  c.CanShare,
		}
	}
	return fileprovider.ItemInfo{
		ID:       f.Id,
		Title:    f.Name,
		ParentID: parentID,
		Created:  parseTime(f.CreatedTime),
		Modified: parseTime(f.ModifiedTime),
		Access:   access,
		Security: security,
	}
}

// parentOf returns the first parent of f. Items shared with the user may have none.
func parentOf(f *drive.File) string {
	if len(f.Parents) > 0 {
		return f.Parents[0]
	}
	return RootID
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// mimeTypeOf guesses the type of a new file from its name. Drive detects it on its own when empty.
func mimeTypeOf(name string) string {
	t, _, _ := strings.Cut(mime.TypeByExtension(fileprovider.Extension(name)), ";")
	return strings.TrimSpace(t)
}

// quote renders s as a string literal of the Drive query language.
func quote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}

// listQuery builds the search clause of a listing. An empty parent searches the whole drive.
func listQuery(parent string, filter fileprovider.Filter) string {
	clauses := []string{"trashed = false"}
	if parent != "" {
		clauses = append(clauses, quote(parent)+" in parents")
	}
	if filter.Search != "" {
		clauses = append(clauses, "name contains "+quote(filter.Search))
	}
	switch filter.Type {
	case fileprovider.FilterAll:
	case fileprovider.FilterFolders:
		clauses = append(clauses, "mimeType = "+quote(folderMimeType))
	default:
		clauses = append(clauses, "mimeType != "+quote(folderMimeType))
	}
	return strings.Join(clauses, " and ")
}

func orderBy(filter fileprovider.Filter) string {
	key := ""
	switch filter.SortBy {
	case fileprovider.SortByTitle, fileprovider.SortByType:
		key = "name"
	case fileprovider.SortByModified:
		key = "modifiedTime"
	case fileprovider.SortBySize:
		key = "quotaBytesUsed"
	default:
		return ""
	}
	if filter.SortOrder == fileprovider.SortDesc {
		key += " desc"
	}
	return "folder," + key
}
