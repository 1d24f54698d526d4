package dropbox

import (
	"path"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"

	"github.com/MCPEngu/fileprovider"
)

func rootFolder() *fileprovider.CloudFolder {
	security := fileprovider.FullSecurity()
	security.CanRename, security.CanDelete, security.CanMove, security.CanShare = false, false, false, false
	return &fileprovider.CloudFolder{
		ItemInfo: fileprovider.ItemInfo{
			ID:       RootID,
			Title:    name,
			Access:   fileprovider.AccessReadWrite,
			Security: security,
		},
	}
}

// toItem converts listing metadata. Deleted entries yield nil.
func toItem(m files.IsMetadata, parentID string) fileprovider.Item {
	switch md := m.(type) {
	case *files.FileMetadata:
		return toFile(md, parentID)
	case *files.FolderMetadata:
		return toFolder(md, parentID)
	}
	return nil
}

func toFile(md *files.FileMetadata, parentID string) *fileprovider.CloudFile {
	readOnly := md.SharingInfo != nil && md.SharingInfo.ReadOnly
	return &fileprovider.CloudFile{
		ItemInfo: fileprovider.ItemInfo{
			ID:       idOf(md.Id, md.PathDisplay),
			Title:    md.Name,
			ParentID: parentID,
			Created:  md.ClientModified,
			Modified: md.ServerModified,
			Access:   access(readOnly),
			Security: security(readOnly),
		},
		FileExtension: fileprovider.Extension(md.Name),
		ContentLength: int64(md.Size),
	}
}

func toFolder(md *files.FolderMetadata, parentID string) *fileprovider.CloudFolder {
	readOnly := md.SharingInfo != nil && md.SharingInfo.ReadOnly
	sec := security(readOnly)
	sec.CanShare = false
	return &fileprovider.CloudFolder{
		ItemInfo: fileprovider.ItemInfo{
			ID:       idOf(md.Id, md.PathDisplay),
			Title:    md.Name,
			ParentID: parentID,
			Access:   access(readOnly),
			Security: sec,
		},
		Shared: md.SharedFolderId != "" || md.SharingInfo != nil,
	}
}

func access(readOnly bool) fileprovider.Access {
	if readOnly {
		return fileprovider.AccessRead
	}
	return fileprovider.AccessReadWrite
}

func security(readOnly bool) fileprovider.Security {
	if readOnly {
		return fileprovider.ReadOnlySecurity()
	}
	return fileprovider.FullSecurity()
}

func idOf(id, display string) string {
	if id != "" {
		return id
	}
	return display
}

// displayPath returns the path of any metadata, "" for the root or unknown kinds.
func displayPath(m files.IsMetadata) string {
	switch md := m.(type) {
	case *files.FileMetadata:
		return md.PathDisplay
	case *files.FolderMetadata:
		return md.PathDisplay
	case *files.DeletedMetadata:
		return md.PathDisplay
	}
	return ""
}

// parentOf returns the parent of a display path, "" standing for the root.
func parentOf(p string) string {
	dir := path.Dir(p)
	if dir == "/" || dir == "." {
		return RootID
	}
	return dir
}
