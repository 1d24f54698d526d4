package local

import (
	"os"
	"path"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/utils"
)

func addItem(e *fileprovider.Explorer, p string, info os.FileInfo) {
	if info.IsDir() {
		e.Folders = append(e.Folders, toFolder(p, info))
		return
	}
	e.Files = append(e.Files, toFile(p, info))
}

func toFile(p string, info os.FileInfo) *fileprovider.CloudFile {
	return &fileprovider.CloudFile{
		ItemInfo:      itemInfo(p, info),
		FileExtension: fileprovider.Extension(info.Name()),
		ContentLength: info.Size(),
	}
}

func toFolder(p string, info os.FileInfo) *fileprovider.CloudFolder {
	return &fileprovider.CloudFolder{ItemInfo: itemInfo(p, info)}
}

// itemInfo maps file metadata. Files without the owner write bit are read-only. There is no portable creation
// time, so Created is the modification time.
func itemInfo(p string, info os.FileInfo) fileprovider.ItemInfo {
	access, security := fileprovider.AccessReadWrite, fileprovider.FullSecurity()
	security.CanShare = false
	if info.Mode().Perm()&0o200 == 0 {
		access, security = fileprovider.AccessRead, fileprovider.ReadOnlySecurity()
	}
	parent := ""
	if p != RootID {
		parent = utils.ParentPath(p)
	}
	return fileprovider.ItemInfo{
		ID:       p,
		Title:    path.Base(p),
		ParentID: parent,
		Created:  info.ModTime(),
		Modified: info.ModTime(),
		Access:   access,
		Security: security,
	}
}
