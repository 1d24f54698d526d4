package docspace

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/MCPEngu/fileprovider"
)

// envelope is the wrapper every API answer comes in.
type envelope[T any] struct {
	Response T `json:"response"`
}

// apiError is the body of a failed call.
type apiError struct {
	Status int `json:"statusCode"`
	Detail struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (e *apiError) Error() string {
	if e.Detail.Message != "" {
		return e.Detail.Message
	}
	return "status " + strconv.Itoa(e.Status)
}

// id accepts both the numeric ids of native items and the string ids of third party items.
type id string

func (i *id) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*i = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = id(s)
		return nil
	}
	*i = id(b)
	return nil
}

// apiTime tolerates the empty strings the server sends for unset dates.
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Time = time.Time{}
		return nil //nolint:nilerr // unparsable dates are reported as unset
	}
	t.Time = parsed
	return nil
}

type itemDTO struct {
	ID           id                  `json:"id"`
	Title        string              `json:"title"`
	ParentID     id                  `json:"parentId"`
	FolderID     id                  `json:"folderId"`
	Created      apiTime             `json:"created"`
	Updated      apiTime             `json:"updated"`
	Access       fileprovider.Access `json:"access"`
	ProviderItem bool                `json:"providerItem"`
	Security     securityDTO         `json:"security"`
}

// securityDTO lists the actions the server allows on an item, keyed by the server's action names.
type securityDTO struct {
	Rename     bool `json:"Rename"`
	Delete     bool `json:"Delete"`
	Move       bool `json:"Move"`
	Copy       bool `json:"Copy"`
	EditAccess bool `json:"EditAccess"`
	EditRoom   bool `json:"EditRoom"`
}

func (d securityDTO) security() fileprovider.Security {
	return fileprovider.Security{
		CanRename:   d.Rename,
		CanDelete:   d.Delete,
		CanMove:     d.Move,
		CanCopy:     d.Copy,
		CanShare:    d.EditAccess,
		CanEditRoom: d.EditRoom,
	}
}

func (d itemDTO) info() fileprovider.ItemInfo {
	parent := d.ParentID
	if parent == "" {
		parent = d.FolderID
	}
	return fileprovider.ItemInfo{
		ID:           string(d.ID),
		Title:        d.Title,
		ParentID:     string(parent),
		Created:      d.Created.Time,
		Modified:     d.Updated.Time,
		Access:       d.Access,
		ProviderItem: d.ProviderItem,
		Security:     d.Security.security(),
	}
}

type fileDTO struct {
	itemDTO
	FileExst          string `json:"fileExst"`
	PureContentLength int64  `json:"pureContentLength"`
	Version           int    `json:"version"`
	ViewURL           string `json:"viewUrl"`
	WebURL            string `json:"webUrl"`
}

func (d *fileDTO) file() *fileprovider.CloudFile {
	ext := strings.ToLower(d.FileExst)
	if ext == "" {
		ext = fileprovider.Extension(d.Title)
	}
	return &fileprovider.CloudFile{
		ItemInfo:      d.info(),
		FileExtension: ext,
		ContentLength: d.PureContentLength,
		Version:       d.Version,
		ViewURL:       d.ViewURL,
		WebURL:        d.WebURL,
	}
}

type folderDTO struct {
	itemDTO
	Pinned       bool   `json:"pinned"`
	Shared       bool   `json:"shared"`
	ProviderKey  string `json:"providerKey"`
	FilesCount   int    `json:"filesCount"`
	FoldersCount int    `json:"foldersCount"`
}

func (d *folderDTO) folder() *fileprovider.CloudFolder {
	return &fileprovider.CloudFolder{
		ItemInfo:     d.info(),
		Pinned:       d.Pinned,
		Shared:       d.Shared,
		ProviderKey:  d.ProviderKey,
		FilesCount:   d.FilesCount,
		FoldersCount: d.FoldersCount,
	}
}

type explorerDTO struct {
	Current    *folderDTO   `json:"current"`
	Folders    []*folderDTO `json:"folders"`
	Files      []*fileDTO   `json:"files"`
	StartIndex int          `json:"startIndex"`
	Count      int          `json:"count"`
	Total      int          `json:"total"`
}

func (d *explorerDTO) explorer() *fileprovider.Explorer {
	e := &fileprovider.Explorer{Total: d.Total}
	if d.Current != nil {
		e.Current = d.Current.folder()
	}
	for _, f := range d.Folders {
		e.Folders = append(e.Folders, f.folder())
	}
	for _, f := range d.Files {
		e.Files = append(e.Files, f.file())
	}
	return e
}

type operationDTO struct {
	ID        string `json:"id"`
	Operation int    `json:"operation"`
	Progress  int    `json:"progress"`
	Error     string `json:"error"`
	Processed string `json:"processed"`
	Finished  bool   `json:"finished"`
}

func (d operationDTO) operation() fileprovider.Operation {
	switch {
	case d.Error != "":
		return fileprovider.OperationFailed(d.ID, wrapJobError(d.Error))
	case d.Finished:
		return fileprovider.OperationDone(d.ID)
	case d.Progress > 0:
		return fileprovider.OperationInProgress(d.ID, d.Progress)
	}
	return fileprovider.OperationPending(d.ID)
}

func operations(dtos []operationDTO) []fileprovider.Operation {
	ops := make([]fileprovider.Operation, 0, len(dtos))
	for _, d := range dtos {
		ops = append(ops, d.operation())
	}
	return ops
}

// jobError is the failure message of a server-side job.
type jobError string

func (e jobError) Error() string { return string(e) }

func wrapJobError(msg string) error {
	return fileprovider.Wrap(fileprovider.ErrUnexpectedResponse, jobError(msg))
}

type titleRequest struct {
	Title       string `json:"title"`
	LastVersion *int   `json:"lastVersion,omitempty"`
}

type batchRequest struct {
	FileIDs             []string `json:"fileIds"`
	FolderIDs           []string `json:"folderIds"`
	DestFolderID        string   `json:"destFolderId,omitempty"`
	ConflictResolveType *int     `json:"conflictResolveType,omitempty"`
	DeleteAfter         bool     `json:"deleteAfter"`
	Immediately         bool     `json:"immediately"`
}

type favoritesRequest struct {
	FileIDs   []string `json:"fileIds"`
	FolderIDs []string `json:"folderIds"`
}

type linkRequest struct {
	Access         fileprovider.Access `json:"access"`
	DenyDownload   bool                `json:"denyDownload"`
	ExpirationDate string              `json:"expirationDate,omitempty"`
	Password       string              `json:"password,omitempty"`
	Title          string              `json:"title,omitempty"`
}

type linkDTO struct {
	Access   fileprovider.Access `json:"access"`
	SharedTo struct {
		ID        id     `json:"id"`
		Title     string `json:"title"`
		ShareLink string `json:"shareLink"`
	} `json:"sharedTo"`
}
