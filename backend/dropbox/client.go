package dropbox

import (
	"io"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/async"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
)

// Client defines the subset of Dropbox SDK methods used by this backend.
// The files.Client from the Dropbox SDK implements this interface.
type Client interface {
	// GetMetadata returns metadata for a file or folder.
	GetMetadata(arg *files.GetMetadataArg) (files.IsMetadata, error)

	// ListFolder lists the contents of a folder.
	ListFolder(arg *files.ListFolderArg) (*files.ListFolderResult, error)

	// ListFolderContinue continues a paginated list operation.
	ListFolderContinue(arg *files.ListFolderContinueArg) (*files.ListFolderResult, error)

	// SearchV2 searches file and folder names.
	SearchV2(arg *files.SearchV2Arg) (*files.SearchV2Result, error)

	// SearchContinueV2 fetches the next page of a search.
	SearchContinueV2(arg *files.SearchV2ContinueArg) (*files.SearchV2Result, error)

	// CreateFolderV2 creates a folder.
	CreateFolderV2(arg *files.CreateFolderArg) (*files.CreateFolderResult, error)

	// Upload uploads a file (max 150MB).
	Upload(arg *files.UploadArg, content io.Reader) (*files.FileMetadata, error)

	// Download downloads a file.
	Download(arg *files.DownloadArg) (*files.FileMetadata, io.ReadCloser, error)

	// MoveV2 moves a file or folder.
	MoveV2(arg *files.RelocationArg) (*files.RelocationResult, error)

	// DeleteV2 deletes a file or folder.
	DeleteV2(arg *files.DeleteArg) (*files.DeleteResult, error)

	// CopyBatchV2 copies several items at once, possibly as an async job.
	CopyBatchV2(arg *files.RelocationBatchArgBase) (*files.RelocationBatchV2Launch, error)

	// MoveBatchV2 moves several items at once, possibly as an async job.
	MoveBatchV2(arg *files.MoveBatchArg) (*files.RelocationBatchV2Launch, error)

	// CopyBatchCheckV2 reports the state of a copy job.
	CopyBatchCheckV2(arg *async.PollArg) (*files.RelocationBatchV2JobStatus, error)

	// MoveBatchCheckV2 reports the state of a move job.
	MoveBatchCheckV2(arg *async.PollArg) (*files.RelocationBatchV2JobStatus, error)

	// GetTemporaryLink returns a four hour download link for a file.
	GetTemporaryLink(arg *files.GetTemporaryLinkArg) (*files.GetTemporaryLinkResult, error)
}
