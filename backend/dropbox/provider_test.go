package dropbox

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/async"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/backend"
	"github.com/MCPEngu/fileprovider/backend/dropbox/mocks"
	"github.com/MCPEngu/fileprovider/backend/testsuite"
)

type providerTestSuite struct {
	suite.Suite
	client   *memClient
	provider *Provider
	ctx      context.Context
	docs     *memNode
}

func (s *providerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client = newMemClient()
	s.provider = NewProvider(WithClient(s.client))

	s.docs = s.client.put("/docs", true, "")
	s.client.put("/docs/beta.txt", false, "beta")
	s.client.put("/docs/Alpha.txt", false, "alpha")
	s.client.put("/docs/sub", true, "")
	s.client.put("/docs/sub/deep.txt", false, "deep")
	s.client.put("/top.pdf", false, "%PDF")
}

func (s *providerTestSuite) node(p string) *memNode {
	n, ok := s.client.lookup(p)
	s.Require().True(ok, "missing %s", p)
	return n
}

func (s *providerTestSuite) folder(p string) *fileprovider.CloudFolder {
	n := s.node(p)
	return &fileprovider.CloudFolder{ItemInfo: fileprovider.ItemInfo{ID: n.id, Title: n.path[strings.LastIndex(n.path, "/")+1:]}}
}

func (s *providerTestSuite) file(p string) *fileprovider.CloudFile {
	n := s.node(p)
	return &fileprovider.CloudFile{ItemInfo: fileprovider.ItemInfo{
		ID:     n.id,
		Title:  n.path[strings.LastIndex(n.path, "/")+1:],
		Access: fileprovider.AccessReadWrite,
	}}
}

func (s *providerTestSuite) exists(p string) bool {
	_, ok := s.client.lookup(p)
	return ok
}

func (s *providerTestSuite) called(prefix string) bool {
	for _, c := range s.client.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (s *providerTestSuite) TestRegistered() {
	s.Equal(Scheme, backend.Backend(Scheme).Scheme())
	s.Equal("Dropbox", s.provider.Name())
}

func (s *providerTestSuite) TestListRoot() {
	e, err := s.provider.ListItems(s.ctx, "", fileprovider.Filter{SortBy: fileprovider.SortByTitle})
	s.Require().NoError(err)
	s.Equal("Dropbox", e.Current.Title)
	s.Equal(RootID, e.Current.ID)
	s.False(e.Current.Security.CanDelete)
	s.Equal([]string{"docs"}, folderTitles(e.Folders))
	s.Equal([]string{"top.pdf"}, titles(e.Files))
	s.Equal(RootID, e.Files[0].ParentID)
	s.Equal(int64(4), e.Files[0].ContentLength)
	s.Equal(".pdf", e.Files[0].FileExtension)
	s.False(e.HasMore())
	s.False(s.called("GetMetadata"), "the root needs no metadata lookup")
}

func (s *providerTestSuite) TestListFolder() {
	e, err := s.provider.ListItems(s.ctx, s.docs.id, fileprovider.Filter{
		SortBy:    fileprovider.SortByTitle,
		SortOrder: fileprovider.SortDesc,
		Type:      fileprovider.FilterFiles,
	})
	s.Require().NoError(err)
	s.Equal("docs", e.Current.Title)
	s.Empty(e.Folders)
	s.Equal([]string{"beta.txt", "Alpha.txt"}, titles(e.Files))
	s.Equal(s.docs.id, e.Files[0].ParentID)
	s.Equal(2024, e.Files[0].Modified.Year())
	s.True(e.Files[0].Security.CanRename)
}

func (s *providerTestSuite) TestListNotFound() {
	_, err := s.provider.ListItems(s.ctx, "id:999", fileprovider.Filter{})
	s.ErrorIs(err, fileprovider.ErrNotFound)

	_, err = s.provider.ListItems(s.ctx, s.node("/top.pdf").id, fileprovider.Filter{})
	s.ErrorIs(err, fileprovider.ErrNotFound, "a file is not a folder")
}

func (s *providerTestSuite) TestCursorIsOneShot() {
	e, err := s.provider.ListItems(s.ctx, s.docs.id, fileprovider.Filter{PageSize: 1})
	s.Require().NoError(err)
	s.Require().True(e.HasMore())
	s.Equal([]string{"Alpha.txt"}, titles(e.Files))

	next, err := s.provider.ContinueListing(s.ctx, e.Cursor)
	s.Require().NoError(err)
	s.Equal([]string{"beta.txt"}, titles(next.Files))
	s.Equal(s.docs.id, next.Files[0].ParentID)
	s.True(next.HasMore())

	calls := len(s.client.calls)
	_, err = s.provider.ContinueListing(s.ctx, e.Cursor)
	s.ErrorIs(err, fileprovider.ErrInvalidCursor)
	s.Len(s.client.calls, calls, "a stale cursor must not reach Dropbox")

	last, err := s.provider.ContinueListing(s.ctx, next.Cursor)
	s.Require().NoError(err)
	s.Equal([]string{"sub"}, folderTitles(last.Folders))
	s.False(last.HasMore())
}

func (s *providerTestSuite) TestFreshListingInvalidatesCursor() {
	e, err := s.provider.ListItems(s.ctx, s.docs.id, fileprovider.Filter{PageSize: 1})
	s.Require().NoError(err)
	s.Require().True(e.HasMore())

	_, err = s.provider.ListItems(s.ctx, "", fileprovider.Filter{})
	s.Require().NoError(err)
	_, err = s.provider.ContinueListing(s.ctx, e.Cursor)
	s.ErrorIs(err, fileprovider.ErrInvalidCursor)
}

func (s *providerTestSuite) TestListWithSubfolders() {
	e, err := s.provider.ListItems(s.ctx, s.docs.id, fileprovider.Filter{
		Search:         "deep",
		WithSubfolders: true,
	})
	s.Require().NoError(err)
	s.Equal([]string{"deep.txt"}, titles(e.Files))
	s.Equal("/docs/sub", e.Files[0].ParentID)
}

func (s *providerTestSuite) TestSearch() {
	e, err := s.provider.Search(s.ctx, "TXT", "")
	s.Require().NoError(err)
	s.Equal([]string{"Alpha.txt", "beta.txt", "deep.txt"}, titles(e.Files))
	s.Equal("/docs", e.Files[0].ParentID)
	s.Equal("/docs/sub", e.Files[2].ParentID)

	_, err = s.provider.Search(s.ctx, "txt", "bogus")
	s.ErrorIs(err, fileprovider.ErrInvalidCursor)
}

func (s *providerTestSuite) TestSearchPages() {
	p := NewProvider(WithClient(s.client), WithOptions(Options{AccessToken: "unused", PageSize: 2}))
	e, err := p.Search(s.ctx, "txt", "")
	s.Require().NoError(err)
	s.Len(e.Files, 2)
	s.Require().True(e.HasMore())

	next, err := p.Search(s.ctx, "txt", e.Cursor)
	s.Require().NoError(err)
	s.Len(next.Files, 1)
	s.False(next.HasMore())
	s.True(s.called("SearchContinueV2"))
}

func (s *providerTestSuite) TestCreate() {
	file, err := s.provider.CreateFile(s.ctx, s.docs.id, "new.docx")
	s.Require().NoError(err)
	s.Equal("new.docx", file.Title)
	s.Equal(".docx", file.FileExtension)
	s.Equal(s.docs.id, file.ParentID)
	s.True(s.exists("/docs/new.docx"))

	folder, err := s.provider.CreateFolder(s.ctx, "", "Projects")
	s.Require().NoError(err)
	s.Equal("Projects", folder.Title)
	s.Equal(RootID, folder.ParentID)
	s.True(s.exists("/Projects"))

	_, err = s.provider.CreateFile(s.ctx, s.docs.id, "BETA.txt")
	s.ErrorIs(err, fileprovider.ErrNameConflict)

	_, err = s.provider.CreateFolder(s.ctx, "", "a/b")
	s.ErrorIs(err, fileprovider.ErrForbidden)

	_, err = s.provider.CreateFile(s.ctx, "id:999", "x.txt")
	s.ErrorIs(err, fileprovider.ErrNotFound)
}

func (s *providerTestSuite) TestRename() {
	beta := s.file("/docs/beta.txt")
	renamed, err := s.provider.Rename(s.ctx, beta, "b.txt")
	s.Require().NoError(err)
	s.Equal("b.txt", renamed.Info().Title)
	s.Equal(beta.ID, renamed.Info().ID)
	s.Equal("beta.txt", beta.Title, "the input is not modified")
	s.True(s.exists("/docs/b.txt"))
	s.False(s.exists("/docs/beta.txt"))

	_, err = s.provider.Rename(s.ctx, renamed, "Alpha.txt")
	s.ErrorIs(err, fileprovider.ErrNameConflict)
}

func (s *providerTestSuite) TestRenameForbidden() {
	readOnly := s.file("/docs/beta.txt")
	readOnly.Access = fileprovider.AccessRead
	_, err := s.provider.Rename(s.ctx, readOnly, "x.txt")
	s.ErrorIs(err, fileprovider.ErrForbidden)
	s.Empty(s.client.calls)

	_, err = s.provider.Rename(s.ctx, rootFolder(), "x")
	s.ErrorIs(err, fileprovider.ErrForbidden)
}

func (s *providerTestSuite) TestDelete() {
	ops, err := s.provider.Delete(s.ctx, []fileprovider.Item{s.folder("/docs/sub"), s.file("/top.pdf")}, nil)
	s.Require().NoError(err)
	s.Require().Len(ops, 2)
	for _, op := range ops {
		s.True(op.Finished())
	}
	s.False(s.exists("/docs/sub"))
	s.False(s.exists("/docs/sub/deep.txt"))
	s.False(s.exists("/top.pdf"))

	ops, err = s.provider.Delete(s.ctx, nil, nil)
	s.Require().NoError(err)
	s.Empty(ops)
}

func (s *providerTestSuite) TestDeleteStopsAtFirstFailure() {
	ops, err := s.provider.Delete(s.ctx, []fileprovider.Item{
		s.file("/docs/beta.txt"),
		&fileprovider.CloudFile{ItemInfo: fileprovider.ItemInfo{ID: "id:999"}},
		s.file("/top.pdf"),
	}, nil)
	s.ErrorIs(err, fileprovider.ErrNotFound)
	s.Require().Len(ops, 2)
	s.True(ops[0].Finished())
	s.Equal(fileprovider.StateFailed, ops[1].State)
	s.True(s.exists("/top.pdf"))
}

func (s *providerTestSuite) TestDeleteMountPoint() {
	var unmounted []string
	p := NewProvider(WithClient(s.client), WithUnmounter(fileprovider.UnmountFunc(
		func(_ context.Context, folder *fileprovider.CloudFolder) error {
			unmounted = append(unmounted, folder.ID)
			return errors.New("ignored")
		})))
	mount := &fileprovider.CloudFolder{
		ItemInfo:    fileprovider.ItemInfo{ID: "id:mount", ProviderItem: true},
		ProviderKey: "WebDav",
	}
	ops, err := p.Delete(s.ctx, []fileprovider.Item{mount}, nil)
	s.Require().NoError(err)
	s.Equal([]string{"id:mount"}, unmounted)
	s.Require().Len(ops, 1)
	s.True(ops[0].Finished())
	s.False(s.called("DeleteV2"))
}

func (s *providerTestSuite) TestCopy() {
	dest := s.folder("/docs/sub")
	ops, err := s.provider.Transfer(s.ctx, []fileprovider.Item{s.file("/top.pdf")}, dest, fileprovider.ConflictSkip, false)
	s.Require().NoError(err)
	s.Require().Len(ops, 1)
	s.Equal(fileprovider.StatePending, ops[0].State)
	s.Len(s.provider.session.jobs, 1)

	op, err := s.provider.OperationStatus(s.ctx)
	s.Require().NoError(err)
	s.True(op.Finished())
	s.Empty(s.provider.session.jobs)
	s.True(s.exists("/docs/sub/top.pdf"))
	s.True(s.exists("/top.pdf"))
	s.True(s.called("CopyBatchCheckV2 " + ops[0].ID))
}

func (s *providerTestSuite) TestMove() {
	ops, err := s.provider.Transfer(s.ctx, []fileprovider.Item{s.file("/top.pdf"), s.folder("/docs/sub")},
		rootFolder(), fileprovider.ConflictSkip, true)
	s.ErrorIs(err, fileprovider.ErrSamePath, "sub is not in the root but top.pdf is")
	s.Nil(ops)
	s.False(s.called("MoveBatchV2"), "preconditions are checked before anything is submitted")

	ops, err = s.provider.Transfer(s.ctx, []fileprovider.Item{s.folder("/docs/sub")}, rootFolder(), fileprovider.ConflictSkip, true)
	s.Require().NoError(err)
	s.Require().Len(ops, 1)
	_, err = s.provider.OperationStatus(s.ctx)
	s.Require().NoError(err)
	s.True(s.exists("/sub/deep.txt"))
	s.False(s.exists("/docs/sub"))
	s.False(s.exists("/docs/sub/deep.txt"))
	s.True(s.called("MoveBatchCheckV2"))
}

func (s *providerTestSuite) TestTransferSkipsExisting() {
	s.client.put("/docs/sub/beta.txt", false, "old")
	ops, err := s.provider.Transfer(s.ctx, []fileprovider.Item{s.file("/docs/beta.txt")}, s.folder("/docs/sub"),
		fileprovider.ConflictSkip, false)
	s.Require().NoError(err)
	s.Require().Len(ops, 1)
	s.True(ops[0].Finished())
	s.False(s.called("CopyBatchV2"))
	s.Equal("old", string(s.node("/docs/sub/beta.txt").content))
}

func (s *providerTestSuite) TestTransferOverwrites() {
	s.client.put("/docs/sub/beta.txt", false, "old")
	_, err := s.provider.Transfer(s.ctx, []fileprovider.Item{s.file("/docs/beta.txt")}, s.folder("/docs/sub"),
		fileprovider.ConflictOverwrite, false)
	s.Require().NoError(err)
	_, err = s.provider.OperationStatus(s.ctx)
	s.Require().NoError(err)
	s.True(s.called("DeleteV2 /docs/sub/beta.txt"))
	s.Equal("beta", string(s.node("/docs/sub/beta.txt").content))
}

func (s *providerTestSuite) TestTransferDuplicatesInPlace() {
	_, err := s.provider.Transfer(s.ctx, []fileprovider.Item{s.file("/docs/beta.txt")}, s.folder("/docs"),
		fileprovider.ConflictDuplicate, false)
	s.Require().NoError(err)
	_, err = s.provider.OperationStatus(s.ctx)
	s.Require().NoError(err)
	s.True(s.exists("/docs/beta (1).txt"))
}

func (s *providerTestSuite) TestTransferPreconditions() {
	docs := s.folder("/docs")
	_, err := s.provider.Transfer(s.ctx, []fileprovider.Item{docs}, s.folder("/docs/sub"), fileprovider.ConflictSkip, true)
	s.ErrorIs(err, fileprovider.ErrSamePath, "a folder cannot move below itself")

	_, err = s.provider.Transfer(s.ctx, []fileprovider.Item{s.file("/docs/beta.txt")}, docs, fileprovider.ConflictOverwrite, false)
	s.ErrorIs(err, fileprovider.ErrSamePath)

	_, err = s.provider.Transfer(s.ctx, []fileprovider.Item{s.file("/docs/beta.txt")}, nil, fileprovider.ConflictSkip, false)
	s.Error(err)

	ops, err := s.provider.Transfer(s.ctx, nil, docs, fileprovider.ConflictSkip, false)
	s.Require().NoError(err)
	s.Empty(ops)
}

func (s *providerTestSuite) TestOperationStatusIdle() {
	op, err := s.provider.OperationStatus(s.ctx)
	s.Require().NoError(err)
	s.True(op.Finished())
	s.Empty(s.client.calls)
}

func (s *providerTestSuite) TestShare() {
	res, err := s.provider.Share(s.ctx, s.file("/top.pdf"), fileprovider.ShareSettings{Access: fileprovider.AccessRead})
	s.Require().NoError(err)
	s.True(res.Shared)
	s.Equal(fileprovider.AccessRead, res.Access)
	s.True(strings.HasPrefix(res.Link, "https://dl.dropboxusercontent.com/"))

	_, err = s.provider.Share(s.ctx, s.folder("/docs"), fileprovider.ShareSettings{})
	s.ErrorIs(err, fileprovider.ErrForbidden)

	_, err = s.provider.Share(s.ctx, s.file("/top.pdf"), fileprovider.ShareSettings{Revoke: true})
	s.ErrorIs(err, fileprovider.ErrForbidden)
}

func (s *providerTestSuite) TestFileInfo() {
	info, err := s.provider.FileInfo(s.ctx, s.file("/docs/beta.txt"))
	s.Require().NoError(err)
	s.Equal("beta.txt", info.Title)
	s.Equal("/docs", info.ParentID)
	s.NotEmpty(info.ViewURL)

	_, err = s.provider.FileInfo(s.ctx, s.folder("/docs"))
	s.ErrorIs(err, fileprovider.ErrNotFound)
}

func (s *providerTestSuite) TestDownload() {
	var buf bytes.Buffer
	n, err := s.provider.Download(s.ctx, s.file("/docs/beta.txt"), &buf)
	s.Require().NoError(err)
	s.Equal(int64(4), n)
	s.Equal("beta", buf.String())
	s.Equal(hostContent, s.provider.session.host)
}

func (s *providerTestSuite) TestUnauthorized() {
	p := NewProvider(WithOptions(Options{}))
	_, err := p.ListItems(s.ctx, "", fileprovider.Filter{})
	s.ErrorIs(err, fileprovider.ErrUnauthorized)
	s.ErrorIs(err, errAccessTokenRequired)
}

func (s *providerTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.provider.ListItems(ctx, "", fileprovider.Filter{})
	s.ErrorIs(err, context.Canceled)
	s.Empty(s.client.calls)
}

func (s *providerTestSuite) TestConformance() {
	testsuite.RunConformanceTests(s.T(), s.provider, RootID, testsuite.ConformanceOptions{})
}

func TestProvider(t *testing.T) {
	suite.Run(t, new(providerTestSuite))
}

type sessionTestSuite struct {
	suite.Suite
	api      *mocks.Client
	content  *mocks.Client
	provider *Provider
	ctx      context.Context
}

func (s *sessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.api = mocks.NewClient(s.T())
	s.content = mocks.NewClient(s.T())
	s.provider = NewProvider(WithClient(s.api), WithContentClient(s.content))
}

func folderMetadata(id, p string) *files.FolderMetadata {
	return &files.FolderMetadata{Metadata: files.Metadata{Name: p[strings.LastIndex(p, "/")+1:], PathDisplay: p}, Id: id}
}

func fileMetadata(id, p string) *files.FileMetadata {
	return &files.FileMetadata{Metadata: files.Metadata{Name: p[strings.LastIndex(p, "/")+1:], PathDisplay: p}, Id: id}
}

func metadataFor(id string) interface{} {
	return mock.MatchedBy(func(arg *files.GetMetadataArg) bool { return arg.Path == id })
}

func (s *sessionTestSuite) TestHostPerCall() {
	s.content.EXPECT().
		Download(mock.MatchedBy(func(arg *files.DownloadArg) bool { return arg.Path == "id:f" })).
		Return(fileMetadata("id:f", "/f.txt"), io.NopCloser(strings.NewReader("hi")), nil).
		Once()
	s.api.EXPECT().
		ListFolder(mock.MatchedBy(func(arg *files.ListFolderArg) bool { return arg.Path == "" && !arg.Recursive })).
		Return(&files.ListFolderResult{Entries: []files.IsMetadata{fileMetadata("id:f", "/f.txt")}}, nil).
		Once()

	var buf bytes.Buffer
	_, err := s.provider.Download(s.ctx, &fileprovider.CloudFile{ItemInfo: fileprovider.ItemInfo{ID: "id:f"}}, &buf)
	s.Require().NoError(err)
	s.Equal("hi", buf.String())
	s.Equal(hostContent, s.provider.session.host)
	s.Same(s.content, s.provider.session.client)

	e, err := s.provider.ListItems(s.ctx, "", fileprovider.Filter{})
	s.Require().NoError(err)
	s.Len(e.Files, 1)
	s.Equal(hostAPI, s.provider.session.host)
	s.Same(s.api, s.provider.session.client)
}

func (s *sessionTestSuite) TestJobsSurviveSessionChange() {
	s.api.EXPECT().GetMetadata(metadataFor("id:dest")).Return(folderMetadata("id:dest", "/dest"), nil).Once()
	s.api.EXPECT().GetMetadata(metadataFor("id:f")).Return(fileMetadata("id:f", "/f.txt"), nil).Once()
	s.api.EXPECT().GetMetadata(metadataFor("/dest/f.txt")).Return(nil, errors.New("path/not_found/..")).Once()
	s.api.EXPECT().
		MoveBatchV2(mock.MatchedBy(func(arg *files.MoveBatchArg) bool {
			return len(arg.Entries) == 1 && arg.Entries[0].FromPath == "/f.txt" && arg.Entries[0].ToPath == "/dest/f.txt" &&
				!arg.Autorename
		})).
		Return(&files.RelocationBatchV2Launch{Tagged: dropbox.Tagged{Tag: tagAsyncJobID}, AsyncJobId: "job-1"}, nil).
		Once()
	s.content.EXPECT().
		Download(mock.Anything).
		Return(fileMetadata("id:g", "/g.txt"), io.NopCloser(strings.NewReader("")), nil).
		Once()
	poll := mock.MatchedBy(func(arg *async.PollArg) bool { return arg.AsyncJobId == "job-1" })
	s.api.EXPECT().
		MoveBatchCheckV2(poll).
		Return(&files.RelocationBatchV2JobStatus{Tagged: dropbox.Tagged{Tag: tagInProgress}}, nil).
		Once()
	s.api.EXPECT().
		MoveBatchCheckV2(poll).
		Return(&files.RelocationBatchV2JobStatus{Tagged: dropbox.Tagged{Tag: tagComplete}, Complete: &files.RelocationBatchV2Result{}}, nil).
		Once()

	dest := &fileprovider.CloudFolder{ItemInfo: fileprovider.ItemInfo{ID: "id:dest"}}
	item := &fileprovider.CloudFile{ItemInfo: fileprovider.ItemInfo{ID: "id:f"}}
	ops, err := s.provider.Transfer(s.ctx, []fileprovider.Item{item}, dest, fileprovider.ConflictSkip, true)
	s.Require().NoError(err)
	s.Equal([]fileprovider.Operation{fileprovider.OperationPending("job-1")}, ops)

	_, err = s.provider.Download(s.ctx, &fileprovider.CloudFile{ItemInfo: fileprovider.ItemInfo{ID: "id:g"}}, io.Discard)
	s.Require().NoError(err)
	s.Equal([]job{{id: "job-1", move: true}}, s.provider.session.jobs)

	op, err := s.provider.OperationStatus(s.ctx)
	s.Require().NoError(err)
	s.Equal(fileprovider.StateInProgress, op.State)
	s.Len(s.provider.session.jobs, 1)

	op, err = s.provider.OperationStatus(s.ctx)
	s.Require().NoError(err)
	s.True(op.Finished())
	s.Empty(s.provider.session.jobs)
}

func (s *sessionTestSuite) TestCompleteBatchWithFailures() {
	s.api.EXPECT().GetMetadata(metadataFor("id:dest")).Return(folderMetadata("id:dest", "/dest"), nil).Once()
	s.api.EXPECT().GetMetadata(metadataFor("id:f")).Return(fileMetadata("id:f", "/f.txt"), nil).Once()
	s.api.EXPECT().
		CopyBatchV2(mock.MatchedBy(func(arg *files.RelocationBatchArgBase) bool { return arg.Autorename })).
		Return(&files.RelocationBatchV2Launch{
			Tagged: dropbox.Tagged{Tag: tagComplete},
			Complete: &files.RelocationBatchV2Result{Entries: []*files.RelocationBatchResultEntry{{
				Tagged:  dropbox.Tagged{Tag: tagFailure},
				Failure: &files.RelocationBatchErrorEntry{Tagged: dropbox.Tagged{Tag: "insufficient_quota"}},
			}}},
		}, nil).
		Once()

	dest := &fileprovider.CloudFolder{ItemInfo: fileprovider.ItemInfo{ID: "id:dest"}}
	item := &fileprovider.CloudFile{ItemInfo: fileprovider.ItemInfo{ID: "id:f"}}
	ops, err := s.provider.Transfer(s.ctx, []fileprovider.Item{item}, dest, fileprovider.ConflictDuplicate, false)
	s.Require().NoError(err)
	s.Require().Len(ops, 1)
	s.Equal(fileprovider.StateFailed, ops[0].State)
	s.ErrorIs(ops[0].Err, fileprovider.ErrUnexpectedResponse)
	s.Empty(s.provider.session.jobs)
}

func (s *sessionTestSuite) TestTransportError() {
	s.api.EXPECT().
		ListFolder(mock.Anything).
		Return(nil, &url.Error{Op: "Post", URL: "https://api.dropboxapi.com/2/files/list_folder", Err: errors.New("connection refused")}).
		Once()
	_, err := s.provider.ListItems(s.ctx, "", fileprovider.Filter{})
	s.ErrorIs(err, fileprovider.ErrNetwork)
}

func TestSession(t *testing.T) {
	suite.Run(t, new(sessionTestSuite))
}

func TestMapError(t *testing.T) {
	tests := []struct {
		summary string
		want    error
	}{
		{"expired_access_token/..", fileprovider.ErrUnauthorized},
		{"missing_scope/files.content.write/", fileprovider.ErrUnauthorized},
		{"path/not_found/..", fileprovider.ErrNotFound},
		{"path_lookup/not_folder/.", fileprovider.ErrNotFound},
		{"path/conflict/file/..", fileprovider.ErrNameConflict},
		{"path/no_write_permission/..", fileprovider.ErrForbidden},
		{"from_lookup/restricted_content/", fileprovider.ErrForbidden},
		{"too_many_write_operations/", fileprovider.ErrUnexpectedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			assert.ErrorIs(t, mapError(errors.New(tt.summary)), tt.want)
		})
	}

	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(context.Canceled), context.Canceled)
	assert.False(t, fileprovider.Classified(mapError(context.Canceled)))
	classified := fileprovider.Wrap(fileprovider.ErrForbidden, errors.New("x"))
	assert.Equal(t, classified, mapError(classified))
}

func titles(files []*fileprovider.CloudFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Title)
	}
	return out
}

func folderTitles(folders []*fileprovider.CloudFolder) []string {
	out := make([]string, 0, len(folders))
	for _, f := range folders {
		out = append(out, f.Title)
	}
	return out
}
