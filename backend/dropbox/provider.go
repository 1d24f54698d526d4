package dropbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/async"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/backend"
	"github.com/MCPEngu/fileprovider/internal/cursor"
	"github.com/MCPEngu/fileprovider/options"
	"github.com/MCPEngu/fileprovider/utils"
)

// Scheme defines the provider type.
const Scheme = "dbx"

const name = "Dropbox"

// RootID is the id of the root folder.
const RootID = ""

const (
	tagAsyncJobID = "async_job_id"
	tagComplete   = "complete"
	tagInProgress = "in_progress"
	tagFailure    = "failure"
)

var errAccessTokenRequired = errors.New("access token is required for Dropbox authentication")

var (
	_ fileprovider.FileProvider = (*Provider)(nil)
	_ fileprovider.Downloader   = (*Provider)(nil)
)

// host is the Dropbox endpoint class a call goes to.
type host string

const (
	hostAPI     host = "api"
	hostContent host = "content"
)

// session records the client of the last call and the batch jobs not yet known to be finished. It is replaced
// wholesale, never modified in place.
type session struct {
	host   host
	client Client
	jobs   []job
}

type job struct {
	id   string
	move bool
}

// page is what a cursor redeems to.
type page struct {
	current   *fileprovider.CloudFolder
	filter    fileprovider.Filter
	dbxCursor string
	search    bool
}

// Provider implements fileprovider.FileProvider for Dropbox.
type Provider struct {
	api       Client
	content   Client
	session   session
	options   Options
	logger    *zap.Logger
	unmounter fileprovider.Unmounter
	cursors   cursor.Tracker[page]
}

// NewProvider initializer for Provider struct.
func NewProvider(opts ...options.NewProviderOption[Provider]) *Provider {
	p := &Provider{
		options: NewOptions(),
		logger:  zap.NewNop(),
	}

	options.ApplyOptions(p, opts...)

	return p
}

// Name returns "Dropbox"
func (p *Provider) Name() string {
	return name
}

// Scheme returns "dbx"
func (p *Provider) Scheme() string {
	return Scheme
}

// Client returns the client for metadata calls, creating it if necessary.
func (p *Provider) Client() (Client, error) {
	return p.use(hostAPI)
}

// use starts a new session on h and returns its client.
func (p *Provider) use(h host) (Client, error) {
	c := p.api
	timeout := p.options.Timeout
	if h == hostContent {
		c, timeout = p.content, p.options.ContentTimeout
	}
	if c == nil {
		if p.options.AccessToken == "" {
			return nil, fmt.Errorf("%w: %w", fileprovider.ErrUnauthorized, errAccessTokenRequired)
		}
		c = files.New(dropbox.Config{
			Token:    p.options.AccessToken,
			LogLevel: dropbox.LogOff,
			Client:   &http.Client{Timeout: timeout},
		})
		if h == hostContent {
			p.content = c
		} else {
			p.api = c
		}
	}
	p.session = session{host: h, client: c, jobs: p.session.jobs}
	return c, nil
}

// ListItems lists a folder. A fresh listing invalidates any cursor handed out before.
func (p *Provider) ListItems(ctx context.Context, folderID string, filter fileprovider.Filter) (*fileprovider.Explorer, error) {
	p.cursors.Reset()
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapListError(err)
	}
	c, err := p.use(hostAPI)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	_, current, err := p.folder(c, folderID)
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	target := current.ID
	arg := files.NewListFolderArg(target)
	arg.Recursive = filter.WithSubfolders && filter.Search != ""
	if size := p.pageSize(filter); size > 0 {
		arg.Limit = uint32(size)
	}
	res, err := c.ListFolder(arg)
	if err != nil {
		return nil, utils.WrapListError(mapError(err))
	}
	pg := page{current: current, filter: filter}
	return p.listed(pg, res.Entries, res.Cursor, res.HasMore), nil
}

// ContinueListing fetches the page a cursor points at.
func (p *Provider) ContinueListing(ctx context.Context, token string) (*fileprovider.Explorer, error) {
	pg, err := p.cursors.Redeem(token)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	e, err := p.resume(ctx, pg)
	return e, utils.WrapListError(err)
}

// Search matches names across the whole Dropbox.
func (p *Provider) Search(ctx context.Context, query, token string) (*fileprovider.Explorer, error) {
	if token != "" {
		pg, err := p.cursors.Redeem(token)
		if err != nil {
			return nil, utils.WrapSearchError(err)
		}
		e, err := p.resume(ctx, pg)
		return e, utils.WrapSearchError(err)
	}
	p.cursors.Reset()
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapSearchError(err)
	}
	c, err := p.use(hostAPI)
	if err != nil {
		return nil, utils.WrapSearchError(err)
	}
	arg := files.NewSearchV2Arg(query)
	if size := p.pageSize(fileprovider.Filter{}); size > 0 {
		opts := files.NewSearchOptions()
		opts.MaxResults = uint64(size)
		arg.Options = opts
	}
	res, err := c.SearchV2(arg)
	if err != nil {
		return nil, utils.WrapSearchError(mapError(err))
	}
	pg := page{
		current: rootFolder(),
		filter:  fileprovider.Filter{SortBy: fileprovider.SortByTitle, SortOrder: fileprovider.SortAsc},
		search:  true,
	}
	return p.listed(pg, matches(res), res.Cursor, res.HasMore), nil
}

func (p *Provider) resume(ctx context.Context, pg page) (*fileprovider.Explorer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := p.use(hostAPI)
	if err != nil {
		return nil, err
	}
	if pg.search {
		res, err := c.SearchContinueV2(files.NewSearchV2ContinueArg(pg.dbxCursor))
		if err != nil {
			return nil, mapError(err)
		}
		return p.listed(pg, matches(res), res.Cursor, res.HasMore), nil
	}
	res, err := c.ListFolderContinue(files.NewListFolderContinueArg(pg.dbxCursor))
	if err != nil {
		return nil, mapError(err)
	}
	return p.listed(pg, res.Entries, res.Cursor, res.HasMore), nil
}

// listed builds a page from Dropbox entries and wraps the Dropbox cursor into a one-shot provider cursor.
func (p *Provider) listed(pg page, entries []files.IsMetadata, dbxCursor string, hasMore bool) *fileprovider.Explorer {
	e := &fileprovider.Explorer{Current: pg.current}
	nested := pg.search || pg.filter.WithSubfolders
	for _, m := range entries {
		parent := pg.current.ID
		if nested {
			parent = parentOf(displayPath(m))
		}
		switch it := toItem(m, parent).(type) {
		case *fileprovider.CloudFile:
			e.Files = append(e.Files, it)
		case *fileprovider.CloudFolder:
			e.Folders = append(e.Folders, it)
		}
	}
	fileprovider.ApplyFilter(e, pg.filter)
	e.Total = e.Count()
	p.logger.Debug("listed folder", zap.String("folder", pg.current.ID), zap.Int("items", e.Count()),
		zap.Bool("more", hasMore), zap.String("session", string(p.session.host)))

	if hasMore && dbxCursor != "" {
		next := pg
		next.dbxCursor = dbxCursor
		e.Cursor = p.cursors.Issue(next)
	}
	return e
}

func matches(res *files.SearchV2Result) []files.IsMetadata {
	out := make([]files.IsMetadata, 0, len(res.Matches))
	for _, m := range res.Matches {
		if m != nil && m.Metadata != nil && m.Metadata.Metadata != nil {
			out = append(out, m.Metadata.Metadata)
		}
	}
	return out
}

func (p *Provider) pageSize(filter fileprovider.Filter) int {
	if filter.PageSize > 0 {
		return filter.PageSize
	}
	return p.options.PageSize
}

// CreateFile uploads an empty file. An existing file of the same name is a conflict, never replaced or renamed.
func (p *Provider) CreateFile(ctx context.Context, folderID, name string) (*fileprovider.CloudFile, error) {
	c, dir, parent, err := p.prepareCreate(ctx, folderID, name)
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	arg := files.NewUploadArg(join(dir, name))
	arg.Mode = &files.WriteMode{Tagged: dropbox.Tagged{Tag: "add"}}
	arg.Autorename = false
	arg.StrictConflict = true
	md, err := c.Upload(arg, bytes.NewReader(nil))
	if err != nil {
		return nil, utils.WrapCreateError(mapError(err))
	}
	p.logger.Debug("created file", zap.String("path", md.PathDisplay))
	return toFile(md, parent.ID), nil
}

// CreateFolder creates a folder.
func (p *Provider) CreateFolder(ctx context.Context, folderID, name string) (*fileprovider.CloudFolder, error) {
	c, dir, parent, err := p.prepareCreate(ctx, folderID, name)
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	arg := files.NewCreateFolderArg(join(dir, name))
	arg.Autorename = false
	res, err := c.CreateFolderV2(arg)
	if err != nil {
		return nil, utils.WrapCreateError(mapError(err))
	}
	if res.Metadata == nil {
		return nil, utils.WrapCreateError(fmt.Errorf("%w: no folder metadata", fileprovider.ErrUnexpectedResponse))
	}
	p.logger.Debug("created folder", zap.String("path", res.Metadata.PathDisplay))
	return toFolder(res.Metadata, parent.ID), nil
}

// prepareCreate resolves the parent, which Dropbox would otherwise create on the fly.
func (p *Provider) prepareCreate(ctx context.Context, folderID, name string) (Client, string, *fileprovider.CloudFolder, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", nil, err
	}
	if err := utils.ValidateName(name); err != nil {
		return nil, "", nil, fileprovider.Wrap(fileprovider.ErrForbidden, err)
	}
	c, err := p.use(hostAPI)
	if err != nil {
		return nil, "", nil, err
	}
	dir, parent, err := p.folder(c, folderID)
	if err != nil {
		return nil, "", nil, err
	}
	return c, dir, parent, nil
}

// Rename moves an item within its folder. Dropbox ids survive the move, so only the title changes.
func (p *Provider) Rename(ctx context.Context, item fileprovider.Item, newName string) (fileprovider.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapRenameError(err)
	}
	if fileprovider.IsReadOnly(item) {
		return nil, utils.WrapRenameError(fmt.Errorf("%w: %s is read-only", fileprovider.ErrForbidden, item.Info().Title))
	}
	if err := utils.ValidateName(newName); err != nil {
		return nil, utils.WrapRenameError(fileprovider.Wrap(fileprovider.ErrForbidden, err))
	}
	c, err := p.use(hostAPI)
	if err != nil {
		return nil, utils.WrapRenameError(err)
	}
	src, err := p.pathOf(c, item.Info().ID)
	if err != nil {
		return nil, utils.WrapRenameError(err)
	}
	if src == "" {
		return nil, utils.WrapRenameError(fmt.Errorf("%w: the root folder cannot be renamed", fileprovider.ErrForbidden))
	}
	target := join(parentOf(src), newName)
	if target != src {
		arg := files.NewRelocationArg(src, target)
		arg.Autorename = false
		if _, err := c.MoveV2(arg); err != nil {
			return nil, utils.WrapRenameError(mapError(err))
		}
	}
	p.logger.Debug("renamed", zap.String("from", src), zap.String("to", target))
	return fileprovider.Renamed(item, newName), nil
}

// Delete removes items one at a time, stopping at the first failure. Mount points go to the unmounter.
func (p *Provider) Delete(ctx context.Context, items []fileprovider.Item, _ *fileprovider.CloudFolder) ([]fileprovider.Operation, error) {
	if len(items) == 0 {
		return []fileprovider.Operation{}, nil
	}
	c, err := p.use(hostAPI)
	if err != nil {
		return nil, utils.WrapDeleteError(err)
	}

	content, mounts := fileprovider.SplitMountPoints(items)
	ops := backend.Unmount(ctx, p.logger, p.unmounter, mounts)
	for _, item := range content {
		id := item.Info().ID
		if err := ctx.Err(); err != nil {
			err = utils.WrapDeleteError(err)
			return append(ops, fileprovider.OperationFailed(id, err)), err
		}
		if resolve(id) == RootID {
			err := utils.WrapDeleteError(fmt.Errorf("%w: the root folder cannot be deleted", fileprovider.ErrForbidden))
			return append(ops, fileprovider.OperationFailed(id, err)), err
		}
		if _, err := c.DeleteV2(files.NewDeleteArg(id)); err != nil {
			err = utils.WrapDeleteError(mapError(err))
			return append(ops, fileprovider.OperationFailed(id, err)), err
		}
		p.logger.Debug("deleted", zap.String("id", id))
		ops = append(ops, fileprovider.OperationDone(id))
	}
	return ops, nil
}

// Transfer submits one batch copy or move. Skip drops entries whose target exists, Overwrite deletes those targets
// first and Duplicate lets Dropbox pick a free name. An async batch yields a pending operation that OperationStatus
// follows.
func (p *Provider) Transfer(ctx context.Context, items []fileprovider.Item, dest *fileprovider.CloudFolder,
	policy fileprovider.ConflictPolicy, isMove bool) ([]fileprovider.Operation, error) {
	if len(items) == 0 {
		return []fileprovider.Operation{}, nil
	}
	if err := backend.ValidateTransfer(items, dest); err != nil {
		return nil, utils.WrapTransferError(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapTransferError(err)
	}
	c, err := p.use(hostAPI)
	if err != nil {
		return nil, utils.WrapTransferError(err)
	}
	destPath, _, err := p.folder(c, dest.ID)
	if err != nil {
		return nil, utils.WrapTransferError(err)
	}

	sources := make([]string, 0, len(items))
	for _, item := range items {
		src, err := p.pathOf(c, item.Info().ID)
		if err != nil {
			return nil, utils.WrapTransferError(err)
		}
		target := join(destPath, path.Base(src))
		switch {
		case src == "", utils.IsWithin(strings.ToLower(destPath), strings.ToLower(src)):
			return nil, utils.WrapTransferError(fmt.Errorf("%w: %s into %s", fileprovider.ErrSamePath, src, destPath))
		case strings.EqualFold(target, src) && (isMove || policy != fileprovider.ConflictDuplicate):
			return nil, utils.WrapTransferError(fmt.Errorf("%w: %s", fileprovider.ErrSamePath, src))
		}
		sources = append(sources, src)
	}

	var (
		ops     []fileprovider.Operation
		entries []*files.RelocationPath
	)
	for i, src := range sources {
		target := join(destPath, path.Base(src))
		if policy != fileprovider.ConflictDuplicate {
			taken, err := p.exists(c, target)
			if err != nil {
				return nil, utils.WrapTransferError(err)
			}
			if taken && policy == fileprovider.ConflictSkip {
				p.logger.Debug("skipping existing item", zap.String("target", target))
				ops = append(ops, fileprovider.OperationDone(items[i].Info().ID))
				continue
			}
			if taken {
				if _, err := c.DeleteV2(files.NewDeleteArg(target)); err != nil {
					err = utils.WrapTransferError(mapError(err))
					return append(ops, fileprovider.OperationFailed(items[i].Info().ID, err)), err
				}
			}
		}
		entries = append(entries, files.NewRelocationPath(src, target))
	}
	if len(entries) == 0 {
		return ops, nil
	}

	launch, err := p.launch(c, entries, policy == fileprovider.ConflictDuplicate, isMove)
	if err != nil {
		err = utils.WrapTransferError(mapError(err))
		return append(ops, fileprovider.OperationFailed("", err)), err
	}
	p.logger.Debug("submitted batch", zap.Int("entries", len(entries)), zap.Bool("move", isMove),
		zap.String("result", launch.Tag))

	switch launch.Tag {
	case tagAsyncJobID:
		p.session = session{
			host:   p.session.host,
			client: p.session.client,
			jobs:   append(append([]job{}, p.session.jobs...), job{id: launch.AsyncJobId, move: isMove}),
		}
		ops = append(ops, fileprovider.OperationPending(launch.AsyncJobId))
	case tagComplete:
		ops = append(ops, batchResult("", launch.Complete))
	default:
		err := fmt.Errorf("%w: batch answered %q", fileprovider.ErrUnexpectedResponse, launch.Tag)
		return append(ops, fileprovider.OperationFailed("", err)), utils.WrapTransferError(err)
	}
	return ops, nil
}

func (p *Provider) launch(c Client, entries []*files.RelocationPath, autorename, isMove bool) (*files.RelocationBatchV2Launch, error) {
	if isMove {
		arg := files.NewMoveBatchArg(entries)
		arg.Autorename = autorename
		return c.MoveBatchV2(arg)
	}
	arg := files.NewRelocationBatchArgBase(entries)
	arg.Autorename = autorename
	return c.CopyBatchV2(arg)
}

// batchResult folds the per-entry outcome of a finished batch.
func batchResult(id string, res *files.RelocationBatchV2Result) fileprovider.Operation {
	if res == nil {
		return fileprovider.OperationDone(id)
	}
	var failed []error
	for _, entry := range res.Entries {
		if entry == nil || entry.Tag != tagFailure {
			continue
		}
		reason := tagFailure
		if entry.Failure != nil {
			reason = entry.Failure.Tag
		}
		failed = append(failed, mapError(errors.New(reason)))
	}
	if len(failed) > 0 {
		return fileprovider.OperationFailed(id, errors.Join(failed...))
	}
	return fileprovider.OperationDone(id)
}

// Share hands out a temporary download link of a file.
func (p *Provider) Share(ctx context.Context, item fileprovider.Item, settings fileprovider.ShareSettings) (*fileprovider.ShareResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapShareError(err)
	}
	if _, ok := item.(*fileprovider.CloudFile); !ok {
		return nil, utils.WrapShareError(fmt.Errorf("%w: folders have no temporary link", fileprovider.ErrForbidden))
	}
	if settings.Revoke {
		return nil, utils.WrapShareError(fmt.Errorf("%w: temporary links cannot be revoked", fileprovider.ErrForbidden))
	}
	c, err := p.use(hostAPI)
	if err != nil {
		return nil, utils.WrapShareError(err)
	}
	res, err := c.GetTemporaryLink(files.NewGetTemporaryLinkArg(item.Info().ID))
	if err != nil {
		return nil, utils.WrapShareError(mapError(err))
	}
	return &fileprovider.ShareResult{
		ItemID: item.Info().ID,
		Link:   res.Link,
		Access: fileprovider.AccessRead,
		Shared: true,
	}, nil
}

// OperationStatus polls every pending batch job once. Finished jobs are forgotten.
func (p *Provider) OperationStatus(ctx context.Context) (fileprovider.Operation, error) {
	if err := ctx.Err(); err != nil {
		return fileprovider.Operation{}, utils.WrapStatusError(err)
	}
	if len(p.session.jobs) == 0 {
		return fileprovider.OperationDone(""), nil
	}
	c, err := p.use(hostAPI)
	if err != nil {
		return fileprovider.Operation{}, utils.WrapStatusError(err)
	}

	var (
		ops     []fileprovider.Operation
		pending []job
	)
	for _, j := range p.session.jobs {
		check := c.CopyBatchCheckV2
		if j.move {
			check = c.MoveBatchCheckV2
		}
		status, err := check(async.NewPollArg(j.id))
		if err != nil {
			return fileprovider.Operation{}, utils.WrapStatusError(mapError(err))
		}
		switch status.Tag {
		case tagInProgress:
			pending = append(pending, j)
			ops = append(ops, fileprovider.OperationInProgress(j.id, 0))
		case tagComplete:
			ops = append(ops, batchResult(j.id, status.Complete))
		default:
			ops = append(ops, fileprovider.OperationFailed(j.id,
				fmt.Errorf("%w: job %s answered %q", fileprovider.ErrUnexpectedResponse, j.id, status.Tag)))
		}
	}
	p.session = session{host: p.session.host, client: p.session.client, jobs: pending}
	return fileprovider.AggregateOperations(ops), nil
}

// FileInfo reads the metadata of a file, with a temporary link as its view URL.
func (p *Provider) FileInfo(ctx context.Context, item fileprovider.Item) (*fileprovider.CloudFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapFileInfoError(err)
	}
	c, err := p.use(hostAPI)
	if err != nil {
		return nil, utils.WrapFileInfoError(err)
	}
	m, err := c.GetMetadata(files.NewGetMetadataArg(item.Info().ID))
	if err != nil {
		return nil, utils.WrapFileInfoError(mapError(err))
	}
	md, ok := m.(*files.FileMetadata)
	if !ok {
		return nil, utils.WrapFileInfoError(fmt.Errorf("%w: %s is not a file", fileprovider.ErrNotFound, item.Info().ID))
	}
	file := toFile(md, parentOf(md.PathDisplay))
	if link, err := c.GetTemporaryLink(files.NewGetTemporaryLinkArg(file.ID)); err != nil {
		p.logger.Warn("no temporary link", zap.String("id", file.ID), zap.Error(err))
	} else {
		file.ViewURL = link.Link
	}
	return file, nil
}

// Download streams the content of file to w through the content host.
func (p *Provider) Download(ctx context.Context, file *fileprovider.CloudFile, w io.Writer) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, utils.WrapDownloadError(err)
	}
	c, err := p.use(hostContent)
	if err != nil {
		return 0, utils.WrapDownloadError(err)
	}
	_, r, err := c.Download(files.NewDownloadArg(file.ID))
	if err != nil {
		return 0, utils.WrapDownloadError(mapError(err))
	}
	defer func() { _ = r.Close() }()
	n, err := utils.TouchCopyBuffered(w, r, 0)
	return n, utils.WrapDownloadError(mapError(err))
}

// folder resolves id to a folder and its display path. The root has neither metadata nor a path.
func (p *Provider) folder(c Client, id string) (string, *fileprovider.CloudFolder, error) {
	id = resolve(id)
	if id == RootID {
		return "", rootFolder(), nil
	}
	m, err := c.GetMetadata(files.NewGetMetadataArg(id))
	if err != nil {
		return "", nil, mapError(err)
	}
	md, ok := m.(*files.FolderMetadata)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s is not a folder", fileprovider.ErrNotFound, id)
	}
	return md.PathDisplay, toFolder(md, parentOf(md.PathDisplay)), nil
}

func (p *Provider) pathOf(c Client, id string) (string, error) {
	id = resolve(id)
	if id == RootID {
		return "", nil
	}
	m, err := c.GetMetadata(files.NewGetMetadataArg(id))
	if err != nil {
		return "", mapError(err)
	}
	return displayPath(m), nil
}

func (p *Provider) exists(c Client, target string) (bool, error) {
	_, err := c.GetMetadata(files.NewGetMetadataArg(target))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(mapError(err), fileprovider.ErrNotFound):
		return false, nil
	}
	return false, mapError(err)
}

func resolve(id string) string {
	if id == "root" || id == "/" {
		return RootID
	}
	return id
}

func join(dir, name string) string {
	return utils.EnsureTrailingSlash(dir) + name
}

// mapError classifies SDK errors. Dropbox reports failures as error summaries such as "path/not_found/..".
func mapError(err error) error {
	if err == nil || fileprovider.Classified(err) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if fileprovider.IsTransportError(err) {
		return fileprovider.Wrap(fileprovider.ErrNetwork, err)
	}
	summary := err.Error()
	switch {
	case containsAny(summary, "expired_access_token", "invalid_access_token", "missing_scope", "user_suspended"):
		return fileprovider.Wrap(fileprovider.ErrUnauthorized, err)
	case containsAny(summary, "not_found", "not_folder", "not_file"):
		return fileprovider.Wrap(fileprovider.ErrNotFound, err)
	case strings.Contains(summary, "conflict"):
		return fileprovider.Wrap(fileprovider.ErrNameConflict, err)
	case containsAny(summary, "no_write_permission", "insufficient_permissions", "restricted_content",
		"disallowed_name", "cant_copy_shared_folder", "cant_move_folder_into_itself", "too_many_files"):
		return fileprovider.Wrap(fileprovider.ErrForbidden, err)
	}
	return fileprovider.Wrap(fileprovider.ErrUnexpectedResponse, err)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func init() {
	backend.Register(Scheme, NewProvider())
}
