package webdav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"

	"github.com/studio-b12/gowebdav"
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/backend"
	"github.com/MCPEngu/fileprovider/internal/cursor"
	"github.com/MCPEngu/fileprovider/options"
	"github.com/MCPEngu/fileprovider/utils"
)

// Scheme defines the provider type.
const Scheme = "webdav"

const name = "WebDAV"

// RootID is the id of the root collection.
const RootID = "/"

var errURLRequired = errors.New("webdav server url is required")

var (
	_ fileprovider.FileProvider = (*Provider)(nil)
	_ fileprovider.Downloader   = (*Provider)(nil)
)

// Provider implements fileprovider.FileProvider for a WebDAV server.
type Provider struct {
	client    Client
	options   Options
	logger    *zap.Logger
	unmounter fileprovider.Unmounter
	cursors   cursor.Tracker[page]
}

type page struct {
	folderID string
	filter   fileprovider.Filter
	search   bool
	offset   int
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

// Name returns "WebDAV"
func (p *Provider) Name() string {
	return name
}

// Scheme returns "webdav"
func (p *Provider) Scheme() string {
	return Scheme
}

// Client returns the underlying WebDAV client, creating it if necessary.
func (p *Provider) Client() (Client, error) {
	if p.client == nil {
		if p.options.URL == "" {
			return nil, fmt.Errorf("%w: %w", fileprovider.ErrUnauthorized, errURLRequired)
		}
		c := gowebdav.NewClient(p.options.URL, p.options.User, p.options.Password)
		c.SetTimeout(p.options.Timeout)
		p.client = c
	}
	return p.client, nil
}

// ListItems lists a collection. A fresh listing invalidates any cursor handed out before.
func (p *Provider) ListItems(ctx context.Context, folderID string, filter fileprovider.Filter) (*fileprovider.Explorer, error) {
	p.cursors.Reset()
	e, err := p.list(ctx, page{folderID: folderID, filter: filter})
	return e, utils.WrapListError(err)
}

// ContinueListing returns the page a cursor points at.
func (p *Provider) ContinueListing(ctx context.Context, token string) (*fileprovider.Explorer, error) {
	pg, err := p.cursors.Redeem(token)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	e, err := p.list(ctx, pg)
	return e, utils.WrapListError(err)
}

// Search walks the tree below the root for titles containing query.
func (p *Provider) Search(ctx context.Context, query, token string) (*fileprovider.Explorer, error) {
	if token != "" {
		pg, err := p.cursors.Redeem(token)
		if err != nil {
			return nil, utils.WrapSearchError(err)
		}
		e, err := p.list(ctx, pg)
		return e, utils.WrapSearchError(err)
	}
	p.cursors.Reset()
	e, err := p.list(ctx, page{
		folderID: RootID,
		search:   true,
		filter: fileprovider.Filter{
			Search:    query,
			SortBy:    fileprovider.SortByTitle,
			SortOrder: fileprovider.SortAsc,
		},
	})
	return e, utils.WrapSearchError(err)
}

func (p *Provider) list(ctx context.Context, pg page) (*fileprovider.Explorer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := p.Client()
	if err != nil {
		return nil, err
	}
	dir := resolve(pg.folderID)
	current, err := p.folder(c, dir)
	if err != nil {
		return nil, err
	}

	e := &fileprovider.Explorer{Current: current}
	depth := 0
	if pg.search || pg.filter.WithSubfolders && pg.filter.Search != "" {
		depth = p.options.SearchDepth
	}
	if err := p.walk(ctx, c, dir, depth, e); err != nil {
		return nil, err
	}
	if depth == 0 {
		current.FilesCount, current.FoldersCount = len(e.Files), len(e.Folders)
	}

	fileprovider.ApplyFilter(e, pg.filter)
	p.logger.Debug("listed collection", zap.String("folder", dir), zap.Int("items", e.Count()), zap.Int("offset", pg.offset))

	size := pg.filter.PageSize
	if size <= 0 {
		size = p.options.PageSize
	}
	return backend.Page(e, pg.offset, size, func(offset int) string {
		next := pg
		next.offset = offset
		return p.cursors.Issue(next)
	}), nil
}

// walk adds the children of dir to e, descending depth more levels.
func (p *Provider) walk(ctx context.Context, c Client, dir string, depth int, e *fileprovider.Explorer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	infos, err := c.ReadDir(dir)
	if err != nil {
		return mapError(err)
	}
	for _, info := range infos {
		child := utils.JoinPath(dir, info.Name())
		if !info.IsDir() {
			e.Files = append(e.Files, toFile(child, info))
			continue
		}
		e.Folders = append(e.Folders, toFolder(child, info))
		if depth > 0 {
			if err := p.walk(ctx, c, child, depth-1, e); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateFile uploads an empty file.
func (p *Provider) CreateFile(ctx context.Context, folderID, name string) (*fileprovider.CloudFile, error) {
	c, target, err := p.prepareCreate(ctx, folderID, name)
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	if err := c.Write(target, []byte{}, 0o644); err != nil {
		return nil, utils.WrapCreateError(mapError(err))
	}
	info, err := c.Stat(target)
	if err != nil {
		return nil, utils.WrapCreateError(mapError(err))
	}
	p.logger.Debug("created file", zap.String("path", target))
	return toFile(target, info), nil
}

// CreateFolder creates a collection.
func (p *Provider) CreateFolder(ctx context.Context, folderID, name string) (*fileprovider.CloudFolder, error) {
	c, target, err := p.prepareCreate(ctx, folderID, name)
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	if err := c.Mkdir(target, 0o755); err != nil {
		return nil, utils.WrapCreateError(mapError(err))
	}
	info, err := c.Stat(target)
	if err != nil {
		return nil, utils.WrapCreateError(mapError(err))
	}
	p.logger.Debug("created folder", zap.String("path", target))
	return toFolder(target, info), nil
}

// prepareCreate checks the parent exists and the name is free. The client would otherwise create missing parents
// on upload and report success for an existing collection.
func (p *Provider) prepareCreate(ctx context.Context, folderID, name string) (Client, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if err := utils.ValidateName(name); err != nil {
		return nil, "", fileprovider.Wrap(fileprovider.ErrForbidden, err)
	}
	c, err := p.Client()
	if err != nil {
		return nil, "", err
	}
	dir := resolve(folderID)
	if _, err := p.folder(c, dir); err != nil {
		return nil, "", err
	}
	target := utils.JoinPath(dir, name)
	if err := ensureFree(c, target); err != nil {
		return nil, "", err
	}
	return c, target, nil
}

// Rename moves an item within its collection. The returned item carries the new path as its id.
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
	c, err := p.Client()
	if err != nil {
		return nil, utils.WrapRenameError(err)
	}
	oldPath := resolve(item.Info().ID)
	if oldPath == RootID {
		return nil, utils.WrapRenameError(fmt.Errorf("%w: the root collection cannot be renamed", fileprovider.ErrForbidden))
	}
	newPath := utils.JoinPath(utils.ParentPath(oldPath), newName)
	if newPath != oldPath {
		if err := ensureFree(c, newPath); err != nil {
			return nil, utils.WrapRenameError(err)
		}
		if err := c.Rename(oldPath, newPath, false); err != nil {
			return nil, utils.WrapRenameError(mapError(err))
		}
	}
	p.logger.Debug("renamed", zap.String("from", oldPath), zap.String("to", newPath))

	renamed := fileprovider.Renamed(item, newName)
	renamed.Info().ID = newPath
	return renamed, nil
}

// Delete removes items one at a time, stopping at the first failure.
func (p *Provider) Delete(ctx context.Context, items []fileprovider.Item, _ *fileprovider.CloudFolder) ([]fileprovider.Operation, error) {
	if len(items) == 0 {
		return []fileprovider.Operation{}, nil
	}
	c, err := p.Client()
	if err != nil {
		return nil, utils.WrapDeleteError(err)
	}

	content, mounts := fileprovider.SplitMountPoints(items)
	ops := backend.Unmount(ctx, p.logger, p.unmounter, mounts)
	for _, item := range content {
		id := item.Info().ID
		if err := p.remove(ctx, c, resolve(id)); err != nil {
			err = utils.WrapDeleteError(err)
			return append(ops, fileprovider.OperationFailed(id, err)), err
		}
		p.logger.Debug("deleted", zap.String("path", resolve(id)))
		ops = append(ops, fileprovider.OperationDone(id))
	}
	return ops, nil
}

func (p *Provider) remove(ctx context.Context, c Client, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if target == RootID {
		return fmt.Errorf("%w: the root collection cannot be deleted", fileprovider.ErrForbidden)
	}
	if _, err := c.Stat(target); err != nil {
		return mapError(err)
	}
	return mapError(c.RemoveAll(target))
}

// Transfer moves or copies items into dest one at a time. WebDAV has no batch call, so the returned operations are
// already finished; processing stops at the first failure.
func (p *Provider) Transfer(ctx context.Context, items []fileprovider.Item, dest *fileprovider.CloudFolder,
	policy fileprovider.ConflictPolicy, isMove bool) ([]fileprovider.Operation, error) {
	if len(items) == 0 {
		return []fileprovider.Operation{}, nil
	}
	if err := backend.ValidateTransfer(items, dest); err != nil {
		return nil, utils.WrapTransferError(err)
	}
	c, err := p.Client()
	if err != nil {
		return nil, utils.WrapTransferError(err)
	}
	destPath := resolve(dest.ID)
	for _, item := range items {
		src := resolve(item.Info().ID)
		if src == RootID || utils.IsWithin(destPath, src) {
			return nil, utils.WrapTransferError(fmt.Errorf("%w: %s into %s", fileprovider.ErrSamePath, src, destPath))
		}
	}
	if _, err := p.folder(c, destPath); err != nil {
		return nil, utils.WrapTransferError(err)
	}

	ops := make([]fileprovider.Operation, 0, len(items))
	for _, item := range items {
		id := item.Info().ID
		if err := p.transferOne(ctx, c, resolve(id), destPath, policy, isMove); err != nil {
			err = utils.WrapTransferError(err)
			return append(ops, fileprovider.OperationFailed(id, err)), err
		}
		ops = append(ops, fileprovider.OperationDone(id))
	}
	return ops, nil
}

func (p *Provider) transferOne(ctx context.Context, c Client, src, destDir string,
	policy fileprovider.ConflictPolicy, isMove bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	base := path.Base(src)
	target := utils.JoinPath(destDir, base)
	if target == src && (isMove || policy != fileprovider.ConflictDuplicate) {
		return fmt.Errorf("%w: %s", fileprovider.ErrSamePath, src)
	}

	taken, err := exists(c, target)
	if err != nil {
		return err
	}
	overwrite := false
	if taken {
		switch policy {
		case fileprovider.ConflictSkip:
			p.logger.Debug("skipping existing item", zap.String("target", target))
			return nil
		case fileprovider.ConflictOverwrite:
			overwrite = true
		default:
			name, err := utils.DuplicateName(base, func(candidate string) (bool, error) {
				return exists(c, utils.JoinPath(destDir, candidate))
			})
			if err != nil {
				return err
			}
			target = utils.JoinPath(destDir, name)
		}
	}

	if isMove {
		p.logger.Debug("moving", zap.String("from", src), zap.String("to", target))
		return mapError(c.Rename(src, target, overwrite))
	}
	p.logger.Debug("copying", zap.String("from", src), zap.String("to", target))
	return mapError(c.Copy(src, target, overwrite))
}

// Share is not supported over WebDAV.
func (p *Provider) Share(_ context.Context, item fileprovider.Item, _ fileprovider.ShareSettings) (*fileprovider.ShareResult, error) {
	return nil, utils.WrapShareError(fmt.Errorf("%w: webdav items cannot be shared: %s", fileprovider.ErrForbidden, item.Info().Title))
}

// OperationStatus always answers Done since every operation completes synchronously.
func (p *Provider) OperationStatus(ctx context.Context) (fileprovider.Operation, error) {
	if err := ctx.Err(); err != nil {
		return fileprovider.Operation{}, utils.WrapStatusError(err)
	}
	return fileprovider.OperationDone(""), nil
}

// FileInfo reads the properties of a file again.
func (p *Provider) FileInfo(ctx context.Context, item fileprovider.Item) (*fileprovider.CloudFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapFileInfoError(err)
	}
	c, err := p.Client()
	if err != nil {
		return nil, utils.WrapFileInfoError(err)
	}
	target := resolve(item.Info().ID)
	info, err := c.Stat(target)
	if err != nil {
		return nil, utils.WrapFileInfoError(mapError(err))
	}
	if info.IsDir() {
		return nil, utils.WrapFileInfoError(fmt.Errorf("%w: %s is a collection", fileprovider.ErrNotFound, target))
	}
	return toFile(target, info), nil
}

// Download streams the content of file to w.
func (p *Provider) Download(ctx context.Context, file *fileprovider.CloudFile, w io.Writer) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, utils.WrapDownloadError(err)
	}
	c, err := p.Client()
	if err != nil {
		return 0, utils.WrapDownloadError(err)
	}
	r, err := c.ReadStream(resolve(file.ID))
	if err != nil {
		return 0, utils.WrapDownloadError(mapError(err))
	}
	defer func() { _ = r.Close() }()
	n, err := utils.TouchCopyBuffered(w, r, 0)
	return n, utils.WrapDownloadError(mapError(err))
}

func (p *Provider) folder(c Client, dir string) (*fileprovider.CloudFolder, error) {
	info, err := c.Stat(dir)
	if err != nil {
		return nil, mapError(err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a collection", fileprovider.ErrNotFound, dir)
	}
	return toFolder(dir, info), nil
}

func exists(c Client, target string) (bool, error) {
	_, err := c.Stat(target)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(mapError(err), fileprovider.ErrNotFound):
		return false, nil
	}
	return false, mapError(err)
}

func ensureFree(c Client, target string) error {
	taken, err := exists(c, target)
	switch {
	case err != nil:
		return err
	case taken:
		return fmt.Errorf("%w: %s", fileprovider.ErrNameConflict, path.Base(target))
	}
	return nil
}

func resolve(id string) string {
	if id == "" || id == "root" {
		return RootID
	}
	return utils.CleanPath(id)
}

// mapError classifies client errors. gowebdav reports HTTP failures as an os.PathError around a StatusError.
func mapError(err error) error {
	if err == nil || fileprovider.Classified(err) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var status gowebdav.StatusError
	if errors.As(err, &status) {
		if status.Status == http.StatusMethodNotAllowed {
			return fileprovider.Wrap(fileprovider.ErrNameConflict, err)
		}
		return fileprovider.StatusError(status.Status, err)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fileprovider.Wrap(fileprovider.ErrNotFound, err)
	}
	if fileprovider.IsTransportError(err) {
		return fileprovider.Wrap(fileprovider.ErrNetwork, err)
	}
	return fileprovider.Wrap(fileprovider.ErrUnexpectedResponse, err)
}

func toFile(p string, info os.FileInfo) *fileprovider.CloudFile {
	return &fileprovider.CloudFile{
		ItemInfo:      itemInfo(p, info),
		FileExtension: fileprovider.Extension(path.Base(p)),
		ContentLength: info.Size(),
	}
}

func toFolder(p string, info os.FileInfo) *fileprovider.CloudFolder {
	return &fileprovider.CloudFolder{ItemInfo: itemInfo(p, info)}
}

func itemInfo(p string, info os.FileInfo) fileprovider.ItemInfo {
	security := fileprovider.FullSecurity()
	security.CanShare = false
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
		Access:   fileprovider.AccessReadWrite,
		Security: security,
	}
}

func init() {
	backend.Register(Scheme, NewProvider())
}
