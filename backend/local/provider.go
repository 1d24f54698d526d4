package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/backend"
	"github.com/MCPEngu/fileprovider/internal/cursor"
	"github.com/MCPEngu/fileprovider/options"
	"github.com/MCPEngu/fileprovider/utils"
)

// Scheme defines the provider type.
const Scheme = "file"

const name = "Local"

// RootID is the id of the root folder.
const RootID = "/"

var (
	_ fileprovider.FileProvider = (*Provider)(nil)
	_ fileprovider.Downloader   = (*Provider)(nil)
)

// Provider implements fileprovider.FileProvider for the local filesystem.
type Provider struct {
	fs        afero.Fs
	options   Options
	logger    *zap.Logger
	unmounter fileprovider.Unmounter
	cursors   cursor.Tracker[page]
}

// page is what a cursor redeems to: the listing to run again and where to resume it.
type page struct {
	folderID string
	filter   fileprovider.Filter
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

// Name returns "Local"
func (p *Provider) Name() string {
	return name
}

// Scheme returns "file"
func (p *Provider) Scheme() string {
	return Scheme
}

// Fs returns the underlying filesystem, rooting the OS filesystem at Options.Root on first use.
func (p *Provider) Fs() (afero.Fs, error) {
	if p.fs == nil {
		root, err := p.options.rootPath()
		if err != nil {
			return nil, fmt.Errorf("%w: resolving root: %w", fileprovider.ErrNotFound, err)
		}
		p.fs = afero.NewBasePathFs(afero.NewOsFs(), root)
	}
	return p.fs, nil
}

// ListItems lists the folder at folderID. A fresh listing invalidates any cursor handed out before.
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

// Search walks the whole tree for titles containing query.
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
		filter: fileprovider.Filter{
			Search:         query,
			WithSubfolders: true,
			SortBy:         fileprovider.SortByTitle,
			SortOrder:      fileprovider.SortAsc,
		},
	})
	return e, utils.WrapSearchError(err)
}

func (p *Provider) list(ctx context.Context, pg page) (*fileprovider.Explorer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fsys, err := p.Fs()
	if err != nil {
		return nil, err
	}
	dir := resolve(pg.folderID)
	current, err := p.folder(fsys, dir)
	if err != nil {
		return nil, err
	}

	e := &fileprovider.Explorer{Current: current}
	if pg.filter.WithSubfolders && pg.filter.Search != "" {
		err = afero.Walk(fsys, dir, func(walked string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if walked != dir {
				addItem(e, utils.CleanPath(walked), info)
			}
			return nil
		})
	} else {
		var infos []os.FileInfo
		infos, err = afero.ReadDir(fsys, dir)
		for _, info := range infos {
			addItem(e, utils.JoinPath(dir, info.Name()), info)
		}
		current.FilesCount, current.FoldersCount = len(e.Files), len(e.Folders)
	}
	if err != nil {
		return nil, mapError(err)
	}

	fileprovider.ApplyFilter(e, pg.filter)
	p.logger.Debug("listed folder", zap.String("folder", dir), zap.Int("items", e.Count()), zap.Int("offset", pg.offset))
	return p.paginate(e, pg), nil
}

// paginate cuts the page starting at pg.offset out of a complete listing and issues a cursor for the rest.
func (p *Provider) paginate(e *fileprovider.Explorer, pg page) *fileprovider.Explorer {
	size := pg.filter.PageSize
	if size <= 0 {
		size = p.options.PageSize
	}
	return backend.Page(e, pg.offset, size, func(offset int) string {
		next := pg
		next.offset = offset
		return p.cursors.Issue(next)
	})
}

// CreateFile creates an empty file.
func (p *Provider) CreateFile(ctx context.Context, folderID, name string) (*fileprovider.CloudFile, error) {
	fsys, target, err := p.prepareCreate(ctx, folderID, name)
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	f, err := fsys.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, utils.WrapCreateError(mapError(err))
	}
	if err := f.Close(); err != nil {
		return nil, utils.WrapCreateError(mapError(err))
	}
	info, err := fsys.Stat(target)
	if err != nil {
		return nil, utils.WrapCreateError(mapError(err))
	}
	p.logger.Debug("created file", zap.String("path", target))
	return toFile(target, info), nil
}

// CreateFolder creates a folder.
func (p *Provider) CreateFolder(ctx context.Context, folderID, name string) (*fileprovider.CloudFolder, error) {
	fsys, target, err := p.prepareCreate(ctx, folderID, name)
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	if err := fsys.Mkdir(target, 0o755); err != nil {
		return nil, utils.WrapCreateError(mapError(err))
	}
	info, err := fsys.Stat(target)
	if err != nil {
		return nil, utils.WrapCreateError(mapError(err))
	}
	p.logger.Debug("created folder", zap.String("path", target))
	return toFolder(target, info), nil
}

func (p *Provider) prepareCreate(ctx context.Context, folderID, name string) (afero.Fs, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if err := utils.ValidateName(name); err != nil {
		return nil, "", fileprovider.Wrap(fileprovider.ErrForbidden, err)
	}
	fsys, err := p.Fs()
	if err != nil {
		return nil, "", err
	}
	dir := resolve(folderID)
	if _, err := p.folder(fsys, dir); err != nil {
		return nil, "", err
	}
	target := utils.JoinPath(dir, name)
	if err := p.ensureFree(fsys, target); err != nil {
		return nil, "", err
	}
	return fsys, target, nil
}

// Rename renames an item in place. The returned item carries the new path as its id.
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
	fsys, err := p.Fs()
	if err != nil {
		return nil, utils.WrapRenameError(err)
	}
	oldPath := resolve(item.Info().ID)
	if oldPath == RootID {
		return nil, utils.WrapRenameError(fmt.Errorf("%w: the root folder cannot be renamed", fileprovider.ErrForbidden))
	}
	newPath := utils.JoinPath(utils.ParentPath(oldPath), newName)
	if newPath != oldPath {
		if err := p.ensureFree(fsys, newPath); err != nil {
			return nil, utils.WrapRenameError(err)
		}
		if err := fsys.Rename(oldPath, newPath); err != nil {
			return nil, utils.WrapRenameError(mapError(err))
		}
	}
	p.logger.Debug("renamed", zap.String("from", oldPath), zap.String("to", newPath))

	renamed := fileprovider.Renamed(item, newName)
	renamed.Info().ID = newPath
	return renamed, nil
}

// Delete removes items immediately. Processing stops at the first failure, which is returned both as the last,
// Failed, operation and as the error.
func (p *Provider) Delete(ctx context.Context, items []fileprovider.Item, _ *fileprovider.CloudFolder) ([]fileprovider.Operation, error) {
	if len(items) == 0 {
		return []fileprovider.Operation{}, nil
	}
	fsys, err := p.Fs()
	if err != nil {
		return nil, utils.WrapDeleteError(err)
	}

	content, mounts := fileprovider.SplitMountPoints(items)
	ops := backend.Unmount(ctx, p.logger, p.unmounter, mounts)
	for _, item := range content {
		id := item.Info().ID
		if err := p.remove(ctx, fsys, resolve(id)); err != nil {
			err = utils.WrapDeleteError(err)
			return append(ops, fileprovider.OperationFailed(id, err)), err
		}
		p.logger.Debug("deleted", zap.String("path", resolve(id)))
		ops = append(ops, fileprovider.OperationDone(id))
	}
	return ops, nil
}

func (p *Provider) remove(ctx context.Context, fsys afero.Fs, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if target == RootID {
		return fmt.Errorf("%w: the root folder cannot be deleted", fileprovider.ErrForbidden)
	}
	if _, err := fsys.Stat(target); err != nil {
		return mapError(err)
	}
	return mapError(fsys.RemoveAll(target))
}

// Share is not supported by the local filesystem.
func (p *Provider) Share(_ context.Context, item fileprovider.Item, _ fileprovider.ShareSettings) (*fileprovider.ShareResult, error) {
	return nil, utils.WrapShareError(fmt.Errorf("%w: local items cannot be shared: %s", fileprovider.ErrForbidden, item.Info().Title))
}

// OperationStatus always answers Done since every operation completes synchronously.
func (p *Provider) OperationStatus(ctx context.Context) (fileprovider.Operation, error) {
	if err := ctx.Err(); err != nil {
		return fileprovider.Operation{}, utils.WrapStatusError(err)
	}
	return fileprovider.OperationDone(""), nil
}

// FileInfo stats the file again.
func (p *Provider) FileInfo(ctx context.Context, item fileprovider.Item) (*fileprovider.CloudFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapFileInfoError(err)
	}
	fsys, err := p.Fs()
	if err != nil {
		return nil, utils.WrapFileInfoError(err)
	}
	target := resolve(item.Info().ID)
	info, err := fsys.Stat(target)
	if err != nil {
		return nil, utils.WrapFileInfoError(mapError(err))
	}
	if info.IsDir() {
		return nil, utils.WrapFileInfoError(fmt.Errorf("%w: %s is a folder", fileprovider.ErrNotFound, target))
	}
	return toFile(target, info), nil
}

// Download writes the content of file to w.
func (p *Provider) Download(ctx context.Context, file *fileprovider.CloudFile, w io.Writer) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, utils.WrapDownloadError(err)
	}
	fsys, err := p.Fs()
	if err != nil {
		return 0, utils.WrapDownloadError(err)
	}
	f, err := fsys.Open(resolve(file.ID))
	if err != nil {
		return 0, utils.WrapDownloadError(mapError(err))
	}
	defer func() { _ = f.Close() }()
	n, err := utils.TouchCopyBuffered(w, f, p.options.BufferSize)
	return n, utils.WrapDownloadError(err)
}

// folder stats dir and fails unless it is a folder.
func (p *Provider) folder(fsys afero.Fs, dir string) (*fileprovider.CloudFolder, error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		return nil, mapError(err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a folder", fileprovider.ErrNotFound, dir)
	}
	return toFolder(dir, info), nil
}

func (p *Provider) ensureFree(fsys afero.Fs, target string) error {
	exists, err := afero.Exists(fsys, target)
	switch {
	case err != nil:
		return mapError(err)
	case exists:
		return fmt.Errorf("%w: %s", fileprovider.ErrNameConflict, path.Base(target))
	}
	return nil
}

// resolve turns an item id into a clean path. "" and "root" name the root folder.
func resolve(id string) string {
	if id == "" || id == "root" {
		return RootID
	}
	return utils.CleanPath(id)
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case fileprovider.Classified(err):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return fileprovider.Wrap(fileprovider.ErrNotFound, err)
	case errors.Is(err, fs.ErrExist):
		return fileprovider.Wrap(fileprovider.ErrNameConflict, err)
	case errors.Is(err, fs.ErrPermission):
		return fileprovider.Wrap(fileprovider.ErrForbidden, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return fileprovider.Wrap(fileprovider.ErrUnexpectedResponse, err)
}

func init() {
	backend.Register(Scheme, NewProvider())
}
