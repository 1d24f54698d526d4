package googledrive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/backend"
	"github.com/MCPEngu/fileprovider/internal/cursor"
	"github.com/MCPEngu/fileprovider/options"
	"github.com/MCPEngu/fileprovider/utils"
)

// Scheme defines the provider type.
const Scheme = "gdrive"

const (
	name      = "Google Drive"
	rootTitle = "My Drive"
)

// RootID is the alias Drive accepts for the root of My Drive.
const RootID = "root"

// maxDepth bounds the walk up the parents of a folder.
const maxDepth = 64

const (
	fileFields googleapi.Field = "id, name, mimeType, parents, createdTime, modifiedTime, size, version, webViewLink, " +
		"webContentLink, shared, capabilities(canEdit, canRename, canDelete, canTrash, canCopy, canShare, canMoveItemWithinDrive)"
	listFields googleapi.Field = "nextPageToken, files(" + fileFields + ")"
)

var errAccessTokenRequired = errors.New("access token or token source is required for Google Drive authentication")

var roles = map[fileprovider.Access]string{
	fileprovider.AccessRead:      "reader",
	fileprovider.AccessComment:   "commenter",
	fileprovider.AccessReadWrite: "writer",
}

var (
	_ fileprovider.FileProvider = (*Provider)(nil)
	_ fileprovider.Downloader   = (*Provider)(nil)
)

// Provider implements fileprovider.FileProvider for Google Drive.
type Provider struct {
	service   *drive.Service
	tokens    oauth2.TokenSource
	options   Options
	logger    *zap.Logger
	unmounter fileprovider.Unmounter
	cursors   cursor.Tracker[page]
}

type page struct {
	current   *fileprovider.CloudFolder
	filter    fileprovider.Filter
	query     string
	pageToken string
	nested    bool
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

// Name returns "Google Drive"
func (p *Provider) Name() string {
	return name
}

// Scheme returns "gdrive"
func (p *Provider) Scheme() string {
	return Scheme
}

// Client returns the Drive service, creating it if necessary.
func (p *Provider) Client() (*drive.Service, error) {
	if p.service != nil {
		return p.service, nil
	}
	ts := p.tokens
	if ts == nil {
		if p.options.AccessToken == "" {
			return nil, fmt.Errorf("%w: %w", fileprovider.ErrUnauthorized, errAccessTokenRequired)
		}
		ts = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: p.options.AccessToken, TokenType: "Bearer"})
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: p.options.Timeout})
	client := oauth2.NewClient(ctx, ts)
	client.Timeout = p.options.Timeout
	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if p.options.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(p.options.Endpoint))
	}
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fileprovider.ErrUnauthorized, err)
	}
	p.service = svc
	return svc, nil
}

// ListItems lists a folder. With WithSubfolders and a search term the whole drive is searched, as Drive cannot
// query by ancestor.
func (p *Provider) ListItems(ctx context.Context, folderID string, filter fileprovider.Filter) (*fileprovider.Explorer, error) {
	p.cursors.Reset()
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapListError(err)
	}
	svc, err := p.Client()
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	current, err := p.folder(ctx, svc, folderID)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	parent, nested := current.ID, filter.WithSubfolders && filter.Search != ""
	if nested {
		parent = ""
	}
	e, err := p.fetch(ctx, svc, page{current: current, filter: filter, query: listQuery(parent, filter), nested: nested})
	return e, utils.WrapListError(err)
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

// Search matches names across the whole drive.
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
	filter := fileprovider.Filter{Search: query, SortBy: fileprovider.SortByTitle, SortOrder: fileprovider.SortAsc}
	e, err := p.resume(ctx, page{current: rootFolder(), filter: filter, query: listQuery("", filter), nested: true})
	return e, utils.WrapSearchError(err)
}

func (p *Provider) resume(ctx context.Context, pg page) (*fileprovider.Explorer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	svc, err := p.Client()
	if err != nil {
		return nil, err
	}
	return p.fetch(ctx, svc, pg)
}

func (p *Provider) fetch(ctx context.Context, svc *drive.Service, pg page) (*fileprovider.Explorer, error) {
	size := pg.filter.PageSize
	if size <= 0 {
		size = p.options.PageSize
	}
	call := svc.Files.List().
		Q(pg.query).
		Fields(listFields).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx)
	if size > 0 {
		call = call.PageSize(int64(size))
	}
	if order := orderBy(pg.filter); order != "" {
		call = call.OrderBy(order)
	}
	if pg.pageToken != "" {
		call = call.PageToken(pg.pageToken)
	}
	res, err := call.Do()
	if err != nil {
		return nil, mapError(err)
	}

	e := &fileprovider.Explorer{Current: pg.current}
	for _, f := range res.Files {
		parent := pg.current.ID
		if pg.nested {
			parent = parentOf(f)
		}
		switch it := toItem(f, parent).(type) {
		case *fileprovider.CloudFile:
			e.Files = append(e.Files, it)
		case *fileprovider.CloudFolder:
			e.Folders = append(e.Folders, it)
		}
	}
	fileprovider.ApplyFilter(e, pg.filter)
	e.Total = e.Count()
	p.logger.Debug("listed", zap.String("query", pg.query), zap.Int("items", e.Count()),
		zap.Bool("more", res.NextPageToken != ""))

	if res.NextPageToken != "" {
		next := pg
		next.pageToken = res.NextPageToken
		e.Cursor = p.cursors.Issue(next)
	}
	return e, nil
}

// CreateFile creates an empty file.
func (p *Provider) CreateFile(ctx context.Context, folderID, name string) (*fileprovider.CloudFile, error) {
	f, parent, err := p.create(ctx, folderID, name, mimeTypeOf(name))
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	return toFile(f, parent), nil
}

// CreateFolder creates a folder.
func (p *Provider) CreateFolder(ctx context.Context, folderID, name string) (*fileprovider.CloudFolder, error) {
	f, parent, err := p.create(ctx, folderID, name, folderMimeType)
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	return toFolder(f, parent), nil
}

func (p *Provider) create(ctx context.Context, folderID, name, mimeType string) (*drive.File, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if err := utils.ValidateName(name); err != nil {
		return nil, "", fileprovider.Wrap(fileprovider.ErrForbidden, err)
	}
	svc, err := p.Client()
	if err != nil {
		return nil, "", err
	}
	parent, err := p.folder(ctx, svc, folderID)
	if err != nil {
		return nil, "", err
	}
	existing, err := p.named(ctx, svc, parent.ID, name)
	if err != nil {
		return nil, "", err
	}
	if len(existing) > 0 {
		return nil, "", fmt.Errorf("%w: %s", fileprovider.ErrNameConflict, name)
	}

	f, err := svc.Files.Create(&drive.File{Name: name, MimeType: mimeType, Parents: []string{parent.ID}}).
		Fields(fileFields).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, "", mapError(err)
	}
	p.logger.Debug("created", zap.String("id", f.Id), zap.String("name", name), zap.String("mimeType", f.MimeType))
	return f, parent.ID, nil
}

// Rename changes the name of an item. The id does not change.
func (p *Provider) Rename(ctx context.Context, item fileprovider.Item, newName string) (fileprovider.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapRenameError(err)
	}
	id := item.Info().ID
	switch {
	case fileprovider.IsReadOnly(item):
		return nil, utils.WrapRenameError(fmt.Errorf("%w: %s is read-only", fileprovider.ErrForbidden, item.Info().Title))
	case resolve(id) == RootID:
		return nil, utils.WrapRenameError(fmt.Errorf("%w: the root folder cannot be renamed", fileprovider.ErrForbidden))
	}
	if err := utils.ValidateName(newName); err != nil {
		return nil, utils.WrapRenameError(fileprovider.Wrap(fileprovider.ErrForbidden, err))
	}
	svc, err := p.Client()
	if err != nil {
		return nil, utils.WrapRenameError(err)
	}
	f, err := p.get(ctx, svc, id, "id, parents")
	if err != nil {
		return nil, utils.WrapRenameError(err)
	}
	for _, parent := range f.Parents {
		existing, err := p.named(ctx, svc, parent, newName)
		if err != nil {
			return nil, utils.WrapRenameError(err)
		}
		if slices.ContainsFunc(existing, func(other *drive.File) bool { return other.Id != id }) {
			return nil, utils.WrapRenameError(fmt.Errorf("%w: %s", fileprovider.ErrNameConflict, newName))
		}
	}

	if _, err := svc.Files.Update(id, &drive.File{Name: newName}).
		Fields("id, name").
		SupportsAllDrives(true).
		Context(ctx).
		Do(); err != nil {
		return nil, utils.WrapRenameError(mapError(err))
	}
	p.logger.Debug("renamed", zap.String("id", id), zap.String("name", newName))
	return fileprovider.Renamed(item, newName), nil
}

// Delete removes items one at a time, stopping at the first failure. Drive has no mount points; any passed in are
// skipped.
func (p *Provider) Delete(ctx context.Context, items []fileprovider.Item, _ *fileprovider.CloudFolder) ([]fileprovider.Operation, error) {
	if len(items) == 0 {
		return []fileprovider.Operation{}, nil
	}
	svc, err := p.Client()
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
		if err := svc.Files.Delete(id).SupportsAllDrives(true).Context(ctx).Do(); err != nil {
			err = utils.WrapDeleteError(mapError(err))
			return append(ops, fileprovider.OperationFailed(id, err)), err
		}
		p.logger.Debug("deleted", zap.String("id", id))
		ops = append(ops, fileprovider.OperationDone(id))
	}
	return ops, nil
}

// Transfer copies or moves items one at a time. Every item is checked before the first one is touched.
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
	svc, err := p.Client()
	if err != nil {
		return nil, utils.WrapTransferError(err)
	}
	target, err := p.get(ctx, svc, resolve(dest.ID), "id, mimeType, parents")
	if err != nil {
		return nil, utils.WrapTransferError(err)
	}
	if !isFolder(target) {
		return nil, utils.WrapTransferError(fmt.Errorf("%w: %s is not a folder", fileprovider.ErrNotFound, dest.ID))
	}
	ancestors, err := p.ancestors(ctx, svc, target)
	if err != nil {
		return nil, utils.WrapTransferError(err)
	}

	sources := make([]*drive.File, 0, len(items))
	for _, item := range items {
		f, err := p.get(ctx, svc, item.Info().ID, "id, name, mimeType, parents")
		if err != nil {
			return nil, utils.WrapTransferError(err)
		}
		switch {
		case isFolder(f) && !isMove:
			return nil, utils.WrapTransferError(fmt.Errorf("%w: folders cannot be copied", fileprovider.ErrForbidden))
		case ancestors[f.Id]:
			return nil, utils.WrapTransferError(fmt.Errorf("%w: %s into itself", fileprovider.ErrSamePath, f.Name))
		case slices.Contains(f.Parents, target.Id) && (isMove || policy != fileprovider.ConflictDuplicate):
			return nil, utils.WrapTransferError(fmt.Errorf("%w: %s", fileprovider.ErrSamePath, f.Name))
		}
		sources = append(sources, f)
	}

	ops := make([]fileprovider.Operation, 0, len(sources))
	for _, f := range sources {
		if err := p.transferOne(ctx, svc, f, target.Id, policy, isMove); err != nil {
			err = utils.WrapTransferError(err)
			return append(ops, fileprovider.OperationFailed(f.Id, err)), err
		}
		ops = append(ops, fileprovider.OperationDone(f.Id))
	}
	return ops, nil
}

func (p *Provider) transferOne(ctx context.Context, svc *drive.Service, f *drive.File, destID string,
	policy fileprovider.ConflictPolicy, isMove bool) error {
	existing, err := p.named(ctx, svc, destID, f.Name)
	if err != nil {
		return err
	}
	title := f.Name
	if len(existing) > 0 {
		switch policy {
		case fileprovider.ConflictSkip:
			p.logger.Debug("skipping existing item", zap.String("id", f.Id), zap.String("name", f.Name))
			return nil
		case fileprovider.ConflictOverwrite:
			for _, old := range existing {
				if err := svc.Files.Delete(old.Id).SupportsAllDrives(true).Context(ctx).Do(); err != nil {
					return mapError(err)
				}
			}
		default:
			title, err = utils.DuplicateName(f.Name, func(candidate string) (bool, error) {
				taken, err := p.named(ctx, svc, destID, candidate)
				return len(taken) > 0, err
			})
			if err != nil {
				return err
			}
		}
	}

	if isMove {
		_, err = svc.Files.Update(f.Id, &drive.File{Name: title}).
			AddParents(destID).
			RemoveParents(strings.Join(f.Parents, ",")).
			Fields("id").
			SupportsAllDrives(true).
			Context(ctx).
			Do()
	} else {
		_, err = svc.Files.Copy(f.Id, &drive.File{Name: title, Parents: []string{destID}}).
			Fields("id").
			SupportsAllDrives(true).
			Context(ctx).
			Do()
	}
	if err != nil {
		return mapError(err)
	}
	p.logger.Debug("transferred", zap.String("id", f.Id), zap.String("dest", destID), zap.String("name", title),
		zap.Bool("move", isMove))
	return nil
}

// ancestors returns the ids of folder and every folder above it.
func (p *Provider) ancestors(ctx context.Context, svc *drive.Service, folder *drive.File) (map[string]bool, error) {
	seen := map[string]bool{folder.Id: true}
	parents := folder.Parents
	for depth := 0; len(parents) > 0 && depth < maxDepth; depth++ {
		id := parents[0]
		if seen[id] {
			break
		}
		seen[id] = true
		f, err := p.get(ctx, svc, id, "id, parents")
		if err != nil {
			return nil, err
		}
		parents = f.Parents
	}
	return seen, nil
}

// Share grants "anyone with the link" the requested access. Revoking, or AccessNone, removes those permissions.
func (p *Provider) Share(ctx context.Context, item fileprovider.Item, settings fileprovider.ShareSettings) (*fileprovider.ShareResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapShareError(err)
	}
	svc, err := p.Client()
	if err != nil {
		return nil, utils.WrapShareError(err)
	}
	id := item.Info().ID

	if settings.Revoke || settings.Access == fileprovider.AccessNone {
		if err := p.unshare(ctx, svc, id); err != nil {
			return nil, utils.WrapShareError(err)
		}
		return &fileprovider.ShareResult{ItemID: id, Access: fileprovider.AccessNone}, nil
	}

	role, ok := roles[settings.Access]
	if !ok {
		return nil, utils.WrapShareError(fmt.Errorf("%w: %s links are not supported", fileprovider.ErrForbidden, settings.Access))
	}
	if settings.ExpirationDate != nil || settings.Password != "" {
		p.logger.Debug("link expiration and password are ignored", zap.String("id", id))
	}
	if _, err := svc.Permissions.Create(id, &drive.Permission{Type: "anyone", Role: role}).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).
		Do(); err != nil {
		return nil, utils.WrapShareError(mapError(err))
	}
	if settings.DenyDownload {
		if _, err := svc.Files.Update(id, &drive.File{CopyRequiresWriterPermission: true}).
			Fields("id").
			SupportsAllDrives(true).
			Context(ctx).
			Do(); err != nil {
			return nil, utils.WrapShareError(mapError(err))
		}
	}

	f, err := p.get(ctx, svc, id, "id, webViewLink")
	if err != nil {
		return nil, utils.WrapShareError(err)
	}
	return &fileprovider.ShareResult{ItemID: id, Link: f.WebViewLink, Access: settings.Access, Shared: true}, nil
}

func (p *Provider) unshare(ctx context.Context, svc *drive.Service, id string) error {
	list, err := svc.Permissions.List(id).
		Fields("permissions(id, type)").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return mapError(err)
	}
	for _, perm := range list.Permissions {
		if perm.Type != "anyone" {
			continue
		}
		if err := svc.Permissions.Delete(id, perm.Id).SupportsAllDrives(true).Context(ctx).Do(); err != nil {
			return mapError(err)
		}
	}
	return nil
}

// OperationStatus reports Done: every change is applied before the call that made it returns.
func (p *Provider) OperationStatus(ctx context.Context) (fileprovider.Operation, error) {
	if err := ctx.Err(); err != nil {
		return fileprovider.Operation{}, utils.WrapStatusError(err)
	}
	return fileprovider.OperationDone(""), nil
}

// FileInfo reads the current metadata of a file.
func (p *Provider) FileInfo(ctx context.Context, item fileprovider.Item) (*fileprovider.CloudFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, utils.WrapFileInfoError(err)
	}
	svc, err := p.Client()
	if err != nil {
		return nil, utils.WrapFileInfoError(err)
	}
	f, err := p.get(ctx, svc, item.Info().ID, fileFields)
	if err != nil {
		return nil, utils.WrapFileInfoError(err)
	}
	if isFolder(f) {
		return nil, utils.WrapFileInfoError(fmt.Errorf("%w: %s is not a file", fileprovider.ErrNotFound, f.Name))
	}
	return toFile(f, parentOf(f)), nil
}

// Download streams the content of file to w.
func (p *Provider) Download(ctx context.Context, file *fileprovider.CloudFile, w io.Writer) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, utils.WrapDownloadError(err)
	}
	svc, err := p.Client()
	if err != nil {
		return 0, utils.WrapDownloadError(err)
	}
	res, err := svc.Files.Get(file.ID).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return 0, utils.WrapDownloadError(mapError(err))
	}
	defer func() { _ = res.Body.Close() }()
	n, err := utils.TouchCopyBuffered(w, res.Body, 0)
	return n, utils.WrapDownloadError(mapError(err))
}

// folder resolves id to a folder. The root needs no request.
func (p *Provider) folder(ctx context.Context, svc *drive.Service, id string) (*fileprovider.CloudFolder, error) {
	id = resolve(id)
	if id == RootID {
		return rootFolder(), nil
	}
	f, err := p.get(ctx, svc, id, fileFields)
	if err != nil {
		return nil, err
	}
	if !isFolder(f) {
		return nil, fmt.Errorf("%w: %s is not a folder", fileprovider.ErrNotFound, f.Name)
	}
	return toFolder(f, parentOf(f)), nil
}

func (p *Provider) get(ctx context.Context, svc *drive.Service, id string, fields googleapi.Field) (*drive.File, error) {
	f, err := svc.Files.Get(id).Fields(fields).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return nil, mapError(err)
	}
	return f, nil
}

// named returns the items called name in parent.
func (p *Provider) named(ctx context.Context, svc *drive.Service, parent, name string) ([]*drive.File, error) {
	q := fmt.Sprintf("%s in parents and name = %s and trashed = false", quote(parent), quote(name))
	res, err := svc.Files.List().
		Q(q).
		Fields("files(id)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapError(err)
	}
	return res.Files, nil
}

func resolve(id string) string {
	if id == "" {
		return RootID
	}
	return id
}

func mapError(err error) error {
	if err == nil || fileprovider.Classified(err) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fileprovider.StatusError(apiErr.Code, err)
	}
	var tokenErr *oauth2.RetrieveError
	if errors.As(err, &tokenErr) {
		return fileprovider.Wrap(fileprovider.ErrUnauthorized, err)
	}
	if fileprovider.IsTransportError(err) {
		return fileprovider.Wrap(fileprovider.ErrNetwork, err)
	}
	return fileprovider.Wrap(fileprovider.ErrUnexpectedResponse, err)
}

func init() {
	backend.Register(Scheme, NewProvider())
}
