package docspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/backend"
	"github.com/MCPEngu/fileprovider/internal/cursor"
	"github.com/MCPEngu/fileprovider/options"
	"github.com/MCPEngu/fileprovider/utils"
)

// Scheme defines the provider type.
const Scheme = "docs"

const name = "DocSpace"

// RootID is the id of the user's own documents section.
const RootID = "@my"

const (
	apiPath    = "/api/2.0"
	authCookie = "asc_auth_key"
)

var errURLRequired = errors.New("document server url is required")

var (
	_ fileprovider.FileProvider = (*Provider)(nil)
	_ fileprovider.Downloader   = (*Provider)(nil)
	_ fileprovider.Terminator   = (*Provider)(nil)
)

// Provider implements fileprovider.FileProvider for the document server.
type Provider struct {
	client  *resty.Client
	options Options
	logger  *zap.Logger
	cursors cursor.Tracker[page]
}

// page is what a cursor redeems to: the request to repeat and the index to start at.
type page struct {
	folderID string
	filter   fileprovider.Filter
	query    string
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

// Name returns "DocSpace"
func (p *Provider) Name() string {
	return name
}

// Scheme returns "docs"
func (p *Provider) Scheme() string {
	return Scheme
}

// Client returns the underlying REST client, creating it if necessary.
func (p *Provider) Client() (*resty.Client, error) {
	if p.client == nil {
		if p.options.URL == "" {
			return nil, fmt.Errorf("%w: %w", fileprovider.ErrUnauthorized, errURLRequired)
		}
		p.client = resty.New().
			SetBaseURL(utils.RemoveTrailingSlash(p.options.URL)+apiPath).
			SetTimeout(p.options.Timeout).
			SetHeader("Accept", "application/json").
			SetAuthToken(p.options.Token).
			SetLogger(p.logger.Sugar())
	}
	return p.client, nil
}

// ListItems lists a folder, or the rooms when folderID is the configured rooms root. A fresh listing invalidates
// any cursor handed out before.
func (p *Provider) ListItems(ctx context.Context, folderID string, filter fileprovider.Filter) (*fileprovider.Explorer, error) {
	p.cursors.Reset()
	e, err := p.list(ctx, page{folderID: resolve(folderID), filter: filter})
	return e, utils.WrapListError(err)
}

// ContinueListing fetches the page a cursor points at.
func (p *Provider) ContinueListing(ctx context.Context, token string) (*fileprovider.Explorer, error) {
	pg, err := p.cursors.Redeem(token)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	e, err := p.list(ctx, pg)
	return e, utils.WrapListError(err)
}

// Search runs a server-side search below the user's documents.
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
		query:    query,
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
	c, err := p.Client()
	if err != nil {
		return nil, err
	}
	size := pg.filter.PageSize
	if size <= 0 {
		size = p.options.PageSize
	}

	url := "/files/{folderId}"
	params := p.filterParams(pg.filter)
	if p.isRooms(pg.folderID) {
		url = "/files/rooms"
		delete(params, "filterType")
		delete(params, "withSubfolders")
		if p.options.Archive {
			params["searchArea"] = "Archive"
		}
	}
	params["startIndex"] = strconv.Itoa(pg.offset)
	params["count"] = strconv.Itoa(size)

	dto, err := call[*explorerDTO](ctx, c, http.MethodGet, url, func(r *resty.Request) {
		r.SetPathParam("folderId", pg.folderID).SetQueryParams(params)
	})
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, fmt.Errorf("%w: empty listing of %s", fileprovider.ErrUnexpectedResponse, pg.folderID)
	}
	e := dto.explorer()
	p.logger.Debug("listed folder", zap.String("folder", pg.folderID), zap.Int("items", e.Count()),
		zap.Int("offset", pg.offset), zap.Int("total", e.Total))

	if next := pg.offset + e.Count(); e.Count() > 0 && next < e.Total {
		following := pg
		following.offset = next
		e.Cursor = p.cursors.Issue(following)
	}
	return e, nil
}

func (p *Provider) isRooms(folderID string) bool {
	return p.options.RoomsRootID != "" && folderID == p.options.RoomsRootID
}

func (p *Provider) filterParams(f fileprovider.Filter) map[string]string {
	params := map[string]string{}
	if f.Type != fileprovider.FilterAll {
		params["filterType"] = strconv.Itoa(int(f.Type))
	}
	if f.SortBy != "" {
		params["sortBy"] = string(f.SortBy)
		order := f.SortOrder
		if order == "" {
			order = fileprovider.SortAsc
		}
		params["sortOrder"] = string(order)
	}
	if f.Search != "" {
		params["filterValue"] = f.Search
	}
	if f.WithSubfolders {
		params["withSubfolders"] = "true"
	}
	return params
}

// CreateFile creates an empty document. The server picks the format from the extension of name.
func (p *Provider) CreateFile(ctx context.Context, folderID, name string) (*fileprovider.CloudFile, error) {
	c, err := p.prepareCreate(name)
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	dto, err := call[*fileDTO](ctx, c, http.MethodPost, "/files/{folderId}/file", func(r *resty.Request) {
		r.SetPathParam("folderId", resolve(folderID)).SetBody(titleRequest{Title: name})
	})
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	if dto == nil {
		return nil, utils.WrapCreateError(fmt.Errorf("%w: no file in answer", fileprovider.ErrUnexpectedResponse))
	}
	p.logger.Debug("created file", zap.String("folder", folderID), zap.String("id", string(dto.ID)))
	return dto.file(), nil
}

// CreateFolder creates a folder.
func (p *Provider) CreateFolder(ctx context.Context, folderID, name string) (*fileprovider.CloudFolder, error) {
	c, err := p.prepareCreate(name)
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	dto, err := call[*folderDTO](ctx, c, http.MethodPost, "/files/folder/{folderId}", func(r *resty.Request) {
		r.SetPathParam("folderId", resolve(folderID)).SetBody(titleRequest{Title: name})
	})
	if err != nil {
		return nil, utils.WrapCreateError(err)
	}
	if dto == nil {
		return nil, utils.WrapCreateError(fmt.Errorf("%w: no folder in answer", fileprovider.ErrUnexpectedResponse))
	}
	p.logger.Debug("created folder", zap.String("folder", folderID), zap.String("id", string(dto.ID)))
	return dto.folder(), nil
}

func (p *Provider) prepareCreate(name string) (*resty.Client, error) {
	if err := utils.ValidateName(name); err != nil {
		return nil, fileprovider.Wrap(fileprovider.ErrForbidden, err)
	}
	return p.Client()
}

// Rename changes the title of an item. Files carry their version so the server rejects a rename of a stale copy.
func (p *Provider) Rename(ctx context.Context, item fileprovider.Item, newName string) (fileprovider.Item, error) {
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

	body := titleRequest{Title: newName}
	url := "/files/folder/{id}"
	if f, ok := item.(*fileprovider.CloudFile); ok {
		url = "/files/file/{id}"
		body.LastVersion = utils.Ptr(f.Version)
	}
	_, err = call[ignored](ctx, c, http.MethodPut, url, func(r *resty.Request) {
		r.SetPathParam("id", item.Info().ID).SetBody(body)
	})
	if statusOf(err) == http.StatusBadRequest {
		// the server answers 400 for stale versions and locked files alike
		err = fmt.Errorf("%w: rename of %s rejected", fileprovider.ErrForbidden, item.Info().Title)
	}
	if err != nil {
		return nil, utils.WrapRenameError(err)
	}
	p.logger.Debug("renamed", zap.String("id", item.Info().ID), zap.String("title", newName))
	return fileprovider.Renamed(item, newName), nil
}

// Delete submits a batch delete of items. Mount points are disconnected instead; their outcome is only logged and
// each yields a finished operation.
func (p *Provider) Delete(ctx context.Context, items []fileprovider.Item, _ *fileprovider.CloudFolder) ([]fileprovider.Operation, error) {
	if len(items) == 0 {
		return []fileprovider.Operation{}, nil
	}
	c, err := p.Client()
	if err != nil {
		return nil, utils.WrapDeleteError(err)
	}

	content, mounts := fileprovider.SplitMountPoints(items)
	ops := make([]fileprovider.Operation, 0, len(items))
	for _, mount := range mounts {
		p.removeStorage(ctx, c, mount)
		ops = append(ops, fileprovider.OperationDone(mount.ID))
	}
	if len(content) == 0 {
		return ops, nil
	}

	files, folders := fileprovider.SplitItems(content)
	dtos, err := call[[]operationDTO](ctx, c, http.MethodPut, "/files/fileops/delete", func(r *resty.Request) {
		r.SetBody(batchRequest{
			FileIDs:     fileprovider.IDs(files),
			FolderIDs:   fileprovider.IDs(folders),
			DeleteAfter: p.options.Archive,
			Immediately: p.options.Archive,
		})
	})
	if err != nil {
		return nil, utils.WrapDeleteError(err)
	}
	p.logger.Debug("submitted delete", zap.Int("files", len(files)), zap.Int("folders", len(folders)))
	return append(ops, operations(dtos)...), nil
}

// removeStorage disconnects the third party account behind mount. Its id is "<provider>-<account id>".
func (p *Provider) removeStorage(ctx context.Context, c *resty.Client, mount *fileprovider.CloudFolder) {
	key := mount.ID
	if i := strings.IndexByte(key, '-'); i >= 0 {
		key = key[i+1:]
	}
	_, err := call[ignored](ctx, c, http.MethodDelete, "/files/thirdparty/{key}", func(r *resty.Request) {
		r.SetPathParam("key", key)
	})
	if err != nil {
		p.logger.Warn("removing storage failed", zap.String("id", mount.ID), zap.Error(err))
		return
	}
	p.logger.Debug("removed storage", zap.String("id", mount.ID), zap.String("provider", mount.ProviderKey))
}

// Transfer submits a batch move or copy of items into dest.
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

	files, folders := fileprovider.SplitItems(items)
	url := "/files/fileops/copy"
	if isMove {
		url = "/files/fileops/move"
	}
	dtos, err := call[[]operationDTO](ctx, c, http.MethodPut, url, func(r *resty.Request) {
		r.SetBody(batchRequest{
			FileIDs:             fileprovider.IDs(files),
			FolderIDs:           fileprovider.IDs(folders),
			DestFolderID:        dest.ID,
			ConflictResolveType: utils.Ptr(int(policy)),
		})
	})
	if err != nil {
		return nil, utils.WrapTransferError(err)
	}
	p.logger.Debug("submitted transfer", zap.String("dest", dest.ID), zap.Bool("move", isMove),
		zap.Stringer("policy", policy))
	return operations(dtos), nil
}

// Share creates or updates the external link of item. Revoking sets the link's access to none.
func (p *Provider) Share(ctx context.Context, item fileprovider.Item, settings fileprovider.ShareSettings) (*fileprovider.ShareResult, error) {
	c, err := p.Client()
	if err != nil {
		return nil, utils.WrapShareError(err)
	}
	body := linkRequest{
		Access:       settings.Access,
		DenyDownload: settings.DenyDownload,
		Password:     settings.Password,
		Title:        settings.Title,
	}
	if settings.Revoke {
		body.Access = fileprovider.AccessNone
	}
	if settings.ExpirationDate != nil {
		body.ExpirationDate = settings.ExpirationDate.UTC().Format(time.RFC3339)
	}
	url := "/files/folder/{id}/links"
	if _, ok := item.(*fileprovider.CloudFile); ok {
		url = "/files/file/{id}/links"
	}
	link, err := call[*linkDTO](ctx, c, http.MethodPut, url, func(r *resty.Request) {
		r.SetPathParam("id", item.Info().ID).SetBody(body)
	})
	if err != nil {
		return nil, utils.WrapShareError(err)
	}
	result := &fileprovider.ShareResult{ItemID: item.Info().ID, Access: body.Access}
	if link != nil {
		result.Link = link.SharedTo.ShareLink
		result.Access = link.Access
	}
	result.Shared = result.Access != fileprovider.AccessNone && !settings.Revoke
	return result, nil
}

// OperationStatus reads every batch job the session has on the server and folds them into one.
func (p *Provider) OperationStatus(ctx context.Context) (fileprovider.Operation, error) {
	c, err := p.Client()
	if err != nil {
		return fileprovider.Operation{}, utils.WrapStatusError(err)
	}
	dtos, err := call[[]operationDTO](ctx, c, http.MethodGet, "/files/fileops", nil)
	if err != nil {
		return fileprovider.Operation{}, utils.WrapStatusError(err)
	}
	return fileprovider.AggregateOperations(operations(dtos)), nil
}

// Terminate cancels every running batch job of the session.
func (p *Provider) Terminate(ctx context.Context) ([]fileprovider.Operation, error) {
	return p.fileops(ctx, "/files/fileops/terminate")
}

// EmptyTrash submits a job that permanently deletes the content of the trash.
func (p *Provider) EmptyTrash(ctx context.Context) ([]fileprovider.Operation, error) {
	return p.fileops(ctx, "/files/fileops/emptytrash")
}

func (p *Provider) fileops(ctx context.Context, url string) ([]fileprovider.Operation, error) {
	c, err := p.Client()
	if err != nil {
		return nil, utils.WrapStatusError(err)
	}
	dtos, err := call[[]operationDTO](ctx, c, http.MethodPut, url, nil)
	if err != nil {
		return nil, utils.WrapStatusError(err)
	}
	return operations(dtos), nil
}

// AddToFavorites marks items as favorites of the current user.
func (p *Provider) AddToFavorites(ctx context.Context, items []fileprovider.Item) error {
	return p.favorites(ctx, http.MethodPost, items)
}

// RemoveFromFavorites clears the favorite mark of items.
func (p *Provider) RemoveFromFavorites(ctx context.Context, items []fileprovider.Item) error {
	return p.favorites(ctx, http.MethodDelete, items)
}

func (p *Provider) favorites(ctx context.Context, method string, items []fileprovider.Item) error {
	if len(items) == 0 {
		return nil
	}
	c, err := p.Client()
	if err != nil {
		return err
	}
	files, folders := fileprovider.SplitItems(items)
	_, err = call[ignored](ctx, c, method, "/files/favorites", func(r *resty.Request) {
		r.SetBody(favoritesRequest{FileIDs: fileprovider.IDs(files), FolderIDs: fileprovider.IDs(folders)})
	})
	return err
}

// FileInfo reads the metadata of a file.
func (p *Provider) FileInfo(ctx context.Context, item fileprovider.Item) (*fileprovider.CloudFile, error) {
	if _, ok := item.(*fileprovider.CloudFolder); ok {
		return nil, utils.WrapFileInfoError(fmt.Errorf("%w: %s is a folder", fileprovider.ErrNotFound, item.Info().Title))
	}
	c, err := p.Client()
	if err != nil {
		return nil, utils.WrapFileInfoError(err)
	}
	dto, err := call[*fileDTO](ctx, c, http.MethodGet, "/files/file/{id}", func(r *resty.Request) {
		r.SetPathParam("id", item.Info().ID)
	})
	if err != nil {
		return nil, utils.WrapFileInfoError(err)
	}
	if dto == nil {
		return nil, utils.WrapFileInfoError(fmt.Errorf("%w: %s", fileprovider.ErrNotFound, item.Info().ID))
	}
	return dto.file(), nil
}

// Download streams the view URL of file to w, authenticating with the session cookie.
func (p *Provider) Download(ctx context.Context, file *fileprovider.CloudFile, w io.Writer) (int64, error) {
	c, err := p.Client()
	if err != nil {
		return 0, utils.WrapDownloadError(err)
	}
	if file.ViewURL == "" {
		if file, err = p.FileInfo(ctx, file); err != nil {
			return 0, utils.WrapDownloadError(err)
		}
	}
	resp, err := c.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetCookie(&http.Cookie{Name: authCookie, Value: p.options.Token}).
		Get(file.ViewURL)
	if err != nil {
		return 0, utils.WrapDownloadError(mapError(err))
	}
	body := resp.RawBody()
	defer func() { _ = body.Close() }()
	if resp.IsError() {
		return 0, utils.WrapDownloadError(fileprovider.StatusError(resp.StatusCode(), nil))
	}
	n, err := utils.TouchCopyBuffered(w, body, 0)
	return n, utils.WrapDownloadError(mapError(err))
}

// ignored stands in for answers whose content is not needed. The server answers some of them with a bare boolean.
type ignored = json.RawMessage

// call runs one API request and unwraps the response envelope.
func call[T any](ctx context.Context, c *resty.Client, method, url string, build func(*resty.Request)) (T, error) {
	var (
		zero   T
		result envelope[T]
		failed apiError
	)
	req := c.R().SetContext(ctx).SetResult(&result).SetError(&failed)
	if build != nil {
		build(req)
	}
	resp, err := req.Execute(method, url)
	if resp != nil && resp.IsError() {
		failed.Status = resp.StatusCode()
		return zero, fileprovider.StatusError(resp.StatusCode(), &failed)
	}
	if err != nil {
		return zero, mapError(err)
	}
	return result.Response, nil
}

// statusOf returns the HTTP status carried by err, or 0.
func statusOf(err error) int {
	var unexpected *fileprovider.UnexpectedResponseError
	if errors.As(err, &unexpected) {
		return unexpected.StatusCode
	}
	var failed *apiError
	if errors.As(err, &failed) {
		return failed.Status
	}
	return 0
}

func resolve(id string) string {
	if id == "" || id == "root" {
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
	if fileprovider.IsTransportError(err) {
		return fileprovider.Wrap(fileprovider.ErrNetwork, err)
	}
	return fileprovider.Wrap(fileprovider.ErrUnexpectedResponse, err)
}

func init() {
	backend.Register(Scheme, NewProvider())
}
