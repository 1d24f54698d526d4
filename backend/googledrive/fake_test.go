package googledrive

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"google.golang.org/api/drive/v3"
)

const (
	fakeToken    = "ya29.test-token"
	fakeRootID   = "0AROOT"
	fakeBasePath = "/drive/v3/"
)

// fakeDrive is an in-memory Drive v3 files and permissions API. It understands the query clauses the provider
// writes and nothing else.
type fakeDrive struct {
	server *httptest.Server

	mu       sync.Mutex
	files    map[string]*drive.File
	content  map[string][]byte
	perms    map[string][]*drive.Permission
	seq      int
	requests []recorded
}

type recorded struct {
	method string
	path   string
	query  url.Values
	body   map[string]any
}

func newFakeDrive() *fakeDrive {
	d := &fakeDrive{
		files:   map[string]*drive.File{},
		content: map[string][]byte{},
		perms:   map[string][]*drive.Permission{},
	}
	d.files[fakeRootID] = &drive.File{Id: fakeRootID, Name: "My Drive", MimeType: folderMimeType}
	d.server = httptest.NewServer(d)
	return d
}

func (d *fakeDrive) Close() {
	d.server.Close()
}

func (d *fakeDrive) endpoint() string {
	return d.server.URL + fakeBasePath
}

func (d *fakeDrive) add(parent, name string, folder bool, content string) *drive.File {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.put(&drive.File{Name: name, Parents: []string{parent}, MimeType: mimeFor(name, folder)}, []byte(content))
}

func mimeFor(name string, folder bool) string {
	if folder {
		return folderMimeType
	}
	if t := mimeTypeOf(name); t != "" {
		return t
	}
	return "application/octet-stream"
}

// put stores f under a fresh id. Callers hold mu.
func (d *fakeDrive) put(f *drive.File, content []byte) *drive.File {
	d.seq++
	f.Id = fmt.Sprintf("file-%d", d.seq)
	if f.MimeType == "" {
		f.MimeType = "application/octet-stream"
	}
	f.CreatedTime = "2024-03-01T12:00:00.000Z"
	f.ModifiedTime = "2024-03-02T08:30:00.000Z"
	f.Version = 1
	f.WebViewLink = "https://drive.example.com/file/d/" + f.Id + "/view"
	if f.MimeType != folderMimeType {
		f.Size = int64(len(content))
		d.content[f.Id] = content
		f.WebContentLink = "https://drive.example.com/uc?id=" + f.Id
	}
	f.Capabilities = &drive.FileCapabilities{
		CanEdit:                true,
		CanRename:              true,
		CanDelete:              true,
		CanTrash:               true,
		CanCopy:                f.MimeType != folderMimeType,
		CanShare:               true,
		CanMoveItemWithinDrive: true,
	}
	d.files[f.Id] = f
	return f
}

func (d *fakeDrive) file(id string) (*drive.File, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	f, ok := d.files[id]
	return f, ok
}

func (d *fakeDrive) childNamed(parent, name string) (*drive.File, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, f := range d.files {
		if f.Name == name && len(f.Parents) > 0 && f.Parents[0] == parent {
			return f, true
		}
	}
	return nil, false
}

func (d *fakeDrive) calls() []recorded {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]recorded(nil), d.requests...)
}

func (d *fakeDrive) called(method, path string) bool {
	for _, r := range d.calls() {
		if r.method == method && r.path == path {
			return true
		}
	}
	return false
}

func (d *fakeDrive) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()

	rec := recorded{method: r.Method, path: strings.TrimPrefix(r.URL.Path, fakeBasePath), query: r.URL.Query()}
	var body drive.File
	var perm drive.Permission
	if r.Body != nil && (r.Method == http.MethodPost || r.Method == http.MethodPatch) {
		var raw json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&raw)
		_ = json.Unmarshal(raw, &rec.body)
		_ = json.Unmarshal(raw, &body)
		_ = json.Unmarshal(raw, &perm)
	}
	d.requests = append(d.requests, rec)

	if r.Header.Get("Authorization") != "Bearer "+fakeToken {
		d.fail(w, http.StatusUnauthorized, "authError", "Invalid Credentials")
		return
	}

	parts := strings.Split(rec.path, "/")
	q := rec.query
	switch {
	case rec.path == "files" && r.Method == http.MethodGet:
		d.list(w, q)
	case rec.path == "files" && r.Method == http.MethodPost:
		parent := fakeRootID
		if len(body.Parents) > 0 {
			parent = d.alias(body.Parents[0])
		}
		d.respond(w, d.put(&drive.File{Name: body.Name, MimeType: body.MimeType, Parents: []string{parent}}, nil))
	case len(parts) == 2 && parts[0] == "files":
		d.item(w, r.Method, d.alias(parts[1]), q, &body)
	case len(parts) == 3 && parts[2] == "copy" && r.Method == http.MethodPost:
		src, ok := d.files[parts[1]]
		if !ok {
			d.notFound(w, parts[1])
			return
		}
		cp := &drive.File{Name: src.Name, MimeType: src.MimeType, Parents: src.Parents}
		if body.Name != "" {
			cp.Name = body.Name
		}
		if len(body.Parents) > 0 {
			cp.Parents = []string{d.alias(body.Parents[0])}
		}
		d.respond(w, d.put(cp, d.content[src.Id]))
	case len(parts) >= 3 && parts[2] == "permissions":
		d.permissions(w, r.Method, parts, &perm)
	default:
		d.fail(w, http.StatusNotFound, "notFound", "no route "+rec.path)
	}
}

func (d *fakeDrive) alias(id string) string {
	if id == RootID {
		return fakeRootID
	}
	return id
}

func (d *fakeDrive) item(w http.ResponseWriter, method, id string, q url.Values, body *drive.File) {
	f, ok := d.files[id]
	if !ok {
		d.notFound(w, id)
		return
	}
	switch method {
	case http.MethodGet:
		if q.Get("alt") == "media" {
			if f.MimeType == folderMimeType || strings.HasPrefix(f.MimeType, "application/vnd.google-apps.") {
				d.fail(w, http.StatusForbidden, "fileNotDownloadable", "Only files with binary content can be downloaded")
				return
			}
			w.Header().Set("Content-Type", f.MimeType)
			_, _ = w.Write(d.content[id])
			return
		}
		d.respond(w, f)
	case http.MethodPatch:
		if body.Name != "" {
			f.Name = body.Name
		}
		f.CopyRequiresWriterPermission = f.CopyRequiresWriterPermission || body.CopyRequiresWriterPermission
		if add := q.Get("addParents"); add != "" {
			remove := strings.Split(q.Get("removeParents"), ",")
			var parents []string
			for _, p := range f.Parents {
				if !contains(remove, p) {
					parents = append(parents, p)
				}
			}
			f.Parents = append(parents, d.alias(add))
		}
		d.respond(w, f)
	case http.MethodDelete:
		d.remove(id)
		w.WriteHeader(http.StatusNoContent)
	default:
		d.fail(w, http.StatusMethodNotAllowed, "badRequest", method)
	}
}

func (d *fakeDrive) remove(id string) {
	for _, f := range d.files {
		if len(f.Parents) > 0 && f.Parents[0] == id {
			d.remove(f.Id)
		}
	}
	delete(d.files, id)
	delete(d.content, id)
	delete(d.perms, id)
}

func (d *fakeDrive) permissions(w http.ResponseWriter, method string, parts []string, perm *drive.Permission) {
	id := parts[1]
	if _, ok := d.files[id]; !ok {
		d.notFound(w, id)
		return
	}
	switch {
	case method == http.MethodGet:
		d.respond(w, &drive.PermissionList{Permissions: d.perms[id]})
	case method == http.MethodPost:
		d.seq++
		perm.Id = "perm-" + strconv.Itoa(d.seq)
		d.perms[id] = append(d.perms[id], perm)
		d.files[id].Shared = true
		d.respond(w, perm)
	case method == http.MethodDelete && len(parts) == 4:
		kept := d.perms[id][:0]
		for _, p := range d.perms[id] {
			if p.Id != parts[3] {
				kept = append(kept, p)
			}
		}
		d.perms[id] = kept
		d.files[id].Shared = len(kept) > 0
		w.WriteHeader(http.StatusNoContent)
	default:
		d.fail(w, http.StatusMethodNotAllowed, "badRequest", method)
	}
}

func (d *fakeDrive) list(w http.ResponseWriter, q url.Values) {
	var matched []*drive.File
	for id, f := range d.files {
		if id != fakeRootID && d.matches(f, q.Get("q")) {
			matched = append(matched, f)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		fi, fj := matched[i].MimeType == folderMimeType, matched[j].MimeType == folderMimeType
		if fi != fj {
			return fi
		}
		return strings.ToLower(matched[i].Name) < strings.ToLower(matched[j].Name)
	})

	offset, _ := strconv.Atoi(strings.TrimPrefix(q.Get("pageToken"), "offset-"))
	size, _ := strconv.Atoi(q.Get("pageSize"))
	if size <= 0 {
		size = 100
	}
	res := &drive.FileList{}
	if offset < len(matched) {
		end := min(offset+size, len(matched))
		res.Files = matched[offset:end]
		if end < len(matched) {
			res.NextPageToken = "offset-" + strconv.Itoa(end)
		}
	}
	d.respond(w, res)
}

// matches evaluates the "and" joined clauses the provider builds.
func (d *fakeDrive) matches(f *drive.File, q string) bool {
	for _, clause := range strings.Split(q, " and ") {
		clause = strings.TrimSpace(clause)
		switch {
		case clause == "trashed = false":
		case strings.HasSuffix(clause, " in parents"):
			if !contains(f.Parents, d.alias(literal(strings.TrimSuffix(clause, " in parents")))) {
				return false
			}
		case strings.HasPrefix(clause, "name contains "):
			if !strings.Contains(strings.ToLower(f.Name), strings.ToLower(literal(strings.TrimPrefix(clause, "name contains ")))) {
				return false
			}
		case strings.HasPrefix(clause, "name = "):
			if f.Name != literal(strings.TrimPrefix(clause, "name = ")) {
				return false
			}
		case strings.HasPrefix(clause, "mimeType != "):
			if f.MimeType == literal(strings.TrimPrefix(clause, "mimeType != ")) {
				return false
			}
		case strings.HasPrefix(clause, "mimeType = "):
			if f.MimeType != literal(strings.TrimPrefix(clause, "mimeType = ")) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func literal(s string) string {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "'"), "'")
	return strings.NewReplacer(`\'`, `'`, `\\`, `\`).Replace(s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (d *fakeDrive) respond(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (d *fakeDrive) notFound(w http.ResponseWriter, id string) {
	d.fail(w, http.StatusNotFound, "notFound", "File not found: "+id+".")
}

func (d *fakeDrive) fail(w http.ResponseWriter, code int, reason, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
			"errors":  []map[string]string{{"domain": "global", "reason": reason, "message": message}},
		},
	})
}
