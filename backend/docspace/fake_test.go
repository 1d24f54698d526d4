package docspace

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/utils"
)

const (
	fakeToken  = "session-token"
	fakeRootID = 1
)

type fakeNode struct {
	id          int
	parent      int
	title       string
	folder      bool
	version     int
	content     string
	providerKey string
	access      fileprovider.Access
}

type recorded struct {
	method string
	path   string
	query  url.Values
	body   map[string]any
}

// fakeServer is an in-memory document server speaking the subset of the REST API the provider uses. Batch jobs
// finish before the submitting call returns.
type fakeServer struct {
	mu        sync.Mutex
	server    *httptest.Server
	nodes     map[int]*fakeNode
	nextID    int
	ops       []operationDTO
	nextOp    int
	requests  []recorded
	favorites map[string]bool
	rooms     []*fakeNode
}

func newFakeServer() *fakeServer {
	f := &fakeServer{
		nodes:     map[int]*fakeNode{fakeRootID: {id: fakeRootID, title: "My documents", folder: true}},
		nextID:    fakeRootID + 1,
		favorites: map[string]bool{},
	}
	f.server = httptest.NewServer(f)
	return f
}

func (f *fakeServer) Close() {
	f.server.Close()
}

func (f *fakeServer) add(parent int, title string, folder bool) *fakeNode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addLocked(parent, title, folder)
}

func (f *fakeServer) addLocked(parent int, title string, folder bool) *fakeNode {
	n := &fakeNode{id: f.nextID, parent: parent, title: title, folder: folder, version: 1, access: fileprovider.AccessReadWrite}
	f.nextID++
	f.nodes[n.id] = n
	return n
}

func (f *fakeServer) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r.method+" "+r.path)
	}
	return out
}

func (f *fakeServer) last() recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakeServer) childNamed(parent int, title string) *fakeNode {
	for _, n := range f.nodes {
		if n.parent == parent && n.id != fakeRootID && n.title == title {
			return n
		}
	}
	return nil
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec := recorded{method: r.Method, path: r.URL.Path, query: r.URL.Query()}
	if b, _ := io.ReadAll(r.Body); len(b) > 0 {
		_ = json.Unmarshal(b, &rec.body)
	}
	f.requests = append(f.requests, rec)

	if strings.HasPrefix(r.URL.Path, "/download/") {
		cookie, err := r.Cookie(authCookie)
		if err != nil || cookie.Value != fakeToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		n := f.nodes[atoi(path.Base(r.URL.Path))]
		if n == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, n.content)
		return
	}
	if r.Header.Get("Authorization") != "Bearer "+fakeToken {
		fail(w, http.StatusUnauthorized, "the session has expired")
		return
	}

	seg := strings.Split(strings.TrimPrefix(r.URL.Path, apiPath+"/files/"), "/")
	switch {
	case r.Method == http.MethodGet && len(seg) == 1 && seg[0] == "fileops":
		respond(w, f.ops)
	case r.Method == http.MethodPut && len(seg) == 2 && seg[0] == "fileops":
		f.fileops(w, seg[1], rec.body)
	case r.Method == http.MethodGet && len(seg) == 1 && seg[0] == "rooms":
		f.listRooms(w)
	case r.Method == http.MethodDelete && len(seg) == 2 && seg[0] == "thirdparty":
		respond(w, true)
	case len(seg) == 1 && seg[0] == "favorites":
		for _, id := range append(idList(rec.body["fileIds"]), idList(rec.body["folderIds"])...) {
			f.favorites[id] = r.Method == http.MethodPost
		}
		respond(w, true)
	case r.Method == http.MethodGet && len(seg) == 2 && seg[0] == "file":
		f.fileInfo(w, seg[1])
	case r.Method == http.MethodPut && len(seg) == 2 && (seg[0] == "file" || seg[0] == "folder"):
		f.rename(w, seg[1], seg[0] == "file", rec.body)
	case r.Method == http.MethodPut && len(seg) == 3 && seg[2] == "links":
		f.link(w, seg[1], rec.body)
	case r.Method == http.MethodPost && len(seg) == 2 && seg[0] == "folder":
		f.create(w, seg[1], rec.body, true)
	case r.Method == http.MethodPost && len(seg) == 2 && seg[1] == "file":
		f.create(w, seg[0], rec.body, false)
	case r.Method == http.MethodGet && len(seg) == 1:
		f.list(w, seg[0], rec.query)
	default:
		fail(w, http.StatusNotFound, "no such endpoint")
	}
}

func (f *fakeServer) resolve(folderID string) *fakeNode {
	if folderID == RootID {
		return f.nodes[fakeRootID]
	}
	n := f.nodes[atoi(folderID)]
	if n == nil || !n.folder {
		return nil
	}
	return n
}

func (f *fakeServer) list(w http.ResponseWriter, folderID string, q url.Values) {
	dir := f.resolve(folderID)
	if dir == nil {
		fail(w, http.StatusNotFound, "folder not found")
		return
	}
	var found []*fakeNode
	f.walk(dir.id, q.Get("withSubfolders") == "true", func(n *fakeNode) {
		if search := q.Get("filterValue"); search != "" && !fileprovider.MatchesSearch(n.title, search) {
			return
		}
		switch q.Get("filterType") {
		case strconv.Itoa(int(fileprovider.FilterFolders)):
			if !n.folder {
				return
			}
		case strconv.Itoa(int(fileprovider.FilterFiles)):
			if n.folder {
				return
			}
		}
		found = append(found, n)
	})
	desc := q.Get("sortOrder") == string(fileprovider.SortDesc)
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].folder != found[j].folder {
			return found[i].folder
		}
		a, b := strings.ToLower(found[i].title), strings.ToLower(found[j].title)
		if desc {
			return a > b
		}
		return a < b
	})

	start, count := atoi(q.Get("startIndex")), atoi(q.Get("count"))
	end := len(found)
	if count > 0 {
		end = min(start+count, len(found))
	}
	start = min(start, len(found))
	respond(w, f.explorer(dir, found[start:end], len(found)))
}

func (f *fakeServer) listRooms(w http.ResponseWriter) {
	respond(w, f.explorer(&fakeNode{id: 2000, title: "Rooms", folder: true}, f.rooms, len(f.rooms)))
}

func (f *fakeServer) walk(parent int, deep bool, fn func(*fakeNode)) {
	for _, n := range f.nodes {
		if n.parent != parent || n.id == fakeRootID {
			continue
		}
		fn(n)
		if deep && n.folder {
			f.walk(n.id, deep, fn)
		}
	}
}

func (f *fakeServer) explorer(dir *fakeNode, nodes []*fakeNode, total int) map[string]any {
	folders, files := []map[string]any{}, []map[string]any{}
	for _, n := range nodes {
		if n.folder {
			folders = append(folders, f.toJSON(n))
		} else {
			files = append(files, f.toJSON(n))
		}
	}
	return map[string]any{
		"current": f.toJSON(dir),
		"folders": folders,
		"files":   files,
		"total":   total,
		"count":   len(nodes),
	}
}

func (f *fakeServer) toJSON(n *fakeNode) map[string]any {
	m := map[string]any{
		"id":       n.id,
		"title":    n.title,
		"parentId": n.parent,
		"created":  "2024-03-01T10:00:00.0000000+00:00",
		"updated":  "",
		"access":   int(n.access),
		"security": map[string]bool{"Rename": true, "Delete": true, "Copy": true, "Move": true},
	}
	if n.folder {
		if n.providerKey != "" {
			m["id"] = fmt.Sprintf("%s-%d", strings.ToLower(n.providerKey), n.id)
			m["providerKey"] = n.providerKey
			m["providerItem"] = true
		}
		return m
	}
	m["folderId"] = n.parent
	m["version"] = n.version
	m["fileExst"] = path.Ext(n.title)
	m["pureContentLength"] = len(n.content)
	m["viewUrl"] = fmt.Sprintf("%s/download/%d", f.server.URL, n.id)
	return m
}

func (f *fakeServer) create(w http.ResponseWriter, folderID string, body map[string]any, folder bool) {
	dir := f.resolve(folderID)
	if dir == nil {
		fail(w, http.StatusNotFound, "folder not found")
		return
	}
	title, _ := body["title"].(string)
	if f.childNamed(dir.id, title) != nil {
		fail(w, http.StatusConflict, "an item with the same title already exists")
		return
	}
	respond(w, f.toJSON(f.addLocked(dir.id, title, folder)))
}

func (f *fakeServer) fileInfo(w http.ResponseWriter, id string) {
	n := f.nodes[atoi(id)]
	if n == nil || n.folder {
		fail(w, http.StatusNotFound, "file not found")
		return
	}
	respond(w, f.toJSON(n))
}

func (f *fakeServer) rename(w http.ResponseWriter, id string, file bool, body map[string]any) {
	n := f.nodes[atoi(id)]
	if n == nil || n.folder == file {
		fail(w, http.StatusNotFound, "item not found")
		return
	}
	if file {
		if v, ok := body["lastVersion"].(float64); !ok || int(v) != n.version {
			fail(w, http.StatusBadRequest, "the file version has changed")
			return
		}
	}
	n.title, _ = body["title"].(string)
	respond(w, f.toJSON(n))
}

func (f *fakeServer) link(w http.ResponseWriter, id string, body map[string]any) {
	access, _ := body["access"].(float64)
	respond(w, map[string]any{
		"access": int(access),
		"sharedTo": map[string]any{
			"id":        "link-" + id,
			"shareLink": fmt.Sprintf("%s/s/%s", f.server.URL, id),
		},
	})
}

func (f *fakeServer) fileops(w http.ResponseWriter, kind string, body map[string]any) {
	ids := append(idList(body["fileIds"]), idList(body["folderIds"])...)
	switch kind {
	case "delete":
		for _, id := range ids {
			f.remove(atoi(id))
		}
	case "move", "copy":
		dest := f.resolve(fmt.Sprint(body["destFolderId"]))
		if dest == nil {
			fail(w, http.StatusNotFound, "destination not found")
			return
		}
		policy, _ := body["conflictResolveType"].(float64)
		for _, id := range ids {
			f.transfer(f.nodes[atoi(id)], dest, fileprovider.ConflictPolicy(policy), kind == "move")
		}
	case "terminate":
		respond(w, []operationDTO{})
		return
	case "emptytrash":
	default:
		fail(w, http.StatusNotFound, "no such operation")
		return
	}
	f.nextOp++
	op := operationDTO{ID: fmt.Sprintf("op-%d", f.nextOp), Progress: 100, Finished: true}
	f.ops = []operationDTO{op}
	respond(w, []operationDTO{op})
}

func (f *fakeServer) remove(id int) {
	for _, n := range f.nodes {
		if n.parent == id && n.id != fakeRootID {
			f.remove(n.id)
		}
	}
	delete(f.nodes, id)
}

func (f *fakeServer) transfer(n, dest *fakeNode, policy fileprovider.ConflictPolicy, move bool) {
	if n == nil {
		return
	}
	title := n.title
	if existing := f.childNamed(dest.id, title); existing != nil && existing != n {
		switch policy {
		case fileprovider.ConflictSkip:
			return
		case fileprovider.ConflictOverwrite:
			f.remove(existing.id)
		default:
			title, _ = utils.DuplicateName(title, func(candidate string) (bool, error) {
				return f.childNamed(dest.id, candidate) != nil, nil
			})
		}
	}
	if move {
		n.parent, n.title = dest.id, title
		return
	}
	cp := f.addLocked(dest.id, title, n.folder)
	cp.content = n.content
}

func respond(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"response": v, "statusCode": http.StatusOK})
}

func fail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"statusCode": status, "error": map[string]string{"message": message}})
}

func idList(v any) []string {
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, fmt.Sprint(item))
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
