package dropbox

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/async"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"

	"github.com/MCPEngu/fileprovider/utils"
)

// memClient is an in-memory Dropbox. Batch jobs always run asynchronously and are complete on their first check.
type memClient struct {
	nodes   map[string]*memNode // by lower case path
	cursors map[string]memCursor
	jobs    map[string]*files.RelocationBatchV2Result
	seq     int
	calls   []string
}

type memNode struct {
	id      string
	path    string
	folder  bool
	content []byte
}

type memCursor struct {
	entries []files.IsMetadata
	offset  int
	limit   int
	search  bool
}

var _ Client = (*memClient)(nil)

func newMemClient() *memClient {
	return &memClient{
		nodes:   map[string]*memNode{},
		cursors: map[string]memCursor{},
		jobs:    map[string]*files.RelocationBatchV2Result{},
	}
}

func summary(tag, p string) error {
	return errors.New(tag + "/" + strings.TrimPrefix(p, "/") + "/..")
}

func (c *memClient) put(p string, folder bool, content string) *memNode {
	c.seq++
	n := &memNode{id: fmt.Sprintf("id:%d", c.seq), path: p, folder: folder, content: []byte(content)}
	c.nodes[strings.ToLower(p)] = n
	return n
}

func (c *memClient) lookup(p string) (*memNode, bool) {
	if strings.HasPrefix(p, "id:") {
		for _, n := range c.nodes {
			if n.id == p {
				return n, true
			}
		}
		return nil, false
	}
	n, ok := c.nodes[strings.ToLower(p)]
	return n, ok
}

// dir resolves a folder argument, "" being the root.
func (c *memClient) dir(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	n, ok := c.lookup(p)
	switch {
	case !ok:
		return "", summary("path/not_found", p)
	case !n.folder:
		return "", summary("path/not_folder", p)
	}
	return n.path, nil
}

func (c *memClient) metadata(n *memNode) files.IsMetadata {
	base := files.Metadata{Name: path.Base(n.path), PathDisplay: n.path, PathLower: strings.ToLower(n.path)}
	if n.folder {
		return &files.FolderMetadata{Metadata: base, Id: n.id}
	}
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &files.FileMetadata{Metadata: base, Id: n.id, Size: uint64(len(n.content)), ClientModified: stamp, ServerModified: stamp}
}

func (c *memClient) children(dir string, recursive bool) []*memNode {
	var out []*memNode
	for _, n := range c.nodes {
		parent := path.Dir(n.path)
		if parent == "/" {
			parent = ""
		}
		switch {
		case strings.EqualFold(parent, dir):
		case recursive && strings.HasPrefix(strings.ToLower(n.path), strings.ToLower(dir)+"/"):
		default:
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })
	return out
}

func (c *memClient) page(cur memCursor) ([]files.IsMetadata, string, bool) {
	end := len(cur.entries)
	if cur.limit > 0 && cur.offset+cur.limit < end {
		end = cur.offset + cur.limit
	}
	out := cur.entries[cur.offset:end]
	if end == len(cur.entries) {
		return out, "", false
	}
	c.seq++
	token := fmt.Sprintf("dbx-cursor-%d", c.seq)
	cur.offset = end
	c.cursors[token] = cur
	return out, token, true
}

func (c *memClient) GetMetadata(arg *files.GetMetadataArg) (files.IsMetadata, error) {
	c.calls = append(c.calls, "GetMetadata "+arg.Path)
	n, ok := c.lookup(arg.Path)
	if !ok {
		return nil, summary("path/not_found", arg.Path)
	}
	return c.metadata(n), nil
}

func (c *memClient) ListFolder(arg *files.ListFolderArg) (*files.ListFolderResult, error) {
	c.calls = append(c.calls, "ListFolder "+arg.Path)
	dir, err := c.dir(arg.Path)
	if err != nil {
		return nil, err
	}
	var entries []files.IsMetadata
	for _, n := range c.children(dir, arg.Recursive) {
		entries = append(entries, c.metadata(n))
	}
	out, token, more := c.page(memCursor{entries: entries, limit: int(arg.Limit)})
	return &files.ListFolderResult{Entries: out, Cursor: token, HasMore: more}, nil
}

func (c *memClient) ListFolderContinue(arg *files.ListFolderContinueArg) (*files.ListFolderResult, error) {
	c.calls = append(c.calls, "ListFolderContinue")
	cur, ok := c.cursors[arg.Cursor]
	if !ok || cur.search {
		return nil, errors.New("reset/..")
	}
	delete(c.cursors, arg.Cursor)
	out, token, more := c.page(cur)
	return &files.ListFolderResult{Entries: out, Cursor: token, HasMore: more}, nil
}

func (c *memClient) searchResult(entries []files.IsMetadata, token string, more bool) *files.SearchV2Result {
	res := &files.SearchV2Result{Cursor: token, HasMore: more}
	for _, m := range entries {
		res.Matches = append(res.Matches, &files.SearchMatchV2{
			Metadata: &files.MetadataV2{Tagged: dropbox.Tagged{Tag: "metadata"}, Metadata: m},
		})
	}
	return res
}

func (c *memClient) SearchV2(arg *files.SearchV2Arg) (*files.SearchV2Result, error) {
	c.calls = append(c.calls, "SearchV2 "+arg.Query)
	var entries []files.IsMetadata
	for _, n := range c.children("", true) {
		if strings.Contains(strings.ToLower(path.Base(n.path)), strings.ToLower(arg.Query)) {
			entries = append(entries, c.metadata(n))
		}
	}
	limit := 0
	if arg.Options != nil {
		limit = int(arg.Options.MaxResults)
	}
	out, token, more := c.page(memCursor{entries: entries, limit: limit, search: true})
	return c.searchResult(out, token, more), nil
}

func (c *memClient) SearchContinueV2(arg *files.SearchV2ContinueArg) (*files.SearchV2Result, error) {
	c.calls = append(c.calls, "SearchContinueV2")
	cur, ok := c.cursors[arg.Cursor]
	if !ok || !cur.search {
		return nil, errors.New("invalid_argument/..")
	}
	delete(c.cursors, arg.Cursor)
	out, token, more := c.page(cur)
	return c.searchResult(out, token, more), nil
}

func (c *memClient) create(p string, folder bool) (*memNode, error) {
	if _, err := c.dir(parentOf(p)); err != nil {
		return nil, err
	}
	if _, taken := c.lookup(p); taken {
		return nil, summary("path/conflict/file", p)
	}
	return c.put(p, folder, ""), nil
}

func (c *memClient) CreateFolderV2(arg *files.CreateFolderArg) (*files.CreateFolderResult, error) {
	c.calls = append(c.calls, "CreateFolderV2 "+arg.Path)
	n, err := c.create(arg.Path, true)
	if err != nil {
		return nil, err
	}
	return &files.CreateFolderResult{Metadata: c.metadata(n).(*files.FolderMetadata)}, nil
}

func (c *memClient) Upload(arg *files.UploadArg, content io.Reader) (*files.FileMetadata, error) {
	c.calls = append(c.calls, "Upload "+arg.Path)
	n, err := c.create(arg.Path, false)
	if err != nil {
		return nil, err
	}
	if n.content, err = io.ReadAll(content); err != nil {
		return nil, err
	}
	return c.metadata(n).(*files.FileMetadata), nil
}

func (c *memClient) Download(arg *files.DownloadArg) (*files.FileMetadata, io.ReadCloser, error) {
	c.calls = append(c.calls, "Download "+arg.Path)
	n, ok := c.lookup(arg.Path)
	if !ok || n.folder {
		return nil, nil, summary("path/not_found", arg.Path)
	}
	return c.metadata(n).(*files.FileMetadata), io.NopCloser(bytes.NewReader(n.content)), nil
}

// relocate moves or copies the subtree at from to to, picking a free name when autorename is set.
func (c *memClient) relocate(from, to string, autorename, move bool) (files.IsMetadata, error) {
	src, ok := c.lookup(from)
	if !ok {
		return nil, summary("from_lookup/not_found", from)
	}
	if _, taken := c.lookup(to); taken && !(move && strings.EqualFold(src.path, to)) {
		if !autorename {
			return nil, summary("to/conflict/file", to)
		}
		name, _ := utils.DuplicateName(path.Base(to), func(candidate string) (bool, error) {
			_, taken := c.lookup(join(parentOf(to), candidate))
			return taken, nil
		})
		to = join(parentOf(to), name)
	}
	oldRoot := src.path
	moved := append([]*memNode{src}, c.children(oldRoot, true)...)
	var root *memNode
	for _, n := range moved {
		target := to + n.path[len(oldRoot):]
		if move {
			delete(c.nodes, strings.ToLower(n.path))
			n.path = target
			c.nodes[strings.ToLower(target)] = n
		} else {
			n = c.put(target, n.folder, string(n.content))
		}
		if root == nil {
			root = n
		}
	}
	return c.metadata(root), nil
}

func (c *memClient) MoveV2(arg *files.RelocationArg) (*files.RelocationResult, error) {
	c.calls = append(c.calls, "MoveV2 "+arg.FromPath+" "+arg.ToPath)
	m, err := c.relocate(arg.FromPath, arg.ToPath, arg.Autorename, true)
	if err != nil {
		return nil, err
	}
	return &files.RelocationResult{Metadata: m}, nil
}

func (c *memClient) DeleteV2(arg *files.DeleteArg) (*files.DeleteResult, error) {
	c.calls = append(c.calls, "DeleteV2 "+arg.Path)
	n, ok := c.lookup(arg.Path)
	if !ok {
		return nil, summary("path_lookup/not_found", arg.Path)
	}
	for _, child := range c.children(n.path, true) {
		delete(c.nodes, strings.ToLower(child.path))
	}
	m := c.metadata(n)
	delete(c.nodes, strings.ToLower(n.path))
	return &files.DeleteResult{Metadata: m}, nil
}

func (c *memClient) batch(entries []*files.RelocationPath, autorename, move bool) *files.RelocationBatchV2Launch {
	res := &files.RelocationBatchV2Result{}
	for _, e := range entries {
		entry := &files.RelocationBatchResultEntry{Tagged: dropbox.Tagged{Tag: "success"}}
		m, err := c.relocate(e.FromPath, e.ToPath, autorename, move)
		if err != nil {
			entry = &files.RelocationBatchResultEntry{
				Tagged:  dropbox.Tagged{Tag: tagFailure},
				Failure: &files.RelocationBatchErrorEntry{Tagged: dropbox.Tagged{Tag: "relocation_error"}},
			}
		} else {
			entry.Success = m
		}
		res.Entries = append(res.Entries, entry)
	}
	c.seq++
	id := fmt.Sprintf("dbjob:%d", c.seq)
	c.jobs[id] = res
	return &files.RelocationBatchV2Launch{Tagged: dropbox.Tagged{Tag: tagAsyncJobID}, AsyncJobId: id}
}

func (c *memClient) CopyBatchV2(arg *files.RelocationBatchArgBase) (*files.RelocationBatchV2Launch, error) {
	c.calls = append(c.calls, "CopyBatchV2")
	return c.batch(arg.Entries, arg.Autorename, false), nil
}

func (c *memClient) MoveBatchV2(arg *files.MoveBatchArg) (*files.RelocationBatchV2Launch, error) {
	c.calls = append(c.calls, "MoveBatchV2")
	return c.batch(arg.Entries, arg.Autorename, true), nil
}

func (c *memClient) check(id string) (*files.RelocationBatchV2JobStatus, error) {
	res, ok := c.jobs[id]
	if !ok {
		return nil, errors.New("invalid_async_job_id/..")
	}
	return &files.RelocationBatchV2JobStatus{Tagged: dropbox.Tagged{Tag: tagComplete}, Complete: res}, nil
}

func (c *memClient) CopyBatchCheckV2(arg *async.PollArg) (*files.RelocationBatchV2JobStatus, error) {
	c.calls = append(c.calls, "CopyBatchCheckV2 "+arg.AsyncJobId)
	return c.check(arg.AsyncJobId)
}

func (c *memClient) MoveBatchCheckV2(arg *async.PollArg) (*files.RelocationBatchV2JobStatus, error) {
	c.calls = append(c.calls, "MoveBatchCheckV2 "+arg.AsyncJobId)
	return c.check(arg.AsyncJobId)
}

func (c *memClient) GetTemporaryLink(arg *files.GetTemporaryLinkArg) (*files.GetTemporaryLinkResult, error) {
	c.calls = append(c.calls, "GetTemporaryLink "+arg.Path)
	n, ok := c.lookup(arg.Path)
	if !ok || n.folder {
		return nil, summary("path/not_found", arg.Path)
	}
	return &files.GetTemporaryLinkResult{
		Metadata: c.metadata(n).(*files.FileMetadata),
		Link:     "https://dl.dropboxusercontent.com/" + strings.TrimPrefix(n.id, "id:"),
	}, nil
}
