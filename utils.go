package fileprovider

import (
	"sort"
	"strings"
)

var extensionTypes = map[FilterType][]string{
	FilterDocuments:     {".doc", ".docx", ".docm", ".dot", ".dotx", ".odt", ".ott", ".rtf", ".txt", ".pdf", ".djvu", ".fb2", ".epub", ".xps", ".html", ".htm", ".mht"},
	FilterSpreadsheets:  {".xls", ".xlsx", ".xlsm", ".xlt", ".xltx", ".ods", ".ots", ".csv"},
	FilterPresentations: {".ppt", ".pptx", ".pptm", ".pps", ".ppsx", ".pot", ".potx", ".odp", ".otp"},
	FilterImages:        {".bmp", ".gif", ".jpg", ".jpeg", ".png", ".tif", ".tiff", ".webp", ".svg", ".heic"},
	FilterArchives:      {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz"},
	FilterMedia:         {".mp3", ".mp4", ".m4a", ".m4v", ".ogg", ".wav", ".avi", ".mkv", ".mov", ".webm"},
}

// MatchesType reports whether an item passes a type filter. Backends that cannot filter server-side apply it
// to their listings with this function.
func MatchesType(item Item, t FilterType) bool {
	switch t {
	case FilterAll:
		return true
	case FilterFolders:
		_, ok := item.(*CloudFolder)
		return ok
	}
	file, ok := item.(*CloudFile)
	if !ok {
		return false
	}
	if t == FilterFiles {
		return true
	}
	ext := file.FileExtension
	if ext == "" {
		ext = Extension(file.Title)
	}
	for _, e := range extensionTypes[t] {
		if e == ext {
			return true
		}
	}
	return false
}

// MatchesSearch reports whether title contains query, ignoring case. An empty query matches everything.
func MatchesSearch(title, query string) bool {
	return query == "" || strings.Contains(strings.ToLower(title), strings.ToLower(query))
}

// ApplyFilter drops the children of e that do not pass the search and type parts of filter, then sorts what is
// left.
func ApplyFilter(e *Explorer, filter Filter) {
	folders := e.Folders[:0]
	for _, f := range e.Folders {
		if MatchesSearch(f.Title, filter.Search) && MatchesType(f, filter.Type) {
			folders = append(folders, f)
		}
	}
	files := e.Files[:0]
	for _, f := range e.Files {
		if MatchesSearch(f.Title, filter.Search) && MatchesType(f, filter.Type) {
			files = append(files, f)
		}
	}
	e.Folders, e.Files = folders, files
	SortExplorer(e, filter.SortBy, filter.SortOrder)
}

// SortExplorer orders folders and files of e independently. Titles compare case-insensitively; ties keep the
// backend order. An empty field leaves e untouched.
func SortExplorer(e *Explorer, field SortField, order SortOrder) {
	if field == "" {
		return
	}
	desc := order == SortDesc
	sort.SliceStable(e.Folders, func(i, j int) bool {
		return less(e.Folders[i], e.Folders[j], field, desc)
	})
	sort.SliceStable(e.Files, func(i, j int) bool {
		return less(e.Files[i], e.Files[j], field, desc)
	})
}

func less(a, b Item, field SortField, desc bool) bool {
	c := compare(a, b, field)
	if desc {
		return c > 0
	}
	return c < 0
}

func compare(a, b Item, field SortField) int {
	ai, bi := a.Info(), b.Info()
	switch field {
	case SortByModified:
		return ai.Modified.Compare(bi.Modified)
	case SortBySize:
		return cmpInt64(sizeOf(a), sizeOf(b))
	case SortByType:
		if c := strings.Compare(typeOf(a), typeOf(b)); c != 0 {
			return c
		}
	}
	return strings.Compare(strings.ToLower(ai.Title), strings.ToLower(bi.Title))
}

func sizeOf(item Item) int64 {
	if f, ok := item.(*CloudFile); ok {
		return f.ContentLength
	}
	return 0
}

func typeOf(item Item) string {
	if f, ok := item.(*CloudFile); ok {
		if f.FileExtension != "" {
			return f.FileExtension
		}
		return Extension(f.Title)
	}
	return ""
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
