package fileprovider

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type itemSuite struct {
	suite.Suite
}

func (s *itemSuite) TestIsMountPoint() {
	s.True(IsMountPoint(&CloudFolder{ItemInfo: ItemInfo{ProviderItem: true}, ProviderKey: "Dropbox"}))
	s.False(IsMountPoint(&CloudFolder{ItemInfo: ItemInfo{ProviderItem: true}}))
	s.False(IsMountPoint(&CloudFolder{ProviderKey: "Dropbox"}))
	s.False(IsMountPoint(&CloudFile{ItemInfo: ItemInfo{ProviderItem: true}}))
}

func (s *itemSuite) TestRenamedChangesTitleAndExtension() {
	orig := &CloudFile{
		ItemInfo:      ItemInfo{ID: "42", Title: "draft.txt", ParentID: "7", Access: AccessReadWrite},
		FileExtension: ".txt",
		ContentLength: 12,
		Version:       3,
	}
	renamed := Renamed(orig, "final.TXT").(*CloudFile)

	s.Equal("draft.txt", orig.Title, "input is not mutated")
	s.Equal("final.TXT", renamed.Title)
	s.Equal(".txt", renamed.FileExtension)

	renamed.Title = orig.Title
	s.Equal(*orig, *renamed, "every other attribute is preserved")

	converted := Renamed(orig, "final.pdf").(*CloudFile)
	s.Equal(".pdf", converted.FileExtension)
	s.Equal(".txt", orig.FileExtension)

	folder := Renamed(&CloudFolder{ItemInfo: ItemInfo{ID: "7", Title: "docs"}}, "papers.d").(*CloudFolder)
	s.Equal("papers.d", folder.Title)
	s.Equal("7", folder.ID)
}

func (s *itemSuite) TestSplit() {
	mount := &CloudFolder{ItemInfo: ItemInfo{ID: "m", ProviderItem: true}, ProviderKey: "Box"}
	plain := &CloudFolder{ItemInfo: ItemInfo{ID: "f"}}
	doc := &CloudFile{ItemInfo: ItemInfo{ID: "d"}}
	items := []Item{mount, doc, plain}

	files, folders := SplitItems(items)
	s.Equal([]string{"d"}, IDs(files))
	s.Equal([]string{"m", "f"}, IDs(folders))

	content, mounts := SplitMountPoints(items)
	s.Equal([]string{"d", "f"}, IDs(content))
	s.Equal([]*CloudFolder{mount}, mounts)
}

func (s *itemSuite) TestAccess() {
	a, ok := ParseAccess("ReadWrite")
	s.True(ok)
	s.Equal(AccessReadWrite, a)
	_, ok = ParseAccess("owner")
	s.False(ok)

	s.True(IsReadOnly(&CloudFile{ItemInfo: ItemInfo{Access: AccessRead}}))
	s.False(IsReadOnly(&CloudFile{ItemInfo: ItemInfo{Access: AccessReadWrite}}))
}

func (s *itemSuite) TestExplorerAppend() {
	e := &Explorer{Files: []*CloudFile{{ItemInfo: ItemInfo{ID: "1"}}}, Cursor: "c1", Total: 3}
	s.True(e.HasMore())
	e.Append(&Explorer{
		Folders: []*CloudFolder{{ItemInfo: ItemInfo{ID: "2"}}},
		Files:   []*CloudFile{{ItemInfo: ItemInfo{ID: "3"}}},
	})
	s.Equal(3, e.Count())
	s.False(e.HasMore())
	s.Equal(3, e.Total)
	s.Equal([]string{"2", "1", "3"}, IDs(e.Items()))
}

func TestItem(t *testing.T) {
	suite.Run(t, new(itemSuite))
}
