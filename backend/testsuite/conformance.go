package testsuite

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/operation"
)

// ConformanceOptions tunes RunConformanceTests for backend limitations.
type ConformanceOptions struct {
	// SkipCopy skips the transfer checks for backends without a copy call.
	SkipCopy bool

	// PollInterval is handed to operation.Wait. Defaults to 10ms.
	PollInterval time.Duration
}

// RunConformanceTests exercises p inside a scratch folder created under rootID and deleted afterwards.
func RunConformanceTests(t *testing.T, p fileprovider.FileProvider, rootID string, opts ConformanceOptions) {
	t.Helper()
	if opts.PollInterval <= 0 {
		opts.PollInterval = 10 * time.Millisecond
	}
	ctx := context.Background()

	work, err := p.CreateFolder(ctx, rootID, "conformance-"+uuid.NewString()[:8])
	require.NoError(t, err, "creating scratch folder")
	defer func() {
		if _, err := p.Delete(ctx, []fileprovider.Item{work}, nil); err != nil {
			t.Logf("warning: error deleting scratch folder %s: %v", work.Title, err)
		}
	}()

	for _, name := range []string{"beta.txt", "Alpha.txt", "gamma.txt"} {
		_, err := p.CreateFile(ctx, work.ID, name)
		require.NoError(t, err, "creating %s", name)
	}

	t.Run("create conflict", func(t *testing.T) {
		_, err := p.CreateFile(ctx, work.ID, "beta.txt")
		assert.ErrorIs(t, err, fileprovider.ErrNameConflict)
	})

	t.Run("list sorted by title", func(t *testing.T) {
		e, err := p.ListItems(ctx, work.ID, fileprovider.Filter{SortBy: fileprovider.SortByTitle, SortOrder: fileprovider.SortAsc})
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha.txt", "beta.txt", "gamma.txt"}, titles(e.Files))
	})

	t.Run("cursor is one shot", func(t *testing.T) {
		_, err := p.ContinueListing(ctx, "no-such-cursor")
		assert.ErrorIs(t, err, fileprovider.ErrInvalidCursor)

		e, err := p.ListItems(ctx, work.ID, fileprovider.Filter{SortBy: fileprovider.SortByTitle, PageSize: 1})
		require.NoError(t, err)
		if !e.HasMore() {
			t.Skip("backend returned everything in one page")
		}
		next, err := p.ContinueListing(ctx, e.Cursor)
		require.NoError(t, err)
		assert.NotEmpty(t, next.Items())

		_, err = p.ContinueListing(ctx, e.Cursor)
		assert.ErrorIs(t, err, fileprovider.ErrInvalidCursor)
	})

	t.Run("rename changes the title only", func(t *testing.T) {
		file, err := p.CreateFile(ctx, work.ID, "draft.txt")
		require.NoError(t, err)

		renamed, err := p.Rename(ctx, file, "final.txt")
		require.NoError(t, err)
		assert.Equal(t, "final.txt", renamed.Info().Title)
		assert.Equal(t, file.ParentID, renamed.Info().ParentID)
		if renamed.Info().ID != file.ID {
			assert.True(t, strings.HasSuffix(renamed.Info().ID, "final.txt"), "a changed id must be the new path")
		}
	})

	t.Run("delete nothing", func(t *testing.T) {
		ops, err := p.Delete(ctx, nil, work)
		require.NoError(t, err)
		assert.Empty(t, ops)
	})

	t.Run("copy with duplicate", func(t *testing.T) {
		if opts.SkipCopy {
			t.Skip("copy not supported")
		}
		dest, err := p.CreateFolder(ctx, work.ID, "dest")
		require.NoError(t, err)
		src, err := p.CreateFile(ctx, work.ID, "copy-me.txt")
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			_, err = p.Transfer(ctx, []fileprovider.Item{src}, dest, fileprovider.ConflictDuplicate, false)
			require.NoError(t, err, fmt.Sprintf("copy %d", i))
			_, err = operation.Wait(ctx, p, opts.PollInterval)
			require.NoError(t, err)
		}

		e, err := p.ListItems(ctx, dest.ID, fileprovider.Filter{SortBy: fileprovider.SortByTitle})
		require.NoError(t, err)
		require.Len(t, e.Files, 2)
		assert.Equal(t, "copy-me (1).txt", e.Files[0].Title)
		assert.Equal(t, "copy-me.txt", e.Files[1].Title)

		info, err := p.FileInfo(ctx, src)
		require.NoError(t, err, "source must be untouched")
		assert.Equal(t, "copy-me.txt", info.Title)
	})

	t.Run("operation status", func(t *testing.T) {
		op, err := p.OperationStatus(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, fileprovider.StateFailed, op.State)
	})
}

func titles(files []*fileprovider.CloudFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Title)
	}
	return out
}
