package backend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider"
)

// ValidateTransfer checks the parts of a transfer request that do not need the backend: a destination is required
// and no folder may be transferred into itself.
func ValidateTransfer(items []fileprovider.Item, dest *fileprovider.CloudFolder) error {
	if dest == nil {
		return fmt.Errorf("%w: transfer destination is required", fileprovider.ErrNotFound)
	}
	for _, item := range items {
		if item.Info().ID == dest.ID {
			return fmt.Errorf("%w: %s", fileprovider.ErrSamePath, item.Info().Title)
		}
	}
	return nil
}

// Unmount hands every mount point in mounts to u. A nil u logs the mount points and skips them. Mount point
// removal is best effort: failures are logged and never returned.
func Unmount(ctx context.Context, logger *zap.Logger, u fileprovider.Unmounter, mounts []*fileprovider.CloudFolder) []fileprovider.Operation {
	ops := make([]fileprovider.Operation, 0, len(mounts))
	for _, mount := range mounts {
		switch {
		case u == nil:
			logger.Info("no unmounter configured, skipping mount point",
				zap.String("id", mount.ID), zap.String("provider", mount.ProviderKey))
		default:
			if err := u.Unmount(ctx, mount); err != nil {
				logger.Warn("unmount failed", zap.String("id", mount.ID), zap.Error(err))
			}
		}
		ops = append(ops, fileprovider.OperationDone(mount.ID))
	}
	return ops
}

// Page cuts the size items starting at offset out of e, a complete listing, and records the full count in
// e.Total. When items remain, next is called with the offset of the following page and its result becomes the
// cursor. A non-positive size leaves e whole.
func Page(e *fileprovider.Explorer, offset, size int, next func(offset int) string) *fileprovider.Explorer {
	e.Total = e.Count()
	if size <= 0 {
		return e
	}
	items := e.Items()
	start := min(max(offset, 0), len(items))
	end := min(start+size, len(items))
	e.Files, e.Folders = fileprovider.SplitItems(items[start:end])
	if end < len(items) {
		e.Cursor = next(end)
	}
	return e
}
