package local

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/backend"
	"github.com/MCPEngu/fileprovider/utils"
)

// Transfer moves or copies items into dest one at a time. Every item is checked against dest before anything is
// touched: an item that would land on itself or inside itself fails the whole call with fileprovider.ErrSamePath.
// A copy with ConflictDuplicate into the item's own folder is allowed and yields a numbered sibling.
func (p *Provider) Transfer(ctx context.Context, items []fileprovider.Item, dest *fileprovider.CloudFolder,
	policy fileprovider.ConflictPolicy, isMove bool) ([]fileprovider.Operation, error) {
	if len(items) == 0 {
		return []fileprovider.Operation{}, nil
	}
	if err := backend.ValidateTransfer(items, dest); err != nil {
		return nil, utils.WrapTransferError(err)
	}
	fsys, err := p.Fs()
	if err != nil {
		return nil, utils.WrapTransferError(err)
	}
	destPath := resolve(dest.ID)
	if _, err := p.folder(fsys, destPath); err != nil {
		return nil, utils.WrapTransferError(err)
	}
	for _, item := range items {
		if err := samePath(resolve(item.Info().ID), destPath, policy, isMove); err != nil {
			return nil, utils.WrapTransferError(err)
		}
	}

	ops := make([]fileprovider.Operation, 0, len(items))
	for _, item := range items {
		id := item.Info().ID
		if err := p.transferOne(ctx, fsys, resolve(id), destPath, policy, isMove); err != nil {
			err = utils.WrapTransferError(err)
			return append(ops, fileprovider.OperationFailed(id, err)), err
		}
		ops = append(ops, fileprovider.OperationDone(id))
	}
	return ops, nil
}

func samePath(src, destDir string, policy fileprovider.ConflictPolicy, isMove bool) error {
	target := utils.JoinPath(destDir, path.Base(src))
	onItself := target == src && (isMove || policy != fileprovider.ConflictDuplicate)
	if src == RootID || onItself || utils.IsWithin(destDir, src) {
		return fmt.Errorf("%w: %s into %s", fileprovider.ErrSamePath, src, destDir)
	}
	return nil
}

func (p *Provider) transferOne(ctx context.Context, fsys afero.Fs, src, destDir string,
	policy fileprovider.ConflictPolicy, isMove bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fsys.Stat(src); err != nil {
		return mapError(err)
	}

	base := path.Base(src)
	target := utils.JoinPath(destDir, base)
	exists, err := afero.Exists(fsys, target)
	if err != nil {
		return mapError(err)
	}
	if exists {
		switch policy {
		case fileprovider.ConflictSkip:
			p.logger.Debug("skipping existing item", zap.String("target", target))
			return nil
		case fileprovider.ConflictOverwrite:
			if err := fsys.RemoveAll(target); err != nil {
				return mapError(err)
			}
		default:
			name, err := utils.DuplicateName(base, func(candidate string) (bool, error) {
				return afero.Exists(fsys, utils.JoinPath(destDir, candidate))
			})
			if err != nil {
				return mapError(err)
			}
			target = utils.JoinPath(destDir, name)
		}
	}

	if isMove {
		p.logger.Debug("moving", zap.String("from", src), zap.String("to", target))
		return mapError(fsys.Rename(src, target))
	}
	p.logger.Debug("copying", zap.String("from", src), zap.String("to", target))
	return mapError(p.copyTree(fsys, src, target))
}

func (p *Provider) copyTree(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return p.copyFile(fsys, src, dst, info.Mode())
	}
	return afero.Walk(fsys, src, func(walked string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		target := utils.JoinPath(dst, strings.TrimPrefix(utils.CleanPath(walked), src))
		if fi.IsDir() {
			return fsys.MkdirAll(target, fi.Mode().Perm())
		}
		return p.copyFile(fsys, walked, target, fi.Mode())
	})
}

func (p *Provider) copyFile(fsys afero.Fs, src, dst string, mode os.FileMode) (err error) {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode.Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = utils.TouchCopyBuffered(out, in, p.options.BufferSize)
	return err
}
