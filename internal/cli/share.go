package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider"
)

func (a *app) shareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share <id>",
		Short: "Create, update or revoke the external link of an item",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runShare,
	}
	flags := cmd.Flags()
	flags.String("access", fileprovider.AccessRead.String(), "link access: read, comment, readwrite or restrict")
	flags.Bool("revoke", false, "remove the link")
	flags.Bool("deny-download", false, "forbid downloading through the link")
	flags.Duration("expires", 0, "link lifetime, 0 for none")
	flags.String("password", "", "protect the link with a password")
	flags.String("title", "", "link title")
	addFolderFlag(cmd)
	return cmd
}

func (a *app) runShare(cmd *cobra.Command, args []string) error {
	p, err := a.provider()
	if err != nil {
		return err
	}
	settings, err := shareSettings(cmd)
	if err != nil {
		return err
	}
	items, err := a.items(cmd, p, args)
	if err != nil {
		return err
	}
	res, err := p.Share(cmd.Context(), items[0], settings)
	if err != nil {
		return err
	}
	printShare(out(cmd), res)
	return nil
}

func shareSettings(cmd *cobra.Command) (fileprovider.ShareSettings, error) {
	flags := cmd.Flags()
	s, _ := flags.GetString("access")
	access, ok := fileprovider.ParseAccess(s)
	if !ok {
		return fileprovider.ShareSettings{}, fmt.Errorf("%w: invalid --access %q", errUsage, s)
	}
	settings := fileprovider.ShareSettings{Access: access}
	settings.Revoke, _ = flags.GetBool("revoke")
	settings.DenyDownload, _ = flags.GetBool("deny-download")
	settings.Password, _ = flags.GetString("password")
	settings.Title, _ = flags.GetString("title")
	if expires, _ := flags.GetDuration("expires"); expires > 0 {
		at := time.Now().Add(expires)
		settings.ExpirationDate = &at
	}
	return settings, nil
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file-id>",
		Short: "Show the current metadata of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}
			items, err := resolveItems(cmd.Context(), p, args, false)
			if err != nil {
				return err
			}
			printInfo(out(cmd), items[0].(*fileprovider.CloudFile))
			return nil
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file-id> [local-path]",
		Short: "Download a file, to its title in the current directory by default or to stdout with -",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  a.runGet,
	}
}

func (a *app) runGet(cmd *cobra.Command, args []string) error {
	p, err := a.provider()
	if err != nil {
		return err
	}
	d, ok := p.(fileprovider.Downloader)
	if !ok {
		return fmt.Errorf("%w: %s cannot download files", fileprovider.ErrForbidden, p.Name())
	}
	items, err := resolveItems(cmd.Context(), p, args[:1], false)
	if err != nil {
		return err
	}
	file := items[0].(*fileprovider.CloudFile)

	target := file.Title
	if len(args) > 1 {
		target = args[1]
	}
	if target == "-" {
		_, err := d.Download(cmd.Context(), file, out(cmd))
		return err
	}

	f, err := a.fs.Create(target)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	n, err := d.Download(cmd.Context(), file, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		a.discard(target)
		return err
	}
	a.logger.Debug("downloaded", zap.String("id", file.ID), zap.String("path", target), zap.Int64("bytes", n))
	_, _ = fmt.Fprintf(out(cmd), "%s -> %s (%s)\n", file.Title, target, humanSize(n))
	return nil
}

// discard removes a partial download.
func (a *app) discard(target string) {
	if err := a.fs.Remove(target); err != nil {
		a.logger.Warn("removing partial download", zap.String("path", target), zap.Error(err))
	}
}
