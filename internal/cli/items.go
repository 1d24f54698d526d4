package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MCPEngu/fileprovider"
)

func (a *app) mkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <parent-id> <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}
			folder, err := p.CreateFolder(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printItem(out(cmd), folder)
			return nil
		},
	}
}

func (a *app) touchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "touch <parent-id> <name>",
		Short: "Create an empty file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}
			file, err := p.CreateFile(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printItem(out(cmd), file)
			return nil
		},
	}
}

func (a *app) renameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Change the title of an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}
			items, err := a.items(cmd, p, args[:1])
			if err != nil {
				return err
			}
			renamed, err := p.Rename(cmd.Context(), items[0], args[1])
			if err != nil {
				return err
			}
			printItem(out(cmd), renamed)
			return nil
		},
	}
	addFolderFlag(cmd)
	return cmd
}

func (a *app) removeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete items",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}
			items, err := a.items(cmd, p, args)
			if err != nil {
				return err
			}
			ops, err := p.Delete(cmd.Context(), items, nil)
			printOperations(out(cmd), ops)
			if err != nil {
				return err
			}
			return a.settle(cmd, p, ops)
		},
	}
	addFolderFlag(cmd)
	addWaitFlags(cmd)
	return cmd
}

func addFolderFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("folder", "F", false, "the ids name folders rather than files")
}

// items turns ids into items. Files are looked up with FileInfo so backends checking versions see the current one;
// folders cannot be looked up and are passed by id.
func (a *app) items(cmd *cobra.Command, p fileprovider.FileProvider, ids []string) ([]fileprovider.Item, error) {
	folders, _ := cmd.Flags().GetBool("folder")
	return resolveItems(cmd.Context(), p, ids, folders)
}

func resolveItems(ctx context.Context, p fileprovider.FileProvider, ids []string, folders bool) ([]fileprovider.Item, error) {
	items := make([]fileprovider.Item, 0, len(ids))
	for _, id := range ids {
		if folders {
			items = append(items, &fileprovider.CloudFolder{ItemInfo: fileprovider.ItemInfo{ID: id, Title: id}})
			continue
		}
		file, err := p.FileInfo(ctx, &fileprovider.CloudFile{ItemInfo: fileprovider.ItemInfo{ID: id}})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		items = append(items, file)
	}
	return items, nil
}
