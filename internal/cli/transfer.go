package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/operation"
)

func (a *app) transferCmd(use string, isMove bool) *cobra.Command {
	short := "Copy items into a folder"
	if isMove {
		short = "Move items into a folder"
	}
	cmd := &cobra.Command{
		Use:   use + " <dest-folder-id> <id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTransfer(cmd, args, isMove)
		},
	}
	cmd.Flags().String("conflict", fileprovider.ConflictSkip.String(),
		"what to do when the destination holds the same name: skip, overwrite or duplicate")
	addFolderFlag(cmd)
	addWaitFlags(cmd)
	return cmd
}

func (a *app) runTransfer(cmd *cobra.Command, args []string, isMove bool) error {
	p, err := a.provider()
	if err != nil {
		return err
	}
	s, _ := cmd.Flags().GetString("conflict")
	policy, err := fileprovider.ParseConflictPolicy(strings.ToLower(s))
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	items, err := a.items(cmd, p, args[1:])
	if err != nil {
		return err
	}
	dest := &fileprovider.CloudFolder{ItemInfo: fileprovider.ItemInfo{ID: args[0], Title: args[0]}}

	ops, err := p.Transfer(cmd.Context(), items, dest, policy, isMove)
	printOperations(out(cmd), ops)
	if err != nil {
		return err
	}
	return a.settle(cmd, p, ops)
}

func (a *app) statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of the backend's outstanding batch jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}
			if wait, _ := cmd.Flags().GetBool("wait"); wait {
				return a.wait(cmd, p)
			}
			op, err := p.OperationStatus(cmd.Context())
			if err != nil {
				return err
			}
			printOperations(out(cmd), []fileprovider.Operation{op})
			return op.Err
		},
	}
	addWaitFlags(cmd)
	return cmd
}

func addWaitFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolP("wait", "w", false, "poll the backend until its jobs finish")
	flags.Duration("interval", operation.DefaultInterval, "time between two polls")
}

// settle fails when any of ops already failed. Otherwise it waits for ops when asked to and when any of them is
// still running.
func (a *app) settle(cmd *cobra.Command, p fileprovider.FileProvider, ops []fileprovider.Operation) error {
	agg := fileprovider.AggregateOperations(ops)
	if agg.State == fileprovider.StateFailed {
		return agg.Err
	}
	wait, _ := cmd.Flags().GetBool("wait")
	if !wait || agg.Terminal() {
		return nil
	}
	return a.wait(cmd, p)
}

func (a *app) wait(cmd *cobra.Command, p fileprovider.FileProvider) error {
	interval, _ := cmd.Flags().GetDuration("interval")
	w := out(cmd)
	_, err := operation.Wait(cmd.Context(), p, interval,
		operation.WithLogger(a.logger),
		operation.WithProgress(func(op fileprovider.Operation) {
			printOperation(w, op)
		}))
	return err
}

func (a *app) terminateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terminate",
		Short: "Cancel the backend's outstanding batch jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}
			t, ok := p.(fileprovider.Terminator)
			if !ok {
				return fmt.Errorf("%w: %s has no jobs to cancel", fileprovider.ErrForbidden, p.Name())
			}
			ops, err := t.Terminate(cmd.Context())
			printOperations(out(cmd), ops)
			return err
		},
	}
}

type trashEmptier interface {
	EmptyTrash(ctx context.Context) ([]fileprovider.Operation, error)
}

func (a *app) emptyTrashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "empty-trash",
		Short: "Permanently delete everything in the trash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}
			t, ok := p.(trashEmptier)
			if !ok {
				return fmt.Errorf("%w: %s has no trash", fileprovider.ErrForbidden, p.Name())
			}
			ops, err := t.EmptyTrash(cmd.Context())
			printOperations(out(cmd), ops)
			if err != nil {
				return err
			}
			return a.settle(cmd, p, ops)
		},
	}
	addWaitFlags(cmd)
	return cmd
}
