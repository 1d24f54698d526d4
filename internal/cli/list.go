package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MCPEngu/fileprovider"
)

var filterTypes = map[string]fileprovider.FilterType{
	"all":           fileprovider.FilterAll,
	"files":         fileprovider.FilterFiles,
	"folders":       fileprovider.FilterFolders,
	"documents":     fileprovider.FilterDocuments,
	"spreadsheets":  fileprovider.FilterSpreadsheets,
	"presentations": fileprovider.FilterPresentations,
	"images":        fileprovider.FilterImages,
	"media":         fileprovider.FilterMedia,
	"archives":      fileprovider.FilterArchives,
}

var sortFields = map[string]fileprovider.SortField{
	"title":    fileprovider.SortByTitle,
	"modified": fileprovider.SortByModified,
	"size":     fileprovider.SortBySize,
	"type":     fileprovider.SortByType,
}

var sortOrders = map[string]fileprovider.SortOrder{
	"asc":  fileprovider.SortAsc,
	"desc": fileprovider.SortDesc,
}

func (a *app) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls [folder-id]",
		Aliases: []string{"list"},
		Short:   "List the content of a folder, the backend root by default",
		Args:    cobra.MaximumNArgs(1),
		RunE:    a.runList,
	}
	flags := cmd.Flags()
	flags.StringP("search", "s", "", "only show titles containing this text")
	flags.StringP("type", "t", "all", "only show one kind of item: "+keys(filterTypes))
	flags.String("sort", "title", "sort by: "+keys(sortFields))
	flags.String("order", "asc", "sort order: asc or desc")
	flags.BoolP("subfolders", "r", false, "search subfolders too")
	flags.Int("limit", 0, "page size, 0 for the backend default")
	flags.BoolP("all", "a", false, "follow cursors until the listing is complete")
	return cmd
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	p, err := a.provider()
	if err != nil {
		return err
	}
	filter, err := listFilter(cmd)
	if err != nil {
		return err
	}
	folderID := a.root(p)
	if len(args) > 0 {
		folderID = args[0]
	}

	ctx := cmd.Context()
	e, err := p.ListItems(ctx, folderID, filter)
	if err != nil {
		return err
	}
	if all, _ := cmd.Flags().GetBool("all"); all {
		if err := drain(ctx, e, p.ContinueListing); err != nil {
			return err
		}
	}
	printExplorer(out(cmd), e)
	return nil
}

func (a *app) searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the whole backend for titles containing query",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runSearch,
	}
	cmd.Flags().BoolP("all", "a", false, "follow cursors until every match is listed")
	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	p, err := a.provider()
	if err != nil {
		return err
	}
	query := args[0]
	ctx := cmd.Context()
	e, err := p.Search(ctx, query, "")
	if err != nil {
		return err
	}
	if all, _ := cmd.Flags().GetBool("all"); all {
		next := func(ctx context.Context, cursor string) (*fileprovider.Explorer, error) {
			return p.Search(ctx, query, cursor)
		}
		if err := drain(ctx, e, next); err != nil {
			return err
		}
	}
	printExplorer(out(cmd), e)
	return nil
}

// drain appends pages to e until its cursor runs out.
func drain(ctx context.Context, e *fileprovider.Explorer, next func(context.Context, string) (*fileprovider.Explorer, error)) error {
	for e.HasMore() {
		page, err := next(ctx, e.Cursor)
		if err != nil {
			return err
		}
		e.Append(page)
	}
	return nil
}

func listFilter(cmd *cobra.Command) (fileprovider.Filter, error) {
	flags := cmd.Flags()
	search, _ := flags.GetString("search")
	subfolders, _ := flags.GetBool("subfolders")
	limit, _ := flags.GetInt("limit")
	filter := fileprovider.Filter{
		Search:         search,
		WithSubfolders: subfolders,
		PageSize:       limit,
	}

	var err error
	if filter.Type, err = lookup(flags, "type", filterTypes); err != nil {
		return filter, err
	}
	if filter.SortBy, err = lookup(flags, "sort", sortFields); err != nil {
		return filter, err
	}
	if filter.SortOrder, err = lookup(flags, "order", sortOrders); err != nil {
		return filter, err
	}
	return filter, nil
}

type flagGetter interface {
	GetString(name string) (string, error)
}

// lookup translates the value of a string flag through names.
func lookup[T any](flags flagGetter, flag string, names map[string]T) (T, error) {
	s, _ := flags.GetString(flag)
	v, ok := names[strings.ToLower(s)]
	if !ok {
		return v, fmt.Errorf("%w: invalid --%s %q, want one of: %s", errUsage, flag, s, keys(names))
	}
	return v, nil
}

func keys[T any](m map[string]T) string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
