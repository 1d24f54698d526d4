package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/MCPEngu/fileprovider"
)

var (
	folderColor  = color.New(color.FgBlue, color.Bold)
	currentColor = color.New(color.FgGreen, color.Bold)
	doneColor    = color.New(color.FgGreen)
	pendingColor = color.New(color.FgYellow)
	failedColor  = color.New(color.FgRed)
	dimColor     = color.New(color.Faint)
)

const timeLayout = "2006-01-02 15:04"

// printExplorer writes one line per folder then one per file, with the title last so colors do not upset the
// column widths.
func printExplorer(w io.Writer, e *fileprovider.Explorer) {
	if e.Current != nil && e.Current.Title != "" {
		_, _ = fmt.Fprintln(w, folderColor.Sprint(e.Current.Title+"/"))
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range e.Folders {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, "-", stamp(f.Modified), folderColor.Sprint(f.Title+"/"))
	}
	for _, f := range e.Files {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, humanSize(f.ContentLength), stamp(f.Modified), f.Title)
	}
	_ = tw.Flush()

	summary := fmt.Sprintf("%d folders, %d files", len(e.Folders), len(e.Files))
	if e.Total > e.Count() {
		summary += fmt.Sprintf(" of %d", e.Total)
	}
	if e.HasMore() {
		summary += ", more available with --all"
	}
	_, _ = fmt.Fprintln(w, dimColor.Sprint(summary))
}

// printItem writes the id and title of a created or renamed item.
func printItem(w io.Writer, item fileprovider.Item) {
	info := item.Info()
	title := info.Title
	if _, ok := item.(*fileprovider.CloudFolder); ok {
		title = folderColor.Sprint(title + "/")
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\n", info.ID, title)
}

func printInfo(w io.Writer, f *fileprovider.CloudFile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := func(k, v string) {
		if v != "" {
			_, _ = fmt.Fprintf(tw, "%s:\t%s\n", k, v)
		}
	}
	row("id", f.ID)
	row("title", f.Title)
	row("parent", f.ParentID)
	row("size", humanSize(f.ContentLength))
	row("version", fmt.Sprint(f.Version))
	row("access", f.Access.String())
	row("created", stamp(f.Created))
	row("modified", stamp(f.Modified))
	row("view", f.ViewURL)
	row("web", f.WebURL)
	_ = tw.Flush()
}

func printShare(w io.Writer, res *fileprovider.ShareResult) {
	if !res.Shared {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", res.ItemID, dimColor.Sprint("not shared"))
		return
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", res.ItemID, res.Access, res.Link)
}

func printOperations(w io.Writer, ops []fileprovider.Operation) {
	for _, op := range ops {
		printOperation(w, op)
	}
}

func printOperation(w io.Writer, op fileprovider.Operation) {
	c := pendingColor
	switch op.State {
	case fileprovider.StateDone:
		c = doneColor
	case fileprovider.StateFailed:
		c = failedColor
	}
	_, _ = fmt.Fprintln(w, c.Sprint(op.String()))
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
