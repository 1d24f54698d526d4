package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MCPEngu/fileprovider/backend"
)

func (a *app) backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the registered backends, the selected one marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected := a.v.GetString("backend")
			tw := tabwriter.NewWriter(out(cmd), 0, 4, 2, ' ', 0)
			for _, scheme := range backend.RegisteredBackends() {
				mark := " "
				if scheme == selected {
					mark = currentColor.Sprint("*")
				}
				_, _ = fmt.Fprintf(tw, "%s %s\t%s\n", mark, scheme, backend.Backend(scheme).Name())
			}
			return tw.Flush()
		},
	}
}
