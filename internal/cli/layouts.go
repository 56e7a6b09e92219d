package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gompdf/resumepdf/internal/preset"
)

func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the available layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "LAYOUT\tSECTIONS")
			for _, key := range preset.Keys() {
				l, err := preset.Lookup(key)
				if err != nil {
					return err
				}
				kinds := make([]string, len(l.Sections))
				for i, s := range l.Sections {
					kinds[i] = string(s.Kind)
				}
				fmt.Fprintf(w, "%s\t%s\n", key, strings.Join(kinds, ", "))
			}
			return w.Flush()
		},
	}
}
