package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List generated assessment reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.Close()

		reports := eng.Reports()
		if len(reports) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No reports yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTASK\tGENERATED\tSIZE")
		for _, r := range reports {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				r.ID, r.TaskTitle, r.GeneratedAt.Format("2006-01-02 15:04"), humanize.Bytes(uint64(r.FileSize)))
		}
		return w.Flush()
	},
}
