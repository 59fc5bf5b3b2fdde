package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"evalio/internal/assessment"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List assigned assessment tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tREPORT\tDURATION\tQUESTIONS")
		for _, task := range eng.Tasks() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dm\t%d\n",
				task.ID, task.Title, task.Status, reportLabel(task), task.DurationMinutes, task.QuestionCount)
		}
		return w.Flush()
	},
}

func reportLabel(task assessment.Task) string {
	if task.ReportStatus == assessment.ReportStatusNone {
		return "-"
	}
	return string(task.ReportStatus)
}
