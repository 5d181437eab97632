package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/hoteldb/pkg/report"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the summary report",
	Long: `Generate the hotel summary report: per-room occupancy with guest
and key card annotations, aggregate counts and a per-type breakdown.

By default the report is printed; with --save it is also written into
the report directory.

Examples:
  hoteldb report
  hoteldb report --save`,
	Run: func(cmd *cobra.Command, args []string) {
		save, _ := cmd.Flags().GetBool("save")

		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		r := report.New(svc)
		text, err := r.BuildText()
		if err != nil {
			cmd.Printf("Error building report: %v\n", err)
			return
		}
		cmd.Println(text)

		if save {
			path, err := r.Save(svc.Config().ReportDir)
			if err != nil {
				cmd.Printf("Error saving report: %v\n", err)
				return
			}
			cmd.Printf("\nReport saved to %s\n", path)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Bool("save", false, "Write the report into the report directory")
}
