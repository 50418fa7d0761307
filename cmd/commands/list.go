package commands

import (
	"os"
	"strconv"

	"recobench/pkg/core"
	"recobench/pkg/reporter"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available components",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header([]string{"Algorithm", "Rating metrics"})
			for _, algo := range core.Algorithms() {
				capability, err := core.CapabilityFor(algo)
				if err != nil {
					return err
				}
				table.Append([]string{algo, strconv.FormatBool(capability.SupportsRatingMetrics)})
			}
			table.Render()

			sizes := make([]string, 0, len(core.KnownSizes()))
			for _, size := range core.KnownSizes() {
				sizes = append(sizes, string(size))
			}
			writeList("Dataset sizes", sizes)
			writeList("Providers", []string{"mock", "exec"})
			writeList("Formats", []string{
				reporter.FormatTable,
				reporter.FormatJSON,
				reporter.FormatHTML,
				reporter.FormatMarkdown,
				reporter.FormatCSV,
			})
			return nil
		},
	}
	return cmd
}

func writeList(title string, items []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{title})
	for _, item := range items {
		table.Append([]string{item})
	}
	table.Render()
}
