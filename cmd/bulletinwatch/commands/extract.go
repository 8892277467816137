package commands

import (
	"fmt"
	"os"

	"bulletinwatch/lib/bulletin"
	"bulletinwatch/lib/bulletin/extract"
	"bulletinwatch/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <timestamp>",
	Short: "Runs the field extractor over one cached bulletin and prints the result.",
	Long: "Runs the field extractor over one cached bulletin and prints the result.\n" +
		"The timestamp uses the cache filename encoding, e.g. 2020-03-16_1400.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		ts, err := bulletin.Parse(args[0])
		if err != nil {
			serviceutil.Fatal("bad timestamp", err)
		}
		c := cfg.cache()
		if !c.Has(ts) {
			serviceutil.Fatal("bulletin not cached", fmt.Errorf("no file at %s", c.Path(ts)))
		}

		text, err := extract.Text(c.Path(ts))
		if err != nil {
			serviceutil.Fatal("failed to extract text", err)
		}
		fields := extract.Extract(text, extract.DefaultPatterns)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Field", "Value"})
		for i, p := range extract.DefaultPatterns {
			t.AppendRow(table.Row{p.Name, fields[i].String()})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
