package commands

import (
	"os"

	"bulletinwatch/lib/bulletin/catalog"
	"bulletinwatch/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var catalogVerify *bool

func init() {
	catalogVerify = catalogCmd.Flags().Bool("verify", false, "Also check which bulletins are cached locally.")
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog [--verify]",
	Short: "Fetches the archive listing and prints the resolved bulletin catalog.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		anchors, err := catalog.Fetch(cmd.Context(), newClient(), cfg.ArchiveUrl, cfg.HrefRoot)
		if err != nil {
			serviceutil.Fatal("failed to fetch listing", err)
		}
		cat, err := catalog.Build(anchors, cfg.catalogOptions())
		if err != nil {
			serviceutil.Fatal("failed to build catalog", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		if *catalogVerify {
			t.AppendHeader(table.Row{"Bulletin", "URL", "Cached"})
		} else {
			t.AppendHeader(table.Row{"Bulletin", "URL"})
		}

		c := cfg.cache()
		for _, ts := range cat.Timestamps() {
			if *catalogVerify {
				cached := "no"
				if c.Has(ts) {
					cached = "yes"
				}
				t.AppendRow(table.Row{ts.Display(), cat[ts], cached})
				continue
			}
			t.AppendRow(table.Row{ts.Display(), cat[ts]})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
