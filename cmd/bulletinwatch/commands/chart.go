package commands

import (
	"os"

	"bulletinwatch/lib/bulletin"
	"bulletinwatch/lib/bulletin/extract"
	"bulletinwatch/lib/serviceutil"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
)

var chartOut *string

func init() {
	chartOut = chartCmd.Flags().StringP("out", "o", "bulletins.html", "The HTML file to render the chart to.")
	rootCmd.AddCommand(chartCmd)
}

var chartCmd = &cobra.Command{
	Use:   "chart [--out <path/to/chart.html>]",
	Short: "Renders the recorded indicator series to an HTML line chart.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		st, closeStore := openStore(cmd.Context(), cfg)
		defer closeStore()

		rows, err := st.History(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to read history", err)
		}

		var xs []string
		series := make([][]opts.LineData, len(extract.DefaultPatterns))
		for _, row := range rows {
			xs = append(xs, row.Time.Format(bulletin.DisplayTimeFormat))
			for i, f := range row.Fields {
				if v, ok := f.Matched(); ok {
					series[i] = append(series[i], opts.LineData{Value: v})
					continue
				}
				series[i] = append(series[i], opts.LineData{Value: nil})
			}
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "COVID-19 indicators"}),
		)
		line.SetXAxis(xs)
		for i, p := range extract.DefaultPatterns {
			line.AddSeries(p.Name, series[i])
		}

		f, err := os.Create(*chartOut)
		if err != nil {
			serviceutil.Fatal("failed to create output file", err)
		}
		defer f.Close()
		if err := line.Render(f); err != nil {
			serviceutil.Fatal("failed to render chart", err)
		}
	},
}
