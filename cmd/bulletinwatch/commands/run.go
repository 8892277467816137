package commands

import (
	"bulletinwatch/lib/harvester"
	"bulletinwatch/lib/serviceutil"
	"bulletinwatch/lib/telemetry"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Performs one incremental harvest of the bulletin archive.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		telemetry.InstrumentPerfStats(cmd.Context())

		st, closeStore := openStore(cmd.Context(), cfg)
		defer closeStore()

		h := harvester.New(harvester.Options{
			ArchiveURL: cfg.ArchiveUrl,
			HrefRoot:   cfg.HrefRoot,
			Catalog:    cfg.catalogOptions(),
			Cache:      cfg.cache(),
			Store:      st,
			Client:     newClient(),
		})
		_, err := h.Run(cmd.Context())
		if err != nil {
			serviceutil.Fatal("harvest failed", err)
		}
	},
}
