package commands

import (
	"context"
	"fmt"
	"os"

	"bulletinwatch/lib/bulletin/cache"
	"bulletinwatch/lib/bulletin/catalog"
	"bulletinwatch/lib/configutil"
	"bulletinwatch/lib/serviceutil"
	"bulletinwatch/lib/store"
	"bulletinwatch/lib/store/sheets"
	"bulletinwatch/lib/store/sqlite"
	"bulletinwatch/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bulletinwatch",
	Short: "bulletinwatch harvests county health bulletins into an indicator store.",
}

var verbose *bool

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
	cobra.OnInitialize(func() {
		telemetry.InitSlog(*verbose)
	})
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type SheetsConfig struct {
	SpreadsheetId   string `json:"spreadsheet_id"`
	CredentialsFile string `json:"credentials_file"`
	TokenFile       string `json:"token_file"`
}

type SqliteConfig struct {
	File string `json:"file"`
}

type StoreConfig struct {
	// Backend picks the store implementation: "sheets" or "sqlite".
	Backend string       `json:"backend"`
	Sheets  SheetsConfig `json:"sheets"`
	Sqlite  SqliteConfig `json:"sqlite"`
}

type Config struct {
	ArchiveUrl string `json:"archive_url"`
	Domain     string `json:"domain"`
	HrefRoot   string `json:"href_root"`
	PdfDir     string `json:"pdf_dir"`
	// DuplicateLabels is what to do with verbatim duplicate listing
	// labels: "last_wins" (default), "first_wins" or "reject".
	DuplicateLabels string      `json:"duplicate_labels"`
	Store           StoreConfig `json:"store"`
}

func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func (c Config) duplicatePolicy() catalog.DuplicatePolicy {
	switch c.DuplicateLabels {
	case "", "last_wins":
		return catalog.DuplicatesLastWins
	case "first_wins":
		return catalog.DuplicatesFirstWins
	case "reject":
		return catalog.DuplicatesReject
	}
	serviceutil.Fatal("bad config", fmt.Errorf(
		"unknown duplicate_labels policy %q", c.DuplicateLabels))
	panic("unreachable")
}

func (c Config) catalogOptions() catalog.Options {
	return catalog.Options{
		Domain:     c.Domain,
		Duplicates: c.duplicatePolicy(),
	}
}

func (c Config) cache() cache.Cache {
	return cache.Cache{Dir: c.PdfDir}
}

func (c Config) authorizer() sheets.Authorizer {
	auth, err := sheets.NewAuthorizer(
		c.Store.Sheets.CredentialsFile,
		c.Store.Sheets.TokenFile,
	)
	if err != nil {
		serviceutil.Fatal("failed to load google credentials", err)
	}
	return auth
}

// openStore builds the configured store backend. the returned cleanup
// is a no-op for sheets.
func openStore(ctx context.Context, c Config) (store.Store, func()) {
	switch c.Store.Backend {
	case "sheets":
		client, err := c.authorizer().Client(ctx)
		if err != nil {
			serviceutil.Fatal("failed to authorize with google", err)
		}
		st, err := sheets.NewStore(ctx, client, c.Store.Sheets.SpreadsheetId)
		if err != nil {
			serviceutil.Fatal("failed to open sheets store", err)
		}
		return st, func() {}
	case "", "sqlite":
		db, err := sqlite.Open(c.Store.Sqlite.File)
		if err != nil {
			serviceutil.Fatal("failed to open sqlite store", err)
		}
		return sqlite.NewStore(db), func() { db.Close() }
	}
	serviceutil.Fatal("bad config", fmt.Errorf(
		"unknown store backend %q", c.Store.Backend))
	panic("unreachable")
}

func newClient() *resty.Client {
	client := resty.New()
	telemetry.InstrumentResty(client, "bulletinwatch.cmd")
	return client
}
