package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/1129kyoto/sitecontent/internal/cli"
	"github.com/1129kyoto/sitecontent/internal/config"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func newRootCommand(globals *cli.Globals) *cobra.Command {
	root := &cobra.Command{
		Use:   "sitecontent",
		Short: "Content tooling for the Gion Daikichi Ranch website",
		Long: `sitecontent migrates the bilingual site content into microCMS and renders
the published content as llms.txt and schema.org JSON-LD.

Credentials are read from MICROCMS_SERVICE_DOMAIN and MICROCMS_API_KEY,
either from the environment or from a .env file.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return globals.Init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			globals.Sync()
		},
	}
	root.PersistentFlags().StringVar(&globals.EnvFile, "env-file", config.DefaultEnvFile, "dotenv file to load before reading the environment")
	root.PersistentFlags().BoolVarP(&globals.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		cli.NewMigrateCommand(globals).Command(),
		cli.NewServeCommand(globals).Command(),
		cli.NewExportCommand(globals).Command(),
	)
	return root
}

func main() {
	globals := &cli.Globals{Version: Version}

	err := newRootCommand(globals).ExecuteContext(context.Background())
	if err == nil {
		return
	}
	// The summary already lists every failed write.
	if !errors.Is(err, cli.ErrMigrationIncomplete) {
		fmt.Fprintf(os.Stderr, "致命的エラー: %v\n", err)
	}
	os.Exit(1)
}
