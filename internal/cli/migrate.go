package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/1129kyoto/sitecontent/internal/cms"
	"github.com/1129kyoto/sitecontent/internal/migrate"
)

// ErrMigrationIncomplete is returned when at least one write failed. The
// summary has already been printed.
var ErrMigrationIncomplete = errors.New("migration finished with failed writes")

// MigrateCommand uploads the site images and pushes every collection to the CMS.
type MigrateCommand struct {
	globals *Globals

	ImagesDir   string
	Parallelism int
	DryRun      bool

	Out io.Writer
}

func NewMigrateCommand(globals *Globals) *MigrateCommand {
	return &MigrateCommand{globals: globals, Out: os.Stdout}
}

func (cmd *MigrateCommand) Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Upload images and write all site content to microCMS",
		Long: `Uploads every image under the images directory, then writes the
site-meta, hero, catchcopy, about, menu-items, store-info and footer
collections. An upload failure stops the run before anything is written;
a failed write is reported and the remaining writes still run.`,
		Example: `  # Preview the payloads without contacting microCMS
  sitecontent migrate --dry-run

  # Migrate with images from another directory
  sitecontent migrate --images ../site/public/images`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Run(c.Context())
		},
	}
	c.Flags().StringVar(&cmd.ImagesDir, "images", "", "directory holding the image files (default $IMAGES_DIR)")
	c.Flags().IntVar(&cmd.Parallelism, "parallel", 0, "concurrent collection writes (default $MIGRATE_PARALLELISM)")
	c.Flags().BoolVar(&cmd.DryRun, "dry-run", false, "print the payloads with placeholder image URLs and exit")
	return c
}

func (cmd *MigrateCommand) Run(ctx context.Context) error {
	if cmd.DryRun {
		fmt.Fprintln(cmd.Out, "DRY RUN MODE - microCMS には接続しません")
		fmt.Fprintln(cmd.Out)
		return migrate.DryRun(cmd.Out)
	}

	cfg := cmd.globals.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := migrate.Options{
		ImagesDir:   cfg.Migration.ImagesDir,
		Parallelism: cfg.Migration.Parallelism,
		Out:         cmd.Out,
	}
	if cmd.ImagesDir != "" {
		opts.ImagesDir = cmd.ImagesDir
	}
	if cmd.Parallelism > 0 {
		opts.Parallelism = cmd.Parallelism
	}

	client := cms.NewClient(cfg.CMS, cmd.globals.logger())
	migrator := migrate.New(client, client, opts, cmd.globals.logger())

	report, err := migrator.Run(ctx)
	if err != nil {
		return err
	}

	report.Print(cmd.Out)
	if !report.OK() {
		return ErrMigrationIncomplete
	}
	return nil
}
