package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/1129kyoto/sitecontent/internal/cms"
	"github.com/1129kyoto/sitecontent/internal/entities"
	"github.com/1129kyoto/sitecontent/internal/exporters"
	"github.com/1129kyoto/sitecontent/internal/site"
)

const (
	FormatLLMs   = "llms"
	FormatJSONLD = "jsonld"
)

// ExportCommand renders the published content once, for static builds.
type ExportCommand struct {
	globals *Globals

	Format     string
	Lang       string
	OutputPath string

	Out io.Writer
}

func NewExportCommand(globals *Globals) *ExportCommand {
	return &ExportCommand{globals: globals, Out: os.Stdout}
}

func (cmd *ExportCommand) Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "export",
		Short: "Render llms.txt or JSON-LD from the published content",
		Example: `  sitecontent export > public/llms.txt
  sitecontent export --format jsonld --lang en --output dist/en/restaurant.jsonld`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Run(c.Context())
		},
	}
	c.Flags().StringVar(&cmd.Format, "format", FormatLLMs, "output format: llms or jsonld")
	c.Flags().StringVar(&cmd.Lang, "lang", string(entities.LangJA), "language for jsonld: ja or en")
	c.Flags().StringVarP(&cmd.OutputPath, "output", "o", "", "write to this file instead of stdout")
	return c
}

func (cmd *ExportCommand) exporter() (exporters.Exporter, error) {
	siteURL := cmd.globals.Config.Site.URL
	switch cmd.Format {
	case FormatLLMs, "":
		return exporters.NewLLMsTextExporter(siteURL), nil
	case FormatJSONLD:
		lang, err := entities.ParseLang(cmd.Lang)
		if err != nil {
			return nil, err
		}
		return exporters.NewJSONLDExporter(siteURL, lang), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want %s or %s)", cmd.Format, FormatLLMs, FormatJSONLD)
	}
}

func (cmd *ExportCommand) Run(ctx context.Context) error {
	exporter, err := cmd.exporter()
	if err != nil {
		return err
	}

	cfg := cmd.globals.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := cms.NewClient(cfg.CMS, cmd.globals.logger())
	snap, err := site.NewLoader(client, cmd.globals.logger()).Load(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	result, err := exporter.Export(&buf, snap.Content)
	if err != nil {
		return err
	}

	if cmd.OutputPath != "" {
		if err := os.WriteFile(cmd.OutputPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", cmd.OutputPath, err)
		}
	} else if _, err := buf.WriteTo(cmd.Out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	cmd.globals.logger().Info("export complete",
		zap.String("format", cmd.Format),
		zap.Int("menu_items", result.MenuItemsExported),
		zap.Int("bytes", result.BytesWritten))
	return nil
}
