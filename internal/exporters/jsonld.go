package exporters

import (
	"fmt"
	"io"

	"github.com/1129kyoto/sitecontent/internal/entities"
	"github.com/1129kyoto/sitecontent/internal/jsonld"
)

// JSONLDExporter writes the Restaurant description in one language.
type JSONLDExporter struct {
	builder *jsonld.Builder
	lang    entities.Lang
}

func NewJSONLDExporter(siteURL string, lang entities.Lang) *JSONLDExporter {
	return &JSONLDExporter{builder: jsonld.NewBuilder(siteURL), lang: lang}
}

func (e *JSONLDExporter) ContentType() string {
	return "application/ld+json; charset=utf-8"
}

func (e *JSONLDExporter) Export(w io.Writer, content entities.Content) (ExportResult, error) {
	body, err := e.builder.Marshal(content.Site, content.Recommended, content.Collaboration, e.lang)
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to encode structured data: %w", err)
	}
	body = append(body, '\n')

	n, err := w.Write(body)
	if err != nil {
		return ExportResult{BytesWritten: n}, fmt.Errorf("failed to write structured data: %w", err)
	}
	return ExportResult{MenuItemsExported: menuItemCount(content), BytesWritten: n}, nil
}
