package exporters

import (
	"io"

	"github.com/1129kyoto/sitecontent/internal/entities"
)

// Exporter renders site content into one output document.
type Exporter interface {
	Export(w io.Writer, content entities.Content) (ExportResult, error)
	ContentType() string
}

type ExportResult struct {
	MenuItemsExported int `json:"menu_items_exported"`
	BytesWritten      int `json:"bytes_written"`
}

func menuItemCount(content entities.Content) int {
	return len(content.Recommended) + len(content.Collaboration)
}
