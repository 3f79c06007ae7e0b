package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/1129kyoto/sitecontent/internal/entities"
	"github.com/1129kyoto/sitecontent/internal/exporters"
	"github.com/1129kyoto/sitecontent/internal/site"
)

// SnapshotSource returns the content currently being served.
// *site.Cache implements it.
type SnapshotSource interface {
	Snapshot() (*site.Snapshot, error)
}

const cacheControl = "public, max-age=300"

type ContentController struct {
	source  SnapshotSource
	siteURL string
	logger  *zap.Logger
}

func NewContentController(source SnapshotSource, siteURL string, logger *zap.Logger) *ContentController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentController{source: source, siteURL: siteURL, logger: logger}
}

// LLMsText serves the plaintext export for language models.
func (h *ContentController) LLMsText(c *gin.Context) {
	h.render(c, exporters.NewLLMsTextExporter(h.siteURL))
}

// JSONLD serves the Restaurant structured data in the requested language.
func (h *ContentController) JSONLD(c *gin.Context) {
	lang, err := entities.ParseLang(c.Param("lang"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.render(c, exporters.NewJSONLDExporter(h.siteURL, lang))
}

func (h *ContentController) render(c *gin.Context, exporter exporters.Exporter) {
	snap, err := h.source.Snapshot()
	if err != nil {
		if errors.Is(err, site.ErrNoSnapshot) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "content is not available yet"})
			return
		}
		h.logger.Error("failed to read content snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read content"})
		return
	}

	var buf bytes.Buffer
	if _, err := exporter.Export(&buf, snap.Content); err != nil {
		h.logger.Error("failed to render content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render content"})
		return
	}

	c.Header("Cache-Control", cacheControl)
	c.Header("Last-Modified", snap.FetchedAt.UTC().Format(http.TimeFormat))
	c.Data(http.StatusOK, exporter.ContentType(), buf.Bytes())
}
