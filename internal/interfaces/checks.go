package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/1129kyoto/sitecontent/internal/cms"
	"github.com/1129kyoto/sitecontent/internal/entities"
	"github.com/1129kyoto/sitecontent/internal/exporters"
	"github.com/1129kyoto/sitecontent/internal/http"
	"github.com/1129kyoto/sitecontent/internal/migrate"
	"github.com/1129kyoto/sitecontent/internal/scheduler"
	"github.com/1129kyoto/sitecontent/internal/site"
)

// =============================================================================
// Content Store
// =============================================================================

// Write side used by the migration
var _ migrate.Store = (*cms.Client)(nil)
var _ migrate.Uploader = (*cms.Client)(nil)

// Read side used for rendering
var _ site.Reader = (*cms.Client)(nil)

// =============================================================================
// Rendering
// =============================================================================

var _ site.Source = (*site.Loader)(nil)
var _ scheduler.Refresher = (*site.Cache)(nil)
var _ http.SnapshotSource = (*site.Cache)(nil)

var _ exporters.Exporter = (*exporters.LLMsTextExporter)(nil)
var _ exporters.Exporter = (*exporters.JSONLDExporter)(nil)

// =============================================================================
// Localization
// =============================================================================

var _ entities.Localizable = entities.SiteData{}
var _ entities.Localizable = entities.MenuItem{}
var _ entities.Localizable = entities.StoreInfo{}
