// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Content Store Interfaces
//
//   - migrate.Store: collection writes (internal/migrate/migrator.go)
//   - migrate.Uploader: image uploads (internal/migrate/migrator.go)
//   - site.Reader: collection reads (internal/site/loader.go)
//
// All three are implemented by *cms.Client.
//
// ## Rendering Interfaces
//
//   - site.Source: produces content snapshots (internal/site/cache.go)
//   - http.SnapshotSource: the snapshot being served (internal/http/content.go)
//   - scheduler.Refresher: periodic reload (internal/scheduler/content_refresh.go)
//   - exporters.Exporter: one output document (internal/exporters/generic.go)
//   - entities.Localizable: bilingual field tables (internal/entities/lang.go)
//
// # Adding a New Collection
//
//  1. Add the decoded type to internal/entities with a LocalizedFields table
//     for its _ja/_en pairs.
//
//  2. Add the write payload and its builder to internal/content, then append
//     the collection to Collections and Documents in declared order.
//
//  3. If the collection is rendered, fold it into the site-data aggregate
//     or read it in site.Loader.
//
// # Adding a New Export Format
//
//  1. Implement Exporter in internal/exporters/
//
//     type SitemapExporter struct {
//         SiteURL string
//     }
//
//     func (e *SitemapExporter) ContentType() string
//     func (e *SitemapExporter) Export(w io.Writer, content entities.Content) (ExportResult, error)
//
//  2. Add a route in internal/http/router.go and a --format value in the
//     export command.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
