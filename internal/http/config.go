package http

import "go.uber.org/zap"

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Current site content
	Content SnapshotSource

	// Public site root used in rendered links
	SiteURL string

	// Application info
	Version string

	Logger *zap.Logger
}
