// Package site reads the published content back from the CMS for rendering.
package site

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/1129kyoto/sitecontent/internal/cms"
	"github.com/1129kyoto/sitecontent/internal/content"
	"github.com/1129kyoto/sitecontent/internal/entities"
)

// menuListLimit covers the whole menu in one page.
const menuListLimit = 100

// Reader is the read side of the content store.
type Reader interface {
	Get(ctx context.Context, collection string, out any) error
	GetList(ctx context.Context, collection string, query cms.ListQuery, out any) error
}

// Snapshot is one consistent read of everything the site renders.
type Snapshot struct {
	entities.Content
	FetchedAt time.Time
}

type Loader struct {
	reader Reader
	logger *zap.Logger
	now    func() time.Time
}

func NewLoader(reader Reader, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{reader: reader, logger: logger.Named("site"), now: time.Now}
}

// Load fetches the aggregate record and both category lists concurrently.
// Any failed read fails the whole load.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	var (
		site          entities.SiteData
		recommended   cms.ListResponse[entities.MenuItem]
		collaboration cms.ListResponse[entities.MenuItem]
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := l.reader.Get(ctx, content.CollectionSiteData, &site); err != nil {
			return fmt.Errorf("failed to read %s: %w", content.CollectionSiteData, err)
		}
		return nil
	})
	g.Go(func() error {
		return l.loadCategory(ctx, entities.CategoryRecommended, &recommended)
	})
	g.Go(func() error {
		return l.loadCategory(ctx, entities.CategoryCollaboration, &collaboration)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Content: entities.Content{
			Site:          &site,
			Recommended:   recommended.Contents,
			Collaboration: collaboration.Contents,
		},
		FetchedAt: l.now(),
	}
	l.logger.Info("content loaded",
		zap.Int("recommended", len(snap.Recommended)),
		zap.Int("collaboration", len(snap.Collaboration)))
	return snap, nil
}

func (l *Loader) loadCategory(ctx context.Context, category entities.Category, out *cms.ListResponse[entities.MenuItem]) error {
	query := cms.CategoryQuery(string(category))
	query.Limit = menuListLimit
	if err := l.reader.GetList(ctx, content.CollectionMenuItems, query, out); err != nil {
		return fmt.Errorf("failed to read %s menu: %w", category, err)
	}
	return nil
}
