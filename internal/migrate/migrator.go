// Package migrate pushes the site content into the CMS: upload every image,
// build every collection payload, write them, and report the outcome.
package migrate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/1129kyoto/sitecontent/internal/content"
	"github.com/1129kyoto/sitecontent/internal/entities"
)

// ErrImagesMissing is returned when the uploaded set does not cover every
// image the payloads reference.
var ErrImagesMissing = errors.New("images not uploaded")

// Store writes collection records.
type Store interface {
	Put(ctx context.Context, collection string, payload any) error
	PutItem(ctx context.Context, collection, id string, payload any) error
}

// Uploader stores one image and returns its reference. Calls are not
// idempotent.
type Uploader interface {
	Upload(ctx context.Context, filePath string) (entities.Image, error)
}

type Options struct {
	ImagesDir   string
	ImageFiles  []string // defaults to content.ImageFiles
	Parallelism int      // concurrent collection writes, <= 1 means sequential
	Out         io.Writer
}

type Migrator struct {
	store    Store
	uploader Uploader
	opts     Options
	logger   *zap.Logger
}

func New(store Store, uploader Uploader, opts Options, logger *zap.Logger) *Migrator {
	if opts.ImageFiles == nil {
		opts.ImageFiles = content.ImageFiles
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Migrator{
		store:    store,
		uploader: uploader,
		opts:     opts,
		logger:   logger.Named("migrate"),
	}
}

// Run uploads all images and then writes every collection. An upload
// failure or an image left unuploaded aborts the run before any write.
// Write failures are recorded in the report and do not stop the remaining
// writes.
func (m *Migrator) Run(ctx context.Context) (*Report, error) {
	fmt.Fprintln(m.opts.Out, "microCMS コンテンツ移行を開始します。")
	fmt.Fprintln(m.opts.Out)

	images, err := m.UploadImages(ctx)
	if err != nil {
		return nil, err
	}
	if missing := images.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrImagesMissing, strings.Join(missing, ", "))
	}

	results := m.WriteAll(ctx, content.Documents(images))
	return &Report{ImagesUploaded: len(images), Results: results}, nil
}

// UploadImages uploads each declared file once, strictly in order.
func (m *Migrator) UploadImages(ctx context.Context) (content.ImageMap, error) {
	out := m.opts.Out
	fmt.Fprintln(out, "=== Step 1: 画像アップロード ===")

	images := make(content.ImageMap, len(m.opts.ImageFiles))
	for _, name := range m.opts.ImageFiles {
		if _, done := images[name]; done {
			continue
		}
		fmt.Fprintf(out, "  アップロード中: %s\n", name)

		img, err := m.uploader.Upload(ctx, filepath.Join(m.opts.ImagesDir, name))
		if err != nil {
			fmt.Fprintf(out, "  [ERROR] %v\n", err)
			m.logger.Error("image upload failed", zap.String("file", name), zap.Error(err))
			return nil, fmt.Errorf("upload %s: %w", name, err)
		}
		images[name] = img.URL
		fmt.Fprintf(out, "  -> %s\n", img.URL)
	}

	fmt.Fprintf(out, "画像アップロード完了: %d 件\n\n", len(images))
	m.logger.Info("images uploaded", zap.Int("count", len(images)))
	return images, nil
}

type batch struct {
	collection string
	docs       []content.Document
}

// groupByCollection keeps the order in which collections first appear.
func groupByCollection(docs []content.Document) []batch {
	var batches []batch
	index := make(map[string]int)
	for _, doc := range docs {
		i, ok := index[doc.Collection]
		if !ok {
			i = len(batches)
			index[doc.Collection] = i
			batches = append(batches, batch{collection: doc.Collection})
		}
		batches[i].docs = append(batches[i].docs, doc)
	}
	return batches
}

// WriteAll writes every document and returns the results in document
// order, whatever order the writes completed in.
func (m *Migrator) WriteAll(ctx context.Context, docs []content.Document) []Result {
	out := m.opts.Out
	fmt.Fprintln(out, "=== Step 2: コンテンツ投入 ===")
	fmt.Fprintln(out)

	batches := groupByCollection(docs)
	slots := make([][]Result, len(batches))

	if m.opts.Parallelism <= 1 {
		for i, b := range batches {
			slots[i] = m.writeBatch(ctx, out, i, len(batches), b)
		}
	} else {
		logs := make([]bytes.Buffer, len(batches))
		var g errgroup.Group
		g.SetLimit(m.opts.Parallelism)
		for i, b := range batches {
			g.Go(func() error {
				slots[i] = m.writeBatch(ctx, &logs[i], i, len(batches), b)
				return nil
			})
		}
		_ = g.Wait()
		for i := range logs {
			_, _ = logs[i].WriteTo(out)
		}
	}

	var results []Result
	for _, slot := range slots {
		results = append(results, slot...)
	}
	return results
}

func (m *Migrator) writeBatch(ctx context.Context, out io.Writer, i, total int, b batch) []Result {
	fmt.Fprintf(out, "[%d/%d] %s を投入中...\n", i+1, total, b.collection)

	if len(b.docs) == 1 && b.docs[0].ID == "" {
		res := m.write(ctx, b.docs[0])
		if res.Success {
			fmt.Fprint(out, "  -> 成功\n\n")
		} else {
			fmt.Fprintf(out, "  -> 失敗: %s\n\n", res.Error)
		}
		return []Result{res}
	}

	// List collection: one upsert per record, then a rollup entry.
	results := make([]Result, 0, len(b.docs)+1)
	var failedIDs []string
	for _, doc := range b.docs {
		res := m.write(ctx, doc)
		results = append(results, res)
		if res.Success {
			fmt.Fprintf(out, "  -> %s (%s): 成功\n", label(doc), doc.ID)
		} else {
			failedIDs = append(failedIDs, doc.ID)
			fmt.Fprintf(out, "  -> %s (%s): 失敗 - %s\n", label(doc), doc.ID, res.Error)
		}
	}
	fmt.Fprintln(out)

	rollup := Result{Endpoint: b.collection, Success: len(failedIDs) == 0}
	if !rollup.Success {
		rollup.Error = fmt.Sprintf("%d/%d items failed: %v", len(failedIDs), len(b.docs), failedIDs)
	}
	return append(results, rollup)
}

func (m *Migrator) write(ctx context.Context, doc content.Document) Result {
	endpoint := doc.Collection
	var err error
	if doc.ID == "" {
		err = m.store.Put(ctx, doc.Collection, doc.Body)
	} else {
		endpoint += "/" + doc.ID
		err = m.store.PutItem(ctx, doc.Collection, doc.ID, doc.Body)
	}

	if err != nil {
		m.logger.Warn("write failed", zap.String("endpoint", endpoint), zap.Error(err))
		return Result{Endpoint: endpoint, Success: false, Error: err.Error()}
	}
	m.logger.Info("write succeeded", zap.String("endpoint", endpoint))
	return Result{Endpoint: endpoint, Success: true}
}

func label(doc content.Document) string {
	if item, ok := doc.Body.(content.MenuItemPayload); ok {
		return item.NameJA
	}
	return doc.ID
}

// DryRun prints every payload the migration would write, with placeholder
// image URLs, without contacting the CMS.
func DryRun(w io.Writer) error {
	for _, doc := range content.Documents(content.PlaceholderImages()) {
		endpoint := doc.Collection
		if doc.ID != "" {
			endpoint += "/" + doc.ID
		}
		body, err := json.MarshalIndent(doc.Body, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", endpoint, err)
		}
		fmt.Fprintf(w, "PUT /%s\n%s\n\n", endpoint, body)
	}
	return nil
}
