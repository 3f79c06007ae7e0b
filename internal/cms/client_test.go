package cms

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/1129kyoto/sitecontent/internal/config"
	"github.com/1129kyoto/sitecontent/internal/entities"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.CMS{
		BaseURL:    server.URL + "/api/v1",
		APIKey:     "test-key",
		Timeout:    2 * time.Second,
		MaxRetries: 3,
	}, zap.NewNop())
	client.retryDelay = time.Millisecond
	return client
}

func TestClient_Put(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/site-meta", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-MICROCMS-API-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := client.Put(context.Background(), "site-meta", map[string]string{"title_en": "Gion Daikichi Ranch"})

	require.NoError(t, err)
	assert.Equal(t, "Gion Daikichi Ranch", got["title_en"])
}

func TestClient_PutItem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/menu-items/steak-ju", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, client.PutItem(context.Background(), "menu-items", "steak-ju", map[string]int{"price": 5318}))
}

func TestClient_Write_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"title_ja is required"}`)
	})

	err := client.Put(context.Background(), "hero", map[string]any{})

	require.Error(t, err)
	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, "hero", writeErr.Collection)
	assert.Equal(t, http.StatusBadRequest, writeErr.StatusCode)
	assert.Contains(t, writeErr.Body, "title_ja is required")
	assert.Contains(t, err.Error(), "PUT /hero failed: 400")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_Write_RetriesServerErrors(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.Put(context.Background(), "footer", map[string]any{}))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_Write_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "boom")
	})

	err := client.PutItem(context.Background(), "menu-items", "hitsumabushi", map[string]any{})

	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, http.StatusInternalServerError, writeErr.StatusCode)
	assert.Equal(t, "hitsumabushi", writeErr.ID)
	assert.Contains(t, err.Error(), "PUT /menu-items/hitsumabushi failed: 500 boom")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_Write_TimeoutIsWriteError(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(config.CMS{BaseURL: server.URL, APIKey: "k", Timeout: 50 * time.Millisecond, MaxRetries: 1}, zap.NewNop())

	err := client.Put(context.Background(), "catchcopy", map[string]any{})

	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, 0, writeErr.StatusCode)
	assert.Error(t, writeErr.Err)
}

func TestClient_Write_StopsOnCancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	client.retryDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := client.Put(ctx, "about", map[string]any{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/site-data", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-MICROCMS-API-KEY"))
		_, _ = io.WriteString(w, `{"description_en":"A","tel":"075-746-4129"}`)
	})

	var site entities.SiteData
	require.NoError(t, client.Get(context.Background(), "site-data", &site))

	assert.Equal(t, "A", site.DescriptionEN)
	assert.Equal(t, "075-746-4129", site.Tel)
}

func TestClient_Get_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	var site entities.SiteData
	err := client.Get(context.Background(), "site-data", &site)

	assert.ErrorIs(t, err, ErrNotFound)
	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "site-data", readErr.Collection)
}

func TestClient_GetList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/menu-items", r.URL.Path)
		assert.Equal(t, "category[contains]recommended", r.URL.Query().Get("filters"))
		assert.Equal(t, "sortOrder", r.URL.Query().Get("orders"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		_, _ = io.WriteString(w, `{"contents":[{"id":"hitsumabushi","price":5455,"sortOrder":1},{"id":"steak-ju","price":5318,"sortOrder":2}],"totalCount":2,"offset":0,"limit":100}`)
	})

	var list ListResponse[entities.MenuItem]
	err := client.GetList(context.Background(), "menu-items", ListQuery{
		Filters: "category[contains]recommended",
		Orders:  "sortOrder",
		Limit:   100,
	}, &list)

	require.NoError(t, err)
	require.Len(t, list.Contents, 2)
	assert.Equal(t, "hitsumabushi", list.Contents[0].ID)
	assert.Equal(t, 5318, list.Contents[1].Price)
	assert.Equal(t, 2, list.TotalCount)
}

func TestClient_Upload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.webp")
	require.NoError(t, os.WriteFile(path, []byte("RIFF....WEBP"), 0o600))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/media", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-MICROCMS-API-KEY"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)

		assert.Equal(t, "hero.webp", header.Filename)
		assert.Equal(t, "RIFF....WEBP", string(content))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"url":"https://images.microcms-assets.io/assets/abc/hero.webp"}`)
	})

	img, err := client.Upload(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "https://images.microcms-assets.io/assets/abc/hero.webp", img.URL)
}

func TestClient_Upload_Rejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cow.webp")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, "media API is not allowed")
	})

	_, err := client.Upload(context.Background(), path)

	var uploadErr *UploadError
	require.True(t, errors.As(err, &uploadErr))
	assert.Equal(t, "cow.webp", uploadErr.File)
	assert.Equal(t, http.StatusForbidden, uploadErr.StatusCode)
	assert.Equal(t, "media API is not allowed", uploadErr.Body)
}

func TestClient_Upload_TimeoutIsUploadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.webp")
	require.NoError(t, os.WriteFile(path, []byte("webp"), 0o600))

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(config.CMS{BaseURL: server.URL, APIKey: "k", Timeout: 50 * time.Millisecond, MaxRetries: 1}, zap.NewNop())

	_, err := client.Upload(context.Background(), path)

	var uploadErr *UploadError
	require.True(t, errors.As(err, &uploadErr))
	assert.Equal(t, "farm.webp", uploadErr.File)
	assert.Equal(t, 0, uploadErr.StatusCode)
	var netErr net.Error
	require.True(t, errors.As(err, &netErr))
	assert.True(t, netErr.Timeout())
}

func TestClient_Upload_MissingFile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a missing file")
	})

	_, err := client.Upload(context.Background(), filepath.Join(t.TempDir(), "farm.webp"))

	var uploadErr *UploadError
	require.True(t, errors.As(err, &uploadErr))
	assert.Equal(t, 0, uploadErr.StatusCode)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCalculateRetryDelay(t *testing.T) {
	client := &Client{retryDelay: time.Second}

	assert.Equal(t, 1*time.Second, client.calculateRetryDelay(1))
	assert.Equal(t, 2*time.Second, client.calculateRetryDelay(2))
	assert.Equal(t, 4*time.Second, client.calculateRetryDelay(3))
	assert.Equal(t, maxRetryDelay, client.calculateRetryDelay(10))
}

func TestCategoryQuery(t *testing.T) {
	q := CategoryQuery("collaboration")
	assert.Equal(t, "filters=category%5Bcontains%5Dcollaboration&orders=sortOrder", q.values().Encode())
}
