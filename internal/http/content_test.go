package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1129kyoto/sitecontent/internal/entities"
	"github.com/1129kyoto/sitecontent/internal/site"
)

type fakeSource struct {
	snap *site.Snapshot
	err  error
}

func (f *fakeSource) Snapshot() (*site.Snapshot, error) {
	return f.snap, f.err
}

func loadedSource() *fakeSource {
	return &fakeSource{snap: &site.Snapshot{
		Content: entities.Content{
			Site: &entities.SiteData{
				SiteMeta: entities.SiteMeta{DescriptionEN: "Wagyu restaurant in Gion."},
				Footer: entities.Footer{SNSLinks: []entities.SNSLink{
					{Platform: []entities.Platform{entities.PlatformInstagram}, URL: "https://x"},
				}},
			},
			Recommended: []entities.MenuItem{{NameJA: "ステーキ重", NameEN: "Steak", Price: 5318, DescriptionEN: "Grilled."}},
		},
		FetchedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}}
}

func serve(source SnapshotSource, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := NewRouter(RouterConfig{Content: source, Version: "test"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestContentController_LLMsText(t *testing.T) {
	w := serve(loadedSource(), "/llms.txt")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))
	assert.Equal(t, "Sun, 01 Mar 2026 09:00:00 GMT", w.Header().Get("Last-Modified"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "# Gion Daikichi Ranch (祇園だいきち牧場)\n\n> Wagyu restaurant in Gion.\n"))
	assert.Contains(t, body, "- **Steak** — ¥5,318 (tax included)\n  Grilled.\n")
	assert.Contains(t, body, "- Instagram: https://x\n")
}

func TestContentController_NotLoaded(t *testing.T) {
	w := serve(&fakeSource{err: site.ErrNoSnapshot}, "/llms.txt")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = serve(&fakeSource{err: errors.New("unexpected")}, "/jsonld/en")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestContentController_JSONLD(t *testing.T) {
	t.Run("japanese", func(t *testing.T) {
		w := serve(loadedSource(), "/jsonld/ja")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/ld+json; charset=utf-8", w.Header().Get("Content-Type"))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "祇園だいきち牧場", doc["name"])
		assert.Equal(t, []any{"https://x"}, doc["sameAs"])

		menu := doc["hasMenu"].(map[string]any)
		sections := menu["hasMenuSection"].([]any)
		require.Len(t, sections, 1)
		assert.Equal(t, "おすすめメニュー", sections[0].(map[string]any)["name"])
	})

	t.Run("language is case-insensitive", func(t *testing.T) {
		w := serve(loadedSource(), "/jsonld/EN")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name": "Gion Daikichi Ranch"`)
	})

	t.Run("unsupported language", func(t *testing.T) {
		w := serve(loadedSource(), "/jsonld/fr")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unsupported language")
	})
}
