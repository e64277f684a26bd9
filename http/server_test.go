package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/schemagen"
	"github.com/fwojciec/schemagen/goquery"
	schemahttp "github.com/fwojciec/schemagen/http"
	"github.com/fwojciec/schemagen/mock"
	"github.com/fwojciec/schemagen/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pageScraper(html string) schemagen.Scraper {
	return &scrape.Scraper{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return html, nil
			},
		},
		Extractor: goquery.NewExtractor(),
	}
}

func postScrape(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/scrape", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestServer_GetData(t *testing.T) {
	t.Parallel()

	server := schemahttp.NewServer(pageScraper(""), discardLogger())
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/getData", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"working"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServer_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("returns extracted data and requested schemas", func(t *testing.T) {
		t.Parallel()

		server := schemahttp.NewServer(pageScraper(`<h1>Hello</h1>`), discardLogger())

		rec, resp := postScrape(t, server.Handler(),
			`{"url":"https://example.com/posts/hello-world","generateArticle":true,"generateBreadcrumb":true,"generateFaq":true}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, true, resp["success"])
		data := resp["data"].(map[string]any)
		extracted := data["extractedData"].(map[string]any)
		assert.Equal(t, "Hello", extracted["title"])
		assert.Equal(t, []any{}, extracted["faqs"])

		schemas := data["schemas"].(map[string]any)
		assert.Contains(t, schemas, "article")
		assert.Contains(t, schemas, "breadcrumb")
		assert.NotContains(t, schemas, "faq")
		article := schemas["article"].(map[string]any)
		assert.Equal(t, "Hello", article["headline"])
	})

	t.Run("omits schemas whose flag is missing", func(t *testing.T) {
		t.Parallel()

		server := schemahttp.NewServer(pageScraper(`<h1>Hello</h1>`), discardLogger())

		rec, resp := postScrape(t, server.Handler(), `{"url":"https://example.com/"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		data := resp["data"].(map[string]any)
		assert.Equal(t, map[string]any{}, data["schemas"])
	})

	t.Run("rejects invalid URL", func(t *testing.T) {
		t.Parallel()

		server := schemahttp.NewServer(pageScraper(""), discardLogger())

		rec, resp := postScrape(t, server.Handler(), `{"url":"not-a-url","generateArticle":true}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Invalid request data: Please enter a valid URL", resp["error"])
		assert.NotContains(t, resp, "data")
	})

	t.Run("rejects missing URL", func(t *testing.T) {
		t.Parallel()

		server := schemahttp.NewServer(pageScraper(""), discardLogger())

		rec, resp := postScrape(t, server.Handler(), `{"generateFaq":true}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request data: URL is required", resp["error"])
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		server := schemahttp.NewServer(pageScraper(""), discardLogger())

		rec, resp := postScrape(t, server.Handler(), `{"url":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, resp["success"])
		assert.Contains(t, resp["error"], "Invalid request data")
	})

	t.Run("reports scrape failures as server errors", func(t *testing.T) {
		t.Parallel()

		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer upstream.Close()

		scraper := &scrape.Scraper{Fetcher: schemahttp.NewFetcher(), Extractor: goquery.NewExtractor()}
		server := schemahttp.NewServer(scraper, discardLogger())

		rec, resp := postScrape(t, server.Handler(), `{"url":"`+upstream.URL+`/page"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "failed to scrape URL: HTTP error! status: 403", resp["error"])
	})

	t.Run("recovers from panics", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*schemagen.ExtractedData, error) {
				panic("unexpected")
			},
		}
		server := schemahttp.NewServer(scraper, discardLogger())

		rec, resp := postScrape(t, server.Handler(), `{"url":"https://example.com/"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal error", resp["error"])
	})
}

func TestServer_Options(t *testing.T) {
	t.Parallel()

	t.Run("serves metrics handler when configured", func(t *testing.T) {
		t.Parallel()

		metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("schemagen_scrapes_total 0\n"))
		})
		server := schemahttp.NewServer(pageScraper(""), discardLogger(), schemahttp.WithMetricsHandler(metrics))
		rec := httptest.NewRecorder()

		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "schemagen_scrapes_total")
	})

	t.Run("has no metrics route by default", func(t *testing.T) {
		t.Parallel()

		server := schemahttp.NewServer(pageScraper(""), discardLogger())
		rec := httptest.NewRecorder()

		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("runs extra middleware with request ID in context", func(t *testing.T) {
		t.Parallel()

		var seen string
		mw := func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = schemahttp.RequestID(r.Context())
				next.ServeHTTP(w, r)
			})
		}
		server := schemahttp.NewServer(pageScraper(""), discardLogger(), schemahttp.WithMiddleware(mw))
		rec := httptest.NewRecorder()

		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/getData", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})
}

func TestServer_Serve(t *testing.T) {
	t.Parallel()

	server := schemahttp.NewServer(pageScraper(""), discardLogger())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/getData")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestErrorStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusBadRequest, schemahttp.ErrorStatusCode(schemagen.EINVALID))
	assert.Equal(t, http.StatusInternalServerError, schemahttp.ErrorStatusCode(schemagen.EUNAVAILABLE))
	assert.Equal(t, http.StatusInternalServerError, schemahttp.ErrorStatusCode(schemagen.ErrorCode(errors.New("boom"))))
}
