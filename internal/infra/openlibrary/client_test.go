package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/config"
	"bookshelf/internal/domain/service"
	"bookshelf/internal/errors"
)

const workDoc = `{
  "numFound": 1,
  "docs": [{
    "key": "/works/OL27448W",
    "title": "The Lord of the Rings",
    "subtitle": "",
    "alternative_title": ["Der Herr der Ringe"],
    "author_name": ["J.R.R. Tolkien"],
    "first_publish_year": 1954,
    "cover_i": 14625765,
    "ebook_access": "borrowable",
    "edition_count": 212,
    "format": ["paperback"],
    "first_sentence": ["When Mr. Bilbo Baggins of Bag End announced..."],
    "number_of_pages_median": 1193,
    "ratings_average": 4.52,
    "ratings_count": 1063,
    "want_to_read_count": 17452
  }]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(&config.OpenLibraryConfig{
		BaseURL:           server.URL,
		UserAgent:         "bookshelf-test",
		RequestsPerSecond: 1000,
		MaxRetries:        2,
		Timeout:           time.Second,
	}, nil)
	client.backoff = time.Millisecond

	return client
}

func TestFetchWork(t *testing.T) {
	var gotQuery, gotAgent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(workDoc))
	})

	meta, err := client.FetchWork(context.Background(), "OL27448W")
	require.NoError(t, err)

	assert.Equal(t, "key:/works/OL27448W", gotQuery)
	assert.Equal(t, "bookshelf-test", gotAgent)
	assert.Equal(t, "/works/OL27448W", meta.Key)
	assert.Equal(t, "The Lord of the Rings", meta.Title)
	assert.Equal(t, "Der Herr der Ringe", meta.AlternativeTitle)
	assert.Equal(t, []string{"J.R.R. Tolkien"}, meta.Authors)
	assert.Equal(t, 1954, meta.FirstPublishYear)
	assert.Equal(t, int64(14625765), meta.CoverID)
	assert.Equal(t, "borrowable", meta.EbookAccess)
	assert.Equal(t, "paperback", meta.Format)
	assert.Equal(t, 1193, meta.NumberOfPages)
	assert.InDelta(t, 4.52, meta.RatingsAverage, 0.0001)
	assert.Equal(t, Platform, meta.Source)
}

func TestFetchWork_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"numFound":0,"docs":[]}`))
	})

	_, err := client.FetchWork(context.Background(), "/works/OL1W")
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrMetadataNotFound))
}

func TestFetchWork_EmptyKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.FetchWork(context.Background(), "  ")
	assert.True(t, errors.Is(err, service.ErrMetadataNotFound))
}

func TestSearchWorks_RespectsLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tolkien", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"numFound":2,"docs":[{"key":"/works/OL1W","title":"A"},{"key":"/works/OL2W","title":"B"}]}`))
	})

	results, err := client.SearchWorks(context.Background(), "tolkien", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "/works/OL1W", results[0].Key)
}

func TestSearchWorks_EmptyQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	})

	results, err := client.SearchWorks(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGet_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)

			return
		}
		_, _ = w.Write([]byte(workDoc))
	})

	meta, err := client.FetchWork(context.Background(), "OL27448W")
	require.NoError(t, err)
	assert.Equal(t, "The Lord of the Rings", meta.Title)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGet_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchWork(context.Background(), "OL27448W")
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrMetadataNotFound))
	assert.Equal(t, int32(3), calls.Load())
}

func TestGet_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.SearchWorks(context.Background(), "x", 5)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
