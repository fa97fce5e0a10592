package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reggiebaraza/photospot/internal/cache"
	"github.com/reggiebaraza/photospot/internal/catalog"
)

const searchResponse = `{
	"results": [
		{"urls": {"regular": "https://images.example/photo-1.jpg"}}
	]
}`

func TestPhotoByQuery(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchResponse))
	}))
	defer srv.Close()

	u := NewUnsplash(srv.Client(), "test-key", cache.NewMemory())
	u.baseURL = srv.URL

	got, err := u.PhotoByQuery(context.Background(), "berlin skyline")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/photo-1.jpg", got)

	// Second lookup is served from cache.
	got, err = u.PhotoByQuery(context.Background(), "berlin skyline")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/photo-1.jpg", got)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestPhotoByQueryNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	u := NewUnsplash(srv.Client(), "test-key", cache.NewMemory())
	u.baseURL = srv.URL

	got, err := u.PhotoByQuery(context.Background(), "nothing here")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestUnconfiguredClient(t *testing.T) {
	u := NewUnsplash(http.DefaultClient, "", cache.NewMemory())
	assert.False(t, u.Configured())

	_, err := u.PhotoByQuery(context.Background(), "anything")
	assert.Error(t, err)

	spots := []catalog.Spot{{Title: "Spot", ImageQuery: "spot"}}
	out := u.EnrichSpots(context.Background(), spots, 10)
	assert.Equal(t, "", out[0].ImageURL)
}

func TestEnrichSpots(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(searchResponse))
	}))
	defer srv.Close()

	store := cache.NewMemory()
	store.Set("unsplash:cached query:landscape", "https://images.example/cached.jpg", cache.TTLImages)

	u := NewUnsplash(srv.Client(), "test-key", store)
	u.baseURL = srv.URL
	u.delay = time.Millisecond

	spots := []catalog.Spot{
		{Title: "Cached", ImageQuery: "cached query"},
		{Title: "Fresh", ImageQuery: "fresh query"},
		{Title: "Keeps existing", ImageURL: "https://images.example/own.jpg"},
		{Title: "Over budget", ImageQuery: "another query"},
	}

	out := u.EnrichSpots(context.Background(), spots, 1)

	assert.Equal(t, "https://images.example/cached.jpg", out[0].ImageURL)
	assert.Equal(t, "https://images.example/photo-1.jpg", out[1].ImageURL)
	assert.Equal(t, "https://images.example/own.jpg", out[2].ImageURL)
	assert.Equal(t, "", out[3].ImageURL)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}
