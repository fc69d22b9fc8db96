package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("ranked candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "Riyadh", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"name":"Riyadh","display_name":"Riyadh, Riyadh Province, Saudi Arabia","lat":"24.6877","lon":"46.7219"},
				{"display_name":"Riyadh Street, Jeddah","lat":"21.5","lon":"39.2"},
				{"name":"broken","lat":"x","lon":"1"}
			]`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, nil)
		places := client.Search(ctx, " Riyadh ")
		require.Len(t, places, 2)
		assert.Equal(t, Place{Name: "Riyadh", DisplayName: "Riyadh, Riyadh Province, Saudi Arabia", Lat: 24.6877, Lon: 46.7219}, places[0])
		assert.Equal(t, "Riyadh Street", places[1].Name)

		first, ok := client.FirstMatch(ctx, "Riyadh")
		assert.True(t, ok)
		assert.Equal(t, "Riyadh", first.Name)
	})

	t.Run("short query makes no request", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, nil)
		assert.Empty(t, client.Search(ctx, "R"))
		assert.Empty(t, client.Search(ctx, "  "))
		assert.Zero(t, calls.Load())
	})

	t.Run("two arabic letters are enough", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, nil)
		client.Search(ctx, "جد")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("errors become no results", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("q") == "bad json" {
				_, _ = w.Write([]byte(`{`))
				return
			}
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, nil)
		assert.Empty(t, client.Search(ctx, "Jeddah"))
		assert.Empty(t, client.Search(ctx, "bad json"))

		_, ok := client.FirstMatch(ctx, "Jeddah")
		assert.False(t, ok)
	})

	t.Run("unreachable service", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		client := NewClient(srv.URL, time.Second, nil)
		assert.Empty(t, client.Search(ctx, "Jeddah"))
	})
}

func TestSearcher_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("newer lookup cancels the previous one", func(t *testing.T) {
		started := make(chan struct{})
		searcher := newSearcher(func(ctx context.Context, query string) []Place {
			if query == "Ri" {
				close(started)
				<-ctx.Done()
				return nil
			}
			return []Place{{Name: query}}
		})

		result := make(chan error, 1)
		go func() {
			_, err := searcher.Lookup(ctx, "user-1", "Ri")
			result <- err
		}()
		<-started

		places, err := searcher.Lookup(ctx, "user-1", "Riyadh")
		require.NoError(t, err)
		assert.Equal(t, []Place{{Name: "Riyadh"}}, places)

		select {
		case err := <-result:
			assert.ErrorIs(t, err, ErrSuperseded)
		case <-time.After(time.Second):
			t.Fatal("superseded lookup did not return")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		searcher := newSearcher(func(_ context.Context, query string) []Place {
			return []Place{{Name: query}}
		})

		a, err := searcher.Lookup(ctx, "user-1", "Riyadh")
		require.NoError(t, err)
		b, err := searcher.Lookup(ctx, "user-2", "Jeddah")
		require.NoError(t, err)
		assert.Equal(t, "Riyadh", a[0].Name)
		assert.Equal(t, "Jeddah", b[0].Name)
		assert.Empty(t, searcher.inflight)
	})
}
