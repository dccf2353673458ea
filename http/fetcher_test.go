package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jarvis322/namescan"
	scanhttp "github.com/jarvis322/namescan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body bytes on success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte("%PDF-1.7 fake body"))
		}))
		defer srv.Close()

		f := scanhttp.NewFetcher()
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.7 fake body"), body)
	})

	t.Run("reports non-200 status as unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
		}))
		defer srv.Close()

		f := scanhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Equal(t, namescan.EUNAVAILABLE, namescan.ErrorCode(err))
		assert.Contains(t, namescan.ErrorMessage(err), "HTTP 404")
	})

	t.Run("reports transport failure as unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
		srv.Close() // connection refused from here on

		f := scanhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Equal(t, namescan.EUNAVAILABLE, namescan.ErrorCode(err))
	})

	t.Run("honors per-request timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		f := scanhttp.NewFetcher(scanhttp.WithTimeout(20 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Equal(t, namescan.EUNAVAILABLE, namescan.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		f := scanhttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := f.Fetch(ctx, srv.URL)

		assert.Equal(t, namescan.EUNAVAILABLE, namescan.ErrorCode(err))
	})

	t.Run("rejects malformed URL", func(t *testing.T) {
		t.Parallel()

		f := scanhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "://not-a-url")

		assert.Equal(t, namescan.EINVALID, namescan.ErrorCode(err))
	})
}
