package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/jarvis322/namescan"
	scanhttp "github.com/jarvis322/namescan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapSource_DiscoverLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns locations from urlset", func(t *testing.T) {
		t.Parallel()

		mux := nethttp.NewServeMux()
		mux.HandleFunc("/sitemap.xml", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
				<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
					<url><loc>https://example.gov/files/a.pdf</loc></url>
					<url><loc>https://example.gov/files/b.pdf</loc></url>
				</urlset>`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		src := scanhttp.NewSitemapSource(scanhttp.NewFetcher())

		links, err := src.DiscoverLinks(context.Background(), srv.URL+"/library")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "https://example.gov/files/a.pdf", links[0].URL)
		assert.Equal(t, "https://example.gov/files/b.pdf", links[1].URL)
		assert.Empty(t, links[0].Text)
	})

	t.Run("follows a sitemap index one level deep", func(t *testing.T) {
		t.Parallel()

		var srvURL string
		mux := nethttp.NewServeMux()
		mux.HandleFunc("/sitemap.xml", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte(`<sitemapindex>
				<sitemap><loc>` + srvURL + `/sitemap-files.xml</loc></sitemap>
			</sitemapindex>`))
		})
		mux.HandleFunc("/sitemap-files.xml", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte(`<urlset>
				<url><loc>https://example.gov/files/c.pdf</loc></url>
			</urlset>`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()
		srvURL = srv.URL

		src := scanhttp.NewSitemapSource(scanhttp.NewFetcher())

		links, err := src.DiscoverLinks(context.Background(), srv.URL)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.gov/files/c.pdf", links[0].URL)
	})

	t.Run("deduplicates locations", func(t *testing.T) {
		t.Parallel()

		mux := nethttp.NewServeMux()
		mux.HandleFunc("/sitemap.xml", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte(`<urlset>
				<url><loc>https://example.gov/files/a.pdf</loc></url>
				<url><loc>https://example.gov/files/a.pdf</loc></url>
			</urlset>`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		src := scanhttp.NewSitemapSource(scanhttp.NewFetcher())

		links, err := src.DiscoverLinks(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Len(t, links, 1)
	})

	t.Run("reports missing sitemap as unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.NewServeMux()) // 404 for everything
		defer srv.Close()

		src := scanhttp.NewSitemapSource(scanhttp.NewFetcher())

		_, err := src.DiscoverLinks(context.Background(), srv.URL)

		assert.Equal(t, namescan.EUNAVAILABLE, namescan.ErrorCode(err))
	})

	t.Run("reports malformed XML as invalid", func(t *testing.T) {
		t.Parallel()

		mux := nethttp.NewServeMux()
		mux.HandleFunc("/sitemap.xml", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte(`<urlset><url></urlset`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		src := scanhttp.NewSitemapSource(scanhttp.NewFetcher())

		_, err := src.DiscoverLinks(context.Background(), srv.URL)

		assert.Equal(t, namescan.EINVALID, namescan.ErrorCode(err))
	})
}
