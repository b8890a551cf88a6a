package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"coursebook/internal/catalog"
	"coursebook/internal/site"
)

// SiteInstance represents a running HTTP test server for the site.
type SiteInstance struct {
	BaseURL string
	// Client does not follow redirects so tests can inspect them.
	Client *http.Client
	Close  func()
}

// StartSite launches an in-memory HTTP server for cat.
func StartSite(t *testing.T, cat *catalog.Catalog) *SiteInstance {
	t.Helper()
	handler, err := site.NewHandler(site.Options{Catalog: cat, Logger: QuietLogger()})
	if err != nil {
		t.Fatalf("new site handler: %v", err)
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := server.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &SiteInstance{
		BaseURL: server.URL,
		Client:  client,
		Close:   server.Close,
	}
}
