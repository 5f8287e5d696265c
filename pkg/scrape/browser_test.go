package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/go-rod/rod/lib/launcher"
)

func TestBrowserDescriberClosesSlowPage(t *testing.T) {
	bin, ok := launcher.LookPath()
	if !ok {
		t.Skip("no chrome binary on this machine")
	}

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><p>loading"))
		w.(http.Flusher).Flush()
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	d := NewBrowserDescriber(bin)
	d.timeout = 500 * time.Millisecond
	t.Cleanup(func() {
		close(release)
		d.Close()
	})

	browser, err := d.connect()
	assert.Equal(t, nil, err)
	before, err := browser.Pages()
	assert.Equal(t, nil, err)

	_, err = d.Describe(context.Background(), srv.URL)
	assert.NotEqual(t, nil, err)

	after, err := browser.Pages()
	assert.Equal(t, nil, err)
	assert.Equal(t, len(before), len(after))
}
