package news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"cryptochat/internal/model"
)

func TestCryptoPanicPosts(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"title": "BTC breaks out", "url": "https://cryptopanic.com/news/1/btc", "published_at": "2026-03-14T08:15:00Z",
			 "domain": "coindesk.com", "votes": {"positive": 12, "negative": 2, "important": 1}},
			{"title": "ETH dips", "url": "https://cryptopanic.com/news/2/eth", "published_at": "2026-03-13T10:00:00Z",
			 "source": {"title": "The Block", "domain": "theblock.co"}, "sentiment": "Bearish"}
		]}`))
	}))
	defer srv.Close()

	client := NewCryptoPanicClient("test-key")
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Posts(context.Background(), Query{
		Currencies: "bitcoin",
		Filter:     FilterBullish,
		PageSize:   3,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, "/api/v1/posts/", got.URL.Path)

	params := got.URL.Query()
	assert.Equal(t, "test-key", params.Get("auth_token"))
	assert.Equal(t, "true", params.Get("public"))
	assert.Equal(t, "bitcoin", params.Get("currencies"))
	assert.Equal(t, "bullish", params.Get("filter"))
	assert.Equal(t, "3", params.Get("page_size"))
	assert.Equal(t, false, params.Has("q"))
	assert.Equal(t, false, params.Has("kind"))

	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "BTC breaks out", articles[0].Title)
	assert.Equal(t, "coindesk.com", articles[0].Domain)
	assert.Equal(t, model.SentimentBullish, articles[0].Sentiment)
	assert.Equal(t, time.Date(2026, 3, 14, 8, 15, 0, 0, time.UTC), articles[0].PublishedAt)

	assert.Equal(t, "theblock.co", articles[1].Domain)
	assert.Equal(t, model.SentimentBearish, articles[1].Sentiment)
}

func TestCryptoPanicStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewCryptoPanicClient("bad-key")
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Posts(context.Background(), Query{Kind: "news"})

	var statusErr *StatusError
	assert.Equal(t, true, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.HTTPStatus())
}

func TestVoteSentiment(t *testing.T) {
	tests := []struct {
		name  string
		votes cpVotes
		want  string
	}{
		{"important wins", cpVotes{Positive: 1, Negative: 1, Important: 5}, model.SentimentImportant},
		{"positive", cpVotes{Positive: 3, Negative: 1}, model.SentimentBullish},
		{"negative", cpVotes{Positive: 1, Negative: 4}, model.SentimentBearish},
		{"tie", cpVotes{Positive: 2, Negative: 2}, model.SentimentNeutral},
		{"no votes", cpVotes{}, model.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cpPost{Votes: tt.votes}.sentiment())
		})
	}
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
