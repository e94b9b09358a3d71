package hackernews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client())
}

func TestTopStoryIDs(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/topstories.json", r.URL.Path)
		_, _ = w.Write([]byte(`[3, 1, 2]`))
	})

	ids, err := c.TopStoryIDs(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2}, ids)
}

func TestTopStoryIDsBadStatus(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.TopStoryIDs(context.Background())
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, KindBadStatus, fe.Kind)
	require.Equal(t, http.StatusInternalServerError, fe.StatusCode)
	require.Equal(t, "Request failed with status code: 500", Message(err))
}

func TestTopStoryIDsBadBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})

	_, err := c.TopStoryIDs(context.Background())
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, KindBadBody, fe.Kind)
	require.True(t, strings.HasPrefix(Message(err), "Unable to read the response: "))
}

func TestStoryFetchAndDecode(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/item/42.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"by":"alice","id":42,"score":7,"time":100,"title":"hello"}`))
	})

	s, err := c.Story(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, 42, s.ID)
	require.Equal(t, "alice", s.By)
	require.Empty(t, s.Kids)
}

func TestStoryDecodeErrorCarriesURL(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":42}`))
	})

	_, err := c.Story(context.Background(), 42)
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, KindBadBody, fe.Kind)
	require.True(t, strings.HasSuffix(fe.URL, "/v0/item/42.json"))
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := NewClient(srv.URL, nil)
	srv.Close()

	_, err := c.Story(context.Background(), 1)
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, KindNetwork, fe.Kind)
	require.True(t, strings.HasPrefix(Message(err), "Unable to reach Hacker News: "))
}

func TestNewClientTrimsBaseURL(t *testing.T) {
	c := NewClient("http://example.test/", nil)
	require.Equal(t, "http://example.test/v0/topstories.json", c.topStoriesURL())
	require.Equal(t, "http://example.test/v0/item/5.json", c.itemURL(5))

	d := NewClient("", nil)
	require.Equal(t, DefaultBaseURL+"/v0/topstories.json", d.topStoriesURL())
}

func TestMessageForForeignError(t *testing.T) {
	require.Equal(t, "", Message(nil))
	require.Equal(t, "Something went wrong: oops", Message(errors.New("oops")))
}
