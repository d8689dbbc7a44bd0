package search

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lean-forge/proofcheck/internal/cache"
)

// fakeTransport counts round trips and delegates to a canned responder.
type fakeTransport struct {
	calls   int
	respond func(req *http.Request) (*http.Response, error)
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.calls++
	return f.respond(req)
}

// timeoutError satisfies net.Error with Timeout() == true.
type timeoutError struct{}

func (timeoutError) Error() string   { return "request timed out" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(t *testing.T, transport *fakeTransport, withCache bool) *Client {
	t.Helper()

	opts := Options{
		Endpoint:      "http://search.test/json",
		MaxRetries:    3,
		RetryInterval: time.Millisecond,
	}

	if withCache {
		c, err := cache.New(t.TempDir(), time.Hour)
		require.NoError(t, err)
		opts.Cache = c
	}

	client := NewClient(opts)
	client.httpClient.Transport = transport

	return client
}

func TestSearch_EmptyQueryFailsWithoutNetwork(t *testing.T) {
	transport := &fakeTransport{}
	client := newTestClient(t, transport, false)

	_, err := client.Search("   ", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuery)
	assert.Equal(t, 0, transport.calls)
}

func TestSearch_OverlongQueryFailsWithoutNetwork(t *testing.T) {
	transport := &fakeTransport{}
	client := newTestClient(t, transport, false)

	_, err := client.Search(strings.Repeat("a", 501), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuery)
	assert.Equal(t, 0, transport.calls)
}

func TestSearch_QueryAtLimitIsAccepted(t *testing.T) {
	transport := &fakeTransport{
		respond: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"hits":[]}`), nil
		},
	}
	client := newTestClient(t, transport, false)

	hits, err := client.Search(strings.Repeat("a", 500), true)
	require.NoError(t, err)
	assert.Empty(t, hits)
	assert.Equal(t, 1, transport.calls)
}

func TestSearch_Success(t *testing.T) {
	transport := &fakeTransport{
		respond: func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Nat.add", req.URL.Query().Get("q"))
			return jsonResponse(200, `{"hits":[
				{"name":"Nat.add","type":"ℕ → ℕ → ℕ","module":"Mathlib.Init","doc":"Addition of naturals."}
			]}`), nil
		},
	}
	client := newTestClient(t, transport, false)

	hits, err := client.Search("Nat.add", true)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Nat.add", hits[0].Name)
	assert.Equal(t, "ℕ → ℕ → ℕ", hits[0].Type)
	assert.Equal(t, "Mathlib.Init", hits[0].Module)
}

func TestSearch_TimeoutRetriedExactlyMaxRetriesTimes(t *testing.T) {
	transport := &fakeTransport{
		respond: func(req *http.Request) (*http.Response, error) {
			return nil, timeoutError{}
		},
	}
	client := newTestClient(t, transport, false)

	_, err := client.Search("Nat.add", true)
	require.Error(t, err)
	assert.Equal(t, 3, transport.calls, "3 consecutive timeouts with max_retries=3 must make exactly 3 attempts")
}

func TestSearch_TimeoutThenSuccess(t *testing.T) {
	transport := &fakeTransport{}
	transport.respond = func(req *http.Request) (*http.Response, error) {
		if transport.calls == 1 {
			return nil, timeoutError{}
		}

		return jsonResponse(200, `{"hits":[{"name":"Nat.add","type":"ℕ"}]}`), nil
	}
	client := newTestClient(t, transport, false)

	hits, err := client.Search("Nat.add", true)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.Equal(t, 2, transport.calls)
}

func TestSearch_NotFoundFailsWithoutRetry(t *testing.T) {
	transport := &fakeTransport{
		respond: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(404, "not here"), nil
		},
	}
	client := newTestClient(t, transport, false)

	_, err := client.Search("Nat.add", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, 1, transport.calls)
}

func TestSearch_ServerErrorFailsWithoutRetry(t *testing.T) {
	transport := &fakeTransport{
		respond: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(500, "boom"), nil
		},
	}
	client := newTestClient(t, transport, false)

	_, err := client.Search("Nat.add", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
	assert.Equal(t, 1, transport.calls)
}

func TestSearch_MalformedJSONFailsWithoutRetry(t *testing.T) {
	transport := &fakeTransport{
		respond: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, "<html>nope</html>"), nil
		},
	}
	client := newTestClient(t, transport, false)

	_, err := client.Search("Nat.add", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
	assert.Equal(t, 1, transport.calls)
}

func TestSearch_APIErrorFieldFailsWithoutRetry(t *testing.T) {
	transport := &fakeTransport{
		respond: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"error":"unknown identifier"}`), nil
		},
	}
	client := newTestClient(t, transport, false)

	_, err := client.Search("Nat.add", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown identifier")
	assert.Equal(t, 1, transport.calls)
}

func TestSearch_CacheHitSkipsNetwork(t *testing.T) {
	transport := &fakeTransport{
		respond: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"hits":[{"name":"Nat.add","type":"ℕ"}]}`), nil
		},
	}
	client := newTestClient(t, transport, true)

	hits, err := client.Search("Nat.add", true)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 1, transport.calls)

	// Second search served from cache
	hits, err = client.Search("Nat.add", true)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Nat.add", hits[0].Name)
	assert.Equal(t, 1, transport.calls, "cache hit must not touch the network")
}

func TestSearch_CacheBypass(t *testing.T) {
	transport := &fakeTransport{
		respond: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"hits":[]}`), nil
		},
	}
	client := newTestClient(t, transport, true)

	_, err := client.Search("Nat.add", true)
	require.NoError(t, err)

	_, err = client.Search("Nat.add", false)
	require.NoError(t, err)
	assert.Equal(t, 2, transport.calls, "use_cache=false must always hit the network")
}

func TestSearch_SuccessWritesCache(t *testing.T) {
	transport := &fakeTransport{
		respond: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"hits":[{"name":"Nat.add","type":"ℕ"}]}`), nil
		},
	}

	store, err := cache.New(t.TempDir(), time.Hour)
	require.NoError(t, err)

	client := NewClient(Options{
		Endpoint:      "http://search.test/json",
		MaxRetries:    3,
		RetryInterval: time.Millisecond,
		Cache:         store,
	})
	client.httpClient.Transport = transport

	_, err = client.Search("Nat.add", true)
	require.NoError(t, err)

	raw, ok := store.Get("Nat.add")
	require.True(t, ok)

	var resp struct {
		Hits []Hit `json:"hits"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Len(t, resp.Hits, 1)
}
