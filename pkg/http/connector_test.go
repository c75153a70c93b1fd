package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type echoBody struct {
	Text string `json:"text"`
}

func newTestConnector(t *testing.T, baseURL string, opts ...HttpOpts) *Connector {
	t.Helper()
	return NewConnector(&ConnectorConfig{
		BaseURL: baseURL,
		Logger:  zaptest.NewLogger(t),
	}, opts...)
}

func TestDoRequest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/echo", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))

		var in echoBody
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(echoBody{Text: in.Text + "!"})
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL, WithRequestLogging())
	ctx := ctxzap.ToContext(context.Background(), zaptest.NewLogger(t))

	var out echoBody
	err := c.DoRequest(ctx, http.MethodPost, "/echo", echoBody{Text: "hut"}, &out, WithHeader("X-Test", "yes"))
	require.NoError(t, err)
	assert.Equal(t, "hut!", out.Text)
}

func TestDoRequest_OverrideURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/other", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestConnector(t, "http://unused.invalid")
	err := c.DoRequest(context.Background(), http.MethodPost, "", echoBody{}, nil, WithURL(srv.URL+"/other"))
	require.NoError(t, err)
}

func TestDoRequest_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"error":"form not found"}`)
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	err := c.DoRequest(context.Background(), http.MethodPost, "", echoBody{}, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Equal(t, `{"error":"form not found"}`, httpErr.Message)
	assert.Contains(t, err.Error(), "HTTP 422")
}

func TestDoRequest_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestConnector(t, url, WithConnClientTimeout(time.Second))
	err := c.DoRequest(context.Background(), http.MethodPost, "", echoBody{}, nil)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.NotNil(t, errors.Unwrap(err))
}

func TestDoRequest_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json")
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	var out echoBody
	err := c.DoRequest(context.Background(), http.MethodGet, "", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestWithAuthToken(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL, WithAuthToken("secret"))
	require.NoError(t, c.DoRequest(context.Background(), http.MethodGet, "", nil, nil))
	require.NoError(t, c.DoRequest(context.Background(), http.MethodGet, "", nil, nil, WithHeader("Authorization", "Basic abc")))

	empty := newTestConnector(t, srv.URL, WithAuthToken(""))
	require.NoError(t, empty.DoRequest(context.Background(), http.MethodGet, "", nil, nil))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Bearer secret", "Basic abc", ""}, got)
}

// truncatedServer announces a 100-byte body, writes 10 bytes and drops the connection
func truncatedServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, buf, err := http.NewResponseController(w).Hijack()
		if !assert.NoError(t, err) {
			return
		}
		defer conn.Close()
		fmt.Fprintf(buf, "HTTP/1.1 %d %s\r\nContent-Length: 100\r\n\r\n0123456789", status, http.StatusText(status))
		buf.Flush()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDoRequest_TruncatedSuccessBody(t *testing.T) {
	srv := truncatedServer(t, http.StatusOK)
	c := newTestConnector(t, srv.URL)

	err := c.DoRequest(context.Background(), http.MethodPost, "", echoBody{Text: "hut"}, nil)
	assert.NoError(t, err)
}

func TestDoRequest_TruncatedErrorBodyKeepsStatus(t *testing.T) {
	srv := truncatedServer(t, http.StatusBadGateway)
	c := newTestConnector(t, srv.URL)

	err := c.DoRequest(context.Background(), http.MethodPost, "", echoBody{}, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "0123456789", httpErr.Message)
}
