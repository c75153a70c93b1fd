package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/futig/touchdown/internal/config"
	"github.com/futig/touchdown/internal/entity"
	"github.com/futig/touchdown/internal/pkg/metrics"
	pkghttp "github.com/futig/touchdown/pkg/http"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig(endpoint string) config.RelayConnectorConfig {
	return config.RelayConnectorConfig{Endpoint: endpoint}
}

func samplePayload() *entity.RelayPayload {
	return &entity.RelayPayload{
		Subject:       entity.RelaySubject,
		ApplicantName: "Alex",
		Status:        "Free Agent",
		Goals:         "Casual fun",
		LoveLanguages: "Quality time, Gifts",
		Summary:       "Applicant: Alex",
	}
}

func TestConnector_Configured(t *testing.T) {
	logger := zaptest.NewLogger(t)

	assert.False(t, NewConnector(testConfig("https://formspree.io/f/yourFormIdHere"), logger).Configured())
	assert.False(t, NewConnector(testConfig(""), logger).Configured())
	assert.True(t, NewConnector(testConfig("https://formspree.io/f/xjkendbg"), logger).Configured())
}

func TestConnector_SendPostsJSON(t *testing.T) {
	received := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/f/xjkendbg", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		received <- body
		io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL+"/f/xjkendbg"), zaptest.NewLogger(t))
	require.NoError(t, c.Send(context.Background(), samplePayload()))
	body := <-received

	wantKeys := []string{
		"_subject", "applicant_name", "status", "relationship_goals", "weekend_vibe",
		"love_languages", "dealbreaker", "future_vision", "extra", "summary",
	}
	assert.Len(t, body, len(wantKeys))
	for _, k := range wantKeys {
		assert.Contains(t, body, k)
	}
	assert.Equal(t, "New Touchdown Application 🏈", body["_subject"])
	assert.Equal(t, "Quality time, Gifts", body["love_languages"])
	assert.Equal(t, "", body["extra"])
}

func TestConnector_SendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "relay down")
	}))
	defer srv.Close()

	rejected := metrics.RelayRequests.WithLabelValues(metrics.ResultRejected)
	before := testutil.ToFloat64(rejected)

	c := NewConnector(testConfig(srv.URL), zaptest.NewLogger(t))
	err := c.Send(context.Background(), samplePayload())

	assert.Equal(t, before+1, testutil.ToFloat64(rejected))

	var httpErr *pkghttp.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "relay down", httpErr.Message)
}

func TestConnector_SendTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	failures := metrics.RelayRequests.WithLabelValues(metrics.ResultTransportFailure)
	before := testutil.ToFloat64(failures)

	c := NewConnector(testConfig(url), zaptest.NewLogger(t))
	err := c.Send(context.Background(), samplePayload())

	var netErr *pkghttp.NetworkError
	assert.True(t, errors.As(err, &netErr))
	assert.Equal(t, before+1, testutil.ToFloat64(failures))
}

func TestMockConnector(t *testing.T) {
	m := NewMockConnector(zaptest.NewLogger(t))
	assert.True(t, m.Configured())
	assert.NoError(t, m.Send(context.Background(), samplePayload()))
}

func TestConnector_SendTruncatedAcceptIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, buf, err := http.NewResponseController(w).Hijack()
		if !assert.NoError(t, err) {
			return
		}
		defer conn.Close()
		fmt.Fprint(buf, "HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\n{\"ok\":tru")
		buf.Flush()
	}))
	defer srv.Close()

	accepted := metrics.RelayRequests.WithLabelValues(metrics.ResultAccepted)
	before := testutil.ToFloat64(accepted)

	c := NewConnector(testConfig(srv.URL), zaptest.NewLogger(t))
	require.NoError(t, c.Send(context.Background(), samplePayload()))
	assert.Equal(t, before+1, testutil.ToFloat64(accepted))
}
