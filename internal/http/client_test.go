package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	payhttp "github.com/paykit-io/paykit-go/internal/http"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/payments", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.NotEmpty(t, request.Header.Get("X-Paykit-Client-Info"))
			assert.True(t, strings.HasPrefix(request.Header.Get("User-Agent"), "Paykit/"+paykit.Version))

			response := map[string]string{"id": "tr_WDqYK6vllg", "status": "open"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := payhttp.NewClient(server.URL, "test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM")

		resp, err := client.Do(context.Background(), &payhttp.Request{
			Method: "GET",
			Path:   "payments",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "tr_WDqYK6vllg", result["id"])
		assert.Equal(t, "open", result["status"])
	})

	t.Run("raw query takes precedence over url values", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/payments", request.URL.Path)
			assert.Equal(t, "from=tr_7&limit=10", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := payhttp.NewClient(server.URL, "")

		resp, err := client.Do(context.Background(), &payhttp.Request{
			Method:   "GET",
			Path:     "payments",
			RawQuery: "from=tr_7&limit=10",
			Query:    url.Values{"ignored": []string{"yes"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "Order #12345", body["description"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := payhttp.NewClient(server.URL, "")

		resp, err := client.Post(context.Background(), "payments", map[string]string{"description": "Order #12345"})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("no authorization header without credential", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := payhttp.NewClient(server.URL, "")

		_, err := client.Get(context.Background(), "methods", "")
		require.NoError(t, err)
	})

	t.Run("non-2xx statuses pass through", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = writer.Write([]byte(`{"error":{"type":"request","message":"The amount is invalid","field":"amount"}}`))
		}))
		defer server.Close()

		client := payhttp.NewClient(server.URL, "")

		resp, err := client.Get(context.Background(), "payments", "")
		require.NoError(t, err)
		assert.Equal(t, 422, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "The amount is invalid")
	})

	t.Run("server errors keep their body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"error":{"type":"server","message":"boom"}}`))
		}))
		defer server.Close()

		client := payhttp.NewClient(server.URL, "")

		resp, err := client.Get(context.Background(), "payments", "")
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "boom")
	})

	t.Run("network failure wraps in transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close()

		client := payhttp.NewClient(server.URL, "")

		_, err := client.Get(context.Background(), "payments", "")
		require.Error(t, err)
		assert.True(t, paykit.IsTransportError(err))
	})

	t.Run("custom headers are sent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "idem-123", request.Header.Get("Idempotency-Key"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := payhttp.NewClient(server.URL, "")

		_, err := client.Do(context.Background(), &payhttp.Request{
			Method:  "POST",
			Path:    "payments",
			Headers: map[string]string{"Idempotency-Key": "idem-123"},
		})
		require.NoError(t, err)
	})

	t.Run("debug logging records request and response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := payhttp.NewClient(server.URL, "", payhttp.WithLogger(logger), payhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "payments", "")
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_Retries(t *testing.T) {
	t.Parallel()
	t.Run("disabled by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := payhttp.NewClient(server.URL, "")

		resp, err := client.Get(context.Background(), "payments", "")
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("opt-in retry recovers from a transient failure", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) == 1 {
				writer.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := payhttp.NewClient(server.URL, "",
			payhttp.WithRetryConfig(2, time.Millisecond, 10*time.Millisecond))

		resp, err := client.Get(context.Background(), "payments", "")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(2), attempts.Load())
	})
}

func TestClient_UserAgent(t *testing.T) {
	t.Parallel()
	t.Run("default tokens", func(t *testing.T) {
		t.Parallel()

		client := payhttp.NewClient("https://api.paykit.io", "")

		userAgent := client.UserAgent()
		assert.True(t, strings.HasPrefix(userAgent, "Paykit/"+paykit.Version))
		assert.Contains(t, userAgent, "Go/go")
	})

	t.Run("custom leading token", func(t *testing.T) {
		t.Parallel()

		client := payhttp.NewClient("https://api.paykit.io", "", payhttp.WithUserAgent("my shop/2.1"))

		assert.True(t, strings.HasPrefix(client.UserAgent(), "my-shop/2.1 "))
	})

	t.Run("version strings collapse whitespace", func(t *testing.T) {
		t.Parallel()

		client := payhttp.NewClient("https://api.paykit.io", "", payhttp.WithVersionString("Acme Webshop/0.3"))

		assert.True(t, strings.HasSuffix(client.UserAgent(), " Acme-Webshop/0.3"))
	})

	t.Run("tokens can be added after construction", func(t *testing.T) {
		t.Parallel()

		client := payhttp.NewClient("https://api.paykit.io", "")
		client.AddVersionString("plugin/1.0")

		assert.True(t, strings.HasSuffix(client.UserAgent(), " plugin/1.0"))
	})
}
