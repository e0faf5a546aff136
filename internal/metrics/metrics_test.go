package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareCollapsesPathValues(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/products/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := Middleware(mux)

	pattern := httpRequestsTotal.WithLabelValues("200", "GET", "/api/v1/products/{id}")
	before := testutil.ToFloat64(pattern)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/42", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, before+1, testutil.ToFloat64(pattern),
		"routed requests should be counted under the route pattern")
	assert.Zero(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("200", "GET", "/api/v1/products/42")),
		"the raw path should never become a label value for a routed request")
}

func TestMiddlewareKeepsRawPathWhenUnrouted(t *testing.T) {
	handler := Middleware(http.NewServeMux())

	counter := httpRequestsTotal.WithLabelValues("404", "GET", "/nope")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
