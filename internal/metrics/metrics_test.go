package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func TestMetrics_IncBookings(t *testing.T) {
	m := New()

	m.IncBookings("padel", "created")
	m.IncBookings("padel", "created")
	m.IncBookings("padel", "slot_taken")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookings.WithLabelValues("padel", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues("padel", "slot_taken")))
}

func TestMetrics_ObserveQuote(t *testing.T) {
	m := New()

	m.ObserveQuote("padel", 7200)
	m.ObserveQuote("tennis", 3000)

	assert.Equal(t, 2, testutil.CollectAndCount(m.quotes))
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	m := New()

	r := ginext.New("test")
	r.Use(m.Middleware())
	r.GET("/ping", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/ping", "200")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "clubcourt_http_requests_total"))
}
