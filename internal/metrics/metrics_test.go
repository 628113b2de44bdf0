package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSearch(t *testing.T) {
	m := New()
	m.ObserveSearch("faq", 3)
	m.ObserveSearch("faq", 0)
	m.ObserveSearch("solutions", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Searches.WithLabelValues("faq")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues("solutions")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.Contact.WithLabelValues("sent").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `website_contact_submissions_total{outcome="sent"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.Requests.WithLabelValues("/", "200").Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Requests.WithLabelValues("/", "200")))
}
