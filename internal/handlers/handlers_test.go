package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogetwell/website/internal/catalog"
	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/internal/contact"
	"github.com/gogetwell/website/internal/metrics"
	"github.com/gogetwell/website/internal/search"
)

type stubSender struct {
	mu   sync.Mutex
	sent []contact.Submission
	err  error
}

func (s *stubSender) Send(_ context.Context, sub contact.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sub)
	return nil
}

type testEnv struct {
	router  http.Handler
	sender  *stubSender
	metrics *metrics.Metrics
}

func newTestEnv(t *testing.T, burst int) *testEnv {
	t.Helper()

	content, err := catalog.Load()
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	sender := &stubSender{}
	svc := contact.NewService(sender, contact.NewRateLimiter(60, burst), time.Second, m, log)

	h := NewHandler(content, svc, m, log)
	h.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }

	r := chi.NewRouter()
	RegisterRoutes(r, h, &config.Config{CORSAllowedOrigins: []string{"*"}})

	return &testEnv{router: r, sender: sender, metrics: m}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(target string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLandingPage(t *testing.T) {
	env := newTestEnv(t, 5)

	rec := env.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "Frequently Asked Questions")
	assert.Contains(t, body, "Is the platform secure and compliant with healthcare regulations?")
	assert.Contains(t, body, "Marketing And SEO Support")
	assert.Contains(t, body, "© 2026 gogetwell.ai")

	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.Searches.WithLabelValues("faq")))
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.Searches.WithLabelValues("solutions")))
}

func TestLandingPage_Filters(t *testing.T) {
	env := newTestEnv(t, 5)

	t.Run("faq query", func(t *testing.T) {
		body := env.get("/?q=WEBSITE").Body.String()
		assert.Contains(t, body, "Can I customize the website for my healthcare services?")
		assert.NotContains(t, body, "Is the platform secure and compliant with healthcare regulations?")
		assert.Contains(t, body, `value="WEBSITE"`)
	})

	t.Run("category", func(t *testing.T) {
		body := env.get("/?category=medical").Body.String()
		assert.Contains(t, body, "Medical Report Analysis")
		assert.NotContains(t, body, "Marketing And SEO Support")
	})

	t.Run("unknown category shows all", func(t *testing.T) {
		body := env.get("/?category=dental").Body.String()
		assert.Contains(t, body, "Medical Report Analysis")
		assert.Contains(t, body, "Marketing And SEO Support")
		assert.Contains(t, body, `aria-selected="true" data-category="all"`)
	})

	t.Run("testimonial index wraps", func(t *testing.T) {
		body := env.get("/?t=-1").Body.String()
		assert.Contains(t, body, `data-current="2"`)
	})

	t.Run("faq form carries tab and slide", func(t *testing.T) {
		body := env.get("/?category=business&t=1&q=ai").Body.String()
		assert.Contains(t, body, `<input type="hidden" name="category" value="business">`)
		assert.Contains(t, body, `<input type="hidden" name="t" value="1">`)
	})

	t.Run("contact flash", func(t *testing.T) {
		body := env.get("/?contact=sent").Body.String()
		assert.Contains(t, body, `data-status="sent"`)
	})
}

func TestPartials(t *testing.T) {
	env := newTestEnv(t, 5)

	rec := env.get("/partials/faq?q=zzzz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<html")
	assert.Contains(t, rec.Body.String(), "No matching questions found. Try a different search term.")

	rec = env.get("/partials/faq?q=ai%20")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "What is the AI Front Office for Healthcare Agents?")
	assert.NotContains(t, rec.Body.String(), "Is the platform secure and compliant with healthcare regulations?")

	rec = env.get("/partials/solutions?category=communication")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div id="solutions-body"`))
	assert.Contains(t, body, "Real-Time Query Handling")
	assert.Contains(t, body, "Multilingual Support")
	assert.NotContains(t, body, "Medical Report Analysis")
}

func TestFAQAPI(t *testing.T) {
	env := newTestEnv(t, 5)

	decode := func(target string) ListResponse[catalog.FAQ] {
		rec := env.get(target)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp ListResponse[catalog.FAQ]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	all := decode("/api/faq")
	assert.Equal(t, 11, all.Total)
	assert.Equal(t, 11, all.Count)

	upper := decode("/api/faq?q=AI")
	lower := decode("/api/faq?q=ai")
	assert.Equal(t, upper.Items, lower.Items)
	assert.Equal(t, "AI", upper.Query)

	// Whitespace is part of the query, as in the live search box.
	spaced := decode("/api/faq?q=ai%20")
	content, err := catalog.Load()
	require.NoError(t, err)
	assert.Equal(t, "ai ", spaced.Query)
	assert.Equal(t, search.FAQs(content.FAQs(), "ai "), spaced.Items)
	assert.Less(t, spaced.Count, lower.Count)

	none := decode("/api/faq?q=zzzz")
	assert.Equal(t, 0, none.Count)
	assert.NotNil(t, none.Items)
}

func TestSolutionsAPI(t *testing.T) {
	env := newTestEnv(t, 5)

	rec := env.get("/api/solutions?category=medical")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse[catalog.Solution]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 9, resp.Total)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Medical Report Analysis", resp.Items[0].Title)
	assert.Equal(t, "Comprehensive Healthcare Database", resp.Items[1].Title)

	rec = env.get("/api/solutions?category=dental")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"bad_request"`)
	assert.Contains(t, rec.Body.String(), `"medical"`)
}

func TestAPI_CORS(t *testing.T) {
	env := newTestEnv(t, 5)

	req := httptest.NewRequest(http.MethodGet, "/api/faq", nil)
	req.Header.Set("Origin", "https://partner.example")
	rec := env.do(req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSubmitContactForm(t *testing.T) {
	good := url.Values{
		"fullname": {"Asha Rao"},
		"email":    {"asha@example.com"},
		"message":  {"I'd like a demo"},
	}

	t.Run("redirects on success", func(t *testing.T) {
		env := newTestEnv(t, 5)
		rec := env.do(postForm("/contact", good))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/?contact=sent#contact", rec.Header().Get("Location"))
		require.Len(t, env.sender.sent, 1)
		assert.Equal(t, "192.0.2.1", env.sender.sent[0].RemoteAddr)
	})

	t.Run("field errors keep input", func(t *testing.T) {
		env := newTestEnv(t, 5)
		bad := url.Values{"fullname": {"Asha Rao"}, "email": {"asha-at-example"}, "message": {""}}
		rec := env.do(postForm("/contact", bad))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Please enter a valid email address")
		assert.Contains(t, body, `id="message-error"`)
		assert.Contains(t, body, `value="asha-at-example"`)
		assert.Empty(t, env.sender.sent)
	})

	t.Run("delivery failure", func(t *testing.T) {
		env := newTestEnv(t, 5)
		env.sender.err = errors.New("smtp down")
		rec := env.do(postForm("/contact", good))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-status="failed"`)
		assert.Contains(t, rec.Body.String(), `value="Asha Rao"`)
	})

	t.Run("rate limited", func(t *testing.T) {
		env := newTestEnv(t, 1)
		require.Equal(t, http.StatusSeeOther, env.do(postForm("/contact", good)).Code)

		rec := env.do(postForm("/contact", good))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-status="rate_limited"`)
	})

	t.Run("corrected form after typos", func(t *testing.T) {
		env := newTestEnv(t, 3)
		typo := url.Values{"fullname": {"Ann Lee"}, "email": {"ann@"}, "message": {"Hello"}}
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusUnprocessableEntity, env.do(postForm("/contact", typo)).Code)
		}

		rec := env.do(postForm("/contact", good))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		require.Len(t, env.sender.sent, 1)
	})
}

func TestSubmitContactAPI(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		env := newTestEnv(t, 5)
		rec := env.do(postJSON("/api/contact", `{"fullname":"Asha Rao","email":"asha@example.com","message":"Hello"}`))

		require.Equal(t, http.StatusAccepted, rec.Code)
		var resp ContactResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "received", resp.Status)
		require.Len(t, env.sender.sent, 1)
		assert.Equal(t, env.sender.sent[0].ID, resp.ID)
	})

	t.Run("malformed body", func(t *testing.T) {
		env := newTestEnv(t, 5)
		rec := env.do(postJSON("/api/contact", `{"fullname":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"bad_request"`)
	})

	t.Run("validation", func(t *testing.T) {
		env := newTestEnv(t, 5)
		rec := env.do(postJSON("/api/contact", `{"fullname":"Asha","email":"nope","message":"Hi"}`))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var resp struct {
			Error struct {
				Code    string            `json:"code"`
				Details map[string]string `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error.Code)
		assert.Equal(t, "Please enter a valid email address", resp.Error.Details["email"])
	})

	t.Run("delivery failure", func(t *testing.T) {
		env := newTestEnv(t, 5)
		env.sender.err = errors.New("mailgun: 401")
		rec := env.do(postJSON("/api/contact", `{"fullname":"Asha Rao","email":"asha@example.com","message":"Hello"}`))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"delivery_failed"`)
		assert.NotContains(t, rec.Body.String(), "401")
	})
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, 5)

	rec := env.get("/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "2026-03-01T09:00:00Z", resp.Timestamp)
	assert.Equal(t, "healthy", resp.Checks["contact"].Status)

	rec = env.get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = env.get("/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}
