package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formfield/pkg/definition"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
)

func newTestServer(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	store := &definition.Store{}
	require.NoError(t, store.Add(definition.Form{
		ID:    "signup",
		Title: "Sign up",
		Fields: []field.Config{
			{ID: "email", Type: field.TypeEmail, Label: "Email", Required: true},
			{ID: "terms", Type: field.TypeCheckbox, Label: "Terms", Value: "yes"},
		},
	}))
	return New(store, opts...).Handler()
}

func TestListForms(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/forms", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"signup"}, body.Forms)
}

func TestGetFormRendersWithoutErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/forms/signup?email=jane@example.com", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	html := rec.Body.String()
	assert.Contains(t, html, `<h1>Sign up</h1>`)
	assert.Contains(t, html, `action="/forms/signup"`)
	assert.Contains(t, html, `value="jane@example.com"`)
	assert.NotContains(t, html, "fieldError")
}

func TestGetUnknownForm(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/forms/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitValidForm(t *testing.T) {
	form := url.Values{"email": {"jane@example.com"}, "terms": {"yes"}}
	req := httptest.NewRequest(http.MethodPost, "/forms/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result definition.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Valid())
	assert.Equal(t, "jane@example.com", result.Values["email"])
	assert.Equal(t, "yes", result.Values["terms"])
}

func TestSubmitInvalidFormRerenders(t *testing.T) {
	form := url.Values{"email": {"nope"}}
	req := httptest.NewRequest(http.MethodPost, "/forms/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	html := rec.Body.String()
	assert.Contains(t, html, `class="fieldError"`)
	assert.Contains(t, html, "Please enter a valid email")
	assert.Contains(t, html, `value="nope"`)
}

func TestSubmitInvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/forms/signup", strings.NewReader(`{"email": ""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var result definition.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Contains(t, result.Violations, "email")
	assert.Equal(t, field.ValueMissing, result.Violations["email"].Kind)
}

func TestSubmitUnsupportedMediaType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/forms/signup", strings.NewReader("email=x"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestHiddenInputs(t *testing.T) {
	handler := newTestServer(t, WithHidden(func(r *http.Request) []render.Hidden {
		return []render.Hidden{render.HiddenValue("_csrf", r.Header.Get("X-Token"))}
	}))

	req := httptest.NewRequest(http.MethodGet, "/forms/signup", nil)
	req.Header.Set("X-Token", "abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(),
		`<input type="hidden" name="_csrf" value="abc"/><input type="hidden" name="_form" value="signup"/>`)
}

func TestBasePath(t *testing.T) {
	handler := newTestServer(t, WithBasePath("/admin/"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/forms/signup", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/admin/forms/signup"`)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FORMFIELD_ADDR", "127.0.0.1:9999")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Addr)
	assert.Greater(t, cfg.ShutdownTimeout.Seconds(), 0.0)
}
