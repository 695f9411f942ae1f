package login_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/5w1tchy/bookshelf/internal/api/handlers/login"
	mw "github.com/5w1tchy/bookshelf/internal/api/middlewares"
	"github.com/5w1tchy/bookshelf/internal/auth"
	"github.com/5w1tchy/bookshelf/internal/session"
	"github.com/5w1tchy/bookshelf/internal/views"
)

type fakeGate struct {
	err    error
	issued int
	ended  int
}

func (g *fakeGate) Authenticate(_ context.Context, user, pass string) (session.Session, error) {
	if g.err != nil {
		return session.Session{}, g.err
	}
	if user != "admin" || pass != "pw" {
		return session.Session{}, auth.ErrInvalidCredentials
	}
	return session.New(user, time.Now(), time.Hour), nil
}

func (g *fakeGate) IssueCookie(w http.ResponseWriter, s session.Session) error {
	g.issued++
	http.SetCookie(w, &http.Cookie{Name: auth.CookieName, Value: s.ID})
	return nil
}

func (g *fakeGate) EndSession(http.ResponseWriter, *http.Request) error {
	g.ended++
	return nil
}

type counter struct{ ok, fail int }

func (c *counter) ObserveLogin(ok bool) {
	if ok {
		c.ok++
	} else {
		c.fail++
	}
}

type stubViews struct{}

func (stubViews) Render(w io.Writer, name string, p views.Page) error {
	d, _ := p.Data.(views.LoginData)
	_, err := io.WriteString(w, name+"|"+d.Error)
	return err
}

func post(h *login.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	g, c := &fakeGate{}, &counter{}
	h := &login.Handler{Gate: g, Views: stubViews{}, Metrics: c}

	rec := post(h, url.Values{"username": {"admin"}, "password": {"pw"}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 1, g.issued)
	assert.Equal(t, 1, c.ok)
}

func TestLoginFailureRerenders(t *testing.T) {
	g, c := &fakeGate{}, &counter{}
	h := &login.Handler{Gate: g, Views: stubViews{}, Metrics: c}

	rec := post(h, url.Values{"username": {"admin"}, "password": {"nope"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "login|"+login.ErrorMessage, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
	assert.Zero(t, g.issued)
	assert.Equal(t, 1, c.fail)
}

func TestLoginGateError(t *testing.T) {
	h := &login.Handler{Gate: &fakeGate{err: errors.New("redis down")}, Views: stubViews{}}

	rec := post(h, url.Values{"username": {"admin"}, "password": {"pw"}})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "redis")
}

func TestFormRedirectsSignedInAdmin(t *testing.T) {
	h := &login.Handler{Gate: &fakeGate{}, Views: stubViews{}}

	rec := httptest.NewRecorder()
	h.Form(rec, httptest.NewRequest("GET", "/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest("GET", "/login", nil)
	req = req.WithContext(mw.WithIdentity(req.Context(), auth.Identity{Username: "admin"}))
	rec = httptest.NewRecorder()
	h.Form(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestLogout(t *testing.T) {
	g := &fakeGate{}
	h := &login.Handler{Gate: g, Views: stubViews{}}

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest("GET", "/logout", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 1, g.ended)
}
