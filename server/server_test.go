package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xhil-io/autolens-web/authflow/identityfakes"
	"github.com/xhil-io/autolens-web/internal/config"
	"github.com/xhil-io/autolens-web/mail/mailfakes"
	"github.com/xhil-io/autolens-web/server"
)

func newTestServer(t *testing.T) (*server.Server, *identityfakes.FakeIdentityClient, *mailfakes.FakeSender) {
	t.Helper()
	identityClient := identityfakes.New()
	mailer := mailfakes.New()
	return server.New(config.New(), identityClient, mailer), identityClient, mailer
}

func TestPageRoutes(t *testing.T) {
	srv, _, _ := newTestServer(t)

	pages := []string{
		server.RouteHome,
		server.RouteHowItWorks,
		server.RouteSupport,
		server.RoutePrivacy,
		server.RouteTerms,
		server.RouteAuthCallback,
		server.RouteAuthConfirm,
		server.RouteAuthVerify,
		server.RouteResetPassword,
		server.RouteResetSuccess,
		"/location/42",
		"/racetrack/silverstone",
	}

	for _, page := range pages {
		t.Run(page, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, page, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			require.NotEmpty(t, rec.Body.String())
		})
	}
}

func TestAPIRoutesRejectWrongMethod(t *testing.T) {
	srv, _, _ := newTestServer(t)

	for _, route := range []string{
		server.RouteAPIAuthCallback,
		server.RouteAPIResetPassword,
		server.RouteAPISupport,
	} {
		t.Run(route, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, route, nil))
			require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestOptionsPreflight(t *testing.T) {
	srv, _, _ := newTestServer(t)

	t.Run("allowed origin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, server.RouteAPISupport, nil)
		req.Header.Set("Origin", "https://autolens.net")
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "https://autolens.net", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("app webview origin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, server.RouteAPIResetPassword, nil)
		req.Header.Set("Origin", "capacitor://localhost")
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "capacitor://localhost", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin gets no CORS headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, server.RouteAPISupport, nil)
		req.Header.Set("Origin", "https://evil.example")
		srv.ServeHTTP(rec, req)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("same-origin request reaches the handler", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, server.RouteAPISupport, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestStaticAssets(t *testing.T) {
	srv, _, _ := newTestServer(t)

	t.Run("stylesheet", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/style.css", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	})

	t.Run("missing file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/nope.css", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
