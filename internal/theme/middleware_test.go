package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(DefaultOptions(), zerolog.Nop()))
	r.GET("/", func(c *gin.Context) {
		tc := FromContext(c)
		c.String(http.StatusOK, "%s/%s", tc.Preference(), tc.Resolved())
	})
	r.GET("/theme/:preference", SetHandler(zerolog.Nop()))
	return r
}

func TestMiddlewareRequestsClientHint(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, ClientHint, rec.Header().Get("Accept-CH"))
	require.Contains(t, rec.Header().Values("Vary"), ClientHint)
	require.Contains(t, rec.Header().Values("Vary"), "Cookie")
	require.Equal(t, "private", rec.Header().Get("Cache-Control"))
	require.Equal(t, "dark/dark", rec.Body.String())
}

func TestMiddlewareUsesClientHint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ClientHint, "light")

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	require.Equal(t, "dark/light", rec.Body.String())
}

func TestSetHandlerRoundTrip(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/theme/light", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "theme", cookies[0].Name)
	require.Equal(t, "light", cookies[0].Value)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ClientHint, "dark")
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, "light/light", rec.Body.String())
}

func TestSetHandlerIgnoresUnknownPreference(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/theme/sepia", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Empty(t, rec.Result().Cookies())
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	tc := FromContext(c)
	require.Equal(t, Dark, tc.Preference())
}

func TestCookieStoreWithoutResponse(t *testing.T) {
	t.Parallel()

	s := NewCookieStore("theme", nil, nil)
	_, ok := s.Load()
	require.False(t, ok)
	require.ErrorIs(t, s.Save(Light), ErrStorageUnavailable)
}
