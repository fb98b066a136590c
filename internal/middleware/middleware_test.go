package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"breaktrack/internal/models"
	"breaktrack/internal/services"
	"breaktrack/internal/testutil"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newRouter wires sessions and InjectUser, plus a /as/:id route that logs in by id.
func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("secret"))))
	r.Use(InjectUser(services.NewAuthService(db)))
	r.GET("/as/:id", func(c *gin.Context) {
		var u models.User
		if err := db.Where("username = ?", c.Param("id")).First(&u).Error; err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		sess := sessions.Default(c)
		sess.Set(SessionUserID, u.ID)
		_ = sess.Save()
		c.Status(http.StatusNoContent)
	})
	return r
}

func login(t *testing.T, r http.Handler, username string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/as/"+username, nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	return w.Result().Cookies()
}

func do(r http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInjectUser_ResolvesAndDropsStaleSessions(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateEmployee(t, db, "alice", "pw")
	r := newRouter(db)
	r.GET("/whoami", func(c *gin.Context) {
		name := ""
		if u := CurrentUser(c); u != nil {
			name = u.Username
		}
		c.String(http.StatusOK, "%s", name)
	})

	cookies := login(t, r, "alice")
	w := do(r, "/whoami", cookies)
	assert.Equal(t, "alice", w.Body.String())

	require.NoError(t, db.Delete(&alice).Error)
	w = do(r, "/whoami", cookies)
	assert.Equal(t, "", w.Body.String())
}

func TestRequireAuth_RedirectsWithNext(t *testing.T) {
	db := testutil.NewDB(t)
	r := newRouter(db)
	r.GET("/dashboard", RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, "/dashboard?tab=1", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fdashboard%3Ftab%3D1", w.Header().Get("Location"))
}

func TestRequireAPIAuth(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateEmployee(t, db, "alice", "pw")
	r := newRouter(db)
	r.GET("/api/ping", RequireAPIAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, "/api/ping", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())

	w = do(r, "/api/ping", login(t, r, "alice"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_SoftFailure(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateEmployee(t, db, "alice", "pw")
	r := newRouter(db)
	reached := false
	r.GET("/admin", RequireAuth(), RequireAdmin(), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})
	r.GET("/notices", func(c *gin.Context) {
		c.JSON(http.StatusOK, Flashes(c))
	})

	cookies := login(t, r, "alice")
	w := do(r, "/admin", cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.False(t, reached)

	w = do(r, "/notices", w.Result().Cookies())
	assert.JSONEq(t, `["`+NoPermissionNotice+`"]`, w.Body.String())

	w = do(r, "/admin", login(t, r, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
}
