package middleware

import (
	"courseware_backend/internal/model"
	"courseware_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(secret), func(c *gin.Context) {
		c.String(http.StatusOK, util.GetUserFromContext(c).UserID)
	})
	r.GET("/staff", AuthMiddleware(secret), RoleMiddleware(model.Teacher), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func token(t *testing.T, role model.UserRole, ttl time.Duration) string {
	t.Helper()
	tok, err := util.GenerateJWT(&model.User{Base: model.Base{ID: "u-" + string(role)}, Role: role}, secret, ttl)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()

	cases := []struct {
		name   string
		setup  func(req *http.Request)
		status int
		body   string
	}{
		{
			name:   "no token",
			setup:  func(*http.Request) {},
			status: http.StatusUnauthorized,
		},
		{
			name: "cookie",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: util.TokenCookie, Value: token(t, model.Student, time.Hour)})
			},
			status: http.StatusOK,
			body:   "u-student",
		},
		{
			name: "bearer header",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+token(t, model.Teacher, time.Hour))
			},
			status: http.StatusOK,
			body:   "u-teacher",
		},
		{
			name: "expired",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+token(t, model.Student, -time.Minute))
			},
			status: http.StatusUnauthorized,
		},
		{
			name: "garbage",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer not-a-jwt")
			},
			status: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	r := newRouter()

	for role, want := range map[model.UserRole]int{
		model.Student: http.StatusForbidden,
		model.Teacher: http.StatusOK,
		model.Admin:   http.StatusOK,
	} {
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		req.AddCookie(&http.Cookie{Name: util.TokenCookie, Value: token(t, role, time.Hour)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, string(role))
	}
}
