package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys. The token is whatever the backend's login returned; it is
// gated on presence alone, never inspected client-side.
const (
	SessionToken = "token"
	SessionEmail = "email"
)

// RequireAuth redirects sessions without a token to the login screen,
// remembering where they were headed.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		token, _ := sess.Get(SessionToken).(string)
		if token == "" {
			c.Redirect(http.StatusFound, LoginRedirect(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginRedirect builds the login URL carrying the intended destination.
func LoginRedirect(path string) string {
	return "/login?redirectTo=" + url.QueryEscape(path)
}

// Token returns the session token for the current request, empty when the
// session is unauthenticated.
func Token(c *gin.Context) string {
	token, _ := sessions.Default(c).Get(SessionToken).(string)
	return token
}

// Actor returns the logged-in email for audit entries and the page header.
func Actor(c *gin.Context) string {
	email, _ := sessions.Default(c).Get(SessionEmail).(string)
	return email
}

// ClearSession drops the token, used on logout and when the backend rejects
// the token mid-session.
func ClearSession(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
}
