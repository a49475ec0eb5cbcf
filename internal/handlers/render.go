package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"store-console/internal/gateway"
	"store-console/internal/middleware"
)

// Handler carries the console's one outbound dependency, the backend
// gateway, so nothing reads it from ambient state.
type Handler struct {
	gw *gateway.Client
}

func New(gw *gateway.Client) *Handler {
	return &Handler{gw: gw}
}

// render wraps c.HTML, threading the logged-in actor and any pending flash
// notifications into every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Actor"] = middleware.Actor(c)

	sess := sessions.Default(c)
	if msgs := sess.Flashes("success"); len(msgs) > 0 {
		data["Notices"] = msgs
	}
	if msgs := sess.Flashes("error"); len(msgs) > 0 {
		data["Errors"] = append(toStrings(msgs), toStrings2(data["Errors"])...)
	}
	_ = sess.Save()

	c.HTML(status, tmpl, data)
}

func toStrings(flashes []interface{}) []string {
	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toStrings2(v interface{}) []string {
	if s, ok := v.([]string); ok {
		return s
	}
	return nil
}

func flash(c *gin.Context, key, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, key)
	_ = sess.Save()
}

func flashSuccess(c *gin.Context, msg string) { flash(c, "success", msg) }
func flashError(c *gin.Context, msg string)   { flash(c, "error", msg) }

// errMessage surfaces the backend's own message when there is one, otherwise
// the transport error text.
func errMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// redirectAuth handles a rejected session token: the session is dropped and
// the user lands back on login with a pointer to where they were. Returns
// true when the error was an auth failure and the redirect was issued.
func (h *Handler) redirectAuth(c *gin.Context, err error) bool {
	if !gateway.IsAuthError(err) {
		return false
	}
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, middleware.LoginRedirect(c.Request.URL.Path))
	c.Abort()
	return true
}
