package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"store-console/internal/middleware"
	"store-console/internal/models"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	if middleware.Token(c) != "" {
		c.Redirect(http.StatusFound, "/stores")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{
		"Form":       loginForm{},
		"RedirectTo": c.Query("redirectTo"),
	})
}

type loginForm struct {
	Email      string `form:"email"`
	Password   string `form:"password"`
	RedirectTo string `form:"redirectTo"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	_ = c.ShouldBind(&form)
	form.Email = strings.TrimSpace(form.Email)

	fieldErrors := map[string]string{}
	if !validEmail(form.Email) {
		fieldErrors["email"] = msgEmail
	}
	if form.Password == "" {
		fieldErrors["password"] = msgRequired
	}
	if len(fieldErrors) > 0 {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"Form":        form,
			"FieldErrors": fieldErrors,
			"RedirectTo":  form.RedirectTo,
		})
		return
	}

	resp, err := h.gw.Login(c.Request.Context(), models.LoginRequest{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil || resp.Token == "" {
		msg := "Login failed"
		if err != nil {
			msg = errMessage(err)
		}
		render(c, http.StatusUnauthorized, "login.html", gin.H{
			"Form":       form,
			"Errors":     []string{msg},
			"RedirectTo": form.RedirectTo,
		})
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionToken, resp.Token)
	sess.Set(middleware.SessionEmail, form.Email)
	_ = sess.Save()

	// Only local paths: "//host" is protocol-relative and leaves the site.
	target := form.RedirectTo
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		target = "/stores"
	}
	c.Redirect(http.StatusFound, target)
}

func (h *Handler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, "/login")
}
