package server

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"store-console/internal/config"
	"store-console/internal/gateway"
	"store-console/internal/handlers"
	"store-console/internal/middleware"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// shortDate renders backend ISO timestamps as "02 Jan 2006", passing
// unparseable values through untouched.
func shortDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return s
}

func fieldError(v interface{}, key string) string {
	if m, ok := v.(map[string]string); ok {
		return m[key]
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"shortDate": shortDate,
		"field":     fieldError,
		"contains":  contains,
	}
}

func NewRouter(cfg *config.Config, gw *gateway.Client) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.SetFuncMap(TemplateFuncs())
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("console_session", store))

	h := handlers.New(gw)

	r.GET("/", h.IndexPage)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// STORES
	auth.GET("/stores", h.ListStores)
	auth.GET("/stores/new", h.ShowNewStore)
	auth.POST("/stores/new", h.CreateStore)
	auth.GET("/stores/:id/edit", h.ShowEditStore)
	auth.POST("/stores/:id/edit", h.UpdateStore)
	auth.GET("/stores/:id/delete", h.ShowDeleteStore)
	auth.POST("/stores/:id/delete", h.DeleteStore)
	auth.GET("/stores/:id/plan", h.ShowRenewPlan)
	auth.POST("/stores/:id/plan", h.RenewPlan)

	// DEVICES
	auth.GET("/devices", h.ListDevices)
	auth.GET("/devices/new", h.ShowNewDevice)
	auth.POST("/devices/new", h.CreateDevice)
	auth.POST("/devices/:id/status", h.SetDeviceStatus)

	// SUBSCRIPTIONS
	auth.GET("/subscriptions", h.ListSubscriptions)
	auth.GET("/subscriptions/new", h.ShowNewSubscription)
	auth.POST("/subscriptions/new", h.CreateSubscription)
	auth.GET("/subscriptions/:id/edit", h.ShowEditSubscription)
	auth.POST("/subscriptions/:id/edit", h.UpdateSubscription)
	auth.GET("/subscriptions/:id/delete", h.ShowDeleteSubscription)
	auth.POST("/subscriptions/:id/delete", h.DeleteSubscription)

	// CLIENTS
	auth.GET("/clients", h.ListClients)
	auth.GET("/clients/new", h.ShowNewClient)
	auth.POST("/clients/new", h.CreateClient)
	auth.GET("/clients/:id/edit", h.ShowEditClient)
	auth.POST("/clients/:id/edit", h.UpdateClient)

	// AUDIT
	auth.GET("/audit", h.ListAuditLogs)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
