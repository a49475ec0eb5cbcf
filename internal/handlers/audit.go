package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"store-console/internal/database"
)

func (h *Handler) ListAuditLogs(c *gin.Context) {
	logs := database.RecentAuditLogs(200)
	render(c, http.StatusOK, "audit_list.html", gin.H{
		"Logs": logs,
	})
}
