package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"store-console/internal/middleware"
)

func (h *Handler) IndexPage(c *gin.Context) {
	render(c, http.StatusOK, "index.html", gin.H{
		"IsAuthed": middleware.Token(c) != "",
	})
}
