package handler

import (
	"net/http"

	"github.com/anon-d/redirector/internal/logger"
	"github.com/gin-gonic/gin"
)

type RedirectHandler struct {
	Target string
	logger *logger.Logger
}

func NewRedirectHandler(target string, logger *logger.Logger) *RedirectHandler {
	return &RedirectHandler{
		Target: target,
		logger: logger,
	}
}

// Redirect отвечает на GET-запрос постоянным перенаправлением (301)
// на настроенный целевой URL. Параметры запроса не читаются и не проверяются.
func (h *RedirectHandler) Redirect(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, h.Target)
}

func (h *RedirectHandler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "Success",
		"message": "Health check passed",
	})
}

func (h *RedirectHandler) NotFound(c *gin.Context) {
	c.JSON(404, gin.H{
		"status":  "Error",
		"message": "Not found",
	})
}

func (h *RedirectHandler) NotAllowed(c *gin.Context) {
	c.JSON(405, gin.H{
		"status":  "Error",
		"message": "Method not allowed",
	})
}
