package system

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school/internal/pkg/response"
)

// Handler serves liveness and instance information.
type Handler struct {
	port string
}

func NewHandler(port string) *Handler {
	return &Handler{port: port}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/ping", h.Ping)
	r.GET("/port", h.Port)
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Port reports the port this instance listens on.
func (h *Handler) Port(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"port": h.port})
}
