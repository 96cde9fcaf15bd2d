package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListVehicles(c *gin.Context) {
	vehicles, err := s.vehicles.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}
