package server

import (
	"net/http"
	"strconv"

	driverdomain "github.com/aivanlabs/fleetdash/internal/driver/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListDrivers(c *gin.Context) {
	drivers, err := s.driverSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": drivers})
}

func (s *Server) CreateDriver(c *gin.Context) {
	var req driverdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	record, err := s.driverSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": record})
}

func (s *Server) UpdateDriver(c *gin.Context) {
	id, err := driverID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req driverdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	record, err := s.driverSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": record})
}

func (s *Server) DeleteDriver(c *gin.Context) {
	id, err := driverID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.driverSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": 1})
}

// driverID parses the :id route param. Master-sourced rows render with a null
// id, so a non-numeric id means the caller targeted the read-only tier.
func driverID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if raw == "null" || raw == "" {
			return 0, driverdomain.ErrReadOnly
		}
		return 0, newValidationError("id", "invalid_id", "invalid id")
	}
	return id, nil
}
