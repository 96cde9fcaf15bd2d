package server

import (
	"net/http"

	fueldomain "github.com/aivanlabs/fleetdash/internal/fuel/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListFuelEvents(c *gin.Context) {
	events, err := s.fuelSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": events})
}

func (s *Server) RecordFuelEvent(c *gin.Context) {
	var req fueldomain.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	event, err := s.fuelSvc.Record(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": event})
}

func (s *Server) LastFuelEntryBefore(c *gin.Context) {
	vehicleNo := c.Param("vehicleNo")
	date := c.Param("date")

	event, err := s.fuelSvc.LastEntryBefore(c.Request.Context(), vehicleNo, date)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// Absence is a valid answer here: the vehicle simply has no prior event.
	c.JSON(http.StatusOK, gin.H{"data": event})
}

func (s *Server) ListFuelArchive(c *gin.Context) {
	entries, err := s.fuelArchive.Entries(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}
