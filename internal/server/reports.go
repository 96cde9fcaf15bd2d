package server

import (
	"fmt"
	"net/http"

	reportdomain "github.com/aivanlabs/fleetdash/internal/report/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateReport(c *gin.Context) {
	var req reportdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	report, err := s.reportSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": report})
}

func (s *Server) GetReport(c *gin.Context) {
	report, err := s.reportSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (s *Server) ExportReport(c *gin.Context) {
	report, err := s.reportSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	switch format {
	case "xlsx":
		data, err := s.exporter.Excel(c.Request.Context(), report)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		filename := fmt.Sprintf("Vehicle_Report_%s.xlsx", report.VehicleNo)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "pdf":
		data, err := s.exporter.PDF(c.Request.Context(), report)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		filename := fmt.Sprintf("Vehicle_Report_%s.pdf", report.VehicleNo)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		AbortWithError(c, newValidationError("format", "invalid_format", "format must be xlsx or pdf"))
	}
}
