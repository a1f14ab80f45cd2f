package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/electrocare/client-gateway/lifecycle"
	"github.com/electrocare/client-gateway/schema"
)

func (s *Server) adminListUsers(c *gin.Context) {
	session := c.MustGet("session").(*Session)

	users, err := s.backend.ListUsers(c.Request.Context(), session.Token)
	if err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (s *Server) adminListTechnicians(c *gin.Context) {
	session := c.MustGet("session").(*Session)

	technicians, err := s.backend.ListTechnicians(c.Request.Context(), session.Token)
	if err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"technicians": technicians})
}

func (s *Server) adminListRequests(c *gin.Context) {
	session := c.MustGet("session").(*Session)

	requests, err := s.backend.ListRequests(c.Request.Context(), session.Token)
	if err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (s *Server) adminListAppliances(c *gin.Context) {
	session := c.MustGet("session").(*Session)

	appliances, err := s.backend.ListAppliances(c.Request.Context(), session.Token)
	if err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appliances": appliances})
}

func (s *Server) adminDeleteAppliance(c *gin.Context) {
	session := c.MustGet("session").(*Session)

	if err := s.backend.DeleteAppliance(c.Request.Context(), session.Token, c.Param("applianceID")); err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) adminSetVerification(c *gin.Context) {
	session := c.MustGet("session").(*Session)

	var body struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	switch body.Status {
	case schema.VerificationApproved, schema.VerificationRejected:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.backend.SetVerification(c.Request.Context(), session.Token,
		c.Param("technicianID"), body.Status, body.Reason); err != nil {
		backendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// exportReport streams an .xlsx snapshot of one management table.
func (s *Server) exportReport(c *gin.Context) {
	session := c.MustGet("session").(*Session)

	reportType := c.Param("reportType")
	var header []interface{}
	var rows [][]interface{}

	switch reportType {
	case "users", "technicians":
		list := s.backend.ListUsers
		if reportType == "technicians" {
			list = s.backend.ListTechnicians
		}
		accounts, err := list(c.Request.Context(), session.Token)
		if err != nil {
			backendError(c, err)
			return
		}
		header = []interface{}{"ID", "Name", "Email", "Phone", "Role", "Loyalty Points", "Joined"}
		for _, a := range accounts {
			rows = append(rows, []interface{}{
				a.ID, a.Name, a.Email, a.Phone, string(a.Role), a.LoyaltyPoints,
				a.CreatedAt.Format("2006-01-02"),
			})
		}

	case "requests":
		requests, err := s.backend.ListRequests(c.Request.Context(), session.Token)
		if err != nil {
			backendError(c, err)
			return
		}
		header = []interface{}{"ID", "Status", "Progress", "Issue", "Slot", "Date", "Estimated Cost", "Visit Fee Paid", "OTP Verified"}
		for _, r := range requests {
			cost := ""
			if r.EstimatedServiceCost != nil {
				cost = fmt.Sprintf("%.2f", *r.EstimatedServiceCost)
			}
			rows = append(rows, []interface{}{
				r.ID, string(r.Status), lifecycle.ProgressIndex(r.Status),
				r.IssueDesc, r.PreferredSlot, r.ScheduledDate,
				cost, r.VisitFeePaid, r.OTPVerified,
			})
		}

	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	filename := fmt.Sprintf("electrocare_%s_report_%s.xlsx", reportType, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
