package api

import (
	"io/ioutil"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/electrocare/client-gateway/external/repairsvc"
	"github.com/electrocare/client-gateway/schema"
)

// uploadDocuments forwards verification documents (id proof required,
// certification optional) to the backend review queue.
func (s *Server) uploadDocuments(c *gin.Context) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	var docs []repairsvc.Document
	for _, field := range []string{"id_proof", "certification"} {
		files := form.File[field]
		if len(files) == 0 {
			continue
		}
		doc, err := readDocument(field, files[0])
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 || docs[0].Field != "id_proof" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.backend.UploadDocuments(c.Request.Context(), session.Token, docs); err != nil {
		backendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func readDocument(field string, header *multipart.FileHeader) (repairsvc.Document, error) {
	f, err := header.Open()
	if err != nil {
		return repairsvc.Document{}, err
	}
	defer f.Close()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		return repairsvc.Document{}, err
	}

	return repairsvc.Document{
		Field:       field,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// earnings summarizes the technician's completed jobs: approved service
// cost plus the visit fee where the customer paid one.
func (s *Server) earnings(c *gin.Context) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	requests, err := s.backend.TechnicianRequests(c.Request.Context(), session.Token)
	if err != nil {
		backendError(c, err)
		return
	}

	var total float64
	completed := 0
	for _, r := range requests {
		if r.Status != schema.StatusCompleted {
			continue
		}
		completed++
		if r.EstimatedServiceCost != nil {
			total += *r.EstimatedServiceCost
		}
		if r.VisitFeePaid {
			total += r.VisitFeeAmount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"completed_jobs": completed,
		"total_earnings": total,
	})
}

// updateLocation is the technician position heartbeat sent when the
// dashboard acquires a device fix.
func (s *Server) updateLocation(c *gin.Context) {
	session, ok := c.MustGet("session").(*Session)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var body struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if body.Latitude == nil || body.Longitude == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.backend.UpdateLocation(c.Request.Context(), session.Token, *body.Latitude, *body.Longitude); err != nil {
		backendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
