package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetClientItinerary returns the client's upcoming flights as a PDF (inline).
func (h *Handler) GetClientItinerary(c *gin.Context) {
	pdfBytes, filename, err := h.docsService(c).GenerateItinerary(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
