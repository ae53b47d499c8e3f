package handlers

import (
	"net/http"

	"travelrecords/internal/domain/models"
	"travelrecords/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateAirline(c *gin.Context) {
	var in models.AirlineInput
	if !BindJSONOrError(c, &in) {
		return
	}
	airline, err := h.airlineService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.created(c, h.basePath()+"/airlines/"+airline.ID.String(), airline)
}

func (h *Handler) GetAirline(c *gin.Context) {
	airline, err := h.airlineService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}

func (h *Handler) ListAirlines(c *gin.Context) {
	page, err := h.airlineService(c).Search(services.AirlineQuery{
		ListQuery: listQuery(c),
		Type:      c.Query("type"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) UpdateAirline(c *gin.Context) {
	var patch models.AirlineUpdate
	if !BindJSONOrError(c, &patch) {
		return
	}
	airline, err := h.airlineService(c).Update(c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}

func (h *Handler) DeleteAirline(c *gin.Context) {
	if err := h.airlineService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
