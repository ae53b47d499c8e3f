package handlers

import (
	"net/http"
	"net/url"

	"travelrecords/internal/domain/models"
	"travelrecords/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateFlight(c *gin.Context) {
	var in models.FlightInput
	if !BindJSONOrError(c, &in) {
		return
	}
	f, err := h.flightService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.created(c, h.flightLocation(f), f)
}

func (h *Handler) GetFlight(c *gin.Context) {
	f, err := h.flightService(c).Get(c.Param("client_id"), c.Param("airline_id"), c.Param("date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// ListFlights returns flights dated today or later, earliest first.
func (h *Handler) ListFlights(c *gin.Context) {
	list, err := h.flightService(c).List(services.FlightQuery{
		ClientID:  c.Query("client_id"),
		AirlineID: c.Query("airline_id"),
		Q:         c.Query("q"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) UpdateFlight(c *gin.Context) {
	var patch models.FlightUpdate
	if !BindJSONOrError(c, &patch) {
		return
	}
	f, err := h.flightService(c).Update(c.Param("client_id"), c.Param("airline_id"), c.Param("date"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *Handler) DeleteFlight(c *gin.Context) {
	if err := h.flightService(c).Delete(c.Param("client_id"), c.Param("airline_id"), c.Param("date")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) flightLocation(f models.Flight) string {
	return h.basePath() + "/flights/" + f.ClientID.String() + "/" + f.AirlineID.String() + "/" + url.PathEscape(f.Date)
}
