package handlers

import (
	"bytes"
	"io"
	"net/http"

	"travelrecords/internal/http/middleware"
	"travelrecords/internal/repositories"
	"travelrecords/internal/services"
	"travelrecords/internal/storage"
	"travelrecords/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Handler serves the record API over one data store.
type Handler struct {
	Clients    repositories.ClientRepository
	Airlines   repositories.AirlineRepository
	Flights    repositories.FlightRepository
	Clock      utils.Clock
	APIVersion string
}

// New wires repositories for every collection in store.
func New(store *storage.Store, clock utils.Clock, apiVersion string) *Handler {
	return &Handler{
		Clients:    repositories.NewClientRepository(store),
		Airlines:   repositories.NewAirlineRepository(store),
		Flights:    repositories.NewFlightRepository(store),
		Clock:      clock,
		APIVersion: apiVersion,
	}
}

// BindJSONOrError ensures body is present and is a JSON object. It writes a
// 422 INVALID_INPUT and returns false otherwise.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		respondError(c, http.StatusUnprocessableEntity, CodeInvalidInput, "request body must be a JSON object", nil)
		return false
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeInvalidInput, "request body could not be read", nil)
		return false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		respondError(c, http.StatusUnprocessableEntity, CodeInvalidInput, "request body must be a JSON object", nil)
		return false
	}
	if err := binding.JSON.BindBody(raw, dst); err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeInvalidInput, "invalid JSON payload", map[string]any{"reason": err.Error()})
		return false
	}
	return true
}

func (h *Handler) created(c *gin.Context, location string, body any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}

func (h *Handler) basePath() string {
	return "/api/" + h.APIVersion
}

func (h *Handler) clientService(c *gin.Context) services.ClientService {
	return services.ClientService{
		Clients:   h.Clients,
		Flights:   h.Flights,
		Clock:     h.Clock,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) airlineService(c *gin.Context) services.AirlineService {
	return services.AirlineService{
		Airlines:  h.Airlines,
		Flights:   h.Flights,
		Clock:     h.Clock,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) flightService(c *gin.Context) services.FlightService {
	return services.FlightService{
		Flights:   h.Flights,
		Clients:   h.Clients,
		Airlines:  h.Airlines,
		Clock:     h.Clock,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		Clients:   h.Clients,
		Airlines:  h.Airlines,
		Flights:   h.Flights,
		Clock:     h.Clock,
		RequestID: middleware.GetRequestID(c),
	}
}
