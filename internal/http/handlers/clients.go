package handlers

import (
	"net/http"

	"travelrecords/internal/domain/models"
	"travelrecords/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateClient(c *gin.Context) {
	var in models.ClientInput
	if !BindJSONOrError(c, &in) {
		return
	}
	client, err := h.clientService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.created(c, h.basePath()+"/clients/"+client.ID.String(), client)
}

func (h *Handler) GetClient(c *gin.Context) {
	client, err := h.clientService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// ListClients serves both the plain listing and search; all filters are optional.
func (h *Handler) ListClients(c *gin.Context) {
	page, err := h.clientService(c).Search(services.ClientQuery{
		ListQuery: listQuery(c),
		Type:      c.Query("type"),
		City:      c.Query("city"),
		State:     c.Query("state"),
		Country:   c.Query("country"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) UpdateClient(c *gin.Context) {
	var patch models.ClientUpdate
	if !BindJSONOrError(c, &patch) {
		return
	}
	client, err := h.clientService(c).Update(c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) DeleteClient(c *gin.Context) {
	if err := h.clientService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func listQuery(c *gin.Context) services.ListQuery {
	return services.ListQuery{
		Q:      c.Query("q"),
		Sort:   c.Query("sort"),
		Limit:  c.Query("limit"),
		Offset: c.Query("offset"),
	}
}
