package repositories

import (
	"travelrecords/internal/domain"
	"travelrecords/internal/domain/models"
	"travelrecords/internal/storage"
)

const clientsFile = "clients"

// ClientRepository stores clients in clients.json.
type ClientRepository struct {
	records[domain.ID, models.Client]
}

func NewClientRepository(s *storage.Store) ClientRepository {
	return ClientRepository{records[domain.ID, models.Client]{
		col:      storage.NewCollection[models.Client](s, clientsFile),
		key:      func(c models.Client) domain.ID { return c.ID },
		resource: "client",
	}}
}
