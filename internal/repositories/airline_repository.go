package repositories

import (
	"travelrecords/internal/domain"
	"travelrecords/internal/domain/models"
	"travelrecords/internal/storage"
)

const airlinesFile = "airlines"

// AirlineRepository stores airlines in airlines.json.
type AirlineRepository struct {
	records[domain.ID, models.Airline]
}

func NewAirlineRepository(s *storage.Store) AirlineRepository {
	return AirlineRepository{records[domain.ID, models.Airline]{
		col:      storage.NewCollection[models.Airline](s, airlinesFile),
		key:      func(a models.Airline) domain.ID { return a.ID },
		resource: "airline",
	}}
}
