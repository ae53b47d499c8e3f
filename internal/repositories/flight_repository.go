package repositories

import (
	"travelrecords/internal/domain"
	"travelrecords/internal/domain/models"
	"travelrecords/internal/storage"
)

const flightsFile = "flights"

// FlightRepository stores flights in flights.json keyed by
// (client_id, airline_id, date).
type FlightRepository struct {
	records[models.FlightKey, models.Flight]
}

func NewFlightRepository(s *storage.Store) FlightRepository {
	return FlightRepository{records[models.FlightKey, models.Flight]{
		col:      storage.NewCollection[models.Flight](s, flightsFile),
		key:      models.Flight.Key,
		resource: "flight",
	}}
}

// ByClient returns the flights of one client in storage order.
func (r FlightRepository) ByClient(id domain.ID) ([]models.Flight, error) {
	return r.filter(func(f models.Flight) bool { return f.ClientID == id })
}

// ByAirline returns the flights of one airline in storage order.
func (r FlightRepository) ByAirline(id domain.ID) ([]models.Flight, error) {
	return r.filter(func(f models.Flight) bool { return f.AirlineID == id })
}

func (r FlightRepository) filter(keep func(models.Flight) bool) ([]models.Flight, error) {
	rows, err := r.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.Flight, 0, len(rows))
	for _, f := range rows {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out, nil
}
