package services

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"travelrecords/internal/domain"
	"travelrecords/internal/domain/models"
	"travelrecords/internal/repositories"
	"travelrecords/internal/utils"
)

// FlightQuery holds the raw query params of GET /flights.
type FlightQuery struct {
	ClientID  string
	AirlineID string
	Q         string
}

// FlightList is the unpaginated listing envelope.
type FlightList struct {
	Data  []models.Flight `json:"data"`
	Count int             `json:"count"`
}

// FlightService applies flight rules. Clients and Airlines are only read, for
// the reference checks on create.
type FlightService struct {
	Flights   repositories.FlightRepository
	Clients   repositories.ClientRepository
	Airlines  repositories.AirlineRepository
	Clock     utils.Clock
	RequestID string
}

func (s FlightService) Create(in models.FlightInput) (models.Flight, error) {
	in.ClientID = models.Stringish(in.ClientID.String())
	in.AirlineID = models.Stringish(in.AirlineID.String())
	in.Date = models.Stringish(in.Date.String())
	in.StartCity = strings.TrimSpace(in.StartCity)
	in.EndCity = strings.TrimSpace(in.EndCity)
	if err := utils.RequireFields(in); err != nil {
		return models.Flight{}, err
	}
	key, err := parseFlightKey(in.ClientID.String(), in.AirlineID.String(), in.Date.String())
	if err != nil {
		return models.Flight{}, err
	}

	if ok, err := s.Clients.Exists(key.ClientID); err != nil {
		return models.Flight{}, err
	} else if !ok {
		return models.Flight{}, unknownRef("client_id", key.ClientID)
	}
	if ok, err := s.Airlines.Exists(key.AirlineID); err != nil {
		return models.Flight{}, err
	} else if !ok {
		return models.Flight{}, unknownRef("airline_id", key.AirlineID)
	}

	f := models.Flight{
		ClientID:  key.ClientID,
		AirlineID: key.AirlineID,
		Date:      key.Date,
		StartCity: in.StartCity,
		EndCity:   in.EndCity,
	}
	if err := s.Flights.Insert(f); err != nil {
		return models.Flight{}, err
	}
	utils.LogEvent(s.RequestID, "flights", "create", key.String())
	return f, nil
}

func (s FlightService) Get(rawClientID, rawAirlineID, rawDate string) (models.Flight, error) {
	key, err := parseFlightKey(rawClientID, rawAirlineID, rawDate)
	if err != nil {
		return models.Flight{}, err
	}
	return s.Flights.Get(key)
}

// Update changes start_city/end_city. Identity fields may be repeated in the
// body but must equal the path values.
func (s FlightService) Update(rawClientID, rawAirlineID, rawDate string, patch models.FlightUpdate) (models.Flight, error) {
	key, err := parseFlightKey(rawClientID, rawAirlineID, rawDate)
	if err != nil {
		return models.Flight{}, err
	}
	if err := checkFlightIdentity(key, patch); err != nil {
		return models.Flight{}, err
	}
	if err := rejectBlanked(
		namedField{"start_city", patch.StartCity},
		namedField{"end_city", patch.EndCity},
	); err != nil {
		return models.Flight{}, err
	}

	updated, err := s.Flights.Update(key, func(f models.Flight) (models.Flight, error) {
		setIfPresent(&f.StartCity, patch.StartCity)
		setIfPresent(&f.EndCity, patch.EndCity)
		return f, nil
	})
	if err != nil {
		return models.Flight{}, err
	}
	utils.LogEvent(s.RequestID, "flights", "update", key.String())
	return updated, nil
}

func (s FlightService) Delete(rawClientID, rawAirlineID, rawDate string) error {
	key, err := parseFlightKey(rawClientID, rawAirlineID, rawDate)
	if err != nil {
		return err
	}
	if err := s.Flights.Delete(key); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "flights", "delete", key.String())
	return nil
}

// List returns flights dated today or later, ordered by date ascending.
func (s FlightService) List(q FlightQuery) (FlightList, error) {
	var clientID, airlineID domain.ID
	var err error
	if strings.TrimSpace(q.ClientID) != "" {
		if clientID, err = utils.ParseID("client_id", q.ClientID); err != nil {
			return FlightList{}, err
		}
	}
	if strings.TrimSpace(q.AirlineID) != "" {
		if airlineID, err = utils.ParseID("airline_id", q.AirlineID); err != nil {
			return FlightList{}, err
		}
	}

	rows, err := s.Flights.List()
	if err != nil {
		return FlightList{}, err
	}
	now := s.now()

	type dated struct {
		f  models.Flight
		at time.Time
	}
	out := make([]dated, 0, len(rows))
	for _, f := range rows {
		d, err := utils.ParseFlightDate(f.Date)
		if err != nil || !utils.IsTodayOrFuture(d, now) {
			continue
		}
		if clientID != 0 && f.ClientID != clientID {
			continue
		}
		if airlineID != 0 && f.AirlineID != airlineID {
			continue
		}
		if !utils.ContainsFold(q.Q, f.StartCity, f.EndCity) {
			continue
		}
		out = append(out, dated{f: f, at: d.In(now.Location())})
	}
	slices.SortStableFunc(out, func(a, b dated) int { return a.at.Compare(b.at) })

	data := make([]models.Flight, len(out))
	for i, d := range out {
		data[i] = d.f
	}
	return FlightList{Data: data, Count: len(data)}, nil
}

func (s FlightService) now() time.Time { return clockNow(s.Clock) }

// parseFlightKey validates a raw identity tuple and canonicalizes its date.
func parseFlightKey(rawClientID, rawAirlineID, rawDate string) (models.FlightKey, error) {
	clientID, err := utils.ParseID("client_id", rawClientID)
	if err != nil {
		return models.FlightKey{}, err
	}
	airlineID, err := utils.ParseID("airline_id", rawAirlineID)
	if err != nil {
		return models.FlightKey{}, err
	}
	date, err := utils.ParseFlightDate(rawDate)
	if err != nil {
		return models.FlightKey{}, err
	}
	return models.FlightKey{ClientID: clientID, AirlineID: airlineID, Date: date.String()}, nil
}

func checkFlightIdentity(key models.FlightKey, patch models.FlightUpdate) error {
	if patch.ClientID != nil {
		id, err := utils.ParseID("client_id", patch.ClientID.String())
		if err != nil {
			return err
		}
		if id != key.ClientID {
			return domain.ImmutableIDError{Field: "client_id"}
		}
	}
	if patch.AirlineID != nil {
		id, err := utils.ParseID("airline_id", patch.AirlineID.String())
		if err != nil {
			return err
		}
		if id != key.AirlineID {
			return domain.ImmutableIDError{Field: "airline_id"}
		}
	}
	if patch.Date != nil {
		d, err := utils.ParseFlightDate(patch.Date.String())
		if err != nil {
			return err
		}
		if d.String() != key.Date {
			return domain.ImmutableIDError{Field: "date"}
		}
	}
	return nil
}

func unknownRef(field string, id domain.ID) error {
	return domain.ValidationError{
		Field:   field,
		Msg:     fmt.Sprintf("unknown %s", field),
		Details: map[string]any{field: int64(id)},
	}
}
