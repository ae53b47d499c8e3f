package services

import (
	"fmt"
	"strings"
	"time"

	"travelrecords/internal/domain"
	"travelrecords/internal/domain/models"
	"travelrecords/internal/repositories"
	"travelrecords/internal/utils"
)

// AirlineQuery holds the raw query params of GET /airlines.
type AirlineQuery struct {
	ListQuery
	Type string
}

var airlineSorts = sortKeys[models.Airline]{
	"id":           byID(func(a models.Airline) domain.ID { return a.ID }),
	"type":         byText(func(a models.Airline) string { return string(a.Type) }),
	"company_name": byText(func(a models.Airline) string { return a.CompanyName }),
}

type AirlineService struct {
	Airlines  repositories.AirlineRepository
	Flights   repositories.FlightRepository
	Clock     utils.Clock
	RequestID string
}

func (s AirlineService) Create(in models.AirlineInput) (models.Airline, error) {
	in.ID = models.Stringish(in.ID.String())
	in.Type = strings.TrimSpace(in.Type)
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	if err := utils.RequireFields(in); err != nil {
		return models.Airline{}, err
	}
	id, err := utils.ParseID("id", in.ID.String())
	if err != nil {
		return models.Airline{}, err
	}
	typ, ok := models.ParseAirlineType(in.Type)
	if !ok {
		return models.Airline{}, invalidEnum("type", in.Type, models.AirlineTypes)
	}

	a := models.Airline{ID: id, Type: typ, CompanyName: in.CompanyName}
	if err := s.Airlines.Insert(a); err != nil {
		return models.Airline{}, err
	}
	utils.LogEvent(s.RequestID, "airlines", "create", fmt.Sprintf("airline_id=%d", id))
	return a, nil
}

func (s AirlineService) Get(rawID string) (models.Airline, error) {
	id, err := utils.ParseID("id", rawID)
	if err != nil {
		return models.Airline{}, err
	}
	return s.Airlines.Get(id)
}

func (s AirlineService) Update(rawID string, patch models.AirlineUpdate) (models.Airline, error) {
	id, err := utils.ParseID("id", rawID)
	if err != nil {
		return models.Airline{}, err
	}
	if err := checkBodyID(id, patch.ID); err != nil {
		return models.Airline{}, err
	}
	var typ *models.AirlineType
	if patch.Type != nil {
		t, ok := models.ParseAirlineType(*patch.Type)
		if !ok {
			return models.Airline{}, invalidEnum("type", *patch.Type, models.AirlineTypes)
		}
		typ = &t
	}
	if err := rejectBlanked(namedField{"company_name", patch.CompanyName}); err != nil {
		return models.Airline{}, err
	}

	updated, err := s.Airlines.Update(id, func(a models.Airline) (models.Airline, error) {
		if typ != nil {
			a.Type = *typ
		}
		setIfPresent(&a.CompanyName, patch.CompanyName)
		return a, nil
	})
	if err != nil {
		return models.Airline{}, err
	}
	utils.LogEvent(s.RequestID, "airlines", "update", fmt.Sprintf("airline_id=%d", id))
	return updated, nil
}

// Delete removes an airline unless flights dated today or later reference it.
func (s AirlineService) Delete(rawID string) error {
	id, err := utils.ParseID("id", rawID)
	if err != nil {
		return err
	}
	flights, err := s.Flights.ByAirline(id)
	if err != nil {
		return err
	}
	if n := countUpcoming(flights, s.now()); n > 0 {
		return domain.DeleteBlockedError{
			Resource: "airline",
			Msg:      fmt.Sprintf("cannot delete airline %d: %d flight(s) dated today or later", id, n),
		}
	}
	if err := s.Airlines.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "airlines", "delete", fmt.Sprintf("airline_id=%d", id))
	return nil
}

func (s AirlineService) Search(q AirlineQuery) (Page[models.Airline], error) {
	rows, err := s.Airlines.List()
	if err != nil {
		return Page[models.Airline]{}, err
	}
	wantType := canonicalFilter(q.Type, models.AirlineTypes)
	return paginate(rows, q.ListQuery, airlineSorts, func(a models.Airline) bool {
		return matchExact(wantType, string(a.Type)) && utils.ContainsFold(q.Q, a.CompanyName)
	})
}

func (s AirlineService) now() time.Time { return clockNow(s.Clock) }
