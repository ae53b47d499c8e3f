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

// ClientQuery holds the raw query params of GET /clients.
type ClientQuery struct {
	ListQuery
	Type    string
	City    string
	State   string
	Country string
}

var clientSorts = sortKeys[models.Client]{
	"id":      byID(func(c models.Client) domain.ID { return c.ID }),
	"name":    byText(func(c models.Client) string { return c.Name }),
	"city":    byText(func(c models.Client) string { return c.City }),
	"state":   byText(func(c models.Client) string { return c.State }),
	"country": byText(func(c models.Client) string { return c.Country }),
	"type":    byText(func(c models.Client) string { return string(c.Type) }),
}

// ClientService applies the client rules on top of ClientRepository.
type ClientService struct {
	Clients   repositories.ClientRepository
	Flights   repositories.FlightRepository
	Clock     utils.Clock
	RequestID string
}

func (s ClientService) Create(in models.ClientInput) (models.Client, error) {
	trimClientInput(&in)
	if err := utils.RequireFields(in); err != nil {
		return models.Client{}, err
	}
	id, err := utils.ParseID("id", in.ID.String())
	if err != nil {
		return models.Client{}, err
	}
	typ, ok := models.ParseClientType(in.Type)
	if !ok {
		return models.Client{}, invalidEnum("type", in.Type, models.ClientTypes)
	}
	if err := utils.ValidatePhone(in.PhoneNumber); err != nil {
		return models.Client{}, err
	}
	if err := utils.ValidateZip(in.ZipCode); err != nil {
		return models.Client{}, err
	}

	c := models.Client{
		ID:           id,
		Type:         typ,
		Name:         in.Name,
		AddressLine1: in.AddressLine1,
		AddressLine2: utils.NullIfEmpty(in.AddressLine2),
		AddressLine3: utils.NullIfEmpty(in.AddressLine3),
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Country:      in.Country,
		PhoneNumber:  in.PhoneNumber,
	}
	if err := s.Clients.Insert(c); err != nil {
		return models.Client{}, err
	}
	utils.LogEvent(s.RequestID, "clients", "create", fmt.Sprintf("client_id=%d", id))
	return c, nil
}

func (s ClientService) Get(rawID string) (models.Client, error) {
	id, err := utils.ParseID("id", rawID)
	if err != nil {
		return models.Client{}, err
	}
	return s.Clients.Get(id)
}

func (s ClientService) Update(rawID string, patch models.ClientUpdate) (models.Client, error) {
	id, err := utils.ParseID("id", rawID)
	if err != nil {
		return models.Client{}, err
	}
	if err := checkBodyID(id, patch.ID); err != nil {
		return models.Client{}, err
	}

	var typ *models.ClientType
	if patch.Type != nil {
		t, ok := models.ParseClientType(*patch.Type)
		if !ok {
			return models.Client{}, invalidEnum("type", *patch.Type, models.ClientTypes)
		}
		typ = &t
	}
	if err := rejectBlanked(
		namedField{"name", patch.Name},
		namedField{"address_line1", patch.AddressLine1},
		namedField{"city", patch.City},
		namedField{"state", patch.State},
		namedField{"zip_code", patch.ZipCode},
		namedField{"country", patch.Country},
		namedField{"phone_number", patch.PhoneNumber},
	); err != nil {
		return models.Client{}, err
	}
	if patch.PhoneNumber != nil {
		if err := utils.ValidatePhone(*patch.PhoneNumber); err != nil {
			return models.Client{}, err
		}
	}
	if patch.ZipCode != nil {
		if err := utils.ValidateZip(*patch.ZipCode); err != nil {
			return models.Client{}, err
		}
	}

	updated, err := s.Clients.Update(id, func(c models.Client) (models.Client, error) {
		if typ != nil {
			c.Type = *typ
		}
		setIfPresent(&c.Name, patch.Name)
		setIfPresent(&c.AddressLine1, patch.AddressLine1)
		if patch.AddressLine2 != nil {
			c.AddressLine2 = utils.NullIfEmpty(*patch.AddressLine2)
		}
		if patch.AddressLine3 != nil {
			c.AddressLine3 = utils.NullIfEmpty(*patch.AddressLine3)
		}
		setIfPresent(&c.City, patch.City)
		setIfPresent(&c.State, patch.State)
		setIfPresent(&c.ZipCode, patch.ZipCode)
		setIfPresent(&c.Country, patch.Country)
		setIfPresent(&c.PhoneNumber, patch.PhoneNumber)
		return c, nil
	})
	if err != nil {
		return models.Client{}, err
	}
	utils.LogEvent(s.RequestID, "clients", "update", fmt.Sprintf("client_id=%d", id))
	return updated, nil
}

// Delete removes a client unless it still has flights dated today or later.
func (s ClientService) Delete(rawID string) error {
	id, err := utils.ParseID("id", rawID)
	if err != nil {
		return err
	}
	flights, err := s.Flights.ByClient(id)
	if err != nil {
		return err
	}
	if n := countUpcoming(flights, s.now()); n > 0 {
		return domain.DeleteBlockedError{
			Resource: "client",
			Msg:      fmt.Sprintf("cannot delete client %d: %d flight(s) dated today or later", id, n),
		}
	}
	if err := s.Clients.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "clients", "delete", fmt.Sprintf("client_id=%d", id))
	return nil
}

func (s ClientService) Search(q ClientQuery) (Page[models.Client], error) {
	rows, err := s.Clients.List()
	if err != nil {
		return Page[models.Client]{}, err
	}
	wantType := canonicalFilter(q.Type, models.ClientTypes)
	return paginate(rows, q.ListQuery, clientSorts, func(c models.Client) bool {
		return matchExact(wantType, string(c.Type)) &&
			matchExact(q.City, c.City) &&
			matchExact(q.State, c.State) &&
			matchExact(q.Country, c.Country) &&
			utils.ContainsFold(q.Q, c.ID.String(), c.Name, c.City, c.Country, c.PhoneNumber)
	})
}

func (s ClientService) now() time.Time { return clockNow(s.Clock) }

func trimClientInput(in *models.ClientInput) {
	in.Type = strings.TrimSpace(in.Type)
	in.Name = strings.TrimSpace(in.Name)
	in.AddressLine1 = strings.TrimSpace(in.AddressLine1)
	in.AddressLine2 = strings.TrimSpace(in.AddressLine2)
	in.AddressLine3 = strings.TrimSpace(in.AddressLine3)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.ZipCode = strings.TrimSpace(in.ZipCode)
	in.Country = strings.TrimSpace(in.Country)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.ID = models.Stringish(in.ID.String())
}
