package services

import (
	"bytes"
	"fmt"
	"strings"

	"travelrecords/internal/domain"
	"travelrecords/internal/domain/models"
	"travelrecords/internal/repositories"
	"travelrecords/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders client documents as PDF.
type DocsService struct {
	Clients   repositories.ClientRepository
	Airlines  repositories.AirlineRepository
	Flights   repositories.FlightRepository
	Clock     utils.Clock
	RequestID string
}

type itineraryLine struct {
	Date      string
	Airline   string
	StartCity string
	EndCity   string
}

// GenerateItinerary lists the client's flights dated today or later.
func (s DocsService) GenerateItinerary(rawClientID string) ([]byte, string, error) {
	id, err := utils.ParseID("id", rawClientID)
	if err != nil {
		return nil, "", err
	}
	client, err := s.Clients.Get(id)
	if err != nil {
		return nil, "", err
	}

	flights := FlightService{Flights: s.Flights, Clock: s.Clock}
	upcoming, err := flights.List(FlightQuery{ClientID: id.String()})
	if err != nil {
		return nil, "", err
	}
	airlines, err := s.Airlines.List()
	if err != nil {
		return nil, "", err
	}
	names := make(map[domain.ID]string, len(airlines))
	for _, a := range airlines {
		names[a.ID] = a.CompanyName
	}

	lines := make([]itineraryLine, 0, len(upcoming.Data))
	for _, f := range upcoming.Data {
		name, ok := names[f.AirlineID]
		if !ok {
			name = fmt.Sprintf("airline #%d", f.AirlineID)
		}
		lines = append(lines, itineraryLine{
			Date:      f.Date,
			Airline:   name,
			StartCity: f.StartCity,
			EndCity:   f.EndCity,
		})
	}

	utils.LogEvent(s.RequestID, "docs", "generate_itinerary", fmt.Sprintf("client_id=%d flights=%d", id, len(lines)))
	return buildItineraryPDF(client, lines, utils.FormatDate(clockNow(s.Clock)))
}

func buildItineraryPDF(c models.Client, lines []itineraryLine, issued string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Client    : %s (#%d)", safe(c.Name, "-"), c.ID),
		fmt.Sprintf("Type      : %s", safe(string(c.Type), "-")),
		fmt.Sprintf("Address   : %s", safe(clientAddress(c), "-")),
		fmt.Sprintf("Phone     : %s", safe(c.PhoneNumber, "-")),
		fmt.Sprintf("Issued    : %s", issued),
	}
	for _, s := range header {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	if len(lines) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 7, "No upcoming flights.")
		pdf.Ln(7)
	} else {
		widths := []float64{45, 55, 45, 45}
		pdf.SetFont("Helvetica", "B", 11)
		for i, h := range []string{"Date", "Airline", "From", "To"} {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 11)
		for _, l := range lines {
			for i, v := range []string{l.Date, l.Airline, l.StartCity, l.EndCity} {
				pdf.CellFormat(widths[i], 7, safe(v, "-"), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ITINERARY_%d_%s.pdf", c.ID, safeFilenamePart(c.Name))
	return buf.Bytes(), filename, nil
}

func clientAddress(c models.Client) string {
	parts := []string{c.AddressLine1}
	for _, p := range []*string{c.AddressLine2, c.AddressLine3} {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	parts = append(parts, c.City, c.State, c.ZipCode, c.Country)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "client"
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "client"
	}
	return b.String()
}
