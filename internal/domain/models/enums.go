package models

import "travelrecords/internal/utils"

// ClientType is the canonical client category.
type ClientType string

const (
	ClientBusiness  ClientType = "Business"
	ClientCorporate ClientType = "Corporate"
	ClientLeisure   ClientType = "Leisure"
	ClientVIP       ClientType = "VIP"
)

// ClientTypes lists the allowed client types in canonical form.
var ClientTypes = []string{
	string(ClientBusiness),
	string(ClientCorporate),
	string(ClientLeisure),
	string(ClientVIP),
}

// ParseClientType matches s case-insensitively and returns the canonical type.
func ParseClientType(s string) (ClientType, bool) {
	v, ok := utils.CanonicalEnum(s, ClientTypes)
	return ClientType(v), ok
}

// AirlineType is the canonical airline category.
type AirlineType string

const (
	AirlineCharter  AirlineType = "Charter"
	AirlineLowCost  AirlineType = "Low Cost"
	AirlineNational AirlineType = "National"
	AirlineRegional AirlineType = "Regional"
)

var AirlineTypes = []string{
	string(AirlineCharter),
	string(AirlineLowCost),
	string(AirlineNational),
	string(AirlineRegional),
}

// ParseAirlineType matches s case-insensitively; "low_cost" and "low-cost"
// resolve to "Low Cost".
func ParseAirlineType(s string) (AirlineType, bool) {
	v, ok := utils.CanonicalEnum(s, AirlineTypes)
	return AirlineType(v), ok
}
