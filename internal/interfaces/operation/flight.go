// Package operation
package operation

import "errors"

var (
	// ErrFlightNotFound no flight matches the lookup
	ErrFlightNotFound = errors.New("flight does not exist")
	// ErrUnknownField a filter/patch referenced a field outside the flight schema
	ErrUnknownField = errors.New("unknown flight field")
)

// FieldKind classifies a flight schema field for patch and filter validation.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldDate
	FieldHours // non-negative decimal hours
	FieldCount // non-negative integer
	FieldStringList
)

// FlightFields is the known flight schema: JSON name (which matches the
// database column name) to field kind. Patch bodies and filter/sort
// parameters are validated against this map.
var FlightFields = map[string]FieldKind{
	"date":                FieldDate,
	"aircraft":            FieldString,
	"waypoint_from":       FieldString,
	"waypoint_to":         FieldString,
	"route":               FieldString,
	"hobbs_start":         FieldHours,
	"hobbs_end":           FieldHours,
	"tach_start":          FieldHours,
	"tach_end":            FieldHours,
	"time_total":          FieldHours,
	"time_pic":            FieldHours,
	"time_sic":            FieldHours,
	"time_night":          FieldHours,
	"time_solo":           FieldHours,
	"time_xc":             FieldHours,
	"dist_xc":             FieldHours,
	"takeoffs_day":        FieldCount,
	"landings_day":        FieldCount,
	"takeoffs_night":      FieldCount,
	"landings_night":      FieldCount,
	"time_instrument":     FieldHours,
	"time_sim_instrument": FieldHours,
	"holds_instrument":    FieldCount,
	"dual_given":          FieldHours,
	"dual_recvd":          FieldHours,
	"time_sim":            FieldHours,
	"time_ground":         FieldHours,
	"tags":                FieldStringList,
	"pax":                 FieldStringList,
	"crew":                FieldStringList,
	"comments":            FieldString,
}

// FlightQuery narrows and orders a flight listing. Zero values mean "no
// constraint". Field names must already be validated against FlightFields.
type FlightQuery struct {
	UserID      uint
	FilterField string
	FilterValue string
	StartDate   string
	EndDate     string
	SortField   string
	Descending  bool
}

// FlightOperationInterface is the flight collection access contract.
type FlightOperationInterface interface {
	// GetFlightById fetches a flight by primary key, flight is valid when err is nil
	GetFlightById(id uint) (flight *Flight, err error)
	// GetFlights lists flights matching the query
	GetFlights(query *FlightQuery) (flights []*Flight, err error)
	// AddFlight persists a new flight
	AddFlight(flight *Flight) (err error)
	// SaveFlight writes the full flight row back
	SaveFlight(flight *Flight) (err error)
	// UpdateFlightInfo applies a partial column update to the flight row
	UpdateFlightInfo(flight *Flight, info map[string]interface{}) (err error)
	// DeleteFlight removes the flight row
	DeleteFlight(flight *Flight) (err error)
	// DeleteFlightsByUser bulk-removes every flight owned by the user
	DeleteFlightsByUser(userID uint) (err error)
}
