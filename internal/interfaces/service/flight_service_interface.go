// Package service
package service

import (
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
)

type FlightServiceInterface interface {
	CreateFlight(req *RequestFlightCreate) *ApiResponse[ResponseFlightCreate]
	GetFlight(req *RequestFlight) *ApiResponse[ResponseFlight]
	GetFlightList(req *RequestFlightList) *ApiResponse[ResponseFlightList]
	GetAllFlights(req *RequestFlightListAll) *ApiResponse[ResponseFlightList]
	EditFlight(req *RequestFlightEdit) *ApiResponse[ResponseFlightEdit]
	ReplaceFlight(req *RequestFlightReplace) *ApiResponse[ResponseFlightEdit]
	DeleteFlight(req *RequestFlightDelete) *ApiResponse[ResponseFlightDelete]
	GetTotals(req *RequestFlightTotals) *ApiResponse[ResponseFlightTotals]
	GetFlightsByDate(req *RequestFlightsByDate) *ApiResponse[ResponseFlightsByDate]
}

// RequestFlightCreate carries the full flight body. Aircraft must name an
// existing tail number; hobbs_end, when ahead of the aircraft meter, is
// written back to it.
type RequestFlightCreate struct {
	JwtHeader
	Flight operation.Flight
}

type ResponseFlightCreate operation.Flight

type RequestFlight struct {
	JwtHeader
	FlightID uint `param:"id"`
}

type ResponseFlight operation.Flight

type RequestFlightList struct {
	JwtHeader
	FilterField string `query:"filter_field"`
	FilterValue string `query:"filter_value"`
	StartDate   string `query:"start_date"`
	EndDate     string `query:"end_date"`
	SortField   string `query:"sort"`
	Order       string `query:"order"`
}

type RequestFlightListAll struct {
	JwtHeader
	RequestFlightList
}

type ResponseFlightList struct {
	Items []*operation.Flight `json:"items"`
	Total int                 `json:"total"`
}

// RequestFlightEdit is a partial update: only the fields present in Patch
// are touched, each validated against the flight schema first.
type RequestFlightEdit struct {
	JwtHeader
	FlightID uint `param:"id"`
	Patch    map[string]interface{}
}

type ResponseFlightEdit operation.Flight

// RequestFlightReplace swaps the whole flight body while keeping its
// identity and owner.
type RequestFlightReplace struct {
	JwtHeader
	FlightID uint `param:"id"`
	Flight   operation.Flight
}

type RequestFlightDelete struct {
	JwtHeader
	FlightID uint `param:"id"`
}

type ResponseFlightDelete bool

type RequestFlightTotals struct {
	JwtHeader
	StartDate     string `query:"start_date"`
	EndDate       string `query:"end_date"`
	GroupAircraft bool   `query:"group_by_category_class"`
}

// FlightTotals aggregates one slice of the logbook. The cross fields are
// per-flight overlaps, i.e. the sum over flights of min(a, b), not the
// min of the two column totals.
type FlightTotals struct {
	Flights int `json:"flights"`

	TimeTotal float64 `json:"time_total"`
	TimePic   float64 `json:"time_pic"`
	TimeSic   float64 `json:"time_sic"`
	TimeNight float64 `json:"time_night"`
	TimeSolo  float64 `json:"time_solo"`
	TimeXc    float64 `json:"time_xc"`
	DistXc    float64 `json:"dist_xc"`

	TakeoffsDay   int `json:"takeoffs_day"`
	LandingsDay   int `json:"landings_day"`
	TakeoffsNight int `json:"takeoffs_night"`
	LandingsNight int `json:"landings_night"`

	TimeInstrument    float64 `json:"time_instrument"`
	TimeSimInstrument float64 `json:"time_sim_instrument"`
	HoldsInstrument   int     `json:"holds_instrument"`

	DualGiven  float64 `json:"dual_given"`
	DualRecvd  float64 `json:"dual_recvd"`
	TimeSim    float64 `json:"time_sim"`
	TimeGround float64 `json:"time_ground"`

	XcDualRecvd    float64 `json:"xc_dual_recvd"`
	XcSolo         float64 `json:"xc_solo"`
	XcPic          float64 `json:"xc_pic"`
	NightDualRecvd float64 `json:"night_dual_recvd"`
	NightPic       float64 `json:"night_pic"`
}

type ResponseFlightTotals struct {
	Totals FlightTotals `json:"totals"`
	// ByCategoryClass is only populated when the rollup was requested;
	// keys look like "Airplane / Single-Engine Land".
	ByCategoryClass map[string]*FlightTotals `json:"by_category_class,omitempty"`
}

type RequestFlightsByDate struct {
	JwtHeader
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// ResponseFlightsByDate groups flights under their ISO date strings.
type ResponseFlightsByDate map[string][]*operation.Flight
