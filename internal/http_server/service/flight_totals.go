// Package service
package service

import (
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
)

var (
	SuccessGetTotals = ApiStatus{StatusName: "GET_TOTALS_SUCCESS", Description: "totals computed", HttpCode: Ok}
)

func minHours(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func addFlight(totals *FlightTotals, flight *operation.Flight) {
	totals.Flights++

	totals.TimeTotal += flight.TimeTotal
	totals.TimePic += flight.TimePic
	totals.TimeSic += flight.TimeSic
	totals.TimeNight += flight.TimeNight
	totals.TimeSolo += flight.TimeSolo
	totals.TimeXc += flight.TimeXc
	totals.DistXc += flight.DistXc

	totals.TakeoffsDay += flight.TakeoffsDay
	totals.LandingsDay += flight.LandingsDay
	totals.TakeoffsNight += flight.TakeoffsNight
	totals.LandingsNight += flight.LandingsNight

	totals.TimeInstrument += flight.TimeInstrument
	totals.TimeSimInstrument += flight.TimeSimInstrument
	totals.HoldsInstrument += flight.HoldsInstrument

	totals.DualGiven += flight.DualGiven
	totals.DualRecvd += flight.DualRecvd
	totals.TimeSim += flight.TimeSim
	totals.TimeGround += flight.TimeGround

	// Overlaps are taken per flight, then summed. min of the column totals
	// would overstate them whenever the two activities happen on different
	// flights.
	totals.XcDualRecvd += minHours(flight.TimeXc, flight.DualRecvd)
	totals.XcSolo += minHours(flight.TimeXc, flight.TimeSolo)
	totals.XcPic += minHours(flight.TimeXc, flight.TimePic)
	totals.NightDualRecvd += minHours(flight.TimeNight, flight.DualRecvd)
	totals.NightPic += minHours(flight.TimeNight, flight.TimePic)
}

// AggregateTotals folds a flight list into one totals block. An empty list
// yields an all-zero block, never an error.
func AggregateTotals(flights []*operation.Flight) *FlightTotals {
	totals := &FlightTotals{}
	for _, flight := range flights {
		addFlight(totals, flight)
	}
	return totals
}

// categoryClassKey renders the rollup key for an aircraft, for example
// "Airplane / Single-Engine Land". Flights whose aircraft is unknown are
// grouped under "Unknown".
func categoryClassKey(aircraft *operation.Aircraft) string {
	if aircraft == nil {
		return "Unknown"
	}
	return aircraft.Category + " / " + aircraft.Class
}

func (flightService *FlightService) GetTotals(req *RequestFlightTotals) *ApiResponse[ResponseFlightTotals] {
	if req.StartDate != "" && !validDate(req.StartDate) {
		return NewApiResponse[ResponseFlightTotals](&ErrInvalidDate, Unsatisfied, nil)
	}
	if req.EndDate != "" && !validDate(req.EndDate) {
		return NewApiResponse[ResponseFlightTotals](&ErrInvalidDate, Unsatisfied, nil)
	}

	query := &operation.FlightQuery{
		UserID:    req.Uid,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		SortField: "date",
	}
	flights, res := CallDBFuncAndCheckError[[]*operation.Flight, ResponseFlightTotals](func() (*[]*operation.Flight, error) {
		flights, err := flightService.flightOperation.GetFlights(query)
		return &flights, err
	})
	if res != nil {
		return res
	}

	response := &ResponseFlightTotals{
		Totals: *AggregateTotals(*flights),
	}

	if req.GroupAircraft {
		// One aircraft lookup per distinct tail number in range.
		aircraftByTail := make(map[string]*operation.Aircraft)
		grouped := make(map[string]*FlightTotals)
		for _, flight := range *flights {
			aircraft, seen := aircraftByTail[flight.Aircraft]
			if !seen {
				found, err := flightService.aircraftOperation.GetAircraftByTailNo(flight.Aircraft)
				if err == nil {
					aircraft = found
				}
				aircraftByTail[flight.Aircraft] = aircraft
			}
			key := categoryClassKey(aircraft)
			if grouped[key] == nil {
				grouped[key] = &FlightTotals{}
			}
			addFlight(grouped[key], flight)
		}
		response.ByCategoryClass = grouped
	}

	return NewApiResponse(&SuccessGetTotals, Unsatisfied, response)
}
