// Package service
package service

import (
	"errors"
	"time"

	c "github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
)

type FlightService struct {
	logger            log.LoggerInterface
	config            *c.HttpServerConfig
	flightOperation   operation.FlightOperationInterface
	aircraftOperation operation.AircraftOperationInterface
}

func NewFlightService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	flightOperation operation.FlightOperationInterface,
	aircraftOperation operation.AircraftOperationInterface,
) *FlightService {
	return &FlightService{
		logger:            logger,
		config:            config,
		flightOperation:   flightOperation,
		aircraftOperation: aircraftOperation,
	}
}

var (
	ErrInvalidDate       = ApiStatus{StatusName: "INVALID_DATE", Description: "date must be formatted YYYY-MM-DD", HttpCode: BadRequest}
	ErrNegativeValue     = ApiStatus{StatusName: "NEGATIVE_VALUE", Description: "durations and counts cannot be negative", HttpCode: BadRequest}
	ErrInvalidFieldValue = ApiStatus{StatusName: "INVALID_FIELD_VALUE", Description: "field value has the wrong type", HttpCode: BadRequest}
	SuccessCreateFlight  = ApiStatus{StatusName: "CREATE_FLIGHT_SUCCESS", Description: "flight created", HttpCode: Created}
	SuccessGetFlight     = ApiStatus{StatusName: "GET_FLIGHT_SUCCESS", Description: "flight fetched", HttpCode: Ok}
	SuccessGetFlights    = ApiStatus{StatusName: "GET_FLIGHTS_SUCCESS", Description: "flight list fetched", HttpCode: Ok}
	SuccessEditFlight    = ApiStatus{StatusName: "EDIT_FLIGHT_SUCCESS", Description: "flight updated", HttpCode: Ok}
	SuccessDeleteFlight  = ApiStatus{StatusName: "DELETE_FLIGHT_SUCCESS", Description: "flight deleted", HttpCode: Ok}
)

func validDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func (flightService *FlightService) validateFlight(flight *operation.Flight) *ApiStatus {
	if !validDate(flight.Date) {
		return &ErrInvalidDate
	}
	hours := []float64{
		flight.HobbsStart, flight.HobbsEnd, flight.TachStart, flight.TachEnd,
		flight.TimeTotal, flight.TimePic, flight.TimeSic, flight.TimeNight,
		flight.TimeSolo, flight.TimeXc, flight.DistXc,
		flight.TimeInstrument, flight.TimeSimInstrument,
		flight.DualGiven, flight.DualRecvd, flight.TimeSim, flight.TimeGround,
	}
	for _, v := range hours {
		if v < 0 {
			return &ErrNegativeValue
		}
	}
	counts := []int{
		flight.TakeoffsDay, flight.LandingsDay, flight.TakeoffsNight,
		flight.LandingsNight, flight.HoldsInstrument,
	}
	for _, v := range counts {
		if v < 0 {
			return &ErrNegativeValue
		}
	}
	return nil
}

// syncAircraftHobbs moves the aircraft meter forward when the flight's
// closing hobbs reads past it. A failure here never fails the flight write.
func (flightService *FlightService) syncAircraftHobbs(aircraft *operation.Aircraft, hobbsEnd float64) {
	if aircraft == nil || hobbsEnd <= aircraft.Hobbs {
		return
	}
	if err := flightService.aircraftOperation.UpdateAircraftHobbs(aircraft, hobbsEnd); err != nil {
		flightService.logger.ErrorF("FlightService.syncAircraftHobbs update error: %v", err)
	}
}

func (flightService *FlightService) CreateFlight(req *RequestFlightCreate) *ApiResponse[ResponseFlightCreate] {
	flight := req.Flight
	flight.ID = 0
	flight.UserID = req.Uid

	if status := flightService.validateFlight(&flight); status != nil {
		return NewApiResponse[ResponseFlightCreate](status, Unsatisfied, nil)
	}

	var aircraft *operation.Aircraft
	if flight.Aircraft != "" {
		found, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseFlightCreate](func() (*operation.Aircraft, error) {
			return flightService.aircraftOperation.GetAircraftByTailNo(flight.Aircraft)
		})
		if res != nil {
			return res
		}
		aircraft = found
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseFlightCreate](func() (*interface{}, error) {
		return nil, flightService.flightOperation.AddFlight(&flight)
	}); res != nil {
		return res
	}

	flightService.syncAircraftHobbs(aircraft, flight.HobbsEnd)

	return NewApiResponse(&SuccessCreateFlight, Unsatisfied, (*ResponseFlightCreate)(&flight))
}

func (flightService *FlightService) getOwnedFlight(id uint, header *JwtHeader) (*operation.Flight, *ApiStatus) {
	flight, err := flightService.flightOperation.GetFlightById(id)
	if errors.Is(err, operation.ErrFlightNotFound) {
		return nil, &ErrFlightNotFound
	}
	if err != nil {
		return nil, &ErrDatabaseFail
	}
	if flight.UserID != header.Uid && !header.AuthLevel().AtLeast(operation.LevelAdmin) {
		// Hidden rather than forbidden, existence is not leaked.
		return nil, &ErrFlightNotFound
	}
	return flight, nil
}

func (flightService *FlightService) GetFlight(req *RequestFlight) *ApiResponse[ResponseFlight] {
	flight, status := flightService.getOwnedFlight(req.FlightID, &req.JwtHeader)
	if status != nil {
		return NewApiResponse[ResponseFlight](status, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetFlight, Unsatisfied, (*ResponseFlight)(flight))
}

func (flightService *FlightService) listFlights(userID uint, req *RequestFlightList) *ApiResponse[ResponseFlightList] {
	if req.StartDate != "" && !validDate(req.StartDate) {
		return NewApiResponse[ResponseFlightList](&ErrInvalidDate, Unsatisfied, nil)
	}
	if req.EndDate != "" && !validDate(req.EndDate) {
		return NewApiResponse[ResponseFlightList](&ErrInvalidDate, Unsatisfied, nil)
	}
	query := &operation.FlightQuery{
		UserID:      userID,
		FilterField: req.FilterField,
		FilterValue: req.FilterValue,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		SortField:   req.SortField,
		Descending:  req.Order == "desc",
	}
	flights, res := CallDBFuncAndCheckError[[]*operation.Flight, ResponseFlightList](func() (*[]*operation.Flight, error) {
		flights, err := flightService.flightOperation.GetFlights(query)
		return &flights, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetFlights, Unsatisfied, &ResponseFlightList{
		Items: *flights,
		Total: len(*flights),
	})
}

func (flightService *FlightService) GetFlightList(req *RequestFlightList) *ApiResponse[ResponseFlightList] {
	return flightService.listFlights(req.Uid, req)
}

func (flightService *FlightService) GetAllFlights(req *RequestFlightListAll) *ApiResponse[ResponseFlightList] {
	if res := RequireLevel[ResponseFlightList](&req.JwtHeader, operation.LevelAdmin); res != nil {
		return res
	}
	return flightService.listFlights(0, &req.RequestFlightList)
}

func (flightService *FlightService) validatePatch(patch map[string]interface{}) *ApiStatus {
	for field, value := range patch {
		kind, ok := operation.FlightFields[field]
		if !ok {
			return &ErrInvalidField
		}
		switch kind {
		case operation.FieldString:
			if _, ok := value.(string); !ok {
				return &ErrInvalidFieldValue
			}
		case operation.FieldDate:
			str, ok := value.(string)
			if !ok || !validDate(str) {
				return &ErrInvalidDate
			}
		case operation.FieldHours:
			num, ok := value.(float64)
			if !ok {
				return &ErrInvalidFieldValue
			}
			if num < 0 {
				return &ErrNegativeValue
			}
		case operation.FieldCount:
			num, ok := value.(float64)
			if !ok || num != float64(int(num)) {
				return &ErrInvalidFieldValue
			}
			if num < 0 {
				return &ErrNegativeValue
			}
		case operation.FieldStringList:
			list, ok := value.([]interface{})
			if !ok {
				return &ErrInvalidFieldValue
			}
			for _, item := range list {
				if _, ok := item.(string); !ok {
					return &ErrInvalidFieldValue
				}
			}
		}
	}
	return nil
}

func (flightService *FlightService) EditFlight(req *RequestFlightEdit) *ApiResponse[ResponseFlightEdit] {
	if len(req.Patch) == 0 {
		return NewApiResponse[ResponseFlightEdit](&ErrLackParam, Unsatisfied, nil)
	}
	if status := flightService.validatePatch(req.Patch); status != nil {
		return NewApiResponse[ResponseFlightEdit](status, Unsatisfied, nil)
	}

	flight, status := flightService.getOwnedFlight(req.FlightID, &req.JwtHeader)
	if status != nil {
		return NewApiResponse[ResponseFlightEdit](status, Unsatisfied, nil)
	}

	var aircraft *operation.Aircraft
	tailNo := flight.Aircraft
	if value, ok := req.Patch["aircraft"]; ok {
		tailNo = value.(string)
	}
	if tailNo != "" {
		found, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseFlightEdit](func() (*operation.Aircraft, error) {
			return flightService.aircraftOperation.GetAircraftByTailNo(tailNo)
		})
		if res != nil {
			return res
		}
		aircraft = found
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseFlightEdit](func() (*interface{}, error) {
		return nil, flightService.flightOperation.UpdateFlightInfo(flight, req.Patch)
	}); res != nil {
		return res
	}

	updated, res := CallDBFuncAndCheckError[operation.Flight, ResponseFlightEdit](func() (*operation.Flight, error) {
		return flightService.flightOperation.GetFlightById(flight.ID)
	})
	if res != nil {
		return res
	}

	if _, ok := req.Patch["hobbs_end"]; ok {
		flightService.syncAircraftHobbs(aircraft, updated.HobbsEnd)
	}

	return NewApiResponse(&SuccessEditFlight, Unsatisfied, (*ResponseFlightEdit)(updated))
}

func (flightService *FlightService) ReplaceFlight(req *RequestFlightReplace) *ApiResponse[ResponseFlightEdit] {
	if status := flightService.validateFlight(&req.Flight); status != nil {
		return NewApiResponse[ResponseFlightEdit](status, Unsatisfied, nil)
	}

	stored, status := flightService.getOwnedFlight(req.FlightID, &req.JwtHeader)
	if status != nil {
		return NewApiResponse[ResponseFlightEdit](status, Unsatisfied, nil)
	}

	var aircraft *operation.Aircraft
	if req.Flight.Aircraft != "" {
		found, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseFlightEdit](func() (*operation.Aircraft, error) {
			return flightService.aircraftOperation.GetAircraftByTailNo(req.Flight.Aircraft)
		})
		if res != nil {
			return res
		}
		aircraft = found
	}

	// Identity and ownership survive the replacement.
	flight := req.Flight
	flight.ID = stored.ID
	flight.UserID = stored.UserID

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseFlightEdit](func() (*interface{}, error) {
		return nil, flightService.flightOperation.SaveFlight(&flight)
	}); res != nil {
		return res
	}

	flightService.syncAircraftHobbs(aircraft, flight.HobbsEnd)

	return NewApiResponse(&SuccessEditFlight, Unsatisfied, (*ResponseFlightEdit)(&flight))
}

func (flightService *FlightService) DeleteFlight(req *RequestFlightDelete) *ApiResponse[ResponseFlightDelete] {
	flight, status := flightService.getOwnedFlight(req.FlightID, &req.JwtHeader)
	if status != nil {
		return NewApiResponse[ResponseFlightDelete](status, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseFlightDelete](func() (*interface{}, error) {
		return nil, flightService.flightOperation.DeleteFlight(flight)
	}); res != nil {
		return res
	}
	data := ResponseFlightDelete(true)
	return NewApiResponse(&SuccessDeleteFlight, Unsatisfied, &data)
}

func (flightService *FlightService) GetFlightsByDate(req *RequestFlightsByDate) *ApiResponse[ResponseFlightsByDate] {
	if req.StartDate != "" && !validDate(req.StartDate) {
		return NewApiResponse[ResponseFlightsByDate](&ErrInvalidDate, Unsatisfied, nil)
	}
	if req.EndDate != "" && !validDate(req.EndDate) {
		return NewApiResponse[ResponseFlightsByDate](&ErrInvalidDate, Unsatisfied, nil)
	}
	query := &operation.FlightQuery{
		UserID:    req.Uid,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		SortField: "date",
	}
	flights, res := CallDBFuncAndCheckError[[]*operation.Flight, ResponseFlightsByDate](func() (*[]*operation.Flight, error) {
		flights, err := flightService.flightOperation.GetFlights(query)
		return &flights, err
	})
	if res != nil {
		return res
	}
	grouped := make(ResponseFlightsByDate)
	for _, flight := range *flights {
		grouped[flight.Date] = append(grouped[flight.Date], flight)
	}
	return NewApiResponse(&SuccessGetFlights, Unsatisfied, &grouped)
}
