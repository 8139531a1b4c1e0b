package service

import (
	"errors"
	"testing"

	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFlightServiceForTest() (*FlightService, *MockFlightOperation, *MockAircraftOperation) {
	mockFlights := new(MockFlightOperation)
	mockAircraft := new(MockAircraftOperation)
	return NewFlightService(&testLogger{}, testHttpConfig(), mockFlights, mockAircraft), mockFlights, mockAircraft
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"2024-01-15", true},
		{"2024-2-5", false},
		{"15-01-2024", false},
		{"2024-13-01", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validDate(tt.value), "validDate(%q)", tt.value)
	}
}

func TestFlightService_ValidatePatch(t *testing.T) {
	flightService, _, _ := newFlightServiceForTest()

	tests := []struct {
		name  string
		patch map[string]interface{}
		want  *ApiStatus
	}{
		{"valid mixed", map[string]interface{}{
			"date": "2024-03-02", "aircraft": "N12345", "time_total": 1.5,
			"landings_day": float64(3), "tags": []interface{}{"checkride"},
		}, nil},
		{"unknown field", map[string]interface{}{"bogus": 1.0}, &ErrInvalidField},
		{"immutable field", map[string]interface{}{"id": float64(9)}, &ErrInvalidField},
		{"bad date", map[string]interface{}{"date": "03/02/2024"}, &ErrInvalidDate},
		{"string where number", map[string]interface{}{"time_total": "1.5"}, &ErrInvalidFieldValue},
		{"negative hours", map[string]interface{}{"time_pic": -0.1}, &ErrNegativeValue},
		{"fractional count", map[string]interface{}{"landings_day": 1.5}, &ErrInvalidFieldValue},
		{"negative count", map[string]interface{}{"landings_day": float64(-1)}, &ErrNegativeValue},
		{"list of non strings", map[string]interface{}{"tags": []interface{}{1, 2}}, &ErrInvalidFieldValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flightService.validatePatch(tt.patch))
		})
	}
}

func TestFlightService_CreateFlight_UnknownAircraft(t *testing.T) {
	flightService, mockFlights, mockAircraft := newFlightServiceForTest()
	mockAircraft.On("GetAircraftByTailNo", "N99999").Return(nil, operation.ErrAircraftNotFound).Once()

	res := flightService.CreateFlight(&RequestFlightCreate{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		Flight:    operation.Flight{Date: "2024-03-02", Aircraft: "N99999"},
	})

	assert.Equal(t, ErrAircraftNotFound.StatusName, res.Code)
	mockFlights.AssertNotCalled(t, "AddFlight", mock.Anything)
	mockAircraft.AssertExpectations(t)
}

func TestFlightService_CreateFlight_SyncsHobbs(t *testing.T) {
	flightService, mockFlights, mockAircraft := newFlightServiceForTest()
	aircraft := &operation.Aircraft{ID: 4, TailNo: "N12345", Hobbs: 100.0}
	mockAircraft.On("GetAircraftByTailNo", "N12345").Return(aircraft, nil).Once()
	mockFlights.On("AddFlight", mock.Anything).Return(nil).Once()
	mockAircraft.On("UpdateAircraftHobbs", aircraft, 101.3).Return(nil).Once()

	res := flightService.CreateFlight(&RequestFlightCreate{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		Flight: operation.Flight{
			Date: "2024-03-02", Aircraft: "N12345",
			HobbsStart: 100.0, HobbsEnd: 101.3, TimeTotal: 1.3,
		},
	})

	assert.Equal(t, SuccessCreateFlight.StatusName, res.Code)
	assert.Equal(t, uint(1), res.Data.UserID)
	mockFlights.AssertExpectations(t)
	mockAircraft.AssertExpectations(t)
}

func TestFlightService_CreateFlight_HobbsBehindMeterNotSynced(t *testing.T) {
	flightService, mockFlights, mockAircraft := newFlightServiceForTest()
	aircraft := &operation.Aircraft{ID: 4, TailNo: "N12345", Hobbs: 200.0}
	mockAircraft.On("GetAircraftByTailNo", "N12345").Return(aircraft, nil).Once()
	mockFlights.On("AddFlight", mock.Anything).Return(nil).Once()

	res := flightService.CreateFlight(&RequestFlightCreate{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		Flight:    operation.Flight{Date: "2024-03-02", Aircraft: "N12345", HobbsEnd: 150.0},
	})

	assert.Equal(t, SuccessCreateFlight.StatusName, res.Code)
	mockAircraft.AssertNotCalled(t, "UpdateAircraftHobbs", mock.Anything, mock.Anything)
}

// A hobbs write-back failure is logged and swallowed, the flight is created
// either way.
func TestFlightService_CreateFlight_HobbsSyncFailureIgnored(t *testing.T) {
	flightService, mockFlights, mockAircraft := newFlightServiceForTest()
	aircraft := &operation.Aircraft{ID: 4, TailNo: "N12345", Hobbs: 100.0}
	mockAircraft.On("GetAircraftByTailNo", "N12345").Return(aircraft, nil).Once()
	mockFlights.On("AddFlight", mock.Anything).Return(nil).Once()
	mockAircraft.On("UpdateAircraftHobbs", aircraft, 101.0).Return(errors.New("connection lost")).Once()

	res := flightService.CreateFlight(&RequestFlightCreate{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		Flight:    operation.Flight{Date: "2024-03-02", Aircraft: "N12345", HobbsEnd: 101.0},
	})

	assert.Equal(t, SuccessCreateFlight.StatusName, res.Code)
}

func TestFlightService_CreateFlight_RejectsNegativeHours(t *testing.T) {
	flightService, mockFlights, _ := newFlightServiceForTest()

	res := flightService.CreateFlight(&RequestFlightCreate{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		Flight:    operation.Flight{Date: "2024-03-02", TimeTotal: -1.0},
	})

	assert.Equal(t, ErrNegativeValue.StatusName, res.Code)
	mockFlights.AssertNotCalled(t, "AddFlight", mock.Anything)
}

// A flight owned by someone else reads as missing, not forbidden.
func TestFlightService_GetFlight_OtherOwnerHidden(t *testing.T) {
	flightService, mockFlights, _ := newFlightServiceForTest()
	mockFlights.On("GetFlightById", uint(7)).Return(&operation.Flight{ID: 7, UserID: 2}, nil).Once()

	res := flightService.GetFlight(&RequestFlight{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		FlightID:  7,
	})

	assert.Equal(t, ErrFlightNotFound.StatusName, res.Code)
	assert.Equal(t, NotFound.Code(), res.HttpCode)
}

func TestFlightService_GetFlight_AdminSeesAny(t *testing.T) {
	flightService, mockFlights, _ := newFlightServiceForTest()
	mockFlights.On("GetFlightById", uint(7)).Return(&operation.Flight{ID: 7, UserID: 2}, nil).Once()

	res := flightService.GetFlight(&RequestFlight{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelAdmin)},
		FlightID:  7,
	})

	assert.Equal(t, SuccessGetFlight.StatusName, res.Code)
	assert.Equal(t, uint(7), res.Data.ID)
}

func TestFlightService_GetAllFlights_RequiresAdmin(t *testing.T) {
	flightService, mockFlights, _ := newFlightServiceForTest()

	res := flightService.GetAllFlights(&RequestFlightListAll{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
	})

	assert.Equal(t, ErrNoPermission.StatusName, res.Code)
	mockFlights.AssertNotCalled(t, "GetFlights", mock.Anything)
}

func TestFlightService_GetFlightList_ScopedToCaller(t *testing.T) {
	flightService, mockFlights, _ := newFlightServiceForTest()
	mockFlights.On("GetFlights", mock.MatchedBy(func(query *operation.FlightQuery) bool {
		return query.UserID == 5 && query.Descending
	})).Return([]*operation.Flight{{ID: 1, UserID: 5}}, nil).Once()

	res := flightService.GetFlightList(&RequestFlightList{
		JwtHeader: JwtHeader{Uid: 5, Level: int(operation.LevelUser)},
		Order:     "desc",
	})

	assert.Equal(t, SuccessGetFlights.StatusName, res.Code)
	assert.Equal(t, 1, res.Data.Total)
	mockFlights.AssertExpectations(t)
}

func TestFlightService_EditFlight_EmptyPatch(t *testing.T) {
	flightService, _, _ := newFlightServiceForTest()

	res := flightService.EditFlight(&RequestFlightEdit{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		FlightID:  3,
		Patch:     map[string]interface{}{},
	})

	assert.Equal(t, ErrLackParam.StatusName, res.Code)
}

func TestFlightService_EditFlight_AppliesPatch(t *testing.T) {
	flightService, mockFlights, _ := newFlightServiceForTest()
	patch := map[string]interface{}{"comments": "pattern work"}
	stored := &operation.Flight{ID: 3, UserID: 1, Date: "2024-03-02"}
	updated := &operation.Flight{ID: 3, UserID: 1, Date: "2024-03-02", Comments: "pattern work"}
	mockFlights.On("GetFlightById", uint(3)).Return(stored, nil).Once()
	mockFlights.On("UpdateFlightInfo", stored, patch).Return(nil).Once()
	mockFlights.On("GetFlightById", uint(3)).Return(updated, nil).Once()

	res := flightService.EditFlight(&RequestFlightEdit{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		FlightID:  3,
		Patch:     patch,
	})

	assert.Equal(t, SuccessEditFlight.StatusName, res.Code)
	assert.Equal(t, "pattern work", res.Data.Comments)
	mockFlights.AssertExpectations(t)
}

func TestFlightService_EditFlight_PatchedTailMustExist(t *testing.T) {
	flightService, mockFlights, mockAircraft := newFlightServiceForTest()
	mockFlights.On("GetFlightById", uint(3)).Return(&operation.Flight{ID: 3, UserID: 1}, nil).Once()
	mockAircraft.On("GetAircraftByTailNo", "N404XX").Return(nil, operation.ErrAircraftNotFound).Once()

	res := flightService.EditFlight(&RequestFlightEdit{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		FlightID:  3,
		Patch:     map[string]interface{}{"aircraft": "N404XX"},
	})

	assert.Equal(t, ErrAircraftNotFound.StatusName, res.Code)
	mockFlights.AssertNotCalled(t, "UpdateFlightInfo", mock.Anything, mock.Anything)
}

func TestFlightService_ReplaceFlight_KeepsIdentity(t *testing.T) {
	flightService, mockFlights, _ := newFlightServiceForTest()
	stored := &operation.Flight{ID: 3, UserID: 1, Date: "2024-03-02", TimeTotal: 1.0}
	mockFlights.On("GetFlightById", uint(3)).Return(stored, nil).Once()
	mockFlights.On("SaveFlight", mock.MatchedBy(func(flight *operation.Flight) bool {
		return flight.ID == 3 && flight.UserID == 1 && flight.TimeTotal == 2.5
	})).Return(nil).Once()

	res := flightService.ReplaceFlight(&RequestFlightReplace{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		FlightID:  3,
		Flight: operation.Flight{
			// A forged owner in the body must not take effect.
			ID: 99, UserID: 42,
			Date: "2024-03-03", TimeTotal: 2.5,
		},
	})

	assert.Equal(t, SuccessEditFlight.StatusName, res.Code)
	assert.Equal(t, uint(3), res.Data.ID)
	assert.Equal(t, uint(1), res.Data.UserID)
	mockFlights.AssertExpectations(t)
}

func TestFlightService_ReplaceFlight_OtherOwnerHidden(t *testing.T) {
	flightService, mockFlights, _ := newFlightServiceForTest()
	mockFlights.On("GetFlightById", uint(3)).Return(&operation.Flight{ID: 3, UserID: 9}, nil).Once()

	res := flightService.ReplaceFlight(&RequestFlightReplace{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		FlightID:  3,
		Flight:    operation.Flight{Date: "2024-03-03"},
	})

	assert.Equal(t, ErrFlightNotFound.StatusName, res.Code)
	mockFlights.AssertNotCalled(t, "SaveFlight", mock.Anything)
}

func TestFlightService_DeleteFlight(t *testing.T) {
	flightService, mockFlights, _ := newFlightServiceForTest()
	flight := &operation.Flight{ID: 9, UserID: 1}
	mockFlights.On("GetFlightById", uint(9)).Return(flight, nil).Once()
	mockFlights.On("DeleteFlight", flight).Return(nil).Once()

	res := flightService.DeleteFlight(&RequestFlightDelete{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		FlightID:  9,
	})

	assert.Equal(t, SuccessDeleteFlight.StatusName, res.Code)
	mockFlights.AssertExpectations(t)
}

func TestFlightService_DeleteFlight_Missing(t *testing.T) {
	flightService, mockFlights, _ := newFlightServiceForTest()
	mockFlights.On("GetFlightById", uint(9)).Return(nil, operation.ErrFlightNotFound).Once()

	res := flightService.DeleteFlight(&RequestFlightDelete{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
		FlightID:  9,
	})

	assert.Equal(t, ErrFlightNotFound.StatusName, res.Code)
	mockFlights.AssertNotCalled(t, "DeleteFlight", mock.Anything)
}

func TestFlightService_GetFlightsByDate(t *testing.T) {
	flightService, mockFlights, _ := newFlightServiceForTest()
	mockFlights.On("GetFlights", mock.Anything).Return([]*operation.Flight{
		{ID: 1, Date: "2024-03-01"},
		{ID: 2, Date: "2024-03-01"},
		{ID: 3, Date: "2024-03-05"},
	}, nil).Once()

	res := flightService.GetFlightsByDate(&RequestFlightsByDate{
		JwtHeader: JwtHeader{Uid: 1, Level: int(operation.LevelUser)},
	})

	assert.Equal(t, SuccessGetFlights.StatusName, res.Code)
	grouped := *res.Data
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["2024-03-01"], 2)
	assert.Len(t, grouped["2024-03-05"], 1)
}
