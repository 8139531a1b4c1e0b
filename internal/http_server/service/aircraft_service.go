// Package service
package service

import (
	c "github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
)

type AircraftService struct {
	logger            log.LoggerInterface
	config            *c.HttpServerConfig
	aircraftOperation operation.AircraftOperationInterface
}

func NewAircraftService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	aircraftOperation operation.AircraftOperationInterface,
) *AircraftService {
	return &AircraftService{
		logger:            logger,
		config:            config,
		aircraftOperation: aircraftOperation,
	}
}

var (
	ErrInvalidCategoryClass = ApiStatus{StatusName: "INVALID_CATEGORY_CLASS", Description: "class does not belong to the category", HttpCode: BadRequest}
	ErrNegativeMeter        = ApiStatus{StatusName: "NEGATIVE_METER", Description: "meter readings cannot be negative", HttpCode: BadRequest}
	SuccessCreateAircraft   = ApiStatus{StatusName: "CREATE_AIRCRAFT_SUCCESS", Description: "aircraft created", HttpCode: Created}
	SuccessGetAircraft      = ApiStatus{StatusName: "GET_AIRCRAFT_SUCCESS", Description: "aircraft fetched", HttpCode: Ok}
	SuccessGetAircraftList  = ApiStatus{StatusName: "GET_AIRCRAFT_LIST_SUCCESS", Description: "aircraft list fetched", HttpCode: Ok}
	SuccessEditAircraft     = ApiStatus{StatusName: "EDIT_AIRCRAFT_SUCCESS", Description: "aircraft updated", HttpCode: Ok}
	SuccessDeleteAircraft   = ApiStatus{StatusName: "DELETE_AIRCRAFT_SUCCESS", Description: "aircraft deleted", HttpCode: Ok}
)

func (aircraftService *AircraftService) CreateAircraft(req *RequestAircraftCreate) *ApiResponse[ResponseAircraftCreate] {
	if err := tailNoValidator.CheckString(req.TailNo); err != nil {
		return NewApiResponse[ResponseAircraftCreate](err, Unsatisfied, nil)
	}
	if !operation.ValidCategoryClass(req.Category, req.Class) {
		return NewApiResponse[ResponseAircraftCreate](&ErrInvalidCategoryClass, Unsatisfied, nil)
	}
	if req.Hobbs < 0 || req.Tach < 0 {
		return NewApiResponse[ResponseAircraftCreate](&ErrNegativeMeter, Unsatisfied, nil)
	}
	aircraft := &operation.Aircraft{
		UserID:   req.Uid,
		TailNo:   req.TailNo,
		Make:     req.Make,
		Model:    req.Model,
		Category: req.Category,
		Class:    req.Class,
		Hobbs:    req.Hobbs,
		Tach:     req.Tach,
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAircraftCreate](func() (*interface{}, error) {
		return nil, aircraftService.aircraftOperation.AddAircraft(aircraft)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessCreateAircraft, Unsatisfied, (*ResponseAircraftCreate)(aircraft))
}

func (aircraftService *AircraftService) GetAircraft(req *RequestAircraft) *ApiResponse[ResponseAircraft] {
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseAircraft](func() (*operation.Aircraft, error) {
		return aircraftService.aircraftOperation.GetAircraftById(req.AircraftID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAircraft, Unsatisfied, (*ResponseAircraft)(aircraft))
}

func (aircraftService *AircraftService) listAircraft(userID uint) *ApiResponse[ResponseAircraftList] {
	aircraft, res := CallDBFuncAndCheckError[[]*operation.Aircraft, ResponseAircraftList](func() (*[]*operation.Aircraft, error) {
		aircraft, err := aircraftService.aircraftOperation.GetAircraftList(userID)
		return &aircraft, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAircraftList, Unsatisfied, &ResponseAircraftList{
		Items: *aircraft,
		Total: len(*aircraft),
	})
}

func (aircraftService *AircraftService) GetAircraftList(req *RequestAircraftList) *ApiResponse[ResponseAircraftList] {
	return aircraftService.listAircraft(req.Uid)
}

func (aircraftService *AircraftService) GetAllAircraft(req *RequestAircraftListAll) *ApiResponse[ResponseAircraftList] {
	if res := RequireLevel[ResponseAircraftList](&req.JwtHeader, operation.LevelAdmin); res != nil {
		return res
	}
	return aircraftService.listAircraft(0)
}

func (aircraftService *AircraftService) EditAircraft(req *RequestAircraftEdit) *ApiResponse[ResponseAircraftEdit] {
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseAircraftEdit](func() (*operation.Aircraft, error) {
		return aircraftService.aircraftOperation.GetAircraftById(req.AircraftID)
	})
	if res != nil {
		return res
	}
	if aircraft.UserID != req.Uid {
		if res := RequireLevel[ResponseAircraftEdit](&req.JwtHeader, operation.LevelAdmin); res != nil {
			return res
		}
	}

	if req.Make != nil {
		aircraft.Make = *req.Make
	}
	if req.Model != nil {
		aircraft.Model = *req.Model
	}
	category := aircraft.Category
	class := aircraft.Class
	if req.Category != nil {
		category = *req.Category
	}
	if req.Class != nil {
		class = *req.Class
	}
	if !operation.ValidCategoryClass(category, class) {
		return NewApiResponse[ResponseAircraftEdit](&ErrInvalidCategoryClass, Unsatisfied, nil)
	}
	aircraft.Category = category
	aircraft.Class = class
	if req.Hobbs != nil {
		if *req.Hobbs < 0 {
			return NewApiResponse[ResponseAircraftEdit](&ErrNegativeMeter, Unsatisfied, nil)
		}
		aircraft.Hobbs = *req.Hobbs
	}
	if req.Tach != nil {
		if *req.Tach < 0 {
			return NewApiResponse[ResponseAircraftEdit](&ErrNegativeMeter, Unsatisfied, nil)
		}
		aircraft.Tach = *req.Tach
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAircraftEdit](func() (*interface{}, error) {
		return nil, aircraftService.aircraftOperation.SaveAircraft(aircraft)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessEditAircraft, Unsatisfied, (*ResponseAircraftEdit)(aircraft))
}

func (aircraftService *AircraftService) DeleteAircraft(req *RequestAircraftDelete) *ApiResponse[ResponseAircraftDelete] {
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseAircraftDelete](func() (*operation.Aircraft, error) {
		return aircraftService.aircraftOperation.GetAircraftById(req.AircraftID)
	})
	if res != nil {
		return res
	}
	if aircraft.UserID != req.Uid {
		if res := RequireLevel[ResponseAircraftDelete](&req.JwtHeader, operation.LevelAdmin); res != nil {
			return res
		}
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAircraftDelete](func() (*interface{}, error) {
		return nil, aircraftService.aircraftOperation.DeleteAircraft(aircraft)
	}); res != nil {
		return res
	}
	data := ResponseAircraftDelete(true)
	return NewApiResponse(&SuccessDeleteAircraft, Unsatisfied, &data)
}
