// Package service
package service

import (
	c "github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
)

type UserService struct {
	logger          log.LoggerInterface
	config          *c.HttpServerConfig
	userOperation   operation.UserOperationInterface
	flightOperation operation.FlightOperationInterface
	imageOperation  operation.ImageOperationInterface
	storeService    StoreServiceInterface
}

func NewUserService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	userOperation operation.UserOperationInterface,
	flightOperation operation.FlightOperationInterface,
	imageOperation operation.ImageOperationInterface,
	storeService StoreServiceInterface,
) *UserService {
	return &UserService{
		logger:          logger,
		config:          config,
		userOperation:   userOperation,
		flightOperation: flightOperation,
		imageOperation:  imageOperation,
		storeService:    storeService,
	}
}

var (
	ErrInvalidLevel      = ApiStatus{StatusName: "INVALID_LEVEL", Description: "unknown authorization level", HttpCode: BadRequest}
	ErrSelfDelete        = ApiStatus{StatusName: "SELF_DELETE", Description: "an account cannot delete itself", HttpCode: BadRequest}
	SuccessCreateUser    = ApiStatus{StatusName: "CREATE_USER_SUCCESS", Description: "user created", HttpCode: Created}
	SuccessGetProfile    = ApiStatus{StatusName: "GET_PROFILE_SUCCESS", Description: "profile fetched", HttpCode: Ok}
	SuccessGetUserList   = ApiStatus{StatusName: "GET_USER_LIST_SUCCESS", Description: "user list fetched", HttpCode: Ok}
	SuccessEditUser      = ApiStatus{StatusName: "EDIT_USER_SUCCESS", Description: "user updated", HttpCode: Ok}
	SuccessEditPassword  = ApiStatus{StatusName: "EDIT_PASSWORD_SUCCESS", Description: "password updated", HttpCode: Ok}
	SuccessDeleteUser    = ApiStatus{StatusName: "DELETE_USER_SUCCESS", Description: "user deleted", HttpCode: Ok}
	ErrOldPasswordStatus = ApiStatus{StatusName: "OLD_PASSWORD_WRONG", Description: "original password does not match", HttpCode: BadRequest}
)

func (userService *UserService) CreateUser(req *RequestUserCreate) *ApiResponse[ResponseUserCreate] {
	if res := RequireLevel[ResponseUserCreate](&req.JwtHeader, operation.LevelAdmin); res != nil {
		return res
	}
	if err := usernameValidator.CheckString(req.Username); err != nil {
		return NewApiResponse[ResponseUserCreate](err, Unsatisfied, nil)
	}
	if err := passwordValidator.CheckString(req.Password); err != nil {
		return NewApiResponse[ResponseUserCreate](err, Unsatisfied, nil)
	}
	level := operation.AuthLevel(req.Level)
	if !level.Valid() {
		return NewApiResponse[ResponseUserCreate](&ErrInvalidLevel, Unsatisfied, nil)
	}
	user, err := userService.userOperation.NewUser(req.Username, req.Password, level)
	if err != nil {
		return NewApiResponse[ResponseUserCreate](&ErrDatabaseFail, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserCreate](func() (*interface{}, error) {
		return nil, userService.userOperation.AddUser(user)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessCreateUser, Unsatisfied, (*ResponseUserCreate)(user))
}

func (userService *UserService) GetCurrentProfile(req *RequestUserCurrentProfile) *ApiResponse[ResponseUserCurrentProfile] {
	user, res := CallDBFuncAndCheckError[operation.User, ResponseUserCurrentProfile](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.Uid)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetProfile, Unsatisfied, (*ResponseUserCurrentProfile)(user))
}

func (userService *UserService) GetUserProfile(req *RequestUserProfile) *ApiResponse[ResponseUserProfile] {
	if req.TargetUid != req.Uid {
		if res := RequireLevel[ResponseUserProfile](&req.JwtHeader, operation.LevelAdmin); res != nil {
			return res
		}
	}
	user, res := CallDBFuncAndCheckError[operation.User, ResponseUserProfile](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.TargetUid)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetProfile, Unsatisfied, (*ResponseUserProfile)(user))
}

func (userService *UserService) GetUserList(req *RequestUserList) *ApiResponse[ResponseUserList] {
	if res := RequireLevel[ResponseUserList](&req.JwtHeader, operation.LevelAdmin); res != nil {
		return res
	}
	users, res := CallDBFuncAndCheckError[[]*operation.User, ResponseUserList](func() (*[]*operation.User, error) {
		users, err := userService.userOperation.GetUsers()
		return &users, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetUserList, Unsatisfied, &ResponseUserList{
		Items: *users,
		Total: len(*users),
	})
}

func (userService *UserService) EditUserProfile(req *RequestUserEditProfile) *ApiResponse[ResponseUserEditProfile] {
	if res := RequireLevel[ResponseUserEditProfile](&req.JwtHeader, operation.LevelAdmin); res != nil {
		return res
	}
	user, res := CallDBFuncAndCheckError[operation.User, ResponseUserEditProfile](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.TargetUid)
	})
	if res != nil {
		return res
	}

	info := make(map[string]interface{})
	if req.Username != nil && *req.Username != user.Username {
		if err := usernameValidator.CheckString(*req.Username); err != nil {
			return NewApiResponse[ResponseUserEditProfile](err, Unsatisfied, nil)
		}
		taken, err := userService.userOperation.IsUsernameTaken(nil, *req.Username)
		if err != nil {
			return NewApiResponse[ResponseUserEditProfile](&ErrDatabaseFail, Unsatisfied, nil)
		}
		if taken {
			return NewApiResponse[ResponseUserEditProfile](&ErrUsernameConflict, Unsatisfied, nil)
		}
		info["username"] = *req.Username
		user.Username = *req.Username
	}
	if req.Level != nil {
		level := operation.AuthLevel(*req.Level)
		if !level.Valid() {
			return NewApiResponse[ResponseUserEditProfile](&ErrInvalidLevel, Unsatisfied, nil)
		}
		info["level"] = *req.Level
		user.Level = *req.Level
	}

	if len(info) > 0 {
		if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserEditProfile](func() (*interface{}, error) {
			return nil, userService.userOperation.UpdateUserInfo(user, info)
		}); res != nil {
			return res
		}
	}
	return NewApiResponse(&SuccessEditUser, Unsatisfied, (*ResponseUserEditProfile)(user))
}

func (userService *UserService) EditCurrentProfile(req *RequestUserEditCurrent) *ApiResponse[ResponseUserEditCurrent] {
	user, res := CallDBFuncAndCheckError[operation.User, ResponseUserEditCurrent](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.Uid)
	})
	if res != nil {
		return res
	}

	if req.Username != nil && *req.Username != user.Username {
		if err := usernameValidator.CheckString(*req.Username); err != nil {
			return NewApiResponse[ResponseUserEditCurrent](err, Unsatisfied, nil)
		}
		taken, err := userService.userOperation.IsUsernameTaken(nil, *req.Username)
		if err != nil {
			return NewApiResponse[ResponseUserEditCurrent](&ErrDatabaseFail, Unsatisfied, nil)
		}
		if taken {
			return NewApiResponse[ResponseUserEditCurrent](&ErrUsernameConflict, Unsatisfied, nil)
		}
		if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserEditCurrent](func() (*interface{}, error) {
			return nil, userService.userOperation.UpdateUserInfo(user, map[string]interface{}{"username": *req.Username})
		}); res != nil {
			return res
		}
		user.Username = *req.Username
	}

	return NewApiResponse(&SuccessEditUser, Unsatisfied, (*ResponseUserEditCurrent)(user))
}

func (userService *UserService) EditUserPassword(req *RequestUserEditPassword) *ApiResponse[ResponseUserEditPassword] {
	selfEdit := req.TargetUid == req.Uid
	if !selfEdit {
		if res := RequireLevel[ResponseUserEditPassword](&req.JwtHeader, operation.LevelAdmin); res != nil {
			return res
		}
	}
	if err := passwordValidator.CheckString(req.NewPassword); err != nil {
		return NewApiResponse[ResponseUserEditPassword](err, Unsatisfied, nil)
	}
	user, res := CallDBFuncAndCheckError[operation.User, ResponseUserEditPassword](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.TargetUid)
	})
	if res != nil {
		return res
	}
	// Admins can reset without the original password, owners cannot.
	if selfEdit && !userService.userOperation.VerifyUserPassword(user, req.OldPassword) {
		return NewApiResponse[ResponseUserEditPassword](&ErrOldPasswordStatus, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserEditPassword](func() (*interface{}, error) {
		return nil, userService.userOperation.UpdateUserPassword(user, req.NewPassword)
	}); res != nil {
		return res
	}
	data := ResponseUserEditPassword(true)
	return NewApiResponse(&SuccessEditPassword, Unsatisfied, &data)
}

func (userService *UserService) DeleteUser(req *RequestUserDelete) *ApiResponse[ResponseUserDelete] {
	if res := RequireLevel[ResponseUserDelete](&req.JwtHeader, operation.LevelAdmin); res != nil {
		return res
	}
	if req.TargetUid == req.Uid {
		return NewApiResponse[ResponseUserDelete](&ErrSelfDelete, Unsatisfied, nil)
	}
	user, res := CallDBFuncAndCheckError[operation.User, ResponseUserDelete](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.TargetUid)
	})
	if res != nil {
		return res
	}
	// Images go first, then flights, so no orphan rows survive a failure
	// in between. Stored files are removed best-effort, the rows always go.
	images, res := CallDBFuncAndCheckError[[]*operation.Image, ResponseUserDelete](func() (*[]*operation.Image, error) {
		images, err := userService.imageOperation.GetImagesByUser(user.ID)
		return &images, err
	})
	if res != nil {
		return res
	}
	for _, image := range *images {
		if status := userService.storeService.DeleteImageFile(image.StorePath, image.RemotePath); status != nil {
			userService.logger.ErrorF("UserService.DeleteUser file removal failed for image %d: %s", image.ID, status.Description)
		}
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserDelete](func() (*interface{}, error) {
		return nil, userService.imageOperation.DeleteImagesByUser(user.ID)
	}); res != nil {
		return res
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserDelete](func() (*interface{}, error) {
		return nil, userService.flightOperation.DeleteFlightsByUser(user.ID)
	}); res != nil {
		return res
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserDelete](func() (*interface{}, error) {
		return nil, userService.userOperation.DeleteUser(user)
	}); res != nil {
		return res
	}
	data := ResponseUserDelete(true)
	return NewApiResponse(&SuccessDeleteUser, Unsatisfied, &data)
}
